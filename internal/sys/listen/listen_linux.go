//go:build linux

package listen

import (
	"fmt"
	"net"
	"os"

	"golang.org/x/sys/unix"
)

// TCP binds an IPv4 TCP socket to addr and listens with the given backlog.
// net.Listen always asks for somaxconn, so the socket is built by hand.
func TCP(addr string, backlog int) (net.Listener, error) {
	tcpAddr, err := net.ResolveTCPAddr("tcp4", addr)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", addr, err)
	}

	fd, err := unix.Socket(unix.AF_INET, unix.SOCK_STREAM|unix.SOCK_CLOEXEC, unix.IPPROTO_TCP)
	if err != nil {
		return nil, os.NewSyscallError("socket", err)
	}

	sa := &unix.SockaddrInet4{Port: tcpAddr.Port}
	if ip4 := tcpAddr.IP.To4(); ip4 != nil {
		copy(sa.Addr[:], ip4)
	}

	if err := unix.Bind(fd, sa); err != nil {
		unix.Close(fd)
		return nil, os.NewSyscallError("bind", err)
	}

	if err := unix.Listen(fd, backlog); err != nil {
		unix.Close(fd)
		return nil, os.NewSyscallError("listen", err)
	}

	// net.FileListener dups the descriptor; the original is closed with f.
	f := os.NewFile(uintptr(fd), fmt.Sprintf("tcp:%s", addr))
	defer f.Close()

	ln, err := net.FileListener(f)
	if err != nil {
		return nil, fmt.Errorf("wrap listener fd: %w", err)
	}
	return ln, nil
}
