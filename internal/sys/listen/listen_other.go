//go:build !linux

package listen

import (
	"net"
)

// TCP 在非Linux系统上回退到 net.Listen，backlog 由系统决定。
func TCP(addr string, backlog int) (net.Listener, error) {
	return net.Listen("tcp4", addr)
}
