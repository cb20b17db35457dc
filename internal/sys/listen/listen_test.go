package listen

import (
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTCPAcceptsConnections(t *testing.T) {
	ln, err := TCP("127.0.0.1:0", DefaultBacklog)
	require.NoError(t, err)
	defer ln.Close()

	addr, ok := ln.Addr().(*net.TCPAddr)
	require.True(t, ok)
	assert.NotZero(t, addr.Port)
	assert.True(t, addr.IP.Equal(net.IPv4(127, 0, 0, 1)))

	go func() {
		conn, err := net.DialTimeout("tcp", addr.String(), 2*time.Second)
		if err != nil {
			return
		}
		conn.Write([]byte("ping"))
		conn.Close()
	}()

	conn, err := ln.Accept()
	require.NoError(t, err)
	defer conn.Close()

	buf := make([]byte, 4)
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	n, err := conn.Read(buf)
	require.NoError(t, err)
	assert.Equal(t, "ping", string(buf[:n]))
}

func TestTCPQueuesPendingConnections(t *testing.T) {
	ln, err := TCP("127.0.0.1:0", DefaultBacklog)
	require.NoError(t, err)
	defer ln.Close()

	// Nobody calls Accept; connections up to the backlog still complete.
	for i := 0; i < DefaultBacklog; i++ {
		conn, err := net.DialTimeout("tcp", ln.Addr().String(), 2*time.Second)
		require.NoError(t, err)
		defer conn.Close()
	}
}

func TestTCPAddressInUse(t *testing.T) {
	first, err := TCP("127.0.0.1:0", DefaultBacklog)
	require.NoError(t, err)
	defer first.Close()

	_, err = TCP(first.Addr().String(), DefaultBacklog)
	assert.Error(t, err)
}

func TestTCPBadAddress(t *testing.T) {
	_, err := TCP("not-an-address", DefaultBacklog)
	assert.Error(t, err)
}
