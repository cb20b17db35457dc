package shared

import (
	"net"
	"sync/atomic"
)

// CountedConn 是一个 net.Conn 的包装器，原子地统计写出和读入的字节数。
type CountedConn struct {
	net.Conn
	written atomic.Uint64
	read    atomic.Uint64
}

// NewCountedConn 创建一个新的 CountedConn 实例。
func NewCountedConn(conn net.Conn) *CountedConn {
	return &CountedConn{Conn: conn}
}

func (c *CountedConn) Read(b []byte) (int, error) {
	n, err := c.Conn.Read(b)
	if n > 0 {
		c.read.Add(uint64(n))
	}
	return n, err
}

func (c *CountedConn) Write(b []byte) (int, error) {
	n, err := c.Conn.Write(b)
	if n > 0 {
		c.written.Add(uint64(n))
	}
	return n, err
}

// BytesWritten reports the bytes successfully handed to the kernel so far,
// including the prefix of a short write.
func (c *CountedConn) BytesWritten() uint64 {
	return c.written.Load()
}

// BytesRead reports the bytes received from the peer so far.
func (c *CountedConn) BytesRead() uint64 {
	return c.read.Load()
}
