package stream

import (
	"errors"
	"fmt"
	"net"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"msgstream/internal/shared"
	"msgstream/internal/shared/logger"
	"msgstream/internal/sys/listen"
)

// ListenAddr is the fixed endpoint the binary serves on.
const ListenAddr = "0.0.0.0:8080"

// Session summarizes one served connection.
type Session struct {
	TraceID      string
	RemoteAddr   string
	Sent         int
	BytesWritten uint64
	Duration     time.Duration
	Err          error
}

// Server accepts one client at a time and streams the message sequence to it.
// While a client is being served, further connection attempts wait in the OS
// backlog.
type Server struct {
	addr     string
	backlog  int
	count    int
	interval time.Duration
	sleep    func(time.Duration)

	listener  net.Listener
	state     atomic.Int32
	closeOnce sync.Once
	log       zerolog.Logger

	// onSessionEnd, if set, is called after each connection is closed.
	onSessionEnd func(Session)
}

func New(addr string) *Server {
	return &Server{
		addr:     addr,
		backlog:  listen.DefaultBacklog,
		count:    MessageCount,
		interval: MessageInterval,
		sleep:    time.Sleep,
		log:      logger.WithComponent("stream"),
	}
}

// InitializeListener 负责监听端口但不阻塞，返回实际监听的端口号。
func (s *Server) InitializeListener() (int, error) {
	ln, err := listen.TCP(s.addr, s.backlog)
	if err != nil {
		return 0, fmt.Errorf("stream server failed to listen on %s: %w", s.addr, err)
	}
	s.listener = ln

	s.log.Info().
		Str("listen_addr", ln.Addr().String()).
		Int("backlog", s.backlog).
		Msg(">>> Stream server is listening.")

	return ln.Addr().(*net.TCPAddr).Port, nil
}

// Serve runs the accept loop. It must be called after InitializeListener and
// returns nil once the listener is closed.
func (s *Server) Serve() error {
	if s.listener == nil {
		return errors.New("stream: Serve called before InitializeListener")
	}
	for {
		s.state.Store(int32(StateWaitingForClient))

		conn, err := s.listener.Accept()
		if err != nil {
			if errors.Is(err, net.ErrClosed) {
				s.log.Info().Msg("Stream server listener is closing.")
				return nil
			}
			s.log.Warn().Err(err).Msg("Stream server failed to accept connection")
			continue
		}

		s.state.Store(int32(StateStreaming))
		sess := s.serveConn(conn)
		if s.onSessionEnd != nil {
			s.onSessionEnd(sess)
		}
	}
}

// Start listens and then blocks in Serve.
func (s *Server) Start() error {
	if _, err := s.InitializeListener(); err != nil {
		return err
	}
	return s.Serve()
}

// State reports where the accept loop currently is.
func (s *Server) State() State {
	return State(s.state.Load())
}

// Addr returns the bound address, or nil before InitializeListener.
func (s *Server) Addr() net.Addr {
	if s.listener == nil {
		return nil
	}
	return s.listener.Addr()
}

// Close releases the listening socket. A stream in progress runs to completion
// and Serve returns afterwards.
func (s *Server) Close() error {
	var err error
	s.closeOnce.Do(func() {
		if s.listener != nil {
			err = s.listener.Close()
		}
	})
	return err
}

func (s *Server) serveConn(conn net.Conn) Session {
	counted := shared.NewCountedConn(conn)
	sess := Session{
		TraceID:    uuid.NewString(),
		RemoteAddr: conn.RemoteAddr().String(),
	}
	l := s.log.With().
		Str("trace_id", sess.TraceID).
		Str("client_ip", sess.RemoteAddr).
		Logger()

	l.Info().Msg("Client connected")
	start := time.Now()

	sess.Sent, sess.Err = StreamTo(counted, s.count, s.interval, s.sleep)

	if err := counted.Close(); err != nil && sess.Err == nil {
		sess.Err = fmt.Errorf("close: %w", err)
	}
	sess.BytesWritten = counted.BytesWritten()
	sess.Duration = time.Since(start)

	var ev *zerolog.Event
	if sess.Err != nil {
		ev = l.Warn().Err(sess.Err)
	} else {
		ev = l.Info()
	}
	ev.Int("sent", sess.Sent).
		Uint64("bytes", sess.BytesWritten).
		Dur("duration", sess.Duration).
		Msg("Client session finished")

	return sess
}
