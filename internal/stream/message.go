package stream

import (
	"fmt"
	"io"
	"time"
)

const (
	// MessageCount is the number of lines written to every client.
	MessageCount = 100
	// MessageInterval is the pause after each line.
	MessageInterval = time.Second
)

// Message returns the i-th line, CRLF terminated.
func Message(i int) string {
	return fmt.Sprintf("Message %d !\r\n", i)
}

// StreamTo writes Message(0) through Message(count-1) to w in order, calling
// sleep(interval) after every write, the last one included. It stops at the
// first failed write and returns how many messages were written in full.
func StreamTo(w io.Writer, count int, interval time.Duration, sleep func(time.Duration)) (int, error) {
	for i := 0; i < count; i++ {
		if _, err := io.WriteString(w, Message(i)); err != nil {
			return i, fmt.Errorf("write message %d: %w", i, err)
		}
		sleep(interval)
	}
	return count, nil
}
