package stream

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

var (
	// ErrUnexpectedLine is returned when a line does not match the sequence.
	ErrUnexpectedLine = errors.New("stream: unexpected line")
	// ErrTruncated is returned when the peer closes in the middle of a line.
	ErrTruncated = errors.New("stream: truncated line")
)

// Receive reads lines from r until EOF, checking that the i-th line is exactly
// Message(i). onLine, if not nil, is called for every verified line with the
// terminator stripped. It returns the number of verified lines.
func Receive(r io.Reader, onLine func(i int, line string)) (int, error) {
	br := bufio.NewReader(r)
	for i := 0; ; i++ {
		line, err := br.ReadString('\n')
		if err != nil {
			if errors.Is(err, io.EOF) {
				if line != "" {
					return i, fmt.Errorf("%w: %q", ErrTruncated, line)
				}
				return i, nil
			}
			return i, err
		}
		if want := Message(i); line != want {
			return i, fmt.Errorf("%w: line %d is %q, want %q", ErrUnexpectedLine, i, line, want)
		}
		if onLine != nil {
			onLine(i, strings.TrimSuffix(line, "\r\n"))
		}
	}
}
