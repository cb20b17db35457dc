package stream

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMessageFormat(t *testing.T) {
	assert.Equal(t, "Message 0 !\r\n", Message(0))
	assert.Equal(t, "Message 7 !\r\n", Message(7))
	assert.Equal(t, "Message 99 !\r\n", Message(99))
}

func TestStreamToWritesAllInOrder(t *testing.T) {
	var buf bytes.Buffer
	var pauses []time.Duration

	sent, err := StreamTo(&buf, MessageCount, MessageInterval, func(d time.Duration) {
		pauses = append(pauses, d)
	})
	require.NoError(t, err)
	assert.Equal(t, MessageCount, sent)

	lines := strings.SplitAfter(buf.String(), "\r\n")
	// SplitAfter leaves an empty tail after the final separator.
	require.Len(t, lines, MessageCount+1)
	assert.Equal(t, "", lines[MessageCount])
	for i := 0; i < MessageCount; i++ {
		assert.Equal(t, Message(i), lines[i])
	}

	require.Len(t, pauses, MessageCount)
	for _, d := range pauses {
		assert.Equal(t, time.Second, d)
	}
}

type failAfter struct {
	ok     int
	writes int
	buf    bytes.Buffer
}

var errBrokenPipe = errors.New("broken pipe")

func (w *failAfter) Write(p []byte) (int, error) {
	if w.writes >= w.ok {
		return 0, errBrokenPipe
	}
	w.writes++
	return w.buf.Write(p)
}

func TestStreamToStopsOnWriteError(t *testing.T) {
	w := &failAfter{ok: 3}
	pauses := 0

	sent, err := StreamTo(w, MessageCount, time.Second, func(time.Duration) { pauses++ })
	require.Error(t, err)
	assert.ErrorIs(t, err, errBrokenPipe)
	assert.Contains(t, err.Error(), "message 3")
	assert.Equal(t, 3, sent)
	assert.Equal(t, 3, pauses)
	assert.Equal(t, Message(0)+Message(1)+Message(2), w.buf.String())
}

func TestStreamToZeroCount(t *testing.T) {
	var buf bytes.Buffer
	sent, err := StreamTo(&buf, 0, time.Second, func(time.Duration) {
		t.Fatal("sleep must not be called")
	})
	require.NoError(t, err)
	assert.Equal(t, 0, sent)
	assert.Zero(t, buf.Len())
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "WAITING_FOR_CLIENT", StateWaitingForClient.String())
	assert.Equal(t, "STREAMING", StateStreaming.String())
	assert.Equal(t, "UNKNOWN", State(42).String())
}
