package stream

// State is where the accept loop currently is.
type State int32

const (
	// StateWaitingForClient is the initial state: blocked in Accept.
	StateWaitingForClient State = iota
	// StateStreaming means one client is being served and nobody else is accepted.
	StateStreaming
)

func (s State) String() string {
	switch s {
	case StateWaitingForClient:
		return "WAITING_FOR_CLIENT"
	case StateStreaming:
		return "STREAMING"
	default:
		return "UNKNOWN"
	}
}
