package engine

// Mode selects how the displayed time value is computed each tick
type Mode uint8

const (
	ModeClock Mode = iota
	ModeStopwatch
	ModeCountdown
)

func (m Mode) String() string {
	switch m {
	case ModeClock:
		return "clock"
	case ModeStopwatch:
		return "stopwatch"
	case ModeCountdown:
		return "countdown"
	default:
		return "unknown"
	}
}

func (m Mode) valid() bool { return m <= ModeCountdown }

// State is the loop's lifecycle position
type State uint8

const (
	StateRunning State = iota
	StateExpired       // countdown reached zero, alerts in progress
	StateStopped       // terminal
)

func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StateExpired:
		return "expired"
	case StateStopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// Reason explains why Run returned
type Reason uint8

const (
	ReasonNone Reason = iota
	ReasonInterrupted
	ReasonExpired
	ReasonFailed
)

func (r Reason) String() string {
	switch r {
	case ReasonInterrupted:
		return "interrupted"
	case ReasonExpired:
		return "expired"
	case ReasonFailed:
		return "failed"
	default:
		return "none"
	}
}
