package animator

import "time"

// State is the lifecycle position of the animator's session.
type State int

const (
	Idle State = iota
	Running
	Paused
	// Cancelled and Completed are passed through on the way back to Idle.
	Cancelled
	Completed
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Paused:
		return "paused"
	case Cancelled:
		return "cancelled"
	case Completed:
		return "completed"
	}
	return "unknown"
}

// session is a tagged variant. A new value replaces the old one wholesale on
// every transition, so nothing leaks from one session into the next.
type session interface {
	state() State
}

type idleSession struct{}

func (idleSession) state() State { return Idle }

type runningSession struct {
	from, to float64
	start    time.Time
	offset   time.Duration // time already spent before the last resume
}

func (runningSession) state() State { return Running }

func (s runningSession) elapsed(now time.Time) time.Duration {
	return s.offset + now.Sub(s.start)
}

type pausedSession struct {
	from, to float64
	elapsed  time.Duration
}

func (pausedSession) state() State { return Paused }
