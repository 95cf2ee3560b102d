// Package animator drives a progress value from one number to another over a
// fixed duration. Frames are delivered by the host as FrameMsg values through
// Bubble Tea; every intermediate value is handed to a commit function.
package animator

import (
	"log/slog"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

const (
	// DefaultDuration is the length of every transition.
	DefaultDuration = 2000 * time.Millisecond

	fps = 60
)

// Internal ID management. Frame messages carry the id of the animator that
// scheduled them so that several animators can share one program.
var lastID int64

func nextID() int {
	return int(atomic.AddInt64(&lastID, 1))
}

// Clock supplies the current time. Tests substitute a manual clock.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// FrameMsg asks the animator to advance one step.
type FrameMsg struct {
	id  int
	tag int
}

// Animator owns at most one transition at a time.
type Animator struct {
	// Identifies the animator among others in the same program.
	id int
	// Bumped on every lifecycle change; frames carrying an older tag belong
	// to a superseded frame chain and are dropped.
	tag int

	clock    Clock
	duration time.Duration
	interval time.Duration
	easing   Easing
	logger   *slog.Logger

	commit       func(float64)
	onTransition func(from, to State)

	session session
}

// Option configures an Animator in New.
type Option func(*Animator)

// WithClock replaces the wall clock.
func WithClock(c Clock) Option {
	return func(a *Animator) {
		a.clock = c
	}
}

// WithDuration overrides DefaultDuration.
func WithDuration(d time.Duration) Option {
	return func(a *Animator) {
		a.duration = d
	}
}

// WithEasing replaces the linear easing.
func WithEasing(e Easing) Option {
	return func(a *Animator) {
		if e != nil {
			a.easing = e
		}
	}
}

// WithFrameRate sets how often frames are requested while running.
func WithFrameRate(n int) Option {
	return func(a *Animator) {
		if n > 0 {
			a.interval = time.Second / time.Duration(n)
		}
	}
}

// WithLogger sets the logger used for lifecycle transitions.
func WithLogger(l *slog.Logger) Option {
	return func(a *Animator) {
		if l != nil {
			a.logger = l
		}
	}
}

// WithTransitionHook registers a callback invoked on every state change.
func WithTransitionHook(fn func(from, to State)) Option {
	return func(a *Animator) {
		a.onTransition = fn
	}
}

// New creates an idle animator that reports values through commit.
func New(commit func(float64), opts ...Option) *Animator {
	a := &Animator{
		id:       nextID(),
		clock:    SystemClock{},
		duration: DefaultDuration,
		interval: time.Second / fps,
		easing:   Linear,
		logger:   slog.New(slog.DiscardHandler),
		commit:   commit,
		session:  idleSession{},
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// State returns the current lifecycle state.
func (a *Animator) State() State {
	return a.session.state()
}

// Start begins a transition from one value to another, discarding any
// session that is still active. The first value is committed immediately.
func (a *Animator) Start(from, to float64) tea.Cmd {
	a.Cancel()

	a.tag++
	a.session = runningSession{from: from, to: to, start: a.clock.Now()}
	a.logger.Debug("animation started", "id", a.id, "from", from, "to", to, "duration", a.duration)
	a.transition(Idle, Running)

	a.commit(from)
	return a.nextFrame()
}

// Toggle pauses a running session or resumes a paused one. It does nothing
// when idle.
func (a *Animator) Toggle() tea.Cmd {
	now := a.clock.Now()

	switch s := a.session.(type) {
	case pausedSession:
		a.tag++
		a.session = runningSession{from: s.from, to: s.to, start: now, offset: s.elapsed}
		a.logger.Debug("animation resumed", "id", a.id, "elapsed", s.elapsed)
		a.transition(Paused, Running)
		return a.nextFrame()

	case runningSession:
		a.tag++
		elapsed := min(s.elapsed(now), a.duration)
		a.session = pausedSession{from: s.from, to: s.to, elapsed: elapsed}
		a.logger.Debug("animation paused", "id", a.id, "elapsed", elapsed)
		a.transition(Running, Paused)
	}
	return nil
}

// Cancel drops the active session without committing anything further.
func (a *Animator) Cancel() {
	prev := a.session.state()
	if prev == Idle {
		return
	}

	a.tag++
	a.session = idleSession{}
	a.logger.Debug("animation cancelled", "id", a.id, "state", prev)
	a.transition(prev, Cancelled)
	a.transition(Cancelled, Idle)
}

// Frame returns the frame message the animator currently accepts. Hosts that
// drive their own clock can feed it straight back into Update.
func (a *Animator) Frame() FrameMsg {
	return FrameMsg{id: a.id, tag: a.tag}
}

// Update advances a running session on a matching frame and returns the
// command for the next frame, or nil once the session is over.
func (a *Animator) Update(msg tea.Msg) tea.Cmd {
	frame, ok := msg.(FrameMsg)
	if !ok || frame.id != a.id || frame.tag != a.tag {
		return nil
	}

	s, ok := a.session.(runningSession)
	if !ok {
		return nil
	}

	t := a.fraction(s.elapsed(a.clock.Now()))
	if t >= 1 {
		a.commit(s.to)
		a.complete()
		return nil
	}

	a.commit(s.from + (s.to-s.from)*a.easing(t))
	return a.nextFrame()
}

func (a *Animator) complete() {
	a.tag++
	a.session = idleSession{}
	a.logger.Debug("animation completed", "id", a.id)
	a.transition(Running, Completed)
	a.transition(Completed, Idle)
}

func (a *Animator) fraction(elapsed time.Duration) float64 {
	if a.duration <= 0 {
		return 1
	}
	t := float64(elapsed) / float64(a.duration)
	return max(t, 0)
}

func (a *Animator) transition(from, to State) {
	if a.onTransition != nil {
		a.onTransition(from, to)
	}
}

func (a *Animator) nextFrame() tea.Cmd {
	frame := a.Frame()
	return tea.Tick(a.interval, func(time.Time) tea.Msg {
		return frame
	})
}
