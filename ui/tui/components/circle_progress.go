package components

import (
	"log/slog"

	"circleprogress/internal/animator"
	"circleprogress/internal/ring"

	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"
)

// Default terminal footprint of the ring, in cells. Braille cells are 2x4
// dots, so 30x15 cells is a 60x60 dot square.
const (
	DefaultCols = 30
	DefaultRows = 15
)

// CircleProgress is a progress ring with a centered percentage label that
// can move to a new value instantly or over an animated transition.
//
// current is the anchor: it takes the requested value as soon as a setter
// is called. displayed is what is drawn and follows the animation frames.
type CircleProgress struct {
	style ring.StyleConfig

	current   float64
	displayed float64
	label     string

	anim     *animator.Animator
	detached bool

	// Host layout: constraints in ring units and the cell grid to paint.
	constraints ring.Constraints
	cols, rows  int

	// Re-render requests. View output is cached per generation and grid.
	generation int
	cache      viewCache

	zones    *zone.Manager
	zoneID   string
	onCommit func(float64)
	logger   *slog.Logger

	animOpts []animator.Option
}

type viewCache struct {
	generation int
	cols, rows int
	constraint ring.Constraints
	view       string
	valid      bool
}

// Option configures a CircleProgress in NewCircleProgress.
type Option func(*CircleProgress)

// WithStyle sets the initial style. Invalid styles are ignored.
func WithStyle(s ring.StyleConfig) Option {
	return func(c *CircleProgress) {
		if s.Validate() == nil {
			c.style = s
		}
	}
}

// WithGrid sets the cell grid the ring is painted into.
func WithGrid(cols, rows int) Option {
	return func(c *CircleProgress) {
		c.cols, c.rows = cols, rows
	}
}

// WithConstraints sets the layout constraints handed to Measure.
func WithConstraints(con ring.Constraints) Option {
	return func(c *CircleProgress) {
		c.constraints = con
	}
}

// WithZone marks the rendered ring with a bubblezone id so mouse clicks on
// it toggle the animation. The outermost view must run m.Scan.
func WithZone(m *zone.Manager, id string) Option {
	return func(c *CircleProgress) {
		c.zones, c.zoneID = m, id
	}
}

// WithCommitHook is called with every value written to the display.
func WithCommitHook(fn func(float64)) Option {
	return func(c *CircleProgress) {
		c.onCommit = fn
	}
}

// WithLogger sets the logger for the widget and its animator.
func WithLogger(l *slog.Logger) Option {
	return func(c *CircleProgress) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithAnimatorOptions passes options through to the animator, for example a
// fake clock in tests or a different easing.
func WithAnimatorOptions(opts ...animator.Option) Option {
	return func(c *CircleProgress) {
		c.animOpts = append(c.animOpts, opts...)
	}
}

// NewCircleProgress creates an idle ring at 0%.
func NewCircleProgress(opts ...Option) *CircleProgress {
	c := &CircleProgress{
		style: ring.DefaultStyle(),
		label: ring.FormatLabel(0),
		constraints: ring.Constraints{
			Width:  ring.Dimension{Mode: ring.AtMost},
			Height: ring.Dimension{Mode: ring.AtMost},
		},
		cols:   DefaultCols,
		rows:   DefaultRows,
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(c)
	}

	animOpts := append([]animator.Option{animator.WithLogger(c.logger)}, c.animOpts...)
	c.anim = animator.New(c.commit, animOpts...)
	return c
}

// Configure replaces the style. It returns the validation error and keeps
// the old style when the new one is unusable.
func (c *CircleProgress) Configure(s ring.StyleConfig) error {
	if err := s.Validate(); err != nil {
		return err
	}
	c.style = s
	c.invalidate()
	return nil
}

func (c *CircleProgress) Style() ring.StyleConfig {
	return c.style
}

// Progress returns the last value requested through either setter.
func (c *CircleProgress) Progress() float64 {
	return c.current
}

// Displayed returns the value currently drawn.
func (c *CircleProgress) Displayed() float64 {
	return c.displayed
}

// Label returns the label text currently drawn.
func (c *CircleProgress) Label() string {
	return c.label
}

// State returns the animator's lifecycle state.
func (c *CircleProgress) State() animator.State {
	return c.anim.State()
}

// Generation counts re-render requests.
func (c *CircleProgress) Generation() int {
	return c.generation
}

// Detached reports whether OnDetach has been called.
func (c *CircleProgress) Detached() bool {
	return c.detached
}

// SetProgress jumps to v without animating. Any value is accepted. A
// transition in flight is cancelled so its frames cannot overwrite v.
func (c *CircleProgress) SetProgress(v float64) {
	c.anim.Cancel()
	c.current = v
	c.commit(v)
}

// commit writes a value to the display. Animation frames land here too.
func (c *CircleProgress) commit(v float64) {
	c.label = ring.FormatLabel(v)
	c.displayed = v
	c.invalidate()
	if c.onCommit != nil {
		c.onCommit(v)
	}
}

// SetProgressWithAnimation moves to v over the animator's duration, starting
// from the current anchor. Values outside [0,100] and NaN are ignored, as is any
// call after OnDetach.
func (c *CircleProgress) SetProgressWithAnimation(v float64) tea.Cmd {
	// Written so NaN fails too.
	if !(v >= 0 && v <= 100) {
		c.logger.Debug("animated progress rejected", "value", v)
		return nil
	}
	if c.detached {
		return nil
	}

	from := c.current
	c.current = v
	return c.anim.Start(from, v)
}

// Stop pauses a running transition, or resumes a paused one.
func (c *CircleProgress) Stop() tea.Cmd {
	return c.anim.Toggle()
}

// OnDetach is called by the host when the ring is permanently removed. It
// cancels any transition; the values are left as they are.
func (c *CircleProgress) OnDetach() {
	c.detached = true
	c.anim.Cancel()
	if c.zones != nil {
		c.zones.Clear(c.zoneID)
	}
	c.logger.Debug("ring detached", "current", c.current, "displayed", c.displayed)
}

func (c *CircleProgress) invalidate() {
	c.generation++
}

// Measure resolves the ring size for the given constraints.
func (c *CircleProgress) Measure(con ring.Constraints) ring.Size {
	return ring.Measure(con)
}

// Render draws the current frame onto a surface.
func (c *CircleProgress) Render(s ring.Surface) {
	ring.RenderTo(s, c.displayed, c.style)
}

// Commands returns the draw commands for a view of the given size.
func (c *CircleProgress) Commands(width, height float64, tm ring.TextMeasurer) []ring.Command {
	return ring.Render(c.displayed, width, height, c.style, tm)
}

// SetConstraints replaces the layout constraints.
func (c *CircleProgress) SetConstraints(con ring.Constraints) {
	c.constraints = con
	c.invalidate()
}

// Resize sets the cell grid the ring is painted into.
func (c *CircleProgress) Resize(cols, rows int) {
	c.cols, c.rows = cols, rows
	c.invalidate()
}

func (c *CircleProgress) Init() tea.Cmd {
	return nil
}

// Update forwards animation frames and handles clicks on the ring.
func (c *CircleProgress) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case animator.FrameMsg:
		return c, c.anim.Update(msg)

	case tea.MouseMsg:
		if c.zones == nil || msg.Action != tea.MouseActionRelease {
			return c, nil
		}
		if c.zones.Get(c.zoneID).InBounds(msg) {
			return c, c.Stop()
		}
	}
	return c, nil
}

// View paints the ring into its cell grid.
func (c *CircleProgress) View() string {
	if c.cache.valid &&
		c.cache.generation == c.generation &&
		c.cache.cols == c.cols && c.cache.rows == c.rows &&
		c.cache.constraint == c.constraints {
		return c.cache.view
	}

	surface := NewTermSurface(c.cols, c.rows, c.Measure(c.constraints))
	c.Render(surface)

	view := surface.View()
	if c.zones != nil {
		view = c.zones.Mark(c.zoneID, view)
	}

	c.cache = viewCache{
		generation: c.generation,
		cols:       c.cols,
		rows:       c.rows,
		constraint: c.constraints,
		view:       view,
		valid:      true,
	}
	return view
}

var (
	_ Component  = (*CircleProgress)(nil)
	_ Detachable = (*CircleProgress)(nil)
	_ ring.View  = (*CircleProgress)(nil)
)
