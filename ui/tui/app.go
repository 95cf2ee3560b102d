package tui

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"circleprogress/internal/animator"
	"circleprogress/internal/collector"
	"circleprogress/internal/engine"
	"circleprogress/internal/ring"
	"circleprogress/ui/tui/components"
	"circleprogress/ui/tui/state"
	"circleprogress/ui/tui/views"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/harmonica"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
)

const ringZoneID = "ring"

// menuSources maps menu rows to gauge sources. "" is manual control; the
// row after the last source opens the event console.
var menuSources = []string{"", collector.SourceCPU, collector.SourceMem, collector.SourceDisk}

// ProviderFunc resolves a source name to a reading provider.
type ProviderFunc func(source string) (collector.Provider, error)

// Options configures the demo program.
type Options struct {
	Style      ring.StyleConfig
	Collector  collector.CollectorConfig
	Thresholds engine.Config
	Duration   time.Duration
	Easing     animator.Easing

	// Cols and Rows fix the ring's cell grid. Zero follows the window.
	Cols, Rows int

	// Source opens the gauge directly. "manual" opens it without a sensor;
	// empty starts on the menu.
	Source string

	Providers ProviderFunc
	Logger    *slog.Logger
}

// DefaultOptions returns options backed by the gopsutil sources.
func DefaultOptions() Options {
	cfg := collector.DefaultCollectorConfig()
	return Options{
		Style:      ring.DefaultStyle(),
		Collector:  cfg,
		Thresholds: engine.DefaultConfig(),
		Duration:   animator.DefaultDuration,
		Easing:     animator.Linear,
		Providers: func(source string) (collector.Provider, error) {
			return collector.NewProvider(source, cfg)
		},
		Logger: slog.New(slog.DiscardHandler),
	}
}

// MainModel is the Bubble Tea Model acting as the Controller
type MainModel struct {
	opts    Options
	logger  *slog.Logger
	state   state.AppState
	spinner spinner.Model
	ring    *components.CircleProgress
	history *components.HistoryWidget
	zones   *zone.Manager

	provider collector.Provider
	polling  bool
	lastPoll time.Time

	menuCursor     int
	animCursor     float64
	velocity       float64 // Physics velocity
	spring         harmonica.Spring
	consoleScrollY int
	mouseX         int
	mouseY         int
	quitting       bool
	width          int
	height         int
}

// Messages
type TickMsg time.Time
type AnimateMsg time.Time
type SampleLoadedMsg struct {
	Provider collector.Provider
	Sample   collector.Sample
	Err      error
}

func InitialModel(opts Options) *MainModel {
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.DiscardHandler)
	}
	if opts.Providers == nil {
		opts.Providers = DefaultOptions().Providers
	}

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	// Increased frequency (12.0) for faster response and damping (0.9) to prevent overshoot
	spring := harmonica.NewSpring(harmonica.FPS(60), 12.0, 0.9)

	m := &MainModel{
		opts:    opts,
		logger:  opts.Logger,
		spinner: s,
		spring:  spring,
		zones:   zone.New(),
		history: components.NewHistoryWidget(30, 10, opts.Collector.HistoryCapacity),
		state:   state.AppState{CurrentPage: state.PageMenu},
	}

	animOpts := []animator.Option{animator.WithTransitionHook(m.onTransition)}
	if opts.Duration > 0 {
		animOpts = append(animOpts, animator.WithDuration(opts.Duration))
	}
	if opts.Easing != nil {
		animOpts = append(animOpts, animator.WithEasing(opts.Easing))
	}

	ringOpts := []components.Option{
		components.WithStyle(opts.Style),
		components.WithZone(m.zones, ringZoneID),
		components.WithLogger(opts.Logger),
		components.WithAnimatorOptions(animOpts...),
	}
	if opts.Cols > 0 && opts.Rows > 0 {
		ringOpts = append(ringOpts, components.WithGrid(opts.Cols, opts.Rows))
	}
	m.ring = components.NewCircleProgress(ringOpts...)
	return m
}

func (m *MainModel) Init() tea.Cmd {
	cmds := []tea.Cmd{
		m.spinner.Tick,
		tickCmd(),
		animateCmd(),
	}
	switch m.opts.Source {
	case "":
	case "manual":
		cmds = append(cmds, m.openGauge(""))
	default:
		cmds = append(cmds, m.openGauge(m.opts.Source))
	}
	return tea.Batch(cmds...)
}

// Commands
func tickCmd() tea.Cmd {
	return tea.Tick(time.Second*1, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func animateCmd() tea.Cmd {
	return tea.Tick(time.Millisecond*16, func(t time.Time) tea.Msg {
		return AnimateMsg(t)
	})
}

func fetchSampleCmd(p collector.Provider) tea.Cmd {
	return func() tea.Msg {
		s, err := p.Sample(context.Background())
		return SampleLoadedMsg{Provider: p, Sample: s, Err: err}
	}
}

func (m *MainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case AnimateMsg:
		return m.handleAnimateMsg(msg)

	case animator.FrameMsg:
		_, cmd := m.ring.Update(msg)
		return m, cmd

	case tea.WindowSizeMsg:
		return m.handleWindowSizeMsg(msg)

	case TickMsg:
		return m.handleTickMsg(msg)

	case SampleLoadedMsg:
		return m.handleSampleLoadedMsg(msg)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.MouseMsg:
		return m.handleMouseMsg(msg)
	}

	return m, nil
}

func (m *MainModel) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		m.shutdown()
		m.quitting = true
		return m, tea.Quit
	}

	switch m.state.CurrentPage {
	case state.PageMenu:
		switch msg.String() {
		case "up", "k":
			if m.menuCursor > 0 {
				m.menuCursor--
			}
		case "down", "j":
			if m.menuCursor < len(views.MenuOptions)-1 {
				m.menuCursor++
			}
		case "enter":
			return m, m.navigateTo(m.menuCursor)
		}
		return m, nil

	case state.PageConsole:
		switch msg.String() {
		case "up", "k":
			if m.consoleScrollY > 0 {
				m.consoleScrollY--
			}
		case "down", "j":
			m.consoleScrollY++
		}

	case state.PageGauge:
		if cmd, ok := m.handleGaugeKey(msg.String()); ok {
			return m, cmd
		}
	}

	if msg.String() == "b" || msg.String() == "esc" || msg.String() == "backspace" {
		m.closeProvider()
		m.state.CurrentPage = state.PageMenu
		m.consoleScrollY = 0
		return m, nil
	}

	return m, nil
}

// handleGaugeKey drives the ring from the keyboard. It reports whether the
// key was consumed.
func (m *MainModel) handleGaugeKey(key string) (tea.Cmd, bool) {
	switch key {
	case "s", " ", "space":
		return m.ring.Stop(), true
	case "f":
		return m.ring.SetProgressWithAnimation(100), true
	case "+", "=":
		m.ring.SetProgress(m.ring.Progress() + 5)
		return nil, true
	case "-", "_":
		m.ring.SetProgress(m.ring.Progress() - 5)
		return nil, true
	}
	if len(key) == 1 && key[0] >= '0' && key[0] <= '9' {
		return m.ring.SetProgressWithAnimation(float64(key[0]-'0') * 10), true
	}
	return nil, false
}

func (m *MainModel) navigateTo(cursor int) tea.Cmd {
	if cursor < len(menuSources) {
		return m.openGauge(menuSources[cursor])
	}
	m.state.CurrentPage = state.PageConsole
	return nil
}

// openGauge switches to the gauge page fed by source, or by the keyboard
// when source is empty.
func (m *MainModel) openGauge(source string) tea.Cmd {
	m.closeProvider()
	m.state.ResetSource(source)
	m.state.CurrentPage = state.PageGauge

	if source == "" {
		m.log("manual control")
		return nil
	}

	p, err := m.opts.Providers(source)
	if err != nil {
		m.state.Err = err
		m.logger.Error("open source", "source", source, "err", err)
		m.log(fmt.Sprintf("source %s: %v", source, err))
		return nil
	}

	m.provider = p
	m.polling = true
	m.lastPoll = time.Now()
	m.log("watching " + p.Name())
	return fetchSampleCmd(p)
}

type providerCloser interface {
	Close(ctx context.Context) error
}

func (m *MainModel) closeProvider() {
	if m.provider == nil {
		return
	}
	if c, ok := m.provider.(providerCloser); ok {
		if err := c.Close(context.Background()); err != nil {
			m.logger.Warn("close source", "source", m.provider.Name(), "err", err)
		}
	}
	m.provider = nil
	m.polling = false
}

// shutdown detaches the ring and releases everything the program opened.
func (m *MainModel) shutdown() {
	m.closeProvider()
	m.ring.OnDetach()
	m.zones.Close()
}

func (m *MainModel) onTransition(from, to animator.State) {
	m.logger.Debug("ring transition", "from", from, "to", to, "displayed", m.ring.Displayed())
	m.log(fmt.Sprintf("animation %s -> %s at %s", from, to, m.ring.Label()))
}

func (m *MainModel) log(line string) {
	m.state.Log(time.Now(), line, m.opts.Collector.MaxConsoleLogs)
}

func (m *MainModel) handleAnimateMsg(msg AnimateMsg) (tea.Model, tea.Cmd) {
	var v float64 = m.velocity
	m.animCursor, v = m.spring.Update(m.animCursor, float64(m.menuCursor), v)
	m.velocity = v
	return m, animateCmd()
}

func (m *MainModel) handleWindowSizeMsg(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height

	cols, rows := m.opts.Cols, m.opts.Rows
	if cols <= 0 || rows <= 0 {
		// Two cells per row keeps the dot grid square.
		rows = max(6, min(msg.Height-12, 30))
		cols = rows * 2
		m.ring.Resize(cols, rows)
	}

	newW := msg.Width - cols - 16
	if newW > 10 {
		m.history.Resize(newW, 10)
	}
	return m, nil
}

func (m *MainModel) handleTickMsg(msg TickMsg) (tea.Model, tea.Cmd) {
	cmds := []tea.Cmd{tickCmd()}
	if m.state.CurrentPage == state.PageGauge {
		m.history.Record(m.ring.Displayed(), m.ring.State())
	}

	now := time.Time(msg)
	if m.provider != nil && !m.polling && now.Sub(m.lastPoll) >= m.opts.Collector.PollInterval {
		m.polling = true
		m.lastPoll = now
		cmds = append(cmds, fetchSampleCmd(m.provider))
	}
	return m, tea.Batch(cmds...)
}

func (m *MainModel) handleSampleLoadedMsg(msg SampleLoadedMsg) (tea.Model, tea.Cmd) {
	// A reading for a source the user already left.
	if m.provider == nil || msg.Provider != m.provider {
		return m, nil
	}
	m.polling = false

	if msg.Err != nil {
		m.state.Err = msg.Err
		m.logger.Warn("sample failed", "source", m.provider.Name(), "err", msg.Err)
		m.log(msg.Err.Error())
		return m, nil
	}

	sample := msg.Sample
	m.state.Err = nil
	m.state.Sample = sample
	m.state.HasSample = true
	m.state.Result = engine.Evaluate(sample, m.opts.Thresholds)
	m.state.LastUpdate = sample.At

	m.log(fmt.Sprintf("%s: %.1f%% [%s]", sample.Source, sample.Percent, m.state.Result.Status))
	return m, m.ring.SetProgressWithAnimation(sample.Percent)
}

func (m *MainModel) handleMouseMsg(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	m.mouseX = msg.X
	m.mouseY = msg.Y

	switch m.state.CurrentPage {
	case state.PageMenu:
		if msg.Action != tea.MouseActionRelease {
			return m, nil
		}
		for i := range views.MenuOptions {
			if m.zones.Get(views.MenuZoneID(i)).InBounds(msg) {
				m.menuCursor = i
				return m, m.navigateTo(i)
			}
		}
	case state.PageGauge:
		_, cmd := m.ring.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *MainModel) View() string {
	if m.quitting {
		return "Bye!\n"
	}

	props := views.ViewProps{
		Width:      m.width,
		Height:     m.height,
		MouseX:     m.mouseX,
		MouseY:     m.mouseY,
		MenuCursor: m.menuCursor,
		AnimCursor: m.animCursor,
		ScrollY:    m.consoleScrollY,
		Zones:      m.zones,
	}

	switch m.state.CurrentPage {
	case state.PageMenu:
		return views.MenuView{}.Render(m.state, props)
	case state.PageGauge:
		props.RingView = m.ring.View()
		props.ChartView = m.history.View()
		props.RingState = m.ring.State()
		props.Label = m.ring.Label()
		if m.provider != nil && !m.state.HasSample && m.state.Err == nil {
			props.SpinnerView = m.spinner.View()
		}
		return views.GaugeView{}.Render(m.state, props)
	case state.PageConsole:
		return views.ConsoleView{}.Render(m.state, props)
	default:
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			lipgloss.NewStyle().Bold(true).Render("Unknown page\n\nPress 'b' to go back"),
		)
	}
}

// Start runs the demo until the user quits.
func Start(opts Options) error {
	m := InitialModel(opts)
	p := tea.NewProgram(
		m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	_, err := p.Run()
	if !m.quitting {
		m.shutdown()
	}
	return err
}
