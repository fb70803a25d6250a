// Package tui provides a Bubble Tea terminal user interface for the page
// generator.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/handiism/musicgenres/internal/build"
	"github.com/handiism/musicgenres/internal/catalog"
	"github.com/handiism/musicgenres/internal/config"
	"github.com/handiism/musicgenres/internal/render"
)

// ConfigFile is read from the working directory when the TUI starts.
const ConfigFile = "artistgen.yaml"

// Styles for the TUI
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF6B6B")).
			MarginBottom(1)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4ECDC4"))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#95E1A3"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFE66D"))

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A8DADC"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C757D"))

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#4ECDC4")).
			Padding(1, 2)

	genreStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F8B500"))
)

// modes is the order the html mode option cycles through.
var modes = []render.Mode{render.ModeEscape, render.ModeSanitize, render.ModeRaw}

// maxLogs is the number of log lines kept on screen.
const maxLogs = 10

// State represents the current UI state.
type State int

const (
	StateReady State = iota
	StateGenerating
	StateComplete
	StateError
)

// LogEntry represents a log message in the UI.
type LogEntry struct {
	Message string
	Level   build.ProgressLevel
}

// Model is the Bubble Tea model for the TUI.
type Model struct {
	state    State
	spinner  spinner.Model
	progress progress.Model
	settings *config.Settings
	catalog  catalog.Catalog
	logs     []LogEntry
	result   *build.Result
	err      error

	ctx    context.Context
	cancel context.CancelFunc

	builder *build.Builder
	events  chan build.ProgressEvent

	// Options
	dryRun  bool
	verbose bool
	modeIdx int

	width  int
	height int
}

// NewModel creates a new TUI model for the given settings and catalog.
func NewModel(settings *config.Settings, cat catalog.Catalog) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B"))

	prog := progress.New(progress.WithDefaultGradient())
	prog.Width = 50

	ctx, cancel := context.WithCancel(context.Background())

	modeIdx := 0
	for i, m := range modes {
		if m == settings.Mode() {
			modeIdx = i
		}
	}

	return Model{
		state:    StateReady,
		spinner:  sp,
		progress: prog,
		settings: settings,
		catalog:  cat,
		logs:     make([]LogEntry, 0),
		ctx:      ctx,
		cancel:   cancel,
		modeIdx:  modeIdx,
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return m.spinner.Tick
}

// Message types
type (
	// ProgressMsg carries one builder progress event.
	ProgressMsg struct {
		Event build.ProgressEvent
	}

	// eventsClosedMsg is sent once the builder's event channel is drained.
	eventsClosedMsg struct{}

	// BuildDoneMsg is sent when the run finishes.
	BuildDoneMsg struct {
		Result *build.Result
		Err    error
	}

	// TickMsg is for periodic progress updates.
	TickMsg struct{}
)

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.progress.Width = msg.Width - 20
		if m.progress.Width > 80 {
			m.progress.Width = 80
		}
		if m.progress.Width < 20 {
			m.progress.Width = 20
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.cancel()
			return m, tea.Quit

		case "esc":
			if m.state == StateReady {
				return m, tea.Quit
			}
			if m.state == StateGenerating {
				m.cancel()
			}

		case "enter":
			if m.state == StateReady {
				m.state = StateGenerating
				m.settings.HTMLMode = modes[m.modeIdx].String()
				m.events = make(chan build.ProgressEvent, 64)
				m.builder = build.NewBuilder(m.settings, m.catalog, m.sendEvent(m.events))
				m.builder.SetDryRun(m.dryRun)
				return m, tea.Batch(
					m.runBuild(m.builder, m.events),
					waitForEvent(m.events),
					tickProgress(),
				)
			}

		case "d":
			if m.state == StateReady {
				m.dryRun = !m.dryRun
			}

		case "h":
			if m.state == StateReady {
				m.modeIdx = (m.modeIdx + 1) % len(modes)
			}

		case "v":
			if m.state == StateReady {
				m.verbose = !m.verbose
			}

		case "q":
			if m.state == StateComplete || m.state == StateError {
				return m, tea.Quit
			}

		case "r":
			if m.state == StateComplete || m.state == StateError {
				m.state = StateReady
				m.logs = nil
				m.result = nil
				m.err = nil
				m.builder = nil
				m.events = nil
				m.ctx, m.cancel = context.WithCancel(context.Background())
				cmds = append(cmds, m.progress.SetPercent(0))
			}
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)

	case ProgressMsg:
		if msg.Event.Level != build.LevelVerbose || m.verbose {
			m.logs = append(m.logs, LogEntry{
				Message: msg.Event.Message,
				Level:   msg.Event.Level,
			})
			if len(m.logs) > maxLogs {
				m.logs = m.logs[len(m.logs)-maxLogs:]
			}
		}
		cmds = append(cmds, waitForEvent(m.events))

	case eventsClosedMsg:
		// Nothing left to read.

	case BuildDoneMsg:
		m.result = msg.Result
		switch {
		case m.ctx.Err() != nil:
			m.state = StateError
			m.err = fmt.Errorf("cancelled by user")
		case msg.Err != nil:
			m.state = StateError
			m.err = msg.Err
		default:
			m.state = StateComplete
			cmds = append(cmds, m.progress.SetPercent(1))
		}

	case TickMsg:
		if m.builder != nil && m.state == StateGenerating {
			done, total := m.builder.GetProgress()
			var percent float64
			if total > 0 {
				percent = float64(done) / float64(total)
			}
			cmds = append(cmds, m.progress.SetPercent(percent), tickProgress())
		}

	case progress.FrameMsg:
		progressModel, cmd := m.progress.Update(msg)
		m.progress = progressModel.(progress.Model)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// View renders the UI.
func (m Model) View() string {
	var b strings.Builder

	// Header
	b.WriteString(titleStyle.Render("🎵 MusicGenres"))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Generate artist pages"))
	b.WriteString("\n\n")

	switch m.state {
	case StateReady:
		b.WriteString(m.viewReady())
	case StateGenerating:
		b.WriteString(m.viewGenerating())
	case StateComplete:
		b.WriteString(m.viewComplete())
	case StateError:
		b.WriteString(m.viewError())
	}

	// Footer
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.getHelpText()))

	return b.String()
}

func (m Model) viewReady() string {
	var b strings.Builder

	b.WriteString(subtitleStyle.Render(fmt.Sprintf("Catalog: %d genres, %d artists", len(m.catalog), m.catalog.Len())))
	b.WriteString("\n\n")
	for _, g := range m.catalog {
		b.WriteString(genreStyle.Render(fmt.Sprintf("  ♪ %s", g.Name)))
		b.WriteString(dimStyle.Render(fmt.Sprintf(" (%d)", len(g.Artists))))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(infoStyle.Render("Options:"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  %s Dry run (d)\n", checkbox(m.dryRun)))
	b.WriteString(fmt.Sprintf("  %s Verbose output (v)\n", checkbox(m.verbose)))
	b.WriteString(fmt.Sprintf("  HTML mode: %s (h)\n", modes[m.modeIdx]))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf("Data file: %s", m.settings.DataFile)))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf("Output: %s", m.settings.OutputDir)))
	b.WriteString("\n")

	return b.String()
}

func (m Model) viewGenerating() string {
	var b strings.Builder

	b.WriteString(m.spinner.View())
	b.WriteString(" ")
	b.WriteString(subtitleStyle.Render("Generating pages..."))
	b.WriteString("\n\n")

	var done, total int32
	if m.builder != nil {
		done, total = m.builder.GetProgress()
	}
	b.WriteString(m.progress.View())
	b.WriteString("\n")
	b.WriteString(infoStyle.Render(fmt.Sprintf("Pages: %d/%d", done, total)))
	b.WriteString("\n\n")

	b.WriteString(m.renderLogs())

	return b.String()
}

func (m Model) viewComplete() string {
	var b strings.Builder

	var pages, written, images, collisions int
	out := m.settings.OutputDir
	if m.result != nil {
		pages, written, images, collisions = m.result.Pages, m.result.Written, m.result.Images, m.result.Collisions
		out = m.result.OutputDir
	}

	title := "✨ Generation Complete!"
	if m.dryRun {
		title = "✨ Dry Run Complete!"
	}
	box := boxStyle.Render(fmt.Sprintf(
		"%s\n\n"+
			"Pages: %d\n"+
			"Written: %d\n"+
			"Images: %d\n"+
			"Slug collisions: %d\n"+
			"Output: %s",
		title, pages, written, images, collisions, out,
	))
	b.WriteString(box)
	b.WriteString("\n\n")
	b.WriteString(m.renderLogs())

	return b.String()
}

func (m Model) viewError() string {
	var b strings.Builder

	b.WriteString(errorStyle.Render("❌ Error occurred:"))
	b.WriteString("\n\n")
	if m.err != nil {
		b.WriteString(fmt.Sprintf("  %s", m.err.Error()))
	}
	b.WriteString("\n\n")
	b.WriteString(m.renderLogs())

	return b.String()
}

func (m Model) renderLogs() string {
	var b strings.Builder

	for _, log := range m.logs {
		var style lipgloss.Style
		prefix := "•"
		switch log.Level {
		case build.LevelError:
			style = errorStyle
			prefix = "✗"
		case build.LevelWarning:
			style = warningStyle
			prefix = "!"
		case build.LevelSuccess:
			style = successStyle
			prefix = "✓"
		case build.LevelInfo:
			style = infoStyle
			prefix = "›"
		default:
			style = dimStyle
		}
		b.WriteString(style.Render(prefix + " " + log.Message))
		b.WriteString("\n")
	}

	return b.String()
}

func (m Model) getHelpText() string {
	switch m.state {
	case StateReady:
		return "enter: generate • d: dry run • h: html mode • v: verbose • esc: quit"
	case StateGenerating:
		return "esc: cancel"
	case StateComplete, StateError:
		return "r: run again • q: quit"
	}
	return ""
}

func checkbox(on bool) string {
	if on {
		return "[×]"
	}
	return "[ ]"
}

// sendEvent returns the builder callback feeding events into ch.
func (m Model) sendEvent(ch chan<- build.ProgressEvent) func(build.ProgressEvent) {
	ctx := m.ctx
	return func(event build.ProgressEvent) {
		select {
		case ch <- event:
		case <-ctx.Done():
		}
	}
}

// runBuild initializes the builder and runs it in the background. The
// event channel is closed when the run returns.
func (m Model) runBuild(b *build.Builder, events chan build.ProgressEvent) tea.Cmd {
	ctx := m.ctx
	return func() tea.Msg {
		defer close(events)

		if err := b.Initialize(ctx); err != nil {
			return BuildDoneMsg{Err: err}
		}
		result, err := b.Run(ctx)
		return BuildDoneMsg{Result: result, Err: err}
	}
}

// waitForEvent reads the next builder event.
func waitForEvent(ch <-chan build.ProgressEvent) tea.Cmd {
	return func() tea.Msg {
		event, ok := <-ch
		if !ok {
			return eventsClosedMsg{}
		}
		return ProgressMsg{Event: event}
	}
}

func tickProgress() tea.Cmd {
	return tea.Tick(100*time.Millisecond, func(time.Time) tea.Msg {
		return TickMsg{}
	})
}

// Run loads ConfigFile (defaults when absent) and the catalog, then
// starts the TUI application.
func Run() error {
	settings, err := config.Load(ConfigFile)
	if err != nil {
		return err
	}
	cat, err := build.LoadCatalog(settings)
	if err != nil {
		return err
	}

	p := tea.NewProgram(NewModel(settings, cat), tea.WithAltScreen())
	_, err = p.Run()
	return err
}
