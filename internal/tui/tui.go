// Package tui provides a Bubble Tea terminal user interface for aiffmerge.
package tui

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"aiffmerge/internal/config"
	"aiffmerge/internal/merge"
)

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

	albumStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F8B500"))
)

// State represents the current UI state.
type State int

const (
	StatePlanning State = iota
	StateReview
	StateTagging
	StateComplete
	StateError
)

// LogEntry represents a log message in the UI.
type LogEntry struct {
	Message string
	Level   merge.ProgressLevel
}

// Model is the Bubble Tea model for the TUI.
type Model struct {
	state    State
	spinner  spinner.Model
	progress progress.Model
	settings *config.Settings
	opts     merge.Options
	logs     []LogEntry
	err      error

	// Run context
	ctx    context.Context
	cancel context.CancelFunc

	// Merge manager reference
	manager *merge.Manager
	plan    *merge.Plan
	events  chan merge.ProgressEvent

	// Write progress
	totalFiles   int32
	writtenFiles int32

	verbose bool

	width  int
	height int
}

// NewModel creates a new TUI model.
func NewModel(settings *config.Settings, opts merge.Options, verbose bool) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B"))

	prog := progress.New(progress.WithDefaultGradient())
	prog.Width = 50

	ctx, cancel := context.WithCancel(context.Background())

	events := make(chan merge.ProgressEvent, 256)
	manager := merge.NewManager(settings, opts, func(event merge.ProgressEvent) {
		select {
		case events <- event:
		default:
			// A stalled UI must never block the writer.
		}
	})

	return Model{
		state:    StatePlanning,
		spinner:  sp,
		progress: prog,
		settings: settings,
		opts:     opts,
		logs:     make([]LogEntry, 0),
		ctx:      ctx,
		cancel:   cancel,
		manager:  manager,
		events:   events,
		verbose:  verbose,
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.startPlanning(), m.listenEvents())
}

// Message types
type (
	// ProgressMsg is sent when a progress event arrives from the manager.
	ProgressMsg struct {
		Event merge.ProgressEvent
	}

	// PlanDoneMsg is sent when planning completes.
	PlanDoneMsg struct {
		Plan *merge.Plan
		Err  error
	}

	// TagDoneMsg is sent when all files have been written.
	TagDoneMsg struct {
		Written int32
		Total   int32
		Err     error
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
			if m.state == StateReview {
				return m, tea.Quit
			}
			if m.state == StatePlanning || m.state == StateTagging {
				m.cancel()
				m.state = StateError
				m.err = fmt.Errorf("cancelled by user")
			}

		case "enter":
			if m.state == StateReview {
				m.state = StateTagging
				return m, tea.Batch(m.startTagging(), m.tickProgress())
			}

		case "v":
			if m.state == StateReview {
				m.verbose = !m.verbose
			}

		case "q":
			if m.state == StateReview || m.state == StateComplete || m.state == StateError {
				return m, tea.Quit
			}
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)

	case ProgressMsg:
		// Filter verbose messages if not in verbose mode
		if msg.Event.Level != merge.LevelVerbose || m.verbose {
			m.logs = append(m.logs, LogEntry{
				Message: msg.Event.Message,
				Level:   msg.Event.Level,
			})
			// Keep only last 10 logs
			if len(m.logs) > 10 {
				m.logs = m.logs[len(m.logs)-10:]
			}
		}
		cmds = append(cmds, m.listenEvents())

	case PlanDoneMsg:
		if msg.Err != nil {
			m.state = StateError
			m.err = msg.Err
		} else {
			m.plan = msg.Plan
			m.totalFiles = int32(len(msg.Plan.Tracks))
			m.state = StateReview
		}

	case TagDoneMsg:
		m.writtenFiles = msg.Written
		m.totalFiles = msg.Total
		if msg.Err != nil && m.ctx.Err() == nil {
			m.state = StateError
			m.err = msg.Err
		} else if m.ctx.Err() != nil {
			m.state = StateError
			m.err = fmt.Errorf("cancelled by user")
		} else {
			m.state = StateComplete
		}

	case TickMsg:
		// Update progress from manager
		if m.manager != nil && m.state == StateTagging {
			written, total := m.manager.GetProgress()
			m.writtenFiles = written
			m.totalFiles = total

			var percent float64
			if total > 0 {
				percent = float64(written) / float64(total)
			}
			progressCmd := m.progress.SetPercent(percent)
			cmds = append(cmds, progressCmd, m.tickProgress())
		}

	case progress.FrameMsg:
		progressModel, cmd := m.progress.Update(msg)
		m.progress = progressModel.(progress.Model)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// tickProgress returns a command to tick progress updates.
func (m Model) tickProgress() tea.Cmd {
	return tea.Tick(200*time.Millisecond, func(_ time.Time) tea.Msg {
		return TickMsg{}
	})
}

// listenEvents waits for the next manager progress event.
func (m Model) listenEvents() tea.Cmd {
	return func() tea.Msg {
		event, ok := <-m.events
		if !ok {
			return nil
		}
		return ProgressMsg{Event: event}
	}
}

// View renders the UI.
func (m Model) View() string {
	var b strings.Builder

	// Header
	b.WriteString(titleStyle.Render("🎵 AIFF Merge"))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Tag folders of AIFF files as one album"))
	b.WriteString("\n\n")

	switch m.state {
	case StatePlanning:
		b.WriteString(m.viewPlanning())
	case StateReview:
		b.WriteString(m.viewReview())
	case StateTagging:
		b.WriteString(m.viewTagging())
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

func (m Model) viewPlanning() string {
	var b strings.Builder

	b.WriteString(m.spinner.View())
	b.WriteString(" ")
	b.WriteString(subtitleStyle.Render("Scanning folders..."))
	b.WriteString("\n\n")

	b.WriteString(m.renderLogs())

	return b.String()
}

func (m Model) viewReview() string {
	var b strings.Builder

	b.WriteString(albumStyle.Render(fmt.Sprintf("♪ %s", m.plan.Album.Title())))
	b.WriteString("\n\n")

	discs := make(map[int]int)
	for _, track := range m.plan.Tracks {
		discs[track.DiscNumber]++
	}
	b.WriteString(successStyle.Render(fmt.Sprintf("%d files across %d disc(s):", len(m.plan.Tracks), len(discs))))
	b.WriteString("\n")

	// One line per disc, in folder order.
	seen := make(map[int]bool)
	for _, track := range m.plan.Tracks {
		if seen[track.DiscNumber] {
			continue
		}
		seen[track.DiscNumber] = true
		b.WriteString(infoStyle.Render(fmt.Sprintf("  disc %d: %s (%d files)",
			track.DiscNumber, track.Folder, discs[track.DiscNumber])))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if m.plan.Cover != nil {
		b.WriteString(dimStyle.Render(fmt.Sprintf("Cover: %s (%s)",
			filepath.Base(m.opts.CoverPath), m.plan.Cover.MIMEType)))
		b.WriteString("\n")
	}

	verboseCheck := "[ ]"
	if m.verbose {
		verboseCheck = "[×]"
	}
	b.WriteString(fmt.Sprintf("  %s Verbose output (v)\n", verboseCheck))
	b.WriteString("\n")

	b.WriteString(m.renderLogs())

	return b.String()
}

func (m Model) viewTagging() string {
	var b strings.Builder

	var percent float64
	if m.totalFiles > 0 {
		percent = float64(m.writtenFiles) / float64(m.totalFiles)
	}
	b.WriteString(m.progress.ViewAs(percent))
	b.WriteString("\n")

	b.WriteString(infoStyle.Render(fmt.Sprintf("Files: %d/%d", m.writtenFiles, m.totalFiles)))
	b.WriteString("\n\n")

	b.WriteString(m.renderLogs())

	return b.String()
}

func (m Model) viewComplete() string {
	var b strings.Builder

	box := boxStyle.Render(fmt.Sprintf(
		"✨ Tagging Complete!\n\n"+
			"Album: %s\n"+
			"Files: %d",
		m.plan.Album.Title(),
		m.writtenFiles,
	))
	b.WriteString(box)

	return b.String()
}

func (m Model) viewError() string {
	var b strings.Builder

	b.WriteString(errorStyle.Render("❌ Error occurred:"))
	b.WriteString("\n\n")
	if m.err != nil {
		b.WriteString(fmt.Sprintf("  %s", m.err.Error()))
	}

	return b.String()
}

func (m Model) renderLogs() string {
	var b strings.Builder

	for _, log := range m.logs {
		var style lipgloss.Style
		prefix := "•"
		switch log.Level {
		case merge.LevelError:
			style = errorStyle
			prefix = "✗"
		case merge.LevelWarning:
			style = warningStyle
			prefix = "!"
		case merge.LevelSuccess:
			style = successStyle
			prefix = "✓"
		case merge.LevelInfo:
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
	case StatePlanning:
		return "esc: cancel"
	case StateReview:
		return "enter: write tags • v: verbose • esc: quit"
	case StateTagging:
		return "esc: cancel"
	case StateComplete, StateError:
		return "q: quit"
	}
	return ""
}

// startPlanning resolves folders and builds the write plan in background.
func (m *Model) startPlanning() tea.Cmd {
	return func() tea.Msg {
		plan, err := m.manager.Plan(m.ctx)
		return PlanDoneMsg{Plan: plan, Err: err}
	}
}

// startTagging writes the planned tags in background.
func (m *Model) startTagging() tea.Cmd {
	return func() tea.Msg {
		err := m.manager.Run(m.ctx, nil)
		written, total := m.manager.GetProgress()

		return TagDoneMsg{
			Written: written,
			Total:   total,
			Err:     err,
		}
	}
}

// Run starts the TUI application.
func Run(settings *config.Settings, opts merge.Options, verbose bool) error {
	p := tea.NewProgram(NewModel(settings, opts, verbose), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
