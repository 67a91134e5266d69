package ritual

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	ritualdto "genie/internal/modules/ritual/dto"
	apperrors "genie/internal/platform/errors"
	"genie/internal/ui/components"
	"genie/internal/ui/theme"
)

// ─── port ────────────────────────────────────────────────────────────────────

// Port is the minimal interface this view needs from the ritual use-case.
type Port interface {
	Observe(ctx context.Context) (ritualdto.RitualView, error)
	Continue(ctx context.Context) (ritualdto.RitualView, error)
	Next(ctx context.Context) (ritualdto.RitualView, error)
	Back(ctx context.Context) (ritualdto.RitualView, error)
	Submit(ctx context.Context, checkIn string, shiftScore int) (ritualdto.RitualView, error)
}

const (
	stageShock    = "shock"
	stageRitual   = "ritual"
	stageExercise = "exercise"
	stageLocked   = "locked"
)

// ─── messages ────────────────────────────────────────────────────────────────

// LoadedMsg carries the result of one port call. Intent is empty for a
// plain observe.
type LoadedMsg struct {
	Intent string
	View   ritualdto.RitualView
	Err    error
}

// sealDoneMsg fires when the seal delay elapses. A gen that no longer
// matches the model's sealGen is stale and dropped.
type sealDoneMsg struct{ gen int }

type countdownMsg struct{}

// ─── keys ────────────────────────────────────────────────────────────────────

type KeyMap struct {
	Continue key.Binding
	Next     key.Binding
	Back     key.Binding
}

func DefaultKeys() KeyMap {
	return KeyMap{
		Continue: key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "continue / seal")),
		Next:     key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next step")),
		Back:     key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "previous step")),
	}
}

// ─── model ───────────────────────────────────────────────────────────────────

// Options tunes the view. CountdownEvery is how often the day is
// re-observed and defaults to one minute.
type Options struct {
	SealDuration   time.Duration
	CountdownEvery time.Duration
	DisplayName    string
}

// Model renders one ritual day. The store is only touched through Port, and
// every stage shown is one the port has already persisted.
type Model struct {
	port     Port
	opts     Options
	keys     KeyMap
	state    ritualdto.RitualView
	loaded   bool
	// pending is set while any port call, observe included, is in flight.
	// Only one runs at a time, so results land in the order they were asked.
	pending  bool
	sealing  bool
	sealGen  int
	spinner  spinner.Model
	checkIn  components.CheckIn
	renderer *glamour.TermRenderer
	status   string
	failed   bool
	width    int
	height   int
}

func New(port Port, opts Options) Model {
	if opts.CountdownEvery <= 0 {
		opts.CountdownEvery = time.Minute
	}
	sp := spinner.New()
	sp.Spinner = spinner.Moon
	sp.Style = lipgloss.NewStyle().Foreground(theme.Lavender)

	r, _ := glamour.NewTermRenderer(
		glamour.WithStylePath("dark"),
		glamour.WithWordWrap(72),
	)
	return Model{
		port:     port,
		opts:     opts,
		keys:     DefaultKeys(),
		spinner:  sp,
		checkIn:  components.NewCheckIn(),
		renderer: r,
		pending:  true,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.observeCmd(), m.countdownCmd(), m.spinner.Tick)
}

// Typing reports whether the check-in form owns the keyboard.
func (m Model) Typing() bool { return m.checkIn.Focused() }

func (m Model) Keys() KeyMap { return m.keys }

func (m Model) State() ritualdto.RitualView { return m.state }

func (m Model) Status() (string, bool) { return m.status, m.failed }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()

	case LoadedMsg:
		return m.applyLoaded(msg)

	case sealDoneMsg:
		if !m.sealing || msg.gen != m.sealGen {
			return m, nil
		}
		m.sealing = false
		m.pending = true
		return m, m.intentCmd("continue", m.port.Continue)

	case spinner.TickMsg:
		if m.sealing || !m.loaded {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}

	case countdownMsg:
		if m.pending || m.sealing || m.checkIn.Focused() {
			return m, m.countdownCmd()
		}
		m.pending = true
		return m, tea.Batch(m.observeCmd(), m.countdownCmd())

	case components.CheckInSubmitMsg:
		if m.pending {
			return m, nil
		}
		m.pending = true
		return m, m.submitCmd(msg.Text, msg.ShiftScore)

	case components.CheckInCancelMsg:
		m.pending = true
		return m, m.intentCmd("back", m.port.Back)

	case tea.KeyMsg:
		if m.checkIn.Focused() {
			var cmd tea.Cmd
			m.checkIn, cmd = m.checkIn.Update(msg)
			return m, cmd
		}
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if !m.loaded || m.pending || m.sealing {
		return m, nil
	}
	switch m.state.Stage {
	case stageShock:
		if key.Matches(msg, m.keys.Continue) {
			m.pending = true
			return m, m.intentCmd("continue", m.port.Continue)
		}
	case stageRitual:
		if key.Matches(msg, m.keys.Continue) {
			m.sealing = true
			m.sealGen++
			m.status = ""
			return m, tea.Batch(m.spinner.Tick, sealCmd(m.sealGen, m.opts.SealDuration))
		}
	case stageExercise:
		switch {
		case key.Matches(msg, m.keys.Next):
			m.pending = true
			return m, m.intentCmd("next", m.port.Next)
		case key.Matches(msg, m.keys.Back):
			m.pending = true
			return m, m.intentCmd("back", m.port.Back)
		}
	}
	return m, nil
}

func (m Model) applyLoaded(msg LoadedMsg) (Model, tea.Cmd) {
	m.pending = false
	if msg.View.DayKey != "" {
		if m.state.DayKey != "" && m.state.DayKey != msg.View.DayKey {
			// The gate rolled over; anything in flight belongs to yesterday.
			m.sealGen++
			m.sealing = false
			m.checkIn.Close()
			m.status = "a new day has opened"
			m.failed = false
		}
		m.state = msg.View
		m.loaded = true
	}

	var cmd tea.Cmd
	if msg.Err != nil {
		m.status, m.failed = describeErr(msg.Err), true
		if m.state.InCheckIn && !m.state.Done {
			if !m.checkIn.Focused() {
				cmd = m.checkIn.Open(m.state.Exercise.CheckInPrompt)
			}
			m.checkIn.Reject(m.status)
		}
		return m, cmd
	}

	switch {
	case m.state.Done:
		m.checkIn.Close()
		if len(m.state.Warnings) > 0 {
			m.status, m.failed = "sealed, but: "+strings.Join(m.state.Warnings, "; "), true
		} else if msg.Intent == "submit" {
			m.status, m.failed = "sealed. see you at the next gate", false
		}
	case m.state.InCheckIn && !m.checkIn.Focused():
		cmd = m.checkIn.Open(m.state.Exercise.CheckInPrompt)
	}
	if msg.Intent != "" && msg.Intent != "submit" {
		m.status, m.failed = "", false
	}
	return m, cmd
}

func describeErr(err error) string {
	switch {
	case errors.Is(err, apperrors.ErrStorage):
		return "couldn't save, try again"
	case errors.Is(err, apperrors.ErrInvalidInput):
		return strings.TrimPrefix(err.Error(), apperrors.ErrInvalidInput.Error()+": ")
	default:
		return "something went wrong: " + err.Error()
	}
}

// ─── view ────────────────────────────────────────────────────────────────────

func (m Model) View() string {
	if !m.loaded {
		body := m.spinner.View() + " opening today's gate…"
		if m.failed {
			body = theme.Error.Render(m.status)
		}
		return lipgloss.Place(m.width, max(m.height, 1), lipgloss.Center, lipgloss.Center, body)
	}
	var body string
	switch m.state.Stage {
	case stageShock:
		body = m.renderShock()
	case stageRitual:
		body = m.renderRitual()
	case stageExercise:
		body = m.renderExercise()
	case stageLocked:
		body = m.renderLocked()
	}
	pane := theme.Pane
	if m.state.Done {
		pane = theme.PaneSealed
	}
	w := m.width - 4
	if w < 30 {
		w = 72
	}
	return pane.Width(min(w, 84)).Render(body)
}

func (m Model) renderShock() string {
	greeting := "Stop."
	if m.opts.DisplayName != "" {
		greeting = "Stop, " + m.opts.DisplayName + "."
	}
	return strings.Join([]string{
		theme.Hot.Render(greeting),
		"",
		theme.Sigil.Render(m.state.Sigil.Glyph),
		"",
		theme.Line.Render(m.state.Sigil.Line),
		"",
		theme.Muted.Render("enter to step through"),
	}, "\n")
}

func (m Model) renderRitual() string {
	ex := m.state.Exercise
	lines := []string{
		theme.Title.Render("Today's seal"),
		"",
		fmt.Sprintf("%s  %s", theme.Hot.Render(categoryLabel(ex.Category)), ex.Title),
		theme.Muted.Render(fmt.Sprintf("%d steps, then a short check-in", len(ex.Steps))),
		"",
	}
	if m.sealing {
		lines = append(lines, m.spinner.View()+" sealing the intention…")
	} else {
		lines = append(lines, theme.Muted.Render("enter to seal and begin"))
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderExercise() string {
	ex := m.state.Exercise
	header := fmt.Sprintf("%s  %s", theme.Hot.Render(categoryLabel(ex.Category)), theme.Title.Render(ex.Title))
	if m.state.InCheckIn {
		return header + "\n\n" + m.checkIn.View()
	}
	progress := theme.Muted.Render(fmt.Sprintf("step %d of %d", m.state.StepIndex+1, m.state.StepCount))
	return strings.Join([]string{
		header,
		progress,
		m.renderStep(m.state.StepText),
		theme.Muted.Render("←/→ move between steps"),
	}, "\n")
}

func (m Model) renderLocked() string {
	s := m.state
	lines := []string{
		theme.Ok.Render("Sealed for today"),
		"",
		fmt.Sprintf("%s  %s", theme.Hot.Render(categoryLabel(s.Exercise.Category)), s.Exercise.Title),
	}
	if s.CheckIn != "" {
		lines = append(lines, theme.Line.Render("“"+s.CheckIn+"”"))
	}
	if s.ShiftScore > 0 {
		lines = append(lines, theme.Muted.Render(fmt.Sprintf("shift %d/10", s.ShiftScore)))
	}
	if !s.FinishedAt.IsZero() {
		lines = append(lines, theme.Muted.Render("sealed "+humanize.Time(s.FinishedAt)))
	}
	lines = append(lines,
		"",
		fmt.Sprintf("next gate opens in %s", countdown(s.Remaining)),
		theme.Muted.Render(humanize.Comma(int64(s.ProofCount))+" proofs so far"),
	)
	return strings.Join(lines, "\n")
}

func (m Model) renderStep(text string) string {
	if m.renderer != nil {
		if rendered, err := m.renderer.Render(text); err == nil {
			return rendered
		}
	}
	return "\n" + text + "\n"
}

func countdown(r ritualdto.Remaining) string {
	if r.Hours == 0 {
		return fmt.Sprintf("%dm", r.Minutes)
	}
	return fmt.Sprintf("%dh %02dm", r.Hours, r.Minutes)
}

func categoryLabel(category string) string {
	if category == "" {
		return ""
	}
	return strings.ToUpper(category[:1]) + category[1:]
}

// ─── private ─────────────────────────────────────────────────────────────────

func (m *Model) resize() {
	m.checkIn.SetWidth(min(m.width-8, 80))
	wrap := min(m.width-12, 76)
	if wrap < 20 {
		return
	}
	if r, err := glamour.NewTermRenderer(
		glamour.WithStylePath("dark"),
		glamour.WithWordWrap(wrap),
	); err == nil {
		m.renderer = r
	}
}

func (m Model) observeCmd() tea.Cmd {
	return func() tea.Msg {
		view, err := m.port.Observe(context.Background())
		return LoadedMsg{View: view, Err: err}
	}
}

func (m Model) intentCmd(intent string, call func(context.Context) (ritualdto.RitualView, error)) tea.Cmd {
	return func() tea.Msg {
		view, err := call(context.Background())
		return LoadedMsg{Intent: intent, View: view, Err: err}
	}
}

func (m Model) submitCmd(text string, score int) tea.Cmd {
	return func() tea.Msg {
		view, err := m.port.Submit(context.Background(), text, score)
		return LoadedMsg{Intent: "submit", View: view, Err: err}
	}
}

func (m Model) countdownCmd() tea.Cmd {
	return tea.Tick(m.opts.CountdownEvery, func(time.Time) tea.Msg { return countdownMsg{} })
}

func sealCmd(gen int, d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg { return sealDoneMsg{gen: gen} })
}
