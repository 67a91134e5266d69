package app

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"genie/internal/ui/theme"
	ritualview "genie/internal/ui/views/ritual"
)

// ─── key bindings ─────────────────────────────────────────────────────────────

type keyMap struct {
	ritual ritualview.KeyMap
	Help   key.Binding
	Quit   key.Binding
}

func defaultKeys(ritual ritualview.KeyMap) keyMap {
	return keyMap{
		ritual: ritual,
		Help:   key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:   key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.ritual.Continue, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.ritual.Continue, k.ritual.Next, k.ritual.Back},
		{k.Help, k.Quit},
	}
}

// ─── model ───────────────────────────────────────────────────────────────────

// Model is the root Bubble Tea model. It owns quitting, the help overlay
// and the header and status bars; the day itself is rendered by the ritual
// view.
type Model struct {
	ritual   ritualview.Model
	keys     keyMap
	help     help.Model
	showHelp bool
	width    int
	height   int
}

func NewModel(port ritualview.Port, opts ritualview.Options) Model {
	rv := ritualview.New(port, opts)
	return Model{
		ritual: rv,
		keys:   defaultKeys(rv.Keys()),
		help:   help.New(),
	}
}

func (m Model) Init() tea.Cmd {
	return m.ritual.Init()
}

// ─── update ───────────────────────────────────────────────────────────────────

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = m.width
		var cmd tea.Cmd
		m.ritual, cmd = m.ritual.Update(tea.WindowSizeMsg{Width: m.width, Height: m.height - 3})
		return m, cmd

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.showHelp {
			if msg.String() == "?" || msg.String() == "esc" {
				m.showHelp = false
			}
			return m, nil
		}
		// The check-in form gets every key while it is focused.
		if !m.ritual.Typing() {
			switch {
			case key.Matches(msg, m.keys.Quit):
				return m, tea.Quit
			case key.Matches(msg, m.keys.Help):
				m.showHelp = true
				return m, nil
			}
		}
	}

	var cmd tea.Cmd
	m.ritual, cmd = m.ritual.Update(msg)
	return m, cmd
}

// ─── view ────────────────────────────────────────────────────────────────────

func (m Model) View() string {
	header := m.renderHeader()
	statusBar := m.renderStatusBar()
	contentH := m.height - lipgloss.Height(header) - lipgloss.Height(statusBar)
	if contentH < 1 {
		contentH = 1
	}

	var content string
	if m.showHelp {
		content = lipgloss.NewStyle().Width(m.width).Height(contentH).Render(m.help.View(m.keys))
	} else {
		content = lipgloss.Place(m.width, contentH, lipgloss.Center, lipgloss.Center, m.ritual.View())
	}
	return lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar)
}

func (m Model) renderHeader() string {
	state := m.ritual.State()
	parts := []string{theme.Hot.Render("genie")}
	if state.DayKey != "" {
		parts = append(parts, theme.Muted.Render(state.DayKey))
		parts = append(parts, theme.Muted.Render(humanize.Comma(int64(state.ProofCount))+" proofs"))
	}
	bar := strings.Join(parts, theme.Muted.Render(" │ "))
	return lipgloss.NewStyle().Background(theme.Mantle).Width(m.width).Render(bar) + "\n"
}

func (m Model) renderStatusBar() string {
	status, failed := m.ritual.Status()
	left := theme.Muted.Render(status)
	if failed {
		left = theme.Error.Render(status)
	}
	right := m.help.ShortHelpView(m.keys.ShortHelp())
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	bar := left + strings.Repeat(" ", gap) + right
	return "\n" + lipgloss.NewStyle().Background(theme.Mantle).Width(m.width).Render(bar)
}
