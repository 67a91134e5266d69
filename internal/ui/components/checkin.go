package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"genie/internal/ui/theme"
)

const (
	minShiftScore     = 1
	maxShiftScore     = 10
	defaultShiftScore = 8
)

// CheckInSubmitMsg is emitted when the user confirms the check-in.
type CheckInSubmitMsg struct {
	Text       string
	ShiftScore int
}

// CheckInCancelMsg is emitted when the user presses esc.
type CheckInCancelMsg struct{}

var (
	formStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(theme.Peach).
			Background(theme.Mantle).
			Foreground(theme.Text).
			Padding(0, 1)

	hintStyle = lipgloss.NewStyle().Foreground(theme.Subtext0)
)

// CheckIn is the end-of-exercise form: one line of text and a shift score.
type CheckIn struct {
	input   textinput.Model
	score   int
	prompt  string
	invalid string
	focused bool
	width   int
}

func NewCheckIn() CheckIn {
	ti := textinput.New()
	ti.Placeholder = "what shifted?"
	ti.CharLimit = 280
	return CheckIn{input: ti, score: defaultShiftScore}
}

func (c CheckIn) Focused() bool { return c.focused }

func (c CheckIn) Score() int { return c.score }

func (c CheckIn) Value() string { return c.input.Value() }

// Open focuses the form with an empty answer and the default score.
func (c *CheckIn) Open(prompt string) tea.Cmd {
	c.focused = true
	c.prompt = prompt
	c.invalid = ""
	c.score = defaultShiftScore
	c.input.SetValue("")
	return c.input.Focus()
}

func (c *CheckIn) Close() {
	c.focused = false
	c.input.Blur()
}

// Reject keeps the typed answer and shows why it was refused.
func (c *CheckIn) Reject(reason string) {
	c.invalid = reason
}

func (c *CheckIn) SetWidth(w int) { c.width = w }

func (c CheckIn) Update(msg tea.Msg) (CheckIn, tea.Cmd) {
	if !c.focused {
		return c, nil
	}
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "esc":
			c.Close()
			return c, func() tea.Msg { return CheckInCancelMsg{} }
		case "up":
			if c.score < maxShiftScore {
				c.score++
			}
			return c, nil
		case "down":
			if c.score > minShiftScore {
				c.score--
			}
			return c, nil
		case "enter":
			text := strings.TrimSpace(c.input.Value())
			if text == "" {
				c.invalid = "write a few words first"
				return c, nil
			}
			c.invalid = ""
			score := c.score
			return c, func() tea.Msg { return CheckInSubmitMsg{Text: text, ShiftScore: score} }
		}
	}
	var cmd tea.Cmd
	c.input, cmd = c.input.Update(msg)
	return c, cmd
}

func (c CheckIn) View() string {
	var sb strings.Builder
	sb.WriteString(theme.Title.Render("Check-in") + "\n")
	if c.prompt != "" {
		sb.WriteString(theme.Muted.Render(c.prompt) + "\n\n")
	}
	sb.WriteString("> " + c.input.View() + "\n\n")
	sb.WriteString(fmt.Sprintf("shift %s %2d/10\n", scoreBar(c.score), c.score))
	if c.invalid != "" {
		sb.WriteString(theme.Hot.Render(c.invalid) + "\n")
	}
	sb.WriteString(hintStyle.Render("↑/↓ score  enter seal  esc back"))

	w := c.width
	if w < 20 {
		w = 64
	}
	return formStyle.Width(w - 2).Render(sb.String())
}

func scoreBar(score int) string {
	return theme.Hot.Render(strings.Repeat("●", score)) + theme.Muted.Render(strings.Repeat("○", maxShiftScore-score))
}
