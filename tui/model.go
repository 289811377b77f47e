// Package tui is the interactive terminal player for narrate stories,
// built the way the teacher's bubbletea package structures its chat UI:
// a viewport for scrolled-back output, a status line, and a bottom input
// area — simplified here because a story turn is synchronous (no
// streaming channels, no cancellable goroutine per turn).
package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/stringhandler/narrate"
	"github.com/stringhandler/narrate/markdown"
)

var _ tea.Model = Model{}

// debugSink is the narrow collaborator the player logs /goto navigation
// through. *diag.Sink satisfies it structurally; New substitutes a no-op
// when given nil.
type debugSink interface {
	Debugf(format string, args ...any)
}

type noopSink struct{}

func (noopSink) Debugf(string, ...any) {}

// Model is the Bubble Tea model driving one play session.
type Model struct {
	Viewport viewport.Model
	GotoBar  textarea.Model

	story  *narrate.Story
	sink   debugSink
	styles Styles

	prompt narrate.Prompt
	err    error

	gotoActive   bool
	windowHeight int
	ready        bool
}

// New creates a player Model for story, starts it, and — if startAddr is
// non-empty — jumps there immediately. sink may be nil, in which case
// /goto navigation is not logged.
//
// Starting here rather than in Init is deliberate: tea.Model.Init returns
// only a tea.Cmd, not an updated Model, so there is nowhere else to stash
// the opening Prompt before the Bubble Tea event loop takes over.
func New(story *narrate.Story, sink debugSink, startAddr string) Model {
	if sink == nil {
		sink = noopSink{}
	}
	bar := textarea.New()
	bar.Placeholder = "knot.stitch"
	bar.ShowLineNumbers = false
	bar.SetHeight(1)

	m := Model{
		GotoBar: bar,
		story:   story,
		sink:    sink,
		styles:  NewStyles(),
	}
	m.prompt, m.err = story.Start()
	if m.err == nil && startAddr != "" {
		m.prompt, m.err = story.MoveTo(startAddr)
	}
	return m
}

// Init implements tea.Model. Start-time work already happened in New.
func (m Model) Init() tea.Cmd { return nil }

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg), nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.Viewport, cmd = m.Viewport.Update(msg)
	return m, cmd
}

func (m Model) handleWindowSize(msg tea.WindowSizeMsg) Model {
	m.windowHeight = msg.Height
	const barHeight = 3 // separator + status line + goto bar
	vpHeight := msg.Height - barHeight
	if vpHeight < 1 {
		vpHeight = 1
	}

	if !m.ready {
		m.Viewport = viewport.New(msg.Width, vpHeight)
		m.ready = true
	} else {
		m.Viewport.Width = msg.Width
		m.Viewport.Height = vpHeight
	}
	m.GotoBar.SetWidth(msg.Width)
	m.Viewport.SetContent(m.renderContent())
	m.Viewport.GotoBottom()
	return m
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.gotoActive {
		return m.handleGotoKey(msg)
	}

	switch msg.Type {
	case tea.KeyCtrlC:
		return m, tea.Quit
	case tea.KeyRunes:
		if len(msg.Runes) == 1 && msg.Runes[0] == 'g' {
			m.gotoActive = true
			m.GotoBar.Focus()
			return m, nil
		}
		if len(msg.Runes) == 1 && msg.Runes[0] == 'q' {
			return m, tea.Quit
		}
		if n, ok := parseDigit(msg.Runes); ok {
			return m.selectChoice(n)
		}
	case tea.KeyEnter:
		if m.prompt.Done {
			return m, tea.Quit
		}
		if len(m.prompt.Choices) == 0 {
			return m.advance(func() (narrate.Prompt, error) { return m.story.Resume() })
		}
	}

	var cmd tea.Cmd
	m.Viewport, cmd = m.Viewport.Update(msg)
	return m, cmd
}

func (m Model) handleGotoKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.gotoActive = false
		m.GotoBar.Blur()
		m.GotoBar.SetValue("")
		return m, nil
	case tea.KeyEnter:
		target := strings.TrimSpace(m.GotoBar.Value())
		m.gotoActive = false
		m.GotoBar.Blur()
		m.GotoBar.SetValue("")
		if target == "" {
			return m, nil
		}
		m.sink.Debugf("goto %s", target)
		return m.advance(func() (narrate.Prompt, error) { return m.story.MoveTo(target) })
	}

	var cmd tea.Cmd
	m.GotoBar, cmd = m.GotoBar.Update(msg)
	return m, cmd
}

// selectChoice records the n-th (1-indexed) presented choice and resumes.
func (m Model) selectChoice(n int) (tea.Model, tea.Cmd) {
	if n < 1 || n > len(m.prompt.Choices) {
		return m, nil
	}
	choice := m.prompt.Choices[n-1]
	if err := m.story.MakeChoice(choice.Index); err != nil {
		m.err = err
		return m, nil
	}
	return m.advance(func() (narrate.Prompt, error) { return m.story.Resume() })
}

func (m Model) advance(step func() (narrate.Prompt, error)) (tea.Model, tea.Cmd) {
	prompt, err := step()
	m.prompt = prompt
	m.err = err
	m.Viewport.SetContent(m.renderContent())
	m.Viewport.GotoBottom()
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	sep := strings.Repeat("─", m.Viewport.Width)

	var b strings.Builder
	b.WriteString(m.Viewport.View())
	b.WriteString("\n")
	b.WriteString(sep)
	b.WriteString("\n")
	b.WriteString(m.statusLine())
	b.WriteString("\n")

	if m.gotoActive {
		b.WriteString(m.GotoBar.View())
	}

	return b.String()
}

func (m Model) renderContent() string {
	var b strings.Builder
	for _, line := range m.prompt.Lines {
		b.WriteString(markdown.Render(line.Text, m.Viewport.Width))
	}
	if m.prompt.Done {
		b.WriteString("\n")
		b.WriteString(m.styles.Muted.Render("— end —"))
	} else {
		for i, c := range m.prompt.Choices {
			num := m.styles.ChoiceNum.Render(strconv.Itoa(i + 1) + ".")
			b.WriteString(fmt.Sprintf("\n%s %s", num, m.styles.Choice.Render(c.Text)))
		}
	}
	return b.String()
}

func (m Model) statusLine() string {
	if m.err != nil {
		return m.styles.Error.Render(fmt.Sprintf("error: %v", m.err))
	}
	if m.prompt.Done {
		return m.styles.Muted.Render("story finished — press enter to quit")
	}
	if len(m.prompt.Choices) > 0 {
		return m.styles.Muted.Render("choose a number, or press g to jump to an address")
	}
	return m.styles.Muted.Render("press enter to continue, or g to jump to an address")
}

func parseDigit(runes []rune) (int, bool) {
	if len(runes) != 1 || runes[0] < '1' || runes[0] > '9' {
		return 0, false
	}
	return int(runes[0] - '0'), true
}
