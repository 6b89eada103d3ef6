package ui

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// ShouldPage reports whether the table should go through the pager: only
// when stdout is a terminal and the job count exceeds the threshold.
func ShouldPage(jobs, threshold int) bool {
	return jobs > threshold && term.IsTerminal(int(os.Stdout.Fd()))
}

// Page displays the rendered table in a scrolling viewport until the user
// quits or the context is cancelled.
func Page(ctx context.Context, content string) error {
	model := newPagerModel(content)
	program := tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("run pager: %w", err)
	}
	return nil
}

// pagerKeyMap defines the keyboard bindings for the pager.
type pagerKeyMap struct {
	Quit     key.Binding
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Top      key.Binding
	Bottom   key.Binding
}

func defaultPagerKeyMap() pagerKeyMap {
	return pagerKeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "Quit"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "Scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "Scroll down"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup", "b"),
			key.WithHelp("pgup/b", "Page up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown", "space", "f"),
			key.WithHelp("pgdn/f", "Page down"),
		),
		Top: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("g", "Top"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("G", "end"),
			key.WithHelp("G", "Bottom"),
		),
	}
}

var footerStyle = lipgloss.NewStyle().Faint(true)

// pagerModel is the Bubble Tea model for the scrolling report view.
type pagerModel struct {
	viewport viewport.Model
	keys     pagerKeyMap
	content  string
	ready    bool
}

func newPagerModel(content string) pagerModel {
	return pagerModel{
		keys:    defaultPagerKeyMap(),
		content: content,
	}
}

// Init implements tea.Model.
func (m pagerModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m pagerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Up):
			m.viewport.ScrollUp(1)
		case key.Matches(msg, m.keys.Down):
			m.viewport.ScrollDown(1)
		case key.Matches(msg, m.keys.PageUp):
			m.viewport.PageUp()
		case key.Matches(msg, m.keys.PageDown):
			m.viewport.PageDown()
		case key.Matches(msg, m.keys.Top):
			m.viewport.GotoTop()
		case key.Matches(msg, m.keys.Bottom):
			m.viewport.GotoBottom()
		}
		return m, nil

	case tea.WindowSizeMsg:
		footerHeight := 1
		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-footerHeight)
			m.viewport.SetContent(m.content)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - footerHeight
		}
		return m, nil
	}
	return m, nil
}

// View implements tea.Model.
func (m pagerModel) View() string {
	if !m.ready {
		return "Loading..."
	}
	return m.viewport.View() + "\n" + m.footerLine()
}

func (m pagerModel) footerLine() string {
	percent := fmt.Sprintf("%3.0f%%", m.viewport.ScrollPercent()*100)
	hint := "q quit · j/k scroll · g/G top/bottom"
	gap := m.viewport.Width - len(percent) - len(hint)
	if gap < 1 {
		gap = 1
	}
	return footerStyle.Render(hint + strings.Repeat(" ", gap) + percent)
}
