// Package preview shows a formatted message in a scrollable terminal view.
package preview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/insomnimus/chatmark/ast"
	"github.com/insomnimus/chatmark/render"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)
	infoStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// BlocksMsg replaces the displayed message, e.g. after the file changed.
type BlocksMsg []ast.Block

type Model struct {
	title    string
	blocks   []ast.Block
	ansi     *render.ANSI
	viewport viewport.Model
	ready    bool
	width    int
}

func New(title string, blocks []ast.Block, theme render.Theme) Model {
	return Model{
		title:  title,
		blocks: blocks,
		ansi:   &render.ANSI{Theme: theme},
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		height := msg.Height - lipgloss.Height(m.header())
		if height < 1 {
			height = 1
		}
		if !m.ready {
			m.viewport = viewport.New(msg.Width, height)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = height
		}
		m.viewport.SetContent(m.content())
	case BlocksMsg:
		m.blocks = msg
		if m.ready {
			m.viewport.SetContent(m.content())
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if !m.ready {
		return "loading..."
	}
	return m.header() + "\n" + m.viewport.View()
}

func (m Model) header() string {
	info := infoStyle.Render(fmt.Sprintf("%3.f%%", m.viewport.ScrollPercent()*100))
	return lipgloss.JoinHorizontal(lipgloss.Center, titleStyle.Render(m.title), " ", info)
}

func (m Model) content() string {
	a := *m.ansi
	a.Width = m.width
	return strings.Join(a.Lines(lipgloss.DefaultRenderer(), m.blocks), "\n")
}
