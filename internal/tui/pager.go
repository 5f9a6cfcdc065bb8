// SPDX-License-Identifier: MPL-2.0

package tui

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// PagerOptions configures the pager display.
type PagerOptions struct {
	// Content is the text to display.
	Content string
	// Title is shown above the content.
	Title string
	// Height limits the visible height (0 for auto).
	Height int
	// Width limits the visible width (0 for auto).
	Width int
}

// pagerModel is the bubbletea model for the pager.
type pagerModel struct {
	viewport viewport.Model
	title    string
	done     bool
	width    int
	height   int
}

var (
	pagerTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212")).
			Padding(0, 1)

	pagerFooterStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))
)

// newPagerModel creates a pager model with the given options.
func newPagerModel(opts PagerOptions) *pagerModel {
	height := opts.Height
	if height == 0 {
		height = 20
	}
	width := opts.Width
	if width == 0 {
		width = 80
	}

	vpHeight := height - 2 // room for title and footer
	if vpHeight < 1 {
		vpHeight = 10
	}

	vp := viewport.New(width, vpHeight)
	vp.SetContent(opts.Content)

	return &pagerModel{
		viewport: vp,
		title:    opts.Title,
		width:    width,
		height:   height,
	}
}

func (m *pagerModel) Init() tea.Cmd {
	return nil
}

func (m *pagerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc", "enter":
			m.done = true
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = msg.Width
		m.viewport.Height = msg.Height - 2
	}

	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m *pagerModel) View() string {
	if m.done {
		return ""
	}

	title := ""
	if m.title != "" {
		title = pagerTitleStyle.Render(m.title) + "\n"
	}

	footer := pagerFooterStyle.Render("↑/↓: scroll • q/Enter: close")

	return title + m.viewport.View() + "\n" + footer
}

// Pager displays content in a scrollable alternate-screen viewport and
// blocks until the user dismisses it.
func Pager(opts PagerOptions) error {
	p := tea.NewProgram(newPagerModel(opts), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
