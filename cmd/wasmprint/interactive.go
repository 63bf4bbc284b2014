package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// listWidth is the width of the section list on the left of the browser.
const listWidth = 28

type browserModel struct {
	filename string
	module   *moduleView
	styles   styles
	selected int
	viewport viewport.Model
	ready    bool
}

func newBrowserModel(filename string, m *moduleView, st styles) *browserModel {
	return &browserModel{filename: filename, module: m, styles: st}
}

func (m *browserModel) Init() tea.Cmd {
	return nil
}

func (m *browserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		width, height := msg.Width-listWidth-1, msg.Height-3
		if width < 1 {
			width = 1
		}
		if height < 1 {
			height = 1
		}
		if !m.ready {
			m.viewport = viewport.New(width, height)
			m.ready = true
		} else {
			m.viewport.Width, m.viewport.Height = width, height
		}
		m.viewport.SetContent(m.detail())
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "up", "k":
			if m.selected > 0 {
				m.selected--
				m.resetDetail()
			}
			return m, nil
		case "down", "j":
			if m.selected < len(m.module.Sections)-1 {
				m.selected++
				m.resetDetail()
			}
			return m, nil
		}
	}

	if !m.ready {
		return m, nil
	}
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m *browserModel) resetDetail() {
	if m.ready {
		m.viewport.SetContent(m.detail())
		m.viewport.GotoTop()
	}
}

// detail is the content of the selected section.
func (m *browserModel) detail() string {
	if len(m.module.Sections) == 0 {
		return "no sections"
	}
	s := &m.module.Sections[m.selected]
	var b strings.Builder
	b.WriteString(m.styles.heading.Render(fmt.Sprintf("offset %#x, %d bytes", s.Offset, s.Size)))
	b.WriteByte('\n')
	for _, line := range s.Lines {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	if s.Err != nil {
		b.WriteString(m.styles.err.Render("error: " + s.Err.Error()))
		b.WriteByte('\n')
	}
	return b.String()
}

func (m *browserModel) list() string {
	var b strings.Builder
	for i := range m.module.Sections {
		s := &m.module.Sections[i]
		label := s.title()
		if s.Err != nil {
			label += " !"
		}
		if len(label) > listWidth-2 {
			label = label[:listWidth-2]
		}
		if i == m.selected {
			b.WriteString(m.styles.title.Render("> " + label))
		} else {
			b.WriteString("  " + label)
		}
		b.WriteByte('\n')
	}
	if m.module.Err != nil {
		b.WriteString(m.styles.err.Render("  framing error"))
		b.WriteByte('\n')
	}
	return b.String()
}

func (m *browserModel) View() string {
	if !m.ready {
		return "Loading..."
	}
	var b strings.Builder
	b.WriteString(m.styles.title.Render("wasmprint"))
	b.WriteString(fmt.Sprintf(" %s (version %d)\n\n", m.filename, m.module.Version))

	list := lipgloss.NewStyle().Width(listWidth).Render(strings.TrimSuffix(m.list(), "\n"))
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, list, " ", m.viewport.View()))
	b.WriteByte('\n')
	if m.module.Err != nil {
		b.WriteString(m.styles.err.Render("error: " + m.module.Err.Error()))
		b.WriteByte('\n')
	}
	b.WriteString(m.styles.help.Render("↑/↓ section • pgup/pgdn scroll • q quit"))
	return b.String()
}

func runInteractive(stdOut io.Writer, filename string, m *moduleView, st styles) error {
	p := tea.NewProgram(newBrowserModel(filename, m, st), tea.WithAltScreen(), tea.WithOutput(stdOut))
	_, err := p.Run()
	return err
}
