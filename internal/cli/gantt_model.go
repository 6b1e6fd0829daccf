package cli

import (
	"fmt"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rvannest/joist/internal/cli/formatter"
	"github.com/rvannest/joist/internal/timeline"
)

// ganttModel is the interactive wrapper around the static chart: a viewport
// for scrolling plus keys to switch the header scale in place.
type ganttModel struct {
	app      *App
	scale    timeline.Scale
	viewport viewport.Model
	ready    bool
	err      error
}

func newGanttModel(app *App, scale timeline.Scale) *ganttModel {
	return &ganttModel{app: app, scale: scale}
}

func (m *ganttModel) Init() tea.Cmd {
	return nil
}

func (m *ganttModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		headerHeight := 1
		footerHeight := 1
		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-headerHeight-footerHeight)
			m.ready = true
			m.refresh()
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - headerHeight - footerHeight
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "d":
			m.setScale(timeline.ScaleDay)
			return m, nil
		case "w":
			m.setScale(timeline.ScaleWeek)
			return m, nil
		case "m":
			m.setScale(timeline.ScaleMonth)
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m *ganttModel) setScale(scale timeline.Scale) {
	if scale == m.scale {
		return
	}
	m.scale = scale
	m.refresh()
}

func (m *ganttModel) refresh() {
	content, err := renderGanttContent(m.app, m.scale)
	if err != nil {
		m.err = err
		return
	}
	m.err = nil
	if content == "" {
		content = "Nothing to chart. Add planned dates first."
	}
	m.viewport.SetContent(content)
}

func (m *ganttModel) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.err != nil {
		return fmt.Sprintf("%s\n\n%s\n%s",
			formatter.Bold("Gantt"),
			formatter.StyleRed.Render(m.err.Error()),
			formatter.Dim("q quit"))
	}
	title := fmt.Sprintf("%s  %s", formatter.Bold("Gantt"), formatter.Dim(string(m.scale)))
	help := formatter.Dim("↑/↓ scroll · d/w/m scale · q quit")
	return fmt.Sprintf("%s\n%s\n%s", title, m.viewport.View(), help)
}
