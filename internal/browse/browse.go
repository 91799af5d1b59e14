// internal/browse/browse.go
// Package browse provides the interactive checkpoint viewer.
package browse

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/prajaktaborse1234/synthmerge/internal/checkpoint"
	"github.com/prajaktaborse1234/synthmerge/internal/util"
)

// viewState represents the current view or screen of the application.
type viewState int

const (
	// viewEntryList is the state where the user selects an entry.
	viewEntryList viewState = iota
	// viewEntryDetail is the state where one entry's rows are shown in full.
	viewEntryDetail
)

var (
	detailHeaderStyle = lipgloss.NewStyle().Background(lipgloss.Color("62")).Foreground(lipgloss.Color("230")).Padding(0, 1)
	modelNameStyle    = lipgloss.NewStyle().Bold(true)
	okStyle           = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42"))
	failStyle         = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	helpStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
)

// item represents a selectable entry group in the entry list.
type item struct {
	index string
	rows  []checkpoint.Row
}

// Title returns the title of the list item.
func (i item) Title() string { return "Entry " + i.index }

// Description summarizes the entry's rows and outcomes.
func (i item) Description() string {
	correct := 0
	models := make([]string, 0, len(i.rows))
	for _, r := range i.rows {
		correct += util.BoolToInt(r.True(checkpoint.ColCorrect))
		models = append(models, r[checkpoint.ColModel])
	}
	return fmt.Sprintf("%d rows, %d correct: %s", len(i.rows), correct, util.TruncateRunes(strings.Join(models, ", "), 48))
}

// FilterValue returns the entry index, used for filtering.
func (i item) FilterValue() string { return i.index }

// model is the main application model for the Bubble Tea UI.
type model struct {
	source        string
	state         viewState
	entries       list.Model
	viewport      viewport.Model
	selected      item
	width, height int
}

// newModel creates and initializes a new model from a checkpoint table.
func newModel(source string, table checkpoint.Table) *model {
	groups := checkpoint.GroupByEntry(table.Rows)
	items := make([]list.Item, 0, groups.Len())
	for _, index := range groups.Order {
		items = append(items, item{index: index, rows: groups.Groups[index]})
	}

	entries := list.New(items, list.NewDefaultDelegate(), 0, 0)
	entries.Title = fmt.Sprintf("Entries in %s", source)

	return &model{
		source:   source,
		state:    viewEntryList,
		entries:  entries,
		viewport: viewport.New(100, 5),
	}
}

// Init initializes the Bubble Tea model.
func (m *model) Init() tea.Cmd {
	return nil
}

// Update is the central update function for the Bubble Tea model.
func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var (
		cmd  tea.Cmd
		cmds []tea.Cmd
	)

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "q":
			if m.state == viewEntryDetail || m.entries.FilterState() != list.Filtering {
				return m, tea.Quit
			}
		case "esc":
			if m.state == viewEntryDetail {
				m.state = viewEntryList
				return m, nil
			}
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.entries.SetSize(msg.Width-4, msg.Height-2)
		headerHeight := 2
		footerHeight := 2
		m.viewport.Width = msg.Width
		m.viewport.Height = msg.Height - headerHeight - footerHeight
		if m.state == viewEntryDetail {
			m.viewport.SetContent(m.renderEntry(m.selected))
		}
	}

	switch m.state {
	case viewEntryList:
		m.entries, cmd = m.entries.Update(msg)
		cmds = append(cmds, cmd)
		if msg, ok := msg.(tea.KeyMsg); ok && msg.String() == "enter" {
			if selectedItem, ok := m.entries.SelectedItem().(item); ok {
				m.selected = selectedItem
				m.viewport.SetContent(m.renderEntry(selectedItem))
				m.viewport.GotoTop()
				m.state = viewEntryDetail
			}
		}

	case viewEntryDetail:
		m.viewport, cmd = m.viewport.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// View renders the application's UI based on the current state of the model.
func (m *model) View() string {
	if m.width == 0 {
		return "Initializing..."
	}

	switch m.state {
	case viewEntryList:
		return lipgloss.NewStyle().Margin(1, 2).Render(m.entries.View())

	case viewEntryDetail:
		header := detailHeaderStyle.Render(fmt.Sprintf("Entry %s in %s", m.selected.index, m.source))
		help := helpStyle.Render(" (esc to go back, q to quit)")
		return header + "\n" + m.viewport.View() + "\n" + help

	default:
		return "Unknown state"
	}
}

// renderEntry renders every row of the selected entry for the detail viewport.
func (m *model) renderEntry(it item) string {
	var builder strings.Builder

	width := util.Max(20, util.Min(m.width-4, 96))

	for n, row := range it.rows {
		if n > 0 {
			builder.WriteString("\n")
		}

		builder.WriteString(modelNameStyle.Render(row[checkpoint.ColModel]) + "  " + outcomeBadge(row) + "\n")

		var meta []string
		if v := row[checkpoint.ColDuration]; v != "" {
			meta = append(meta, fmt.Sprintf("duration: %ss", v))
		}
		if v := row[checkpoint.ColTokens]; v != "" {
			meta = append(meta, fmt.Sprintf("tokens: %s", v))
		}
		if v := row[checkpoint.ColLogprob]; v != "" {
			meta = append(meta, fmt.Sprintf("logprob: %s", v))
		}
		if len(meta) > 0 {
			builder.WriteString("  " + strings.Join(meta, " | ") + "\n")
		}

		if v := row[checkpoint.ColPatchCommitHash]; v != "" {
			builder.WriteString("  patch commit: " + v + "\n")
		}
		if v := row[checkpoint.ColCodeCommitHash]; v != "" {
			builder.WriteString("  code commit: " + v + "\n")
		}

		if v := row[checkpoint.ColError]; v != "" && v != "true" && v != "false" {
			builder.WriteString("\n" + failStyle.Render("Error:") + "\n")
			builder.WriteString(util.WrapToWidth(v, width) + "\n")
		}
		if v := row[checkpoint.ColFailedPatchedCode]; v != "" {
			builder.WriteString("\n" + helpStyle.Render("Failed patched code:") + "\n")
			builder.WriteString(util.WrapToWidth(v, width) + "\n")
		}
	}

	return builder.String()
}

// outcomeBadge returns the styled outcome label for a row.
func outcomeBadge(row checkpoint.Row) string {
	switch {
	case row.True(checkpoint.ColError):
		return failStyle.Render("error")
	case row.True(checkpoint.ColCorrect):
		return okStyle.Render("correct")
	case row.True(checkpoint.ColCorrectAligned):
		return okStyle.Render("aligned")
	case row.True(checkpoint.ColCorrectStripped):
		return okStyle.Render("stripped")
	default:
		return failStyle.Render("incorrect")
	}
}

// Run opens the viewer over the given table and blocks until the user quits.
func Run(source string, table checkpoint.Table) error {
	m := newModel(source, table)

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("unable to run entry viewer: %w", err)
	}
	return nil
}
