package cli

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/copybook/pkg/poetry"
)

var listDimStyle = lipgloss.NewStyle().Foreground(colorDim)

// =============================================================================
// PoemListModel - Interactive poem selection
// =============================================================================

// PoemListModel is the bubbletea model for interactive poem selection.
type PoemListModel struct {
	Poems    []poetry.Item
	Cursor   int
	Selected *poetry.Item
	Height   int
	Offset   int
}

// NewPoemListModel creates a new poem list model.
func NewPoemListModel(poems []poetry.Item) PoemListModel {
	return PoemListModel{Poems: poems, Height: 15}
}

func (m PoemListModel) Init() tea.Cmd {
	return nil
}

func (m PoemListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.Poems)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "enter":
			if len(m.Poems) == 0 {
				return m, tea.Quit
			}
			item := m.Poems[m.Cursor]
			m.Selected = &item
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.Height = max(5, msg.Height-8)
	}
	return m, nil
}

func (m PoemListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Select Poem"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ select  q quit"))
	b.WriteString("\n\n")

	end := min(m.Offset+m.Height, len(m.Poems))
	rows := [][]string{}
	for i := m.Offset; i < end; i++ {
		p := m.Poems[i]
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		first := ""
		if len(p.Content) > 0 {
			first = p.Content[0]
		}
		rows = append(rows, []string{cursor, p.ID, p.Title, p.Byline(), first})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "ID", "Title", "Author", "First verse").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			if m.Offset+row == m.Cursor {
				return lipgloss.NewStyle().Foreground(colorJade).Bold(true)
			}
			if col == 4 {
				return listDimStyle
			}
			return lipgloss.NewStyle()
		})

	b.WriteString(t.Render())
	b.WriteString("\n\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Poems))))
	return b.String()
}

// pickPoem lets the user choose a poem from lib. It returns nil when the
// user quits without choosing.
func pickPoem(ctx context.Context, lib poetry.Library) (*poetry.Item, error) {
	items, err := lib.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list poems: %w", err)
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("the poem library is empty")
	}

	final, err := tea.NewProgram(NewPoemListModel(items), tea.WithContext(ctx)).Run()
	if err != nil {
		return nil, fmt.Errorf("poem picker: %w", err)
	}
	return final.(PoemListModel).Selected, nil
}
