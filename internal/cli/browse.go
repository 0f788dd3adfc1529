package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/wheeltag/pkg/tags"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// browseCommand creates the browse command, an interactive viewer for an
// environment's tag sequence.
func (c *CLI) browseCommand() *cobra.Command {
	var env envFlags

	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Interactively browse the tag sequence",
		Long: `Open an interactive viewer over the environment's ordered tag sequence.

Navigate with the arrow keys, press / to filter by substring, and q to
quit.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, seq, err := env.resolveTags(cmd.Context())
			if err != nil {
				return err
			}

			model := newTagListModel(e.InterpreterTag(), seq)
			if _, err := tea.NewProgram(model).Run(); err != nil {
				return fmt.Errorf("browse: %w", err)
			}
			return nil
		},
	}

	env.register(cmd)

	return cmd
}

// tagListModel is the bubbletea model for browsing a tag sequence.
type tagListModel struct {
	Title     string
	Tags      []tags.Tag
	Visible   []int // indices into Tags after filtering
	Cursor    int
	Offset    int
	Height    int
	Filter    string
	Filtering bool
}

// newTagListModel creates a tag list model over the full sequence.
func newTagListModel(title string, seq []tags.Tag) tagListModel {
	m := tagListModel{
		Title:  title,
		Tags:   seq,
		Height: 15,
	}
	m.applyFilter()
	return m
}

// applyFilter recomputes the visible indices and clamps the cursor.
func (m *tagListModel) applyFilter() {
	m.Visible = m.Visible[:0]
	for i, t := range m.Tags {
		if m.Filter == "" || strings.Contains(t.String(), m.Filter) {
			m.Visible = append(m.Visible, i)
		}
	}
	if m.Cursor >= len(m.Visible) {
		m.Cursor = len(m.Visible) - 1
	}
	if m.Cursor < 0 {
		m.Cursor = 0
	}
	if m.Offset > m.Cursor {
		m.Offset = m.Cursor
	}
}

func (m tagListModel) Init() tea.Cmd {
	return nil
}

func (m tagListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.Filtering {
			switch msg.String() {
			case "enter", "esc":
				m.Filtering = false
				if msg.String() == "esc" {
					m.Filter = ""
					m.applyFilter()
				}
			case "backspace":
				if m.Filter != "" {
					m.Filter = m.Filter[:len(m.Filter)-1]
					m.applyFilter()
				}
			case "ctrl+c":
				return m, tea.Quit
			default:
				if len(msg.Runes) > 0 {
					m.Filter += string(msg.Runes)
					m.applyFilter()
				}
			}
			return m, nil
		}

		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "/":
			m.Filtering = true
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.Visible)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "g", "home":
			m.Cursor = 0
			m.Offset = 0
		case "G", "end":
			m.Cursor = len(m.Visible) - 1
			if m.Cursor >= m.Height {
				m.Offset = m.Cursor - m.Height + 1
			}
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 8
		if m.Height < 5 {
			m.Height = 5
		}
	}
	return m, nil
}

func (m tagListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render(fmt.Sprintf("Compatibility tags for %s", m.Title)))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  / filter  q quit"))
	if m.Filter != "" || m.Filtering {
		b.WriteString(listDimStyle.Render("   filter: ") + listSelectedStyle.Render(m.Filter))
		if m.Filtering {
			b.WriteString(listSelectedStyle.Render("█"))
		}
	}
	b.WriteString("\n\n")

	end := m.Offset + m.Height
	if end > len(m.Visible) {
		end = len(m.Visible)
	}

	rows := [][]string{}
	for i := m.Offset; i < end; i++ {
		idx := m.Visible[i]
		t := m.Tags[idx]

		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		rows = append(rows, []string{cursor, fmt.Sprintf("%d", idx), t.Interpreter(), t.Abi(), t.Platform()})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	tbl := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "Rank", "Interpreter", "ABI", "Platform").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if m.Offset+row == m.Cursor {
				return listSelectedStyle
			}
			return listNormalStyle
		})

	b.WriteString(tbl.Render())
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("%d of %d tags", len(m.Visible), len(m.Tags))))
	b.WriteString("\n")
	return b.String()
}
