package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/codia/codia/pkg/errors"
	"github.com/codia/codia/pkg/model"
	"github.com/codia/codia/pkg/pipeline"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)

	detailBorderStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(colorDim).
				Padding(0, 1)
)

// newExploreCmd creates the explore command, an interactive terminal
// browser for the class model.
func newExploreCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "explore [file|dir]",
		Short: "Browse the class model interactively",
		Long: `Browse classes, attributes, methods, and inheritance in the
terminal. The input is analyzed the same way as for render.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := pipeline.NewRunner(nil, loggerFromContext(cmd.Context()))
			m, err := runner.Load(pipeline.Options{Path: args[0]})
			if err != nil {
				return err
			}
			if m.IsEmpty() {
				return errors.New(errors.ErrCodeNoClasses, "no classes found in %s", args[0])
			}
			prog := tea.NewProgram(newClassListModel(m))
			_, err = prog.Run()
			return err
		},
	}
}

// =============================================================================
// ClassListModel - Interactive class browsing
// =============================================================================

// ClassListModel is the bubbletea model for browsing classes. The left
// pane lists class names, the right pane shows the selected class in
// detail including its subclasses.
type ClassListModel struct {
	Model    *model.Model
	Names    []string
	Cursor   int
	Height   int
	Offset   int
	children map[string][]string
}

// newClassListModel builds the browsing model, precomputing the
// child index so the detail pane can show subclasses.
func newClassListModel(m *model.Model) ClassListModel {
	children := make(map[string][]string)
	for _, rel := range m.Relationships {
		if rel.Kind != model.RelKindInheritance {
			continue
		}
		children[rel.Parent] = append(children[rel.Parent], rel.Child)
	}
	return ClassListModel{
		Model:    m,
		Names:    m.Classes.Names(),
		Height:   15,
		children: children,
	}
}

func (m ClassListModel) Init() tea.Cmd {
	return nil
}

func (m ClassListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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
			if m.Cursor < len(m.Names)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 6
		if m.Height < 5 {
			m.Height = 5
		}
	}
	return m, nil
}

func (m ClassListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Class Explorer"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  q quit"))
	b.WriteString("\n\n")

	end := m.Offset + m.Height
	if end > len(m.Names) {
		end = len(m.Names)
	}

	var list strings.Builder
	for i := m.Offset; i < end; i++ {
		name := m.Names[i]
		if i == m.Cursor {
			list.WriteString(listSelectedStyle.Render("▸ " + name))
		} else {
			list.WriteString(listNormalStyle.Render("  " + name))
		}
		list.WriteString("\n")
	}

	detail := m.renderDetail(m.Names[m.Cursor])
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		lipgloss.NewStyle().Width(24).Render(list.String()),
		detailBorderStyle.Render(detail)))

	b.WriteString("\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Names))))

	return b.String()
}

// renderDetail formats the attribute, method, and inheritance sections
// for one class.
func (m ClassListModel) renderDetail(name string) string {
	c, ok := m.Model.Classes.Get(name)
	if !ok {
		return ""
	}

	var b strings.Builder
	b.WriteString(StyleTitle.Render(c.Name))
	b.WriteString("\n\n")

	b.WriteString(styleHeader.Render("Attributes"))
	b.WriteString("\n")
	if len(c.Attributes) == 0 {
		b.WriteString(listDimStyle.Render("  (none)"))
		b.WriteString("\n")
	}
	for _, a := range c.Attributes {
		b.WriteString(StyleValue.Render("  - " + a))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(styleHeader.Render("Methods"))
	b.WriteString("\n")
	if len(c.Methods) == 0 {
		b.WriteString(listDimStyle.Render("  (none)"))
		b.WriteString("\n")
	}
	for _, meth := range c.Methods {
		b.WriteString(StyleValue.Render("  + " + meth))
		b.WriteString("\n")
	}

	if len(c.Parents) > 0 {
		b.WriteString("\n")
		b.WriteString(styleHeader.Render("Inherits from"))
		b.WriteString("\n")
		b.WriteString(StyleSuccess.Render("  " + strings.Join(c.Parents, ", ")))
		b.WriteString("\n")
	}
	if subs := m.children[name]; len(subs) > 0 {
		b.WriteString("\n")
		b.WriteString(styleHeader.Render("Subclasses"))
		b.WriteString("\n")
		b.WriteString(StyleWarning.Render("  " + strings.Join(subs, ", ")))
		b.WriteString("\n")
	}

	return b.String()
}
