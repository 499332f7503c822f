package cli

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/andynu/bujo-pdf/pkg/planner"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// SectionsModel is the bubbletea model for interactive section selection.
// Sections start checked; the user unchecks what they don't want.
type SectionsModel struct {
	Sections  []string
	Cursor    int
	Checked   map[int]bool
	Confirmed bool
}

// NewSectionsModel creates a section picker with preselected entries checked.
// An empty preselection checks everything.
func NewSectionsModel(preselected []string) SectionsModel {
	sections := planner.AllSections()
	checked := make(map[int]bool, len(sections))
	for i, s := range sections {
		if len(preselected) == 0 {
			checked[i] = true
			continue
		}
		for _, p := range preselected {
			if p == s {
				checked[i] = true
			}
		}
	}
	return SectionsModel{Sections: sections, Checked: checked}
}

func (m SectionsModel) Init() tea.Cmd {
	return nil
}

func (m SectionsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
			}
		case "down", "j":
			if m.Cursor < len(m.Sections)-1 {
				m.Cursor++
			}
		case " ":
			m.Checked[m.Cursor] = !m.Checked[m.Cursor]
		case "a":
			for i := range m.Sections {
				m.Checked[i] = true
			}
		case "enter":
			m.Confirmed = true
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m SectionsModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Select Sections"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  space toggle  a all  ⏎ generate  q quit"))
	b.WriteString("\n\n")

	for i, s := range m.Sections {
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		check := "[ ]"
		if m.Checked[i] {
			check = "[x]"
		}
		style := listNormalStyle
		if i == m.Cursor {
			style = listSelectedStyle
		}
		b.WriteString(cursor + style.Render(check+" "+s) + "\n")
	}
	return b.String()
}

// Chosen returns the checked sections in generation order. All sections
// checked collapses to nil, the "everything" default.
func (m SectionsModel) Chosen() []string {
	var out []string
	for i, s := range m.Sections {
		if m.Checked[i] {
			out = append(out, s)
		}
	}
	if len(out) == len(m.Sections) {
		return nil
	}
	return out
}

// pickSections runs the interactive picker. ok is false when the user quit
// without confirming.
func pickSections(preselected []string) (sections []string, ok bool, err error) {
	model := NewSectionsModel(preselected)
	final, err := tea.NewProgram(model).Run()
	if err != nil {
		return nil, false, err
	}
	m, isModel := final.(SectionsModel)
	if !isModel || !m.Confirmed {
		return nil, false, nil
	}
	return m.Chosen(), true, nil
}
