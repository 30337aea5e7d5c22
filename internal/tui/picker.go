// Package tui holds the interactive pieces of skillpack. The CLI is
// non-interactive end to end except for the skill picker, shown when init
// is run without a skill argument on a terminal.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/skillpackhq/skillpack/internal/core"
)

var titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))

// skillItem adapts a SkillInfo to the bubbles list item interface.
type skillItem struct {
	info core.SkillInfo
}

func (i skillItem) Title() string { return i.info.Name }

func (i skillItem) Description() string {
	desc := i.info.Description
	if desc == "" {
		desc = "(no description)"
	}
	return fmt.Sprintf("%s (versions: %s)", desc, strings.Join(i.info.Versions, ", "))
}

func (i skillItem) FilterValue() string { return i.info.Name }

// pickerModel is a one-shot list: pick a skill with enter, abort with
// esc/ctrl-c.
type pickerModel struct {
	list    list.Model
	choice  string
	aborted bool
}

func newPickerModel(infos []core.SkillInfo) pickerModel {
	items := make([]list.Item, len(infos))
	for i, info := range infos {
		items[i] = skillItem{info: info}
	}

	delegate := list.NewDefaultDelegate()
	l := list.New(items, delegate, 0, 0)
	l.Title = "Select a skill to install"
	l.Styles.Title = titleStyle
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.SetShowPagination(false)

	return pickerModel{list: l}
}

func (m pickerModel) Init() tea.Cmd { return nil }

func (m pickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		// Don't intercept keys while filtering.
		if m.list.SettingFilter() {
			break
		}
		switch msg.String() {
		case "enter":
			if item, ok := m.list.SelectedItem().(skillItem); ok {
				m.choice = item.info.Name
			}
			return m, tea.Quit
		case "esc", "ctrl+c", "q":
			m.aborted = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m pickerModel) View() string {
	return m.list.View()
}

// PickSkill shows the picker and returns the chosen skill name. Aborting
// the picker is an error; the caller treats it as "nothing to do".
func PickSkill(infos []core.SkillInfo) (string, error) {
	if len(infos) == 0 {
		return "", fmt.Errorf("no skills bundled")
	}

	p := tea.NewProgram(newPickerModel(infos), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return "", fmt.Errorf("running picker: %w", err)
	}

	m, ok := final.(pickerModel)
	if !ok || m.aborted || m.choice == "" {
		return "", fmt.Errorf("no skill selected")
	}
	return m.choice, nil
}
