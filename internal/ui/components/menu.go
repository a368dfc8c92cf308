package components

import (
	"strings"

	tea "charm.land/bubbletea/v2"
)

// MenuItem is one button of a Menu.
type MenuItem struct {
	Label    string
	Action   func() tea.Cmd
	Disabled bool
}

// Menu is a column of buttons. Focus never rests on a disabled item.
type Menu struct {
	Items    []MenuItem
	Selected int
}

// NewMenu focuses the first enabled item.
func NewMenu(items []MenuItem) Menu {
	m := Menu{Items: items, Selected: -1}
	m.step(1)
	if m.Selected < 0 {
		m.Selected = 0
	}
	return m
}

// step moves focus to the next enabled item in direction dir, staying put
// when there is none.
func (m *Menu) step(dir int) {
	for i := m.Selected + dir; i >= 0 && i < len(m.Items); i += dir {
		if !m.Items[i].Disabled {
			m.Selected = i
			return
		}
	}
}

func (m Menu) Update(msg tea.Msg) (Menu, tea.Cmd) {
	key, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "up", "k", "shift+tab":
		m.step(-1)
	case "down", "j", "tab":
		m.step(1)
	case "enter", "space":
		if m.Selected < 0 || m.Selected >= len(m.Items) {
			break
		}
		if it := m.Items[m.Selected]; !it.Disabled && it.Action != nil {
			return m, it.Action()
		}
	}
	return m, nil
}

// View stacks the items as buttons.
func (m Menu) View() string {
	buttons := make([]string, len(m.Items))
	for i, it := range m.Items {
		state := ButtonIdle
		switch {
		case it.Disabled:
			state = ButtonDisabled
		case i == m.Selected:
			state = ButtonFocused
		}
		buttons[i] = Button(it.Label, state)
	}
	return strings.Join(buttons, "\n")
}
