package components

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
)

func key(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func TestMultiChoice_NumberKeySubmits(t *testing.T) {
	mc := NewMultiChoice([]string{"cat", "dog", "fish"})

	mc, submitted := mc.Update(key('2'))
	if !submitted {
		t.Fatal("expected number key to submit")
	}
	got, ok := mc.Chosen()
	if !ok || got != "dog" {
		t.Errorf("Chosen() = %q, %v; want dog", got, ok)
	}

	// Locked after submission.
	mc, submitted = mc.Update(key('1'))
	if submitted {
		t.Error("second submission should be ignored")
	}
	if got, _ := mc.Chosen(); got != "dog" {
		t.Errorf("choice changed to %q", got)
	}
}

func TestMultiChoice_ArrowsAndEnter(t *testing.T) {
	mc := NewMultiChoice([]string{"cat", "dog"})

	mc, _ = mc.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	mc, _ = mc.Update(tea.KeyPressMsg{Code: tea.KeyDown}) // clamps at the last option
	mc, submitted := mc.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if !submitted {
		t.Fatal("expected enter to submit")
	}
	if got, _ := mc.Chosen(); got != "dog" {
		t.Errorf("Chosen() = %q, want dog", got)
	}
}

func TestMultiChoice_OutOfRangeNumberIgnored(t *testing.T) {
	mc := NewMultiChoice([]string{"cat", "dog"})
	mc, submitted := mc.Update(key('3'))
	if submitted || mc.Submitted {
		t.Error("number beyond the options should be ignored")
	}
}

func TestMultiChoice_Reveal(t *testing.T) {
	mc := NewMultiChoice([]string{"cat", "dog"})
	mc.Reveal(func(opt string) bool { return opt == "dog" })
	if mc.CorrectIndex != 1 {
		t.Errorf("CorrectIndex = %d, want 1", mc.CorrectIndex)
	}
	if !strings.Contains(mc.View(), "B)  dog") {
		t.Errorf("view missing lettered option: %q", mc.View())
	}
}

func TestMenu_SkipsDisabled(t *testing.T) {
	called := false
	m := NewMenu([]MenuItem{
		{Label: "Locked", Disabled: true},
		{Label: "Go", Action: func() tea.Cmd { called = true; return nil }},
		{Label: "Also locked", Disabled: true},
	})
	if m.Selected != 1 {
		t.Fatalf("Selected = %d, want first enabled item", m.Selected)
	}

	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	if m.Selected != 1 {
		t.Errorf("Selected = %d after down, want 1", m.Selected)
	}
	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	if m.Selected != 1 {
		t.Errorf("Selected = %d after up, want 1", m.Selected)
	}
	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if !called {
		t.Error("expected action to run")
	}
	if v := m.View(); !strings.Contains(v, "▸ Go") || strings.Contains(v, "▸ Locked") {
		t.Errorf("focus marker on the wrong button:\n%s", v)
	}
}

func TestMenu_AllDisabled(t *testing.T) {
	m := NewMenu([]MenuItem{{Label: "Nope", Disabled: true, Action: func() tea.Cmd { return tea.Quit }}})
	_, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd != nil {
		t.Error("disabled item must not run")
	}
}

func TestCabinet_Inner(t *testing.T) {
	for _, tt := range []struct{ width, want int }{
		{200, 64},
		{50, 44},
		{10, 20},
	} {
		if got := (Cabinet{Width: tt.width, Height: 20}).Inner(); got != tt.want {
			t.Errorf("Inner() at width %d = %d, want %d", tt.width, got, tt.want)
		}
	}
}

func TestProgressBar_Percent(t *testing.T) {
	tests := []struct {
		current, total int
		want           float64
	}{
		{0, 5, 0},
		{5, 5, 1},
		{2, 4, 0.5},
		{3, 0, 0},
		{9, 3, 1},
	}
	for _, tt := range tests {
		p := NewProgressBar("", tt.current, tt.total, 30)
		if got := p.Percent(); got != tt.want {
			t.Errorf("Percent(%d/%d) = %v, want %v", tt.current, tt.total, got, tt.want)
		}
	}
	if v := NewProgressBar("Q", 2, 5, 30).View(); !strings.Contains(v, "2/5") {
		t.Errorf("view missing counter: %q", v)
	}
}
