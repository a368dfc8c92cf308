package app

import (
	"context"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/dungeonquiz/internal/catalog"
	"github.com/abhisek/dungeonquiz/internal/config"
	"github.com/abhisek/dungeonquiz/internal/router"
	"github.com/abhisek/dungeonquiz/internal/screens/home"
	"github.com/abhisek/dungeonquiz/internal/screens/welcome"
)

type emptySource struct{}

func (emptySource) Index(context.Context) (*catalog.Index, error) { return &catalog.Index{}, nil }
func (emptySource) Pack(context.Context, string) ([]byte, error) { return nil, nil }

func testModel() AppModel {
	return newAppModel(Options{
		Source: emptySource{},
		Kids:   []config.Kid{{Name: "Xigua", Emoji: "🍉"}},
		Count:  5,
	})
}

func TestAppModel_StartsOnWelcome(t *testing.T) {
	m := testModel()
	if _, ok := m.router.Active().(*welcome.WelcomeScreen); !ok {
		t.Errorf("active = %T, want *welcome.WelcomeScreen", m.router.Active())
	}
}

func TestAppModel_WelcomeLeadsHome(t *testing.T) {
	m := testModel()

	_, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected transition command")
	}
	msg := cmd()
	if _, ok := msg.(router.ReplaceScreenMsg); !ok {
		t.Fatalf("expected ReplaceScreenMsg, got %T", msg)
	}
	m.Update(msg)

	if _, ok := m.router.Active().(*home.HomeScreen); !ok {
		t.Errorf("active = %T, want *home.HomeScreen", m.router.Active())
	}
	if m.router.Depth() != 1 {
		t.Errorf("depth = %d, want 1", m.router.Depth())
	}
}

func TestAppModel_CtrlCQuits(t *testing.T) {
	m := testModel()

	_, cmd := m.Update(tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected QuitMsg")
	}
}

func TestAppModel_EscAtRootIsNoop(t *testing.T) {
	m := testModel()

	_, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd != nil {
		t.Error("esc on the root screen should do nothing")
	}
}
