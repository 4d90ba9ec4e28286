package tui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/verte-zerg/typeracer/internal/quote"
)

type fakeProvider struct {
	passage quote.Passage
}

func (f *fakeProvider) Fetch(_ context.Context) (quote.Passage, error) {
	return f.passage, nil
}

func TestResultsScreenAnyKeyRacesAgain(t *testing.T) {
	keys := []tea.KeyMsg{
		{Type: tea.KeyRunes, Runes: []rune{'r'}},
		{Type: tea.KeyRunes, Runes: []rune{'x'}},
		{Type: tea.KeySpace},
	}
	for _, key := range keys {
		m := NewModel(&fakeProvider{passage: quote.Passage{Content: "Hi", Author: quote.UnknownAuthor}}, 0)
		m.screen = screenResults

		updated, cmd := m.Update(key)
		got := updated.(*Model)
		if got.screen != screenLoading {
			t.Fatalf("key %q at results screen did not start a new race (screen %v)", key.String(), got.screen)
		}
		if cmd == nil {
			t.Fatalf("key %q at results screen returned no fetch command", key.String())
		}
	}
}

func TestResultsScreenEscQuits(t *testing.T) {
	m := NewModel(&fakeProvider{passage: quote.Passage{Content: "Hi", Author: quote.UnknownAuthor}}, 0)
	m.screen = screenResults

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected quit message, got %T", cmd())
	}
}
