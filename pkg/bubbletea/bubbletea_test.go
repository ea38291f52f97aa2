package bubbletea

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/zoobzio/resval"
)

type recordingModel struct {
	engine *resval.Engine
	seen   []float64
}

func (m *recordingModel) Init() tea.Cmd { return nil }

func (m *recordingModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(tea.WindowSizeMsg); ok {
		m.seen = append(m.seen, m.engine.HP(50).Value)
	}
	return m, nil
}

func (m *recordingModel) View() string { return "view" }

func startEngine(t *testing.T, p *Provider) *resval.Engine {
	t.Helper()
	e := resval.New(p).SyncMode()
	if err := e.Start(context.Background()); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	t.Cleanup(e.Stop)
	return e
}

func TestProvider_Observe(t *testing.T) {
	p := New(resval.Dimensions{Width: 80, Height: 24})

	tests := []struct {
		name string
		msg  tea.Msg
		want bool
	}{
		{"new size", tea.WindowSizeMsg{Width: 120, Height: 40}, true},
		{"same size", tea.WindowSizeMsg{Width: 120, Height: 40}, false},
		{"zero size", tea.WindowSizeMsg{Width: 0, Height: 0}, false},
		{"negative size", tea.WindowSizeMsg{Width: -1, Height: -1}, false},
		{"other message", tea.KeyMsg{Type: tea.KeyEnter}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := p.Observe(tt.msg); got != tt.want {
				t.Errorf("Observe() = %v, want %v", got, tt.want)
			}
		})
	}

	d, err := p.Dimensions()
	if err != nil {
		t.Fatalf("Dimensions failed: %v", err)
	}
	if d != (resval.Dimensions{Width: 120, Height: 40}) {
		t.Errorf("expected 120x40, got %s", d)
	}
}

func TestModel_AppliesSizeBeforeDelegating(t *testing.T) {
	p := New(resval.Dimensions{Width: 80, Height: 24})
	e := startEngine(t, p)
	inner := &recordingModel{engine: e}
	m := Wrap(inner, p, e)

	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 50})
	next, _ = next.Update(tea.WindowSizeMsg{Width: 100, Height: 30})

	if len(inner.seen) != 2 {
		t.Fatalf("expected 2 size messages, got %d", len(inner.seen))
	}
	if inner.seen[0] != 25 || inner.seen[1] != 15 {
		t.Errorf("expected [25 15], got %v", inner.seen)
	}
	if got := e.Tracked(); got != (resval.Dimensions{Width: 100, Height: 30}) {
		t.Errorf("expected tracked 100x30, got %s", got)
	}
	if next.View() != "view" {
		t.Errorf("expected inner view, got %q", next.View())
	}
}

func TestModel_PassesOtherMessages(t *testing.T) {
	p := New(resval.Dimensions{Width: 80, Height: 24})
	e := startEngine(t, p)
	inner := &recordingModel{engine: e}
	m := Wrap(inner, p, e)

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd != nil {
		t.Error("expected no command")
	}
	if len(inner.seen) != 0 {
		t.Errorf("expected no size messages, got %v", inner.seen)
	}
	if next.(Model).Inner() != tea.Model(inner) {
		t.Error("expected the wrapped model to be kept")
	}
	if m.Init() != nil {
		t.Error("expected nil init command")
	}
}
