// Package bubbletea connects a resval.Engine to a Bubble Tea program.
//
// Bubble Tea delivers window sizes as tea.WindowSizeMsg. Wrap a model with
// Wrap and every size message is forwarded to the Provider before the
// model sees it, so sizing calls made from Update and View already reflect
// the new window.
//
//	provider := bubbletea.New(resval.Dimensions{Width: 80, Height: 24})
//	engine := resval.New(provider).SyncMode()
//	_ = engine.Start(ctx)
//	program := tea.NewProgram(bubbletea.Wrap(model, provider, engine))
package bubbletea

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/zoobzio/resval"
)

// Provider is a resval.Provider fed by tea.WindowSizeMsg.
type Provider struct {
	*resval.MemoryProvider
}

// New creates a Provider reporting initial until the first size message.
func New(initial resval.Dimensions) *Provider {
	return &Provider{MemoryProvider: resval.NewSyncMemoryProvider(initial)}
}

// Observe records msg when it is a tea.WindowSizeMsg with a positive size.
// It reports whether the message carried a new size.
func (p *Provider) Observe(msg tea.Msg) bool {
	size, ok := msg.(tea.WindowSizeMsg)
	if !ok || size.Width <= 0 || size.Height <= 0 {
		return false
	}
	d := resval.Dimensions{Width: float64(size.Width), Height: float64(size.Height)}
	if current, err := p.Dimensions(); err == nil && current == d {
		return false
	}
	return p.Resize(d)
}

// Ensure Provider implements resval.Provider.
var _ resval.Provider = (*Provider)(nil)

// Model wraps a tea.Model and keeps an engine in step with the window.
type Model struct {
	inner    tea.Model
	provider *Provider
	engine   *resval.Engine
}

// Wrap returns a model that forwards size messages to provider and, when
// engine runs in sync mode, applies them before delegating to inner.
func Wrap(inner tea.Model, provider *Provider, engine *resval.Engine) Model {
	return Model{inner: inner, provider: provider, engine: engine}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return m.inner.Init()
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.provider.Observe(msg) && m.engine != nil {
		for m.engine.Process(context.Background()) {
		}
	}
	inner, cmd := m.inner.Update(msg)
	m.inner = inner
	return m, cmd
}

// View implements tea.Model.
func (m Model) View() string {
	return m.inner.View()
}

// Inner returns the wrapped model.
func (m Model) Inner() tea.Model {
	return m.inner
}
