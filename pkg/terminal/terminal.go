// Package terminal provides a resval.Provider backed by the size of a
// terminal, measured in cells with golang.org/x/term.
//
// On unix systems the provider listens for SIGWINCH and emits a change
// payload whenever the window is resized. Elsewhere it reports the size
// on demand only.
//
// Cells are not pixels: pair the engine with a standard height expressed
// in rows (for example Options{}.WithStandardScreenHeight(40)).
package terminal

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/zoobzio/resval"
	"golang.org/x/term"
)

// Provider reports the size of the terminal attached to a file descriptor.
type Provider struct {
	fd      int
	size    func(fd int) (width, height int, err error)
	resized func() (<-chan os.Signal, func())
}

// New creates a Provider for the terminal on fd.
func New(fd int) *Provider {
	return &Provider{fd: fd, size: term.GetSize, resized: notifyResize}
}

// Stdout creates a Provider for the terminal attached to standard output.
func Stdout() *Provider {
	return New(int(os.Stdout.Fd()))
}

// IsTerminal reports whether the descriptor is attached to a terminal.
func (p *Provider) IsTerminal() bool {
	return term.IsTerminal(p.fd)
}

// Dimensions returns the current terminal size in cells.
func (p *Provider) Dimensions() (resval.Dimensions, error) {
	w, h, err := p.size(p.fd)
	if err != nil {
		return resval.Dimensions{}, fmt.Errorf("failed to get terminal size: %w", err)
	}
	d := resval.Dimensions{Width: float64(w), Height: float64(h)}
	if !d.Valid() {
		return resval.Dimensions{}, fmt.Errorf("invalid terminal size: %s", d)
	}
	return d, nil
}

// Watch emits a JSON change payload each time the terminal is resized to
// a new size. The channel closes when ctx is canceled.
func (p *Provider) Watch(ctx context.Context) (<-chan []byte, error) {
	last, err := p.Dimensions()
	if err != nil {
		return nil, err
	}

	sigs, stop := p.resized()
	out := make(chan []byte)

	go func() {
		defer close(out)
		defer stop()

		for {
			select {
			case <-ctx.Done():
				return

			case _, ok := <-sigs:
				if !ok {
					return
				}

				d, err := p.Dimensions()
				if err != nil || d == last {
					continue
				}
				last = d

				raw, err := json.Marshal(d)
				if err != nil {
					continue
				}

				select {
				case out <- raw:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return out, nil
}

// Ensure Provider implements resval.Provider.
var _ resval.Provider = (*Provider)(nil)
