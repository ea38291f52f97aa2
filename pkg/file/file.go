// Package file provides a resval.Provider that reads the screen size from
// a JSON or YAML file and watches it with fsnotify.
//
// It is meant for previews and emulators: a tool writes
//
//	{"width": 375, "height": 812}
//
// to the file and every engine watching it follows along.
package file

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/zoobzio/resval"
)

// Provider reads dimensions from a file.
type Provider struct {
	path  string
	codec resval.Codec
}

// New creates a Provider for the given path. The codec is chosen from the
// file extension: .yaml and .yml are YAML, everything else JSON.
func New(path string) *Provider {
	return &Provider{path: path, codec: resval.CodecFor(filepath.Ext(path))}
}

// Codec returns the codec matching the file format. Pass it to
// Engine.Codec so change payloads decode the same way.
func (p *Provider) Codec() resval.Codec {
	return p.codec
}

// Dimensions reads and decodes the file.
func (p *Provider) Dimensions() (resval.Dimensions, error) {
	data, err := os.ReadFile(p.path)
	if err != nil {
		return resval.Dimensions{}, fmt.Errorf("failed to read %s: %w", p.path, err)
	}
	var d resval.Dimensions
	if err := p.codec.Unmarshal(data, &d); err != nil {
		return resval.Dimensions{}, fmt.Errorf("failed to decode %s: %w", p.path, err)
	}
	if !d.Valid() {
		return resval.Dimensions{}, fmt.Errorf("invalid dimensions in %s: %s", p.path, d)
	}
	return d, nil
}

// Watch begins watching the file and returns a channel that emits the file
// contents whenever the file is written.
func (p *Provider) Watch(ctx context.Context) (<-chan []byte, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}

	if err := watcher.Add(p.path); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("failed to watch file %s: %w", p.path, err)
	}

	out := make(chan []byte)

	go func() {
		defer close(out)
		defer watcher.Close()

		for {
			select {
			case <-ctx.Done():
				return

			case event, ok := <-watcher.Events:
				if !ok {
					return
				}

				// Only emit on write or create events
				if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
					continue
				}

				data, err := os.ReadFile(p.path)
				if err != nil {
					continue
				}

				select {
				case out <- data:
				case <-ctx.Done():
					return
				}

			case _, ok := <-watcher.Errors:
				if !ok {
					return
				}
				// Continue watching despite errors
			}
		}
	}()

	return out, nil
}

// Ensure Provider implements resval.Provider.
var _ resval.Provider = (*Provider)(nil)
