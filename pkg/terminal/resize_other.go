//go:build !unix

package terminal

import "os"

// No resize signal; the returned channel never fires.
func notifyResize() (<-chan os.Signal, func()) {
	return nil, func() {}
}
