// Package input decides when the application should exit.
package input

import "github.com/richinsley/glquad/graphics"

// KeyReader reports whether a key is currently held down.
type KeyReader interface {
	KeyPressed(graphics.Key) bool
}

// Handler is the exit predicate polled once per frame.
type Handler struct {
	ExitKey graphics.Key
}

// ShouldExit reports whether the exit key is pressed right now. There is no
// edge detection; a held key keeps returning true.
func (h Handler) ShouldExit(r KeyReader) bool {
	return r.KeyPressed(h.ExitKey)
}
