// Package clipboard copies code samples to the system clipboard.
package clipboard

import (
	"errors"
	"fmt"

	"github.com/atotto/clipboard"
)

// ErrUnavailable is returned when text could not be placed on the clipboard.
var ErrUnavailable = errors.New("clipboard unavailable")

// Writer places text on a clipboard.
type Writer interface {
	WriteAll(text string) error
}

// WriterFunc adapts a function to the Writer interface.
type WriterFunc func(text string) error

// WriteAll calls f(text).
func (f WriterFunc) WriteAll(text string) error { return f(text) }

type system struct{}

// System returns a Writer backed by the operating system clipboard.
func System() Writer { return system{} }

func (system) WriteAll(text string) error {
	if clipboard.Unsupported {
		return fmt.Errorf("%w: no clipboard utility found", ErrUnavailable)
	}
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return nil
}
