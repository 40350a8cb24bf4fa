// Package report defines the single status surface the controller writes to.
package report

import (
	"fmt"
	"io"
)

// Reporter shows text to the user. Show replaces everything shown before.
type Reporter interface {
	Show(text string)
}

// Buffer keeps the latest report in memory
type Buffer struct {
	text  string
	shown int
}

// Show replaces the buffer content
func (b *Buffer) Show(text string) {
	b.text = text
	b.shown++
}

// Text returns the current content
func (b *Buffer) Text() string {
	return b.text
}

// Count returns how many times Show was called
func (b *Buffer) Count() int {
	return b.shown
}

// Writer prints each report as one block to an output stream. A stream
// cannot be cleared, so each block stands alone.
type Writer struct {
	Out  io.Writer
	last string
}

// NewWriter creates a Writer on out
func NewWriter(out io.Writer) *Writer {
	return &Writer{Out: out}
}

// Show writes text followed by a newline
func (w *Writer) Show(text string) {
	w.last = text
	if text == "" {
		return
	}
	fmt.Fprintln(w.Out, text)
}

// Last returns the most recent report
func (w *Writer) Last() string {
	return w.last
}

// Func adapts a plain function to Reporter
type Func func(text string)

func (f Func) Show(text string) { f(text) }
