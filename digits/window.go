// Package digits implements fixed-width decimal digit windows and the
// multiply-and-rescan step that drives the all-even digit search. A window
// holds only the low-order digits of a huge power of two, so the arithmetic
// stays cheap no matter how far the search has advanced.
package digits

import "fmt"

// Window is a fixed-width little-endian decimal digit window. It represents
// an integer value modulo 10^width, one digit per cell, cell 0 holding the
// least significant digit. Every cell stays in [0,9] after every operation.
//
// A Window is backed by a slice: plain assignment aliases the digits. Use
// Clone when an independent copy is needed.
type Window struct {
	cells []uint8
}

// NewWindow returns a window of the given width representing zero.
func NewWindow(width int) Window {
	if width < 1 {
		panic(fmt.Sprintf("digits: window width %d, must be at least 1", width))
	}
	return Window{cells: make([]uint8, width)}
}

// NewWindowFromUint64 returns a window of the given width representing
// v mod 10^width. Digits of v beyond the window width are discarded.
func NewWindowFromUint64(width int, v uint64) Window {
	w := NewWindow(width)
	for i := 0; i < width && v > 0; i++ {
		w.cells[i] = uint8(v % 10)
		v /= 10
	}
	return w
}

// Width returns the number of digit cells.
func (w Window) Width() int { return len(w.cells) }

// Clone returns a copy of w with its own backing array.
func (w Window) Clone() Window {
	c := Window{cells: make([]uint8, len(w.cells))}
	copy(c.cells, w.cells)
	return c
}

// AppendDigits appends the window's digits to dst, most significant first,
// and returns the extended slice. The output is always exactly Width bytes
// of '0'..'9', leading zeros included.
func (w Window) AppendDigits(dst []byte) []byte {
	for i := len(w.cells) - 1; i >= 0; i-- {
		dst = append(dst, '0'+w.cells[i])
	}
	return dst
}

// String renders the window most significant digit first, zero padded to the
// full width.
func (w Window) String() string {
	return string(w.AppendDigits(make([]byte, 0, len(w.cells))))
}
