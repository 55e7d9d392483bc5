package digits

import "fmt"

// maxMultiplier bounds the Stepper constant so that the per-digit
// intermediate digit*r + carry never exceeds a uint64: the carry stays below
// the multiplier (see Advance) and the digit contribution adds at most 81.
const maxMultiplier = 1<<64 - 1 - 81

// Stepper multiplies a Window in place by a fixed constant modulo 10^width
// and reports whether the updated window consists of even digits only. The
// constant is split once into its shift and unit parts so the hot loop does
// no division by the multiplier.
type Stepper struct {
	q uint64 // multiplier / 10
	r uint64 // multiplier % 10
}

// NewStepper returns a stepper for the given multiplier.
func NewStepper(multiplier uint64) Stepper {
	if multiplier > maxMultiplier {
		panic(fmt.Sprintf("digits: multiplier %d overflows the carry arithmetic", multiplier))
	}
	return Stepper{q: multiplier / 10, r: multiplier % 10}
}

// Advance multiplies w in place by the stepper's constant modulo 10^width
// and returns true when every digit of the result is even.
//
// Multiplying by C = 10q + r is the same as multiplying by r and adding q
// times the window shifted one digit up. The shift is folded into the carry:
// each original digit contributes digit*q to the carry for the next cell, so
// a single pass from the least significant digit suffices. The carry never
// reaches C: from carry < C follows
//
//	digit*q + (digit*r + carry) / 10 <= 9q + (9r + C - 1)/10 = C - 1.
//
// Any carry left after the last cell is the part of the product above
// 10^width and is dropped.
//
// The parity check runs unconditionally on every cell: the whole window has
// to be touched for the multiply anyway, and collecting the low bits with an
// OR keeps the loop free of data-dependent branches. The window is all even
// exactly when no low bit was seen.
func (s Stepper) Advance(w *Window) bool {
	var carry, odd uint64
	for i, d := range w.cells {
		combined := uint64(d)*s.r + carry
		next := combined % 10
		carry = uint64(d)*s.q + combined/10
		w.cells[i] = uint8(next)
		odd |= next & 1
	}
	return odd == 0
}
