package search

import (
	"fmt"

	"github.com/vanHavel/oeis/digits"
)

// Partition splits the exponents among workers. Worker k owns the
// exponents congruent to k modulo the worker count, so every worker
// walks its own stripe with a fixed stride of 2^workers and never
// synchronizes with the others.
type Partition struct {
	workers int
	stride  uint64
}

// NewPartition builds a partition for the given worker count. The count
// must stay in [1, 63] so the stride fits in a uint64.
func NewPartition(workers int) (Partition, error) {
	if workers < 1 || workers > 63 {
		return Partition{}, fmt.Errorf("worker count %d outside [1, 63]", workers)
	}
	return Partition{workers: workers, stride: 1 << workers}, nil
}

// Workers returns the worker count.
func (p Partition) Workers() int { return p.workers }

// Stride returns the factor 2^workers each step multiplies by.
func (p Partition) Stride() uint64 { return p.stride }

// Seed builds the starting window for a worker, holding the low width
// digits of 2^worker. Doubling up from 1 keeps the construction valid
// for any window width.
func (p Partition) Seed(worker, width int) digits.Window {
	if worker < 0 || worker >= p.workers {
		panic(fmt.Sprintf("worker %d outside partition of %d", worker, p.workers))
	}
	w := digits.NewWindowFromUint64(width, 1)
	double := digits.NewStepper(2)
	for i := 0; i < worker; i++ {
		double.Advance(&w)
	}
	return w
}

// Exponent recovers the exponent whose power of two a worker's window
// holds after the given number of steps.
func (p Partition) Exponent(worker int, steps uint64) uint64 {
	return uint64(worker) + steps*uint64(p.workers)
}
