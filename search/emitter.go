package search

import (
	"io"
	"strconv"
	"sync"

	"github.com/vanHavel/oeis/digits"
)

// Emitter writes the result stream. Every line leaves in a single Write
// under a lock, so lines from concurrent workers never interleave.
type Emitter struct {
	mu  sync.Mutex
	w   io.Writer
	buf []byte
}

// NewEmitter wraps w, usually os.Stdout.
func NewEmitter(w io.Writer) *Emitter {
	return &Emitter{w: w}
}

// Match prints the window of a hit as one line of exactly Width()
// digits, most significant first.
func (e *Emitter) Match(w digits.Window) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.buf = w.AppendDigits(e.buf[:0])
	e.buf = append(e.buf, '\n')
	_, err := e.w.Write(e.buf)
	return err
}

// Progress prints a worker's cumulative step count, one line per batch.
func (e *Emitter) Progress(steps uint64, worker int) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.buf = append(e.buf[:0], "Steps: "...)
	e.buf = strconv.AppendUint(e.buf, steps, 10)
	e.buf = append(e.buf, " from "...)
	e.buf = strconv.AppendInt(e.buf, int64(worker), 10)
	e.buf = append(e.buf, '\n')
	_, err := e.w.Write(e.buf)
	return err
}
