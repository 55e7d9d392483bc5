// Package search hunts for powers of two whose low-order decimal digits
// are all even. Exponents are striped across workers, each worker slides
// its own digit window forward with a fused multiply, and hits plus
// progress reports go out on a shared line-atomic stream.
package search

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/message"

	"github.com/vanHavel/oeis/digits"
)

// Runner owns one search. Configuration is copied in at construction and
// never changes afterwards.
type Runner struct {
	cfg     Config
	part    Partition
	out     *Emitter
	log     logrus.FieldLogger
	printer *message.Printer
}

// NewRunner validates cfg and prepares a runner that reports hits and
// progress through out. A nil log falls back to the logrus standard
// logger.
func NewRunner(cfg Config, out *Emitter, log logrus.FieldLogger) (*Runner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	part, err := NewPartition(cfg.Workers)
	if err != nil {
		return nil, err
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Runner{
		cfg:     cfg,
		part:    part,
		out:     out,
		log:     log,
		printer: message.NewPrinter(message.MatchLanguage("en")),
	}, nil
}

// Run starts one goroutine per worker and blocks until ctx is cancelled
// or a write on the result stream fails. The search has no natural end,
// so a clean shutdown surfaces as ctx.Err().
func (r *Runner) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)
	for k := 0; k < r.part.Workers(); k++ {
		k := k // per-iteration copy; the go directive predates Go 1.22 loop scoping
		g.Go(func() error {
			return r.worker(ctx, k)
		})
	}
	return g.Wait()
}

// worker walks stripe k in batches, checking for cancellation only at
// batch boundaries to keep the hot loop free of synchronization.
func (r *Runner) worker(ctx context.Context, k int) error {
	w := r.part.Seed(k, r.cfg.Digits)
	st := digits.NewStepper(r.part.Stride())
	wlog := r.log.WithField("worker", k)
	wlog.WithField("stride", r.part.Stride()).Debug("worker seeded")

	start := time.Now()
	var steps uint64
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		for i := uint64(0); i < r.cfg.BatchSize; i++ {
			if st.Advance(&w) {
				if err := r.out.Match(w); err != nil {
					return err
				}
				n := r.part.Exponent(k, steps+i+1)
				wlog.WithField("exponent", r.printer.Sprintf("%d", n)).Info("window all even, confirm with verify at a larger width")
			}
		}
		steps += r.cfg.BatchSize
		if err := r.out.Progress(steps, k); err != nil {
			return err
		}
		wlog.WithFields(logrus.Fields{
			"steps": r.printer.Sprintf("%d", steps),
			"rate":  r.printer.Sprintf("%.0f/s", float64(steps)/time.Since(start).Seconds()),
		}).Debug("batch done")
	}
}
