package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"runtime"
	"runtime/pprof"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/text/message"

	"github.com/vanHavel/oeis/common"
	"github.com/vanHavel/oeis/cycles"
	"github.com/vanHavel/oeis/search"
	"github.com/vanHavel/oeis/verify"
)

/*
Hunts for powers of two whose decimal expansion contains only even digits
(OEIS A068994). The known members are 2, 4, 8, 64 and 2048, and the
conjecture is that there are no more. Checking a single 2^n outright is
hopeless once n gets large, so the search keeps only the low-order digit
window of 2^n and slides it forward with one fused multiply per exponent,
striped across parallel workers. An all even window is evidence, not
proof: the digits above the window stay unchecked, which is what the
verify command is for.
*/

// Version metadata populated at build time via -ldflags.
var (
	releaseVersion = "dev"
	commit         = "none"
	date           = "unknown"
)

var (
	verbose bool

	rootCmd = &cobra.Command{
		Use:   "a068994",
		Short: "Search for powers of two with all even decimal digits",
		Long: `Searches for integers n where the decimal expansion of 2^n contains only
even digits (OEIS A068994). The known terms are 2, 4, 8, 64 and 2048; the
search command scans the low-order digit window of 2^n for all exponents in
parallel, the verify command recomputes a single candidate independently,
and the cycles command shows why windows repeat and how rarely they can
come up all even.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				logrus.SetLevel(logrus.DebugLevel)
			}
		},
	}
)

func init() {
	// Diagnostics go to stderr; stdout carries only windows and step counts.
	logrus.SetOutput(os.Stderr)

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	searchCmd.Flags().IntVar(&searchDigits, "digits", 40, "Number of digits to keep in the window")
	searchCmd.Flags().IntVar(&searchWorkers, "workers", 4, "Number of workers splitting the exponents")
	searchCmd.Flags().StringVar(&searchBatch, "batch", "1G", "Steps between progress reports. Can use M, G, T, P and E as power of ten")
	searchCmd.Flags().StringVar(&searchConfig, "config", "", "YAML file with search settings")
	searchCmd.Flags().StringVar(&cpuProfile, "cpuprofile", "", "write cpu profile to file")
	searchCmd.Flags().StringVar(&memProfile, "memprofile", "", "write memory profile to file")

	verifyCmd.Flags().IntVar(&verifyDigits, "digits", 100, "Number of digits in the recomputed window")
	verifyCmd.Flags().BoolVar(&verifyFull, "full", false, "Expand 2^n exactly instead of recomputing a window")

	cyclesCmd.Flags().IntVar(&cyclesMaxWidth, "max-width", 10, "Largest window width to analyze")

	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(verifyCmd)
	rootCmd.AddCommand(cyclesCmd)

	// Built-in version flag: set version string and a custom template.
	rootCmd.Version = releaseVersion
	rootCmd.Annotations = map[string]string{"commit": commit, "date": date}
	rootCmd.SetVersionTemplate("{{printf \"%s %s\\ncommit: %s\\ndate: %s\\n\" .DisplayName .Version (index .Annotations \"commit\") (index .Annotations \"date\")}}")
}

var (
	searchDigits  int
	searchWorkers int
	searchBatch   string
	searchConfig  string
	cpuProfile    string
	memProfile    string

	searchCmd = &cobra.Command{
		Use:   "search",
		Short: "Run the endless window scan over all exponents",
		Long: `Scans the low-order digit window of 2^n for every exponent n, looking for
a window of even digits only. Exponents are striped across workers, worker k
starting from 2^k and multiplying by 2^workers each step, so the runtime
must grant exactly one processor per worker. The scan has no natural end;
interrupt it to stop.

Stdout carries two line formats: a window of digits whenever one comes up
all even, and one "Steps: <count> from <worker>" line per batch. A printed
window covers only the low digits, so confirm any hit with the verify
command at a larger width.`,
		Run: func(cmd *cobra.Command, args []string) {
			cfg := loadSearchConfig(cmd)
			if err := cfg.CheckParallelism(); err != nil {
				logrus.Fatal(err)
			}

			if cpuProfile != "" {
				f, err := os.Create(cpuProfile)
				if err != nil {
					logrus.Fatal(err)
				}
				if err := pprof.StartCPUProfile(f); err != nil {
					logrus.Fatal(err)
				}
				defer pprof.StopCPUProfile()
			}
			defer func() {
				if memProfile != "" {
					f, err := os.Create(memProfile)
					if err != nil {
						logrus.Fatal(err)
					}
					runtime.GC()
					if err := pprof.WriteHeapProfile(f); err != nil {
						logrus.Fatal(err)
					}
					_ = f.Close()
				}
			}()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			logrus.WithFields(logrus.Fields{
				"digits":  cfg.Digits,
				"workers": cfg.Workers,
				"batch":   common.FormatMagnitude(cfg.BatchSize),
			}).Info("searching for powers of two with all even digits")

			runner, err := search.NewRunner(cfg, search.NewEmitter(os.Stdout), logrus.StandardLogger())
			if err != nil {
				logrus.Fatal(err)
			}
			if err := runner.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
				logrus.Fatal(err)
			}
			logrus.Info("search interrupted")
		},
	}
)

// loadSearchConfig builds the search configuration from the defaults, an
// optional YAML file and the command line, in that order of precedence.
func loadSearchConfig(cmd *cobra.Command) search.Config {
	cfg := search.DefaultConfig()
	if searchConfig != "" {
		if err := search.LoadFile(searchConfig, &cfg); err != nil {
			logrus.Fatal(err)
		}
	}
	if cmd.Flags().Changed("digits") {
		cfg.Digits = searchDigits
	}
	if cmd.Flags().Changed("workers") {
		cfg.Workers = searchWorkers
	}
	if cmd.Flags().Changed("batch") {
		batch, err := common.ParseMagnitude(searchBatch)
		if err != nil {
			logrus.Fatal(err)
		}
		cfg.BatchSize = batch
	}
	if err := cfg.Validate(); err != nil {
		logrus.Fatal(err)
	}
	return cfg
}

var (
	verifyDigits int
	verifyFull   bool

	verifyCmd = &cobra.Command{
		Use:   "verify N",
		Short: "Recompute a candidate exponent independently",
		Long: `Recomputes 2^N without the incremental scanner and reports whether its
digits are even. By default only the low window is rebuilt, by modular
exponentiation, at a width of your choosing; --full expands the power
outright and settles the question, but only for exponents small enough to
expand. The exponent accepts the M, G, T, P and E magnitude suffixes.`,
		Args: cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			n, err := common.ParseMagnitude(args[0])
			if err != nil {
				logrus.Fatal(err)
			}
			p := message.NewPrinter(message.MatchLanguage("en"))

			if verifyFull {
				count, firstOdd, err := verify.Full(n)
				if err != nil {
					logrus.Fatal(err)
				}
				if firstOdd == -1 {
					_, _ = p.Fprintf(os.Stdout, "2^%d has %d digits, all of them even\n", n, count)
				} else {
					_, _ = p.Fprintf(os.Stdout, "2^%d has %d digits, first odd digit %d from the right\n", n, count, firstOdd)
				}
				return
			}

			window, firstOdd, err := verify.Suffix(n, verifyDigits)
			if err != nil {
				logrus.Fatal(err)
			}
			if firstOdd == -1 {
				_, _ = p.Fprintf(os.Stdout, "2^%d mod 10^%d = %s\n", n, verifyDigits, window)
				_, _ = p.Fprintf(os.Stdout, "all even in the window; widen --digits or use --full to settle it\n")
			} else {
				_, _ = p.Fprintf(os.Stdout, "2^%d mod 10^%d = %s\n", n, verifyDigits, window)
				_, _ = p.Fprintf(os.Stdout, "first odd digit %d from the right\n", firstOdd)
			}
		},
	}
)

var (
	cyclesMaxWidth int

	cyclesCmd = &cobra.Command{
		Use:   "cycles",
		Short: "Show the repeating structure of the digit windows",
		Long: `Prints, for each window width, how soon the windows of 2^n start to
repeat, how long the repetition cycle is, and how few of its members could
ever be all even. The gain column is the factor a cycle-aware search could
skip by; the table is also a guide to how wide a window has to be before
spurious all-even hits become rare.`,
		Run: func(cmd *cobra.Command, args []string) {
			if err := cycles.Table(os.Stdout, cyclesMaxWidth); err != nil {
				logrus.Fatal(err)
			}
		},
	}
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		logrus.Fatal(err)
	}
}
