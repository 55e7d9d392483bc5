package search

import (
	"fmt"
	"os"
	"runtime"
	"sync"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/vanHavel/oeis/common"
)

// Config fixes the shape of a search before it starts. Treat values as
// immutable once validated; Runner works on its own copy.
type Config struct {
	// Digits is the width of the low-order window that must come up all
	// even, counted in decimal digits.
	Digits int `yaml:"digits" validate:"min=1,max=1000000"`
	// Workers is the number of stripes the exponents are split into,
	// one goroutine per stripe. Capped so the stride 2^Workers fits in
	// a uint64.
	Workers int `yaml:"workers" validate:"min=1,max=63"`
	// BatchSize is the number of steps a worker takes between progress
	// reports.
	BatchSize uint64 `yaml:"-" validate:"min=1"`
}

// DefaultConfig returns the stock search shape: a 40 digit window
// scanned by 4 workers reporting every billion steps.
func DefaultConfig() Config {
	return Config{Digits: 40, Workers: 4, BatchSize: 1_000_000_000}
}

var (
	validatorOnce sync.Once
	validatorInst *validator.Validate
)

// structValidator returns a process-wide singleton of the validator.
func structValidator() *validator.Validate {
	validatorOnce.Do(func() {
		validatorInst = validator.New(validator.WithRequiredStructEnabled())
	})
	return validatorInst
}

// Validate reports the first violated bound, if any.
func (c Config) Validate() error {
	if err := structValidator().Struct(c); err != nil {
		return fmt.Errorf("invalid search configuration: %w", err)
	}
	return nil
}

// CheckParallelism confirms the runtime will run one processor per
// worker. The stride arithmetic stays correct either way, but the scan
// rate and the meaning of a progress report both assume the workers
// advance together.
func (c Config) CheckParallelism() error {
	if p := runtime.GOMAXPROCS(0); p != c.Workers {
		return fmt.Errorf("GOMAXPROCS is %d but the search wants %d workers; set GOMAXPROCS or adjust --workers", p, c.Workers)
	}
	return nil
}

// fileConfig is the YAML form of Config. Pointer fields tell absent keys
// apart from zero values, and batch uses the magnitude syntax of the
// command line ("1G", "500M").
type fileConfig struct {
	Digits  *int    `yaml:"digits"`
	Workers *int    `yaml:"workers"`
	Batch   *string `yaml:"batch"`
}

// LoadFile overlays settings from a YAML file onto cfg. Keys the file
// does not mention keep their current values.
func LoadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	var f fileConfig
	if err := yaml.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	if f.Digits != nil {
		cfg.Digits = *f.Digits
	}
	if f.Workers != nil {
		cfg.Workers = *f.Workers
	}
	if f.Batch != nil {
		batch, err := common.ParseMagnitude(*f.Batch)
		if err != nil {
			return fmt.Errorf("parse %s: %w", path, err)
		}
		cfg.BatchSize = batch
	}
	return nil
}
