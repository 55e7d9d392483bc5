// Package common holds small helpers shared by the search commands.
package common

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// countPattern accepts a digit run (underscores allowed for grouping)
// followed by optional magnitude suffixes, e.g. "25", "2_500M", "1G".
var countPattern = regexp.MustCompile(`^([0-9_]+)([MGTPE]*)$`)

// ParseMagnitude decodes a count like "1G" or "2_500M" into its numeric
// value. Suffixes compound, so "1MG" reads as 10^15.
func ParseMagnitude(s string) (uint64, error) {
	pieces := countPattern.FindStringSubmatch(s)
	if pieces == nil {
		return 0, fmt.Errorf("malformed count %q", s)
	}
	v, err := strconv.ParseUint(strings.ReplaceAll(pieces[1], "_", ""), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("malformed count %q: %w", s, err)
	}
	for _, r := range pieces[2] {
		var scale uint64
		switch r {
		case 'M':
			scale = 1_000_000
		case 'G':
			scale = 1_000_000_000
		case 'T':
			scale = 1_000_000_000_000
		case 'P':
			scale = 1_000_000_000_000_000
		case 'E':
			scale = 1_000_000_000_000_000_000
		}
		if v > math.MaxUint64/scale {
			return 0, fmt.Errorf("count %q overflows uint64", s)
		}
		v *= scale
	}
	return v, nil
}

// FormatMagnitude renders v the way ParseMagnitude reads it, rounded to
// one decimal place from a million up.
func FormatMagnitude(v uint64) string {
	switch {
	case v >= 1_000_000_000_000_000:
		return fmt.Sprintf("%.1fP", float64(v)/1e15)
	case v >= 1_000_000_000_000:
		return fmt.Sprintf("%.1fT", float64(v)/1e12)
	case v >= 1_000_000_000:
		return fmt.Sprintf("%.1fG", float64(v)/1e9)
	case v >= 1_000_000:
		return fmt.Sprintf("%.1fM", float64(v)/1e6)
	default:
		return strconv.FormatUint(v, 10)
	}
}
