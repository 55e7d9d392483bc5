// Package cycles measures the repeating structure of 2^n mod 10^width.
// The doubling orbit turns periodic after a short lead in, and only a
// fraction of each cycle can ever host an all even power of two, so the
// numbers here say how much of the exponent line a search could skip.
package cycles

import (
	"fmt"
	"io"

	"golang.org/x/text/message"
)

// MaxWidth keeps doubled residues inside a uint64.
const MaxWidth = 18

// Stats describes the doubling orbit modulo 10^Order.
type Stats struct {
	Order     int     // window width in digits
	Mask      uint64  // 10^Order
	Leadin    int     // exponents burned before the orbit repeats
	Length    uint64  // cycle length once periodic
	EvenItems int     // cycle positions reached carry free with all digits even
	Gain      float64 // Length over EvenItems
	Verified  bool    // lead in residues stay out of the cycle and the entry recurs
}

// Detect walks the doubling orbit at the given width. A power of two
// with only even digits halves to a number whose digits are all at most
// four, so its window must arrive by a carry free doubling; EvenItems
// counts exactly those cycle positions. The walk touches every cycle
// element, and the cycle grows as 4*5^(width-1).
func Detect(width int) (Stats, error) {
	if width < 1 || width > MaxWidth {
		return Stats{}, fmt.Errorf("width %d outside [1, %d]", width, MaxWidth)
	}
	mask := uint64(1)
	for i := 0; i < width; i++ {
		mask *= 10
	}

	// the hare doubles twice per tortoise step until they meet inside
	// the cycle
	const start = uint64(1)
	fast, slow := start, start
	for {
		fast = fast * 4 % mask
		slow = slow * 2 % mask
		if fast == slow {
			break
		}
	}

	// restarting the tortoise makes the next meeting point the entry
	slow = start
	leadin := 0
	for {
		fast = fast * 2 % mask
		slow = slow * 2 % mask
		leadin++
		if fast == slow {
			break
		}
	}

	// one more lap measures the cycle length
	length := uint64(0)
	for {
		fast = fast * 2 % mask
		length++
		if fast == slow {
			break
		}
	}

	tail := make([]uint64, leadin+1)
	v := start
	for i := range tail {
		tail[i] = v
		v = v * 2 % mask
	}

	evenItems := 0
	exclusion := true
	inclusion := false
	prev := slow
	for i := uint64(0); i < length; i++ {
		doubled := prev * 2
		cur := doubled % mask
		if cur == doubled && evenDigits(cur) {
			evenItems++
		}
		for _, t := range tail[:leadin] {
			if cur == t {
				exclusion = false
			}
		}
		if cur == tail[leadin] {
			inclusion = true
		}
		prev = cur
	}

	return Stats{
		Order:     width,
		Mask:      mask,
		Leadin:    leadin,
		Length:    length,
		EvenItems: evenItems,
		Gain:      float64(length) / float64(evenItems),
		Verified:  exclusion && inclusion,
	}, nil
}

// Table prints the orbit structure for every width up to maxWidth.
func Table(w io.Writer, maxWidth int) error {
	if maxWidth < 1 || maxWidth > MaxWidth {
		return fmt.Errorf("max width %d outside [1, %d]", maxWidth, MaxWidth)
	}
	p := message.NewPrinter(message.MatchLanguage("en"))
	if _, err := p.Fprintf(w, "%8s %5s %15s %10s %8s %8s\n",
		"digits", "tail", "cycle", "verified", "even", "gain"); err != nil {
		return err
	}
	for width := 1; width <= maxWidth; width++ {
		s, err := Detect(width)
		if err != nil {
			return err
		}
		if _, err := p.Fprintf(w, "%8d %5d %15d %10t %8d %8.2f\n",
			s.Order, s.Leadin, s.Length, s.Verified, s.EvenItems, s.Gain); err != nil {
			return err
		}
	}
	return nil
}

func evenDigits(x uint64) bool {
	for z := x; z > 0; z = z / 10 {
		if z%10%2 == 1 {
			return false
		}
	}
	return true
}
