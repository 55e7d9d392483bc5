package verify

import (
	"math/big"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func textFirstOdd(text string) int {
	for i := 0; i < len(text); i++ {
		if (text[len(text)-1-i]-'0')%2 == 1 {
			return i
		}
	}
	return -1
}

func TestSuffixKnownExponents(t *testing.T) {
	cases := []struct {
		n        uint64
		width    int
		window   string
		firstOdd int
	}{
		{11, 10, "0000002048", -1},
		{11, 4, "2048", -1},
		{12, 4, "4096", 1},
		{6, 2, "64", -1},
		{4, 1, "6", -1},
		{0, 4, "0001", 0},
		{1, 1, "2", -1},
		{10, 4, "1024", 3},
	}
	for _, c := range cases {
		window, firstOdd, err := Suffix(c.n, c.width)
		require.NoError(t, err, "n=%d width=%d", c.n, c.width)
		assert.Equal(t, c.window, window, "n=%d width=%d", c.n, c.width)
		assert.Equal(t, c.firstOdd, firstOdd, "n=%d width=%d", c.n, c.width)
	}
}

func TestSuffixRejectsBadWidth(t *testing.T) {
	for _, width := range []int{0, -1} {
		_, _, err := Suffix(11, width)
		assert.Error(t, err, "width %d", width)
	}
}

func TestFullKnownExponents(t *testing.T) {
	cases := []struct {
		n        uint64
		digits   int
		firstOdd int
	}{
		{0, 1, 0},
		{1, 1, -1},
		{2, 1, -1},
		{3, 1, -1},
		{4, 2, 1},
		{6, 2, -1},
		{11, 4, -1},
		{12, 4, 1},
	}
	for _, c := range cases {
		count, firstOdd, err := Full(c.n)
		require.NoError(t, err, "n=%d", c.n)
		assert.Equal(t, c.digits, count, "n=%d", c.n)
		assert.Equal(t, c.firstOdd, firstOdd, "n=%d", c.n)
	}
}

func TestFullRejectsHugeExponents(t *testing.T) {
	_, _, err := Full(MaxFullExponent + 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "too large")

	_, _, err = Full(MaxFullExponent)
	assert.NoError(t, err)
}

// A window can be all even while the digits above it are not. 2^4 = 16
// shows this at width one, which is why a confirmed term needs the full
// expansion or a window wider than the whole number.
func TestSuffixIsOnlyAsGoodAsItsWindow(t *testing.T) {
	window, suffixOdd, err := Suffix(4, 1)
	require.NoError(t, err)
	assert.Equal(t, "6", window)
	assert.Equal(t, -1, suffixOdd)

	count, fullOdd, err := Full(4)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
	assert.Equal(t, 1, fullOdd)
}

func TestSuffixAgreesWithFullOnCoveredWindows(t *testing.T) {
	const width = 25
	for n := uint64(0); n <= 60; n++ {
		window, suffixOdd, err := Suffix(n, width)
		require.NoError(t, err)
		count, fullOdd, err := Full(n)
		require.NoError(t, err)
		require.LessOrEqual(t, count, width)

		full := new(big.Int).Lsh(big.NewInt(1), uint(n)).Text(10)
		assert.Equal(t, strings.Repeat("0", width-len(full))+full, window, "n=%d", n)
		assert.Equal(t, fullOdd, suffixOdd, "n=%d", n)
	}
}

func TestSuffixMatchesBigIntReference(t *testing.T) {
	rng := rand.New(rand.NewPCG(16, 29))
	twoBig := big.NewInt(2)
	for _, width := range []int{7, 40} {
		mod := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(width)), nil)
		for trial := 0; trial < 50; trial++ {
			n := rng.Uint64N(1_000_000_000_000)
			window, firstOdd, err := Suffix(n, width)
			require.NoError(t, err)

			ref := new(big.Int).Exp(twoBig, new(big.Int).SetUint64(n), mod).Text(10)
			ref = strings.Repeat("0", width-len(ref)) + ref
			assert.Equal(t, ref, window, "n=%d width=%d", n, width)
			assert.Equal(t, textFirstOdd(window), firstOdd, "n=%d width=%d", n, width)
		}
	}
}

func BenchmarkSuffixWidth40(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _, _ = Suffix(1_000_000_000_000, 40)
	}
}
