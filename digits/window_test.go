package digits

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewWindowFromUint64(t *testing.T) {
	assert.Equal(t, "2048", NewWindowFromUint64(4, 2048).String())
	assert.Equal(t, "0016", NewWindowFromUint64(4, 16).String())
	assert.Equal(t, "0000", NewWindowFromUint64(4, 0).String())
	assert.Equal(t, "7", NewWindowFromUint64(1, 7).String())

	// digits above the window width are dropped
	assert.Equal(t, "3456", NewWindowFromUint64(4, 123456).String())
	assert.Equal(t, "6", NewWindowFromUint64(1, 123456).String())
}

func TestNewWindowPanicsOnNonPositiveWidth(t *testing.T) {
	assert.Panics(t, func() { NewWindow(0) })
	assert.Panics(t, func() { NewWindow(-3) })
}

func TestWindowCloneIsIndependent(t *testing.T) {
	w := NewWindowFromUint64(4, 1234)
	c := w.Clone()
	NewStepper(2).Advance(&c)
	assert.Equal(t, "1234", w.String())
	assert.Equal(t, "2468", c.String())
}

func TestWindowAppendDigits(t *testing.T) {
	w := NewWindowFromUint64(6, 2048)
	buf := w.AppendDigits(nil)
	assert.Equal(t, []byte("002048"), buf)
	buf = w.AppendDigits(buf)
	assert.Equal(t, []byte("002048002048"), buf)
}

func TestWindowWidth(t *testing.T) {
	assert.Equal(t, 40, NewWindow(40).Width())
	assert.Equal(t, 1, NewWindowFromUint64(1, 9).Width())
}
