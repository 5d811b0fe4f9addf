package board

import (
	"errors"
	"testing"

	qt "github.com/frankban/quicktest"
)

func TestCloseOrder(t *testing.T) {
	c := qt.New(t)

	var order []string
	b := &Board{}
	b.OnClose(func() error { order = append(order, "spi"); return nil })
	b.OnClose(func() error { order = append(order, "panel"); return errors.New("panel busy") })
	b.OnClose(func() error { order = append(order, "i2c"); return nil })

	err := b.Close()
	c.Assert(err, qt.ErrorMatches, "panel busy")
	c.Assert(order, qt.DeepEquals, []string{"i2c", "panel", "spi"})

	// closers run once
	c.Assert(b.Close(), qt.IsNil)
	c.Assert(order, qt.HasLen, 3)
}

func TestDefaultConfig(t *testing.T) {
	c := qt.New(t)

	t.Setenv("INKTOUCH_BUTTON_A", "GPIO16")
	cfg := DefaultConfig()
	c.Assert(cfg.ButtonA, qt.Equals, "GPIO16")
	c.Assert(cfg.ButtonB, qt.Equals, "GPIO6")
	c.Assert(cfg.TouchAddr, qt.Equals, uint16(0x14))
	c.Assert(cfg.Landscape, qt.IsTrue)
}
