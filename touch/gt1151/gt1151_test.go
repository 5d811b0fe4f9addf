package gt1151

import (
	"testing"

	qt "github.com/frankban/quicktest"
	"github.com/merliot/inktouch/touch"
	"periph.io/x/conn/v3/i2c/i2ctest"
)

func TestPollTouch(t *testing.T) {
	c := qt.New(t)

	bus := &i2ctest.Playback{Ops: []i2ctest.IO{
		{Addr: DefaultAddr, W: []byte{0x81, 0x4E}, R: []byte{0x81}},
		{Addr: DefaultAddr, W: []byte{0x81, 0x4F}, R: []byte{0, 0x78, 0x00, 0x2C, 0x01, 0x10, 0x00, 0}},
		{Addr: DefaultAddr, W: []byte{0x81, 0x4E, 0x00}},
	}}
	dev := New(bus, DefaultAddr)

	raw, touched, err := dev.Poll()
	c.Assert(err, qt.IsNil)
	c.Assert(touched, qt.IsTrue)
	c.Assert(raw, qt.Equals, touch.Raw{X: 120, Y: 300, Pressure: 16})
	c.Assert(bus.Close(), qt.IsNil)
}

func TestPollNotReady(t *testing.T) {
	c := qt.New(t)

	bus := &i2ctest.Playback{Ops: []i2ctest.IO{
		{Addr: DefaultAddr, W: []byte{0x81, 0x4E}, R: []byte{0x00}},
	}}
	dev := New(bus, DefaultAddr)

	_, touched, err := dev.Poll()
	c.Assert(err, qt.IsNil)
	c.Assert(touched, qt.IsFalse)
	c.Assert(bus.Close(), qt.IsNil)
}

func TestPollRelease(t *testing.T) {
	c := qt.New(t)

	bus := &i2ctest.Playback{Ops: []i2ctest.IO{
		{Addr: DefaultAddr, W: []byte{0x81, 0x4E}, R: []byte{0x80}},
		{Addr: DefaultAddr, W: []byte{0x81, 0x4E, 0x00}},
	}}
	dev := New(bus, DefaultAddr)

	_, touched, err := dev.Poll()
	c.Assert(err, qt.IsNil)
	c.Assert(touched, qt.IsFalse)
	c.Assert(bus.Close(), qt.IsNil)
}

func TestPollError(t *testing.T) {
	c := qt.New(t)

	// no ops recorded: the first transaction fails
	bus := &i2ctest.Playback{DontPanic: true}
	dev := New(bus, DefaultAddr)

	_, _, err := dev.Poll()
	c.Assert(err, qt.ErrorMatches, `gt1151: read 0x814E: .*`)
}

func TestProductID(t *testing.T) {
	c := qt.New(t)

	bus := &i2ctest.Playback{Ops: []i2ctest.IO{
		{Addr: DefaultAddr, W: []byte{0x81, 0x40}, R: []byte("1158")},
	}}
	id, err := New(bus, DefaultAddr).ProductID()
	c.Assert(err, qt.IsNil)
	c.Assert(id, qt.Equals, "1158")
}
