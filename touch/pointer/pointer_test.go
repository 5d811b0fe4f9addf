package pointer

import (
	"testing"

	qt "github.com/frankban/quicktest"
	"github.com/merliot/inktouch/touch"
	drivers "tinygo.org/x/drivers/touch"
)

type fakePointer []drivers.Point

func (f *fakePointer) ReadTouchPoint() drivers.Point {
	p := (*f)[0]
	*f = (*f)[1:]
	return p
}

func TestPointer(t *testing.T) {
	c := qt.New(t)

	fake := &fakePointer{{X: 100, Y: 200, Z: 0}, {X: 40, Y: 60, Z: 12}}
	p := New(fake)

	_, touched, err := p.Poll()
	c.Assert(err, qt.IsNil)
	c.Assert(touched, qt.IsFalse)

	raw, touched, err := p.Poll()
	c.Assert(err, qt.IsNil)
	c.Assert(touched, qt.IsTrue)
	c.Assert(raw, qt.Equals, touch.Raw{X: 40, Y: 60, Pressure: 12})
}

// ft6336Point scales a native FT6336 point the way the driver does
func ft6336Point(x, y int) drivers.Point {
	return drivers.Point{X: x * (65536 / 320), Y: y * (65536 / 270), Z: 1}
}

func TestFT6336Range(t *testing.T) {
	c := qt.New(t)

	mapper, err := touch.NewMapper(touch.MapperConfig{
		PanelWidth:  Range,
		PanelHeight: Range,
		Width:       296,
		Height:      128,
	})
	c.Assert(err, qt.IsNil)

	fake := &fakePointer{
		ft6336Point(0, 0),
		ft6336Point(100, 60),
		ft6336Point(160, 135),
		ft6336Point(319, 269),
	}
	p := New(fake)

	var got []touch.Point
	for len(*fake) > 0 {
		raw, touched, err := p.Poll()
		c.Assert(err, qt.IsNil)
		c.Assert(touched, qt.IsTrue)
		pt, ok := mapper.Map(raw)
		c.Assert(ok, qt.IsTrue, qt.Commentf("%+v", raw))
		got = append(got, pt)
	}
	c.Assert(got, qt.DeepEquals, []touch.Point{{X: 0, Y: 0}, {X: 92, Y: 28}, {X: 147, Y: 63}, {X: 293, Y: 127}})
}
