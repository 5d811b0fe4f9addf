package screen

import (
	"errors"
	"image"
	"testing"
	"time"

	qt "github.com/frankban/quicktest"
)

type flush struct {
	r    image.Rectangle
	full bool
}

type fakePanel struct {
	bounds  image.Rectangle
	flushes []flush
	fail    error
	asleep  bool
}

func newFakePanel() *fakePanel {
	return &fakePanel{bounds: image.Rect(0, 0, 250, 122)}
}

func (f *fakePanel) Bounds() image.Rectangle { return f.bounds }

func (f *fakePanel) Flush(img *image.Gray, r image.Rectangle, full bool) error {
	if f.fail != nil {
		return f.fail
	}
	f.flushes = append(f.flushes, flush{r, full})
	return nil
}

func (f *fakePanel) Sleep() error {
	f.asleep = true
	return nil
}

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func at(ms int) time.Time {
	return epoch.Add(time.Duration(ms) * time.Millisecond)
}

func TestRefreshNothing(t *testing.T) {
	c := qt.New(t)

	panel := newFakePanel()
	s := New(panel, Config{})
	kind, err := s.Refresh(at(0), false)
	c.Assert(err, qt.IsNil)
	c.Assert(kind, qt.Equals, Partial)
	c.Assert(panel.flushes, qt.HasLen, 1)
	c.Assert(panel.flushes[0], qt.Equals, flush{panel.bounds, false})

	kind, err = s.Refresh(at(10), false)
	c.Assert(err, qt.IsNil)
	c.Assert(kind, qt.Equals, None)
	c.Assert(panel.flushes, qt.HasLen, 1)
}

func TestRefreshPartial(t *testing.T) {
	c := qt.New(t)

	panel := newFakePanel()
	s := New(panel, Config{FullThreshold: 0.5})
	kind, _ := s.Refresh(at(0), false)
	c.Assert(kind, qt.Equals, Full)

	s.FillRect(image.Rect(10, 10, 20, 20), Ink)
	s.FillRect(image.Rect(30, 5, 40, 15), Ink)
	c.Assert(s.Dirty(), qt.Equals, image.Rect(10, 5, 40, 20))

	kind, err := s.Refresh(at(100), false)
	c.Assert(err, qt.IsNil)
	c.Assert(kind, qt.Equals, Partial)
	c.Assert(panel.flushes[1], qt.Equals, flush{image.Rect(10, 5, 40, 20), false})
	c.Assert(s.Dirty().Empty(), qt.IsTrue)
	c.Assert(s.Partials(), qt.Equals, 1)
}

func TestRefreshCoalesce(t *testing.T) {
	c := qt.New(t)

	panel := newFakePanel()
	s := New(panel, Config{MinInterval: 300 * time.Millisecond})
	s.Refresh(at(0), false)

	s.FillRect(image.Rect(0, 0, 5, 5), Ink)
	kind, _ := s.Refresh(at(100), false)
	c.Assert(kind, qt.Equals, None)
	s.FillRect(image.Rect(50, 50, 55, 55), Ink)
	kind, _ = s.Refresh(at(299), false)
	c.Assert(kind, qt.Equals, None)
	c.Assert(s.Pending(), qt.IsTrue)

	kind, _ = s.Refresh(at(300), false)
	c.Assert(kind, qt.Equals, Partial)
	c.Assert(panel.flushes, qt.HasLen, 2)
	c.Assert(panel.flushes[1].r, qt.Equals, image.Rect(0, 0, 55, 55))
}

func TestRefreshFullEvery(t *testing.T) {
	c := qt.New(t)

	panel := newFakePanel()
	s := New(panel, Config{FullEvery: 3})
	s.Refresh(at(0), false)

	var kinds []Kind
	for i := 1; i <= 6; i++ {
		s.FillRect(image.Rect(i, i, i+2, i+2), Ink)
		kind, err := s.Refresh(at(i), false)
		c.Assert(err, qt.IsNil)
		kinds = append(kinds, kind)
	}
	// the first refresh after New was partial number one
	c.Assert(kinds, qt.DeepEquals, []Kind{Partial, Partial, Full, Partial, Partial, Partial})
	c.Assert(panel.flushes[3].r, qt.Equals, panel.bounds)
}

// fullWaveformPanel refreshes with the full waveform even on partial flushes
type fullWaveformPanel struct {
	*fakePanel
}

func (fullWaveformPanel) PartialRefresh() bool { return false }

func TestRefreshNoGhosting(t *testing.T) {
	c := qt.New(t)

	panel := fullWaveformPanel{newFakePanel()}
	s := New(panel, Config{FullEvery: 3})
	s.Refresh(at(0), false)

	for i := 1; i <= 6; i++ {
		s.FillRect(image.Rect(i, i, i+2, i+2), Ink)
		kind, err := s.Refresh(at(i), false)
		c.Assert(err, qt.IsNil)
		c.Assert(kind, qt.Equals, Partial)
	}
	c.Assert(s.Partials(), qt.Equals, 0)
	c.Assert(panel.flushes, qt.HasLen, 7)
}

func TestRefreshForce(t *testing.T) {
	c := qt.New(t)

	panel := newFakePanel()
	s := New(panel, Config{MinInterval: time.Second})
	s.Refresh(at(0), false)

	// nothing dirty, but forced; deferred until the interval passes
	kind, _ := s.Refresh(at(10), true)
	c.Assert(kind, qt.Equals, None)
	c.Assert(s.Pending(), qt.IsTrue)

	kind, _ = s.Refresh(at(1000), false)
	c.Assert(kind, qt.Equals, Full)
	c.Assert(s.Pending(), qt.IsFalse)
}

func TestRefreshError(t *testing.T) {
	c := qt.New(t)

	panel := newFakePanel()
	s := New(panel, Config{})
	s.Refresh(at(0), false)

	panel.fail = errors.New("busy timeout")
	s.Line(0, 0, 9, 0, Ink)
	kind, err := s.Refresh(at(10), false)
	c.Assert(err, qt.ErrorMatches, `screen: partial refresh of \(0,0\)-\(10,1\): busy timeout`)
	c.Assert(kind, qt.Equals, None)
	c.Assert(s.Dirty(), qt.Equals, image.Rect(0, 0, 10, 1))

	panel.fail = nil
	kind, err = s.Refresh(at(20), false)
	c.Assert(err, qt.IsNil)
	c.Assert(kind, qt.Equals, Partial)
}

func TestInvert(t *testing.T) {
	c := qt.New(t)

	panel := newFakePanel()
	s := New(panel, Config{FullThreshold: 0.5})
	s.Refresh(at(0), false)

	s.FillRect(image.Rect(0, 0, 1, 1), Ink)
	c.Assert(s.Image().GrayAt(0, 0).Y, qt.Equals, uint8(black))
	c.Assert(s.Image().GrayAt(1, 1).Y, qt.Equals, uint8(white))

	s.Invert()
	c.Assert(s.Inverted(), qt.IsTrue)
	c.Assert(s.Image().GrayAt(0, 0).Y, qt.Equals, uint8(white))
	c.Assert(s.Image().GrayAt(1, 1).Y, qt.Equals, uint8(black))

	kind, _ := s.Refresh(at(10), false)
	c.Assert(kind, qt.Equals, Full)

	// ink is now white
	s.FillRect(image.Rect(5, 5, 6, 6), Ink)
	c.Assert(s.Image().GrayAt(5, 5).Y, qt.Equals, uint8(white))
}

func TestSleep(t *testing.T) {
	c := qt.New(t)

	panel := newFakePanel()
	s := New(panel, Config{})
	c.Assert(s.Sleep(), qt.IsNil)
	c.Assert(panel.asleep, qt.IsTrue)
}
