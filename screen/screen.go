// Package screen keeps a grayscale canvas for an e-paper panel and decides
// when and how to refresh the panel.
//
// E-paper refreshes are slow and partial refreshes leave ghosting behind.
// Drawing only marks the changed region dirty; Refresh pushes the dirty region
// to the panel at most once per MinInterval, as a partial refresh, and falls
// back to a full refresh when asked to, when most of the screen changed, or
// after FullEvery partial refreshes.
package screen

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"time"
)

// Panel is an e-paper display driver
type Panel interface {
	// Bounds of the panel's drawing area
	Bounds() image.Rectangle
	// Flush region r of img to the panel.  If full, the whole panel is
	// refreshed with the full waveform.
	Flush(img *image.Gray, r image.Rectangle, full bool) error
	// Sleep puts the panel into its low power mode
	Sleep() error
}

// PartialRefresher is implemented by panels that can tell whether a partial
// flush uses a partial waveform.  Flushes on a panel that reports false
// leave no ghosting and do not count toward FullEvery.
type PartialRefresher interface {
	PartialRefresh() bool
}

// Kind of refresh
type Kind int

const (
	None Kind = iota
	Partial
	Full
)

func (k Kind) String() string {
	switch k {
	case Partial:
		return "partial"
	case Full:
		return "full"
	}
	return "none"
}

// Config tunes the refresh policy
type Config struct {
	// Minimum time between refreshes.  Changes made in between are
	// coalesced into the next refresh.
	MinInterval time.Duration
	// Do a full refresh after FullEvery partial refreshes.  Zero means
	// never.
	FullEvery int
	// Do a full refresh if the dirty region covers at least this fraction
	// of the screen.  Zero means never.
	FullThreshold float64
}

// DefaultConfig returns the default refresh policy
func DefaultConfig() Config {
	return Config{
		MinInterval:   300 * time.Millisecond,
		FullEvery:     20,
		FullThreshold: 0.5,
	}
}

const (
	black = 0x00
	white = 0xFF
)

// Screen is a canvas backed by a panel
type Screen struct {
	panel     Panel
	cfg       Config
	img       *image.Gray
	fg, bg    uint8
	dirty     image.Rectangle
	forceFull bool
	partials  int
	lastAt    time.Time
	ghosts    bool // partial flushes leave ghosting
}

// New returns a blank white screen for the panel
func New(panel Panel, cfg Config) *Screen {
	s := &Screen{
		panel: panel,
		cfg:   cfg,
		img:   image.NewGray(panel.Bounds()),
		fg:    black,
		bg:    white,
	}
	s.ghosts = true
	if pr, ok := panel.(PartialRefresher); ok {
		s.ghosts = pr.PartialRefresh()
	}
	s.Clear()
	return s
}

// Bounds of the screen
func (s *Screen) Bounds() image.Rectangle {
	return s.img.Rect
}

// Image returns the canvas
func (s *Screen) Image() *image.Gray {
	return s.img
}

// Inverted returns true if drawing white on black
func (s *Screen) Inverted() bool {
	return s.fg == white
}

// Dirty returns the region changed since the last refresh
func (s *Screen) Dirty() image.Rectangle {
	return s.dirty
}

// Pending returns true if a refresh is waiting
func (s *Screen) Pending() bool {
	return s.forceFull || !s.dirty.Empty()
}

// Partials returns the number of partial refreshes since the last full one
func (s *Screen) Partials() int {
	return s.partials
}

func (s *Screen) mark(r image.Rectangle) {
	r = r.Intersect(s.img.Rect)
	if r.Empty() {
		return
	}
	s.dirty = s.dirty.Union(r)
}

// ForceFull makes the next refresh a full refresh
func (s *Screen) ForceFull() {
	s.forceFull = true
}

// Clear the screen to the background color
func (s *Screen) Clear() {
	draw.Draw(s.img, s.img.Rect, &image.Uniform{color.Gray{Y: s.bg}}, image.Point{}, draw.Src)
	s.mark(s.img.Rect)
}

// Invert swaps foreground and background, inverting the canvas, and forces
// a full refresh
func (s *Screen) Invert() {
	s.fg, s.bg = s.bg, s.fg
	for i, p := range s.img.Pix {
		s.img.Pix[i] = 0xFF - p
	}
	s.mark(s.img.Rect)
	s.forceFull = true
}

// Refresh the panel if anything changed.  force asks for a full refresh.
// Returns the kind of refresh done.  A refresh due inside MinInterval of the
// previous one is deferred to a later call.  If the panel fails, the dirty
// region is kept for the next try.
func (s *Screen) Refresh(now time.Time, force bool) (Kind, error) {
	if force {
		s.forceFull = true
	}
	if !s.Pending() {
		return None, nil
	}
	if !s.lastAt.IsZero() && now.Sub(s.lastAt) < s.cfg.MinInterval {
		return None, nil
	}

	full := s.forceFull ||
		(s.cfg.FullEvery > 0 && s.partials >= s.cfg.FullEvery) ||
		(s.cfg.FullThreshold > 0 && area(s.dirty) >= s.cfg.FullThreshold*area(s.img.Rect))

	r := s.dirty
	kind := Partial
	if full {
		r = s.img.Rect
		kind = Full
	}

	s.lastAt = now
	if err := s.panel.Flush(s.img, r, full); err != nil {
		return None, fmt.Errorf("screen: %s refresh of %v: %w", kind, r, err)
	}

	s.dirty = image.Rectangle{}
	s.forceFull = false
	if full {
		s.partials = 0
	} else if s.ghosts {
		s.partials++
	}
	return kind, nil
}

// Sleep the panel
func (s *Screen) Sleep() error {
	return s.panel.Sleep()
}

func area(r image.Rectangle) float64 {
	return float64(r.Dx()) * float64(r.Dy())
}
