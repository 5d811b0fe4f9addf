package touch

import (
	"errors"
	"fmt"
)

// Rotation is a clockwise rotation in degrees
type Rotation int

const (
	Rotate0   Rotation = 0
	Rotate90  Rotation = 90
	Rotate180 Rotation = 180
	Rotate270 Rotation = 270
)

// ErrBadGeometry is returned for a mapper configuration that cannot map
var ErrBadGeometry = errors.New("touch: bad geometry")

// MapperConfig describes how the touch panel sits on the display
type MapperConfig struct {
	// Resolution of the touch panel, as reported by the controller
	PanelWidth, PanelHeight int
	// Resolution of the display, after rotation
	Width, Height int
	// SwapXY, InvertX and InvertY are applied to the raw point, in that
	// order, before rotating
	SwapXY  bool
	InvertX bool
	InvertY bool
	// Rotation of the panel relative to the display
	Rotation Rotation
}

// Mapper maps raw panel coordinates to display coordinates
type Mapper struct {
	cfg MapperConfig
	// panel size after swap and rotation
	rw, rh int
}

// NewMapper returns a mapper for cfg
func NewMapper(cfg MapperConfig) (*Mapper, error) {
	if cfg.PanelWidth <= 0 || cfg.PanelHeight <= 0 {
		return nil, fmt.Errorf("%w: panel %dx%d", ErrBadGeometry,
			cfg.PanelWidth, cfg.PanelHeight)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, fmt.Errorf("%w: display %dx%d", ErrBadGeometry,
			cfg.Width, cfg.Height)
	}

	m := &Mapper{cfg: cfg, rw: cfg.PanelWidth, rh: cfg.PanelHeight}
	if cfg.SwapXY {
		m.rw, m.rh = m.rh, m.rw
	}

	switch cfg.Rotation {
	case Rotate0, Rotate180:
	case Rotate90, Rotate270:
		m.rw, m.rh = m.rh, m.rw
	default:
		return nil, fmt.Errorf("%w: rotation %d", ErrBadGeometry, cfg.Rotation)
	}

	return m, nil
}

// Config returns the mapper's configuration
func (m *Mapper) Config() MapperConfig {
	return m.cfg
}

// Map maps raw to display coordinates.  Returns false if raw is outside the
// panel.
func (m *Mapper) Map(raw Raw) (Point, bool) {
	x, y := raw.X, raw.Y
	w, h := m.cfg.PanelWidth, m.cfg.PanelHeight

	if x < 0 || x >= w || y < 0 || y >= h {
		return Point{}, false
	}

	if m.cfg.SwapXY {
		x, y = y, x
		w, h = h, w
	}
	if m.cfg.InvertX {
		x = w - 1 - x
	}
	if m.cfg.InvertY {
		y = h - 1 - y
	}

	switch m.cfg.Rotation {
	case Rotate90:
		x, y = h-1-y, x
	case Rotate180:
		x, y = w-1-x, h-1-y
	case Rotate270:
		x, y = y, w-1-x
	}

	// m.rw x m.rh is the rotated panel; scale to the display
	if m.rw != m.cfg.Width {
		x = x * m.cfg.Width / m.rw
	}
	if m.rh != m.cfg.Height {
		y = y * m.cfg.Height / m.rh
	}

	return Point{clamp(x, m.cfg.Width), clamp(y, m.cfg.Height)}, true
}

func clamp(v, n int) int {
	if v < 0 {
		return 0
	}
	if v >= n {
		return n - 1
	}
	return v
}
