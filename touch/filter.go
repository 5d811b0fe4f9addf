package touch

import "time"

// Kind of touch event
type Kind int

const (
	None Kind = iota
	Down
	Move
	Up
)

func (k Kind) String() string {
	switch k {
	case Down:
		return "down"
	case Move:
		return "move"
	case Up:
		return "up"
	}
	return "none"
}

// Event is a debounced touch event
type Event struct {
	Kind  Kind
	Point Point
	At    time.Time
}

// FilterConfig tunes the touch debouncer
type FilterConfig struct {
	// Movement of Jitter pixels or less, in either axis, is not a move
	Jitter int
	// A touch held still is reported again as a Move every Repeat.  Zero
	// disables repeats.
	Repeat time.Duration
	// Number of consecutive empty polls before a touch is released
	Release int
}

// DefaultFilterConfig returns the default filter settings
func DefaultFilterConfig() FilterConfig {
	return FilterConfig{
		Jitter:  2,
		Repeat:  700 * time.Millisecond,
		Release: 3,
	}
}

// Filter debounces touch reports into events
type Filter struct {
	cfg    FilterConfig
	down   bool
	last   Point
	lastAt time.Time
	empty  int
}

// NewFilter returns a filter for cfg
func NewFilter(cfg FilterConfig) *Filter {
	if cfg.Release < 1 {
		cfg.Release = 1
	}
	if cfg.Jitter < 0 {
		cfg.Jitter = 0
	}
	return &Filter{cfg: cfg}
}

// Down returns true while a touch is held
func (f *Filter) Down() bool {
	return f.down
}

// Update feeds one poll result into the filter
func (f *Filter) Update(now time.Time, p Point, touched bool) Event {
	if !touched {
		if !f.down {
			return Event{}
		}
		f.empty++
		if f.empty < f.cfg.Release {
			return Event{}
		}
		f.down = false
		f.empty = 0
		return Event{Kind: Up, Point: f.last, At: now}
	}

	f.empty = 0

	if !f.down {
		f.down = true
		f.last, f.lastAt = p, now
		return Event{Kind: Down, Point: p, At: now}
	}

	if abs(p.X-f.last.X) > f.cfg.Jitter || abs(p.Y-f.last.Y) > f.cfg.Jitter {
		f.last, f.lastAt = p, now
		return Event{Kind: Move, Point: p, At: now}
	}

	if f.cfg.Repeat > 0 && now.Sub(f.lastAt) >= f.cfg.Repeat {
		f.lastAt = now
		return Event{Kind: Move, Point: f.last, At: now}
	}

	return Event{}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
