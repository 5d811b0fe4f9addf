package touch

import (
	"fmt"
	"time"
)

// Poller polls a controller and returns debounced events in display
// coordinates
type Poller struct {
	ctrl   Controller
	mapper *Mapper
	filter *Filter

	// Log at most one poll error per ErrorEvery
	ErrorEvery time.Duration
	lastErrAt  time.Time
	errors     int
}

// NewPoller returns a poller for the controller
func NewPoller(ctrl Controller, mapper *Mapper, cfg FilterConfig) *Poller {
	return &Poller{
		ctrl:       ctrl,
		mapper:     mapper,
		filter:     NewFilter(cfg),
		ErrorEvery: 3 * time.Second,
	}
}

// Errors returns the number of failed polls
func (p *Poller) Errors() int {
	return p.errors
}

// Poll the controller once.  A failed poll or an out-of-panel point is
// ignored and leaves the filter state unchanged.
func (p *Poller) Poll(now time.Time) Event {
	raw, touched, err := p.ctrl.Poll()
	if err != nil {
		p.errors++
		if p.lastErrAt.IsZero() || now.Sub(p.lastErrAt) >= p.ErrorEvery {
			fmt.Printf("Touch poll error (%d total): %s\r\n", p.errors, err)
			p.lastErrAt = now
		}
		return Event{}
	}

	var pt Point
	if touched {
		var ok bool
		if pt, ok = p.mapper.Map(raw); !ok {
			return Event{}
		}
	}

	return p.filter.Update(now, pt, touched)
}

// Close the controller
func (p *Poller) Close() error {
	return p.ctrl.Close()
}
