// Package touch turns raw reports from a capacitive touch controller into
// debounced touch events in display coordinates.
//
// A Controller is polled for the raw panel coordinate of the first touch
// point.  A Mapper rotates, mirrors and scales the raw coordinate into the
// display's coordinate space, and a Filter suppresses repeats and jitter and
// detects release.  Poller ties the three together for a poll loop.
package touch

import "fmt"

// Raw is a touch point as reported by the controller, in panel coordinates
type Raw struct {
	X, Y     int
	Pressure int
}

// Point is a touch point in display coordinates
type Point struct {
	X, Y int
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Controller is a touch controller.  Poll returns the first touch point and
// true while the panel is touched.  Controllers that only report new data
// (such as the GT1151) return false when there is nothing new; the Filter
// smooths over that with its release count.
type Controller interface {
	Poll() (Raw, bool, error)
	Close() error
}
