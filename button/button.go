// Package button debounces push buttons read by polling.
package button

import "time"

// Pin is a digital input.  Get returns the raw level, true for high.
type Pin interface {
	Get() bool
}

// Event is a debounced button event
type Event int

const (
	None Event = iota
	Pressed
	Released
	Held
)

func (e Event) String() string {
	switch e {
	case Pressed:
		return "pressed"
	case Released:
		return "released"
	case Held:
		return "held"
	}
	return "none"
}

// Config for a button
type Config struct {
	// Pin reads low while the button is pressed
	ActiveLow bool
	// A new level must be stable for Debounce before it is accepted
	Debounce time.Duration
	// A press lasting HoldTime is reported once as Held.  Zero disables
	// hold detection.
	HoldTime time.Duration
}

// DefaultConfig returns the default button settings
func DefaultConfig() Config {
	return Config{
		ActiveLow: true,
		Debounce:  30 * time.Millisecond,
		HoldTime:  2 * time.Second,
	}
}

// Button is a debounced button
type Button struct {
	name      string
	pin       Pin
	cfg       Config
	stable    bool // debounced state, true if pressed
	candidate bool // last sampled state
	changedAt time.Time
	pressedAt time.Time
	held      bool
}

// New returns a button on pin.  The button starts released.
func New(name string, pin Pin, cfg Config) *Button {
	return &Button{name: name, pin: pin, cfg: cfg}
}

func (b *Button) String() string {
	return b.name
}

// Pressed returns the debounced state
func (b *Button) Pressed() bool {
	return b.stable
}

// Update samples the pin and returns the resulting event, if any
func (b *Button) Update(now time.Time) Event {
	active := b.pin.Get() != b.cfg.ActiveLow

	if active != b.candidate {
		b.candidate = active
		b.changedAt = now
	}

	if b.candidate != b.stable && now.Sub(b.changedAt) >= b.cfg.Debounce {
		b.stable = b.candidate
		if b.stable {
			b.pressedAt = now
			b.held = false
			return Pressed
		}
		return Released
	}

	if b.stable && !b.held && b.cfg.HoldTime > 0 &&
		now.Sub(b.pressedAt) >= b.cfg.HoldTime {
		b.held = true
		return Held
	}

	return None
}
