package inktouch

import (
	"context"
	"fmt"
	"io"
)

// Runner runs a Thinger on its own bus
type Runner struct {
	thinger  Thinger
	bus      *Bus
	injector *Injector
	tracer   *Tracer
}

// NewRunner returns a runner with the thinger's subscribers registered on the
// runner's bus
func NewRunner(thinger Thinger) *Runner {
	var r Runner

	r.thinger = thinger

	r.bus = NewBus("runner bus", nil, nil)
	r.injector = NewInjector("runner injector", r.bus)

	for tag, handler := range thinger.Subscribers() {
		if !r.bus.Handle(tag, handler) {
			fmt.Printf("Duplicate handler for tag %q\r\n", tag)
		}
	}

	return &r
}

// Trace writes every broadcast packet to w
func (r *Runner) Trace(w io.Writer) error {
	if r.tracer != nil {
		return nil
	}
	t, err := NewTracer("runner tracer", r.bus, w)
	if err != nil {
		return err
	}
	r.tracer = t
	return nil
}

// Bus returns the runner's bus
func (r *Runner) Bus() *Bus {
	return r.bus
}

// Injector returns the runner's injector
func (r *Runner) Injector() *Injector {
	return r.injector
}

// Run the thinger on hardware until ctx is done
func (r *Runner) Run(ctx context.Context) {
	fmt.Printf("Running %s, handling %v\r\n", r.thinger, r.bus.Tags())
	r.thinger.SetFlag(ThingFlagMetal)
	r.thinger.Run(ctx, r.injector)
	if r.tracer != nil {
		r.tracer.Close()
	}
}
