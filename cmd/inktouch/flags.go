package main

import (
	"context"
	"flag"
	"fmt"

	"github.com/merliot/inktouch"
	"github.com/merliot/inktouch/board"
	"github.com/merliot/inktouch/sketch"
	"github.com/merliot/inktouch/touch"
)

type options struct {
	id       string
	rotation int
	trace    bool
	board    board.Config
	sketch   sketch.Config
}

func defaultOptions() *options {
	return &options{
		id:       "inktouch_01",
		rotation: -1,
		board:    board.DefaultConfig(),
		sketch:   sketch.DefaultConfig(),
	}
}

func (o *options) flagSet() *flag.FlagSet {
	fs := flag.NewFlagSet("inktouch", flag.ContinueOnError)
	s, b := &o.sketch, &o.board

	fs.StringVar(&o.id, "id", o.id, "device ID")
	fs.IntVar(&o.rotation, "rotation", o.rotation, "touch rotation 0, 90, 180 or 270 (default from board)")
	fs.BoolVar(&o.trace, "trace", o.trace, "print every event")

	fs.DurationVar(&s.Poll, "poll", s.Poll, "input poll period")
	fs.DurationVar(&s.Button.Debounce, "debounce", s.Button.Debounce, "button debounce time")
	fs.DurationVar(&s.Button.HoldTime, "hold", s.Button.HoldTime, "button hold time, 0 to disable")
	fs.DurationVar(&s.Touch.Repeat, "repeat", s.Touch.Repeat, "repeat period of a held touch, 0 to disable")
	fs.IntVar(&s.Touch.Jitter, "jitter", s.Touch.Jitter, "touch movement ignored, in pixels")
	fs.IntVar(&s.Touch.Release, "release", s.Touch.Release, "empty polls before a touch is released")
	fs.DurationVar(&s.Screen.MinInterval, "min-interval", s.Screen.MinInterval, "minimum time between refreshes")
	fs.IntVar(&s.Screen.FullEvery, "full-every", s.Screen.FullEvery, "full refresh after this many partial refreshes")
	fs.Float64Var(&s.Screen.FullThreshold, "full-threshold", s.Screen.FullThreshold, "full refresh when this fraction of the screen changed")

	fs.StringVar(&b.I2C, "i2c", b.I2C, "I2C bus of the touch controller")
	fs.StringVar(&b.TouchReset, "touch-reset", b.TouchReset, "touch controller reset pin")
	fs.StringVar(&b.ButtonA, "button-a", b.ButtonA, "button A pin")
	fs.StringVar(&b.ButtonB, "button-b", b.ButtonB, "button B pin")
	fs.BoolVar(&b.Landscape, "landscape", b.Landscape, "landscape orientation")

	return fs
}

func (o *options) validate() error {
	switch o.rotation {
	case -1, 0, 90, 180, 270:
	default:
		return fmt.Errorf("bad rotation %d", o.rotation)
	}
	if o.sketch.Poll <= 0 {
		return fmt.Errorf("bad poll period %s", o.sketch.Poll)
	}
	if !inktouch.ValidId(o.id) {
		return fmt.Errorf("bad id %q", o.id)
	}
	return nil
}

func run(ctx context.Context, o *options) error {
	if err := o.validate(); err != nil {
		return err
	}

	b, err := board.Open(o.board)
	if err != nil {
		return err
	}
	defer func() {
		if err := b.Close(); err != nil {
			fmt.Printf("Close board: %s\r\n", err)
		}
	}()

	if o.rotation >= 0 {
		b.Mapper.Rotation = touch.Rotation(o.rotation)
	}

	s, err := sketch.New(o.id, "inktouch", b.Name, b, o.sketch)
	if err != nil {
		return err
	}

	runner := inktouch.NewRunner(s)
	if o.trace {
		if err := runner.Trace(nil); err != nil {
			return err
		}
	}
	runner.Run(ctx)

	return nil
}
