// Package sketch is the touch sketch pad: touches are marked on the e-paper
// screen with a crosshair and a trail of dots, and buttons A and B give
// on-screen feedback.
//
// Button A clears the trail; holding it also resets the touch count.
// Button B inverts the screen.
package sketch

import (
	"context"
	"fmt"
	"image"
	"time"

	"github.com/merliot/inktouch"
	"github.com/merliot/inktouch/board"
	"github.com/merliot/inktouch/button"
	"github.com/merliot/inktouch/screen"
	"github.com/merliot/inktouch/touch"
)

// Config tunes the sketch pad
type Config struct {
	// Poll period of the touch controller and buttons
	Poll time.Duration
	// Arm length of the touch crosshair
	Marker int
	// Number of previous touches kept as dots
	Trail  int
	Touch  touch.FilterConfig
	Button button.Config
	Screen screen.Config
}

// DefaultConfig returns the sketch pad defaults
func DefaultConfig() Config {
	return Config{
		Poll:   20 * time.Millisecond,
		Marker: 6,
		Trail:  32,
		Touch:  touch.DefaultFilterConfig(),
		Button: button.DefaultConfig(),
		Screen: screen.DefaultConfig(),
	}
}

// Sketch is the sketch pad Thing
type Sketch struct {
	inktouch.Thing
	Touches  int
	Last     touch.Point
	Trail    []touch.Point
	ButtonA  bool
	ButtonB  bool
	Inverted bool
	Message  string

	cfg     Config
	poller  *touch.Poller
	buttonA *button.Button
	buttonB *button.Button
	screen  *screen.Screen
	layout  Layout
	marked  bool
	hint    image.Rectangle
}

type touchMsg struct {
	X, Y int
}

type buttonMsg struct {
	Event button.Event
}

// New returns a sketch pad on board b
func New(id, model, name string, b *board.Board, cfg Config) (*Sketch, error) {
	s := &Sketch{
		Thing:   inktouch.NewThing(id, model, name),
		Message: "touch me",
		cfg:     cfg,
		screen:  screen.New(b.Panel, cfg.Screen),
	}
	s.layout = NewLayout(s.screen.Bounds())

	if b.Touch != nil {
		mcfg := b.Mapper
		if mcfg.Width == 0 || mcfg.Height == 0 {
			mcfg.Width = s.layout.Bounds.Dx()
			mcfg.Height = s.layout.Bounds.Dy()
		}
		mapper, err := touch.NewMapper(mcfg)
		if err != nil {
			return nil, err
		}
		s.poller = touch.NewPoller(b.Touch, mapper, cfg.Touch)
	}

	bcfg := cfg.Button
	bcfg.ActiveLow = b.ActiveLow
	if b.A != nil {
		s.buttonA = button.New("A", b.A, bcfg)
	}
	if b.B != nil {
		s.buttonB = button.New("B", b.B, bcfg)
	}

	return s, nil
}

// Screen returns the sketch pad's screen
func (s *Sketch) Screen() *screen.Screen {
	return s.screen
}

func (s *Sketch) Subscribers() inktouch.Subscribers {
	return inktouch.Subscribers{
		"touch/down": s.touchDown,
		"touch/move": s.touchMove,
		"touch/up":   s.touchUp,
		"button/a":   s.buttonAEvent,
		"button/b":   s.buttonBEvent,
		"refresh":    s.refresh,
	}
}

// Run polls the inputs every Poll period until ctx is done
func (s *Sketch) Run(ctx context.Context, i *inktouch.Injector) {
	s.redraw()
	s.screen.ForceFull()
	s.flush(time.Now())

	ticker := time.NewTicker(s.cfg.Poll)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.stop()
			return
		case now := <-ticker.C:
			s.Step(i, now)
		}
	}
}

// Step does one pass of the poll loop: poll the touch controller and
// buttons, inject a packet for each event, then refresh the screen
func (s *Sketch) Step(i *inktouch.Injector, now time.Time) {
	if s.poller != nil {
		if ev := s.poller.Poll(now); ev.Kind != touch.None {
			msg := touchMsg{ev.Point.X, ev.Point.Y}
			i.Inject(inktouch.NewPacket("touch/" + ev.Kind.String()).Marshal(&msg))
		}
	}

	s.pollButton(i, now, s.buttonA, "button/a")
	s.pollButton(i, now, s.buttonB, "button/b")

	s.flush(now)
}

func (s *Sketch) pollButton(i *inktouch.Injector, now time.Time, b *button.Button, tag string) {
	if b == nil {
		return
	}
	if ev := b.Update(now); ev != button.None {
		fmt.Printf("Button %s %s\r\n", b, ev)
		msg := buttonMsg{ev}
		i.Inject(inktouch.NewPacket(tag).Marshal(&msg))
	}
}

// stop pushes pending drawing to the panel and puts the panel to sleep
func (s *Sketch) stop() {
	s.flush(time.Now())
	if err := s.screen.Sleep(); err != nil {
		fmt.Printf("Screen sleep failed: %s\r\n", err)
	}
}

func (s *Sketch) flush(now time.Time) {
	kind, err := s.screen.Refresh(now, false)
	if err != nil {
		fmt.Printf("Refresh failed: %s\r\n", err)
		return
	}
	if kind == screen.Full {
		fmt.Printf("Full refresh\r\n")
	}
}

func decode(pkt *inktouch.Packet, v any) bool {
	if err := pkt.Decode(v); err != nil {
		fmt.Printf("Dropped bad packet: %s\r\n", err)
		return false
	}
	return true
}

func (s *Sketch) touchDown(pkt *inktouch.Packet) {
	var msg touchMsg
	if !decode(pkt, &msg) {
		return
	}
	s.Touches++
	s.Message = "down"
	s.moveTo(touch.Point{X: msg.X, Y: msg.Y})
	pkt.Broadcast()
}

func (s *Sketch) touchMove(pkt *inktouch.Packet) {
	var msg touchMsg
	if !decode(pkt, &msg) {
		return
	}
	s.Message = "move"
	s.moveTo(touch.Point{X: msg.X, Y: msg.Y})
	pkt.Broadcast()
}

func (s *Sketch) touchUp(pkt *inktouch.Packet) {
	s.Message = "up"
	s.drawStatus()
	pkt.Broadcast()
}

func (s *Sketch) buttonAEvent(pkt *inktouch.Packet) {
	var msg buttonMsg
	if !decode(pkt, &msg) {
		return
	}
	switch msg.Event {
	case button.Pressed:
		s.ButtonA = true
		s.Trail = nil
		s.marked = false
		s.Message = "cleared"
		s.screen.FillRect(s.layout.Canvas, screen.Paper)
		s.drawHint()
		s.screen.ForceFull()
	case button.Released:
		s.ButtonA = false
	case button.Held:
		s.Touches = 0
		s.Message = "reset"
	}
	s.drawButtons()
	s.drawStatus()
	pkt.Broadcast()
}

func (s *Sketch) buttonBEvent(pkt *inktouch.Packet) {
	var msg buttonMsg
	if !decode(pkt, &msg) {
		return
	}
	switch msg.Event {
	case button.Pressed:
		s.ButtonB = true
		s.Inverted = !s.Inverted
		s.screen.Invert()
	case button.Released:
		s.ButtonB = false
	}
	s.drawButtons()
	pkt.Broadcast()
}

func (s *Sketch) refresh(pkt *inktouch.Packet) {
	s.redraw()
	s.screen.ForceFull()
	pkt.Broadcast()
}

// moveTo moves the crosshair to p, leaving a dot where it was
func (s *Sketch) moveTo(p touch.Point) {
	c := s.layout.Canvas
	pt := inset(image.Pt(p.X, p.Y), c, s.cfg.Marker)

	if s.marked {
		last := inset(image.Pt(s.Last.X, s.Last.Y), c, s.cfg.Marker)
		s.screen.Crosshair(last, s.cfg.Marker, screen.Paper)
		s.Trail = append(s.Trail, s.Last)
		if len(s.Trail) > s.cfg.Trail {
			old := s.Trail[0]
			s.Trail = s.Trail[1:]
			s.dot(old, screen.Paper)
			s.drawTrail(s.dotBounds(old))
		}
		s.drawTrail(screen.CrosshairBounds(last, s.cfg.Marker))
	} else {
		s.screen.FillRect(s.hint, screen.Paper)
		s.hint = image.Rectangle{}
	}

	s.Last = p
	s.marked = true
	s.screen.Crosshair(pt, s.cfg.Marker, screen.Ink)
	s.drawStatus()
}

func (s *Sketch) dot(p touch.Point, c screen.Color) {
	pt := inset(image.Pt(p.X, p.Y), s.layout.Canvas, s.cfg.Marker)
	s.screen.Circle(pt.X, pt.Y, 1, c, true)
}

func (s *Sketch) dotBounds(p touch.Point) image.Rectangle {
	pt := inset(image.Pt(p.X, p.Y), s.layout.Canvas, s.cfg.Marker)
	return image.Rect(pt.X-1, pt.Y-1, pt.X+2, pt.Y+2)
}

// drawTrail redraws the trail dots overlapping r
func (s *Sketch) drawTrail(r image.Rectangle) {
	for _, p := range s.Trail {
		if s.dotBounds(p).Overlaps(r) {
			s.dot(p, screen.Ink)
		}
	}
}

// drawHint centers a prompt on the empty canvas
func (s *Sketch) drawHint() {
	const hint = "touch anywhere"
	c := s.layout.Canvas
	tb := screen.TextBounds(0, 0, hint)
	x := c.Min.X + (c.Dx()-tb.Dx())/2
	y := c.Min.Y + (c.Dy()-tb.Dy())/2 - tb.Min.Y
	s.hint = s.screen.Text(x, y, hint, screen.Ink)
}

func (s *Sketch) drawButtons() {
	label := func(r image.Rectangle, name string, pressed bool) {
		if pressed {
			s.screen.Label(r, name+" pressed", screen.Paper)
		} else {
			s.screen.Label(r, name, screen.Ink)
			s.screen.Rect(r, screen.Ink)
		}
	}
	label(s.layout.ButtonA, "A", s.ButtonA)
	label(s.layout.ButtonB, "B", s.ButtonB)
}

func (s *Sketch) drawStatus() {
	status := fmt.Sprintf("%s %d,%d #%d", s.Message, s.Last.X, s.Last.Y, s.Touches)
	s.screen.Label(s.layout.Status, status, screen.Ink)
}

// redraw the whole screen from state
func (s *Sketch) redraw() {
	s.screen.Clear()
	l := s.layout
	s.screen.Line(l.Bounds.Min.X, l.Canvas.Min.Y-1, l.Bounds.Max.X-1, l.Canvas.Min.Y-1, screen.Ink)
	s.screen.Line(l.Bounds.Min.X, l.Canvas.Max.Y, l.Bounds.Max.X-1, l.Canvas.Max.Y, screen.Ink)
	s.drawButtons()
	s.drawStatus()
	s.drawTrail(l.Bounds)
	if s.marked {
		pt := inset(image.Pt(s.Last.X, s.Last.Y), l.Canvas, s.cfg.Marker)
		s.screen.Crosshair(pt, s.cfg.Marker, screen.Ink)
	} else {
		s.drawHint()
	}
}
