package inktouch

import (
	"fmt"
	"io"
	"os"
)

// Socketer defines a socket interface
type Socketer interface {
	// Close the socket
	Close()
	// Send the pkt on the socket
	Send(*Packet) error
	// Name of socket
	String() string
	// Tag returns the socket tag
	Tag() string
	// SetTag set the socket tag.  A socket tag is like a VLAN ID.
	SetTag(string)
	// SetFlag on socket
	SetFlag(uint32)
	// TestFlag returns true if flag is set
	TestFlag(uint32) bool
}

// socket implements Socketer
type socket struct {
	name  string
	tag   string
	flags uint32
	bus   *Bus
}

const (
	// Socket is broadcast-ready.  If flag is not set, pkts will not be
	// broadcast on this socket.
	SocketFlagBcast uint32 = 1 << iota
)

func (s *socket) Close() {
}

func (s *socket) Send(pkt *Packet) error {
	return nil
}

func (s *socket) String() string {
	return s.name
}

func (s *socket) Tag() string {
	return s.tag
}

func (s *socket) SetTag(tag string) {
	s.tag = tag
}

func (s *socket) SetFlag(flag uint32) {
	s.flags |= flag
}

func (s *socket) TestFlag(flag uint32) bool {
	return (s.flags & flag) != 0
}

// Tracer is a broadcast socket that writes every packet it is sent to a
// console, one line per packet.
type Tracer struct {
	socket
	mu mutex
	w  io.Writer
}

// NewTracer plugs a tracer into the bus.  A nil w traces to stdout.
func NewTracer(name string, bus *Bus, w io.Writer) (*Tracer, error) {
	if w == nil {
		w = os.Stdout
	}
	t := &Tracer{socket: socket{name, "", SocketFlagBcast, bus}, w: w}
	if err := bus.plugin(t); err != nil {
		return nil, err
	}
	return t, nil
}

func (t *Tracer) Send(pkt *Packet) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	_, err := fmt.Fprintf(t.w, "Event %s\r\n", pkt)
	return err
}

// Close unplugs the tracer from the bus
func (t *Tracer) Close() {
	t.bus.unplug(t)
}
