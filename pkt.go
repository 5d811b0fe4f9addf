package inktouch

import (
	"encoding/json"
	"fmt"
)

// Packet is sent and received on a bus via a socket.  The tag selects the
// bus handler for the packet.
type Packet struct {
	bus     *Bus
	src     Socketer
	tag     string
	message []byte // payload
}

// NewPacket returns an empty packet with tag
func NewPacket(tag string) *Packet {
	return &Packet{tag: tag}
}

// Tag returns the packet tag
func (p *Packet) Tag() string {
	return p.tag
}

// SetTag sets the packet tag
func (p *Packet) SetTag(tag string) *Packet {
	p.tag = tag
	return p
}

// Bytes returns the packet message
func (p *Packet) Bytes() []byte {
	return p.message
}

func (p *Packet) String() string {
	return p.tag + " " + string(p.message)
}

// Reply sends the packet back to sender
func (p *Packet) Reply() *Packet {
	if p.src == nil {
		fmt.Printf("Can't reply to sender: source is nil\r\n")
		return p
	}
	if err := p.src.Send(p); err != nil {
		fmt.Printf("Reply to %s failed: %s\r\n", p.src, err)
	}
	return p
}

// Broadcast the packet to all other matching-tagged sockets on the bus.  The
// source socket is excluded.
func (p *Packet) Broadcast() *Packet {
	if p.bus == nil {
		fmt.Printf("Can't broadcast packet: bus is nil\r\n")
		return p
	}
	p.bus.broadcast(p)
	return p
}

// Unmarshal the packet message as JSON into v
func (p *Packet) Unmarshal(v any) *Packet {
	err := json.Unmarshal(p.message, v)
	if err != nil {
		fmt.Printf("JSON unmarshal error %s\r\n", err.Error())
	}
	return p
}

// Decode the packet message as JSON into v.  Unlike Unmarshal, the error is
// returned so a handler can drop a bad packet.
func (p *Packet) Decode(v any) error {
	if err := json.Unmarshal(p.message, v); err != nil {
		return fmt.Errorf("packet %s: %w", p.tag, err)
	}
	return nil
}

// Marshal the packet message as JSON from v
func (p *Packet) Marshal(v any) *Packet {
	var err error
	p.message, err = json.Marshal(v)
	if err != nil {
		fmt.Printf("JSON marshal error %s\r\n", err.Error())
	}
	return p
}
