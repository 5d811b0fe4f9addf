package inktouch

import (
	"errors"
	"fmt"
	"sort"
)

var defaultMaxSockets = 16

// ErrBusFull is returned when plugging a socket into a bus that already has
// MaxSockets sockets
var ErrBusFull = errors.New("bus full")

// Bus is a logical packet bus.  Packets injected on a socket are dispatched
// to the handler registered for the packet's tag.  A handler can broadcast
// the packet to the other sockets, or reply back to sender.  Sockets also
// have a tag, and a broadcast only reaches sockets with the sender's socket
// tag.  Think of a socket tag as a VLAN.  The empty tag "" is the default.
//
// Everything on a bus runs on the caller's goroutine, so a bus never blocks:
// a full bus refuses new sockets instead of waiting for one to leave.
type Bus struct {
	name       string
	socketsMu  rwMutex
	sockets    map[Socketer]bool
	maxSockets int
	handlersMu rwMutex
	handlers   map[string]func(*Packet)
	connect    func(Socketer)
	disconnect func(Socketer)
}

// NewBus returns a new bus with connect and disconnect callbacks
func NewBus(name string, connect, disconnect func(Socketer)) *Bus {
	if connect == nil {
		connect = func(Socketer) { /* don't notify */ }
	}
	if disconnect == nil {
		disconnect = func(Socketer) { /* don't notify */ }
	}
	return &Bus{
		name:       name,
		sockets:    make(map[Socketer]bool),
		maxSockets: defaultMaxSockets,
		handlers:   make(map[string]func(*Packet)),
		connect:    connect,
		disconnect: disconnect,
	}
}

// Handle sets the packet handler for a packet tag.  Returns false if the tag
// already has a handler.
func (b *Bus) Handle(tag string, handler func(*Packet)) bool {
	if handler == nil {
		panic("handler is nil")
	}
	b.handlersMu.Lock()
	defer b.handlersMu.Unlock()
	if _, ok := b.handlers[tag]; ok {
		return false
	}
	b.handlers[tag] = handler
	return true
}

// Unhandle removes the packet handler for the packet tag
func (b *Bus) Unhandle(tag string) {
	b.handlersMu.Lock()
	defer b.handlersMu.Unlock()
	delete(b.handlers, tag)
}

// Tags returns the handled packet tags, sorted
func (b *Bus) Tags() []string {
	b.handlersMu.RLock()
	defer b.handlersMu.RUnlock()
	tags := make([]string, 0, len(b.handlers))
	for tag := range b.handlers {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}

func (b *Bus) String() string {
	return b.name
}

// MaxSockets sets the maximum number of sockets plugged into the bus
func (b *Bus) MaxSockets(maxSockets int) {
	b.socketsMu.Lock()
	b.maxSockets = maxSockets
	b.socketsMu.Unlock()
}

// Sockets returns the number of sockets plugged into the bus
func (b *Bus) Sockets() int {
	b.socketsMu.RLock()
	defer b.socketsMu.RUnlock()
	return len(b.sockets)
}

// plugin the socket to the bus
func (b *Bus) plugin(s Socketer) error {
	b.socketsMu.Lock()
	if len(b.sockets) >= b.maxSockets {
		b.socketsMu.Unlock()
		return fmt.Errorf("%s: plugin %s: %w", b, s, ErrBusFull)
	}
	b.sockets[s] = true
	b.socketsMu.Unlock()

	b.connect(s)
	return nil
}

// unplug the socket from the bus
func (b *Bus) unplug(s Socketer) {
	b.socketsMu.Lock()
	_, ok := b.sockets[s]
	delete(b.sockets, s)
	b.socketsMu.Unlock()

	if ok {
		b.disconnect(s)
	}
}

// broadcast packet to all broadcast-ready sockets with the source socket's
// tag, skipping the source socket
func (b *Bus) broadcast(pkt *Packet) {
	var dsts []Socketer

	b.socketsMu.RLock()
	for sock := range b.sockets {
		if pkt.src != sock &&
			pkt.src.Tag() == sock.Tag() &&
			sock.TestFlag(SocketFlagBcast) {
			dsts = append(dsts, sock)
		}
	}
	b.socketsMu.RUnlock()

	// send unlocked; a socket may unplug itself in Send
	for _, sock := range dsts {
		if err := sock.Send(pkt); err != nil {
			fmt.Printf("Broadcast to %s failed: %s\r\n", sock, err)
		}
	}
}

// receive will call the packet handler for the packet tag.  Returns false if
// no handler is registered for the tag.
func (b *Bus) receive(pkt *Packet) bool {
	b.handlersMu.RLock()
	handler, ok := b.handlers[pkt.tag]
	b.handlersMu.RUnlock()
	if ok {
		handler(pkt)
	}
	return ok
}
