package inktouch

import "fmt"

// Injector is the socket a device's poll loop uses to put packets on the
// bus.  Inject is synchronous: the packet's handler has run by the time
// Inject returns.
type Injector struct {
	socket
}

// NewInjector plugs a new injector into the bus.  NewInjector panics if the
// bus is full.
func NewInjector(name string, bus *Bus) *Injector {
	i := &Injector{socket{name, "", 0, bus}}
	if err := bus.plugin(i); err != nil {
		panic(err)
	}
	return i
}

// Inject the packet onto the bus
func (i *Injector) Inject(pkt *Packet) {
	pkt.bus, pkt.src = i.bus, i
	if !i.bus.receive(pkt) {
		fmt.Printf("No handler for packet %s\r\n", pkt)
	}
}
