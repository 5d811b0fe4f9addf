// Package inktouch runs a device as a Thing whose inputs arrive as packets on
// a bus, dispatched to the Thing's subscribers.
package inktouch

import "context"

// Subscribers maps a packet tag to the handler for packets with that tag
type Subscribers map[string]func(*Packet)

// Thinger is the interface a device implements to run under a Runner
type Thinger interface {
	Subscribers() Subscribers
	Run(context.Context, *Injector)
	Id() string
	Model() string
	Name() string
	String() string
	SetFlag(uint32)
	TestFlag(uint32) bool
}

// Thing holds the identity of a device.  Embed it in the device struct.
type Thing struct {
	id    string
	model string
	name  string
	flags uint32
}

// NewThing returns a Thing.  NewThing panics if id, model or name is not a
// valid ID.
func NewThing(id, model, name string) Thing {
	if !ValidId(id) || !ValidId(model) || !ValidId(name) {
		panic("something invalid: id = \"" + id + "\", model = \"" +
			model + "\", name = \"" + name + "\"")
	}
	return Thing{id: id, model: model, name: name}
}

const (
	// Thing is running on real hardware
	ThingFlagMetal uint32 = 1 << iota
)

func (t *Thing) Subscribers() Subscribers { return nil }
func (t *Thing) Id() string { return t.id }
func (t *Thing) Model() string { return t.model }
func (t *Thing) Name() string { return t.name }
func (t *Thing) SetFlag(flag uint32) { t.flags |= flag }
func (t *Thing) TestFlag(flag uint32) bool { return (t.flags & flag) != 0 }
func (t *Thing) IsMetal() bool { return t.TestFlag(ThingFlagMetal) }

func (t *Thing) Run(ctx context.Context, i *Injector) {
	<-ctx.Done()
}

func (t *Thing) String() string {
	return "[Id: " + t.id + ", Model: " + t.model + ", Name: " + t.name + "]"
}

// A valid ID is a non-empty string with only [a-z], [A-Z], [0-9], or
// underscore characters.
func ValidId(s string) bool {
	for _, r := range s {
		if (r < 'a' || r > 'z') &&
			(r < 'A' || r > 'Z') &&
			(r < '0' || r > '9') &&
			(r != '_') {
			return false
		}
	}
	return len(s) > 0
}
