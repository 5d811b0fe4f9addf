//go:build tinygo

package uc8151

import (
	"fmt"

	"tinygo.org/x/drivers/uc8151"
	"tinygo.org/x/tinyfont/proggy"
	"tinygo.org/x/tinyterm"
)

// Console is a text terminal on the panel, used to show boot messages
// before the sketch pad takes over the screen
type Console struct {
	dev  *uc8151.Device
	term *tinyterm.Terminal
}

// NewConsole clears the panel and returns a console on it
func NewConsole(dev *uc8151.Device) *Console {
	dev.ClearBuffer()
	term := tinyterm.NewTerminal(dev)
	term.Configure(&tinyterm.Config{
		Font:              &proggy.TinySZ8pt7b,
		FontHeight:        10,
		FontOffset:        6,
		UseSoftwareScroll: true,
	})
	return &Console{dev: dev, term: term}
}

// Printf writes a line to the console and the serial port, and refreshes
// the panel
func (c *Console) Printf(format string, args ...any) {
	line := fmt.Sprintf(format, args...)
	fmt.Printf("%s\r\n", line)
	fmt.Fprintf(c.term, "%s\n", line)
	c.dev.Display()
	c.dev.WaitUntilIdle()
}
