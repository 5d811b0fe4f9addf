//go:build tinygo && badger2040

package board

import (
	"machine"

	"github.com/merliot/inktouch/button"
	"github.com/merliot/inktouch/screen/uc8151"
	"github.com/merliot/inktouch/touch"
	"github.com/merliot/inktouch/touch/pointer"
	"tinygo.org/x/drivers/ft6336"
	epd "tinygo.org/x/drivers/uc8151"
)

// FT6336 touch overlay on the Qw/ST connector, interrupt on GP3
const touchInt = machine.GPIO3

// Open the Badger 2040 with an FT6336 touch overlay.  Buttons A and B are
// the badge's own, active high.
func Open(cfg Config) (*Board, error) {
	led3v3 := machine.ENABLE_3V3
	led3v3.Configure(machine.PinConfig{Mode: machine.PinOutput})
	led3v3.High()

	machine.SPI0.Configure(machine.SPIConfig{
		Frequency: 12000000,
		SCK:       machine.EPD_SCK_PIN,
		SDO:       machine.EPD_SDO_PIN,
	})

	display := epd.New(machine.SPI0, machine.EPD_CS_PIN, machine.EPD_DC_PIN,
		machine.EPD_RESET_PIN, machine.EPD_BUSY_PIN)
	display.Configure(epd.Config{
		Speed:    epd.TURBO,
		Rotation: epd.ROTATION_270,
	})

	console := uc8151.NewConsole(&display)
	console.Printf("inktouch on badger2040")

	b := &Board{Name: "badger2040", Panel: uc8151.New(&display)}

	err := machine.I2C0.Configure(machine.I2CConfig{
		SDA:       machine.I2C0_SDA_PIN,
		SCL:       machine.I2C0_SCL_PIN,
		Frequency: 400 * machine.KHz,
	})
	if err != nil {
		console.Printf("touch unavailable: %s", err)
	} else {
		ft := ft6336.New(machine.I2C0, touchInt)
		ft.Configure(ft6336.Config{})
		ft.SetPeriodActive(0x00)
		b.Touch = pointer.New(ft)
		b.Mapper = touch.MapperConfig{
			PanelWidth:  pointer.Range,
			PanelHeight: pointer.Range,
		}
		console.Printf("touch ft6336")
	}

	b.A = button.ConfigurePin(machine.BUTTON_A, false)
	b.B = button.ConfigurePin(machine.BUTTON_B, false)

	return b, nil
}
