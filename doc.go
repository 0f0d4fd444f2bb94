// Package tm1637 controls a TM1637 four digit seven-segment LED display.
//
// The TM1637 has no SPI or I²C interface. It listens on a two-wire bus made
// of a clock line (CLK) and a data line (DIO) with its own start and stop
// conditions. This driver bit bangs that bus on two periph.io gpio.PinOut
// pins, so any pair of GPIOs works.
//
// # Hardware Connection
//
//	Module Pin → System Pin
//	GND        → GND
//	VCC        → 3.3V or 5V
//	CLK        → GPIO (any output)
//	DIO        → GPIO (any output)
//
// # Basic Usage
//
//	package main
//
//	import (
//		"periph.io/x/conn/v3/gpio/gpioreg"
//		"periph.io/x/host/v3"
//		"github.com/flavioheleno/tm1637"
//	)
//
//	func main() {
//		// Initialize periph.io
//		host.Init()
//
//		dev, _ := tm1637.New(gpioreg.ByName("GPIO23"), gpioreg.ByName("GPIO24"), nil)
//		defer dev.Halt()
//
//		dev.SetBrightness(5)
//		dev.ShowNumber(1234)
//	}
//
// # Protocol
//
// Every exchange is a transaction: a start condition (DIO falls while CLK is
// high), one or more bytes, and a stop condition (DIO rises while CLK is
// high). Bytes are sent least significant bit first, DIO changing while CLK
// is low. A ninth clock pulse follows each byte; the display acknowledges on
// it, but this driver never reads DIO and does not check the acknowledge.
//
// The first byte of a transaction is a command:
//
//	0x40        data command, auto-increment address
//	0x44        data command, fixed address
//	0xC0 + pos  address command, followed by segment data
//	0x80        display off
//	0x88 | b    display on, pulse width b (0-7)
//
// # Timing
//
// Every line transition is followed by one quantum of delay (5µs by
// default, see DefaultQuantum). The delay goes through the Timer interface;
// the default ClockTimer runs on the system clock. Use Opts.Quantum for
// modules that need slower edges, for example with long wires.
//
// # Errors
//
// Every operation returns the first pin fault it hits as a *PinError, and
// stops the transaction there. errors.Is(err, ErrDataPin) and
// errors.Is(err, ErrClockPin) tell which line failed. The display is left
// in an undefined state until the next complete transaction.
//
// # Segment Patterns
//
// ShowSegments and ShowSegment take raw patterns; package segment maps
// decimal digits to patterns and names the segment bits.
//
// # Datasheet
//
// https://www.mcielectronics.cl/website_MCI/static/documents/Datasheet_TM1637.pdf
package tm1637
