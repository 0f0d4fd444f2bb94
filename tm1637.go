// Package tm1637 drives a TM1637 four digit seven-segment display by bit
// banging its two-wire CLK/DIO bus on a pair of GPIO output pins.
//
// See the examples for how to use this package.
package tm1637

import (
	"errors"
	"fmt"
	"time"

	"github.com/flavioheleno/tm1637/segment"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"
	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/gpio"
)

const (
	// NumDigits is the number of digit positions on the display.
	NumDigits = 4
	// MaxBrightness is the highest brightness level. Higher levels are clamped.
	MaxBrightness = 8
)

// Command bytes. The first byte of a transaction is always a command.
const (
	cmdDataAutoInc byte = 0x40 // Write display data, auto-increment address
	cmdDataFixed   byte = 0x44 // Write display data, fixed address
	cmdAddress     byte = 0xC0 // Address of digit 0
	cmdDisplayOff  byte = 0x80 // Display control, display off
	cmdDisplayOn   byte = 0x88 // Display control, display on; low 3 bits are the pulse width
)

// Opts is the configuration for the TM1637 display.
type Opts struct {
	// Minimum time between two line transitions (default: DefaultQuantum)
	Quantum time.Duration

	// Countdown used for every delay (default: ClockTimer on the real clock)
	Timer Timer

	// Receives transaction traces and faults (default: disabled)
	Logger *zerolog.Logger
}

// Dev is the device handle for the TM1637 display.
//
// Dev is not safe for concurrent use; callers must serialize access.
type Dev struct {
	clkPin gpio.PinOut
	dioPin gpio.PinOut

	timer   Timer
	quantum time.Duration
	log     zerolog.Logger
}

// New creates a TM1637 device on the clk and dio output pins.
//
// Both lines are driven high so the bus starts idle. The display contents
// and brightness are left untouched.
//
// opts can be nil to use defaults.
func New(clk, dio gpio.PinOut, opts *Opts) (*Dev, error) {
	if clk == nil || dio == nil {
		return nil, errors.New("tm1637: clk and dio pins are required")
	}
	if opts == nil {
		opts = &Opts{}
	}
	if opts.Quantum < 0 {
		return nil, errors.New("tm1637: quantum must not be negative")
	}

	d := &Dev{
		clkPin:  clk,
		dioPin:  dio,
		timer:   opts.Timer,
		quantum: opts.Quantum,
		log:     zerolog.Nop(),
	}
	if d.timer == nil {
		d.timer = NewClockTimer(clockwork.NewRealClock())
	}
	if d.quantum == 0 {
		d.quantum = DefaultQuantum
	}
	if opts.Logger != nil {
		d.log = opts.Logger.With().Str("dev", d.String()).Logger()
	}

	if err := d.clk(gpio.High); err != nil {
		return nil, fmt.Errorf("tm1637: failed to idle bus: %w", err)
	}
	if err := d.dio(gpio.High); err != nil {
		return nil, fmt.Errorf("tm1637: failed to idle bus: %w", err)
	}
	d.delay()
	return d, nil
}

// displayControl encodes a brightness level as a display control command.
// Level 0 turns the display off, 1 to 8 turn it on with increasing pulse
// width.
func displayControl(level uint8) byte {
	if level == 0 {
		return cmdDisplayOff
	}
	if level > MaxBrightness {
		level = MaxBrightness
	}
	return cmdDisplayOn | (level - 1)
}

// SetBrightness sets the brightness level (0-8). 0 turns the display off
// and levels above 8 are clamped to 8.
func (d *Dev) SetBrightness(level uint8) error {
	return d.write(displayControl(level))
}

// ShowSegments writes four raw segment patterns to positions 0-3 using a
// single auto-increment transaction.
func (d *Dev) ShowSegments(segs [NumDigits]byte) error {
	if err := d.write(cmdDataAutoInc); err != nil {
		return err
	}
	return d.write(cmdAddress, segs[0], segs[1], segs[2], segs[3])
}

// ShowSegment writes a raw segment pattern to a single position.
// Positions outside 0-3 are ignored.
func (d *Dev) ShowSegment(seg byte, pos int) error {
	if pos < 0 || pos >= NumDigits {
		return nil
	}
	if err := d.write(cmdDataFixed); err != nil {
		return err
	}
	return d.write(cmdAddress+byte(pos), seg)
}

// ShowDigits displays four decimal digits, left to right. Values above 9
// are shown blank.
func (d *Dev) ShowDigits(digits [NumDigits]byte) error {
	return d.ShowSegments(segment.Encode(digits))
}

// ShowNumber displays the four low decimal digits of n, zero padded.
func (d *Dev) ShowNumber(n int) error {
	return d.ShowDigits(segment.Digits(n))
}

// Clear blanks all four digits.
func (d *Dev) Clear() error {
	return d.ShowSegments([NumDigits]byte{})
}

// Halt turns the display off. The digit data is kept by the display and
// shows again on the next SetBrightness with a non-zero level.
func (d *Dev) Halt() error {
	return d.SetBrightness(0)
}

// String returns a string representation of the device.
func (d *Dev) String() string {
	return fmt.Sprintf("tm1637{%s, %s}", d.clkPin, d.dioPin)
}

var _ conn.Resource = &Dev{}
