package tm1637

import (
	"errors"
	"fmt"

	"periph.io/x/conn/v3/gpio"
)

var (
	// ErrClockPin is matched by errors.Is for faults on the CLK line.
	ErrClockPin = errors.New("tm1637: clock pin fault")
	// ErrDataPin is matched by errors.Is for faults on the DIO line.
	ErrDataPin = errors.New("tm1637: data pin fault")
)

// PinError reports a pin that could not be driven to the requested level.
// A transaction that hits a PinError is abandoned half sent.
type PinError struct {
	Pin   string     // "CLK" or "DIO"
	Level gpio.Level // Level the driver tried to set
	Err   error      // Error returned by the pin
}

func (e *PinError) Error() string {
	return fmt.Sprintf("tm1637: failed to drive %s %s: %v", e.Pin, e.Level, e.Err)
}

func (e *PinError) Unwrap() error {
	return e.Err
}

// Is reports whether target is the sentinel for the faulted pin.
func (e *PinError) Is(target error) bool {
	switch target {
	case ErrClockPin:
		return e.Pin == "CLK"
	case ErrDataPin:
		return e.Pin == "DIO"
	}
	return false
}

// clk drives the clock line.
func (d *Dev) clk(l gpio.Level) error {
	if err := d.clkPin.Out(l); err != nil {
		return &PinError{Pin: "CLK", Level: l, Err: err}
	}
	return nil
}

// dio drives the data line.
func (d *Dev) dio(l gpio.Level) error {
	if err := d.dioPin.Out(l); err != nil {
		return &PinError{Pin: "DIO", Level: l, Err: err}
	}
	return nil
}

// delay blocks for one quantum.
func (d *Dev) delay() {
	d.timer.Start(d.quantum)
	d.timer.Wait()
}

// start pulls DIO low while CLK idles high.
func (d *Dev) start() error {
	if err := d.dio(gpio.Low); err != nil {
		return err
	}
	d.delay()
	return nil
}

// stop releases DIO while CLK is high, leaving both lines idle high.
func (d *Dev) stop() error {
	if err := d.dio(gpio.Low); err != nil {
		return err
	}
	d.delay()
	if err := d.clk(gpio.High); err != nil {
		return err
	}
	d.delay()
	if err := d.dio(gpio.High); err != nil {
		return err
	}
	d.delay()
	return nil
}

// writeByte clocks b out LSB first, then runs the ACK slot without sampling
// DIO.
func (d *Dev) writeByte(b byte) error {
	for i := 0; i < 8; i++ {
		if err := d.clk(gpio.Low); err != nil {
			return err
		}
		d.delay()
		if err := d.dio(gpio.Level(b&1 == 1)); err != nil {
			return err
		}
		d.delay()
		if err := d.clk(gpio.High); err != nil {
			return err
		}
		d.delay()
		b >>= 1
	}

	// ACK slot: the display pulls DIO low during the high phase.
	if err := d.clk(gpio.Low); err != nil {
		return err
	}
	d.delay()
	if err := d.clk(gpio.High); err != nil {
		return err
	}
	d.delay()
	d.delay()
	if err := d.clk(gpio.Low); err != nil {
		return err
	}
	d.delay()
	return nil
}

// write sends bytes as a single transaction.
func (d *Dev) write(bytes ...byte) error {
	d.log.Debug().Hex("bytes", bytes).Msg("tm1637: transaction")
	err := d.start()
	for i := 0; err == nil && i < len(bytes); i++ {
		err = d.writeByte(bytes[i])
	}
	if err == nil {
		err = d.stop()
	}
	if err != nil {
		d.log.Debug().Err(err).Hex("bytes", bytes).Msg("tm1637: transaction aborted")
	}
	return err
}
