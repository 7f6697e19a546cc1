// SPDX-FileCopyrightText: 2023 Kent Gibson <warthog618@gmail.com>
//
// SPDX-License-Identifier: Apache-2.0 OR MIT

// Package periphio adapts an espgpio.DigitalInOut to the periph.io gpio.PinIO
// interface, so co-processor pins can be used with periph.io device drivers
// that only drive outputs, such as LEDs and chip selects.
package periphio

import (
	"strconv"
	"time"

	"github.com/pkg/errors"
	"github.com/warthog618/go-espgpio"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/physic"
)

// Pin is a periph.io gpio.PinIO backed by a co-processor pin.
//
// Input functionality is not available, so In returns an error and Read always
// returns gpio.Low.
type Pin struct {
	dio  *espgpio.DigitalInOut
	name string
	num  int
}

var _ gpio.PinIO = &Pin{}

// New creates a Pin wrapping the DigitalInOut.
//
// The name is informational.  If empty, the name is derived from the pin id.
func New(dio *espgpio.DigitalInOut, name string) *Pin {
	num := -1
	if p := dio.Pin(); p != nil {
		num = p.ID()
	}
	if name == "" {
		name = "ESP_GPIO" + strconv.Itoa(num)
	}
	return &Pin{dio: dio, name: name, num: num}
}

// String implements conn.Resource.
func (p *Pin) String() string {
	return p.name
}

// Halt implements conn.Resource.
//
// The DigitalInOut is deinitialised, leaving the pin in its current state.
func (p *Pin) Halt() error {
	return p.dio.Close()
}

// Name implements pin.Pin.
func (p *Pin) Name() string {
	return p.name
}

// Number implements pin.Pin.
func (p *Pin) Number() int {
	return p.num
}

// Function implements pin.Pin.
func (p *Pin) Function() string {
	dir, err := p.dio.Direction()
	if err != nil || dir != espgpio.DirectionOutput {
		return "In"
	}
	if l := p.dio.Pin().LastWritten(); l == espgpio.LevelHigh {
		return "Out/High"
	}
	return "Out/Low"
}

// In implements gpio.PinIn.
//
// Digital reads are not supported by the co-processor.
func (p *Pin) In(pull gpio.Pull, edge gpio.Edge) error {
	if edge != gpio.NoEdge {
		return errors.Wrap(espgpio.ErrUnsupported, "edge detection")
	}
	return p.dio.SwitchToInput(toPull(pull))
}

// Read implements gpio.PinIn.
//
// The co-processor cannot be read, so this always returns gpio.Low.
func (p *Pin) Read() gpio.Level {
	return gpio.Low
}

// WaitForEdge implements gpio.PinIn.
func (p *Pin) WaitForEdge(timeout time.Duration) bool {
	return false
}

// Pull implements gpio.PinIn.
func (p *Pin) Pull() gpio.Pull {
	return gpio.PullNoChange
}

// DefaultPull implements gpio.PinIn.
func (p *Pin) DefaultPull() gpio.Pull {
	return gpio.PullNoChange
}

// Out implements gpio.PinOut.
//
// The pin is switched to a push-pull output if it is not already an output.
func (p *Pin) Out(l gpio.Level) error {
	dir, err := p.dio.Direction()
	if err != nil {
		return err
	}
	if dir != espgpio.DirectionOutput {
		return p.dio.SwitchToOutput(bool(l), espgpio.DriveModePushPull)
	}
	return p.dio.SetValue(bool(l))
}

// PWM implements gpio.PinOut.
//
// PWM is not supported.
func (p *Pin) PWM(duty gpio.Duty, f physic.Frequency) error {
	return errors.Wrap(espgpio.ErrUnsupported, "pwm")
}

func toPull(pull gpio.Pull) espgpio.Pull {
	switch pull {
	case gpio.PullUp:
		return espgpio.PullUp
	case gpio.PullDown:
		return espgpio.PullDown
	default:
		return espgpio.PullNone
	}
}
