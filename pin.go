// SPDX-FileCopyrightText: 2023 Kent Gibson <warthog618@gmail.com>
//
// SPDX-License-Identifier: Apache-2.0 OR MIT

package espgpio

import (
	"math"
	"strconv"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Mode codes and level codes as sent to the co-processor.
const (
	CodeInput     uint8 = 0x00
	CodeOutput    uint8 = 0x01
	CodeOpenDrain uint8 = 0x10

	CodeLow  uint8 = 0x00
	CodeHigh uint8 = 0x01
)

// Mode is the electrical mode of a pin.
type Mode int

const (
	// Mode has not been set.
	//
	// Passing ModeUnset to InitMode is a no-op.
	ModeUnset Mode = iota

	// Pin is an input.
	ModeInput

	// Pin is a push-pull output.
	ModeOutput

	// Pin is an open-drain output.
	ModeOpenDrain
)

func (m Mode) code() (uint8, bool) {
	switch m {
	case ModeInput:
		return CodeInput, true
	case ModeOutput:
		return CodeOutput, true
	case ModeOpenDrain:
		return CodeOpenDrain, true
	default:
		return 0, false
	}
}

func (m Mode) String() string {
	switch m {
	case ModeUnset:
		return "unset"
	case ModeInput:
		return "input"
	case ModeOutput:
		return "output"
	case ModeOpenDrain:
		return "open-drain"
	default:
		return "Mode(" + strconv.Itoa(int(m)) + ")"
	}
}

// Level is the digital level a pin is driven to.
type Level int

const (
	// Pin is driven low.
	LevelLow Level = iota

	// Pin is driven high.
	LevelHigh
)

func (l Level) code() (uint8, bool) {
	switch l {
	case LevelLow:
		return CodeLow, true
	case LevelHigh:
		return CodeHigh, true
	default:
		return 0, false
	}
}

func (l Level) String() string {
	switch l {
	case LevelLow:
		return "low"
	case LevelHigh:
		return "high"
	default:
		return "Level(" + strconv.Itoa(int(l)) + ")"
	}
}

// Pin provides the interface to a single GPIO on the co-processor.
//
// The Pin holds the mode and level last sent to the co-processor.
// It does not own the Driver, which is typically shared by all the Pins on the
// co-processor.
type Pin struct {
	// The pin identifier on the co-processor.
	id int

	// The driver forwarding commands to the co-processor.
	drv Driver

	log *logrus.Entry

	// The mode last successfully sent to the co-processor.
	mode Mode

	// The level last successfully sent to the co-processor.
	value Level

	// Set once the owning DigitalInOut is deinitialised.
	released bool
}

// NewPin constructs a Pin for the given identifier.
//
// The id must be contained in the valid pin set, which defaults to ESP32Pins
// and may be changed using the WithPinSet option.
//
// The id must also fit the 8-bit pin field of the co-processor commands.
//
// Construction does not send any commands to the co-processor.
func NewPin(id int, d Driver, options ...PinOption) (*Pin, error) {
	cfg := newPinConfig(options)
	if id < 0 || id > math.MaxUint8 || !cfg.pins.Contains(id) {
		return nil, errors.Wrapf(ErrInvalidPin, "pin %d", id)
	}
	if d == nil {
		return nil, errors.Wrapf(ErrNoDriver, "pin %d", id)
	}
	return &Pin{
		id:  id,
		drv: d,
		log: cfg.log.WithField("pin", id),
	}, nil
}

// ID returns the identifier of the pin on the co-processor.
func (p *Pin) ID() int {
	return p.id
}

// InitMode sets the mode of the pin.
//
// ModeUnset is ignored and sends nothing.
// Otherwise a single set pin mode command is sent to the co-processor.
func (p *Pin) InitMode(m Mode) error {
	if p.released {
		return ErrUseAfterDeinit
	}
	if m == ModeUnset {
		return nil
	}
	code, ok := m.code()
	if !ok {
		return errors.Wrapf(ErrInvalidMode, "pin %d %s", p.id, m)
	}
	log := p.log.WithField("mode", m)
	if err := p.drv.SetPinMode(uint8(p.id), code); err != nil {
		log.WithError(err).Debug("set pin mode failed")
		return errors.Wrapf(err, "set pin %d mode %s", p.id, m)
	}
	log.Debug("set pin mode")
	p.mode = m
	return nil
}

// Mode returns the mode last sent to the co-processor.
func (p *Pin) Mode() Mode {
	return p.mode
}

// LastWritten returns the level last sent to the co-processor.
//
// This is the level requested, not a reading of the pin.
func (p *Pin) LastWritten() Level {
	return p.value
}

// SetValue drives the pin to the given level.
//
// A single digital write command is sent to the co-processor.
func (p *Pin) SetValue(l Level) error {
	if p.released {
		return ErrUseAfterDeinit
	}
	code, ok := l.code()
	if !ok {
		return errors.Wrapf(ErrInvalidValue, "pin %d %s", p.id, l)
	}
	log := p.log.WithField("level", l)
	if err := p.drv.SetDigitalWrite(uint8(p.id), code); err != nil {
		log.WithError(err).Debug("digital write failed")
		return errors.Wrapf(err, "set pin %d %s", p.id, l)
	}
	log.Debug("digital write")
	p.value = l
	return nil
}

// Value reads the level of the pin.
//
// The co-processor protocol provides no digital read, so this always returns
// ErrUnsupported.
func (p *Pin) Value() (Level, error) {
	if p.released {
		return LevelLow, ErrUseAfterDeinit
	}
	return LevelLow, errors.Wrapf(ErrUnsupported, "read pin %d", p.id)
}

// release marks the Pin as no longer usable.
func (p *Pin) release() {
	p.released = true
}

func (p *Pin) String() string {
	return strconv.Itoa(p.id)
}
