// SPDX-FileCopyrightText: 2023 Kent Gibson <warthog618@gmail.com>
//
// SPDX-License-Identifier: Apache-2.0 OR MIT

package espgpio

import (
	"strconv"

	"github.com/pkg/errors"
)

// Direction indicates whether a DigitalInOut senses or drives its pin.
type Direction int

const (
	// Direction has not been set.
	DirectionUnset Direction = iota

	// Pin is an input.
	DirectionInput

	// Pin is an output.
	DirectionOutput
)

func (d Direction) String() string {
	switch d {
	case DirectionUnset:
		return "unset"
	case DirectionInput:
		return "input"
	case DirectionOutput:
		return "output"
	default:
		return "Direction(" + strconv.Itoa(int(d)) + ")"
	}
}

// DriveMode is the electrical characteristic of an output.
type DriveMode int

const (
	// Output actively drives both high and low.
	DriveModePushPull DriveMode = iota

	// Output only drives low, and relies on an external pull-up for high.
	DriveModeOpenDrain
)

func (m DriveMode) String() string {
	switch m {
	case DriveModePushPull:
		return "push-pull"
	case DriveModeOpenDrain:
		return "open-drain"
	default:
		return "DriveMode(" + strconv.Itoa(int(m)) + ")"
	}
}

// Pull is the bias applied to an input.
type Pull int

const (
	// No bias.
	PullNone Pull = iota

	// Input is pulled up.
	PullUp

	// Input is pulled down.
	PullDown
)

// DigitalInOut provides direction, drive mode and value control of a pin on
// the co-processor.
//
// The DigitalInOut owns its Pin until Deinit is called, after which all
// methods return ErrUseAfterDeinit.
type DigitalInOut struct {
	pin       *Pin
	direction Direction
	driveMode DriveMode
}

// NewDigitalInOut constructs a DigitalInOut for the pin with the given id.
//
// The pin is immediately set as an input, so construction sends a set pin mode
// command to the co-processor.
//
// The options are passed to the Pin.
func NewDigitalInOut(d Driver, id int, options ...PinOption) (*DigitalInOut, error) {
	p, err := NewPin(id, d, options...)
	if err != nil {
		return nil, err
	}
	dio := &DigitalInOut{pin: p}
	if err := dio.SetDirection(DirectionInput); err != nil {
		return nil, err
	}
	return dio, nil
}

// With constructs a DigitalInOut, passes it to fn, and deinitialises it when
// fn returns or panics.
func With(d Driver, id int, fn func(*DigitalInOut) error, options ...PinOption) error {
	dio, err := NewDigitalInOut(d, id, options...)
	if err != nil {
		return err
	}
	defer dio.Deinit()
	return fn(dio)
}

// Deinit releases the pin.
//
// The pin on the co-processor is left in its current state.
// The released Pin rejects further commands with ErrUseAfterDeinit.
// Calling Deinit more than once is harmless.
func (d *DigitalInOut) Deinit() {
	if d.pin != nil {
		d.pin.release()
	}
	d.pin = nil
}

// Close deinitialises the DigitalInOut.
//
// It always returns nil.
func (d *DigitalInOut) Close() error {
	d.Deinit()
	return nil
}

// Pin returns the underlying Pin, or nil after Deinit.
//
// The Pin remains owned by the DigitalInOut, and once released by Deinit any
// retained reference returns ErrUseAfterDeinit.
func (d *DigitalInOut) Pin() *Pin {
	return d.pin
}

// SwitchToOutput sets the pin as an output and then sets its value and
// drive mode.
func (d *DigitalInOut) SwitchToOutput(value bool, mode DriveMode) error {
	if d.pin == nil {
		return ErrUseAfterDeinit
	}
	if !mode.valid() {
		return errors.Wrapf(ErrInvalidDriveMode, "pin %d %s", d.pin.id, mode)
	}
	if err := d.SetDirection(DirectionOutput); err != nil {
		return err
	}
	if err := d.SetValue(value); err != nil {
		return err
	}
	return d.SetDriveMode(mode)
}

// SwitchToInput would set the pin as an input with the given pull.
//
// Digital reads are not supported by the co-processor protocol, so this always
// returns ErrUnsupported.
func (d *DigitalInOut) SwitchToInput(pull Pull) error {
	if d.pin == nil {
		return ErrUseAfterDeinit
	}
	return errors.Wrapf(ErrUnsupported, "switch pin %d to input", d.pin.id)
}

// Direction returns the current direction.
func (d *DigitalInOut) Direction() (Direction, error) {
	if d.pin == nil {
		return DirectionUnset, ErrUseAfterDeinit
	}
	if d.direction == DirectionUnset {
		return DirectionUnset, errors.Wrapf(ErrDirectionUnset, "pin %d", d.pin.id)
	}
	return d.direction, nil
}

// SetDirection sets the direction of the pin.
//
// Setting the direction to output also drives the pin low and sets the drive
// mode to push-pull, each of which sends a command to the co-processor.
func (d *DigitalInOut) SetDirection(dir Direction) error {
	if d.pin == nil {
		return ErrUseAfterDeinit
	}
	switch dir {
	case DirectionOutput:
		if err := d.pin.InitMode(ModeOutput); err != nil {
			return err
		}
		// the co-processor pin is now a push-pull output
		d.direction = DirectionOutput
		d.driveMode = DriveModePushPull
		if err := d.SetValue(false); err != nil {
			return err
		}
		return d.SetDriveMode(DriveModePushPull)
	case DirectionInput:
		if err := d.pin.InitMode(ModeInput); err != nil {
			return err
		}
		d.direction = DirectionInput
		return nil
	default:
		return errors.Wrapf(ErrInvalidDirection, "pin %d %s", d.pin.id, dir)
	}
}

// Value returns true if the pin is high.
//
// This reads the pin, which the co-processor protocol does not support, so it
// always returns ErrUnsupported, even for outputs.
func (d *DigitalInOut) Value() (bool, error) {
	if d.pin == nil {
		return false, ErrUseAfterDeinit
	}
	l, err := d.pin.Value()
	if err != nil {
		return false, err
	}
	return l == LevelHigh, nil
}

// SetValue drives an output high, if value is true, or low.
func (d *DigitalInOut) SetValue(value bool) error {
	if d.pin == nil {
		return ErrUseAfterDeinit
	}
	if d.direction != DirectionOutput {
		return errors.Wrapf(ErrNotAnOutput, "set pin %d", d.pin.id)
	}
	l := LevelLow
	if value {
		l = LevelHigh
	}
	return d.pin.SetValue(l)
}

// DriveMode returns the drive mode of an output.
func (d *DigitalInOut) DriveMode() (DriveMode, error) {
	if d.pin == nil {
		return DriveModePushPull, ErrUseAfterDeinit
	}
	if d.direction != DirectionOutput {
		return DriveModePushPull, errors.Wrapf(ErrNotAnOutput, "pin %d drive mode", d.pin.id)
	}
	return d.driveMode, nil
}

// SetDriveMode sets the drive mode of an output.
//
// The pin mode is re-initialised to match, either ModeOpenDrain or ModeOutput.
func (d *DigitalInOut) SetDriveMode(mode DriveMode) error {
	if d.pin == nil {
		return ErrUseAfterDeinit
	}
	if d.direction != DirectionOutput {
		return errors.Wrapf(ErrNotAnOutput, "set pin %d drive mode", d.pin.id)
	}
	pm := ModeOutput
	switch mode {
	case DriveModePushPull:
	case DriveModeOpenDrain:
		pm = ModeOpenDrain
	default:
		return errors.Wrapf(ErrInvalidDriveMode, "pin %d %s", d.pin.id, mode)
	}
	if err := d.pin.InitMode(pm); err != nil {
		return err
	}
	d.driveMode = mode
	return nil
}

func (m DriveMode) valid() bool {
	return m == DriveModePushPull || m == DriveModeOpenDrain
}
