// SPDX-FileCopyrightText: 2023 Kent Gibson <warthog618@gmail.com>
//
// SPDX-License-Identifier: Apache-2.0 OR MIT

// Package cdev provides an espgpio.Driver that stands in for the co-processor
// using the lines of a local gpiochip, accessed via the Linux GPIO character
// device.
//
// This allows code written against espgpio to be exercised on a bench, or in
// host tests against a gpio-sim chip, without the co-processor.
//
// Co-processor pins map to the line with the same offset unless remapped with
// [WithOffsets].
package cdev

import (
	"github.com/pkg/errors"
	"github.com/warthog618/go-espgpio"
	"github.com/warthog618/go-gpiocdev"
)

// Driver forwards co-processor commands to lines on a gpiochip.
//
// Lines are requested on the first set pin mode for the pin, and are held until
// the Driver is closed.
type Driver struct {
	chip *gpiocdev.Chip

	// Remapped offsets by pin.
	offsets map[uint8]int

	// Requested lines by pin.
	lines map[uint8]*gpiocdev.Line

	// Mode codes by pin.
	modes map[uint8]uint8

	// Last level written by pin.
	levels map[uint8]int
}

var _ espgpio.Driver = (*Driver)(nil)

// New opens the named gpiochip, e.g. "gpiochip0", and returns a Driver using
// its lines.
//
// The available options are [WithConsumer] and [WithOffsets].
func New(chipName string, options ...Option) (*Driver, error) {
	cfg := config{consumer: "espgpio"}
	for _, o := range options {
		o.applyOption(&cfg)
	}
	c, err := gpiocdev.NewChip(chipName, gpiocdev.WithConsumer(cfg.consumer))
	if err != nil {
		return nil, errors.Wrapf(err, "open %s", chipName)
	}
	return &Driver{
		chip:    c,
		offsets: cfg.offsets,
		lines:   make(map[uint8]*gpiocdev.Line),
		modes:   make(map[uint8]uint8),
		levels:  make(map[uint8]int),
	}, nil
}

// Close releases all the requested lines and the chip.
func (d *Driver) Close() error {
	var err error
	for pin, l := range d.lines {
		if lerr := l.Close(); lerr != nil && err == nil {
			err = lerr
		}
		delete(d.lines, pin)
	}
	if cerr := d.chip.Close(); cerr != nil && err == nil {
		err = cerr
	}
	return err
}

// offset returns the line offset corresponding to the pin.
func (d *Driver) offset(pin uint8) (int, error) {
	o, ok := d.offsets[pin]
	if !ok {
		o = int(pin)
	}
	if o >= d.chip.Lines() {
		return 0, errors.Errorf("pin %d maps to offset %d, beyond %s", pin, o, d.chip.Name)
	}
	return o, nil
}

// SetPinMode implements espgpio.Driver.
//
// The line is requested, or reconfigured if already requested.  Outputs are
// driven to the level last written to the pin, which is low by default.
func (d *Driver) SetPinMode(pin uint8, mode uint8) error {
	var cfg []gpiocdev.LineConfigOption
	var req []gpiocdev.LineReqOption
	v := d.levels[pin]
	switch mode {
	case espgpio.CodeInput:
		cfg = []gpiocdev.LineConfigOption{gpiocdev.AsInput}
		req = []gpiocdev.LineReqOption{gpiocdev.AsInput}
	case espgpio.CodeOutput:
		cfg = []gpiocdev.LineConfigOption{gpiocdev.AsOutput(v), gpiocdev.AsPushPull}
		req = []gpiocdev.LineReqOption{gpiocdev.AsOutput(v), gpiocdev.AsPushPull}
	case espgpio.CodeOpenDrain:
		cfg = []gpiocdev.LineConfigOption{gpiocdev.AsOutput(v), gpiocdev.AsOpenDrain}
		req = []gpiocdev.LineReqOption{gpiocdev.AsOutput(v), gpiocdev.AsOpenDrain}
	default:
		return errors.Errorf("unsupported mode code: 0x%02x", mode)
	}
	if l, ok := d.lines[pin]; ok {
		if err := l.Reconfigure(cfg...); err != nil {
			return errors.Wrapf(err, "reconfigure pin %d", pin)
		}
		d.modes[pin] = mode
		return nil
	}
	offset, err := d.offset(pin)
	if err != nil {
		return err
	}
	l, err := d.chip.RequestLine(offset, req...)
	if err != nil {
		return errors.Wrapf(err, "request pin %d", pin)
	}
	d.lines[pin] = l
	d.modes[pin] = mode
	return nil
}

// SetDigitalWrite implements espgpio.Driver.
//
// The pin must have been set as an output.
func (d *Driver) SetDigitalWrite(pin uint8, value uint8) error {
	if value != espgpio.CodeLow && value != espgpio.CodeHigh {
		return errors.Errorf("unsupported level code: 0x%02x", value)
	}
	l, ok := d.lines[pin]
	if !ok || d.modes[pin] == espgpio.CodeInput {
		return errors.Errorf("pin %d is not an output", pin)
	}
	if err := l.SetValue(int(value)); err != nil {
		return errors.Wrapf(err, "write pin %d", pin)
	}
	d.levels[pin] = int(value)
	return nil
}
