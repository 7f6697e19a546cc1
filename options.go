// SPDX-FileCopyrightText: 2023 Kent Gibson <warthog618@gmail.com>
//
// SPDX-License-Identifier: Apache-2.0 OR MIT

package espgpio

import "github.com/sirupsen/logrus"

// PinOption defines the interface required to provide an option to NewPin
// and NewDigitalInOut.
type PinOption interface {
	applyPinOption(*pinConfig)
}

type pinConfig struct {
	log  *logrus.Entry
	pins PinSet
}

func newPinConfig(options []PinOption) pinConfig {
	cfg := pinConfig{pins: ESP32Pins}
	for _, o := range options {
		o.applyPinOption(&cfg)
	}
	if cfg.log == nil {
		cfg.log = logrus.NewEntry(logrus.StandardLogger())
	}
	return cfg
}

// LoggerOption is an option that sets the logger used by a Pin.
type LoggerOption struct {
	log *logrus.Entry
}

// WithLogger returns an option that sets the logger used to trace the commands
// sent to the co-processor.
//
// Commands are logged at debug level.
// If not provided then the logrus standard logger is used.
func WithLogger(log *logrus.Entry) LoggerOption {
	return LoggerOption{log}
}

func (o LoggerOption) applyPinOption(c *pinConfig) {
	c.log = o.log
}

// PinSetOption is an option that defines the set of valid pins.
type PinSetOption PinSet

// WithPinSet returns an option that replaces the set of valid pin identifiers.
//
// This is only necessary for co-processors other than the ESP32.
// The default is ESP32Pins.
func WithPinSet(s PinSet) PinSetOption {
	return PinSetOption(s)
}

func (o PinSetOption) applyPinOption(c *pinConfig) {
	c.pins = PinSet(o)
}
