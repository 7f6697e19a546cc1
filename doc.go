// SPDX-FileCopyrightText: 2023 Kent Gibson <warthog618@gmail.com>
//
// SPDX-License-Identifier: Apache-2.0 OR MIT

/*
Package espgpio provides digital I/O for GPIOs hosted on a wireless
co-processor, such as the ESP32 running NINA firmware, that is attached to the
host via a peripheral bus.

The host has no electrical connection to the pins.  Every operation is a
command sent to the co-processor firmware by a [Driver], which owns the bus
and the command framing.  Only two commands are used - set pin mode and
digital write.  The protocol provides no digital read, so reading a pin, or
configuring a pin for reading, returns [ErrUnsupported].

A [Pin] validates the pin identifier against the set of pins the co-processor
exposes ([ESP32Pins] by default) and forwards mode and level changes to the
Driver.

A [DigitalInOut] owns a Pin and adds direction and drive mode.  It is
constructed as an input, and may be switched to an output using
[DigitalInOut.SwitchToOutput] or [DigitalInOut.SetDirection].  Setting the
value or drive mode is only permitted for outputs.

Neither Pin nor DigitalInOut perform any locking.  If the Driver is shared
between goroutines then the caller must serialise access.

# Example Usage

Drive pin 5 high:

	d, err := espgpio.NewDigitalInOut(drv, 5)
	defer d.Deinit()
	err = d.SwitchToOutput(true, espgpio.DriveModePushPull)

Use a pin for the duration of a function:

	err := espgpio.With(drv, 13, func(d *espgpio.DigitalInOut) error {
		if err := d.SetDirection(espgpio.DirectionOutput); err != nil {
			return err
		}
		return d.SetValue(true)
	})

The [github.com/warthog618/go-espgpio/espsim] package provides a simulated
co-processor for testing, and [github.com/warthog618/go-espgpio/cdev]
provides a Driver backed by a local gpiochip.
*/
package espgpio
