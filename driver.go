// SPDX-FileCopyrightText: 2023 Kent Gibson <warthog618@gmail.com>
//
// SPDX-License-Identifier: Apache-2.0 OR MIT

package espgpio

// Driver is the interface to the co-processor firmware.
//
// The Driver owns the bus, the command framing and any exchange with the
// firmware.  Each call is a blocking round trip that either succeeds or
// returns an error.
//
// Driver implementations are not assumed to be safe for concurrent use. If a
// Driver is shared by Pins used from multiple goroutines then the caller must
// serialise access.
type Driver interface {
	// SetPinMode sets the mode of the pin to the given mode code.
	SetPinMode(pin uint8, mode uint8) error

	// SetDigitalWrite drives the pin to the given level code.
	SetDigitalWrite(pin uint8, value uint8) error
}
