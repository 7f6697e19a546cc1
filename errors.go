// SPDX-FileCopyrightText: 2023 Kent Gibson <warthog618@gmail.com>
//
// SPDX-License-Identifier: Apache-2.0 OR MIT

package espgpio

import "github.com/pkg/errors"

var (
	// ErrInvalidPin indicates the pin identifier is not one of the pins the
	// co-processor exposes.
	ErrInvalidPin = errors.New("invalid pin")

	// ErrInvalidMode indicates a Mode outside the defined set.
	ErrInvalidMode = errors.New("invalid mode")

	// ErrInvalidValue indicates a Level other than LevelLow or LevelHigh.
	ErrInvalidValue = errors.New("invalid value")

	// ErrInvalidDirection indicates a Direction other than DirectionInput or
	// DirectionOutput.
	ErrInvalidDirection = errors.New("invalid direction")

	// ErrInvalidDriveMode indicates a DriveMode outside the defined set.
	ErrInvalidDriveMode = errors.New("invalid drive mode")

	// ErrNotAnOutput indicates the operation requires the DigitalInOut to be
	// configured as an output.
	ErrNotAnOutput = errors.New("not an output")

	// ErrUnsupported indicates the operation cannot be performed over the
	// co-processor protocol, e.g. reading a digital level.
	ErrUnsupported = errors.New("unsupported operation")

	// ErrUseAfterDeinit indicates the DigitalInOut has been deinitialised.
	ErrUseAfterDeinit = errors.New("use after deinit")

	// ErrDirectionUnset indicates the direction was read before it was ever set.
	ErrDirectionUnset = errors.New("direction not set")

	// ErrNoDriver indicates a nil Driver was provided.
	ErrNoDriver = errors.New("no driver")
)
