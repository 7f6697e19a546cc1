// SPDX-FileCopyrightText: 2023 Kent Gibson <warthog618@gmail.com>
//
// SPDX-License-Identifier: Apache-2.0 OR MIT

// Package espsim provides a simulated co-processor for testing users of
// espgpio without hardware.
//
// The [Sim] implements [espgpio.Driver], records every command it receives,
// and tracks the mode and level of each pin.  Failures may be injected to
// exercise error paths.
package espsim

import (
	"fmt"
	"sync"

	"github.com/pkg/errors"
	"github.com/warthog618/go-espgpio"
)

// Op identifies the command sent to the co-processor.
type Op int

const (
	// Set pin mode command.
	OpSetPinMode Op = iota + 1

	// Digital write command.
	OpDigitalWrite
)

func (o Op) String() string {
	switch o {
	case OpSetPinMode:
		return "mode"
	case OpDigitalWrite:
		return "write"
	default:
		return fmt.Sprintf("Op(%d)", int(o))
	}
}

// Command is a command received by the Sim.
type Command struct {
	Op Op

	// The pin the command applies to.
	Pin uint8

	// The mode code for OpSetPinMode, or level code for OpDigitalWrite.
	Value uint8
}

// SetPinMode returns the Command for a set pin mode.
func SetPinMode(pin, mode uint8) Command {
	return Command{OpSetPinMode, pin, mode}
}

// DigitalWrite returns the Command for a digital write.
func DigitalWrite(pin, value uint8) Command {
	return Command{OpDigitalWrite, pin, value}
}

func (c Command) String() string {
	return fmt.Sprintf("%s(%d, 0x%02x)", c.Op, c.Pin, c.Value)
}

const (
	// Pin is low.
	LevelInactive int = iota

	// Pin is high.
	LevelActive
)

// Sim is a simulated co-processor.
//
// Unlike real drivers, the Sim is safe for concurrent use, so tests may
// inspect it while it is being driven.
type Sim struct {
	mu sync.Mutex

	// All commands received, in order, including those that failed.
	cmds []Command

	// Mode codes by pin.
	modes map[uint8]uint8

	// Level codes by pin.
	levels map[uint8]uint8

	// Error returned by a later command, regardless of pin.
	failErr error

	// Number of commands to pass before returning failErr.
	failSkip int

	// Errors returned by all commands to a pin.
	failures map[uint8]error
}

var _ espgpio.Driver = (*Sim)(nil)

// New creates a Sim with no pins configured.
func New() *Sim {
	s := &Sim{}
	s.Reset()
	return s
}

// Reset returns the Sim to its initial state, discarding the recorded
// commands, pin states and any injected failures.
func (s *Sim) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cmds = nil
	s.modes = make(map[uint8]uint8)
	s.levels = make(map[uint8]uint8)
	s.failErr = nil
	s.failSkip = 0
	s.failures = make(map[uint8]error)
}

// ClearCommands discards the recorded commands, leaving the pin states intact.
func (s *Sim) ClearCommands() {
	s.mu.Lock()
	s.cmds = nil
	s.mu.Unlock()
}

// Commands returns a copy of the commands received since the Sim was created,
// or last reset or cleared.
func (s *Sim) Commands() []Command {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Command(nil), s.cmds...)
}

// FailNext causes the next command, to any pin, to return err.
//
// The failed command does not alter the pin state.
func (s *Sim) FailNext(err error) {
	s.FailAfter(0, err)
}

// FailAfter causes the command following the next n commands, to any pin, to
// return err.
//
// This allows a failure to be injected part way through an operation that
// sends several commands.  As with FailNext, the failure is single shot.
func (s *Sim) FailAfter(n int, err error) {
	s.mu.Lock()
	s.failErr = err
	s.failSkip = n
	s.mu.Unlock()
}

// SetFailure causes all commands to the pin to return err.
//
// A nil err clears the failure.
func (s *Sim) SetFailure(pin uint8, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err == nil {
		delete(s.failures, pin)
		return
	}
	s.failures[pin] = err
}

// Mode returns the mode code the pin was last set to.
func (s *Sim) Mode(pin uint8) (uint8, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, ok := s.modes[pin]
	if !ok {
		return 0, errors.Errorf("pin %d mode not set", pin)
	}
	return m, nil
}

// Level returns the level the pin is being driven to.
//
// The pin must have been written, and must currently be an output.
func (s *Sim) Level(pin uint8) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if m := s.modes[pin]; m != espgpio.CodeOutput && m != espgpio.CodeOpenDrain {
		return LevelInactive, errors.Errorf("pin %d is not an output", pin)
	}
	v, ok := s.levels[pin]
	if !ok {
		return LevelInactive, errors.Errorf("pin %d level not set", pin)
	}
	if v == espgpio.CodeHigh {
		return LevelActive, nil
	}
	return LevelInactive, nil
}

// SetPinMode implements espgpio.Driver.
func (s *Sim) SetPinMode(pin uint8, mode uint8) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cmds = append(s.cmds, SetPinMode(pin, mode))
	if err := s.failure(pin); err != nil {
		return err
	}
	switch mode {
	case espgpio.CodeInput, espgpio.CodeOutput, espgpio.CodeOpenDrain:
		s.modes[pin] = mode
		return nil
	default:
		return errors.Errorf("unexpected mode code: 0x%02x", mode)
	}
}

// SetDigitalWrite implements espgpio.Driver.
func (s *Sim) SetDigitalWrite(pin uint8, value uint8) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cmds = append(s.cmds, DigitalWrite(pin, value))
	if err := s.failure(pin); err != nil {
		return err
	}
	if value != espgpio.CodeLow && value != espgpio.CodeHigh {
		return errors.Errorf("unexpected level code: 0x%02x", value)
	}
	s.levels[pin] = value
	return nil
}

// failure returns the injected failure for a command, if any.
//
// The caller must hold the lock.
func (s *Sim) failure(pin uint8) error {
	if err := s.failErr; err != nil {
		if s.failSkip == 0 {
			s.failErr = nil
			return err
		}
		s.failSkip--
	}
	return s.failures[pin]
}
