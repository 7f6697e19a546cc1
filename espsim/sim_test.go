// SPDX-FileCopyrightText: 2023 Kent Gibson <warthog618@gmail.com>
//
// SPDX-License-Identifier: Apache-2.0 OR MIT

package espsim_test

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/warthog618/go-espgpio/espsim"
)

func checkMode(t *testing.T, s *espsim.Sim, pin, xmode uint8) {
	t.Helper()
	m, err := s.Mode(pin)
	assert.Nil(t, err)
	assert.Equal(t, xmode, m)
}

func checkLevel(t *testing.T, s *espsim.Sim, pin uint8, xv int) {
	t.Helper()
	v, err := s.Level(pin)
	assert.Nil(t, err)
	assert.Equal(t, xv, v)
}

func TestNew(t *testing.T) {
	s := espsim.New()
	assert.Empty(t, s.Commands())
	_, err := s.Mode(5)
	assert.NotNil(t, err)
	_, err = s.Level(5)
	assert.NotNil(t, err)
}

func TestSetPinMode(t *testing.T) {
	s := espsim.New()
	for _, m := range []uint8{0x00, 0x01, 0x10} {
		err := s.SetPinMode(4, m)
		assert.Nil(t, err)
		checkMode(t, s, 4, m)
	}
	err := s.SetPinMode(4, 0x02)
	assert.NotNil(t, err)
	checkMode(t, s, 4, 0x10)

	xcmds := []espsim.Command{
		espsim.SetPinMode(4, 0x00),
		espsim.SetPinMode(4, 0x01),
		espsim.SetPinMode(4, 0x10),
		espsim.SetPinMode(4, 0x02),
	}
	assert.Equal(t, xcmds, s.Commands())
}

func TestSetDigitalWrite(t *testing.T) {
	s := espsim.New()
	require.Nil(t, s.SetPinMode(2, 0x01))

	err := s.SetDigitalWrite(2, 1)
	assert.Nil(t, err)
	checkLevel(t, s, 2, espsim.LevelActive)

	err = s.SetDigitalWrite(2, 0)
	assert.Nil(t, err)
	checkLevel(t, s, 2, espsim.LevelInactive)

	err = s.SetDigitalWrite(2, 7)
	assert.NotNil(t, err)
	checkLevel(t, s, 2, espsim.LevelInactive)

	// open-drain is still an output
	require.Nil(t, s.SetPinMode(2, 0x10))
	require.Nil(t, s.SetDigitalWrite(2, 1))
	checkLevel(t, s, 2, espsim.LevelActive)

	// inputs have no driven level
	require.Nil(t, s.SetPinMode(2, 0x00))
	_, err = s.Level(2)
	assert.NotNil(t, err)
}

func TestFailures(t *testing.T) {
	s := espsim.New()
	xerr := errors.New("timeout")

	s.FailNext(xerr)
	err := s.SetPinMode(12, 0x01)
	assert.Equal(t, xerr, err)
	_, err = s.Mode(12)
	assert.NotNil(t, err)
	// single shot
	assert.Nil(t, s.SetPinMode(12, 0x01))

	s.SetFailure(12, xerr)
	assert.Equal(t, xerr, s.SetDigitalWrite(12, 1))
	assert.Equal(t, xerr, s.SetPinMode(12, 0x00))
	assert.Nil(t, s.SetPinMode(13, 0x00))
	checkMode(t, s, 12, 0x01)

	s.SetFailure(12, nil)
	assert.Nil(t, s.SetDigitalWrite(12, 1))
	checkLevel(t, s, 12, espsim.LevelActive)

	// failed commands are still recorded
	assert.Equal(t, 6, len(s.Commands()))

	// deferred
	s.FailAfter(2, xerr)
	assert.Nil(t, s.SetPinMode(14, 0x01))
	assert.Nil(t, s.SetDigitalWrite(14, 1))
	assert.Equal(t, xerr, s.SetDigitalWrite(14, 0))
	checkLevel(t, s, 14, espsim.LevelActive)
	assert.Nil(t, s.SetDigitalWrite(14, 0))
	checkLevel(t, s, 14, espsim.LevelInactive)
}

func TestReset(t *testing.T) {
	s := espsim.New()
	require.Nil(t, s.SetPinMode(5, 0x01))
	require.Nil(t, s.SetDigitalWrite(5, 1))
	s.SetFailure(6, errors.New("dead pin"))

	s.ClearCommands()
	assert.Empty(t, s.Commands())
	checkLevel(t, s, 5, espsim.LevelActive)

	s.Reset()
	assert.Empty(t, s.Commands())
	_, err := s.Mode(5)
	assert.NotNil(t, err)
	assert.Nil(t, s.SetPinMode(6, 0x00))
}

func TestCommandString(t *testing.T) {
	assert.Equal(t, "mode(5, 0x10)", espsim.SetPinMode(5, 0x10).String())
	assert.Equal(t, "write(33, 0x01)", espsim.DigitalWrite(33, 1).String())
	assert.Equal(t, "Op(0)", espsim.Op(0).String())
}
