// SPDX-FileCopyrightText: 2023 Kent Gibson <warthog618@gmail.com>
//
// SPDX-License-Identifier: Apache-2.0 OR MIT

package cdev_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/warthog618/go-espgpio"
	"github.com/warthog618/go-espgpio/cdev"
	"github.com/warthog618/go-gpiocdev"
	"github.com/warthog618/go-gpiosim"
)

// newSimpleton creates a gpio-sim chip, or skips the test if gpio-sim is not
// available, typically as the test is not running as root.
func newSimpleton(t *testing.T, numLines int) *gpiosim.Simpleton {
	t.Helper()
	s, err := gpiosim.NewSimpleton(numLines)
	if err != nil {
		t.Skip("gpio-sim unavailable:", err)
	}
	return s
}

func checkSimLevel(t *testing.T, s *gpiosim.Simpleton, offset, xv int) {
	t.Helper()
	v, err := s.Level(offset)
	assert.Nil(t, err)
	assert.Equal(t, xv, v)
}

func TestNew(t *testing.T) {
	d, err := cdev.New("nonexistent")
	assert.NotNil(t, err)
	assert.Nil(t, d)

	s := newSimpleton(t, 34)
	defer s.Close()

	d, err = cdev.New(s.ChipName())
	require.Nil(t, err)
	assert.Nil(t, d.Close())
}

func TestDigitalInOut(t *testing.T) {
	s := newSimpleton(t, 34)
	defer s.Close()
	d, err := cdev.New(s.ChipName(), cdev.WithConsumer("cdev_test"))
	require.Nil(t, err)
	defer d.Close()

	dio, err := espgpio.NewDigitalInOut(d, 5)
	require.Nil(t, err)
	defer dio.Deinit()

	// pin is requested as an input, so its level follows the pull
	require.Nil(t, s.Pullup(5))
	checkSimLevel(t, s, 5, 1)
	require.Nil(t, s.Pulldown(5))
	checkSimLevel(t, s, 5, 0)

	err = dio.SwitchToOutput(true, espgpio.DriveModePushPull)
	assert.Nil(t, err)
	checkSimLevel(t, s, 5, 1)

	err = dio.SetValue(false)
	assert.Nil(t, err)
	checkSimLevel(t, s, 5, 0)

	// open-drain actively drives low, overriding the pull
	require.Nil(t, s.Pullup(5))
	err = dio.SwitchToOutput(false, espgpio.DriveModeOpenDrain)
	assert.Nil(t, err)
	checkSimLevel(t, s, 5, 0)
	dm, err := dio.DriveMode()
	assert.Nil(t, err)
	assert.Equal(t, espgpio.DriveModeOpenDrain, dm)
}

func TestSetPinMode(t *testing.T) {
	s := newSimpleton(t, 8)
	defer s.Close()
	d, err := cdev.New(s.ChipName(), cdev.WithOffsets(map[uint8]int{33: 3}))
	require.Nil(t, err)

	// remapped
	err = d.SetPinMode(33, espgpio.CodeOutput)
	assert.Nil(t, err)
	err = d.SetDigitalWrite(33, espgpio.CodeHigh)
	assert.Nil(t, err)
	checkSimLevel(t, s, 3, 1)

	// output level is retained when reconfigured
	err = d.SetPinMode(33, espgpio.CodeOpenDrain)
	assert.Nil(t, err)
	require.Nil(t, s.Pullup(3))
	checkSimLevel(t, s, 3, 1)

	// beyond chip
	err = d.SetPinMode(12, espgpio.CodeOutput)
	assert.NotNil(t, err)

	// unknown mode
	err = d.SetPinMode(2, 0x02)
	assert.NotNil(t, err)

	// released on close
	require.Nil(t, d.Close())
	l, err := gpiocdev.RequestLine(s.ChipName(), 3, gpiocdev.AsInput)
	require.Nil(t, err)
	l.Close()
}

func TestSetDigitalWrite(t *testing.T) {
	s := newSimpleton(t, 8)
	defer s.Close()
	d, err := cdev.New(s.ChipName())
	require.Nil(t, err)
	defer d.Close()

	// not requested
	err = d.SetDigitalWrite(4, espgpio.CodeHigh)
	assert.NotNil(t, err)

	// input
	require.Nil(t, d.SetPinMode(4, espgpio.CodeInput))
	err = d.SetDigitalWrite(4, espgpio.CodeHigh)
	assert.NotNil(t, err)

	// invalid level
	require.Nil(t, d.SetPinMode(4, espgpio.CodeOutput))
	err = d.SetDigitalWrite(4, 2)
	assert.NotNil(t, err)
	checkSimLevel(t, s, 4, 0)

	err = d.SetDigitalWrite(4, espgpio.CodeHigh)
	assert.Nil(t, err)
	checkSimLevel(t, s, 4, 1)
}
