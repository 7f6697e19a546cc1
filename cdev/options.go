// SPDX-FileCopyrightText: 2023 Kent Gibson <warthog618@gmail.com>
//
// SPDX-License-Identifier: Apache-2.0 OR MIT

package cdev

// Option defines the interface required to provide an option to New.
type Option interface {
	applyOption(*config)
}

type config struct {
	consumer string
	offsets  map[uint8]int
}

// ConsumerOption defines the consumer label applied to requested lines.
type ConsumerOption string

// WithConsumer returns an option that sets the consumer label reported for the
// requested lines.
//
// The default is "espgpio".
func WithConsumer(consumer string) ConsumerOption {
	return ConsumerOption(consumer)
}

func (o ConsumerOption) applyOption(c *config) {
	c.consumer = string(o)
}

// OffsetsOption maps co-processor pins to line offsets.
type OffsetsOption map[uint8]int

// WithOffsets returns an option that maps co-processor pins to line offsets on
// the gpiochip.
//
// Pins not in the map use the line with the same offset as the pin.
func WithOffsets(offsets map[uint8]int) OffsetsOption {
	return OffsetsOption(offsets)
}

func (o OffsetsOption) applyOption(c *config) {
	if c.offsets == nil {
		c.offsets = make(map[uint8]int)
	}
	for p, off := range o {
		c.offsets[p] = off
	}
}
