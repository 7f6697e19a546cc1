// SPDX-FileCopyrightText: 2023 Kent Gibson <warthog618@gmail.com>
//
// SPDX-License-Identifier: Apache-2.0 OR MIT

package espgpio

import "sort"

// PinSet is the set of pin identifiers a co-processor exposes as GPIOs.
//
// A PinSet is immutable once constructed.
type PinSet struct {
	ids map[int]struct{}
}

// NewPinSet constructs a PinSet containing the given identifiers.
//
// Duplicates are ignored.
func NewPinSet(ids ...int) PinSet {
	s := PinSet{ids: make(map[int]struct{}, len(ids))}
	for _, id := range ids {
		s.ids[id] = struct{}{}
	}
	return s
}

// ESP32Pins is the set of GPIOs available on an ESP32 co-processor.
//
// The remaining ESP32 GPIOs are either absent, input-only, or wired to the
// module flash.
var ESP32Pins = NewPinSet(
	0, 1, 2, 4, 5,
	12, 13, 14, 15,
	16, 17, 18, 19,
	21, 22, 23, 25,
	26, 27, 32, 33,
)

// Contains returns true if the id is in the set.
func (s PinSet) Contains(id int) bool {
	_, ok := s.ids[id]
	return ok
}

// IDs returns the identifiers in the set, in ascending order.
func (s PinSet) IDs() []int {
	ids := make([]int, 0, len(s.ids))
	for id := range s.ids {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// Len returns the number of identifiers in the set.
func (s PinSet) Len() int {
	return len(s.ids)
}
