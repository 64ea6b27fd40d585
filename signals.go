// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package alusim

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// MaxWidth is the widest word a component can be built for.
//
const MaxWidth = 64

// A Word is a fixed-width unsigned value. A component of width N only ever
// reads the low N bits of the words it is given.
//
type Word uint64

// Bits is an ordered bit vector, LSB first. Each element is 0 or 1.
//
type Bits []Word

// String returns the vector as a binary literal, MSB first.
//
func (b Bits) String() string {
	var sb strings.Builder
	sb.Grow(len(b) + 2)
	sb.WriteString("0b")
	for i := len(b) - 1; i >= 0; i-- {
		if b[i]&1 != 0 {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}

// Signals maps field names to values for a single Run call. A bit vector field
// X of n bits is carried as the bus pins X[0] through X[n-1].
//
type Signals map[string]Word

// Check returns an error wrapping ErrMissingInput for the first name in names
// that is not present in s.
//
func (s Signals) Check(names ...string) error {
	for _, n := range names {
		if _, ok := s[n]; !ok {
			return errors.Wrapf(ErrMissingInput, "field %q", n)
		}
	}
	return nil
}

// Bus reads the n pins of bus name into a bit vector. Only bit 0 of every
// pin is kept.
//
func (s Signals) Bus(name string, n int) (Bits, error) {
	out := make(Bits, n)
	for i := range out {
		p := BusPinName(name, i)
		v, ok := s[p]
		if !ok {
			return nil, errors.Wrapf(ErrMissingInput, "field %q", p)
		}
		out[i] = v & 1
	}
	return out, nil
}

// SetBus writes the bit vector v to the pins of bus name.
//
func (s Signals) SetBus(name string, v Bits) {
	for i, b := range v {
		s[BusPinName(name, i)] = b
	}
}

// Copy returns a copy of s.
//
func (s Signals) Copy() Signals {
	t := make(Signals, len(s))
	for k, v := range s {
		t[k] = v
	}
	return t
}

// BusPinName returns the name of pin i of bus name.
//
func BusPinName(name string, i int) string {
	return name + "[" + strconv.Itoa(i) + "]"
}

// Bus returns the expanded pin names of every bus in names, each of the
// given number of bits.
//
//	Bus(2, "A", "B") // []string{"A[0]", "A[1]", "B[0]", "B[1]"}
//
func Bus(bits int, names ...string) []string {
	b := make([]string, len(names)*bits)
	for i, n := range names {
		for j := 0; j < bits; j++ {
			b[i*bits+j] = BusPinName(n, j)
		}
	}
	return b
}

// CheckWidth panics if bits is not a valid component width.
//
func CheckWidth(bits int) int {
	if bits < 1 || bits > MaxWidth {
		panic(errors.Wrapf(ErrWidth, "%d bits", bits))
	}
	return bits
}
