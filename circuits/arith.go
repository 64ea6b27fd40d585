// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package circuits

import (
	"strconv"

	"github.com/db47h/alusim"
	"github.com/pkg/errors"
)

func checkCarry(c alusim.Word) error {
	if c > 1 {
		return errors.Wrapf(alusim.ErrRange, "carry in %d", c)
	}
	return nil
}

// A HalfAdder adds two bits.
//
//	Inputs: A, B
//	Outputs: sum, car
//	Function: sum = lsb(A + B)
//	          car = msb(A + B)
//
type HalfAdder struct {
	alusim.PartSpec
}

// NewHalfAdder returns a new half adder.
//
func NewHalfAdder() *HalfAdder {
	h := new(HalfAdder)
	h.PartSpec = alusim.PartSpec{
		Name:    "HalfAdder",
		Inputs:  []string{pA, pB},
		Outputs: []string{pSum, pCar},
		Eval: func(s *alusim.Socket) error {
			sum, car := h.Add(s.Pin(pA), s.Pin(pB))
			s.Set(pSum, sum)
			s.Set(pCar, car)
			return nil
		}}
	return h
}

// Add returns Xor(a, b) and And(a, b).
//
func (h *HalfAdder) Add(a, b alusim.Word) (sum, car alusim.Word) {
	return Xor(a, b), And(a, b)
}

// A FullAdder adds two bits and a carry.
//
//	Inputs: A, B, C
//	Outputs: sum, car
//	Function: sum = lsb(A + B + C)
//	          car = msb(A + B + C)
//
type FullAdder struct {
	alusim.PartSpec
	half *HalfAdder
}

// NewFullAdder returns a new full adder.
//
func NewFullAdder() *FullAdder {
	f := &FullAdder{half: NewHalfAdder()}
	f.PartSpec = alusim.PartSpec{
		Name:    "FullAdder",
		Inputs:  []string{pA, pB, pC},
		Outputs: []string{pSum, pCar},
		Eval: func(s *alusim.Socket) error {
			sum, car, err := f.Add(s.Pin(pA), s.Pin(pB), s.Pin(pC))
			if err != nil {
				return err
			}
			s.Set(pSum, sum)
			s.Set(pCar, car)
			return nil
		}}
	return f
}

// Add adds a, b and the carry c. The returned error wraps alusim.ErrRange if c
// is neither 0 nor 1.
//
func (f *FullAdder) Add(a, b, c alusim.Word) (sum, car alusim.Word, err error) {
	if err = checkCarry(c); err != nil {
		return 0, 0, err
	}
	sum, car = f.add(a, b, c)
	return sum, car, nil
}

// add chains two half adders: a+b first, then the carry in. This order is
// not interchangeable.
//
func (f *FullAdder) add(a, b, c alusim.Word) (sum, car alusim.Word) {
	s0, c0 := f.half.Add(a, b)
	s1, c1 := f.half.Add(s0, c)
	return s1, Or(c0, c1)
}

// An Adder is a ripple carry adder.
//
//	Inputs: A, B, C
//	Outputs: sum, car
//	Function: sum = (A + B + C) mod 2**bits
//	          car = 1 if A + B + C >= 2**bits else 0
//
type Adder struct {
	alusim.PartSpec
	bits  int
	split *Splitter
	hub   *Hub
	full  *FullAdder
}

// NewAdder returns a new adder of the given width.
//
func NewAdder(bits int) *Adder {
	a := &Adder{
		bits:  alusim.CheckWidth(bits),
		split: NewSplitter(bits),
		hub:   NewHub(bits),
		full:  NewFullAdder(),
	}
	a.PartSpec = alusim.PartSpec{
		Name:    "Adder" + strconv.Itoa(bits),
		Inputs:  []string{pA, pB, pC},
		Outputs: []string{pSum, pCar},
		Eval: func(s *alusim.Socket) error {
			sum, car, err := a.Add(s.Pin(pA), s.Pin(pB), s.Pin(pC))
			if err != nil {
				return err
			}
			s.Set(pSum, sum)
			s.Set(pCar, car)
			return nil
		}}
	return a
}

// Width returns the adder's width.
//
func (a *Adder) Width() int { return a.bits }

// Add returns the low Width() bits of x + y + c and the carry out of the most
// significant bit. The returned error wraps alusim.ErrRange if c is neither 0
// nor 1.
//
func (a *Adder) Add(x, y, c alusim.Word) (sum, car alusim.Word, err error) {
	if err = checkCarry(c); err != nil {
		return 0, 0, err
	}
	sum, car = a.add(x, y, c)
	return sum, car, nil
}

func (a *Adder) add(x, y, c alusim.Word) (sum, car alusim.Word) {
	xs, ys := a.split.Split(x), a.split.Split(y)
	out := make(alusim.Bits, a.bits)
	for i := range out {
		out[i], c = a.full.add(xs[i], ys[i], c)
	}
	return a.hub.Join(out), c
}

// A Negator computes the two's complement of a word.
//
//	Inputs: A
//	Outputs: B
//	Function: B = -A mod 2**bits
//
type Negator struct {
	alusim.PartSpec
	adder *Adder
}

// NewNegator returns a new negator of the given width.
//
func NewNegator(bits int) *Negator {
	n := &Negator{adder: NewAdder(bits)}
	n.PartSpec = alusim.PartSpec{
		Name:    "Negator" + strconv.Itoa(bits),
		Inputs:  []string{pA},
		Outputs: []string{pB},
		Eval: func(s *alusim.Socket) error {
			s.Set(pB, n.Negate(s.Pin(pA)))
			return nil
		}}
	return n
}

// Width returns the negator's width.
//
func (n *Negator) Width() int { return n.adder.bits }

// Negate inverts a and adds 1. The carry out is dropped.
//
func (n *Negator) Negate(a alusim.Word) alusim.Word {
	sum, _ := n.adder.add(Not(a), 1, 0)
	return sum
}

// A Subtractor subtracts two words by adding the two's complement of the
// second one.
//
//	Inputs: A, B
//	Outputs: sum
//	Function: sum = (A - B) mod 2**bits
//
type Subtractor struct {
	alusim.PartSpec
	adder *Adder
	neg   *Negator
}

// NewSubtractor returns a new subtractor of the given width.
//
func NewSubtractor(bits int) *Subtractor {
	sb := &Subtractor{adder: NewAdder(bits), neg: NewNegator(bits)}
	sb.PartSpec = alusim.PartSpec{
		Name:    "Subtractor" + strconv.Itoa(bits),
		Inputs:  []string{pA, pB},
		Outputs: []string{pSum},
		Eval: func(s *alusim.Socket) error {
			s.Set(pSum, sb.Sub(s.Pin(pA), s.Pin(pB)))
			return nil
		}}
	return sb
}

// Width returns the subtractor's width.
//
func (sb *Subtractor) Width() int { return sb.adder.bits }

// Sub returns a - b, wrapped around modulo 2**Width().
//
func (sb *Subtractor) Sub(a, b alusim.Word) alusim.Word {
	sum, _ := sb.adder.add(a, sb.neg.Negate(b), 0)
	return sum
}

// A Multiplier is a shift and add multiplier. It does not widen its result.
//
//	Inputs: A, B
//	Outputs: C
//	Function: C = (A * B) mod 2**bits
//
type Multiplier struct {
	alusim.PartSpec
	bits  int
	split *Splitter
	hub   *Hub
	half  *HalfAdder
	full  *FullAdder
}

// NewMultiplier returns a new multiplier of the given width.
//
func NewMultiplier(bits int) *Multiplier {
	m := &Multiplier{
		bits:  alusim.CheckWidth(bits),
		split: NewSplitter(bits),
		hub:   NewHub(bits),
		half:  NewHalfAdder(),
		full:  NewFullAdder(),
	}
	m.PartSpec = alusim.PartSpec{
		Name:    "Multiplier" + strconv.Itoa(bits),
		Inputs:  []string{pA, pB},
		Outputs: []string{pC},
		Eval: func(s *alusim.Socket) error {
			s.Set(pC, m.Mul(s.Pin(pA), s.Pin(pB)))
			return nil
		}}
	return m
}

// Width returns the multiplier's width.
//
func (m *Multiplier) Width() int { return m.bits }

// Mul returns the low Width() bits of a * b.
//
// For every bit i of b, a<<i is gated by that bit and accumulated. The shifted
// multiplicand is not masked: bits pushed above the working width are simply
// never read by the splitter, so they cannot reach the result.
//
func (m *Multiplier) Mul(a, b alusim.Word) alusim.Word {
	var slot [2]alusim.Word
	for i, bit := range m.split.Split(b) {
		if i == 0 {
			slot[0] = Gate(a, bit)
		} else {
			slot[1] = Gate(a, bit)
			slot[0] = m.accumulate(slot[0], slot[1])
		}
		a <<= 1
	}
	return m.hub.Join(m.split.Split(slot[0]))
}

// accumulate adds x and y with a fresh ripple of one half adder followed by
// full adders. The final carry is dropped.
//
func (m *Multiplier) accumulate(x, y alusim.Word) alusim.Word {
	xs, ys := m.split.Split(x), m.split.Split(y)
	out := make(alusim.Bits, m.bits)
	var c alusim.Word
	out[0], c = m.half.Add(xs[0], ys[0])
	for i := 1; i < m.bits; i++ {
		out[i], c = m.full.add(xs[i], ys[i], c)
	}
	return m.hub.Join(out)
}
