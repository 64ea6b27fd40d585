// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package circuits

import (
	"strconv"

	"github.com/db47h/alusim"
)

// A Splitter breaks a word into its bits.
//
//	Inputs: A
//	Outputs: B[bits]
//	Function: B[i] = (A >> i) & 1
//
// Bits of A above the splitter's width are ignored.
//
type Splitter struct {
	alusim.PartSpec
	bits int
}

// NewSplitter returns a new splitter of the given width.
//
func NewSplitter(bits int) *Splitter {
	sp := &Splitter{bits: alusim.CheckWidth(bits)}
	sp.PartSpec = alusim.PartSpec{
		Name:    "Splitter" + strconv.Itoa(bits),
		Inputs:  []string{pA},
		Outputs: alusim.Bus(bits, pB),
		Eval: func(s *alusim.Socket) error {
			s.SetBus(pB, sp.Split(s.Pin(pA)))
			return nil
		}}
	return sp
}

// Width returns the splitter's width.
//
func (sp *Splitter) Width() int { return sp.bits }

// Split returns the low bits of w, LSB first.
//
func (sp *Splitter) Split(w alusim.Word) alusim.Bits {
	out := make(alusim.Bits, sp.bits)
	for i := range out {
		out[i] = (w >> uint(i)) & 1
	}
	return out
}

// A Hub joins bits into a word. It is the inverse of a Splitter of the same
// width.
//
//	Inputs: A[bits]
//	Outputs: B
//	Function: B = sum(A[i] << i)
//
type Hub struct {
	alusim.PartSpec
	bits int
}

// NewHub returns a new hub of the given width.
//
func NewHub(bits int) *Hub {
	h := &Hub{bits: alusim.CheckWidth(bits)}
	h.PartSpec = alusim.PartSpec{
		Name:    "Hub" + strconv.Itoa(bits),
		Inputs:  alusim.Bus(bits, pA),
		Outputs: []string{pB},
		Eval: func(s *alusim.Socket) error {
			s.Set(pB, h.Join(s.Bus(pA, bits)))
			return nil
		}}
	return h
}

// Width returns the hub's width.
//
func (h *Hub) Width() int { return h.bits }

// Join returns the word made of the first Width() elements of v. Elements are
// not checked: anything other than 0 or 1 yields garbage. Missing elements
// read as 0.
//
func (h *Hub) Join(v alusim.Bits) alusim.Word {
	var out alusim.Word
	for i := 0; i < h.bits && i < len(v); i++ {
		out += v[i] << uint(i)
	}
	return out
}

// Mask truncates w to its low bits, going through a Splitter/Hub pair.
//
func Mask(bits int, w alusim.Word) alusim.Word {
	return NewHub(bits).Join(NewSplitter(bits).Split(w))
}
