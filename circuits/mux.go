// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package circuits

import (
	"strconv"

	"github.com/db47h/alusim"
	"github.com/pkg/errors"
)

// MaxDecoderWidth is the widest index a Decoder accepts.
//
const MaxDecoderWidth = 16

// A Decoder is a one-hot encoder.
//
//	Inputs: A[bits]
//	Outputs: B[1<<bits]
//	Function: B[i] = 1 if i == A else 0
//
type Decoder struct {
	alusim.PartSpec
	bits int
	hub  *Hub
}

// NewDecoder returns a decoder for indexes of the given width. It panics if
// bits is greater than MaxDecoderWidth.
//
func NewDecoder(bits int) *Decoder {
	if bits > MaxDecoderWidth {
		panic(errors.Wrapf(alusim.ErrWidth, "decoder: %d bits", bits))
	}
	d := &Decoder{bits: alusim.CheckWidth(bits), hub: NewHub(bits)}
	d.PartSpec = alusim.PartSpec{
		Name:    "Decoder" + strconv.Itoa(bits),
		Inputs:  alusim.Bus(bits, pA),
		Outputs: alusim.Bus(1<<uint(bits), pB),
		Eval: func(s *alusim.Socket) error {
			s.SetBus(pB, d.Decode(s.Bus(pA, bits)))
			return nil
		}}
	return d
}

// Width returns the width of the decoder's index.
//
func (d *Decoder) Width() int { return d.bits }

// Decode returns a vector of 1<<Width() bits where only the bit at the index
// encoded by in is set.
//
func (d *Decoder) Decode(in alusim.Bits) alusim.Bits {
	out := make(alusim.Bits, 1<<uint(d.bits))
	out[d.hub.Join(in)&alusim.Word(len(out)-1)] = 1
	return out
}

// fill replicates bit 0 of s over every lane of a word.
//
func fill(s alusim.Word) alusim.Word {
	return Not((s & 1) - 1)
}

// Gate returns a if bit 0 of s is set, 0 otherwise. It does not branch: a is
// ANDed with s spread over every lane.
//
func Gate(a, s alusim.Word) alusim.Word {
	return And(a, fill(s))
}

// Switch gates a word by a select bit.
//
//	Inputs: A, S
//	Outputs: B
//	Function: if S == 1 { B = A } else { B = 0 }
//
var Switch = &alusim.PartSpec{
	Name:    "SWC",
	Inputs:  []string{pA, pS},
	Outputs: []string{pB},
	Eval: func(s *alusim.Socket) error {
		s.Set(pB, Gate(s.Pin(pA), s.Pin(pS)))
		return nil
	},
}

// An OrN ORs together a fixed number of words.
//
//	Inputs: A[ways]
//	Outputs: B
//	Function: B = A[0] | A[1] | ... | A[ways-1]
//
// Unlike other buses, every pin of A carries a whole word.
//
type OrN struct {
	alusim.PartSpec
	ways int
}

// NewOrN returns a new n-way OR.
//
func NewOrN(ways int) *OrN {
	if ways < 2 {
		panic(errors.Errorf("OrN: %d ways, need at least 2", ways))
	}
	o := &OrN{ways: ways}
	o.PartSpec = alusim.PartSpec{
		Name:    "OR" + strconv.Itoa(ways) + "Way",
		Inputs:  alusim.Bus(ways, pA),
		Outputs: []string{pB},
		Eval: func(s *alusim.Socket) error {
			s.Set(pB, o.Reduce(s.Words(pA, ways)...))
			return nil
		}}
	return o
}

// Ways returns the number of inputs.
//
func (o *OrN) Ways() int { return o.ways }

// Reduce ORs the first Ways() words of ws pairwise, as a balanced tree of
// OR gates. Missing words read as 0.
//
func (o *OrN) Reduce(ws ...alusim.Word) alusim.Word {
	lvl := make([]alusim.Word, o.ways)
	copy(lvl, ws)
	for len(lvl) > 1 {
		next := lvl[:0:0]
		for i := 0; i < len(lvl); i += 2 {
			if i+1 < len(lvl) {
				next = append(next, Or(lvl[i], lvl[i+1]))
			} else {
				next = append(next, lvl[i])
			}
		}
		lvl = next
	}
	return lvl[0]
}
