// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package alusim

import (
	"github.com/pkg/errors"
)

// A Component is a stateless part that maps named input fields to named
// output fields. Run must be safe for concurrent use.
//
type Component interface {
	// Spec returns the part's blueprint.
	Spec() *PartSpec
	// Run evaluates the part.
	Run(in Signals) (Signals, error)
}

// An EvalFn computes a part's outputs. It reads inputs from and writes outputs
// to the socket s.
//
// For example, a Not gate can be defined like this:
//
//	not := &PartSpec{
//		Name:    "Not",
//		Inputs:  IO("A"),
//		Outputs: IO("B"),
//		Eval: func(s *Socket) error {
//			s.Set("B", ^s.Pin("A"))
//			return nil
//		}}
//
type EvalFn func(s *Socket) error

// A PartSpec wraps a part specification (its blueprint).
//
// Composite parts usually embed a PartSpec and build their EvalFn as a
// closure over their own typed methods:
//
//	type Negator struct {
//		alusim.PartSpec
//		// sub-parts
//	}
//
//	func NewNegator(bits int) *Negator {
//		n := &Negator{...}
//		n.PartSpec = alusim.PartSpec{
//			Name:    "Negator" + strconv.Itoa(bits),
//			Inputs:  alusim.IO("A"),
//			Outputs: alusim.IO("B"),
//			Eval: func(s *alusim.Socket) error {
//				s.Set("B", n.Negate(s.Pin("A")))
//				return nil
//			}}
//		return n
//	}
//
type PartSpec struct {
	// Part name.
	Name string
	// Input pin names. Must be distinct pin names.
	// Use the IO() function to expand an input description like
	// "A, S[2]" to []string{"A", "S[0]", "S[1]"}
	Inputs []string
	// Output pin names. Must be distinct pin names.
	Outputs []string

	// Eval function (see EvalFn).
	Eval EvalFn
}

// Spec returns p. It lets types embedding a PartSpec implement Component.
//
func (p *PartSpec) Spec() *PartSpec { return p }

// Run checks that every input of p is present in the given signals, evaluates
// the part and returns its outputs. Fields of in that are not inputs of p are
// ignored.
//
// The returned error wraps ErrMissingInput if an input field is missing. In
// that case, the part is not evaluated.
//
func (p *PartSpec) Run(in Signals) (Signals, error) {
	if err := in.Check(p.Inputs...); err != nil {
		return nil, errors.Wrap(err, p.Name)
	}
	s := newSocket(p, in)
	if err := p.Eval(s); err != nil {
		return nil, errors.Wrap(err, p.Name)
	}
	for _, o := range p.Outputs {
		if _, ok := s.out[o]; !ok {
			return nil, errors.Wrapf(ErrOutput, "%s: field %q", p.Name, o)
		}
	}
	return s.out, nil
}
