// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package circuits provides a library of combinational parts for alusim,
// from NAND-derived logic gates up to an 8 function ALU.
//
// Every part has a typed Go API (e.g. Adder.Add) and implements
// alusim.Component for the field based Run interface.
//
package circuits

import (
	"github.com/db47h/alusim"
)

// common field names
const (
	pA   = "A"
	pB   = "B"
	pC   = "C"
	pS   = "S"
	pOp  = "op"
	pSum = "sum"
	pCar = "car"
)

// Gates work on whole words, one independent lane per bit. Applied to 0/1
// values they implement the usual truth tables. NOT and NAND are the only
// primitives; everything else is built from them.

// Not returns the bitwise complement of a.
//
func Not(a alusim.Word) alusim.Word { return ^a }

// Nand returns Not(a & b).
//
func Nand(a, b alusim.Word) alusim.Word { return ^(a & b) }

// And returns Not(Nand(a, b)).
//
func And(a, b alusim.Word) alusim.Word { return Not(Nand(a, b)) }

// Or returns Nand(Not(a), Not(b)).
//
func Or(a, b alusim.Word) alusim.Word { return Nand(Not(a), Not(b)) }

// Nor returns Not(Or(a, b)).
//
func Nor(a, b alusim.Word) alusim.Word { return Not(Or(a, b)) }

// Xor returns Or(And(Not(a), b), And(Not(b), a)).
//
func Xor(a, b alusim.Word) alusim.Word {
	return Or(And(Not(a), b), And(Not(b), a))
}

// Xnor returns Not(Xor(a, b)).
//
func Xnor(a, b alusim.Word) alusim.Word { return Not(Xor(a, b)) }

// NotGate is a NOT gate.
//
//	Inputs: A
//	Outputs: B
//	Function: B = ^A
//
var NotGate = &alusim.PartSpec{
	Name:    "NOT",
	Inputs:  []string{pA},
	Outputs: []string{pB},
	Eval: func(s *alusim.Socket) error {
		s.Set(pB, Not(s.Pin(pA)))
		return nil
	},
}

// other gates
type gate func(a, b alusim.Word) alusim.Word

func (g gate) eval(s *alusim.Socket) error {
	s.Set(pC, g(s.Pin(pA), s.Pin(pB)))
	return nil
}

func newGate(name string, fn func(a, b alusim.Word) alusim.Word) *alusim.PartSpec {
	return &alusim.PartSpec{
		Name:    name,
		Inputs:  gateIn,
		Outputs: gateOut,
		Eval:    gate(fn).eval,
	}
}

var (
	gateIn  = []string{pA, pB}
	gateOut = []string{pC}

	// NandGate is a NAND gate.
	//
	//	Inputs: A, B
	//	Outputs: C
	//	Function: C = ^(A & B)
	//
	NandGate = newGate("NAND", Nand)

	// AndGate is an AND gate.
	//
	//	Inputs: A, B
	//	Outputs: C
	//	Function: C = A & B
	//
	AndGate = newGate("AND", And)

	// OrGate is an OR gate.
	//
	//	Inputs: A, B
	//	Outputs: C
	//	Function: C = A | B
	//
	OrGate = newGate("OR", Or)

	// NorGate is a NOR gate.
	//
	//	Inputs: A, B
	//	Outputs: C
	//	Function: C = ^(A | B)
	//
	NorGate = newGate("NOR", Nor)

	// XorGate is a XOR gate.
	//
	//	Inputs: A, B
	//	Outputs: C
	//	Function: C = A ^ B
	//
	XorGate = newGate("XOR", Xor)

	// XnorGate is a XNOR gate.
	//
	//	Inputs: A, B
	//	Outputs: C
	//	Function: C = ^(A ^ B)
	//
	XnorGate = newGate("XNOR", Xnor)
)
