// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package circuits

import (
	"strconv"
	"strings"

	"github.com/db47h/alusim"
	"github.com/pkg/errors"
)

// An Opcode selects an ALU function.
//
type Opcode alusim.Word

// ALU opcodes.
//
const (
	OpOr Opcode = iota
	OpNand
	OpNor
	OpAnd
	OpAdd
	OpSub
	OpMul
	OpReserved // always yields 0
)

var opNames = [...]string{"OR", "NAND", "NOR", "AND", "ADD", "SUB", "MUL", "RESERVED"}

func (op Opcode) String() string {
	if op < Opcode(len(opNames)) {
		return opNames[op]
	}
	return "Opcode(" + strconv.FormatUint(uint64(op), 10) + ")"
}

// ParseOpcode returns the opcode for the given case insensitive function name
// (e.g. "add") or decimal opcode number.
//
func ParseOpcode(s string) (Opcode, error) {
	u := strings.ToUpper(strings.TrimSpace(s))
	for i, n := range opNames {
		if u == n {
			return Opcode(i), nil
		}
	}
	v, err := strconv.ParseUint(u, 10, 64)
	if err != nil {
		return 0, errors.Errorf("invalid opcode %q", s)
	}
	return Opcode(v), nil
}

// opDecoder turns the low 3 bits of an opcode into 8 enable lines.
//
type opDecoder struct {
	split *Splitter
	dec   *Decoder
}

func newOpDecoder() opDecoder {
	return opDecoder{split: NewSplitter(8), dec: NewDecoder(3)}
}

func (d opDecoder) decode(op alusim.Word) alusim.Bits {
	return d.dec.Decode(d.split.Split(op)[:3])
}

// An ALU is an arithmetic and logic unit.
//
//	Inputs: A, B, op
//	Outputs: C
//	Function: C = A op B, mod 2**bits
//
// See the Op constants for opcode values. Only the low 3 bits of op are used;
// opcode 7 is reserved and yields 0.
//
// All seven functions are evaluated on every call. Each result is gated by its
// decoded enable line and the gated results are ORed together. Since exactly
// one line is enabled, this selects a single result without branching.
//
type ALU struct {
	alusim.PartSpec
	bits int
	op   opDecoder
	add  *Adder
	sub  *Subtractor
	mul  *Multiplier
	or4  *OrN
	hub  *Hub
	spl  *Splitter
}

// NewALU returns a new ALU of the given width.
//
func NewALU(bits int) *ALU {
	u := &ALU{
		bits: alusim.CheckWidth(bits),
		op:   newOpDecoder(),
		add:  NewAdder(bits),
		sub:  NewSubtractor(bits),
		mul:  NewMultiplier(bits),
		or4:  NewOrN(4),
		hub:  NewHub(bits),
		spl:  NewSplitter(bits),
	}
	u.PartSpec = alusim.PartSpec{
		Name:    "ALU" + strconv.Itoa(bits),
		Inputs:  []string{pA, pB, pOp},
		Outputs: []string{pC},
		Eval: func(s *alusim.Socket) error {
			s.Set(pC, u.Eval(s.Pin(pA), s.Pin(pB), Opcode(s.Pin(pOp))))
			return nil
		}}
	return u
}

// Width returns the ALU's width.
//
func (u *ALU) Width() int { return u.bits }

// Eval returns a op b.
//
func (u *ALU) Eval(a, b alusim.Word, op Opcode) alusim.Word {
	en := u.op.decode(alusim.Word(op))

	add, _ := u.add.add(a, b, 0)
	outs := [8]alusim.Word{
		OpOr:   Gate(Or(a, b), en[OpOr]),
		OpNand: Gate(Nand(a, b), en[OpNand]),
		OpNor:  Gate(Nor(a, b), en[OpNor]),
		OpAnd:  Gate(And(a, b), en[OpAnd]),
		OpAdd:  Gate(add, en[OpAdd]),
		OpSub:  Gate(u.sub.Sub(a, b), en[OpSub]),
		OpMul:  Gate(u.mul.Mul(a, b), en[OpMul]),
		// OpReserved: constant 0
	}

	r := Or(u.or4.Reduce(outs[:4]...), u.or4.Reduce(outs[4:]...))
	return u.hub.Join(u.spl.Split(r))
}

// A LogicUnit is the logic half of an ALU.
//
//	Inputs: A, B, op
//	Outputs: C
//	Function: C = A op B, mod 2**bits
//
// Only OpOr, OpNand, OpNor and OpAnd are supported. Other opcodes yield 0.
//
type LogicUnit struct {
	alusim.PartSpec
	bits int
	op   opDecoder
	or4  *OrN
	hub  *Hub
	spl  *Splitter
}

// NewLogicUnit returns a new logic unit of the given width.
//
func NewLogicUnit(bits int) *LogicUnit {
	u := &LogicUnit{
		bits: alusim.CheckWidth(bits),
		op:   newOpDecoder(),
		or4:  NewOrN(4),
		hub:  NewHub(bits),
		spl:  NewSplitter(bits),
	}
	u.PartSpec = alusim.PartSpec{
		Name:    "LogicUnit" + strconv.Itoa(bits),
		Inputs:  []string{pA, pB, pOp},
		Outputs: []string{pC},
		Eval: func(s *alusim.Socket) error {
			s.Set(pC, u.Eval(s.Pin(pA), s.Pin(pB), Opcode(s.Pin(pOp))))
			return nil
		}}
	return u
}

// Width returns the unit's width.
//
func (u *LogicUnit) Width() int { return u.bits }

// Eval returns a op b.
//
func (u *LogicUnit) Eval(a, b alusim.Word, op Opcode) alusim.Word {
	en := u.op.decode(alusim.Word(op))
	r := u.or4.Reduce(
		Gate(Or(a, b), en[OpOr]),
		Gate(Nand(a, b), en[OpNand]),
		Gate(Nor(a, b), en[OpNor]),
		Gate(And(a, b), en[OpAnd]),
	)
	return u.hub.Join(u.spl.Split(r))
}
