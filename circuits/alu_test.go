package circuits_test

import (
	"testing"

	"github.com/db47h/alusim"
	"github.com/db47h/alusim/alutest"
	"github.com/db47h/alusim/circuits"
	"github.com/pkg/errors"
)

func aluRef(bits int) alutest.RefFn {
	m := mask(bits)
	return func(in alusim.Signals) alusim.Signals {
		a, b := in["A"], in["B"]
		var c alusim.Word
		switch circuits.Opcode(in["op"] & 7) {
		case circuits.OpOr:
			c = a | b
		case circuits.OpNand:
			c = ^(a & b)
		case circuits.OpNor:
			c = ^(a | b)
		case circuits.OpAnd:
			c = a & b
		case circuits.OpAdd:
			c = a + b
		case circuits.OpSub:
			c = a - b
		case circuits.OpMul:
			c = a * b
		}
		return alusim.Signals{"C": c & m}
	}
}

func TestALU(t *testing.T) {
	r := newRand(t)
	for _, bits := range []int{8, 32} {
		samples := alutest.Samples(r, sampleCount, 0, mask(bits), "A", "B")
		for i, op := range alutest.Samples(r, sampleCount, 0, 7, "op") {
			samples[i]["op"] = op["op"]
		}
		alutest.ComparePart(t, circuits.NewALU(bits), samples, aluRef(bits))
	}
}

func TestALU_exhaustive_ops(t *testing.T) {
	alu := circuits.NewALU(4)
	alutest.ComparePart(t, alu, alutest.Exhaustive(4, "A", "B", "op"), aluRef(4))
}

func TestALU_examples(t *testing.T) {
	alu := circuits.NewALU(8)
	td := []struct {
		op  circuits.Opcode
		exp alusim.Word
	}{
		{circuits.OpOr, 200 | 45},
		{circuits.OpNand, 255 - (200 & 45)},
		{circuits.OpNor, 255 - (200 | 45)},
		{circuits.OpAnd, 200 & 45},
		{circuits.OpAdd, 245},
		{circuits.OpSub, 155},
		{circuits.OpMul, 200 * 45 % 256},
		{circuits.OpReserved, 0},
		{circuits.OpAdd + 8, 245},
	}
	for _, d := range td {
		out, err := alu.Run(alusim.Signals{"A": 200, "B": 45, "op": alusim.Word(d.op)})
		if err != nil {
			t.Fatal(err)
		}
		if out["C"] != d.exp {
			t.Errorf("200 %v 45 = %d, expected %d", d.op, out["C"], d.exp)
		}
		// same instance, same inputs, same result
		if again := alu.Eval(200, 45, d.op); again != out["C"] {
			t.Errorf("200 %v 45: Eval = %d, Run = %d", d.op, again, out["C"])
		}
	}
}

func TestALU_missing_input(t *testing.T) {
	_, err := circuits.NewALU(8).Run(alusim.Signals{"A": 1, "B": 2})
	if errors.Cause(err) != alusim.ErrMissingInput {
		t.Fatalf("expected ErrMissingInput, got %v", err)
	}
}

func TestLogicUnit(t *testing.T) {
	ref := aluRef(8)
	lu := circuits.NewLogicUnit(8)
	r := newRand(t)
	samples := alutest.Samples(r, sampleCount, 0, 255, "A", "B")
	for i, op := range alutest.Samples(r, sampleCount, 0, 7, "op") {
		samples[i]["op"] = op["op"]
	}
	alutest.ComparePart(t, lu, samples, func(in alusim.Signals) alusim.Signals {
		if in["op"] > alusim.Word(circuits.OpAnd) {
			return alusim.Signals{"C": 0}
		}
		return ref(in)
	})
}

func TestParseOpcode(t *testing.T) {
	td := []struct {
		in  string
		op  circuits.Opcode
		err bool
	}{
		{"add", circuits.OpAdd, false},
		{" NAND ", circuits.OpNand, false},
		{"6", circuits.OpMul, false},
		{"12", 12, false},
		{"reserved", circuits.OpReserved, false},
		{"div", 0, true},
		{"-1", 0, true},
	}
	for _, d := range td {
		op, err := circuits.ParseOpcode(d.in)
		if (err != nil) != d.err {
			t.Errorf("ParseOpcode(%q): unexpected error %v", d.in, err)
			continue
		}
		if err == nil && op != d.op {
			t.Errorf("ParseOpcode(%q) = %v, expected %v", d.in, op, d.op)
		}
	}
	if s := circuits.Opcode(9).String(); s != "Opcode(9)" {
		t.Errorf("Opcode(9).String() = %q", s)
	}
}
