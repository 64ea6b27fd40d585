package alusim_test

import (
	"testing"

	"github.com/db47h/alusim"
	"github.com/pkg/errors"
)

var xor = &alusim.PartSpec{
	Name:    "XOR",
	Inputs:  alusim.IO("A, B"),
	Outputs: alusim.IO("C"),
	Eval: func(s *alusim.Socket) error {
		s.Set("C", s.Pin("A")^s.Pin("B"))
		return nil
	}}

func TestPartSpec_Run(t *testing.T) {
	out, err := xor.Run(alusim.Signals{"A": 6, "B": 3, "extra": 1})
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != 1 || out["C"] != 5 {
		t.Fatalf("got %v, expected map[C:5]", out)
	}
}

func TestPartSpec_Run_missing(t *testing.T) {
	called := false
	p := &alusim.PartSpec{
		Name:    "probe",
		Inputs:  alusim.IO("A, B[2]"),
		Outputs: alusim.IO("C"),
		Eval: func(s *alusim.Socket) error {
			called = true
			s.Set("C", 0)
			return nil
		}}
	_, err := p.Run(alusim.Signals{"A": 1, "B[0]": 1})
	if errors.Cause(err) != alusim.ErrMissingInput {
		t.Fatalf("expected ErrMissingInput, got %v", err)
	}
	if called {
		t.Fatal("part evaluated despite missing input")
	}
}

func TestPartSpec_Run_unset_output(t *testing.T) {
	p := &alusim.PartSpec{
		Name:    "lazy",
		Inputs:  alusim.IO("A"),
		Outputs: alusim.IO("B, C"),
		Eval: func(s *alusim.Socket) error {
			s.Set("B", s.Pin("A"))
			return nil
		}}
	if _, err := p.Run(alusim.Signals{"A": 1}); errors.Cause(err) != alusim.ErrOutput {
		t.Fatalf("expected ErrOutput, got %v", err)
	}
}

func TestSocket_Pin_undeclared(t *testing.T) {
	p := &alusim.PartSpec{
		Name:    "bad",
		Inputs:  alusim.IO("A"),
		Outputs: alusim.IO("B"),
		Eval: func(s *alusim.Socket) error {
			s.Set("B", s.Pin("Z"))
			return nil
		}}
	defer func() {
		if r := recover(); r == nil {
			t.Fatal("expected panic")
		}
	}()
	p.Run(alusim.Signals{"A": 1, "Z": 1})
}

func TestSocket_Bus(t *testing.T) {
	p := &alusim.PartSpec{
		Name:    "rev",
		Inputs:  alusim.IO("A[4]"),
		Outputs: alusim.IO("B[4]"),
		Eval: func(s *alusim.Socket) error {
			a := s.Bus("A", 4)
			for i, j := 0, len(a)-1; i < j; i, j = i+1, j-1 {
				a[i], a[j] = a[j], a[i]
			}
			s.SetBus("B", a)
			return nil
		}}
	in := make(alusim.Signals)
	in.SetBus("A", alusim.Bits{1, 1, 0, 0})
	in["A[1]"] = 3 // only bit 0 is read
	out, err := p.Run(in)
	if err != nil {
		t.Fatal(err)
	}
	b, err := out.Bus("B", 4)
	if err != nil {
		t.Fatal(err)
	}
	if b.String() != "0b1100" {
		t.Fatalf("B = %v, expected 0b1100", b)
	}
}

func TestSignals_Check(t *testing.T) {
	s := alusim.Signals{"A": 0}
	if err := s.Check("A"); err != nil {
		t.Fatal(err)
	}
	if err := s.Check("A", "B"); errors.Cause(err) != alusim.ErrMissingInput {
		t.Fatalf("expected ErrMissingInput, got %v", err)
	}
	if _, err := s.Bus("X", 2); errors.Cause(err) != alusim.ErrMissingInput {
		t.Fatalf("expected ErrMissingInput, got %v", err)
	}
}

func TestCheckWidth(t *testing.T) {
	if alusim.CheckWidth(64) != 64 {
		t.Fatal("CheckWidth(64) != 64")
	}
	defer func() {
		r := recover()
		err, ok := r.(error)
		if !ok || errors.Cause(err) != alusim.ErrWidth {
			t.Fatalf("expected ErrWidth panic, got %v", r)
		}
	}()
	alusim.CheckWidth(65)
}
