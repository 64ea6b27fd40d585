package circuits_test

import (
	"sort"
	"testing"

	"github.com/db47h/alusim"
	"github.com/db47h/alusim/circuits"
	"github.com/pkg/errors"
)

func TestLookup(t *testing.T) {
	names := circuits.Names()
	if !sort.StringsAreSorted(names) {
		t.Fatalf("names not sorted: %v", names)
	}
	for _, n := range names {
		c, err := circuits.Lookup(n, 8)
		if err != nil {
			t.Fatalf("Lookup(%q): %v", n, err)
		}
		spec := c.Spec()
		if len(spec.Outputs) == 0 {
			t.Errorf("%s: no outputs", spec.Name)
		}
		// all zero inputs must run
		in := make(alusim.Signals, len(spec.Inputs))
		for _, p := range spec.Inputs {
			in[p] = 0
		}
		if _, err = c.Run(in); err != nil {
			t.Errorf("%s: %v", spec.Name, err)
		}
	}
}

func TestLookup_errors(t *testing.T) {
	if _, err := circuits.Lookup("divider", 8); errors.Cause(err) != alusim.ErrUnknownPart {
		t.Errorf("expected ErrUnknownPart, got %v", err)
	}
	if _, err := circuits.Lookup("Adder", 65); errors.Cause(err) != alusim.ErrWidth {
		t.Errorf("expected ErrWidth, got %v", err)
	}
	if _, err := circuits.Lookup("decoder", 17); errors.Cause(err) != alusim.ErrWidth {
		t.Errorf("expected ErrWidth, got %v", err)
	}
	c, err := circuits.Lookup("ALU", 16)
	if err != nil {
		t.Fatal(err)
	}
	if c.Spec().Name != "ALU16" {
		t.Errorf("got %s, expected ALU16", c.Spec().Name)
	}
}
