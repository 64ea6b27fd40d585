package alusim_test

import (
	"strings"
	"testing"

	"github.com/db47h/alusim"
)

func TestParseIO(t *testing.T) {
	td := []struct {
		in  string
		out string
		err bool
	}{
		{"", "", false},
		{"A", "A", false},
		{"A, B", "A,B", false},
		{"S[2], op", "S[0],S[1],op", false},
		{"in[3..5]", "in[3],in[4],in[5]", false},
		{"a_1 , b[1]", "a_1,b[0]", false},
		{"A,,B", "", true},
		{"A[", "", true},
		{"[2]", "", true},
		{"A[0]x", "", true},
		{"A[0]", "", true},
		{"A[3..1]", "", true},
		{"1A", "", true},
		{"A[x]", "", true},
	}
	for _, d := range td {
		pins, err := alusim.ParseIO(d.in)
		if (err != nil) != d.err {
			t.Errorf("ParseIO(%q): unexpected error value %v", d.in, err)
			continue
		}
		if err != nil {
			continue
		}
		if got := strings.Join(pins, ","); got != d.out {
			t.Errorf("ParseIO(%q) = %q, expected %q", d.in, got, d.out)
		}
	}
}

func TestIO_panics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Fatal("expected panic")
		}
	}()
	alusim.IO("A[")
}

func TestBus(t *testing.T) {
	got := strings.Join(alusim.Bus(2, "A", "B"), ",")
	if got != "A[0],A[1],B[0],B[1]" {
		t.Fatalf("got %q", got)
	}
}
