// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package alutest provides utility functions for testing parts.
//
package alutest

import (
	"fmt"
	"math/rand"
	"sort"
	"strings"
	"testing"

	"github.com/db47h/alusim"
)

// A RefFn computes the expected outputs of a part for the given inputs. Only
// the fields it returns are compared.
//
type RefFn func(in alusim.Signals) alusim.Signals

// Samples returns n random input sets where every named field is drawn
// uniformly from [min, max].
//
func Samples(r *rand.Rand, n int, min, max alusim.Word, names ...string) []alusim.Signals {
	out := make([]alusim.Signals, n)
	span := uint64(max - min)
	for i := range out {
		s := make(alusim.Signals, len(names))
		for _, name := range names {
			var v uint64
			switch {
			case span == ^uint64(0):
				v = r.Uint64()
			case span < 1<<62:
				v = uint64(r.Int63n(int64(span + 1)))
			default:
				v = r.Uint64() % (span + 1)
			}
			s[name] = min + alusim.Word(v)
		}
		out[i] = s
	}
	return out
}

// Exhaustive returns every combination of values in [0, 2**bits) for the
// named fields. The number of combinations must stay reasonable.
//
func Exhaustive(bits uint, names ...string) []alusim.Signals {
	out := []alusim.Signals{{}}
	for _, name := range names {
		next := make([]alusim.Signals, 0, len(out)<<bits)
		for _, s := range out {
			for v := alusim.Word(0); v < 1<<bits; v++ {
				t := s.Copy()
				t[name] = v
				next = append(next, t)
			}
		}
		out = next
	}
	return out
}

func sortedKeys(s alusim.Signals) []string {
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func format(s alusim.Signals) string {
	var b strings.Builder
	for _, k := range sortedKeys(s) {
		if b.Len() > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%s=%d", k, s[k])
	}
	return b.String()
}

// ComparePart runs c with every input set in samples and compares the outputs
// with those computed by ref. It stops at the first mismatch or error.
//
func ComparePart(t testing.TB, c alusim.Component, samples []alusim.Signals, ref RefFn) {
	t.Helper()
	name := c.Spec().Name
	for _, in := range samples {
		got, err := c.Run(in)
		if err != nil {
			t.Fatalf("%s(%s): %v", name, format(in), err)
		}
		exp := ref(in)
		for _, k := range sortedKeys(exp) {
			if got[k] != exp[k] {
				t.Fatalf("%s(%s)\nExpected %s=%d\nGot %s=%d", name, format(in), k, exp[k], k, got[k])
			}
		}
	}
}
