// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package circuits

import (
	"sort"
	"strings"

	"github.com/db47h/alusim"
	"github.com/pkg/errors"
)

// A NewPartFn builds a part of the given width. Parts that have no width
// ignore it.
//
type NewPartFn func(bits int) alusim.Component

func fixed(p *alusim.PartSpec) NewPartFn {
	return func(int) alusim.Component { return p }
}

var catalog = map[string]NewPartFn{
	"not":        fixed(NotGate),
	"nand":       fixed(NandGate),
	"and":        fixed(AndGate),
	"or":         fixed(OrGate),
	"nor":        fixed(NorGate),
	"xor":        fixed(XorGate),
	"xnor":       fixed(XnorGate),
	"switch":     fixed(Switch),
	"or4":        func(int) alusim.Component { return NewOrN(4) },
	"halfadder":  func(int) alusim.Component { return NewHalfAdder() },
	"fulladder":  func(int) alusim.Component { return NewFullAdder() },
	"splitter":   func(bits int) alusim.Component { return NewSplitter(bits) },
	"hub":        func(bits int) alusim.Component { return NewHub(bits) },
	"decoder":    func(bits int) alusim.Component { return NewDecoder(bits) },
	"adder":      func(bits int) alusim.Component { return NewAdder(bits) },
	"negator":    func(bits int) alusim.Component { return NewNegator(bits) },
	"subtractor": func(bits int) alusim.Component { return NewSubtractor(bits) },
	"multiplier": func(bits int) alusim.Component { return NewMultiplier(bits) },
	"alu":        func(bits int) alusim.Component { return NewALU(bits) },
	"logic":      func(bits int) alusim.Component { return NewLogicUnit(bits) },
}

// Names returns the names of all the parts known to Lookup, sorted.
//
func Names() []string {
	names := make([]string, 0, len(catalog))
	for n := range catalog {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Lookup builds the part with the given case insensitive name. The returned
// error wraps alusim.ErrUnknownPart if there is no such part, or
// alusim.ErrWidth if the width is not supported by the part.
//
func Lookup(name string, bits int) (c alusim.Component, err error) {
	fn, ok := catalog[strings.ToLower(name)]
	if !ok {
		return nil, errors.Wrapf(alusim.ErrUnknownPart, "%q", name)
	}
	defer func() {
		if r := recover(); r != nil {
			e, ok := r.(error)
			if !ok || errors.Cause(e) != alusim.ErrWidth {
				panic(r)
			}
			c, err = nil, e
		}
	}()
	return fn(bits), nil
}
