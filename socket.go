// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package alusim

// A Socket gives an EvalFn access to a part's input and output fields.
//
type Socket struct {
	p   *PartSpec
	in  Signals
	out Signals
	ins map[string]struct{}
}

func newSocket(p *PartSpec, in Signals) *Socket {
	ins := make(map[string]struct{}, len(p.Inputs))
	for _, n := range p.Inputs {
		ins[n] = struct{}{}
	}
	return &Socket{
		p:   p,
		in:  in,
		out: make(Signals, len(p.Outputs)),
		ins: ins,
	}
}

// Pin returns the value of the given input field.
// This function panics if the field is not one of the part's inputs.
//
func (s *Socket) Pin(name string) Word {
	if _, ok := s.ins[name]; !ok {
		panic("pin " + name + " is not an input of " + s.p.Name)
	}
	return s.in[name]
}

// Bus returns the bits of the given input bus. Only bit 0 of every bus pin is
// kept.
//
func (s *Socket) Bus(name string, bits int) Bits {
	out := make(Bits, bits)
	for i := range out {
		out[i] = s.Pin(BusPinName(name, i)) & 1
	}
	return out
}

// Words returns the raw values of the given input bus. Unlike Bus, every pin
// carries a whole word.
//
func (s *Socket) Words(name string, n int) []Word {
	out := make([]Word, n)
	for i := range out {
		out[i] = s.Pin(BusPinName(name, i))
	}
	return out
}

// Set sets the value of the given output field.
//
func (s *Socket) Set(name string, v Word) {
	s.out[name] = v
}

// SetBus sets the pins of the given output bus.
//
func (s *Socket) SetBus(name string, v Bits) {
	s.out.SetBus(name, v)
}
