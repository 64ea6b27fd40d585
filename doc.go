/*
Package alusim provides the building blocks of a combinational logic
simulator: fixed-width words, bit vectors and the part specification that
every component of the circuits package is built on.

Components are stateless. Each one holds its bit width and the sub-parts it
is composed of, both fixed at construction, and exposes a single Run
operation mapping named input fields to named output fields:

	adder := circuits.NewAdder(8)
	out, err := adder.Run(alusim.Signals{"A": 120, "B": 98, "C": 1})
	// out["sum"] == 219, out["car"] == 0

Bit vector fields use bus pin names: an 8 bit field B is passed as the pins
B[0] (the least significant bit) through B[7].

There is no clock, no state and no propagation delay: every Run evaluates
its inputs instantaneously and can be called concurrently on the same
component.
*/
package alusim
