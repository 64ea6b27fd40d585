// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/db47h/alusim"
	"github.com/db47h/alusim/circuits"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type options struct {
	width   int
	verbose bool
}

func newRootCmd(w io.Writer) *cobra.Command {
	opts := new(options)
	root := &cobra.Command{
		Use:   "alusim",
		Short: "A combinational logic simulator",
		Long: `alusim evaluates the parts of a gate level ALU: logic gates, adders,
a subtractor, a multiplier and the ALU itself.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if opts.verbose {
				log.SetLevel(log.DebugLevel)
			}
		},
	}
	root.SetOut(w)
	root.PersistentFlags().IntVarP(&opts.width, "width", "w", 8, "word width in bits")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log every part evaluation")

	root.AddCommand(
		&cobra.Command{
			Use:   "parts",
			Short: "List available parts",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				for _, n := range circuits.Names() {
					fmt.Fprintln(cmd.OutOrStdout(), n)
				}
				return nil
			},
		},
		&cobra.Command{
			Use:   "run PART [FIELD=VALUE...]",
			Short: "Run a part with the given input fields",
			Args:  cobra.MinimumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				c, err := opts.part(args[0])
				if err != nil {
					return err
				}
				in, err := parseFields(args[1:])
				if err != nil {
					return err
				}
				out, err := c.Run(in)
				if err != nil {
					return err
				}
				printFields(cmd.OutOrStdout(), c.Spec().Outputs, out)
				return nil
			},
		},
		&cobra.Command{
			Use:   "eval OP A B",
			Short: "Evaluate A OP B with the ALU",
			Long: `Evaluate A OP B with the ALU. OP is a function name (or, nand, nor, and,
add, sub, mul) or an opcode number.`,
			Args: cobra.ExactArgs(3),
			RunE: func(cmd *cobra.Command, args []string) error {
				op, err := circuits.ParseOpcode(args[0])
				if err != nil {
					return err
				}
				a, err := parseWord(args[1])
				if err != nil {
					return errors.Wrap(err, "A")
				}
				b, err := parseWord(args[2])
				if err != nil {
					return errors.Wrap(err, "B")
				}
				c, err := opts.part("alu")
				if err != nil {
					return err
				}
				out, err := c.Run(alusim.Signals{"A": a, "B": b, "op": alusim.Word(op)})
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), out["C"])
				return nil
			},
		},
	)
	return root
}

// part looks up the named part, wrapped with a tracer in verbose mode.
//
func (o *options) part(name string) (alusim.Component, error) {
	c, err := circuits.Lookup(name, o.width)
	if err != nil {
		return nil, err
	}
	if o.verbose {
		c = alusim.Trace(c, log.StandardLogger())
	}
	return c, nil
}

// parseWord parses a decimal, hex (0x), octal (0o) or binary (0b) value.
//
func parseWord(s string) (alusim.Word, error) {
	v, err := strconv.ParseUint(s, 0, 64)
	if err != nil {
		return 0, errors.Errorf("invalid value %q", s)
	}
	return alusim.Word(v), nil
}

func parseFields(args []string) (alusim.Signals, error) {
	in := make(alusim.Signals, len(args))
	for _, arg := range args {
		i := strings.IndexRune(arg, '=')
		if i <= 0 {
			return nil, errors.Errorf("invalid field assignment %q", arg)
		}
		pins, err := alusim.ParseIO(arg[:i])
		if err != nil {
			return nil, err
		}
		v, err := parseWord(arg[i+1:])
		if err != nil {
			return nil, errors.Wrap(err, arg[:i])
		}
		if len(pins) > 1 {
			// A[8]=5 assigns the bits of 5 to A[0]..A[7]
			for bit, p := range pins {
				in[p] = v >> uint(bit) & 1
			}
			continue
		}
		for _, p := range pins {
			in[p] = v
		}
	}
	return in, nil
}

// printFields prints the named fields of s in pin order.
//
func printFields(w io.Writer, names []string, s alusim.Signals) {
	for _, k := range names {
		fmt.Fprintf(w, "%s=%d\n", k, s[k])
	}
}
