// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package alusim

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/pkg/errors"
)

// IO parses the pin specification string and returns individual pin names in
// a slice, also expanding bus declarations to individual pin names. It panics
// if the specification is malformed. See ParseIO.
//
//	IO("A, S[2]")     // []string{"A", "S[0]", "S[1]"}
//	IO("B[2..3], C")  // []string{"B[2]", "B[3]", "C"}
//
func IO(spec string) []string {
	out, err := ParseIO(spec)
	if err != nil {
		panic(err)
	}
	return out
}

// ParseIO is like IO but returns an error instead of panicking.
//
func ParseIO(spec string) ([]string, error) {
	var out []string
	for _, f := range strings.Split(spec, ",") {
		f = strings.TrimSpace(f)
		if f == "" {
			if strings.TrimSpace(spec) == "" {
				return nil, nil
			}
			return nil, parseError(spec, "empty pin name")
		}
		pins, err := expandPin(f)
		if err != nil {
			return nil, parseError(spec, err.Error())
		}
		out = append(out, pins...)
	}
	return out, nil
}

// expandPin expands a single pin, bus size or bus range declaration.
//
func expandPin(name string) ([]string, error) {
	i := strings.IndexRune(name, '[')
	if i < 0 {
		if !isIdent(name) {
			return nil, errors.Errorf("invalid pin name %q", name)
		}
		return []string{name}, nil
	}
	bus := strings.TrimSpace(name[:i])
	if bus == "" {
		return nil, errors.New("empty bus name")
	}
	if !isIdent(bus) {
		return nil, errors.Errorf("invalid bus name %q", bus)
	}
	n := name[i+1:]
	j := strings.IndexRune(n, ']')
	if j < 0 {
		return nil, errors.New("no terminating ] in bus declaration")
	}
	if strings.TrimSpace(n[j+1:]) != "" {
		return nil, errors.New("unexpected input after ]")
	}
	n = n[:j]

	// bus range
	if k := strings.Index(n, ".."); k >= 0 {
		start, err := strconv.Atoi(strings.TrimSpace(n[:k]))
		if err != nil {
			return nil, errors.Wrap(err, "bus range start")
		}
		end, err := strconv.Atoi(strings.TrimSpace(n[k+2:]))
		if err != nil {
			return nil, errors.Wrap(err, "bus range end")
		}
		if start < 0 || end < start {
			return nil, errors.Errorf("invalid bus range %d..%d", start, end)
		}
		r := make([]string, 0, end-start+1)
		for i := start; i <= end; i++ {
			r = append(r, BusPinName(bus, i))
		}
		return r, nil
	}

	// bus size
	cnt, err := strconv.Atoi(strings.TrimSpace(n))
	if err != nil {
		return nil, errors.Wrap(err, "bus size")
	}
	if cnt <= 0 {
		return nil, errors.Errorf("invalid bus size %d", cnt)
	}
	return Bus(cnt, bus), nil
}

func isIdent(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		if !(unicode.IsLetter(r) || r == '_' || i > 0 && unicode.IsDigit(r)) {
			return false
		}
	}
	return true
}

func parseError(in string, msg string) error {
	return errors.Errorf("in %q: %s", in, msg)
}
