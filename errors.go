// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package alusim

import "github.com/pkg/errors"

// Error kinds. Errors returned by this package and by circuits wrap one of
// these; use errors.Cause to get at them.
//
var (
	// ErrMissingInput reports a Run call without a required field.
	ErrMissingInput = errors.New("missing input")
	// ErrRange reports a carry-in outside of {0, 1}.
	ErrRange = errors.New("value out of range")
	// ErrWidth reports an unsupported component width.
	ErrWidth = errors.New("invalid width")
	// ErrOutput reports a part that did not set all its outputs.
	ErrOutput = errors.New("output not set")
	// ErrUnknownPart reports a lookup for a part that does not exist.
	ErrUnknownPart = errors.New("unknown part")
)
