// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package alusim

import (
	"github.com/sirupsen/logrus"
)

type traced struct {
	Component
	log logrus.FieldLogger
}

// Trace wraps c so that every call to Run is logged to log at debug level,
// together with its input and output fields. Failed calls are logged at
// error level.
//
func Trace(c Component, log logrus.FieldLogger) Component {
	return &traced{
		Component: c,
		log:       log.WithField("part", c.Spec().Name),
	}
}

func (t *traced) Run(in Signals) (Signals, error) {
	out, err := t.Component.Run(in)
	l := t.log.WithField("in", fields(t.Spec().Inputs, in))
	if err != nil {
		l.WithError(err).Error("run failed")
		return nil, err
	}
	l.WithField("out", fields(t.Spec().Outputs, out)).Debug("run")
	return out, nil
}

// fields returns the named values of s in pin order.
//
func fields(names []string, s Signals) logrus.Fields {
	f := make(logrus.Fields, len(names))
	for _, n := range names {
		if v, ok := s[n]; ok {
			f[n] = v
		}
	}
	return f
}
