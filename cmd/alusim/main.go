// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Command alusim runs the parts of the circuits library from the command line.
//
//	alusim eval add 200 45
//	alusim run -w 8 adder A=120 B=98 C=1
//	alusim run splitter A=5 -w 4
//
package main

import (
	"os"

	log "github.com/sirupsen/logrus"
)

func main() {
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		log.WithError(err).Error("alusim failed")
		os.Exit(1)
	}
}
