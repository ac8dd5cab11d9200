// Copyright 2026 The jsondoc Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

// Command jsondoc loads JSON or YAML input into the arena-backed
// document model and reports on or re-serializes it.
package main

import (
	"os"

	"github.com/sirupsen/logrus"
)

func main() {
	// Cobra's own error printing is silenced on the root command; the
	// error is reported here instead.
	if err := newRootCommand().Execute(); err != nil {
		logrus.Error(err)
		os.Exit(1)
	}
}
