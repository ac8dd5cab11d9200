// Copyright 2026 The jsondoc Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/jsondoc/jsondoc/document"
	"github.com/jsondoc/jsondoc/util"
)

type rootParams struct {
	slotCapacity   int
	stringCapacity int
	verbose        bool
}

func newRootCommand() *cobra.Command {
	params := &rootParams{}
	cmd := &cobra.Command{
		Use:           "jsondoc",
		Short:         "Inspect JSON/YAML documents in an arena-backed model",
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRun: func(*cobra.Command, []string) {
			logrus.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
			if params.verbose {
				logrus.SetLevel(logrus.DebugLevel)
			}
		},
	}
	cmd.PersistentFlags().IntVar(&params.slotCapacity, "slots", document.DefaultSlotCapacity, "slot pool capacity")
	cmd.PersistentFlags().IntVar(&params.stringCapacity, "strings", document.DefaultStringCapacity, "string pool capacity")
	cmd.PersistentFlags().BoolVarP(&params.verbose, "verbose", "v", false, "enable debug logging")

	cmd.AddCommand(newStatsCommand(params))
	cmd.AddCommand(newDumpCommand(params))
	return cmd
}

// loadDocument reads one input (file path or "-" for stdin), decodes it
// as JSON or YAML, and builds a document sized by the root flags.
func loadDocument(params *rootParams, path string) (*document.Document, error) {
	var bs []byte
	var err error
	if path == "-" {
		bs, err = io.ReadAll(os.Stdin)
	} else {
		bs, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, err
	}

	var x any
	if err := util.Unmarshal(bs, &x); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	doc := document.New(
		document.WithSlotCapacity(params.slotCapacity),
		document.WithStringCapacity(params.stringCapacity),
	)
	if !doc.Set(x) {
		return nil, fmt.Errorf("document exceeds pool capacity (%d slots, %d strings)",
			params.slotCapacity, params.stringCapacity)
	}
	logrus.WithFields(logrus.Fields{
		"input":   path,
		"nesting": doc.Nesting(),
		"bytes":   doc.MemoryUsage(),
	}).Debug("document loaded")
	return doc, nil
}
