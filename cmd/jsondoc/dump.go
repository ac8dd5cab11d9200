// Copyright 2026 The jsondoc Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jsondoc/jsondoc/document"
)

func newDumpCommand(params *rootParams) *cobra.Command {
	var path string
	var compactFirst bool
	cmd := &cobra.Command{
		Use:   "dump <file>",
		Short: "Re-serialize an input document (optionally a sub-path) as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := loadDocument(params, args[0])
			if err != nil {
				return err
			}
			if compactFirst {
				doc.Compact()
			}

			root := doc.Root()
			if path != "" {
				p, err := document.ParsePath(path)
				if err != nil {
					return err
				}
				root = doc.Lookup(p)
				if root == nil {
					return fmt.Errorf("path %s not found", p)
				}
			}

			w := newJSONWriter(doc.Pool())
			if err := document.Accept(doc.Pool(), root, w); err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), w.String())
			return err
		},
	}
	cmd.Flags().StringVar(&path, "path", "", "slash-separated path to dump instead of the root")
	cmd.Flags().BoolVar(&compactFirst, "compact-first", false, "compact the pool before dumping")
	return cmd
}
