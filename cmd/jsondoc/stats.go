// Copyright 2026 The jsondoc Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package main

import (
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

func newStatsCommand(params *rootParams) *cobra.Command {
	var compactFirst bool
	cmd := &cobra.Command{
		Use:   "stats <file>",
		Short: "Report pool occupancy and tree shape for an input document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := loadDocument(params, args[0])
			if err != nil {
				return err
			}
			if compactFirst {
				doc.Compact()
			}

			stats := doc.Pool().Stats()
			table := tablewriter.NewWriter(cmd.OutOrStdout())
			table.Header("Metric", "Value")
			rows := [][]string{
				{"slots used", strconv.Itoa(stats.SlotsUsed)},
				{"slots free", strconv.Itoa(stats.SlotsFree)},
				{"slot capacity", strconv.Itoa(stats.SlotCapacity)},
				{"pooled strings", strconv.Itoa(stats.Strings)},
				{"string bytes", strconv.Itoa(stats.StringBytes)},
				{"string capacity", strconv.Itoa(stats.StringCapacity)},
				{"memory usage", strconv.Itoa(doc.MemoryUsage())},
				{"root size", strconv.Itoa(doc.Size())},
				{"nesting", strconv.Itoa(doc.Nesting())},
			}
			for _, row := range rows {
				if err := table.Append(row); err != nil {
					return err
				}
			}
			return table.Render()
		},
	}
	cmd.Flags().BoolVar(&compactFirst, "compact-first", false, "compact the pool before reporting")
	return cmd
}
