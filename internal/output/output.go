// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

// Package output provides table and JSON rendering for list-style
// commands, plus the shared --output flag plumbing.
package output

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

// Format identifies how a command renders its result.
type Format string

const (
	OutputTable Format = "table"
	OutputJSON  Format = "json"
)

// OutputOptions carries the resolved output format for a command.
type OutputOptions struct {
	raw      string
	def      Format
	resolved Format
}

// AddOutputFlags registers --output on the command with the given default.
func (o *OutputOptions) AddOutputFlags(cmd *cobra.Command, def Format) {
	o.def = def
	cmd.Flags().StringVarP(&o.raw, "output", "o", string(def), "Output format: table, json")
}

// Resolve validates the flag value. Call at the top of RunE.
func (o *OutputOptions) Resolve() error {
	if o.raw == "" {
		o.resolved = o.def
		return nil
	}
	switch Format(strings.ToLower(o.raw)) {
	case OutputTable:
		o.resolved = OutputTable
	case OutputJSON:
		o.resolved = OutputJSON
	default:
		return fmt.Errorf("unknown output format %q (choose table or json)", o.raw)
	}
	return nil
}

// Is reports whether the resolved format matches f.
func (o *OutputOptions) Is(f Format) bool { return o.resolved == f }

// JSON writes v to stdout as indented JSON.
func JSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// Table accumulates rows and renders them aligned with tabwriter.
type Table struct {
	headers []string
	rows    [][]string
}

// NewTable creates a table with the given column headers.
func NewTable(headers ...string) *Table {
	return &Table{headers: headers}
}

// AddRow appends a row. Extra cells are dropped, missing cells padded.
func (t *Table) AddRow(cells ...string) {
	row := make([]string, len(t.headers))
	for i := range row {
		if i < len(cells) {
			row[i] = cells[i]
		}
	}
	t.rows = append(t.rows, row)
}

// Render writes the table to stdout.
func (t *Table) Render() {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, strings.Join(t.headers, "\t"))
	for _, row := range t.rows {
		fmt.Fprintln(w, strings.Join(row, "\t"))
	}
	w.Flush()
}
