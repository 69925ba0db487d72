// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/mtreilly/booktrack/internal/config"
	"github.com/mtreilly/booktrack/internal/library"
)

func newExportCmd(cfg *config.Config, store *library.Store) *cobra.Command {
	var (
		format  string // "json", "yaml", "markdown"
		outPath string // file path or "-" for stdout
		status  string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the collection to various formats",
		Long:  "Export your books to JSON, YAML, or Markdown for use in other tools.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if status != "" && !library.ValidStatus(library.Status(status)) {
				return fmt.Errorf("unknown status %q (choose to-read, reading, completed)", status)
			}

			books := store.ListBooks(&library.ListOptions{Status: library.Status(status)})

			var outBytes []byte
			var err error
			switch format {
			case "json":
				outBytes, err = json.MarshalIndent(books, "", "  ")
			case "yaml":
				outBytes, err = yaml.Marshal(books)
			case "markdown":
				outBytes, err = exportMarkdown(books)
			default:
				return fmt.Errorf("unsupported format: %s (choose json, yaml, markdown)", format)
			}
			if err != nil {
				return fmt.Errorf("export %s: %w", format, err)
			}

			if outPath == "-" || outPath == "" {
				fmt.Println(string(outBytes))
				return nil
			}
			if err := os.WriteFile(outPath, outBytes, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", outPath, err)
			}
			fmt.Printf("Exported %d book(s) to %s\n", len(books), outPath)
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "json", "Export format: json, yaml, markdown")
	cmd.Flags().StringVarP(&outPath, "output", "o", "-", "Output file (default: stdout)")
	cmd.Flags().StringVarP(&status, "status", "s", "", "Filter by status")

	return cmd
}

func exportMarkdown(books []*library.Book) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString("# My Books\n")

	sections := []struct {
		status library.Status
		title  string
	}{
		{library.StatusReading, "Currently Reading"},
		{library.StatusToRead, "To Read"},
		{library.StatusCompleted, "Completed"},
	}

	for _, sec := range sections {
		var matched []*library.Book
		for _, b := range books {
			if b.Status == sec.status {
				matched = append(matched, b)
			}
		}
		if len(matched) == 0 {
			continue
		}

		fmt.Fprintf(&buf, "\n## %s\n\n", sec.title)
		for _, b := range matched {
			fmt.Fprintf(&buf, "- **%s** by %s", b.Title, b.Author)
			if b.PublicationYear > 0 {
				fmt.Fprintf(&buf, " (%d)", b.PublicationYear)
			}
			if b.Status == library.StatusReading && b.TotalPages > 0 {
				fmt.Fprintf(&buf, " - page %d/%d", b.CurrentPage, b.TotalPages)
			}
			if b.Review != nil {
				fmt.Fprintf(&buf, " - %d/5", b.Review.Rating)
			}
			buf.WriteString("\n")
			for _, n := range b.Notes {
				fmt.Fprintf(&buf, "  - %s", n.Content)
				if n.Page > 0 {
					fmt.Fprintf(&buf, " (p.%d)", n.Page)
				}
				buf.WriteString("\n")
			}
		}
	}

	return buf.Bytes(), nil
}
