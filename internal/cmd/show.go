// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mtreilly/booktrack/internal/config"
	"github.com/mtreilly/booktrack/internal/library"
	"github.com/mtreilly/booktrack/internal/output"
)

func newShowCmd(cfg *config.Config, store *library.Store) *cobra.Command {
	var out output.OutputOptions

	cmd := &cobra.Command{
		Use:   "show <book>",
		Short: "Show a book's details",
		Long: `Show one book in full: metadata, progress, notes, and review.

The book can be named by id, id prefix, or a title fragment.

Examples:
  booktrack show dune
  booktrack show 3f2a9c1e -o json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := out.Resolve(); err != nil {
				return err
			}

			book, err := store.FindBook(args[0])
			if err != nil {
				return err
			}

			if out.Is(output.OutputJSON) {
				return output.JSON(book)
			}

			fmt.Printf("%s\n", book.Title)
			fmt.Printf("  Author:  %s\n", book.Author)
			if book.Genre != "" {
				fmt.Printf("  Genre:   %s\n", book.Genre)
			}
			if book.PublicationYear > 0 {
				fmt.Printf("  Year:    %d\n", book.PublicationYear)
			}
			fmt.Printf("  Status:  %s\n", book.Status)
			if book.TotalPages > 0 {
				fmt.Printf("  Progress: page %d of %d (%.0f%%)\n", book.CurrentPage, book.TotalPages, book.ProgressPercent())
			}
			fmt.Printf("  Added:   %s\n", book.AddedAt.Format("2006-01-02"))
			fmt.Printf("  ID:      %s\n", book.ID)

			if book.Review != nil {
				fmt.Printf("\nReview: %s (%d/5)\n", stars(book.Review.Rating), book.Review.Rating)
				if book.Review.Text != "" {
					fmt.Printf("  %s\n", book.Review.Text)
				}
			}

			if len(book.Notes) > 0 {
				fmt.Printf("\nNotes (%d):\n", len(book.Notes))
				for _, n := range book.Notes {
					anchor := ""
					if n.Page > 0 {
						anchor = fmt.Sprintf(" (p.%d)", n.Page)
					}
					fmt.Printf("  [%s]%s %s\n", n.Color, anchor, n.Content)
				}
			}

			return nil
		},
	}

	out.AddOutputFlags(cmd, output.OutputTable)
	return cmd
}

func stars(rating int) string {
	const full = "★★★★★"
	const empty = "☆☆☆☆☆"
	if rating < 0 {
		rating = 0
	}
	if rating > 5 {
		rating = 5
	}
	return full[:rating*3] + empty[rating*3:]
}
