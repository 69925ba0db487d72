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

func newFeedCmd(cfg *config.Config, store *library.Store) *cobra.Command {
	var out output.OutputOptions
	var limit int

	cmd := &cobra.Command{
		Use:   "feed",
		Short: "Show the activity feed",
		Long: `Show recent reading activity, newest first: progress updates,
reviews, and notes across the whole collection.

Examples:
  booktrack feed
  booktrack feed --limit 10
  booktrack feed -o json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := out.Resolve(); err != nil {
				return err
			}

			entries := library.BuildFeed(store.ListBooks(nil))
			if limit > 0 && len(entries) > limit {
				entries = entries[:limit]
			}

			if len(entries) == 0 {
				fmt.Println("No activity yet. Record some progress to get started.")
				return nil
			}

			if out.Is(output.OutputJSON) {
				return output.JSON(entries)
			}

			for _, e := range entries {
				fmt.Printf("%s  %s\n", e.Time.Format("2006-01-02 15:04"), feedLine(e))
			}
			return nil
		},
	}

	out.AddOutputFlags(cmd, output.OutputTable)
	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "Limit number of entries")

	return cmd
}

func feedLine(e library.FeedEntry) string {
	switch e.Type {
	case library.FeedProgress:
		if e.TotalPages > 0 {
			return fmt.Sprintf("%s: page %d of %d (%.0f%%)", e.BookTitle, e.CurrentPage, e.TotalPages, e.Percent)
		}
		return fmt.Sprintf("%s: page %d", e.BookTitle, e.CurrentPage)
	case library.FeedReview:
		line := fmt.Sprintf("%s: reviewed %d/5", e.BookTitle, e.Rating)
		if e.Text != "" {
			line += " - " + truncate(e.Text, 50)
		}
		return line
	case library.FeedNote:
		line := fmt.Sprintf("%s: note", e.BookTitle)
		if e.Page > 0 {
			line += fmt.Sprintf(" (p.%d)", e.Page)
		}
		return line + " - " + truncate(e.Text, 50)
	default:
		return e.BookTitle
	}
}
