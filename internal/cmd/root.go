// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mtreilly/booktrack/internal/catalog"
	"github.com/mtreilly/booktrack/internal/config"
	"github.com/mtreilly/booktrack/internal/library"
)

// NewRootCmd creates the root command for booktrack.
func NewRootCmd(cfg *config.Config, store *library.Store, themes *library.ThemeStore, cat *catalog.Client) *cobra.Command {

	root := &cobra.Command{
		Use:   "booktrack",
		Short: "Track your personal book collection",
		Long: `Track the books you read, with notes, reviews, and progress.

booktrack provides tools to:
- Add books manually or from the Google Books catalog
- Record reading progress page by page
- Attach notes and a star review to each book
- Browse a chronological activity feed
- Export the collection for use in other tools`,
	}

	root.AddCommand(newAddCmd(cfg, store, cat))
	root.AddCommand(newSearchCmd(cfg, cat))
	root.AddCommand(newListCmd(cfg, store))
	root.AddCommand(newShowCmd(cfg, store))
	root.AddCommand(newProgressCmd(cfg, store))
	root.AddCommand(newNoteCmd(cfg, store))
	root.AddCommand(newReviewCmd(cfg, store))
	root.AddCommand(newRemoveCmd(cfg, store))
	root.AddCommand(newFeedCmd(cfg, store))
	root.AddCommand(newStatsCmd(cfg, store))
	root.AddCommand(newThemeCmd(cfg, themes))
	root.AddCommand(newExportCmd(cfg, store))
	root.AddCommand(newServeCmd(cfg, store, themes))
	root.AddCommand(newWatchCmd(cfg, store))

	return root
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	if max <= 3 {
		return s[:max]
	}
	return s[:max-3] + "..."
}
