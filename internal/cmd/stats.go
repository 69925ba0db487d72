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

func newStatsCmd(cfg *config.Config, store *library.Store) *cobra.Command {
	var out output.OutputOptions

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show collection statistics",
		Long:  `Display statistics about your collection: book counts by status, pages read, notes, and reviews.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := out.Resolve(); err != nil {
				return err
			}

			books := store.ListBooks(nil)

			statusCounts := make(map[library.Status]int)
			totalNotes := 0
			totalReviews := 0
			pagesRead := 0
			ratingSum := 0
			for _, b := range books {
				statusCounts[b.Status]++
				totalNotes += len(b.Notes)
				pagesRead += b.CurrentPage
				if b.Review != nil {
					totalReviews++
					ratingSum += b.Review.Rating
				}
			}

			if out.Is(output.OutputJSON) {
				stats := map[string]any{
					"books":      len(books),
					"by_status":  statusCounts,
					"pages_read": pagesRead,
					"notes":      totalNotes,
					"reviews":    totalReviews,
				}
				if totalReviews > 0 {
					stats["average_rating"] = float64(ratingSum) / float64(totalReviews)
				}
				return output.JSON(stats)
			}

			fmt.Printf("Collection Statistics\n")
			fmt.Printf("=====================\n\n")
			fmt.Printf("Books:       %d\n", len(books))
			fmt.Println("By status:")
			for _, s := range []library.Status{library.StatusToRead, library.StatusReading, library.StatusCompleted} {
				fmt.Printf("  %s: %d\n", s, statusCounts[s])
			}
			fmt.Printf("Pages read:  %d\n", pagesRead)
			fmt.Printf("Notes:       %d\n", totalNotes)
			fmt.Printf("Reviews:     %d\n", totalReviews)
			if totalReviews > 0 {
				fmt.Printf("Avg rating:  %.1f/5\n", float64(ratingSum)/float64(totalReviews))
			}

			return nil
		},
	}

	out.AddOutputFlags(cmd, output.OutputTable)
	return cmd
}
