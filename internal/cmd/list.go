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

func newListCmd(cfg *config.Config, store *library.Store) *cobra.Command {
	var out output.OutputOptions
	var status string
	var search string
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List books in the collection",
		Long: `List the collection in the order books were added.

Examples:
  booktrack list                      # List everything
  booktrack list --status reading     # Filter by status
  booktrack list --search herbert     # Filter by title/author/genre
  booktrack list --limit 20           # Limit results`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := out.Resolve(); err != nil {
				return err
			}

			if status != "" && !library.ValidStatus(library.Status(status)) {
				return fmt.Errorf("unknown status %q (choose to-read, reading, completed)", status)
			}

			books := store.ListBooks(&library.ListOptions{
				Status: library.Status(status),
				Search: search,
				Limit:  limit,
			})

			if len(books) == 0 {
				fmt.Println("No books found.")
				fmt.Println("Use 'booktrack add <title>' to start your collection.")
				return nil
			}

			if out.Is(output.OutputJSON) {
				return output.JSON(books)
			}

			table := output.NewTable("ID", "Title", "Author", "Status", "Progress")
			for _, b := range books {
				progress := "-"
				if b.TotalPages > 0 {
					progress = fmt.Sprintf("%d/%d (%.0f%%)", b.CurrentPage, b.TotalPages, b.ProgressPercent())
				}
				table.AddRow(b.ID[:8], truncate(b.Title, 45), truncate(b.Author, 25), string(b.Status), progress)
			}
			table.Render()

			fmt.Printf("\nTotal: %d book(s)\n", len(books))
			return nil
		},
	}

	out.AddOutputFlags(cmd, output.OutputTable)
	cmd.Flags().StringVarP(&status, "status", "s", "", "Filter by status (to-read, reading, completed)")
	cmd.Flags().StringVarP(&search, "search", "q", "", "Filter by title, author, or genre")
	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "Limit number of results")

	return cmd
}
