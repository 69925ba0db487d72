// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mtreilly/booktrack/internal/config"
	"github.com/mtreilly/booktrack/internal/library"
	"github.com/mtreilly/booktrack/internal/output"
)

func newProgressCmd(cfg *config.Config, store *library.Store) *cobra.Command {
	var out output.OutputOptions
	var markStatus string

	cmd := &cobra.Command{
		Use:   "progress <book> [page]",
		Short: "Record reading progress",
		Long: `Set the current page for a book. Status follows the page counter:
page 0 is to-read, the final page is completed, anything between is
reading. --status overrides the derived status without touching pages.

Examples:
  booktrack progress dune 103
  booktrack progress dune 412            # marks completed
  booktrack progress dune --status completed`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := out.Resolve(); err != nil {
				return err
			}

			book, err := store.FindBook(args[0])
			if err != nil {
				return err
			}

			switch {
			case markStatus != "":
				if len(args) > 1 {
					return fmt.Errorf("give a page or --status, not both")
				}
				book, err = store.SetStatus(book.ID, library.Status(markStatus))
				if err != nil {
					return err
				}
			case len(args) == 2:
				page, convErr := strconv.Atoi(args[1])
				if convErr != nil {
					return fmt.Errorf("page must be a number: %q", args[1])
				}
				book, err = store.UpdateProgress(book.ID, page)
				if err != nil {
					return err
				}
			default:
				return fmt.Errorf("give a page number or --status")
			}

			if out.Is(output.OutputJSON) {
				return output.JSON(book)
			}

			fmt.Printf("%s: %s", book.Title, book.Status)
			if book.TotalPages > 0 {
				fmt.Printf(", page %d of %d (%.0f%%)", book.CurrentPage, book.TotalPages, book.ProgressPercent())
			}
			fmt.Println()
			return nil
		},
	}

	out.AddOutputFlags(cmd, output.OutputTable)
	cmd.Flags().StringVar(&markStatus, "status", "", "Override status (to-read, reading, completed)")

	return cmd
}
