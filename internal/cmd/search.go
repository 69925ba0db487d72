// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mtreilly/booktrack/internal/catalog"
	"github.com/mtreilly/booktrack/internal/config"
	"github.com/mtreilly/booktrack/internal/output"
)

func newSearchCmd(cfg *config.Config, cat *catalog.Client) *cobra.Command {
	var out output.OutputOptions

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search the Google Books catalog",
		Long: `Search the remote catalog by title, author, or keywords.

Results are numbered; pass the number to 'booktrack add --search --pick'.

Examples:
  booktrack search "dune herbert"
  booktrack search "gang of four" -o json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := out.Resolve(); err != nil {
				return err
			}

			results, err := cat.Search(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("catalog search: %w", err)
			}

			if len(results) == 0 {
				fmt.Printf("No catalog results for %q\n", args[0])
				return nil
			}

			if out.Is(output.OutputJSON) {
				return output.JSON(results)
			}

			fmt.Printf("Found %d result(s) for %q:\n\n", len(results), args[0])

			table := output.NewTable("#", "Title", "Author", "Year", "Pages")
			for i, r := range results {
				pages := "-"
				if r.TotalPages > 0 {
					pages = strconv.Itoa(r.TotalPages)
				}
				table.AddRow(strconv.Itoa(i+1), truncate(r.Title, 45), truncate(r.Author, 25), formatYear(r.PublicationYear), pages)
			}
			table.Render()

			return nil
		},
	}

	out.AddOutputFlags(cmd, output.OutputTable)
	return cmd
}
