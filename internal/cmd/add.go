// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mtreilly/booktrack/internal/catalog"
	"github.com/mtreilly/booktrack/internal/config"
	"github.com/mtreilly/booktrack/internal/library"
	"github.com/mtreilly/booktrack/internal/output"
)

func newAddCmd(cfg *config.Config, store *library.Store, cat *catalog.Client) *cobra.Command {
	var out output.OutputOptions
	var (
		author     string
		genre      string
		year       int
		pages      int
		coverURL   string
		fromSearch bool
		pick       int
	)

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a book to the collection",
		Long: `Add a book by hand, or look it up in the Google Books catalog first.

Examples:
  booktrack add "Dune" --author "Frank Herbert" --pages 412
  booktrack add "Dune" --search             # take the first catalog match
  booktrack add "Dune" --search --pick 3    # take the third catalog match`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := out.Resolve(); err != nil {
				return err
			}

			data := library.BookData{
				Title:           args[0],
				Author:          author,
				Genre:           genre,
				PublicationYear: year,
				CoverURL:        coverURL,
				TotalPages:      pages,
			}

			if fromSearch {
				results, err := cat.Search(cmd.Context(), args[0])
				if err != nil {
					return fmt.Errorf("catalog search: %w", err)
				}
				if len(results) == 0 {
					return fmt.Errorf("no catalog match for %q", args[0])
				}
				if pick < 1 || pick > len(results) {
					return fmt.Errorf("--pick %d out of range (1-%d)", pick, len(results))
				}
				r := results[pick-1]
				data.Title = r.Title
				data.Author = r.Author
				data.Genre = r.Genre
				data.PublicationYear = r.PublicationYear
				data.CoverURL = r.CoverURL
				data.TotalPages = r.TotalPages
			}

			book, err := store.AddBook(data)
			if err != nil {
				return err
			}

			if out.Is(output.OutputJSON) {
				return output.JSON(book)
			}

			fmt.Printf("Added %q by %s\n", book.Title, book.Author)
			fmt.Printf("  ID:     %s\n", book.ID)
			if book.TotalPages > 0 {
				fmt.Printf("  Pages:  %d\n", book.TotalPages)
			}
			fmt.Printf("  Status: %s\n", book.Status)
			return nil
		},
	}

	out.AddOutputFlags(cmd, output.OutputTable)
	cmd.Flags().StringVarP(&author, "author", "a", "", "Author name (required unless --search)")
	cmd.Flags().StringVarP(&genre, "genre", "g", "", "Genre")
	cmd.Flags().IntVarP(&year, "year", "y", 0, "Publication year")
	cmd.Flags().IntVarP(&pages, "pages", "p", 0, "Total page count")
	cmd.Flags().StringVar(&coverURL, "cover", "", "Cover image URL")
	cmd.Flags().BoolVar(&fromSearch, "search", false, "Fill fields from a Google Books lookup")
	cmd.Flags().IntVar(&pick, "pick", 1, "Which catalog result to take (with --search)")

	return cmd
}

func formatYear(year int) string {
	if year == 0 {
		return "-"
	}
	return strconv.Itoa(year)
}
