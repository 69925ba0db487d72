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

func newReviewCmd(cfg *config.Config, store *library.Store) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "review",
		Short: "Manage book reviews",
	}
	cmd.AddCommand(newReviewAddCmd(cfg, store))
	cmd.AddCommand(newReviewShowCmd(cfg, store))
	return cmd
}

func newReviewAddCmd(cfg *config.Config, store *library.Store) *cobra.Command {
	var out output.OutputOptions
	var text string

	cmd := &cobra.Command{
		Use:   "add <book> <rating>",
		Short: "Rate and review a book",
		Long: `Set the book's review: a 1-5 star rating plus optional text.
A book holds one review; adding again replaces it.

Examples:
  booktrack review add dune 5 --text "A classic for a reason"
  booktrack review add dune 3`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := out.Resolve(); err != nil {
				return err
			}

			book, err := store.FindBook(args[0])
			if err != nil {
				return err
			}

			rating, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("rating must be a number 1-5: %q", args[1])
			}

			review, err := store.AddReview(book.ID, rating, text)
			if err != nil {
				return err
			}

			if out.Is(output.OutputJSON) {
				return output.JSON(review)
			}

			fmt.Printf("Reviewed %q: %s (%d/5)\n", book.Title, stars(review.Rating), review.Rating)
			return nil
		},
	}

	out.AddOutputFlags(cmd, output.OutputTable)
	cmd.Flags().StringVarP(&text, "text", "t", "", "Review text")

	return cmd
}

func newReviewShowCmd(cfg *config.Config, store *library.Store) *cobra.Command {
	var out output.OutputOptions

	cmd := &cobra.Command{
		Use:   "show <book>",
		Short: "Show a book's review",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := out.Resolve(); err != nil {
				return err
			}

			book, err := store.FindBook(args[0])
			if err != nil {
				return err
			}

			if book.Review == nil {
				fmt.Printf("No review on %q yet.\n", book.Title)
				return nil
			}

			if out.Is(output.OutputJSON) {
				return output.JSON(book.Review)
			}

			fmt.Printf("%s: %s (%d/5), %s\n", book.Title, stars(book.Review.Rating), book.Review.Rating, book.Review.Date.Format("2006-01-02"))
			if book.Review.Text != "" {
				fmt.Printf("  %s\n", book.Review.Text)
			}
			return nil
		},
	}

	out.AddOutputFlags(cmd, output.OutputTable)
	return cmd
}
