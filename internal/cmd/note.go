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

func newNoteCmd(cfg *config.Config, store *library.Store) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "note",
		Short: "Manage book notes",
	}
	cmd.AddCommand(newNoteAddCmd(cfg, store))
	cmd.AddCommand(newNoteListCmd(cfg, store))
	return cmd
}

func newNoteAddCmd(cfg *config.Config, store *library.Store) *cobra.Command {
	var out output.OutputOptions
	var page int
	var color string

	cmd := &cobra.Command{
		Use:   "add <book> <content>",
		Short: "Add a note to a book",
		Long: `Attach a note, optionally anchored to a page and colored.

Colors: yellow (default), green, blue, pink, purple.

Examples:
  booktrack note add dune "Fear is the mind-killer" --page 8
  booktrack note add dune "Reread this chapter" --color blue`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := out.Resolve(); err != nil {
				return err
			}

			book, err := store.FindBook(args[0])
			if err != nil {
				return err
			}

			note, err := store.AddNote(book.ID, args[1], page, color)
			if err != nil {
				return err
			}

			if out.Is(output.OutputJSON) {
				return output.JSON(note)
			}

			fmt.Printf("Added note to %q", book.Title)
			if note.Page > 0 {
				fmt.Printf(" at page %d", note.Page)
			}
			fmt.Println()
			return nil
		},
	}

	out.AddOutputFlags(cmd, output.OutputTable)
	cmd.Flags().IntVarP(&page, "page", "p", 0, "Page the note refers to (0 = unanchored)")
	cmd.Flags().StringVarP(&color, "color", "c", "", "Note color")

	return cmd
}

func newNoteListCmd(cfg *config.Config, store *library.Store) *cobra.Command {
	var out output.OutputOptions

	cmd := &cobra.Command{
		Use:   "list <book>",
		Short: "List a book's notes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := out.Resolve(); err != nil {
				return err
			}

			book, err := store.FindBook(args[0])
			if err != nil {
				return err
			}

			if len(book.Notes) == 0 {
				fmt.Printf("No notes on %q yet.\n", book.Title)
				return nil
			}

			if out.Is(output.OutputJSON) {
				return output.JSON(book.Notes)
			}

			fmt.Printf("Notes on %q:\n\n", book.Title)
			table := output.NewTable("Date", "Page", "Color", "Note")
			for _, n := range book.Notes {
				page := "-"
				if n.Page > 0 {
					page = strconv.Itoa(n.Page)
				}
				table.AddRow(n.CreatedAt.Format("2006-01-02"), page, n.Color, truncate(n.Content, 60))
			}
			table.Render()

			return nil
		},
	}

	out.AddOutputFlags(cmd, output.OutputTable)
	return cmd
}
