// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mtreilly/booktrack/internal/config"
	"github.com/mtreilly/booktrack/internal/library"
)

func newRemoveCmd(cfg *config.Config, store *library.Store) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "remove <book>",
		Short: "Remove a book from the collection",
		Long: `Delete a book along with its notes and review.

Examples:
  booktrack remove dune
  booktrack remove 3f2a9c1e --force`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			book, err := store.FindBook(args[0])
			if err != nil {
				return err
			}

			if !force {
				fmt.Printf("Remove %q by %s", book.Title, book.Author)
				if len(book.Notes) > 0 {
					fmt.Printf(" (and %d note(s))", len(book.Notes))
				}
				fmt.Print("? [y/N] ")
				reader := bufio.NewReader(os.Stdin)
				answer, _ := reader.ReadString('\n')
				if !strings.HasPrefix(strings.ToLower(strings.TrimSpace(answer)), "y") {
					fmt.Println("Cancelled.")
					return nil
				}
			}

			if err := store.RemoveBook(book.ID); err != nil {
				return err
			}

			fmt.Printf("Removed %q\n", book.Title)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Skip confirmation")

	return cmd
}
