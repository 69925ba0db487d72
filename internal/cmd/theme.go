// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mtreilly/booktrack/internal/config"
	"github.com/mtreilly/booktrack/internal/library"
)

func newThemeCmd(cfg *config.Config, themes *library.ThemeStore) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "theme",
		Short: "Manage the UI theme preference",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "get",
		Short: "Show the current theme",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println(themes.Get(cmd.Context()))
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "set <light|dark|system>",
		Short: "Set the theme",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := themes.Set(cmd.Context(), library.Theme(args[0])); err != nil {
				return err
			}
			fmt.Printf("Theme set to %s\n", args[0])
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "toggle",
		Short: "Flip between light and dark",
		RunE: func(cmd *cobra.Command, args []string) error {
			next, err := themes.Toggle(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Printf("Theme set to %s\n", next)
			return nil
		},
	})

	return cmd
}
