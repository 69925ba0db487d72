// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/mtreilly/booktrack/internal/catalog"
	"github.com/mtreilly/booktrack/internal/cmd"
	"github.com/mtreilly/booktrack/internal/config"
	"github.com/mtreilly/booktrack/internal/kv"
	"github.com/mtreilly/booktrack/internal/library"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "booktrack: failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger := newLogger(cfg.LogLevel)
	slog.SetDefault(logger)

	// Storage backend selection via config or BOOKTRACK_STORAGE.
	// Default: "sqlite". Options: "sqlite", "memory" (no persistence).
	var kvStore kv.Store

	switch cfg.Storage {
	case "sqlite":
		// If SQLite fails (permissions, corrupted file), fall back to an
		// in-memory store so the tool remains operational without
		// persistence.
		kvStore, err = kv.OpenSQLite(cfg.DBPath())
		if err != nil {
			fmt.Fprintf(os.Stderr, "WARNING: cannot open SQLite database: %v\n", err)
			fmt.Fprintln(os.Stderr, "         falling back to in-memory store (no persistence)")
			kvStore = kv.NewMemoryStore()
		}

	case "memory":
		kvStore = kv.NewMemoryStore()

	default:
		fmt.Fprintf(os.Stderr, "booktrack: unknown storage backend %q (choose sqlite or memory)\n", cfg.Storage)
		os.Exit(1)
	}
	defer kvStore.Close()

	store := library.NewStore(kvStore, logger)
	defer store.Close()

	themes := library.NewThemeStore(kvStore)

	cat := catalog.NewClient(
		catalog.WithBaseURL(cfg.Catalog.BaseURL),
		catalog.WithTimeout(cfg.Catalog.Timeout),
		catalog.WithMaxResults(cfg.Catalog.MaxResults),
	)

	root := cmd.NewRootCmd(cfg, store, themes, cat)
	if err := root.Execute(); err != nil {
		store.Close()
		kvStore.Close()
		os.Exit(1)
	}
}

func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
}
