// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/mtreilly/booktrack/internal/config"
	"github.com/mtreilly/booktrack/internal/library"
)

func newWatchCmd(cfg *config.Config, store *library.Store) *cobra.Command {
	var (
		debounceMs int
		limit      int
	)

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Watch the data directory and live-print the feed",
		Long: `Monitor the data directory for changes and re-print the activity
feed whenever the collection is modified, e.g. by another booktrack
process or a sync tool.

Examples:
  booktrack watch
  booktrack watch --limit 10 --debounce 500`,
		RunE: func(cmd *cobra.Command, args []string) error {
			printFeed(store, limit)
			return watchDataDir(cfg, store, limit, debounceMs)
		},
	}

	cmd.Flags().IntVar(&debounceMs, "debounce", 1000, "Debounce milliseconds for file events")
	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Feed entries to show per refresh")

	return cmd
}

func watchDataDir(cfg *config.Config, store *library.Store, limit, debounceMs int) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(cfg.DataDir); err != nil {
		return fmt.Errorf("watch %s: %w", cfg.DataDir, err)
	}
	log.Printf("Watching: %s", cfg.DataDir)
	log.Println("Press Ctrl+C to stop watching")

	// Debounce: bursts of writes to the database file collapse into one
	// refresh once the file settles.
	var mu sync.Mutex
	var pending *time.Timer

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}

			mu.Lock()
			if pending != nil {
				pending.Stop()
			}
			pending = time.AfterFunc(time.Duration(debounceMs)*time.Millisecond, func() {
				refreshFeed(cfg, limit)
			})
			mu.Unlock()

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Printf("Watcher error: %v", err)
		}
	}
}

// refreshFeed reopens the database so changes made by other processes
// are visible, prints the feed, and closes again.
func refreshFeed(cfg *config.Config, limit int) {
	kvs, err := openKV(cfg)
	if err != nil {
		log.Printf("Reopen store: %v", err)
		return
	}
	defer kvs.Close()

	fresh := library.NewStore(kvs, nil)
	defer fresh.Close()

	fmt.Printf("\n--- %s ---\n", time.Now().Format("15:04:05"))
	printFeed(fresh, limit)
}

func printFeed(store *library.Store, limit int) {
	entries := library.BuildFeed(store.ListBooks(nil))
	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	if len(entries) == 0 {
		fmt.Println("No activity yet.")
		return
	}
	for _, e := range entries {
		fmt.Printf("%s  %s\n", e.Time.Format("2006-01-02 15:04"), feedLine(e))
	}
}
