// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

package library

import (
	"sort"
	"time"
)

// FeedEntryType tags the activity behind a feed entry.
type FeedEntryType string

const (
	FeedProgress FeedEntryType = "progress-update"
	FeedReview   FeedEntryType = "review-added"
	FeedNote     FeedEntryType = "note-added"
)

// FeedEntry is one line of the activity feed. It references its source
// book by id; the feed itself owns no state.
type FeedEntry struct {
	Type      FeedEntryType `json:"type"`
	BookID    string        `json:"book_id"`
	BookTitle string        `json:"book_title"`
	Time      time.Time     `json:"time"`

	// Payload, populated per type.
	Percent     float64 `json:"percent,omitempty"`      // progress-update
	CurrentPage int     `json:"current_page,omitempty"` // progress-update
	TotalPages  int     `json:"total_pages,omitempty"`  // progress-update
	Rating      int     `json:"rating,omitempty"`       // review-added
	Text        string  `json:"text,omitempty"`         // review-added / note-added
	Page        int     `json:"page,omitempty"`         // note-added
}

// BuildFeed derives the activity feed from a collection snapshot:
// newest first, ties kept in collection insertion order. Pure
// computation, no mutation.
func BuildFeed(books []*Book) []FeedEntry {
	var entries []FeedEntry
	for _, b := range books {
		if b.CurrentPage > 0 {
			entries = append(entries, FeedEntry{
				Type:        FeedProgress,
				BookID:      b.ID,
				BookTitle:   b.Title,
				Time:        b.LastUpdated,
				Percent:     b.ProgressPercent(),
				CurrentPage: b.CurrentPage,
				TotalPages:  b.TotalPages,
			})
		}
		if b.Review != nil {
			entries = append(entries, FeedEntry{
				Type:      FeedReview,
				BookID:    b.ID,
				BookTitle: b.Title,
				Time:      b.Review.Date,
				Rating:    b.Review.Rating,
				Text:      b.Review.Text,
			})
		}
		for _, n := range b.Notes {
			entries = append(entries, FeedEntry{
				Type:      FeedNote,
				BookID:    b.ID,
				BookTitle: b.Title,
				Time:      n.CreatedAt,
				Text:      n.Content,
				Page:      n.Page,
			})
		}
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Time.After(entries[j].Time)
	})
	return entries
}
