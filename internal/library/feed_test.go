// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

package library

import (
	"testing"
	"time"
)

func TestBuildFeedOrdering(t *testing.T) {
	base := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	books := []*Book{
		{
			ID: "b1", Title: "Dune", TotalPages: 412, CurrentPage: 100,
			LastUpdated: base.Add(3 * time.Hour),
			Notes: []Note{
				{ID: "n1", Content: "early note", Page: 8, CreatedAt: base.Add(1 * time.Hour)},
			},
		},
		{
			ID: "b2", Title: "SICP", TotalPages: 657, CurrentPage: 0,
			Review: &Review{Rating: 5, Text: "dense", Date: base.Add(2 * time.Hour)},
		},
	}

	feed := BuildFeed(books)
	if len(feed) != 3 {
		t.Fatalf("entries: got %d, want 3", len(feed))
	}

	wantTypes := []FeedEntryType{FeedProgress, FeedReview, FeedNote}
	for i, want := range wantTypes {
		if feed[i].Type != want {
			t.Errorf("entry %d: got %q, want %q", i, feed[i].Type, want)
		}
	}
	for i := 1; i < len(feed); i++ {
		if feed[i].Time.After(feed[i-1].Time) {
			t.Fatalf("feed not descending at %d: %v after %v", i, feed[i].Time, feed[i-1].Time)
		}
	}
}

func TestBuildFeedStableTies(t *testing.T) {
	ts := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	books := []*Book{
		{ID: "b1", Title: "First", TotalPages: 100, CurrentPage: 10, LastUpdated: ts},
		{ID: "b2", Title: "Second", TotalPages: 100, CurrentPage: 20, LastUpdated: ts},
	}

	feed := BuildFeed(books)
	if len(feed) != 2 {
		t.Fatalf("entries: got %d, want 2", len(feed))
	}
	// Equal timestamps keep collection order.
	if feed[0].BookID != "b1" || feed[1].BookID != "b2" {
		t.Fatalf("tie order: got %q then %q", feed[0].BookID, feed[1].BookID)
	}
}

func TestBuildFeedPayloads(t *testing.T) {
	ts := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	books := []*Book{
		{
			ID: "b1", Title: "Dune", TotalPages: 412, CurrentPage: 103,
			LastUpdated: ts,
			Review:      &Review{Rating: 4, Text: "good", Date: ts.Add(-time.Hour)},
			Notes:       []Note{{Content: "spice", Page: 12, CreatedAt: ts.Add(-2 * time.Hour)}},
		},
	}

	feed := BuildFeed(books)
	if len(feed) != 3 {
		t.Fatalf("entries: got %d, want 3", len(feed))
	}

	progress := feed[0]
	if progress.Type != FeedProgress || progress.CurrentPage != 103 || progress.TotalPages != 412 {
		t.Fatalf("progress entry: %+v", progress)
	}
	if progress.Percent != 25 {
		t.Fatalf("percent: got %v, want 25", progress.Percent)
	}

	review := feed[1]
	if review.Type != FeedReview || review.Rating != 4 || review.Text != "good" {
		t.Fatalf("review entry: %+v", review)
	}

	note := feed[2]
	if note.Type != FeedNote || note.Text != "spice" || note.Page != 12 {
		t.Fatalf("note entry: %+v", note)
	}
}

func TestBuildFeedSkipsUnstartedBooks(t *testing.T) {
	books := []*Book{
		{ID: "b1", Title: "Untouched", TotalPages: 300, CurrentPage: 0},
	}
	if feed := BuildFeed(books); len(feed) != 0 {
		t.Fatalf("unstarted book produced %d entries", len(feed))
	}
}

func TestBuildFeedEmpty(t *testing.T) {
	if feed := BuildFeed(nil); len(feed) != 0 {
		t.Fatalf("empty collection produced %d entries", len(feed))
	}
}
