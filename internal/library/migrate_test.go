// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

package library

import (
	"testing"
	"time"
)

func TestDecodeBooksLegacyStringNotes(t *testing.T) {
	data := []byte(`[{
		"id": "b1",
		"title": "Dune",
		"author": "Herbert",
		"total_pages": 412,
		"current_page": 100,
		"status": "reading",
		"notes": ["first thought", "second thought"],
		"last_updated": "2024-03-01T10:00:00Z"
	}]`)

	books, err := decodeBooks(data)
	if err != nil {
		t.Fatalf("decodeBooks: %v", err)
	}
	if len(books) != 1 {
		t.Fatalf("books: got %d, want 1", len(books))
	}
	notes := books[0].Notes
	if len(notes) != 2 {
		t.Fatalf("notes: got %d, want 2", len(notes))
	}
	want := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	for i, n := range notes {
		if n.ID == "" {
			t.Errorf("note %d: missing generated id", i)
		}
		if n.Color != DefaultNoteColor {
			t.Errorf("note %d color: got %q, want %q", i, n.Color, DefaultNoteColor)
		}
		if !n.CreatedAt.Equal(want) {
			t.Errorf("note %d created_at: got %v, want %v", i, n.CreatedAt, want)
		}
	}
	if notes[0].Content != "first thought" || notes[1].Content != "second thought" {
		t.Fatalf("note contents disturbed: %+v", notes)
	}
}

func TestDecodeBooksLegacyFlatReview(t *testing.T) {
	data := []byte(`[{
		"id": "b1",
		"title": "Dune",
		"author": "Herbert",
		"review": "a classic",
		"rating": 5,
		"last_updated": "2024-03-01T10:00:00Z"
	}]`)

	books, err := decodeBooks(data)
	if err != nil {
		t.Fatalf("decodeBooks: %v", err)
	}
	r := books[0].Review
	if r == nil {
		t.Fatal("review should be normalized, got nil")
	}
	if r.Rating != 5 || r.Text != "a classic" {
		t.Fatalf("review: %+v", r)
	}
	if !r.Date.Equal(time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)) {
		t.Fatalf("review date: got %v", r.Date)
	}
}

func TestDecodeBooksLegacyRatingClamped(t *testing.T) {
	cases := []struct {
		rating int
		want   int
	}{
		{-3, 1},
		{0, 1},
		{9, 5},
	}
	for _, c := range cases {
		r, err := decodeReview([]byte(`"text"`), c.rating, time.Now())
		if err != nil {
			t.Fatalf("decodeReview(rating=%d): %v", c.rating, err)
		}
		if r.Rating != c.want {
			t.Errorf("rating %d: got %d, want %d", c.rating, r.Rating, c.want)
		}
	}
}

func TestDecodeBooksModernShapePassesThrough(t *testing.T) {
	data := []byte(`[{
		"id": "b1",
		"title": "Dune",
		"author": "Herbert",
		"total_pages": 412,
		"current_page": 412,
		"status": "completed",
		"notes": [{"id": "n1", "content": "x", "page": 8, "color": "blue", "created_at": "2024-02-01T00:00:00Z"}],
		"review": {"rating": 4, "text": "good", "date": "2024-02-02T00:00:00Z"},
		"added_at": "2024-01-01T00:00:00Z",
		"last_updated": "2024-03-01T00:00:00Z"
	}]`)

	books, err := decodeBooks(data)
	if err != nil {
		t.Fatalf("decodeBooks: %v", err)
	}
	b := books[0]
	if b.Status != StatusCompleted {
		t.Errorf("status: got %q", b.Status)
	}
	if len(b.Notes) != 1 || b.Notes[0].ID != "n1" || b.Notes[0].Color != "blue" {
		t.Errorf("note not preserved: %+v", b.Notes)
	}
	if b.Review == nil || b.Review.Rating != 4 {
		t.Errorf("review not preserved: %+v", b.Review)
	}
	if !b.AddedAt.Equal(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("added_at: got %v", b.AddedAt)
	}
}

func TestDecodeBooksBackfillsAddedAt(t *testing.T) {
	data := []byte(`[{
		"id": "b1",
		"title": "Dune",
		"author": "Herbert",
		"last_updated": "2024-03-01T10:00:00Z"
	}]`)

	books, err := decodeBooks(data)
	if err != nil {
		t.Fatalf("decodeBooks: %v", err)
	}
	if !books[0].AddedAt.Equal(books[0].LastUpdated) {
		t.Fatalf("added_at should backfill from last_updated: got %v", books[0].AddedAt)
	}
}

func TestDecodeBooksRederivesInvalidStatus(t *testing.T) {
	data := []byte(`[{
		"id": "b1",
		"title": "Dune",
		"author": "Herbert",
		"total_pages": 412,
		"current_page": 100,
		"status": "IN_PROGRESS"
	}]`)

	books, err := decodeBooks(data)
	if err != nil {
		t.Fatalf("decodeBooks: %v", err)
	}
	if books[0].Status != StatusReading {
		t.Fatalf("status: got %q, want %q", books[0].Status, StatusReading)
	}
}

func TestDecodeReviewEmptyLegacyIsNil(t *testing.T) {
	r, err := decodeReview([]byte(`""`), 0, time.Now())
	if err != nil {
		t.Fatalf("decodeReview: %v", err)
	}
	if r != nil {
		t.Fatalf("empty legacy review: got %+v, want nil", r)
	}
}

func TestDecodeBooksRejectsGarbage(t *testing.T) {
	if _, err := decodeBooks([]byte(`{not json`)); err == nil {
		t.Fatal("expected error for malformed payload")
	}
	if _, err := decodeBooks([]byte(`[{"id":"b1","notes": 42}]`)); err == nil {
		t.Fatal("expected error for unrecognized notes shape")
	}
}
