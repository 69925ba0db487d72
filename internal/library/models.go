// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

package library

import (
	"time"
)

// Status represents the reading state of a book. It is derived from the
// page counters by StatusForPage on every progress mutation; SetStatus is
// the only direct-override path.
type Status string

const (
	StatusToRead    Status = "to-read"
	StatusReading   Status = "reading"
	StatusCompleted Status = "completed"
)

// StatusForPage derives the reading status from page counters. Completion
// requires a known page count; a zero-page book stays to-read.
func StatusForPage(page, totalPages int) Status {
	switch {
	case page == 0:
		return StatusToRead
	case totalPages > 0 && page == totalPages:
		return StatusCompleted
	default:
		return StatusReading
	}
}

// ValidStatus reports whether s is one of the three reading states.
func ValidStatus(s Status) bool {
	return s == StatusToRead || s == StatusReading || s == StatusCompleted
}

// DefaultNoteColor is assigned to notes created without a color, and to
// legacy notes persisted before colors existed.
const DefaultNoteColor = "yellow"

// NoteColors is the fixed highlight palette.
var NoteColors = []string{"yellow", "green", "blue", "pink", "purple"}

// ValidNoteColor reports whether c is in the palette.
func ValidNoteColor(c string) bool {
	for _, p := range NoteColors {
		if c == p {
			return true
		}
	}
	return false
}

// Note is a short, optionally page-anchored annotation owned by exactly
// one book. Notes have no life of their own: removing the book removes
// its notes.
type Note struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	Page      int       `json:"page,omitempty"` // 0 = not anchored
	Color     string    `json:"color"`
	CreatedAt time.Time `json:"created_at"`
}

// Review is a one-per-book rating with text. Adding a review overwrites
// any prior one.
type Review struct {
	Rating int       `json:"rating"` // 1..5
	Text   string    `json:"text"`
	Date   time.Time `json:"date"`
}

// Book is a tracked reading item.
type Book struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Author          string    `json:"author"`
	Genre           string    `json:"genre,omitempty"`
	PublicationYear int       `json:"publication_year,omitempty"` // 0 = unknown
	CoverURL        string    `json:"cover_url,omitempty"`
	TotalPages      int       `json:"total_pages"` // 0 = unknown
	CurrentPage     int       `json:"current_page"`
	Status          Status    `json:"status"`
	Notes           []Note    `json:"notes"`
	Review          *Review   `json:"review,omitempty"`
	AddedAt         time.Time `json:"added_at"`
	LastUpdated     time.Time `json:"last_updated"`
}

// ProgressPercent is the completed fraction in [0, 100]. Unknown page
// counts report 0.
func (b *Book) ProgressPercent() float64 {
	if b.TotalPages <= 0 {
		return 0
	}
	return float64(b.CurrentPage) / float64(b.TotalPages) * 100
}

// Clone returns a deep copy safe to hand outside the store.
func (b *Book) Clone() *Book {
	out := *b
	if b.Notes != nil {
		out.Notes = make([]Note, len(b.Notes))
		copy(out.Notes, b.Notes)
	}
	if b.Review != nil {
		r := *b.Review
		out.Review = &r
	}
	return &out
}

// BookData is the caller-supplied part of a new book. The store assigns
// id, page counters, status, and timestamps.
type BookData struct {
	Title           string
	Author          string
	Genre           string
	PublicationYear int
	CoverURL        string
	TotalPages      int
}

// ListOptions filters book listing. Zero value lists everything in
// insertion order.
type ListOptions struct {
	Status Status
	Search string // case-insensitive over title, author, genre
	Limit  int
}
