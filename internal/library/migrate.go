// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

package library

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Earlier releases persisted two other shapes: notes as plain strings,
// and the review as a flat text field with a separate rating on the
// book. decodeBooks normalizes both into the canonical schema in one
// pass at load time, so nothing downstream ever sees a legacy record.

type storedBook struct {
	ID              string          `json:"id"`
	Title           string          `json:"title"`
	Author          string          `json:"author"`
	Genre           string          `json:"genre"`
	PublicationYear int             `json:"publication_year"`
	CoverURL        string          `json:"cover_url"`
	TotalPages      int             `json:"total_pages"`
	CurrentPage     int             `json:"current_page"`
	Status          Status          `json:"status"`
	Notes           json.RawMessage `json:"notes"`
	Review          json.RawMessage `json:"review"`
	Rating          int             `json:"rating"` // legacy flat schema only
	AddedAt         time.Time       `json:"added_at"`
	LastUpdated     time.Time       `json:"last_updated"`
}

func decodeBooks(data []byte) ([]*Book, error) {
	var stored []storedBook
	if err := json.Unmarshal(data, &stored); err != nil {
		return nil, fmt.Errorf("unmarshal books: %w", err)
	}

	books := make([]*Book, 0, len(stored))
	for _, sb := range stored {
		b := &Book{
			ID:              sb.ID,
			Title:           sb.Title,
			Author:          sb.Author,
			Genre:           sb.Genre,
			PublicationYear: sb.PublicationYear,
			CoverURL:        sb.CoverURL,
			TotalPages:      sb.TotalPages,
			CurrentPage:     sb.CurrentPage,
			Status:          sb.Status,
			AddedAt:         sb.AddedAt,
			LastUpdated:     sb.LastUpdated,
		}
		if b.AddedAt.IsZero() {
			b.AddedAt = b.LastUpdated
		}
		if !ValidStatus(b.Status) {
			b.Status = StatusForPage(b.CurrentPage, b.TotalPages)
		}

		notes, err := decodeNotes(sb.Notes, b.LastUpdated)
		if err != nil {
			return nil, fmt.Errorf("book %s: %w", sb.ID, err)
		}
		b.Notes = notes

		review, err := decodeReview(sb.Review, sb.Rating, b.LastUpdated)
		if err != nil {
			return nil, fmt.Errorf("book %s: %w", sb.ID, err)
		}
		b.Review = review

		books = append(books, b)
	}
	return books, nil
}

// decodeNotes accepts either []Note or the legacy []string shape.
func decodeNotes(raw json.RawMessage, fallbackTime time.Time) ([]Note, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return []Note{}, nil
	}

	var notes []Note
	if err := json.Unmarshal(raw, &notes); err == nil {
		for i := range notes {
			if notes[i].ID == "" {
				notes[i].ID = uuid.NewString()
			}
			if !ValidNoteColor(notes[i].Color) {
				notes[i].Color = DefaultNoteColor
			}
			if notes[i].CreatedAt.IsZero() {
				notes[i].CreatedAt = fallbackTime
			}
		}
		return notes, nil
	}

	var legacy []string
	if err := json.Unmarshal(raw, &legacy); err != nil {
		return nil, fmt.Errorf("unmarshal notes: %w", err)
	}
	notes = make([]Note, 0, len(legacy))
	for _, content := range legacy {
		notes = append(notes, Note{
			ID:        uuid.NewString(),
			Content:   content,
			Color:     DefaultNoteColor,
			CreatedAt: fallbackTime,
		})
	}
	return notes, nil
}

// decodeReview accepts the structured Review object or the legacy flat
// shape: review as a bare string with the rating on the book.
func decodeReview(raw json.RawMessage, flatRating int, fallbackTime time.Time) (*Review, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}

	var review Review
	if err := json.Unmarshal(raw, &review); err == nil {
		if review.Date.IsZero() {
			review.Date = fallbackTime
		}
		return &review, nil
	}

	var legacy string
	if err := json.Unmarshal(raw, &legacy); err != nil {
		return nil, fmt.Errorf("unmarshal review: %w", err)
	}
	if legacy == "" && flatRating == 0 {
		return nil, nil
	}
	rating := flatRating
	if rating < 1 {
		rating = 1
	}
	if rating > 5 {
		rating = 5
	}
	return &Review{Rating: rating, Text: legacy, Date: fallbackTime}, nil
}
