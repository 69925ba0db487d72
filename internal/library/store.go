// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

// Package library implements the book collection store: an in-memory
// ordered collection of books, mutated synchronously and persisted
// asynchronously as one JSON blob in the key-value store.
package library

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mtreilly/booktrack/internal/kv"
)

// booksKey is the single key holding the serialized collection.
const booksKey = "booktrack:books"

var (
	// ErrBookNotFound is returned by mutations that require an existing book.
	ErrBookNotFound = errors.New("book not found")
	// ErrPageOutOfRange is returned when a page is outside [0, total_pages].
	ErrPageOutOfRange = errors.New("page out of range")
	// ErrInvalidRating is returned when a review rating is outside 1..5.
	ErrInvalidRating = errors.New("rating must be between 1 and 5")
	// ErrInvalidColor is returned when a note color is not in the palette.
	ErrInvalidColor = errors.New("unknown note color")
)

// Subscriber receives the new collection snapshot after each mutation.
type Subscriber func(books []*Book)

// Store owns the authoritative book collection. Mutations update memory
// first, then hand a serialized snapshot to a single writer goroutine;
// a persistence failure is logged and never rolls memory back.
type Store struct {
	kv  kv.Store
	log *slog.Logger

	mu    sync.Mutex
	books []*Book
	subs  []Subscriber

	// Writer state: at most one pending snapshot (newer replaces older)
	// plus at most one write in flight.
	wmu      sync.Mutex
	wcond    *sync.Cond
	pending  []byte
	inflight bool
	closed   bool
	done     chan struct{}

	now   func() time.Time
	newID func() string
}

// NewStore loads the persisted collection and starts the writer. A
// missing or unreadable collection initializes empty; startup never
// fails on storage content.
func NewStore(kvs kv.Store, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Store{
		kv:    kvs,
		log:   logger,
		done:  make(chan struct{}),
		now:   time.Now,
		newID: func() string { return uuid.NewString() },
	}
	s.wcond = sync.NewCond(&s.wmu)
	s.load()
	go s.writeLoop()
	return s
}

func (s *Store) load() {
	data, err := s.kv.Get(context.Background(), booksKey)
	if err != nil {
		if !errors.Is(err, kv.ErrNotFound) {
			s.log.Warn("load books failed, starting empty", "error", err)
		}
		return
	}
	books, err := decodeBooks(data)
	if err != nil {
		s.log.Warn("decode books failed, starting empty", "error", err)
		return
	}
	s.books = books
}

// writeLoop persists pending snapshots one at a time. Coalescing happens
// in enqueue: a newer snapshot overwrites the pending slot, so a burst of
// mutations costs at most one queued write plus the one in flight.
func (s *Store) writeLoop() {
	defer close(s.done)
	for {
		s.wmu.Lock()
		for s.pending == nil && !s.closed {
			s.wcond.Wait()
		}
		if s.pending == nil && s.closed {
			s.wmu.Unlock()
			return
		}
		data := s.pending
		s.pending = nil
		s.inflight = true
		s.wmu.Unlock()

		if err := s.kv.Set(context.Background(), booksKey, data); err != nil {
			s.log.Error("persist books", "error", err)
		}

		s.wmu.Lock()
		s.inflight = false
		s.wcond.Broadcast()
		s.wmu.Unlock()
	}
}

func (s *Store) enqueue(data []byte) {
	s.wmu.Lock()
	defer s.wmu.Unlock()
	if s.closed {
		return
	}
	s.pending = data
	s.wcond.Signal()
}

// Flush blocks until every enqueued snapshot has been written. CLI
// commands flush before process exit.
func (s *Store) Flush() {
	s.wmu.Lock()
	for s.pending != nil || s.inflight {
		s.wcond.Wait()
	}
	s.wmu.Unlock()
}

// Close flushes and stops the writer. The underlying KV store is closed
// by its owner, not here.
func (s *Store) Close() error {
	s.Flush()
	s.wmu.Lock()
	s.closed = true
	s.wcond.Broadcast()
	s.wmu.Unlock()
	<-s.done
	return nil
}

// Subscribe registers fn to run after every mutation with the new
// snapshot. Callbacks run synchronously on the mutating goroutine.
func (s *Store) Subscribe(fn Subscriber) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = append(s.subs, fn)
}

// afterMutation serializes the collection, queues the write, and notifies
// subscribers. Caller holds s.mu.
func (s *Store) afterMutation() {
	snapshot := s.snapshotLocked()
	data, err := json.Marshal(snapshot)
	if err != nil {
		// Books contain only JSON-encodable fields; treat as a bug.
		s.log.Error("marshal books", "error", err)
	} else {
		s.enqueue(data)
	}
	for _, fn := range s.subs {
		fn(snapshot)
	}
}

func (s *Store) snapshotLocked() []*Book {
	out := make([]*Book, len(s.books))
	for i, b := range s.books {
		out[i] = b.Clone()
	}
	return out
}

func (s *Store) findLocked(id string) *Book {
	for _, b := range s.books {
		if b.ID == id {
			return b
		}
	}
	return nil
}

// AddBook validates data, assigns a fresh id, and appends the book to the
// end of the collection.
func (s *Store) AddBook(data BookData) (*Book, error) {
	if strings.TrimSpace(data.Title) == "" {
		return nil, fmt.Errorf("title is required")
	}
	if strings.TrimSpace(data.Author) == "" {
		return nil, fmt.Errorf("author is required")
	}
	if data.TotalPages < 0 {
		return nil, fmt.Errorf("total pages must not be negative")
	}
	if data.PublicationYear < 0 {
		return nil, fmt.Errorf("publication year must not be negative")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	b := &Book{
		ID:              s.newID(),
		Title:           data.Title,
		Author:          data.Author,
		Genre:           data.Genre,
		PublicationYear: data.PublicationYear,
		CoverURL:        data.CoverURL,
		TotalPages:      data.TotalPages,
		CurrentPage:     0,
		Status:          StatusForPage(0, data.TotalPages),
		Notes:           []Note{},
		AddedAt:         now,
		LastUpdated:     now,
	}
	s.books = append(s.books, b)
	s.afterMutation()
	return b.Clone(), nil
}

// GetBook returns a copy of the book, or (nil, nil) when absent.
func (s *Store) GetBook(id string) (*Book, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b := s.findLocked(id)
	if b == nil {
		return nil, nil
	}
	return b.Clone(), nil
}

// UpdateBook replaces the stored book with the same id. The caller
// supplies the full replacement record; id, creation time, and derived
// status are preserved or recomputed by the store.
func (s *Store) UpdateBook(book *Book) error {
	if book == nil || book.ID == "" {
		return fmt.Errorf("update book: %w", ErrBookNotFound)
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, b := range s.books {
		if b.ID != book.ID {
			continue
		}
		replacement := book.Clone()
		replacement.AddedAt = b.AddedAt
		replacement.Status = StatusForPage(replacement.CurrentPage, replacement.TotalPages)
		replacement.LastUpdated = s.now()
		s.books[i] = replacement
		s.afterMutation()
		return nil
	}
	return fmt.Errorf("update book %s: %w", book.ID, ErrBookNotFound)
}

// UpdateProgress sets the current page. Pages outside [0, total_pages]
// are rejected before any state changes; for an unknown page count the
// only valid page is 0, so such a book never leaves to-read via
// progress updates.
func (s *Store) UpdateProgress(id string, page int) (*Book, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b := s.findLocked(id)
	if b == nil {
		return nil, fmt.Errorf("update progress %s: %w", id, ErrBookNotFound)
	}
	if page < 0 || page > b.TotalPages {
		return nil, fmt.Errorf("page %d of %d: %w", page, b.TotalPages, ErrPageOutOfRange)
	}

	b.CurrentPage = page
	b.Status = StatusForPage(page, b.TotalPages)
	b.LastUpdated = s.now()
	s.afterMutation()
	return b.Clone(), nil
}

// SetStatus overrides the reading status without touching the page
// counter. This is the documented exception to derived status, for
// explicit user actions like "mark completed".
func (s *Store) SetStatus(id string, status Status) (*Book, error) {
	if !ValidStatus(status) {
		return nil, fmt.Errorf("unknown status %q", status)
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	b := s.findLocked(id)
	if b == nil {
		return nil, fmt.Errorf("set status %s: %w", id, ErrBookNotFound)
	}
	b.Status = status
	b.LastUpdated = s.now()
	s.afterMutation()
	return b.Clone(), nil
}

// AddNote appends a note to the book. Page 0 means not anchored; an empty
// color takes the default.
func (s *Store) AddNote(id, content string, page int, color string) (*Note, error) {
	if strings.TrimSpace(content) == "" {
		return nil, fmt.Errorf("note content is required")
	}
	if color == "" {
		color = DefaultNoteColor
	}
	if !ValidNoteColor(color) {
		return nil, fmt.Errorf("color %q: %w", color, ErrInvalidColor)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	b := s.findLocked(id)
	if b == nil {
		return nil, fmt.Errorf("add note %s: %w", id, ErrBookNotFound)
	}
	if page < 0 || (b.TotalPages > 0 && page > b.TotalPages) {
		return nil, fmt.Errorf("note page %d of %d: %w", page, b.TotalPages, ErrPageOutOfRange)
	}

	n := Note{
		ID:        s.newID(),
		Content:   content,
		Page:      page,
		Color:     color,
		CreatedAt: s.now(),
	}
	b.Notes = append(b.Notes, n)
	b.LastUpdated = n.CreatedAt
	s.afterMutation()
	return &n, nil
}

// AddReview sets the book's review, overwriting any prior one.
func (s *Store) AddReview(id string, rating int, text string) (*Review, error) {
	if rating < 1 || rating > 5 {
		return nil, fmt.Errorf("rating %d: %w", rating, ErrInvalidRating)
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	b := s.findLocked(id)
	if b == nil {
		return nil, fmt.Errorf("add review %s: %w", id, ErrBookNotFound)
	}
	now := s.now()
	b.Review = &Review{Rating: rating, Text: text, Date: now}
	b.LastUpdated = now
	s.afterMutation()
	r := *b.Review
	return &r, nil
}

// RemoveBook deletes the book and, by composition, all its notes.
// Removing an absent id is a no-op.
func (s *Store) RemoveBook(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, b := range s.books {
		if b.ID == id {
			s.books = append(s.books[:i], s.books[i+1:]...)
			s.afterMutation()
			return nil
		}
	}
	return nil
}

// ListBooks returns snapshot copies in insertion order, filtered per opts.
func (s *Store) ListBooks(opts *ListOptions) []*Book {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []*Book
	for _, b := range s.books {
		if opts != nil {
			if opts.Status != "" && b.Status != opts.Status {
				continue
			}
			if opts.Search != "" {
				q := strings.ToLower(opts.Search)
				if !strings.Contains(strings.ToLower(b.Title), q) &&
					!strings.Contains(strings.ToLower(b.Author), q) &&
					!strings.Contains(strings.ToLower(b.Genre), q) {
					continue
				}
			}
		}
		out = append(out, b.Clone())
		if opts != nil && opts.Limit > 0 && len(out) >= opts.Limit {
			break
		}
	}
	return out
}

// FindBook resolves an id, a unique id prefix, or, failing those, the
// first title match. CLI commands accept any of the three.
func (s *Store) FindBook(idOrTitle string) (*Book, error) {
	b, err := s.GetBook(idOrTitle)
	if err != nil {
		return nil, err
	}
	if b != nil {
		return b, nil
	}
	if len(idOrTitle) >= 4 {
		s.mu.Lock()
		var match *Book
		for _, candidate := range s.books {
			if strings.HasPrefix(candidate.ID, idOrTitle) {
				if match != nil {
					match = nil
					break
				}
				match = candidate
			}
		}
		if match != nil {
			clone := match.Clone()
			s.mu.Unlock()
			return clone, nil
		}
		s.mu.Unlock()
	}
	matches := s.ListBooks(&ListOptions{Search: idOrTitle, Limit: 1})
	if len(matches) > 0 {
		return matches[0], nil
	}
	return nil, fmt.Errorf("%q: %w", idOrTitle, ErrBookNotFound)
}
