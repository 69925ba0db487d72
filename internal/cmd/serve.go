// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

package cmd

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mtreilly/booktrack/internal/config"
	"github.com/mtreilly/booktrack/internal/library"
)

func newServeCmd(cfg *config.Config, store *library.Store, themes *library.ThemeStore) *cobra.Command {
	var (
		port int
		bind string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start web UI server",
		Long:  "Start a read-only web interface for browsing the collection and feed.",
		RunE: func(cmd *cobra.Command, args []string) error {
			addr := fmt.Sprintf("%s:%d", bind, port)

			mux := http.NewServeMux()
			mux.HandleFunc("/", handleIndex(themes))
			mux.HandleFunc("/api/books", handleAPIBooks(store))
			mux.HandleFunc("/api/book/", handleAPIBook(store))
			mux.HandleFunc("/api/feed", handleAPIFeed(store))
			mux.HandleFunc("/api/theme", handleAPITheme(themes))

			fmt.Printf("Starting booktrack web server on http://%s\n", addr)
			fmt.Println("Press Ctrl+C to stop")

			return http.ListenAndServe(addr, mux)
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 8080, "Port to serve on")
	cmd.Flags().StringVarP(&bind, "bind", "b", "127.0.0.1", "Address to bind to")

	return cmd
}

var indexPage = `<!DOCTYPE html>
<html data-theme="%s">
<head>
	<title>booktrack</title>
	<meta charset="UTF-8">
	<meta name="viewport" content="width=device-width, initial-scale=1.0">
	<style>
		* { box-sizing: border-box; margin: 0; padding: 0; }
		body { font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; line-height: 1.6; color: #333; max-width: 900px; margin: 0 auto; padding: 20px; }
		html[data-theme="dark"] body { background: #1e1e2e; color: #ddd; }
		h1 { margin-bottom: 20px; }
		.search-box { width: 100%%; padding: 12px; font-size: 16px; border: 2px solid #ddd; border-radius: 4px; margin-bottom: 20px; }
		.books { display: grid; gap: 15px; margin-bottom: 30px; }
		.book { border: 1px solid #e0e0e0; border-radius: 8px; padding: 16px; }
		html[data-theme="dark"] .book { border-color: #444; }
		.book-title { font-size: 18px; font-weight: 600; }
		.book-meta { color: #888; font-size: 14px; }
		.progress-bar { height: 6px; background: #eee; border-radius: 3px; margin-top: 8px; }
		.progress-fill { height: 100%%; background: #3498db; border-radius: 3px; }
		.status { display: inline-block; padding: 2px 10px; border-radius: 10px; font-size: 12px; background: #e3f2fd; color: #1976d2; }
		.feed-entry { padding: 8px 0; border-bottom: 1px solid #eee; font-size: 14px; }
		.feed-time { color: #999; font-size: 12px; margin-right: 8px; }
	</style>
</head>
<body>
	<h1>booktrack</h1>
	<input type="text" class="search-box" id="search" placeholder="Search books...">
	<div class="books" id="books"></div>
	<h2>Activity</h2>
	<div id="feed"></div>

	<script>
		function esc(s) {
			const d = document.createElement('div');
			d.textContent = s == null ? '' : s;
			return d.innerHTML;
		}

		async function loadBooks(query = '') {
			const res = await fetch('/api/books' + (query ? '?q=' + encodeURIComponent(query) : ''));
			const books = await res.json();
			const container = document.getElementById('books');
			if (!books || books.length === 0) {
				container.innerHTML = '<p>No books yet.</p>';
				return;
			}
			container.innerHTML = books.map(b => {
				const pct = b.total_pages > 0 ? Math.round(100 * b.current_page / b.total_pages) : 0;
				return '<div class="book">' +
					'<div class="book-title">' + esc(b.title) + '</div>' +
					'<div class="book-meta">' + esc(b.author) + ' &middot; <span class="status">' + esc(b.status) + '</span></div>' +
					(b.total_pages > 0 ? '<div class="progress-bar"><div class="progress-fill" style="width:' + pct + '%%"></div></div>' : '') +
					'</div>';
			}).join('');
		}

		async function loadFeed() {
			const res = await fetch('/api/feed');
			const entries = await res.json();
			const container = document.getElementById('feed');
			if (!entries || entries.length === 0) {
				container.innerHTML = '<p>No activity yet.</p>';
				return;
			}
			container.innerHTML = entries.map(e =>
				'<div class="feed-entry"><span class="feed-time">' + esc(e.time.slice(0, 16).replace('T', ' ')) + '</span>' +
				esc(e.book_title) + ': ' + esc(e.type) + '</div>'
			).join('');
		}

		let timer;
		document.getElementById('search').addEventListener('input', ev => {
			clearTimeout(timer);
			timer = setTimeout(() => loadBooks(ev.target.value), 250);
		});

		loadBooks();
		loadFeed();
	</script>
</body>
</html>`

func handleIndex(themes *library.ThemeStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		fmt.Fprintf(w, indexPage, themes.Get(r.Context()))
	}
}

func handleAPIBooks(store *library.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		opts := &library.ListOptions{
			Search: r.URL.Query().Get("q"),
			Status: library.Status(r.URL.Query().Get("status")),
		}
		books := store.ListBooks(opts)
		if books == nil {
			books = []*library.Book{}
		}
		writeJSON(w, books)
	}
}

func handleAPIBook(store *library.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := strings.TrimPrefix(r.URL.Path, "/api/book/")
		book, err := store.GetBook(id)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		if book == nil {
			http.NotFound(w, r)
			return
		}
		writeJSON(w, book)
	}
}

func handleAPIFeed(store *library.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		entries := library.BuildFeed(store.ListBooks(nil))
		if entries == nil {
			entries = []library.FeedEntry{}
		}
		writeJSON(w, entries)
	}
}

func handleAPITheme(themes *library.ThemeStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, map[string]string{"theme": string(themes.Get(r.Context()))})
	}
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
