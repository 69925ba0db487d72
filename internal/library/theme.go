// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

package library

import (
	"context"
	"fmt"

	"github.com/mtreilly/booktrack/internal/kv"
)

// Theme is the UI color scheme preference.
type Theme string

const (
	ThemeLight  Theme = "light"
	ThemeDark   Theme = "dark"
	ThemeSystem Theme = "system"
)

const themeKey = "booktrack:theme"

// ValidTheme reports whether t is a known theme.
func ValidTheme(t Theme) bool {
	return t == ThemeLight || t == ThemeDark || t == ThemeSystem
}

// ThemeStore persists the single theme preference. Reads and writes are
// synchronous; the value is one small string.
type ThemeStore struct {
	kv kv.Store
}

// NewThemeStore wraps the KV store.
func NewThemeStore(kvs kv.Store) *ThemeStore {
	return &ThemeStore{kv: kvs}
}

// Get returns the stored theme. Missing or unrecognized values
// normalize to system.
func (t *ThemeStore) Get(ctx context.Context) Theme {
	data, err := t.kv.Get(ctx, themeKey)
	if err != nil {
		return ThemeSystem
	}
	theme := Theme(data)
	if !ValidTheme(theme) {
		return ThemeSystem
	}
	return theme
}

// Set validates and persists the theme.
func (t *ThemeStore) Set(ctx context.Context, theme Theme) error {
	if !ValidTheme(theme) {
		return fmt.Errorf("unknown theme %q (choose light, dark, or system)", theme)
	}
	if err := t.kv.Set(ctx, themeKey, []byte(theme)); err != nil {
		return fmt.Errorf("save theme: %w", err)
	}
	return nil
}

// Toggle flips light and dark; system becomes dark.
func (t *ThemeStore) Toggle(ctx context.Context) (Theme, error) {
	next := ThemeDark
	if t.Get(ctx) == ThemeDark {
		next = ThemeLight
	}
	if err := t.Set(ctx, next); err != nil {
		return "", err
	}
	return next, nil
}
