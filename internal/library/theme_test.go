// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

package library

import (
	"context"
	"testing"

	"github.com/mtreilly/booktrack/internal/kv"
)

func TestThemeDefaultsToSystem(t *testing.T) {
	ts := NewThemeStore(kv.NewMemoryStore())
	if got := ts.Get(context.Background()); got != ThemeSystem {
		t.Fatalf("unset theme: got %q, want %q", got, ThemeSystem)
	}
}

func TestThemeSetGet(t *testing.T) {
	ctx := context.Background()
	ts := NewThemeStore(kv.NewMemoryStore())

	if err := ts.Set(ctx, ThemeDark); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if got := ts.Get(ctx); got != ThemeDark {
		t.Fatalf("Get: got %q, want %q", got, ThemeDark)
	}

	if err := ts.Set(ctx, Theme("sepia")); err == nil {
		t.Fatal("expected error for unknown theme")
	}
	// Failed set leaves the stored value alone.
	if got := ts.Get(ctx); got != ThemeDark {
		t.Fatalf("after rejected set: got %q, want %q", got, ThemeDark)
	}
}

func TestThemeInvalidStoredValueNormalizes(t *testing.T) {
	ctx := context.Background()
	mem := kv.NewMemoryStore()
	mem.Set(ctx, "booktrack:theme", []byte("neon"))

	ts := NewThemeStore(mem)
	if got := ts.Get(ctx); got != ThemeSystem {
		t.Fatalf("invalid stored theme: got %q, want %q", got, ThemeSystem)
	}
}

func TestThemeToggle(t *testing.T) {
	ctx := context.Background()
	ts := NewThemeStore(kv.NewMemoryStore())

	// system -> dark -> light -> dark
	steps := []Theme{ThemeDark, ThemeLight, ThemeDark}
	for i, want := range steps {
		got, err := ts.Toggle(ctx)
		if err != nil {
			t.Fatalf("Toggle %d: %v", i, err)
		}
		if got != want {
			t.Fatalf("Toggle %d: got %q, want %q", i, got, want)
		}
	}
}
