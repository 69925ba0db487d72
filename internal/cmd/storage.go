// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"

	"github.com/mtreilly/booktrack/internal/config"
	"github.com/mtreilly/booktrack/internal/kv"
)

// openKV opens the configured storage backend.
func openKV(cfg *config.Config) (kv.Store, error) {
	switch cfg.Storage {
	case "sqlite":
		return kv.OpenSQLite(cfg.DBPath())
	case "memory":
		return kv.NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q (choose sqlite or memory)", cfg.Storage)
	}
}
