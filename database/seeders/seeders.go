// Package seeders fills a fresh database with the starter account and
// catalog. Seeders register in init() and run in registration order via the
// CLI's seed command.
package seeders

import (
	"fmt"
	"sync"

	"gorm.io/gorm"
)

// Func is one seed routine. Seeders must be idempotent: running seed twice
// should not duplicate rows.
type Func func(db *gorm.DB) error

type entry struct {
	name string
	fn   Func
}

var (
	mu      sync.Mutex
	entries []entry
)

// Register adds a seeder under a display name. Call from init().
func Register(name string, fn Func) {
	mu.Lock()
	defer mu.Unlock()
	entries = append(entries, entry{name: name, fn: fn})
}

// RunAll executes every registered seeder and stops at the first failure.
func RunAll(db *gorm.DB) error {
	mu.Lock()
	current := make([]entry, len(entries))
	copy(current, entries)
	mu.Unlock()

	for _, e := range current {
		fmt.Printf("  Seeding: %s\n", e.name)
		if err := e.fn(db); err != nil {
			return fmt.Errorf("seeder %q: %w", e.name, err)
		}
	}
	return nil
}
