// Package migration tracks and runs schema migrations. Migration files in
// database/migrations register themselves via init(), and the CLI drives the
// Runner.
package migration

import (
	"fmt"
	"sort"
	"time"

	"gorm.io/gorm"

	"github.com/artcocktail/artcocktail/pkg/logger"
)

// Step is one reversible schema change.
type Step interface {
	Up(db *gorm.DB) error
	Down(db *gorm.DB) error
}

type record struct {
	ID    uint      `gorm:"primaryKey;autoIncrement"`
	Name  string    `gorm:"uniqueIndex;size:255;not null"`
	Batch int       `gorm:"not null"`
	RunAt time.Time `gorm:"autoCreateTime"`
}

func (record) TableName() string { return "schema_migrations" }

type entry struct {
	name string
	step Step
}

var registry []entry

// Register adds a step under a timestamp-prefixed name, e.g.
// "20260801000000_create_users_table". Names sort lexicographically, which is
// the run order.
func Register(name string, step Step) {
	registry = append(registry, entry{name: name, step: step})
}

// Runner applies registered steps against one database.
type Runner struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Runner {
	return &Runner{db: db}
}

func (r *Runner) ensureTable() error {
	return r.db.AutoMigrate(&record{})
}

func (r *Runner) applied() (map[string]record, error) {
	var recs []record
	if err := r.db.Find(&recs).Error; err != nil {
		return nil, err
	}
	out := make(map[string]record, len(recs))
	for _, rec := range recs {
		out[rec.Name] = rec
	}
	return out, nil
}

// Up runs every step that has not been applied yet, all in one batch.
func (r *Runner) Up() error {
	if err := r.ensureTable(); err != nil {
		return fmt.Errorf("migration: ensure table: %w", err)
	}

	done, err := r.applied()
	if err != nil {
		return fmt.Errorf("migration: read applied: %w", err)
	}

	var pending []entry
	for _, e := range registry {
		if _, ok := done[e.name]; !ok {
			pending = append(pending, e)
		}
	}
	sort.Slice(pending, func(i, j int) bool { return pending[i].name < pending[j].name })

	if len(pending) == 0 {
		fmt.Println("Nothing to migrate.")
		return nil
	}

	batch := r.lastBatch() + 1
	for _, e := range pending {
		logger.Info("migration: applying", "name", e.name, "batch", batch)
		fmt.Printf("  Migrating: %s\n", e.name)
		if err := e.step.Up(r.db); err != nil {
			return fmt.Errorf("migration: %s up: %w", e.name, err)
		}
		if err := r.db.Create(&record{Name: e.name, Batch: batch}).Error; err != nil {
			return fmt.Errorf("migration: record %s: %w", e.name, err)
		}
	}
	fmt.Printf("Migrated %d step(s) in batch %d.\n", len(pending), batch)
	return nil
}

// Rollback reverses the most recent batch, newest step first.
func (r *Runner) Rollback() error {
	if err := r.ensureTable(); err != nil {
		return fmt.Errorf("migration: ensure table: %w", err)
	}

	batch := r.lastBatch()
	if batch == 0 {
		fmt.Println("Nothing to roll back.")
		return nil
	}

	var recs []record
	if err := r.db.Where("batch = ?", batch).Order("id desc").Find(&recs).Error; err != nil {
		return err
	}

	steps := make(map[string]Step, len(registry))
	for _, e := range registry {
		steps[e.name] = e.step
	}

	for _, rec := range recs {
		step, ok := steps[rec.Name]
		if !ok {
			return fmt.Errorf("migration: %s is recorded but not registered", rec.Name)
		}
		logger.Info("migration: rolling back", "name", rec.Name)
		fmt.Printf("  Rolling back: %s\n", rec.Name)
		if err := step.Down(r.db); err != nil {
			return fmt.Errorf("migration: %s down: %w", rec.Name, err)
		}
		if err := r.db.Delete(&rec).Error; err != nil {
			return err
		}
	}
	return nil
}

// Status prints each registered step with its applied batch, if any.
func (r *Runner) Status() error {
	if err := r.ensureTable(); err != nil {
		return err
	}

	done, err := r.applied()
	if err != nil {
		return err
	}

	fmt.Printf("%-55s  %-8s  %s\n", "Migration", "Status", "Batch")
	for _, e := range registry {
		if rec, ok := done[e.name]; ok {
			fmt.Printf("%-55s  %-8s  %d\n", e.name, "Ran", rec.Batch)
		} else {
			fmt.Printf("%-55s  %-8s  -\n", e.name, "Pending")
		}
	}
	return nil
}

func (r *Runner) lastBatch() int {
	var max struct{ Max int }
	r.db.Model(&record{}).Select("MAX(batch) as max").Scan(&max)
	return max.Max
}
