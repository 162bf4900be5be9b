package fixresx

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"
)

// RunRecord is one row of run history.
type RunRecord struct {
	ID           string    `gorm:"primaryKey;size:36" json:"id" yaml:"id"`
	Base         string    `gorm:"size:255;index" json:"base" yaml:"base"`
	Strict       bool      `json:"strict" yaml:"strict"`
	DryRun       bool      `json:"dry_run" yaml:"dry_run"`
	Replaced     int       `json:"replaced" yaml:"replaced"`
	Skipped      int       `json:"skipped" yaml:"skipped"`
	Unchanged    int       `json:"unchanged" yaml:"unchanged"`
	DesignerOnly int       `json:"designer_only" yaml:"designer_only"`
	ResxOnly     int       `json:"resx_only" yaml:"resx_only"`
	InstallError string    `gorm:"size:1024" json:"install_error,omitempty" yaml:"install_error,omitempty"`
	StartedAt    time.Time `gorm:"index" json:"started_at" yaml:"started_at"`
	FinishedAt   time.Time `json:"finished_at" yaml:"finished_at"`
}

// TableName overrides the table name used by GORM.
func (RunRecord) TableName() string {
	return "fix_runs"
}

// History stores run records.
type History struct {
	db *gorm.DB
}

// NewHistory creates a History backed by db.
func NewHistory(db *gorm.DB) *History {
	return &History{db: db}
}

// Migrate creates or updates the history table.
func (h *History) Migrate(ctx context.Context) error {
	if err := h.db.WithContext(ctx).AutoMigrate(&RunRecord{}); err != nil {
		return fmt.Errorf("failed to migrate run history: %w", err)
	}
	return nil
}

// Record stores rec.
func (h *History) Record(ctx context.Context, rec *RunRecord) error {
	if err := h.db.WithContext(ctx).Create(rec).Error; err != nil {
		return fmt.Errorf("failed to record run %s: %w", rec.ID, err)
	}
	return nil
}

// List returns the most recent runs, newest first. An empty base lists all forms.
func (h *History) List(ctx context.Context, base string, limit int) ([]RunRecord, error) {
	q := h.db.WithContext(ctx).Order("started_at DESC")
	if base != "" {
		q = q.Where("base = ?", base)
	}
	if limit > 0 {
		q = q.Limit(limit)
	}

	var records []RunRecord
	if err := q.Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	return records, nil
}
