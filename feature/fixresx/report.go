package fixresx

import (
	"time"

	"fixresx/core/reconcile"
)

// RunReport describes the result of one run.
type RunReport struct {
	ID       string              `json:"id" yaml:"id"`
	Base     string              `json:"base" yaml:"base"`
	Strict   bool                `json:"strict" yaml:"strict"`
	DryRun   bool                `json:"dry_run" yaml:"dry_run"`
	Outcomes []reconcile.Outcome `json:"outcomes" yaml:"outcomes"`
	Orphans  reconcile.Report    `json:"orphans" yaml:"orphans"`
	// Installed is false for dry runs and failed installs.
	Installed    bool   `json:"installed" yaml:"installed"`
	InstallError string `json:"install_error,omitempty" yaml:"install_error,omitempty"`
	// Log holds the lines appended to the run log.
	Log        []string  `json:"log" yaml:"log"`
	Archived   []string  `json:"archived,omitempty" yaml:"archived,omitempty"`
	StartedAt  time.Time `json:"started_at" yaml:"started_at"`
	FinishedAt time.Time `json:"finished_at" yaml:"finished_at"`
}

// Count returns how many outcomes are of the given kind.
func (r *RunReport) Count(kind reconcile.OutcomeKind) int {
	n := 0
	for _, o := range r.Outcomes {
		if o.Kind == kind {
			n++
		}
	}
	return n
}

// Record converts the report into a history row.
func (r *RunReport) Record() *RunRecord {
	return &RunRecord{
		ID:           r.ID,
		Base:         r.Base,
		Strict:       r.Strict,
		DryRun:       r.DryRun,
		Replaced:     r.Count(reconcile.OutcomeReplaced),
		Skipped:      r.Count(reconcile.OutcomeSkipped),
		Unchanged:    r.Count(reconcile.OutcomeUnchanged),
		DesignerOnly: len(r.Orphans.DesignerOnly),
		ResxOnly:     len(r.Orphans.ResxOnly),
		InstallError: r.InstallError,
		StartedAt:    r.StartedAt,
		FinishedAt:   r.FinishedAt,
	}
}

// Preview is the in-memory result of reconciling posted texts.
type Preview struct {
	Resx     string              `json:"resx"`
	Outcomes []reconcile.Outcome `json:"outcomes"`
	Orphans  reconcile.Report    `json:"orphans"`
	Log      []string            `json:"log"`
}
