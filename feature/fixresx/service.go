package fixresx

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"fixresx/core/logger"
	"fixresx/core/reconcile"
	"fixresx/core/workspace"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	// ErrArchiveDisabled is returned when archive listing is requested without storage.
	ErrArchiveDisabled = errors.New("run archive is not enabled")
	// ErrHistoryDisabled is returned when history is requested without a database.
	ErrHistoryDisabled = errors.New("run history is not enabled")
)

// ServiceConfig holds the settings a Service needs.
type ServiceConfig struct {
	Paths     workspace.Config
	Reconcile reconcile.Config
	// License replaces the header of every rewritten resx.
	License []byte
}

// RunOptions tunes a single run.
type RunOptions struct {
	// Lenient passes unexpected properties through even when strict mode is configured.
	Lenient bool
	// DryRun leaves the rewritten resx next to the working copy without installing it.
	DryRun bool
}

// Service runs reconciliations against the configured directories.
type Service struct {
	cfg       ServiceConfig
	logger    *zap.Logger
	cache     *reconcile.IndexCache
	installer workspace.Installer
	archive   *Archive
	history   *History
	now       func() time.Time

	// Runs share the working directory and the run log.
	mu sync.Mutex
}

// NewService creates a Service. archive and history are optional.
func NewService(cfg ServiceConfig, logger *zap.Logger, archive *Archive, history *History) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		cfg:       cfg,
		logger:    logger,
		cache:     reconcile.NewIndexCache(time.Duration(cfg.Reconcile.CacheTTLSeconds) * time.Second),
		installer: workspace.FileInstaller{},
		archive:   archive,
		history:   history,
		now:       time.Now,
	}
}

func (s *Service) strict(opts RunOptions) bool {
	return s.cfg.Reconcile.Strict && !opts.Lenient
}

// Run reconciles the form named base and installs the result.
//
// An unexpected property in strict mode or an invalid base name aborts the run
// before anything is installed. A failure to install is recorded in the report
// and the run log but does not make Run fail.
func (s *Service) Run(ctx context.Context, base string, opts RunOptions) (*RunReport, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	paths, err := s.cfg.Paths.Resolve(base)
	if err != nil {
		return nil, err
	}
	if err := workspace.CheckWorking(paths); err != nil {
		return nil, err
	}

	report := &RunReport{
		ID:        uuid.NewString(),
		Base:      base,
		Strict:    s.strict(opts),
		DryRun:    opts.DryRun,
		StartedAt: s.now(),
	}
	l := logger.ForRun(s.logger, report.ID, base)
	l.Debug("Starting run", zap.Bool("strict", report.Strict), zap.Bool("dry_run", report.DryRun))

	index, err := s.loadIndex(paths.CanonicalDesigner)
	if err != nil {
		return nil, err
	}
	l.Debug("Designer indexed", zap.Int("entries", index.Len()))

	var archived bytes.Buffer
	result, err := s.rewrite(paths, index, report.Strict, &archived, l)
	if err != nil {
		return nil, err
	}

	runLog := workspace.NewRunLog(base, report.StartedAt)
	runLog.Add(result.LogLines()...)

	if !opts.DryRun {
		if err := s.installer.Install(paths); err != nil {
			report.InstallError = err.Error()
			runLog.Flag("Exception when replacing files: " + err.Error())
			l.Error("Failed to replace files", zap.Error(err))
		} else {
			report.Installed = true
			l.Info("New files written", zap.String("resx", paths.WorkingResx))
		}
	}

	report.Outcomes = result.Outcomes
	report.Orphans = reconcile.BuildReport(index, result.Seen)
	runLog.Add(report.Orphans.Lines()...)
	report.Log = runLog.Lines()

	if err := runLog.AppendTo(s.cfg.Paths.LogPath); err != nil {
		l.Warn("Failed to append run log", zap.String("path", s.cfg.Paths.LogPath), zap.Error(err))
	}

	if s.archive != nil {
		keys, err := s.archive.Store(ctx, base, report.ID, archived.Bytes(), runLog.String())
		if err != nil {
			l.Warn("Failed to archive run", zap.Error(err))
		}
		report.Archived = keys
	}

	report.FinishedAt = s.now()

	if s.history != nil {
		if err := s.history.Record(ctx, report.Record()); err != nil {
			l.Warn("Failed to record run history", zap.Error(err))
		}
	}

	l.Info("Run finished",
		zap.Int("replaced", report.Count(reconcile.OutcomeReplaced)),
		zap.Int("skipped", report.Count(reconcile.OutcomeSkipped)),
		zap.Int("designer_only", len(report.Orphans.DesignerOnly)),
		zap.Int("resx_only", len(report.Orphans.ResxOnly)))

	return report, nil
}

// rewrite reconciles the template resx into the temp file. The temp file is
// removed when reconciliation fails. When archiving, the output is also
// captured in archived.
func (s *Service) rewrite(paths workspace.Paths, index *reconcile.Index, strict bool, archived *bytes.Buffer, l *zap.Logger) (*reconcile.Result, error) {
	template, err := os.Open(paths.TemplateResx)
	if err != nil {
		return nil, fmt.Errorf("failed to open template resx: %w", err)
	}
	defer template.Close()

	out, err := os.Create(paths.TempResx)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s: %w", paths.TempResx, err)
	}

	var w io.Writer = out
	if s.archive != nil {
		w = io.MultiWriter(out, archived)
	}

	r := reconcile.NewReconciler(reconcile.Options{Strict: strict, License: s.cfg.License}, l)
	result, err := r.Reconcile(index, template, w)
	closeErr := out.Close()
	if err == nil && closeErr != nil {
		err = fmt.Errorf("failed to write %s: %w", paths.TempResx, closeErr)
	}
	if err != nil {
		os.Remove(paths.TempResx)
		return nil, fmt.Errorf("reconcile %s: %w", paths.Base, err)
	}
	return result, nil
}

// loadIndex indexes the canonical designer, reusing a cached index while the
// file is unchanged.
func (s *Service) loadIndex(path string) (*reconcile.Index, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat canonical designer: %w", err)
	}

	key := fmt.Sprintf("%s|%d|%d", path, info.ModTime().UnixNano(), info.Size())
	return s.cache.GetOrBuild(key, func() (*reconcile.Index, error) {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open canonical designer: %w", err)
		}
		defer f.Close()

		index, err := reconcile.IndexDesigner(f)
		if err != nil {
			return nil, fmt.Errorf("index %s: %w", path, err)
		}
		return index, nil
	})
}

// Preview reconciles designer and resx texts in memory. Nothing is read from
// or written to the configured directories.
func (s *Service) Preview(designer, resx string, opts RunOptions) (*Preview, error) {
	index, err := reconcile.IndexDesigner(strings.NewReader(designer))
	if err != nil {
		return nil, err
	}

	var out bytes.Buffer
	r := reconcile.NewReconciler(reconcile.Options{Strict: s.strict(opts), License: s.cfg.License}, s.logger)
	result, err := r.Reconcile(index, strings.NewReader(resx), &out)
	if err != nil {
		return nil, err
	}

	orphans := reconcile.BuildReport(index, result.Seen)
	return &Preview{
		Resx:     out.String(),
		Outcomes: result.Outcomes,
		Orphans:  orphans,
		Log:      append(result.LogLines(), orphans.Lines()...),
	}, nil
}

// Runs lists recorded runs, newest first.
func (s *Service) Runs(ctx context.Context, base string, limit int) ([]RunRecord, error) {
	if s.history == nil {
		return nil, ErrHistoryDisabled
	}
	return s.history.List(ctx, base, limit)
}

// Archived lists the archived object keys for base.
func (s *Service) Archived(ctx context.Context, base string) ([]string, error) {
	if s.archive == nil {
		return nil, ErrArchiveDisabled
	}
	return s.archive.List(ctx, base)
}
