package services

import (
	"context"
	"fmt"
	"time"

	"github.com/tidydocs/mdprune-cli/internal/core/domain"
	"github.com/tidydocs/mdprune-cli/internal/core/ports/driven"
	"github.com/tidydocs/mdprune-cli/internal/core/ports/driving"
	"github.com/tidydocs/mdprune-cli/internal/logger"
)

// Ensure PruneService implements the interface.
var _ driving.Pruner = (*PruneService)(nil)

// PruneService applies removal actions to scanned orphans.
type PruneService struct {
	factory driven.ExecutorFactory
	history driven.HistoryStore
}

// NewPruneService creates a new prune service.
// history is optional; when nil, runs are simply not recorded.
func NewPruneService(factory driven.ExecutorFactory, history driven.HistoryStore) *PruneService {
	return &PruneService{
		factory: factory,
		history: history,
	}
}

// Prune executes the action over paths and records the run. The first
// action failure aborts the batch and propagates; files already
// processed stay processed, and the recorded count reflects that.
func (p *PruneService) Prune(ctx context.Context, result *domain.ScanResult, action domain.Action, paths []string) (int, error) {
	if err := action.Validate(); err != nil {
		return 0, err
	}

	executor, err := p.factory.Create(action)
	if err != nil {
		return 0, err
	}

	count, execErr := executor.Execute(ctx, paths)

	p.record(ctx, result, action.String(), count)

	if execErr != nil {
		return count, fmt.Errorf("%s failed after %d file(s): %w", action.Kind, count, execErr)
	}
	return count, nil
}

// RecordScan persists a dry-run summary. Best effort, like record.
func (p *PruneService) RecordScan(ctx context.Context, result *domain.ScanResult) {
	p.record(ctx, result, "scan", 0)
}

// record saves a run summary. History is an observability aid, never
// a reason to fail a prune, so errors only warn.
func (p *PruneService) record(ctx context.Context, result *domain.ScanResult, action string, acted int) {
	if p.history == nil {
		return
	}
	rec := domain.ScanRecord{
		Root:        result.Root,
		Action:      action,
		OrphanCount: len(result.Orphans),
		ActedCount:  acted,
		RanAt:       time.Now(),
	}
	if err := p.history.Record(ctx, rec); err != nil {
		logger.Warn("recording run history: %v", err)
	}
}
