package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dfields/schedtrack/internal/db"
	"github.com/dfields/schedtrack/internal/domain"
	"github.com/dfields/schedtrack/internal/importer"
	"github.com/dfields/schedtrack/internal/merge"
	"github.com/dfields/schedtrack/internal/repository"
	"github.com/dfields/schedtrack/internal/schedule"
)

type importService struct {
	store    repository.ProjectStore
	uow      db.UnitOfWork // nil when store is remote
	parser   *importer.Parser
	observer UseCaseObserver
}

// NewImportService builds the import pipeline over the given store. uow may
// be nil; RefreshSaved then runs record by record instead of atomically.
func NewImportService(store repository.ProjectStore, uow db.UnitOfWork, parser *importer.Parser, observers ...UseCaseObserver) ImportService {
	return &importService{
		store:    store,
		uow:      uow,
		parser:   parser,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *importService) ImportFile(ctx context.Context, path string, working []*domain.Project, dateField string) (outcome *ImportOutcome, err error) {
	batchID := uuid.New().String()
	startedAt := time.Now().UTC()
	fields := map[string]any{"batch_id": batchID, "path": path}
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "import-file",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	incoming, err := s.parser.ParseFile(path)
	if err != nil {
		return nil, err
	}
	fields["parsed"] = len(incoming)

	persisted, err := s.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading saved baseline: %w", err)
	}

	now := time.Now().UTC()
	merged := merge.Merge(persisted, working, incoming, now)
	records := schedule.Categorize(merged, dateField, now)

	outcome = &ImportOutcome{
		BatchID: batchID,
		Records: records,
		Total:   len(records),
		New:     len(records) - len(working),
	}
	outcome.Updated = len(incoming) - outcome.New
	for _, p := range records {
		if p.IsChanged {
			outcome.Changed++
		}
	}
	fields["new"] = outcome.New
	fields["updated"] = outcome.Updated
	fields["changed"] = outcome.Changed
	return outcome, nil
}

func (s *importService) RefreshSaved(ctx context.Context, path string) (outcome *RefreshOutcome, err error) {
	batchID := uuid.New().String()
	startedAt := time.Now().UTC()
	fields := map[string]any{"batch_id": batchID, "path": path}
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "refresh-saved",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	incoming, err := s.parser.ParseFile(path)
	if err != nil {
		return nil, err
	}
	byID := make(map[int64]*domain.Project, len(incoming))
	for _, p := range incoming {
		byID[p.ID] = p
	}

	saved, err := s.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading saved records: %w", err)
	}

	outcome = &RefreshOutcome{BatchID: batchID}
	now := time.Now().UTC().Format(time.RFC3339)

	refresh := func(ctx context.Context, store repository.ProjectStore) error {
		for _, old := range saved {
			replacement, present := byID[old.ID]
			if !present {
				outcome.Missing++
				continue
			}
			// Delete-then-add: the refreshed record starts over with a
			// clean version and no change history.
			fresh := replacement.Clone()
			fresh.Changes = nil
			fresh.IsChanged = false
			fresh.Version = 0
			fresh.LastUpdated = now
			if err := store.Delete(ctx, old.ID); err != nil {
				return err
			}
			if err := store.Create(ctx, fresh); err != nil {
				return err
			}
			outcome.Refreshed++
		}
		return nil
	}

	if s.uow != nil {
		err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
			return refresh(ctx, repository.NewSQLiteProjectStore(tx))
		})
	} else {
		err = refresh(ctx, s.store)
	}
	if err != nil {
		return nil, fmt.Errorf("refreshing saved records: %w", err)
	}
	fields["refreshed"] = outcome.Refreshed
	fields["missing"] = outcome.Missing
	return outcome, nil
}
