package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dfields/schedtrack/internal/domain"
	"github.com/dfields/schedtrack/internal/repository"
)

const defaultDateField = "commitmentDate"

type projectService struct {
	store    repository.ProjectStore
	settings repository.SettingsRepo
	observer UseCaseObserver
}

func NewProjectService(store repository.ProjectStore, settings repository.SettingsRepo, observers ...UseCaseObserver) ProjectService {
	return &projectService{
		store:    store,
		settings: settings,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *projectService) ListSaved(ctx context.Context) ([]*domain.Project, error) {
	return s.store.List(ctx)
}

func (s *projectService) Get(ctx context.Context, id int64) (*domain.Project, error) {
	return s.store.GetByID(ctx, id)
}

// Save persists the given records, best effort: one record failing does not
// stop the rest. Saved copies are stored clean, with change markers cleared,
// since the save itself makes the incoming values the new baseline.
func (s *projectService) Save(ctx context.Context, records []*domain.Project) (*SaveOutcome, error) {
	startedAt := time.Now().UTC()
	outcome := &SaveOutcome{Errors: map[int64]error{}}
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "save-records",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   len(outcome.Errors) == 0,
			Fields:    map[string]any{"saved": outcome.Saved, "failed": len(outcome.Errors)},
		})
	}()

	now := time.Now().UTC().Format(time.RFC3339)
	for _, p := range records {
		clean := p.Clone()
		clean.Changes = nil
		clean.IsChanged = false
		clean.LastUpdated = now

		_, err := s.store.GetByID(ctx, p.ID)
		switch {
		case err == nil:
			err = s.store.Update(ctx, clean)
		case errors.Is(err, repository.ErrNotFound):
			clean.Version = 0
			err = s.store.Create(ctx, clean)
		}
		if err != nil {
			outcome.Errors[p.ID] = err
			continue
		}
		outcome.Saved++
	}
	return outcome, nil
}

func (s *projectService) Remove(ctx context.Context, id int64) error {
	return s.store.Delete(ctx, id)
}

func (s *projectService) Changes(ctx context.Context, id int64) ([]repository.ChangeRecord, error) {
	return s.store.ListChanges(ctx, id)
}

// VisibleColumns returns the configured column set, or every registry field
// when nothing has been configured.
func (s *projectService) VisibleColumns(ctx context.Context) ([]string, error) {
	value, err := s.settings.Get(ctx, repository.SettingVisibleColumns)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			names := make([]string, len(domain.Fields))
			for i, f := range domain.Fields {
				names[i] = f.Name
			}
			return names, nil
		}
		return nil, err
	}
	return strings.Split(value, ","), nil
}

func (s *projectService) SetVisibleColumns(ctx context.Context, fields []string) error {
	for _, name := range fields {
		if _, ok := domain.FieldByName(name); !ok {
			return fmt.Errorf("unknown field %q", name)
		}
	}
	return s.settings.Set(ctx, repository.SettingVisibleColumns, strings.Join(fields, ","))
}

func (s *projectService) DateField(ctx context.Context) (string, error) {
	value, err := s.settings.Get(ctx, repository.SettingDateField)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return defaultDateField, nil
		}
		return "", err
	}
	return value, nil
}

func (s *projectService) SetDateField(ctx context.Context, field string) error {
	spec, ok := domain.FieldByName(field)
	if !ok || spec.Kind != domain.KindDate {
		return fmt.Errorf("%q is not a date field", field)
	}
	return s.settings.Set(ctx, repository.SettingDateField, field)
}
