package testutil

import (
	"github.com/dfields/schedtrack/internal/domain"
	"github.com/dfields/schedtrack/internal/importer"
)

// RecordOption customizes a test record.
type RecordOption func(*domain.Project)

func WithOrder(order string) RecordOption {
	return func(p *domain.Project) { p.Order = order }
}

func WithProjectManager(pm string) RecordOption {
	return func(p *domain.Project) { p.ProjectManager = pm }
}

func WithCommitmentDate(date string) RecordOption {
	return func(p *domain.Project) { p.CommitmentDate = date }
}

func WithMOB(date string) RecordOption {
	return func(p *domain.Project) { p.MOB = date }
}

func WithCity(city string) RecordOption {
	return func(p *domain.Project) { p.City = city }
}

// NewTestRecord builds a schedule record with a deterministic hash id derived
// from its PMO id and order, the same way the importer assigns them.
func NewTestRecord(pmoID, name string, opts ...RecordOption) *domain.Project {
	p := &domain.Project{
		PMOID:          pmoID,
		Order:          "40001",
		ProjectName:    name,
		ProjectManager: "Rivera",
		CommitmentDate: "06/15/2024",
	}
	for _, opt := range opts {
		opt(p)
	}
	p.ID = importer.ResolveID(p.PMOID, p.Order, 0)
	return p
}
