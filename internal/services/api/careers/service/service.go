// Package service contains careers workflows
package service

import (
	"context"

	"github.com/google/uuid"

	"chalkline/internal/core/normalize"
	"chalkline/internal/modkit/repokit"
	perr "chalkline/internal/platform/errors"
	"chalkline/internal/services/api/careers/domain"
	"chalkline/internal/services/api/careers/repo"
)

// Service defines the service contract for careers
type Service interface{ domain.ServicePort }

// Svc implements the Service interface
type Svc struct {
	Repo   repo.Repo
	binder repokit.Binder[repo.Repo]
	db     repokit.TxRunner
}

// New creates a new careers service
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo]) *Svc {
	if db == nil {
		panic("careers.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("careers.Service requires a non nil Repo binder")
	}
	return &Svc{Repo: repokit.MustBind(binder, db), binder: binder, db: db}
}

// Create inserts a career with a server generated id and canonized name
func (s *Svc) Create(ctx context.Context, in domain.CreateInput) (domain.Career, error) {
	row, err := s.Repo.Insert(ctx, uuid.NewString(), in.Code, in.Name, normalize.Canon(in.Name))
	if err != nil {
		return domain.Career{}, perr.FromPostgresf(err, "create career %s", in.Code)
	}
	return toCareer(row), nil
}

// Get fetches one career by id
func (s *Svc) Get(ctx context.Context, in domain.GetInput) (domain.Career, error) {
	row, err := s.Repo.Get(ctx, in.ID)
	if err != nil {
		return domain.Career{}, err
	}
	return toCareer(row), nil
}

// List returns careers matching the canonized query
func (s *Svc) List(ctx context.Context, in domain.ListInput) ([]domain.Career, error) {
	rows, err := s.Repo.List(ctx, normalize.Canon(in.Q), in.Limit)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Career, 0, len(rows))
	for _, r := range rows {
		out = append(out, toCareer(r))
	}
	return out, nil
}

// Update renames a career
func (s *Svc) Update(ctx context.Context, in domain.UpdateInput) (domain.Career, error) {
	row, err := s.Repo.Rename(ctx, in.ID, in.Name, normalize.Canon(in.Name))
	if err != nil {
		return domain.Career{}, err
	}
	return toCareer(row), nil
}

// Delete removes a career; deleting an unknown id is a not found error
func (s *Svc) Delete(ctx context.Context, in domain.DeleteInput) (domain.Deleted, error) {
	ok, err := s.Repo.Delete(ctx, in.ID)
	if err != nil {
		return domain.Deleted{}, perr.FromPostgresf(err, "delete career %s", in.ID)
	}
	if !ok {
		return domain.Deleted{}, perr.NotFoundf("career %s not found", in.ID)
	}
	return domain.Deleted{ID: in.ID, Deleted: true}, nil
}

func toCareer(r repo.RowCareer) domain.Career {
	return domain.Career{
		ID:        r.ID,
		Code:      r.Code,
		Name:      r.Name,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}
