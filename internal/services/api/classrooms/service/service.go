// Package service contains classrooms workflows
package service

import (
	"context"

	"github.com/google/uuid"

	"chalkline/internal/core/normalize"
	"chalkline/internal/modkit/repokit"
	perr "chalkline/internal/platform/errors"
	"chalkline/internal/services/api/classrooms/domain"
	"chalkline/internal/services/api/classrooms/repo"
)

// Service defines the service contract for classrooms
type Service interface{ domain.ServicePort }

// Svc implements the Service interface
type Svc struct {
	Repo   repo.Repo
	binder repokit.Binder[repo.Repo]
	db     repokit.TxRunner
}

// New creates a new classrooms service
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo]) *Svc {
	if db == nil {
		panic("classrooms.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("classrooms.Service requires a non nil Repo binder")
	}
	return &Svc{Repo: repokit.MustBind(binder, db), binder: binder, db: db}
}

// Create inserts a classroom with a server generated id and canonized code
func (s *Svc) Create(ctx context.Context, in domain.CreateInput) (domain.Classroom, error) {
	row, err := s.Repo.Insert(ctx, uuid.NewString(), in.Code, normalize.Canon(in.Code), in.Capacity, in.Kind)
	if err != nil {
		return domain.Classroom{}, perr.FromPostgresf(err, "create classroom %s", in.Code)
	}
	return toClassroom(row), nil
}

// Get fetches one classroom
func (s *Svc) Get(ctx context.Context, in domain.GetInput) (domain.Classroom, error) {
	row, err := s.Repo.Get(ctx, in.ID)
	if err != nil {
		return domain.Classroom{}, err
	}
	return toClassroom(row), nil
}

// List returns classrooms matching the filters
func (s *Svc) List(ctx context.Context, in domain.ListInput) ([]domain.Classroom, error) {
	rows, err := s.Repo.List(ctx, normalize.Canon(in.Q), in.Kind, in.MinCapacity, in.Limit)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Classroom, 0, len(rows))
	for _, r := range rows {
		out = append(out, toClassroom(r))
	}
	return out, nil
}

// Update changes a classroom's capacity or kind
func (s *Svc) Update(ctx context.Context, in domain.UpdateInput) (domain.Classroom, error) {
	row, err := s.Repo.Update(ctx, in.ID, in.Capacity, in.Kind)
	if err != nil {
		return domain.Classroom{}, err
	}
	return toClassroom(row), nil
}

// Delete removes a classroom
func (s *Svc) Delete(ctx context.Context, in domain.DeleteInput) (domain.Deleted, error) {
	ok, err := s.Repo.Delete(ctx, in.ID)
	if err != nil {
		return domain.Deleted{}, perr.FromPostgresf(err, "delete classroom %s", in.ID)
	}
	if !ok {
		return domain.Deleted{}, perr.NotFoundf("classroom %s not found", in.ID)
	}
	return domain.Deleted{ID: in.ID, Deleted: true}, nil
}

func toClassroom(r repo.RowClassroom) domain.Classroom {
	return domain.Classroom{
		ID:        r.ID,
		Code:      r.Code,
		Capacity:  r.Capacity,
		Kind:      r.Kind,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}
