// Package service contains course group workflows
package service

import (
	"context"

	"github.com/google/uuid"

	"chalkline/internal/core/normalize"
	"chalkline/internal/modkit/repokit"
	perr "chalkline/internal/platform/errors"
	"chalkline/internal/services/api/groups/domain"
	"chalkline/internal/services/api/groups/repo"
)

// Service defines the service contract for course groups
type Service interface{ domain.ServicePort }

// Svc implements the Service interface
type Svc struct {
	Repo   repo.Repo
	binder repokit.Binder[repo.Repo]
	db     repokit.TxRunner
}

// New creates a new groups service
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo]) *Svc {
	if db == nil {
		panic("groups.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("groups.Service requires a non nil Repo binder")
	}
	return &Svc{Repo: repokit.MustBind(binder, db), binder: binder, db: db}
}

// Create inserts a course group; a dangling career_id surfaces as invalid input
func (s *Svc) Create(ctx context.Context, in domain.CreateInput) (domain.Group, error) {
	row, err := s.Repo.Insert(ctx, repo.InsertArgs{
		ID:           uuid.NewString(),
		Code:         in.Code,
		CourseName:   in.CourseName,
		CourseCanon:  normalize.Canon(in.CourseName),
		CareerID:     in.CareerID,
		Semester:     in.Semester,
		StudentCount: in.StudentCount,
	})
	if err != nil {
		return domain.Group{}, perr.FromPostgresf(err, "create group %s", in.Code)
	}
	return toGroup(row), nil
}

// Get fetches one group
func (s *Svc) Get(ctx context.Context, in domain.GetInput) (domain.Group, error) {
	row, err := s.Repo.Get(ctx, in.ID)
	if err != nil {
		return domain.Group{}, err
	}
	return toGroup(row), nil
}

// List returns groups matching the filters
func (s *Svc) List(ctx context.Context, in domain.ListInput) ([]domain.Group, error) {
	rows, err := s.Repo.List(ctx, normalize.Canon(in.Q), in.CareerID, in.Semester, in.Limit)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Group, 0, len(rows))
	for _, r := range rows {
		out = append(out, toGroup(r))
	}
	return out, nil
}

// Update changes a group's course name or enrolment
func (s *Svc) Update(ctx context.Context, in domain.UpdateInput) (domain.Group, error) {
	row, err := s.Repo.Update(ctx, in.ID, in.CourseName, normalize.Canon(in.CourseName), in.StudentCount)
	if err != nil {
		return domain.Group{}, err
	}
	return toGroup(row), nil
}

// Delete removes a group
func (s *Svc) Delete(ctx context.Context, in domain.DeleteInput) (domain.Deleted, error) {
	ok, err := s.Repo.Delete(ctx, in.ID)
	if err != nil {
		return domain.Deleted{}, perr.FromPostgresf(err, "delete group %s", in.ID)
	}
	if !ok {
		return domain.Deleted{}, perr.NotFoundf("group %s not found", in.ID)
	}
	return domain.Deleted{ID: in.ID, Deleted: true}, nil
}

func toGroup(r repo.RowGroup) domain.Group {
	return domain.Group{
		ID:           r.ID,
		Code:         r.Code,
		CourseName:   r.CourseName,
		CareerID:     r.CareerID,
		Semester:     r.Semester,
		StudentCount: r.StudentCount,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}
