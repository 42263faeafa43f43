// Package service contains teacher workflows
package service

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"

	"chalkline/internal/core/normalize"
	"chalkline/internal/modkit/repokit"
	perr "chalkline/internal/platform/errors"
	"chalkline/internal/services/api/teachers/domain"
	"chalkline/internal/services/api/teachers/repo"
)

// Service defines the service contract for teachers
type Service interface{ domain.ServicePort }

// Svc implements the Service interface
type Svc struct {
	Repo   repo.Repo
	binder repokit.Binder[repo.Repo]
	db     repokit.TxRunner
}

// New creates a new teachers service
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo]) *Svc {
	if db == nil {
		panic("teachers.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("teachers.Service requires a non nil Repo binder")
	}
	return &Svc{Repo: repokit.MustBind(binder, db), binder: binder, db: db}
}

// Create inserts a teacher; new teachers start active
func (s *Svc) Create(ctx context.Context, in domain.CreateInput) (domain.Teacher, error) {
	avail, err := marshalWindows(in.Availability)
	if err != nil {
		return domain.Teacher{}, err
	}
	row, err := s.Repo.Insert(ctx, repo.InsertArgs{
		ID:               uuid.NewString(),
		Name:             in.Name,
		NameCanon:        normalize.Canon(in.Name),
		Email:            in.Email,
		MaxWeeklyHours:   in.MaxWeeklyHours,
		Specialties:      in.Specialties,
		AvailabilityJSON: avail,
	})
	if err != nil {
		return domain.Teacher{}, perr.FromPostgresf(err, "create teacher %s", in.Name)
	}
	return toTeacher(row)
}

// Get fetches one teacher
func (s *Svc) Get(ctx context.Context, in domain.GetInput) (domain.Teacher, error) {
	row, err := s.Repo.Get(ctx, in.ID)
	if err != nil {
		return domain.Teacher{}, err
	}
	return toTeacher(row)
}

// List returns teachers matching the filters
func (s *Svc) List(ctx context.Context, in domain.ListInput) ([]domain.Teacher, error) {
	rows, err := s.Repo.List(ctx, normalize.Canon(in.Q), in.Specialty, in.Active, in.Limit)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Teacher, 0, len(rows))
	for _, r := range rows {
		t, err := toTeacher(r)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, nil
}

// Update replaces the mutable teacher fields, including the active flag
func (s *Svc) Update(ctx context.Context, in domain.UpdateInput) (domain.Teacher, error) {
	avail, err := marshalWindows(in.Availability)
	if err != nil {
		return domain.Teacher{}, err
	}
	row, err := s.Repo.Update(ctx, repo.UpdateArgs{
		ID:               in.ID,
		Name:             in.Name,
		NameCanon:        normalize.Canon(in.Name),
		Email:            in.Email,
		MaxWeeklyHours:   in.MaxWeeklyHours,
		Specialties:      in.Specialties,
		AvailabilityJSON: avail,
		Active:           in.Active,
	})
	if err != nil {
		return domain.Teacher{}, err
	}
	return toTeacher(row)
}

// Delete removes a teacher
func (s *Svc) Delete(ctx context.Context, in domain.DeleteInput) (domain.Deleted, error) {
	ok, err := s.Repo.Delete(ctx, in.ID)
	if err != nil {
		return domain.Deleted{}, perr.FromPostgresf(err, "delete teacher %s", in.ID)
	}
	if !ok {
		return domain.Deleted{}, perr.NotFoundf("teacher %s not found", in.ID)
	}
	return domain.Deleted{ID: in.ID, Deleted: true}, nil
}

func marshalWindows(ws []domain.Window) ([]byte, error) {
	if ws == nil {
		ws = []domain.Window{}
	}
	b, err := json.Marshal(ws)
	if err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeInvalidArgument, "encode availability")
	}
	return b, nil
}

func toTeacher(r repo.RowTeacher) (domain.Teacher, error) {
	var ws []domain.Window
	if len(r.AvailabilityJSON) > 0 {
		if err := json.Unmarshal(r.AvailabilityJSON, &ws); err != nil {
			return domain.Teacher{}, perr.Wrapf(err, perr.ErrorCodeDB, "decode availability for teacher %s", r.ID)
		}
	}
	return domain.Teacher{
		ID:             r.ID,
		Name:           r.Name,
		Email:          r.Email,
		MaxWeeklyHours: r.MaxWeeklyHours,
		Specialties:    r.Specialties,
		Availability:   ws,
		Active:         r.Active,
		CreatedAt:      r.CreatedAt,
		UpdatedAt:      r.UpdatedAt,
	}, nil
}
