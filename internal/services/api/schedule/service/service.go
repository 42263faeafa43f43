// Package service contains schedule workflows
package service

import (
	"context"

	"github.com/google/uuid"

	"chalkline/internal/modkit/repokit"
	perr "chalkline/internal/platform/errors"
	"chalkline/internal/services/api/schedule/domain"
	"chalkline/internal/services/api/schedule/repo"
)

// Service defines the service contract for schedule events
type Service interface{ domain.ServicePort }

// Svc implements the Service interface
type Svc struct {
	Repo   repo.Repo
	binder repokit.Binder[repo.Repo]
	db     repokit.TxRunner
}

// New creates a new schedule service
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo]) *Svc {
	if db == nil {
		panic("schedule.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("schedule.Service requires a non nil Repo binder")
	}
	return &Svc{Repo: repokit.MustBind(binder, db), binder: binder, db: db}
}

// Create schedules an event; dangling refs surface as invalid input via fk violations.
// Overlap with existing events is allowed here: conflicts are findings, not write guards
func (s *Svc) Create(ctx context.Context, in domain.CreateInput) (domain.Event, error) {
	row, err := s.Repo.Insert(ctx, repo.EventArgs{
		ID:          uuid.NewString(),
		GroupID:     in.GroupID,
		TeacherID:   in.TeacherID,
		ClassroomID: in.ClassroomID,
		Day:         in.Day,
		StartMin:    in.StartMin,
		EndMin:      in.EndMin,
		StartWeek:   in.StartWeek,
		EndWeek:     in.EndWeek,
	})
	if err != nil {
		return domain.Event{}, perr.FromPostgresf(err, "create event for group %s", in.GroupID)
	}
	return toEvent(row), nil
}

// Get fetches one event
func (s *Svc) Get(ctx context.Context, in domain.GetInput) (domain.Event, error) {
	row, err := s.Repo.Get(ctx, in.ID)
	if err != nil {
		return domain.Event{}, err
	}
	return toEvent(row), nil
}

// List returns events matching the filters
func (s *Svc) List(ctx context.Context, in domain.ListInput) ([]domain.Event, error) {
	rows, err := s.Repo.List(ctx, repo.ListFilters{
		GroupID:     in.GroupID,
		TeacherID:   in.TeacherID,
		ClassroomID: in.ClassroomID,
		Day:         in.Day,
		Limit:       in.Limit,
	})
	if err != nil {
		return nil, err
	}
	out := make([]domain.Event, 0, len(rows))
	for _, r := range rows {
		out = append(out, toEvent(r))
	}
	return out, nil
}

// Update replaces an event's scheduling fields
func (s *Svc) Update(ctx context.Context, in domain.UpdateInput) (domain.Event, error) {
	row, err := s.Repo.Update(ctx, repo.EventArgs{
		ID:          in.ID,
		TeacherID:   in.TeacherID,
		ClassroomID: in.ClassroomID,
		Day:         in.Day,
		StartMin:    in.StartMin,
		EndMin:      in.EndMin,
		StartWeek:   in.StartWeek,
		EndWeek:     in.EndWeek,
	})
	if err != nil {
		return domain.Event{}, err
	}
	return toEvent(row), nil
}

// Delete removes an event
func (s *Svc) Delete(ctx context.Context, in domain.DeleteInput) (domain.Deleted, error) {
	ok, err := s.Repo.Delete(ctx, in.ID)
	if err != nil {
		return domain.Deleted{}, perr.FromPostgresf(err, "delete event %s", in.ID)
	}
	if !ok {
		return domain.Deleted{}, perr.NotFoundf("event %s not found", in.ID)
	}
	return domain.Deleted{ID: in.ID, Deleted: true}, nil
}

func toEvent(r repo.RowEvent) domain.Event {
	return domain.Event{
		ID:          r.ID,
		GroupID:     r.GroupID,
		TeacherID:   r.TeacherID,
		ClassroomID: r.ClassroomID,
		Day:         r.Day,
		StartMin:    r.StartMin,
		EndMin:      r.EndMin,
		StartWeek:   r.StartWeek,
		EndWeek:     r.EndWeek,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}
