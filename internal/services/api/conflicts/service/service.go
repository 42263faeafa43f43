// Package service runs the conflict detector over inline or stored snapshots
package service

import (
	"context"
	"encoding/json"

	"chalkline/internal/core/conflict"
	"chalkline/internal/modkit/repokit"
	perr "chalkline/internal/platform/errors"
	"chalkline/internal/services/api/conflicts/domain"
	"chalkline/internal/services/api/conflicts/repo"
)

// Service defines the service contract for conflict detection
type Service interface{ domain.ServicePort }

// Svc implements the Service interface
type Svc struct {
	Repo   repo.Repo
	binder repokit.Binder[repo.Repo]
	db     repokit.TxRunner
}

// New creates a new conflicts service
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo]) *Svc {
	if db == nil {
		panic("conflicts.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("conflicts.Service requires a non nil Repo binder")
	}
	return &Svc{Repo: repokit.MustBind(binder, db), binder: binder, db: db}
}

// Check evaluates an inline snapshot without touching storage
func (s *Svc) Check(ctx context.Context, in domain.CheckInput) (domain.Report, error) {
	snap := conflict.Snapshot{
		Events:     make([]conflict.Event, 0, len(in.Events)),
		Teachers:   make([]conflict.Teacher, 0, len(in.Teachers)),
		Classrooms: make([]conflict.Classroom, 0, len(in.Classrooms)),
		Groups:     make([]conflict.Group, 0, len(in.Groups)),
	}
	for _, e := range in.Events {
		snap.Events = append(snap.Events, conflict.Event{
			ID:          e.ID,
			GroupID:     e.GroupID,
			TeacherID:   e.TeacherID,
			ClassroomID: e.ClassroomID,
			Day:         dayOf(e.Day),
			Start:       e.StartMin,
			End:         e.EndMin,
			StartWeek:   e.StartWeek,
			EndWeek:     e.EndWeek,
		})
	}
	for _, t := range in.Teachers {
		active := true
		if t.Active != nil {
			active = *t.Active
		}
		snap.Teachers = append(snap.Teachers, conflict.Teacher{
			ID:             t.ID,
			MaxWeeklyHours: t.MaxWeeklyHours,
			Specialties:    t.Specialties,
			Availability:   windowsOf(t.Availability),
			Active:         active,
		})
	}
	for _, c := range in.Classrooms {
		snap.Classrooms = append(snap.Classrooms, conflict.Classroom{
			ID:       c.ID,
			Capacity: c.Capacity,
			Kind:     conflict.RoomKind(c.Kind),
		})
	}
	for _, g := range in.Groups {
		snap.Groups = append(snap.Groups, conflict.Group{
			ID:           g.ID,
			StudentCount: g.StudentCount,
			Career:       g.Career,
			Semester:     g.Semester,
		})
	}
	return detect(snap, in.TermWeeks)
}

// Scan loads the whole stored schedule and evaluates it
func (s *Svc) Scan(ctx context.Context, in domain.ScanInput) (domain.Report, error) {
	events, err := s.Repo.Events(ctx)
	if err != nil {
		return domain.Report{}, perr.FromPostgres(err, "load events")
	}
	teachers, err := s.Repo.Teachers(ctx)
	if err != nil {
		return domain.Report{}, perr.FromPostgres(err, "load teachers")
	}
	rooms, err := s.Repo.Classrooms(ctx)
	if err != nil {
		return domain.Report{}, perr.FromPostgres(err, "load classrooms")
	}
	groups, err := s.Repo.Groups(ctx)
	if err != nil {
		return domain.Report{}, perr.FromPostgres(err, "load groups")
	}

	snap := conflict.Snapshot{
		Events:     make([]conflict.Event, 0, len(events)),
		Teachers:   make([]conflict.Teacher, 0, len(teachers)),
		Classrooms: make([]conflict.Classroom, 0, len(rooms)),
		Groups:     make([]conflict.Group, 0, len(groups)),
	}
	for _, e := range events {
		snap.Events = append(snap.Events, conflict.Event{
			ID:          e.ID,
			GroupID:     e.GroupID,
			TeacherID:   e.TeacherID,
			ClassroomID: e.ClassroomID,
			Day:         dayOf(e.Day),
			Start:       e.StartMin,
			End:         e.EndMin,
			StartWeek:   e.StartWeek,
			EndWeek:     e.EndWeek,
		})
	}
	for _, t := range teachers {
		var ws []domain.WindowInput
		if len(t.AvailabilityJSON) > 0 {
			if err := json.Unmarshal(t.AvailabilityJSON, &ws); err != nil {
				return domain.Report{}, perr.Wrapf(err, perr.ErrorCodeDB, "decode availability for teacher %s", t.ID)
			}
		}
		snap.Teachers = append(snap.Teachers, conflict.Teacher{
			ID:             t.ID,
			MaxWeeklyHours: t.MaxWeeklyHours,
			Specialties:    t.Specialties,
			Availability:   windowsOf(ws),
			Active:         t.Active,
		})
	}
	for _, c := range rooms {
		snap.Classrooms = append(snap.Classrooms, conflict.Classroom{
			ID:       c.ID,
			Capacity: c.Capacity,
			Kind:     conflict.RoomKind(c.Kind),
		})
	}
	for _, g := range groups {
		snap.Groups = append(snap.Groups, conflict.Group{
			ID:           g.ID,
			StudentCount: g.StudentCount,
			Career:       g.CareerID,
			Semester:     g.Semester,
		})
	}
	return detect(snap, in.TermWeeks)
}

func detect(snap conflict.Snapshot, termWeeks int) (domain.Report, error) {
	out, err := conflict.Detect(snap, conflict.Options{TermWeeks: termWeeks})
	if err != nil {
		return domain.Report{}, perr.Wrap(err, perr.ErrorCodeInvalidArgument, "detect conflicts")
	}

	rep := domain.Report{
		Conflicts: make([]domain.Finding, 0, len(out)),
		Totals:    make(map[string]int, 8),
		Total:     len(out),
	}
	for _, c := range out {
		rep.Conflicts = append(rep.Conflicts, domain.Finding{
			Kind:     string(c.Kind),
			Events:   c.Events,
			Resource: c.Resource,
			Message:  c.Message,
		})
		rep.Totals[string(c.Kind)]++
	}
	return rep, nil
}

var days = map[string]conflict.Day{
	"monday":    conflict.Monday,
	"tuesday":   conflict.Tuesday,
	"wednesday": conflict.Wednesday,
	"thursday":  conflict.Thursday,
	"friday":    conflict.Friday,
	"saturday":  conflict.Saturday,
	"sunday":    conflict.Sunday,
}

// dayOf maps a lowercase weekday name to its Day; unknown names map to the
// zero Day, which the detector reports as a data-quality finding
func dayOf(s string) conflict.Day { return days[s] }

func windowsOf(in []domain.WindowInput) []conflict.Window {
	if len(in) == 0 {
		return nil
	}
	out := make([]conflict.Window, 0, len(in))
	for _, w := range in {
		out = append(out, conflict.Window{Day: dayOf(w.Day), Start: w.Start, End: w.End})
	}
	return out
}
