package conflict

import (
	"errors"
	"fmt"
	"sort"
)

// ErrNilCollection is returned when a required snapshot collection is absent
// callers map it to their invalid-argument error surface
var ErrNilCollection = errors.New("conflict: nil snapshot collection")

// Detect evaluates the snapshot against the hard constraints and returns the
// ordered findings. It is pure: no I/O, no mutation of snap, deterministic
// output for a given input. Malformed-but-structurally-valid data never
// errors; it surfaces as data_quality findings in the same list.
func Detect(snap Snapshot, opts Options) ([]Conflict, error) {
	if snap.Events == nil || snap.Teachers == nil || snap.Classrooms == nil || snap.Groups == nil {
		return nil, ErrNilCollection
	}
	termWeeks := opts.TermWeeks
	if termWeeks <= 0 {
		termWeeks = DefaultTermWeeks
	}

	teachers := make(map[string]Teacher, len(snap.Teachers))
	for _, t := range snap.Teachers {
		teachers[t.ID] = t
	}
	rooms := make(map[string]Classroom, len(snap.Classrooms))
	for _, c := range snap.Classrooms {
		rooms[c.ID] = c
	}
	groups := make(map[string]Group, len(snap.Groups))
	for _, g := range snap.Groups {
		groups[g.ID] = g
	}

	var out []Conflict
	emit := func(k Kind, events []string, resource, msg string) {
		out = append(out, Conflict{Kind: k, Events: events, Resource: resource, Message: msg})
	}

	// Dedupe by id keeping the first occurrence, then validate shapes.
	// Events with unusable time or week ranges are reported and excluded
	// from every later check; out-of-term weeks are reported and clamped.
	seen := make(map[string]bool, len(snap.Events))
	events := make([]Event, 0, len(snap.Events))
	for _, ev := range snap.Events {
		if seen[ev.ID] {
			emit(KindDataQuality, []string{ev.ID}, "",
				fmt.Sprintf("duplicate event id %s; first occurrence kept", ev.ID))
			continue
		}
		seen[ev.ID] = true

		if ev.Start >= ev.End {
			emit(KindDataQuality, []string{ev.ID}, "",
				fmt.Sprintf("event %s has inverted time range %s-%s", ev.ID, clock(ev.Start), clock(ev.End)))
			continue
		}
		if ev.StartWeek > ev.EndWeek {
			emit(KindDataQuality, []string{ev.ID}, "",
				fmt.Sprintf("event %s has inverted week range %d-%d", ev.ID, ev.StartWeek, ev.EndWeek))
			continue
		}
		if !ev.Day.Valid() {
			emit(KindDataQuality, []string{ev.ID}, "",
				fmt.Sprintf("event %s has invalid weekday %d", ev.ID, uint8(ev.Day)))
			continue
		}
		if ev.StartWeek < 1 || ev.EndWeek > termWeeks {
			emit(KindDataQuality, []string{ev.ID}, "",
				fmt.Sprintf("event %s weeks %d-%d outside term 1-%d; clamped", ev.ID, ev.StartWeek, ev.EndWeek, termWeeks))
			if ev.StartWeek < 1 {
				ev.StartWeek = 1
			}
			if ev.EndWeek > termWeeks {
				ev.EndWeek = termWeeks
			}
			if ev.StartWeek > ev.EndWeek { // fully outside the term
				continue
			}
		}
		events = append(events, ev)
	}

	// Pairwise double bookings, bucketed by shared resource id so only
	// events that could collide are compared. Identifier equality is what
	// counts here; a dangling id double-books the same (missing) resource.
	pairScan(events, func(ev Event) string { return ev.TeacherID }, func(a, b Event) {
		emit(KindTeacherDoubleBooking, pairIDs(a, b), a.TeacherID,
			fmt.Sprintf("teacher %s booked for events %s and %s on %s %s-%s",
				a.TeacherID, a.ID, b.ID, a.Day, clock(maxInt(a.Start, b.Start)), clock(minInt(a.End, b.End))))
	})
	pairScan(events, func(ev Event) string { return ev.ClassroomID }, func(a, b Event) {
		emit(KindClassroomDoubleBooking, pairIDs(a, b), a.ClassroomID,
			fmt.Sprintf("classroom %s booked for events %s and %s on %s %s-%s",
				a.ClassroomID, a.ID, b.ID, a.Day, clock(maxInt(a.Start, b.Start)), clock(minInt(a.End, b.End))))
	})

	// Per event checks: reference resolution, capacity, availability
	flagged := make(map[string]bool) // one data_quality finding per bad resource
	for _, ev := range events {
		t, tok := teachers[ev.TeacherID]
		switch {
		case !tok:
			emit(KindDanglingReference, []string{ev.ID}, ev.TeacherID,
				fmt.Sprintf("event %s references missing teacher %s", ev.ID, ev.TeacherID))
		case !t.Active:
			emit(KindDanglingReference, []string{ev.ID}, ev.TeacherID,
				fmt.Sprintf("event %s references inactive teacher %s", ev.ID, ev.TeacherID))
		}

		room, rok := rooms[ev.ClassroomID]
		if !rok {
			emit(KindDanglingReference, []string{ev.ID}, ev.ClassroomID,
				fmt.Sprintf("event %s references missing classroom %s", ev.ID, ev.ClassroomID))
		}
		grp, gok := groups[ev.GroupID]
		if !gok {
			emit(KindDanglingReference, []string{ev.ID}, ev.GroupID,
				fmt.Sprintf("event %s references missing group %s", ev.ID, ev.GroupID))
		}

		if rok && gok {
			switch {
			case room.Capacity <= 0:
				if !flagged["room:"+room.ID] {
					flagged["room:"+room.ID] = true
					emit(KindDataQuality, nil, room.ID,
						fmt.Sprintf("classroom %s has non-positive capacity %d", room.ID, room.Capacity))
				}
			case grp.StudentCount < 0:
				if !flagged["group:"+grp.ID] {
					flagged["group:"+grp.ID] = true
					emit(KindDataQuality, nil, grp.ID,
						fmt.Sprintf("group %s has negative student count %d", grp.ID, grp.StudentCount))
				}
			case grp.StudentCount > room.Capacity:
				emit(KindCapacityExceeded, []string{ev.ID}, room.ID,
					fmt.Sprintf("classroom %s capacity %d exceeded by group %s of %d",
						room.ID, room.Capacity, grp.ID, grp.StudentCount))
			}
		}

		// empty availability means no declared constraint
		if tok && t.Active && len(t.Availability) > 0 && !withinAvailability(t.Availability, ev) {
			emit(KindTeacherUnavailable, []string{ev.ID}, t.ID,
				fmt.Sprintf("teacher %s unavailable %s %s-%s", t.ID, ev.Day, clock(ev.Start), clock(ev.End)))
		}
	}

	out = append(out, overloadFindings(events, snap.Teachers, teachers, termWeeks)...)

	sortConflicts(out)
	return out, nil
}

// overlap implements half-open interval intersection on day, weeks, and time
func overlap(a, b Event) bool {
	if a.Day != b.Day {
		return false
	}
	if maxInt(a.StartWeek, b.StartWeek) > minInt(a.EndWeek, b.EndWeek) {
		return false
	}
	return a.Start < b.End && b.Start < a.End
}

// pairScan buckets events by key and invokes hit for every unordered
// overlapping pair sharing that key, ascending by event id
func pairScan(events []Event, key func(Event) string, hit func(a, b Event)) {
	buckets := make(map[string][]Event)
	for _, ev := range events {
		k := key(ev)
		if k == "" {
			continue
		}
		buckets[k] = append(buckets[k], ev)
	}
	keys := make([]string, 0, len(buckets))
	for k := range buckets {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		bucket := buckets[k]
		sort.Slice(bucket, func(i, j int) bool { return bucket[i].ID < bucket[j].ID })
		for i := 0; i < len(bucket); i++ {
			for j := i + 1; j < len(bucket); j++ {
				if overlap(bucket[i], bucket[j]) {
					hit(bucket[i], bucket[j])
				}
			}
		}
	}
}

// withinAvailability reports whether the event sits fully inside any single
// declared window for its day
func withinAvailability(ws []Window, ev Event) bool {
	for _, w := range ws {
		if w.Day == ev.Day && w.Start <= ev.Start && ev.End <= w.End {
			return true
		}
	}
	return false
}

// overloadFindings computes the peak single-week load per teacher.
// "weekly hours" is a per-week cap, so the peak calendar week is what gets
// compared against MaxWeeklyHours; a non-positive cap means no limit.
func overloadFindings(events []Event, order []Teacher, teachers map[string]Teacher, termWeeks int) []Conflict {
	byTeacher := make(map[string][]Event)
	for _, ev := range events {
		byTeacher[ev.TeacherID] = append(byTeacher[ev.TeacherID], ev)
	}

	var out []Conflict
	for _, t := range order {
		if t.MaxWeeklyHours <= 0 {
			continue
		}
		evs := byTeacher[t.ID]
		if len(evs) == 0 {
			continue
		}
		load := make([]int, termWeeks+1) // minutes per week, 1-based
		for _, ev := range evs {
			dur := ev.End - ev.Start
			for w := ev.StartWeek; w <= ev.EndWeek; w++ {
				load[w] += dur
			}
		}
		peakWeek, peakMin := 0, 0
		for w := 1; w <= termWeeks; w++ {
			if load[w] > peakMin {
				peakWeek, peakMin = w, load[w]
			}
		}
		if peakMin <= t.MaxWeeklyHours*60 {
			continue
		}

		ids := make([]string, 0, len(evs))
		for _, ev := range evs {
			if ev.StartWeek <= peakWeek && peakWeek <= ev.EndWeek {
				ids = append(ids, ev.ID)
			}
		}
		sort.Strings(ids)
		out = append(out, Conflict{
			Kind:     KindTeacherOverloaded,
			Events:   ids,
			Resource: t.ID,
			Message: fmt.Sprintf("teacher %s peak weekly load %.1fh in week %d exceeds limit %dh",
				t.ID, float64(peakMin)/60, peakWeek, t.MaxWeeklyHours),
		})
	}
	return out
}

// sortConflicts fixes the output order: kind rank, then event ids, then resource
func sortConflicts(cs []Conflict) {
	sort.SliceStable(cs, func(i, j int) bool {
		a, b := cs[i], cs[j]
		if kindRank[a.Kind] != kindRank[b.Kind] {
			return kindRank[a.Kind] < kindRank[b.Kind]
		}
		for k := 0; k < len(a.Events) && k < len(b.Events); k++ {
			if a.Events[k] != b.Events[k] {
				return a.Events[k] < b.Events[k]
			}
		}
		if len(a.Events) != len(b.Events) {
			return len(a.Events) < len(b.Events)
		}
		return a.Resource < b.Resource
	})
}

func pairIDs(a, b Event) []string {
	if a.ID <= b.ID {
		return []string{a.ID, b.ID}
	}
	return []string{b.ID, a.ID}
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
