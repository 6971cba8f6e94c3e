package ics

import (
	"fmt"
	"slices"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/teambition/rrule-go"

	"github.com/javiermolinar/dayline/internal/block"
)

const maxOccurrencesPerEvent = 500

// Expand turns events into the blocks that intersect [from, to). Recurring
// events are expanded with their EXDATEs and RECURRENCE-ID overrides applied.
// All-day and cancelled events are dropped. Blocks are in local time and
// ordered by start.
func Expand(events []Event, from, to time.Time, log *logrus.Entry) ([]block.TimeBlock, error) {
	log = entryOrDiscard(log)
	if to.Before(from) {
		return nil, fmt.Errorf("expand: range end %v before start %v", to, from)
	}

	bases := make(map[string][]Event)
	overrides := make(map[string][]Event)
	var uids []string
	for _, ev := range events {
		if ev.AllDay {
			continue
		}
		if ev.IsOverride && ev.Recurrence != nil {
			overrides[ev.UID] = append(overrides[ev.UID], ev)
			continue
		}
		if _, seen := bases[ev.UID]; !seen {
			uids = append(uids, ev.UID)
		}
		bases[ev.UID] = append(bases[ev.UID], ev)
	}

	out := make([]block.TimeBlock, 0)
	for _, uid := range uids {
		for _, ev := range bases[uid] {
			if ev.RawRRule == "" {
				out = appendOccurrence(out, ev, ev.Start, ev.End, false, from, to)
				continue
			}
			occ, err := expandRecurring(ev, overrides[uid], from, to)
			if err != nil {
				log.WithError(err).WithField("uid", uid).Warn("skipping recurring event")
				continue
			}
			out = append(out, occ...)
		}
	}

	slices.SortStableFunc(out, func(a, b block.TimeBlock) int {
		return a.Start.Compare(b.Start)
	})
	return out, nil
}

func expandRecurring(ev Event, overrides []Event, from, to time.Time) ([]block.TimeBlock, error) {
	r, err := rrule.StrToRRule(ev.RawRRule)
	if err != nil {
		return nil, fmt.Errorf("parsing RRULE %q: %w", ev.RawRRule, err)
	}
	r.DTStart(ev.Start)

	var set rrule.Set
	set.RRule(r)
	for _, ex := range ev.ExDates {
		set.ExDate(ex.In(ev.Start.Location()))
	}

	// Widen the lower bound so an instance already running at from is kept.
	dur := ev.End.Sub(ev.Start)
	loc := ev.Start.Location()
	starts := set.Between(from.Add(-max(dur, 0)).In(loc), to.In(loc), true)
	if len(starts) > maxOccurrencesPerEvent {
		starts = starts[:maxOccurrencesPerEvent]
	}

	out := make([]block.TimeBlock, 0, len(starts))
	for _, start := range starts {
		inst, instStart, instEnd := ev, start, start.Add(dur)
		if o, ok := findOverride(overrides, start); ok {
			inst, instStart, instEnd = o, o.Start, o.End
		}
		out = appendOccurrence(out, inst, instStart, instEnd, true, from, to)
	}
	return out, nil
}

// findOverride returns the override whose RECURRENCE-ID equals start.
func findOverride(overrides []Event, start time.Time) (Event, bool) {
	for _, o := range overrides {
		if o.Recurrence != nil && o.Recurrence.Equal(start) {
			return o, true
		}
	}
	return Event{}, false
}

func appendOccurrence(out []block.TimeBlock, ev Event, start, end time.Time, recurring bool, from, to time.Time) []block.TimeBlock {
	if ev.Status == "CANCELLED" {
		return out
	}
	if !intersects(start, end, from, to) {
		return out
	}

	id := ev.UID
	if recurring {
		id = ev.UID + "@" + start.UTC().Format("20060102T150405Z")
	}

	category := block.ParseCategory(ev.Category)
	color := ev.Color
	if color == "" {
		color = category.DefaultColor()
	}

	return append(out, block.TimeBlock{
		ID:        id,
		Title:     ev.Summary,
		Start:     start.Local(),
		End:       end.Local(),
		Color:     color,
		Completed: ev.Status == "COMPLETED",
		Category:  category,
	})
}

// intersects reports whether [start, end) touches [from, to). Zero-length
// events count when start lies inside the range.
func intersects(start, end, from, to time.Time) bool {
	if !end.After(start) {
		return !start.Before(from) && start.Before(to)
	}
	return start.Before(to) && end.After(from)
}
