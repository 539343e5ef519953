package ics

import (
	"time"

	"github.com/rs/zerolog/log"
	"github.com/teambition/rrule-go"
)

// defaultMaxOccurrences caps per-event recurrence expansion so that an
// unbounded RRULE cannot blow up an import.
const defaultMaxOccurrences = 1000

// An occurrence is one concrete instance of a (possibly recurring) event.
type occurrence struct {
	event vevent
	start time.Time
	end   time.Time
}

// expandEvents turns vevents into concrete occurrences within [rangeStart,
// rangeEnd], expanding RRULEs, dropping EXDATE instances, and applying
// RECURRENCE-ID overrides.
func expandEvents(events []vevent, rangeStart, rangeEnd time.Time, maxOccurrences int) []occurrence {
	if maxOccurrences <= 0 {
		maxOccurrences = defaultMaxOccurrences
	}

	overridesByUID := make(map[string][]vevent)
	baseEvents := make([]vevent, 0, len(events))
	for _, ev := range events {
		if ev.RecurrenceID != nil {
			overridesByUID[ev.UID] = append(overridesByUID[ev.UID], ev)
		} else {
			baseEvents = append(baseEvents, ev)
		}
	}

	result := make([]occurrence, 0)
	for _, ev := range baseEvents {
		if ev.RawRRule == "" {
			if intersects(ev.Start, ev.End, rangeStart, rangeEnd) {
				result = append(result, overridden(ev, ev.Start, ev.End, overridesByUID[ev.UID]))
			}
			continue
		}
		result = append(result, expandRecurring(ev, overridesByUID[ev.UID], rangeStart, rangeEnd, maxOccurrences)...)
	}
	return result
}

func expandRecurring(ev vevent, overrides []vevent, rangeStart, rangeEnd time.Time, maxOccurrences int) []occurrence {
	r, err := rrule.StrToRRule(ev.RawRRule)
	if err != nil {
		log.Warn().Err(err).Str("uid", ev.UID).Str("rrule", ev.RawRRule).
			Msg("skipping event with unparsable RRULE")
		return nil
	}
	r.DTStart(ev.Start)

	var set rrule.Set
	set.RRule(r)
	for _, ex := range ev.ExDates {
		set.ExDate(ex.In(ev.Start.Location()))
	}

	starts := set.Between(rangeStart.In(ev.Start.Location()), rangeEnd.In(ev.Start.Location()), true)
	if len(starts) > maxOccurrences {
		log.Warn().Str("uid", ev.UID).Int("cap", maxOccurrences).
			Msg("recurrence expansion hit the occurrence cap, remainder dropped")
		starts = starts[:maxOccurrences]
	}

	duration := ev.End.Sub(ev.Start)
	result := make([]occurrence, 0, len(starts))
	for _, start := range starts {
		result = append(result, overridden(ev, start, start.Add(duration), overrides))
	}
	return result
}

// overridden returns the occurrence at [start, end], replaced by a matching
// RECURRENCE-ID override if one exists.
func overridden(ev vevent, start, end time.Time, overrides []vevent) occurrence {
	for _, ov := range overrides {
		if ov.RecurrenceID != nil && ov.RecurrenceID.In(start.Location()).Equal(start) {
			return occurrence{event: ov, start: ov.Start, end: ov.End}
		}
	}
	return occurrence{event: ev, start: start, end: end}
}

func intersects(aStart, aEnd, bStart, bEnd time.Time) bool {
	return !aEnd.Before(bStart) && !bEnd.Before(aStart)
}
