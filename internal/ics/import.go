package ics

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/beldram/daygrid/internal/model"
)

// Options controls how calendar data is turned into plan events.
type Options struct {
	// Override, if non-nil, forces all imported events into this category,
	// regardless of what the calendar data claims.
	Override *model.Category

	// Known is the configured category set; CATEGORIES values resolve
	// against it.
	Known []model.Category

	// MaxOccurrences caps per-event recurrence expansion; non-positive
	// values mean the default cap.
	MaxOccurrences int
}

// Import turns an ICS payload into daywise events for the days from from til
// til (both inclusive). Multi-day occurrences are sliced into one event per
// covered day, clamped to 00:00 and 23:59 at the day boundaries. All-day
// events are skipped, as they have no place on an hour grid.
func Import(body []byte, from, til model.Date, opts Options) ([]*model.Event, error) {
	if til.IsBefore(from) {
		return nil, fmt.Errorf("import range end %s is before start %s", til.String(), from.String())
	}

	parsed, err := parseCalendar(body)
	if err != nil {
		return nil, err
	}

	events := make([]vevent, 0, len(parsed))
	for _, ev := range parsed {
		if ev.AllDay {
			log.Warn().Str("uid", ev.UID).Str("summary", ev.Summary).
				Msg("skipping all-day event, it has no place on an hour grid")
			continue
		}
		events = append(events, ev)
	}

	// The expansion range is a day wider on each side so that timezone skew
	// cannot lose boundary occurrences; the authoritative filter is on the
	// sliced events' dates.
	rangeStart := from.Prev().ToGotime()
	rangeEnd := til.Next().Next().ToGotime()

	result := make([]*model.Event, 0)
	for _, occ := range expandEvents(events, rangeStart, rangeEnd, opts.MaxOccurrences) {
		cat := categoryFor(occ.event, opts)
		for _, e := range sliceIntoDays(occ.event.Summary, cat, occ.start, occ.end) {
			if e.Date.IsBefore(from) || e.Date.IsAfter(til) {
				continue
			}
			result = append(result, e)
		}
	}
	return result, nil
}

// categoryFor picks the category for an imported event: a forced override
// first, then the first CATEGORIES value that names a configured category,
// then the first CATEGORIES value as a bare category, then "imported".
func categoryFor(ev vevent, opts Options) model.Category {
	if opts.Override != nil {
		return *opts.Override
	}
	for _, name := range ev.Categories {
		for i := range opts.Known {
			if string(opts.Known[i].Name) == name {
				return opts.Known[i]
			}
		}
	}
	if len(ev.Categories) > 0 {
		return model.Category{Name: model.CategoryName(ev.Categories[0])}
	}
	return model.Category{Name: "imported"}
}

// sliceIntoDays cuts the occurrence [start, end) into per-day events in
// local time. Segments that truncate to zero minutes are dropped.
func sliceIntoDays(summary string, cat model.Category, start, end time.Time) []*model.Event {
	start = start.In(time.Local)
	end = end.In(time.Local)
	if !end.After(start) {
		return nil
	}

	firstDate := model.DateFromGotime(start)
	lastDate := model.DateFromGotime(end)

	result := make([]*model.Event, 0, 1)
	for date := firstDate; !date.IsAfter(lastDate); date = date.Next() {
		dayStart := &model.Timestamp{Hour: 0, Minute: 0}
		dayEnd := &model.Timestamp{Hour: 23, Minute: 59}
		if date == firstDate {
			dayStart = model.NewTimestampFromGotime(start)
		}
		if date == lastDate {
			dayEnd = model.NewTimestampFromGotime(end)
		}
		if dayEnd.ToMinutes() <= dayStart.ToMinutes() {
			continue
		}
		result = append(result, &model.Event{
			Name:  summary,
			Cat:   cat,
			Date:  date,
			Start: dayStart,
			End:   dayEnd,
		})
	}
	return result
}
