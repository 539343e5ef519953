// Package ics imports events from iCalendar data into daywise plan events.
package ics

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	ical "github.com/arran4/golang-ical"
	"github.com/rs/zerolog/log"
)

// A vevent is the normalized representation of a parsed VEVENT, before
// recurrence expansion.
type vevent struct {
	UID     string
	Summary string

	Start  time.Time
	End    time.Time
	AllDay bool

	Categories []string

	RawRRule     string
	ExDates      []time.Time
	RecurrenceID *time.Time
}

// parseCalendar parses an ICS payload into vevents. Individual events that
// cannot be parsed are skipped with a diagnostic.
func parseCalendar(body []byte) ([]vevent, error) {
	if len(body) == 0 {
		return nil, fmt.Errorf("empty ICS data")
	}

	cal, err := ical.ParseCalendar(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("could not parse ICS data (%w)", err)
	}

	events := make([]vevent, 0)
	for _, ve := range cal.Events() {
		parsed, err := parseVEvent(ve)
		if err != nil {
			log.Warn().Err(err).Msg("skipping unusable VEVENT")
			continue
		}
		events = append(events, parsed)
	}
	return events, nil
}

func parseVEvent(ve *ical.VEvent) (vevent, error) {
	var out vevent

	uid := ve.GetProperty(ical.ComponentPropertyUniqueId)
	if uid == nil || uid.Value == "" {
		return out, fmt.Errorf("VEVENT has no UID")
	}
	out.UID = uid.Value

	if p := ve.GetProperty(ical.ComponentPropertySummary); p != nil {
		out.Summary = p.Value
	}

	// All-day events carry a date-only DTSTART (VALUE=DATE or no time part).
	if p := ve.GetProperty(ical.ComponentPropertyDtStart); p != nil {
		if values, ok := p.ICalParameters["VALUE"]; ok && len(values) > 0 && strings.EqualFold(values[0], "DATE") {
			out.AllDay = true
		}
		if !strings.Contains(p.Value, "T") {
			out.AllDay = true
		}
	}

	start, err := ve.GetStartAt()
	if err != nil && !out.AllDay {
		return out, fmt.Errorf("could not get start time (%w)", err)
	}
	out.Start = start

	end, err := ve.GetEndAt()
	if err != nil && !out.AllDay {
		return out, fmt.Errorf("could not get end time (%w)", err)
	}
	out.End = end

	if !out.AllDay && !out.End.After(out.Start) {
		return out, fmt.Errorf("event ends at or before its start (%s, %s)", out.Start, out.End)
	}

	// CATEGORIES is a comma-separated list and may appear multiple times.
	// Raw property names where the library's constants have variants.
	for _, p := range ve.GetProperties("CATEGORIES") {
		for _, name := range strings.Split(p.Value, ",") {
			if name = strings.TrimSpace(name); name != "" {
				out.Categories = append(out.Categories, name)
			}
		}
	}

	if p := ve.GetProperty(ical.ComponentPropertyRrule); p != nil {
		out.RawRRule = p.Value
	}

	for _, p := range ve.GetProperties(ical.ComponentPropertyExdate) {
		for _, part := range strings.Split(p.Value, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			t, err := parseICSDateTime(part)
			if err != nil {
				log.Warn().Str("uid", out.UID).Str("exdate", part).Msg("ignoring unparsable EXDATE")
				continue
			}
			out.ExDates = append(out.ExDates, t)
		}
	}

	if p := ve.GetProperty("RECURRENCE-ID"); p != nil {
		t, err := parseICSDateTime(p.Value)
		if err != nil {
			return out, fmt.Errorf("could not parse RECURRENCE-ID '%s' (%w)", p.Value, err)
		}
		out.RecurrenceID = &t
	}

	return out, nil
}

// parseICSDateTime parses the basic ICS date/date-time forms, for properties
// (EXDATE, RECURRENCE-ID) where the library hands us only the raw value.
func parseICSDateTime(v string) (time.Time, error) {
	switch {
	case strings.HasSuffix(v, "Z"):
		return time.Parse("20060102T150405Z", v)
	case strings.Contains(v, "T"):
		return time.ParseInLocation("20060102T150405", v, time.Local)
	default:
		return time.ParseInLocation("20060102", v, time.Local)
	}
}
