// Package arrange computes day-grid layout plans for events: vertical pixel
// placement derived from their times of day, plus horizontal column
// assignment where events overlap.
//
// Arrangers are generic over the event type; they read only the start and
// end accessors of the Timed constraint, so whatever payload an event
// carries rides along into the plan untouched.
package arrange

import (
	"github.com/rs/zerolog/log"

	"github.com/beldram/daygrid/internal/model"
)

const minutesPerDay = 24 * 60

// Timed is the constraint on arrangeable events: anything exposing nullable
// start and end times of day.
type Timed interface {
	StartTime() *model.Timestamp
	EndTime() *model.Timestamp
}

// An Entry is one box of an arrangement plan.
//
// Vertically it is placed by Top, the pixel offset of the box top from the
// top of the day area, and Bottom, the pixel inset of the box bottom from
// the bottom of the day area.
// Horizontally it occupies the column slot [Left,Right) of the Columns
// total slots of its overlap cluster.
type Entry[E Timed] struct {
	// Events are the member events; merging can gather several into one
	// entry, side-by-side arrangement gives each event its own.
	Events []E

	// Start and End are the entry's interval in normalized minutes, i.e.
	// minutes of day shifted such that the day area begins at zero.
	Start int
	End   int

	Top    float64
	Bottom float64

	Left    int
	Right   int
	Columns int
}

// An Arranger produces the arrangement plan for the events of one day.
//
// totalHeight is the pixel height of the full day area, perMinute the pixel
// height of a single minute, and dayStartHour the hour of day shown at the
// top of the area.
type Arranger[E Timed] interface {
	Arrange(events []E, totalHeight, perMinute float64, dayStartHour int) []Entry[E]
}

// normalizedRange returns the event's interval in normalized minutes.
// Events with a missing time or without positive raw length are dropped
// with a diagnostic; for those ok is false.
func normalizedRange[E Timed](event E, dayStartHour int) (start, end int, ok bool) {
	startTime := event.StartTime()
	endTime := event.EndTime()

	if startTime == nil || endTime == nil {
		log.Warn().Interface("event", event).Msg("dropping event with missing start or end time")
		return 0, 0, false
	}
	if endTime.ToMinutes() <= startTime.ToMinutes() {
		log.Warn().Interface("event", event).
			Str("start", startTime.String()).
			Str("end", endTime.String()).
			Msg("dropping event without positive length")
		return 0, 0, false
	}

	start = normalize(startTime.ToMinutes(), dayStartHour)
	end = normalize(endTime.ToMinutes(), dayStartHour)
	if end == 0 {
		// ends exactly on the wrap boundary, i.e. at the bottom of the area
		end = minutesPerDay
	}
	return start, end, true
}

// normalize shifts minutes of day by the day start hour, wrapping negative
// values around to keep the result in [0,1440).
func normalize(minutes, dayStartHour int) int {
	m := minutes - dayStartHour*60
	if m < 0 {
		m += minutesPerDay
	}
	return m
}

// overlaps returns whether the interval a overlaps the interval b, counting
// touching boundaries as overlap.
func overlaps(aStart, aEnd, bStart, bEnd int) bool {
	return (aStart >= bStart && aStart <= bEnd) ||
		(aEnd >= bStart && aEnd <= bEnd) ||
		(aStart <= bStart && aEnd >= bEnd)
}

// pixelBounds returns the top offset and bottom inset of an interval in
// normalized minutes.
func pixelBounds(start, end int, totalHeight, perMinute float64) (top, bottom float64) {
	top = float64(start) * perMinute
	bottom = totalHeight - float64(end)*perMinute
	return top, bottom
}
