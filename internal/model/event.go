package model

import (
	"fmt"
	"strings"
	"time"
)

// An Event is a named, categorized occurrence on a day, from a start time to
// an end time.
//
// Start and end are nullable; events with missing times can be constructed
// and handed to consumers that tolerate them (the arrangers drop them with a
// diagnostic), but they cannot enter an EventList.
type Event struct {
	Name  string
	Cat   Category
	Date  Date
	Start *Timestamp
	End   *Timestamp
}

// StartTime returns the event's start time of day, which may be nil.
func (e *Event) StartTime() *Timestamp { return e.Start }

// EndTime returns the event's end time of day, which may be nil.
func (e *Event) EndTime() *Timestamp { return e.End }

// Duration returns the duration of the event.
func (e *Event) Duration() time.Duration {
	return e.Start.DurationUntil(*e.End)
}

// Clone returns a deep copy of the event.
func (e *Event) Clone() Event {
	result := Event{
		Name: e.Name,
		Cat:  e.Cat,
		Date: e.Date,
	}
	if e.Start != nil {
		start := *e.Start
		result.Start = &start
	}
	if e.End != nil {
		end := *e.End
		result.End = &end
	}
	return result
}

// String returns the event as a day-file line, i.e.
// "HH:MM|HH:MM|<category>|<name>".
// The date is not part of the line; day files are per-date.
func (e *Event) String() string {
	return fmt.Sprintf("%s|%s|%s|%s", e.Start, e.End, e.Cat.Name, e.Name)
}

// NewEventFromDaywiseFileLine parses a day-file line
// ("HH:MM|HH:MM|<category>|<name>") into an event on the given date.
// The category is carried by name only; resolving it against known
// categories is the reader's business.
func NewEventFromDaywiseFileLine(date Date, line string) (*Event, error) {
	args := strings.SplitN(line, "|", 4)
	if len(args) != 4 {
		return nil, fmt.Errorf("line does not have four '|'-separated fields")
	}

	start, err := NewTimestamp(args[0])
	if err != nil {
		return nil, fmt.Errorf("could not parse start time (%w)", err)
	}
	end, err := NewTimestamp(args[1])
	if err != nil {
		return nil, fmt.Errorf("could not parse end time (%w)", err)
	}

	return &Event{
		Name:  args[3],
		Cat:   Category{Name: CategoryName(args[2])},
		Date:  date,
		Start: &start,
		End:   &end,
	}, nil
}

// ByStartConsideringDuration sorts events by start time, and (for equal
// starts) the longer event first.
type ByStartConsideringDuration []*Event

func (a ByStartConsideringDuration) Len() int      { return len(a) }
func (a ByStartConsideringDuration) Swap(i, j int) { a[i], a[j] = a[j], a[i] }
func (a ByStartConsideringDuration) Less(i, j int) bool {
	secondStartsLater := a[j].Start.IsAfter(*a[i].Start)
	sameStart := *a[i].Start == *a[j].Start
	secondEndsEarlier := a[i].End.IsAfter(*a[j].End)

	return secondStartsLater || (sameStart && secondEndsEarlier)
}

// IsContainedIn returns whether one event B is contained in another A, i.e.
//   - B's start is _not before_ A's start and
//   - B's end is _not after_ A's end
func (b *Event) IsContainedIn(a *Event) bool {
	return b.StartsDuring(a) &&
		!(b.End.IsAfter(*a.End))
}

// StartsDuring returns whether one event B starts during another A.
func (b *Event) StartsDuring(a *Event) bool {
	if a.Start.IsAfter(*b.Start) {
		return false
	}

	return a.End.IsAfter(*b.Start)
}
