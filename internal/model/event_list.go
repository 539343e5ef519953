package model

import (
	"fmt"
	"sort"
	"time"
)

// An EventList is the list of events of a single day, kept ordered by start
// time.
type EventList struct {
	Events []*Event
}

// AddEvent adds the given event to the list, keeping the list ordered.
// Events with missing times or non-positive length are refused.
func (l *EventList) AddEvent(e *Event) error {
	if e.Start == nil || e.End == nil {
		return fmt.Errorf("refusing to add event '%s' with missing start or end time", e.Name)
	}
	if !e.End.IsAfter(*e.Start) {
		return fmt.Errorf("refusing to add non-positive length event %s", e.String())
	}
	l.Events = append(l.Events, e)
	l.UpdateEventOrder()
	return nil
}

// UpdateEventOrder sorts the list's events.
func (l *EventList) UpdateEventOrder() {
	sort.Sort(ByStartConsideringDuration(l.Events))
}

// Clone returns a deep copy of the event list.
func (l *EventList) Clone() EventList {
	cloned := make([]*Event, len(l.Events))
	for i := range l.Events {
		c := l.Events[i].Clone()
		cloned[i] = &c
	}
	return EventList{Events: cloned}
}

// SumUpByCategory sums up the event durations of the day per category.
// Time cannot be counted multiple times, so if multiple events overlap, only
// one of them can have the time of the overlap counted. The prioritization
// for this is according to category priority.
func (l *EventList) SumUpByCategory() map[CategoryName]time.Duration {
	result := make(map[CategoryName]time.Duration)

	flattened := l.Clone()
	flattened.Flatten()

	for i := range flattened.Events {
		event := flattened.Events[i]
		result[event.Cat.Name] += event.Duration()
	}

	return result
}

// GetTimesheetEntry returns the TimesheetEntry for this day for the matched
// categories (e.g. "work").
func (l *EventList) GetTimesheetEntry(matcher func(CategoryName) bool) (*TimesheetEntry, error) {
	var result TimesheetEntry
	startFound := false
	var lastEnd Timestamp
	var dateOfAllEvents Date

	flattened := l.Clone()
	flattened.Flatten()

	for _, event := range flattened.Events {
		if !matcher(event.Cat.Name) {
			continue
		}

		if !startFound {
			result.Start = *event.Start
			dateOfAllEvents = event.Date
			startFound = true
		} else {
			if event.Date != dateOfAllEvents {
				return nil, fmt.Errorf("events of different days in one timesheet entry")
			}
			result.BreakDuration += lastEnd.DurationUntil(*event.Start)
		}

		lastEnd = *event.End
	}

	if !startFound {
		return &TimesheetEntry{}, nil
	}

	result.End = lastEnd
	return &result, nil
}

// Flatten "flattens" the events of the day, i.e. ensures that no overlapping
// events exist.
// It does this by e.g. trimming one of two overlapping events or splitting a
// less prioritized event if it had a higher-priority event occur during it as
// shown here:
//
//	+-------+         +-------+
//	| a     |         | a     |    (`a` lower prio than `B`)
//	|   +-----+       +-------+
//	|   | B   |  ~~>  | B     |
//	|   +-----+       +-------+
//	|       |         | a     |
//	+-------+         +-------+
//
//	+-------+         +-------+
//	| a     |         | a     |    (`a` lower prio than `B`)
//	|   +-----+       +-------+
//	|   | B   |  ~~>  | B     |
//	+---|     |       |       |
//	    +-----+       +-------+
//
// It modifies the input in-place.
func (l *EventList) Flatten() {
	if len(l.Events) < 2 {
		return
	}

	current := 0
	next := 1

	for current < len(l.Events) && next < len(l.Events) {
		l.UpdateEventOrder()

		currentPrio := l.Events[current].Cat.Priority
		nextPrio := l.Events[next].Cat.Priority

		if l.Events[next].IsContainedIn(l.Events[current]) {
			if nextPrio > currentPrio {
				// clone the current event for the remainder after the next event
				currentRemainder := l.Events[current].Clone()
				currentRemainder.Start = l.Events[next].End

				// trim the current until the next event
				l.Events[current].End = l.Events[next].Start

				// easiest to just append
				if currentRemainder.Duration() > 0 {
					l.Events = append(l.Events, &currentRemainder)
				}

				// if the current now has become zero-length, remove it (in which case
				// we don't need to move the indices), else move the indices one up
				if l.Events[current].Duration() == 0 {
					l.Events = append(l.Events[:current], l.Events[current+1:]...)
				} else {
					current = next
					next++
				}
			} else {
				// if not of higher priority, simply remove
				l.Events = append(l.Events[:next], l.Events[next+1:]...)
			}
		} else if l.Events[next].StartsDuring(l.Events[current]) {
			if nextPrio > currentPrio {
				// trim current
				l.Events[current].End = l.Events[next].Start
				if l.Events[current].Duration() == 0 {
					// remove current
					l.Events = append(l.Events[:current], l.Events[next:]...)
				} else {
					// move on
					current = next
					next++
				}
			} else if l.Events[next].Cat.Name == l.Events[current].Cat.Name {
				// lengthen current, remove next
				l.Events[current].End = l.Events[next].End
				l.Events = append(l.Events[:next], l.Events[next+1:]...)
			} else {
				// shorten next
				l.Events[next].Start = l.Events[current].End
			}
		} else {
			current = next
			next++
		}
	}
}
