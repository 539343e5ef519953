package arrange

// A MergeArranger arranges a day's events into one box per cluster of
// overlapping events.
//
// Each event either founds a new entry or is folded into the first existing
// entry its interval overlaps, widening that entry's envelope to the union
// of the two intervals. Clusters thereby grow transitively: an event that
// overlaps no original member still joins a cluster whose envelope has been
// stretched over its interval by an earlier merge.
type MergeArranger[E Timed] struct{}

// Arrange produces the merged arrangement plan for the given events.
//
// Events are considered in input order, and the first overlapping entry (in
// output order) wins a merge. Events with a missing time or without
// positive length are dropped with a diagnostic. All produced entries span
// the single column 0..1.
func (MergeArranger[E]) Arrange(events []E, totalHeight, perMinute float64, dayStartHour int) []Entry[E] {
	entries := make([]Entry[E], 0, len(events))

	for _, event := range events {
		start, end, ok := normalizedRange(event, dayStartHour)
		if !ok {
			continue
		}

		merged := false
		for i := range entries {
			if overlaps(start, end, entries[i].Start, entries[i].End) {
				entry := &entries[i]
				if start < entry.Start {
					entry.Start = start
				}
				if end > entry.End {
					entry.End = end
				}
				// entries are stored wrap-free, so widening one to the union
				// envelope cannot produce an inverted interval
				entry.Top, entry.Bottom = pixelBounds(entry.Start, entry.End, totalHeight, perMinute)
				entry.Events = append(entry.Events, event)
				merged = true
				break
			}
		}
		if merged {
			continue
		}

		if end < start {
			// the interval wrapped past the bottom of the area when it was
			// shifted by the day start hour; it becomes two boxes referencing
			// the same event
			entries = append(entries,
				newMergedEntry(event, start, minutesPerDay, totalHeight, perMinute),
				newMergedEntry(event, 0, end, totalHeight, perMinute))
		} else {
			entries = append(entries,
				newMergedEntry(event, start, end, totalHeight, perMinute))
		}
	}

	return entries
}

func newMergedEntry[E Timed](event E, start, end int, totalHeight, perMinute float64) Entry[E] {
	top, bottom := pixelBounds(start, end, totalHeight, perMinute)
	return Entry[E]{
		Events:  []E{event},
		Start:   start,
		End:     end,
		Top:     top,
		Bottom:  bottom,
		Left:    0,
		Right:   1,
		Columns: 1,
	}
}
