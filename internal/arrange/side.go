package arrange

// A SideArranger arranges a day's events into one box per event, packing
// the events of each overlap cluster into side-by-side columns.
//
// It first runs the merge pass to find the clusters, then strip-packs each
// multi-event cluster greedily: fill the first column with as many
// non-conflicting events as it takes (in cluster order), then the next,
// until every event of the cluster has a column.
type SideArranger[E Timed] struct{}

// Arrange produces the side-by-side arrangement plan for the given events.
func (SideArranger[E]) Arrange(events []E, totalHeight, perMinute float64, dayStartHour int) []Entry[E] {
	merged := MergeArranger[E]{}.Arrange(events, totalHeight, perMinute, dayStartHour)

	arranged := make([]Entry[E], 0, len(events))
	for _, entry := range merged {
		if len(entry.Events) == 1 {
			arranged = append(arranged, entry)
			continue
		}
		arranged = append(arranged, packSideBySide(entry, totalHeight, perMinute, dayStartHour)...)
	}
	return arranged
}

// packSideBySide splits a multi-event cluster into one entry per event,
// each assigned a column slot.
//
// The entries' vertical bounds come from the events' own intervals, not the
// cluster envelope; the column count of the cluster is stamped onto every
// entry once packing has determined it.
func packSideBySide[E Timed](cluster Entry[E], totalHeight, perMinute float64, dayStartHour int) []Entry[E] {
	type pendingEvent struct {
		event      E
		start, end int
	}

	pending := make([]pendingEvent, 0, len(cluster.Events))
	for _, event := range cluster.Events {
		start, end, ok := normalizedRange(event, dayStartHour)
		if !ok {
			continue
		}
		pending = append(pending, pendingEvent{event: event, start: start, end: end})
	}

	entries := make([]Entry[E], 0, len(pending))
	column := 1
	i := 0
	for len(pending) > 0 {
		if i >= len(pending) {
			// nothing else fits this column; start the next one at the top of
			// the still-pending list
			column++
			i = 0
			continue
		}

		placed := pending[i]
		pending = append(pending[:i], pending[i+1:]...)

		top, bottom := pixelBounds(placed.start, placed.end, totalHeight, perMinute)
		entries = append(entries, Entry[E]{
			Events: []E{placed.event},
			Start:  placed.start,
			End:    placed.end,
			Top:    top,
			Bottom: bottom,
			Left:   column - 1,
			Right:  column,
		})

		// skip past pending events still conflicting with the column's last
		// placement
		for i < len(pending) && pending[i].start < placed.end {
			i++
		}
	}

	for j := range entries {
		entries[j].Columns = column
	}

	return entries
}
