package model

import (
	"fmt"
	"time"

	"github.com/beldram/daygrid/internal/config"
)

// Goal defines a time goal.
// It can be queried, for any given date, what duration the goal requires.
type Goal interface {
	Requires(Date) time.Duration
}

// RangedGoal is a Goal that is defined by any number of ranges and the
// expected duration for each.
type RangedGoal struct {
	Entries []rangedGoalEntry
}

// rangedGoalEntry is an expected total duration over a bounded period of
// time.
type rangedGoalEntry struct {
	Start Date
	End   Date
	Time  time.Duration
}

// Requires returns the duration required for the given date.
//
// It is (Time / DAYSINRANGE(Start, End)) for any day in range, 0 otherwise.
func (g *RangedGoal) Requires(date Date) time.Duration {
	for _, e := range g.Entries {
		if !date.IsBefore(e.Start) && !date.IsAfter(e.End) {
			return e.Time / time.Duration(e.Start.DaysUntil(e.End)+1)
		}
	}

	return 0
}

// NewRangedGoalFromConfig constructs a new RangedGoal from config data.
func NewRangedGoalFromConfig(cfg []config.RangedGoal) (*RangedGoal, error) {
	result := RangedGoal{}

	for i := range cfg {
		start, err := FromString(cfg[i].Start)
		if err != nil {
			return nil, fmt.Errorf("error parsing start date of range no. %d (%w)", i, err)
		}
		end, err := FromString(cfg[i].End)
		if err != nil {
			return nil, fmt.Errorf("error parsing end date of range no. %d (%w)", i, err)
		}
		duration, err := time.ParseDuration(cfg[i].Time)
		if err != nil {
			return nil, fmt.Errorf("error parsing duration of range no. %d (%w)", i, err)
		}

		for j := range result.Entries {
			skipsOver := start.IsAfter(result.Entries[j].End) && end.IsAfter(result.Entries[j].End)
			fallsShort := start.IsBefore(result.Entries[j].Start) && end.IsBefore(result.Entries[j].Start)
			if !skipsOver && !fallsShort {
				return nil, fmt.Errorf("range no. %d defined overlaps with range no. %d", i, j)
			}
		}

		result.Entries = append(result.Entries, rangedGoalEntry{
			Start: start,
			End:   end,
			Time:  duration,
		})
	}

	return &result, nil
}

// WorkweekGoal is a goal that defines the duration per day of the week.
type WorkweekGoal struct {
	Monday    time.Duration
	Tuesday   time.Duration
	Wednesday time.Duration
	Thursday  time.Duration
	Friday    time.Duration
	Saturday  time.Duration
	Sunday    time.Duration
}

// Requires returns the duration required for the given date.
//
// It is just the duration defined for the date's weekday.
func (g *WorkweekGoal) Requires(date Date) time.Duration {
	switch date.ToWeekday() {
	case time.Monday:
		return g.Monday
	case time.Tuesday:
		return g.Tuesday
	case time.Wednesday:
		return g.Wednesday
	case time.Thursday:
		return g.Thursday
	case time.Friday:
		return g.Friday
	case time.Saturday:
		return g.Saturday
	case time.Sunday:
		return g.Sunday
	default:
		panic(fmt.Sprintf("unknown weekday %d", date.ToWeekday()))
	}
}

// NewWorkweekGoalFromConfig constructs a new WorkweekGoal from config data.
func NewWorkweekGoalFromConfig(cfg config.WorkweekGoal) (*WorkweekGoal, error) {
	parse := func(dayName, value string) (time.Duration, error) {
		if value == "" {
			return 0, nil
		}
		duration, err := time.ParseDuration(value)
		if err != nil {
			return 0, fmt.Errorf("error parsing duration for %s (%w)", dayName, err)
		}
		return duration, nil
	}

	result := WorkweekGoal{}
	for _, day := range []struct {
		name  string
		value string
		into  *time.Duration
	}{
		{"monday", cfg.Monday, &result.Monday},
		{"tuesday", cfg.Tuesday, &result.Tuesday},
		{"wednesday", cfg.Wednesday, &result.Wednesday},
		{"thursday", cfg.Thursday, &result.Thursday},
		{"friday", cfg.Friday, &result.Friday},
		{"saturday", cfg.Saturday, &result.Saturday},
		{"sunday", cfg.Sunday, &result.Sunday},
	} {
		duration, err := parse(day.name, day.value)
		if err != nil {
			return nil, err
		}
		*day.into = duration
	}

	return &result, nil
}

// GoalForRange is a helper to sum up the duration for the given range
// expected by the given Goal.
func GoalForRange(goal Goal, startDate, endDate Date) time.Duration {
	sum := time.Duration(0)

	currentDate := startDate
	for currentDate != endDate.Next() {
		sum += goal.Requires(currentDate)
		currentDate = currentDate.Next()
	}

	return sum
}
