package model

import (
	"log"
	"testing"
	"time"
)

func TestToWeekday(t *testing.T) {
	{
		date := Date{2021, 11, 12}
		expected := time.Friday
		result := date.ToWeekday()
		if result != expected {
			log.Fatalf("%s should be weekday %s not %s", date.String(), expected.String(), result.String())
		}
	}
}

func TestWeek(t *testing.T) {
	{
		date := Date{2021, 11, 12}
		expStart, expEnd := Date{2021, 11, 8}, Date{2021, 11, 14}
		resStart, resEnd := date.Week()
		if resStart != expStart || resEnd != expEnd {
			log.Fatalf("%s is bounded by (%s,%s) not (%s,%s)", date.String(), expStart.String(), expEnd.String(), resStart.String(), resEnd.String())
		}
	}
	{
		testcase := "week spanning a month boundary"
		date := Date{2021, 11, 30}
		expStart, expEnd := Date{2021, 11, 29}, Date{2021, 12, 5}
		resStart, resEnd := date.Week()
		if resStart != expStart || resEnd != expEnd {
			log.Fatalf("[testcase '%s' failed]: %s is bounded by (%s,%s) not (%s,%s)", testcase, date.String(), expStart.String(), expEnd.String(), resStart.String(), resEnd.String())
		}
	}
}

func TestMonthBounds(t *testing.T) {
	{
		testcase := "in 30 day month"

		date := Date{
			Year:  2021,
			Month: 11,
			Day:   12,
		}

		expStart, expEnd := Date{2021, 11, 1}, Date{2021, 11, 30}
		resStart, resEnd := date.MonthBounds()
		if resStart != expStart || resEnd != expEnd {
			log.Fatalf("[testcase '%s' failed]: %s is bounded by (%s,%s) not (%s,%s)", testcase, date.String(), expStart.String(), expEnd.String(), resStart.String(), resEnd.String())
		}
	}
	{
		testcase := "in 31 day month"

		date := Date{
			Year:  2021,
			Month: 12,
			Day:   14,
		}

		expStart, expEnd := Date{2021, 12, 1}, Date{2021, 12, 31}
		resStart, resEnd := date.MonthBounds()
		if resStart != expStart || resEnd != expEnd {
			log.Fatalf("[testcase '%s' failed]: %s is bounded by (%s,%s) not (%s,%s)", testcase, date.String(), expStart.String(), expEnd.String(), resStart.String(), resEnd.String())
		}
	}
	{
		testcase := "in february"

		date := Date{
			Year:  2021,
			Month: 2,
			Day:   4,
		}

		expStart, expEnd := Date{2021, 2, 1}, Date{2021, 2, 28}
		resStart, resEnd := date.MonthBounds()
		if resStart != expStart || resEnd != expEnd {
			log.Fatalf("[testcase '%s' failed]: %s is bounded by (%s,%s) not (%s,%s)", testcase, date.String(), expStart.String(), expEnd.String(), resStart.String(), resEnd.String())
		}
	}
	{
		testcase := "in february in leap year"

		date := Date{
			Year:  2004,
			Month: 2,
			Day:   4,
		}

		expStart, expEnd := Date{2004, 2, 1}, Date{2004, 2, 29}
		resStart, resEnd := date.MonthBounds()
		if resStart != expStart || resEnd != expEnd {
			log.Fatalf("[testcase '%s' failed]: %s is bounded by (%s,%s) not (%s,%s)", testcase, date.String(), expStart.String(), expEnd.String(), resStart.String(), resEnd.String())
		}
	}
}

func TestPrevNext(t *testing.T) {
	{
		testcase := "mid-month"
		if res := (Date{2021, 11, 12}).Next(); res != (Date{2021, 11, 13}) {
			log.Fatalf("[testcase '%s' failed]: got %s", testcase, res.String())
		}
		if res := (Date{2021, 11, 12}).Prev(); res != (Date{2021, 11, 11}) {
			log.Fatalf("[testcase '%s' failed]: got %s", testcase, res.String())
		}
	}
	{
		testcase := "across month end"
		if res := (Date{2021, 11, 30}).Next(); res != (Date{2021, 12, 1}) {
			log.Fatalf("[testcase '%s' failed]: got %s", testcase, res.String())
		}
		if res := (Date{2021, 12, 1}).Prev(); res != (Date{2021, 11, 30}) {
			log.Fatalf("[testcase '%s' failed]: got %s", testcase, res.String())
		}
	}
	{
		testcase := "across year end"
		if res := (Date{2021, 12, 31}).Next(); res != (Date{2022, 1, 1}) {
			log.Fatalf("[testcase '%s' failed]: got %s", testcase, res.String())
		}
		if res := (Date{2022, 1, 1}).Prev(); res != (Date{2021, 12, 31}) {
			log.Fatalf("[testcase '%s' failed]: got %s", testcase, res.String())
		}
	}
	{
		testcase := "across leap february end"
		if res := (Date{2004, 2, 28}).Next(); res != (Date{2004, 2, 29}) {
			log.Fatalf("[testcase '%s' failed]: got %s", testcase, res.String())
		}
		if res := (Date{2004, 3, 1}).Prev(); res != (Date{2004, 2, 29}) {
			log.Fatalf("[testcase '%s' failed]: got %s", testcase, res.String())
		}
	}
}

func TestForwardBackward(t *testing.T) {
	{
		if res := (Date{2021, 11, 12}).Forward(7); res != (Date{2021, 11, 19}) {
			log.Fatalf("forward by a week gave %s", res.String())
		}
		if res := (Date{2021, 11, 12}).Backward(12); res != (Date{2021, 10, 31}) {
			log.Fatalf("backward across the month end gave %s", res.String())
		}
		if res := (Date{2021, 11, 12}).Forward(0); res != (Date{2021, 11, 12}) {
			log.Fatalf("forward by nothing gave %s", res.String())
		}
	}
}

func TestDaysUntil(t *testing.T) {
	{
		a, b := Date{2021, 12, 14}, Date{2021, 12, 19}
		expected := 5
		result := a.DaysUntil(b)
		if result != expected {
			log.Fatalf("%s until %s should be %d days, not %d", a.String(), b.String(), expected, result)
		}
	}
	{
		a := Date{2021, 12, 14}
		if result := a.DaysUntil(a); result != 0 {
			log.Fatalf("%s until itself should be 0 days, not %d", a.String(), result)
		}
	}
}

func TestDateFromString(t *testing.T) {
	{
		testcase := "valid dates"
		for str, expected := range map[string]Date{
			"2021-11-12": {2021, 11, 12},
			"2004-02-29": {2004, 2, 29},
			"1999-01-01": {1999, 1, 1},
		} {
			result, err := FromString(str)
			if err != nil {
				t.Fatalf("[testcase '%s' failed]: unexpected error for '%s': %s", testcase, str, err)
			}
			if result != expected {
				t.Fatalf("[testcase '%s' failed]: '%s' gave %s", testcase, str, result.String())
			}
		}
	}
	{
		testcase := "illegal dates"
		for _, str := range []string{
			"",
			"2021-11",
			"12.11.2021",
			"2021-13-01",
			"2021-02-29",
			"2021-11-00",
			"2021-11-31",
		} {
			if _, err := FromString(str); err == nil {
				t.Fatalf("[testcase '%s' failed]: expected error for '%s'", testcase, str)
			}
		}
	}
}

func TestIsAfterIsBefore(t *testing.T) {
	{
		a, b := Date{2021, 11, 12}, Date{2021, 11, 13}
		if a.IsAfter(b) || !b.IsAfter(a) {
			t.Fatal("expected day order within month")
		}
		if !a.IsBefore(b) || b.IsBefore(a) {
			t.Fatal("expected day order within month")
		}
	}
	{
		a, b := Date{2021, 12, 31}, Date{2022, 1, 1}
		if a.IsAfter(b) || !b.IsAfter(a) {
			t.Fatal("expected day order across years")
		}
	}
	{
		a := Date{2021, 11, 12}
		if a.IsAfter(a) || a.IsBefore(a) {
			t.Fatal("a date is neither before nor after itself")
		}
	}
}
