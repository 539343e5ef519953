package ics

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/beldram/daygrid/internal/model"
)

func calendar(events ...string) []byte {
	lines := []string{"BEGIN:VCALENDAR", "VERSION:2.0", "PRODID:-//daygrid//test//EN"}
	lines = append(lines, events...)
	lines = append(lines, "END:VCALENDAR", "")
	return []byte(strings.Join(lines, "\r\n"))
}

func ts(hour, minute int) *model.Timestamp {
	return &model.Timestamp{Hour: hour, Minute: minute}
}

var knownCategories = []model.Category{
	{Name: "work", Priority: 2},
	{Name: "health", Priority: 3},
}

func TestImportSingleEvent(t *testing.T) {
	body := calendar(
		"BEGIN:VEVENT",
		"UID:single@test",
		"SUMMARY:Dentist",
		"DTSTART:20211112T090000",
		"DTEND:20211112T100000",
		"CATEGORIES:health",
		"END:VEVENT",
	)
	date := model.Date{Year: 2021, Month: 11, Day: 12}

	result, err := Import(body, date, date, Options{Known: knownCategories})
	if err != nil {
		t.Fatalf("unexpected import error: %s", err)
	}

	expected := []*model.Event{
		{
			Name:  "Dentist",
			Cat:   model.Category{Name: "health", Priority: 3},
			Date:  date,
			Start: ts(9, 0),
			End:   ts(10, 0),
		},
	}
	if !reflect.DeepEqual(result, expected) {
		t.Errorf("imported events wrong:\n got: %#v\nwant: %#v", result, expected)
	}
}

func TestImportCategoryChoice(t *testing.T) {
	body := calendar(
		"BEGIN:VEVENT",
		"UID:unknown-category@test",
		"SUMMARY:Climbing",
		"DTSTART:20211112T180000",
		"DTEND:20211112T200000",
		"CATEGORIES:gym",
		"END:VEVENT",
		"BEGIN:VEVENT",
		"UID:no-category@test",
		"SUMMARY:Errands",
		"DTSTART:20211112T100000",
		"DTEND:20211112T110000",
		"END:VEVENT",
	)
	date := model.Date{Year: 2021, Month: 11, Day: 12}

	{
		testcase := "without an override, unknown names stay bare and absent ones fall back"
		result, err := Import(body, date, date, Options{Known: knownCategories})
		if err != nil {
			t.Fatalf("%s: unexpected import error: %s", testcase, err)
		}
		if len(result) != 2 {
			t.Fatalf("%s: expected 2 events, got %d", testcase, len(result))
		}
		if !reflect.DeepEqual(result[0].Cat, model.Category{Name: "gym"}) {
			t.Errorf("%s: expected bare 'gym' category, got %#v", testcase, result[0].Cat)
		}
		if !reflect.DeepEqual(result[1].Cat, model.Category{Name: "imported"}) {
			t.Errorf("%s: expected fallback 'imported' category, got %#v", testcase, result[1].Cat)
		}
	}

	{
		testcase := "an override wins over calendar categories"
		override := model.Category{Name: "work", Priority: 2}
		result, err := Import(body, date, date, Options{Override: &override, Known: knownCategories})
		if err != nil {
			t.Fatalf("%s: unexpected import error: %s", testcase, err)
		}
		for _, e := range result {
			if !reflect.DeepEqual(e.Cat, override) {
				t.Errorf("%s: expected override category on '%s', got %#v", testcase, e.Name, e.Cat)
			}
		}
	}
}

func TestImportRecurring(t *testing.T) {
	// Daily standup from Nov 8, skipped on the 10th, moved on the 11th.
	body := calendar(
		"BEGIN:VEVENT",
		"UID:standup@test",
		"SUMMARY:Standup",
		"DTSTART:20211108T093000",
		"DTEND:20211108T094500",
		"RRULE:FREQ=DAILY",
		"EXDATE:20211110T093000",
		"CATEGORIES:work",
		"END:VEVENT",
		"BEGIN:VEVENT",
		"UID:standup@test",
		"RECURRENCE-ID:20211111T093000",
		"SUMMARY:Standup (moved)",
		"DTSTART:20211111T110000",
		"DTEND:20211111T111500",
		"CATEGORIES:work",
		"END:VEVENT",
	)
	from := model.Date{Year: 2021, Month: 11, Day: 9}
	til := model.Date{Year: 2021, Month: 11, Day: 12}

	result, err := Import(body, from, til, Options{Known: knownCategories})
	if err != nil {
		t.Fatalf("unexpected import error: %s", err)
	}

	work := model.Category{Name: "work", Priority: 2}
	expected := []*model.Event{
		{Name: "Standup", Cat: work, Date: model.Date{Year: 2021, Month: 11, Day: 9}, Start: ts(9, 30), End: ts(9, 45)},
		{Name: "Standup (moved)", Cat: work, Date: model.Date{Year: 2021, Month: 11, Day: 11}, Start: ts(11, 0), End: ts(11, 15)},
		{Name: "Standup", Cat: work, Date: model.Date{Year: 2021, Month: 11, Day: 12}, Start: ts(9, 30), End: ts(9, 45)},
	}
	if !reflect.DeepEqual(result, expected) {
		t.Errorf("imported events wrong:\n got: %#v\nwant: %#v", result, expected)
	}
}

func TestImportSkipsAllDay(t *testing.T) {
	body := calendar(
		"BEGIN:VEVENT",
		"UID:allday@test",
		"SUMMARY:Public holiday",
		"DTSTART;VALUE=DATE:20211112",
		"DTEND;VALUE=DATE:20211113",
		"END:VEVENT",
	)
	date := model.Date{Year: 2021, Month: 11, Day: 12}

	result, err := Import(body, date, date, Options{Known: knownCategories})
	if err != nil {
		t.Fatalf("unexpected import error: %s", err)
	}
	if len(result) != 0 {
		t.Errorf("expected all-day event to be skipped, got %#v", result)
	}
}

func TestImportSlicesMultiDayEvents(t *testing.T) {
	body := calendar(
		"BEGIN:VEVENT",
		"UID:conference@test",
		"SUMMARY:Conference",
		"DTSTART:20211112T220000",
		"DTEND:20211114T013000",
		"END:VEVENT",
	)
	from := model.Date{Year: 2021, Month: 11, Day: 12}
	til := model.Date{Year: 2021, Month: 11, Day: 14}

	result, err := Import(body, from, til, Options{})
	if err != nil {
		t.Fatalf("unexpected import error: %s", err)
	}

	imported := model.Category{Name: "imported"}
	expected := []*model.Event{
		{Name: "Conference", Cat: imported, Date: from, Start: ts(22, 0), End: ts(23, 59)},
		{Name: "Conference", Cat: imported, Date: model.Date{Year: 2021, Month: 11, Day: 13}, Start: ts(0, 0), End: ts(23, 59)},
		{Name: "Conference", Cat: imported, Date: til, Start: ts(0, 0), End: ts(1, 30)},
	}
	if !reflect.DeepEqual(result, expected) {
		t.Errorf("imported events wrong:\n got: %#v\nwant: %#v", result, expected)
	}
}

func TestImportErrors(t *testing.T) {
	date := model.Date{Year: 2021, Month: 11, Day: 12}

	if _, err := Import([]byte("this is not a calendar"), date, date, Options{}); err == nil {
		t.Error("expected error importing garbage data")
	}
	if _, err := Import(calendar(), date, date.Prev(), Options{}); err == nil {
		t.Error("expected error for inverted import range")
	}
}

func TestSliceIntoDays(t *testing.T) {
	cat := model.Category{Name: "work"}
	day := func(d int) time.Time {
		return time.Date(2021, 11, d, 0, 0, 0, 0, time.Local)
	}

	{
		testcase := "an event ending exactly at midnight stays a single event"
		result := sliceIntoDays("Late", cat, day(12).Add(22*time.Hour), day(13))
		expected := []*model.Event{
			{Name: "Late", Cat: cat, Date: model.Date{Year: 2021, Month: 11, Day: 12}, Start: ts(22, 0), End: ts(23, 59)},
		}
		if !reflect.DeepEqual(result, expected) {
			t.Errorf("%s:\n got: %#v\nwant: %#v", testcase, result, expected)
		}
	}

	{
		testcase := "a zero-length occurrence yields nothing"
		result := sliceIntoDays("Blip", cat, day(12), day(12))
		if len(result) != 0 {
			t.Errorf("%s: got %#v", testcase, result)
		}
	}
}

func TestReadSource(t *testing.T) {
	{
		testcase := "local file"
		file := path.Join(t.TempDir(), "calendar.ics")
		if err := os.WriteFile(file, calendar(), 0644); err != nil {
			t.Fatalf("%s: unexpected error writing fixture: %s", testcase, err)
		}
		data, err := ReadSource(file)
		if err != nil {
			t.Fatalf("%s: unexpected error: %s", testcase, err)
		}
		if !strings.HasPrefix(string(data), "BEGIN:VCALENDAR") {
			t.Errorf("%s: read unexpected data: %q", testcase, string(data))
		}
	}

	{
		testcase := "missing local file"
		if _, err := ReadSource(path.Join(t.TempDir(), "nope.ics")); err == nil {
			t.Errorf("%s: expected error", testcase)
		}
	}

	{
		testcase := "HTTP URL"
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write(calendar())
		}))
		defer server.Close()

		data, err := ReadSource(server.URL)
		if err != nil {
			t.Fatalf("%s: unexpected error: %s", testcase, err)
		}
		if !strings.HasPrefix(string(data), "BEGIN:VCALENDAR") {
			t.Errorf("%s: fetched unexpected data: %q", testcase, string(data))
		}
	}

	{
		testcase := "HTTP error status"
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "go away", http.StatusForbidden)
		}))
		defer server.Close()

		if _, err := ReadSource(server.URL); err == nil {
			t.Errorf("%s: expected error", testcase)
		}
	}
}
