package model

import (
	"testing"
)

func TestNewTimestamp(t *testing.T) {
	{
		result, err := NewTimestamp("12:34")
		if err != nil {
			t.Fatalf("parsing '12:34' unexpectedly errored: %s", err)
		}
		if (result != Timestamp{12, 34}) {
			t.Fatalf("parsing '12:34' should give 12:34, but gives '%s'", result.String())
		}
	}

	{
		result, err := NewTimestamp("00:00")
		if err != nil {
			t.Fatalf("parsing '00:00' unexpectedly errored: %s", err)
		}
		if (result != Timestamp{0, 0}) {
			t.Fatalf("parsing '00:00' should give 0:00, but gives '%s'", result.String())
		}
	}

	for _, illegal := range []string{"", "12", "1:30", "12:3", "24:00", "12:60", "ab:cd", "12:34:56"} {
		_, err := NewTimestamp(illegal)
		if err == nil {
			t.Fatalf("parsing illegal timestamp string '%s' should error but does not", illegal)
		}
	}
}

func TestString(t *testing.T) {
	{
		stamp := Timestamp{Hour: 7, Minute: 5}
		if stamp.String() != "07:05" {
			t.Fatalf("Timestamp 7:05 should format as '07:05', but is '%s'", stamp.String())
		}
	}
	{
		stamp := Timestamp{Hour: 23, Minute: 59}
		if stamp.String() != "23:59" {
			t.Fatalf("Timestamp 23:59 should format as '23:59', but is '%s'", stamp.String())
		}
	}
}

func TestToMinutes(t *testing.T) {
	{
		stamp := Timestamp{Hour: 0, Minute: 0}
		if stamp.ToMinutes() != 0 {
			t.Fatalf("Timestamp 0:00 should be 0 minutes, but is %d", stamp.ToMinutes())
		}
	}
	{
		stamp := Timestamp{Hour: 7, Minute: 30}
		if stamp.ToMinutes() != 450 {
			t.Fatalf("Timestamp 7:30 should be 450 minutes, but is %d", stamp.ToMinutes())
		}
	}
	{
		stamp := Timestamp{Hour: 23, Minute: 59}
		if stamp.ToMinutes() != 1439 {
			t.Fatalf("Timestamp 23:59 should be 1439 minutes, but is %d", stamp.ToMinutes())
		}
	}
}

func TestOffset(t *testing.T) {
	{
		stamp := Timestamp{Hour: 10, Minute: 10}
		offset := TimeOffset{Timestamp{0, 0}, true}
		result := stamp.Offset(offset)
		if result != stamp {
			t.Fatalf("Timestamp 10:10 + 0:00 should be 10:10, but is '%s'", result.String())
		}
	}

	{
		stamp := Timestamp{10, 10}
		offset := TimeOffset{Timestamp{1, 0}, true}
		result := stamp.Offset(offset)
		if (result != Timestamp{11, 10}) {
			t.Fatalf("Timestamp 10:10 + 1:00 should be 11:10, but is '%s'", result.String())
		}
	}

	{
		stamp := Timestamp{10, 10}
		offset := TimeOffset{Timestamp{0, 50}, true}
		result := stamp.Offset(offset)
		if (result != Timestamp{11, 00}) {
			t.Fatalf("Timestamp 10:10 + 0:50 should be 11:00, but is '%s'", result.String())
		}
	}

	{
		stamp := Timestamp{0, 10}
		offset := TimeOffset{Timestamp{1, 0}, false}
		result := stamp.Offset(offset)
		if (result != Timestamp{23, 10}) {
			t.Fatalf("Timestamp 0:10 - 1:00 should be 23:10, but is '%s'", result.String())
		}
	}

	{
		stamp := Timestamp{23, 10}
		offset := TimeOffset{Timestamp{1, 0}, true}
		result := stamp.Offset(offset)
		if (result != Timestamp{0, 10}) {
			t.Fatalf("Timestamp 23:10 + 1:00 should be 0:10, but is '%s'", result.String())
		}
	}

	{
		stamp := Timestamp{1, 30}
		offset := TimeOffset{Timestamp{2, 40}, false}
		result := stamp.Offset(offset)
		if (result != Timestamp{22, 50}) {
			t.Fatalf("Timestamp 1:30 - 2:40 should be 22:50, but is '%s'", result.String())
		}
	}
}

func TestOffsetMinutes(t *testing.T) {
	{
		stamp := Timestamp{Hour: 10, Minute: 10}
		result := stamp.OffsetMinutes(75)
		if (result != Timestamp{11, 25}) {
			t.Fatalf("Timestamp 10:10 + 75min should be 11:25, but is '%s'", result.String())
		}
	}
	{
		stamp := Timestamp{Hour: 10, Minute: 10}
		result := stamp.OffsetMinutes(-75)
		if (result != Timestamp{8, 55}) {
			t.Fatalf("Timestamp 10:10 - 75min should be 08:55, but is '%s'", result.String())
		}
	}
}

func TestSnap(t *testing.T) {
	{
		stamp := Timestamp{Hour: 12, Minute: 7}
		result := stamp.Snap(15)
		if (result != Timestamp{12, 0}) {
			t.Fatalf("Timestamp 12:07 snapped to 15 minutes should be 12:00, but is '%s'", result.String())
		}
	}
	{
		stamp := Timestamp{Hour: 12, Minute: 8}
		result := stamp.Snap(15)
		if (result != Timestamp{12, 15}) {
			t.Fatalf("Timestamp 12:08 snapped to 15 minutes should be 12:15, but is '%s'", result.String())
		}
	}
}

func TestDurationInMinutesUntil(t *testing.T) {
	{
		a := Timestamp{Hour: 10, Minute: 0}
		b := Timestamp{Hour: 11, Minute: 30}
		if a.DurationInMinutesUntil(b) != 90 {
			t.Fatalf("duration from 10:00 until 11:30 should be 90 minutes, but is %d", a.DurationInMinutesUntil(b))
		}
	}
}
