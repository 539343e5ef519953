package model

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// A Timestamp is a time of day, with minute granularity.
type Timestamp struct {
	Hour, Minute int
}

// NewTimestampFromGotime returns the timestamp for the time-of-day of the
// given time.Time.
func NewTimestampFromGotime(time time.Time) *Timestamp {
	t := Timestamp{}
	t.Hour = time.Hour()
	t.Minute = time.Minute()
	return &t
}

// NewTimestamp converts a string in "HH:MM" format to a Timestamp.
func NewTimestamp(s string) (Timestamp, error) {
	components := strings.Split(s, ":")
	if len(components) != 2 {
		return Timestamp{}, fmt.Errorf("given string '%s' does not fit the HH:MM format", s)
	}
	hStr := components[0]
	mStr := components[1]
	if len(hStr) != 2 || len(mStr) != 2 {
		return Timestamp{}, fmt.Errorf("given string '%s' does not fit the HH:MM format", s)
	}
	h, err := strconv.Atoi(hStr)
	if err != nil {
		return Timestamp{}, fmt.Errorf("error converting hour string '%s' to a number (%w)", hStr, err)
	}
	m, err := strconv.Atoi(mStr)
	if err != nil {
		return Timestamp{}, fmt.Errorf("error converting minute string '%s' to a number (%w)", mStr, err)
	}
	t := Timestamp{h, m}
	if !t.Legal() {
		return Timestamp{}, fmt.Errorf("one of the values yielded by string '%s' is illegal (%d) (%d)", s, h, m)
	}
	return t, nil
}

// String returns the timestamp in its "HH:MM" format.
func (t Timestamp) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

// A TimeOffset is a Timestamp plus a direction, to offset other timestamps
// by.
type TimeOffset struct {
	T   Timestamp
	Add bool
}

// IsBefore returns whether a timestamp A is before a timestamp B.
func (t Timestamp) IsBefore(other Timestamp) bool {
	if other.Hour > t.Hour {
		return true
	} else if other.Hour == t.Hour {
		return other.Minute > t.Minute
	} else {
		return false
	}
}

// IsAfter returns whether a timestamp A is after a timestamp B.
func (t Timestamp) IsAfter(other Timestamp) bool {
	if t.Hour > other.Hour {
		return true
	} else if t.Hour == other.Hour {
		return t.Minute > other.Minute
	} else {
		return false
	}
}

// Snap returns the closest timestamp of the given minute granularity, e.g.
// 12:07 snapped to a granularity of 15 minutes is 12:00.
func (t Timestamp) Snap(minutesModulus int) Timestamp {
	minutes := t.ToMinutes()

	before := minutes - minutes%minutesModulus
	after := before + minutesModulus

	var resultMinutes int
	if after-minutes <= minutes-before {
		resultMinutes = after
	} else {
		resultMinutes = before
	}

	return Timestamp{
		Hour:   resultMinutes / 60,
		Minute: resultMinutes % 60,
	}
}

// Legal returns whether the timestamp describes a valid time of day.
func (t Timestamp) Legal() bool {
	return (t.Hour < 24 && t.Minute < 60) && (t.Hour >= 0 && t.Minute >= 0)
}

// OffsetMinutes returns a timestamp offset by the given number of minutes,
// which may be negative.
func (t Timestamp) OffsetMinutes(minutes int) Timestamp {
	o := TimeOffset{}
	if minutes < 0 {
		o.Add = false
		minutes *= (-1)
	} else {
		o.Add = true
	}
	o.T.Hour = minutes / 60
	o.T.Minute = minutes % 60

	return t.Offset(o)
}

// Offset returns a timestamp offset by a given offset, which can be additive
// or subtractive.
// "Loops around", meaning offsetting 0:10 by -1 hour results in 23:10,
// offsetting 23:10 by +1 hour results in 0:10.
func (t Timestamp) Offset(o TimeOffset) Timestamp {
	if o.Add {
		t.Hour = (t.Hour + o.T.Hour + ((t.Minute + o.T.Minute) / 60)) % 24
		t.Minute = (t.Minute + o.T.Minute) % 60
	} else {
		extraHour := 0
		if t.Minute-o.T.Minute < 0 {
			extraHour = 1
		}
		t.Hour = (t.Hour - o.T.Hour - extraHour + 24) % 24
		t.Minute = (t.Minute - o.T.Minute + 60) % 60
	}
	return t
}

// DurationInMinutesUntil returns the duration in minutes until a given
// timestamp t2.
// Does not check that t2 is in fact later!
func (t Timestamp) DurationInMinutesUntil(t2 Timestamp) int {
	return t2.ToMinutes() - t.ToMinutes()
}

// DurationUntil returns the duration (time.Duration) until a given timestamp
// t2.
// Does not check that t2 is in fact later!
func (t Timestamp) DurationUntil(t2 Timestamp) time.Duration {
	return time.Duration(t.DurationInMinutesUntil(t2)) * time.Minute
}

// ToMinutes returns the number of minutes into the day (from 00:00) that
// this timestamp is.
func (t Timestamp) ToMinutes() int {
	return t.Hour*60 + t.Minute
}
