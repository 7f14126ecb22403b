package datetime

import (
	"github.com/mailru/chrono/pkg/duration"
)

// DateTime is a calendar date paired with a wall-clock time, free of
// any offset or zone. Values are comparable with ==.
type DateTime struct {
	date Date
	time Time
}

var (
	MinDateTime = DateTime{date: MinDate}
	MaxDateTime = DateTime{date: MaxDate, time: MaxTime}
)

// NewDateTime pairs a date with a time of day.
func NewDateTime(date Date, tm Time) DateTime {
	return DateTime{date: date, time: tm}
}

func (dt DateTime) Date() Date { return dt.date }
func (dt DateTime) Time() Time { return dt.time }

func (dt DateTime) Year() int32      { return dt.date.Year() }
func (dt DateTime) Month() Month     { return dt.date.Month() }
func (dt DateTime) Day() uint8       { return dt.date.Day() }
func (dt DateTime) Ordinal() uint16  { return dt.date.Ordinal() }
func (dt DateTime) Weekday() Weekday { return dt.date.Weekday() }

func (dt DateTime) Hour() uint8        { return dt.time.Hour() }
func (dt DateTime) Minute() uint8      { return dt.time.Minute() }
func (dt DateTime) Second() uint8      { return dt.time.Second() }
func (dt DateTime) Nanosecond() uint32 { return dt.time.Nanosecond() }

// CheckedAdd shifts the instant by dur, reporting false when the
// result leaves the supported range. The time wraps within the day and
// its carry cascades into the date.
func (dt DateTime) CheckedAdd(dur duration.Duration) (DateTime, bool) {
	tm, carry := dt.time.Add(dur)

	date, ok := dt.date.CheckedAdd(dur)
	if !ok {
		return DateTime{}, false
	}

	switch carry {
	case 1:
		if date, ok = date.NextDay(); !ok {
			return DateTime{}, false
		}
	case -1:
		if date, ok = date.PreviousDay(); !ok {
			return DateTime{}, false
		}
	}

	return DateTime{date: date, time: tm}, true
}

// CheckedSub shifts the instant backwards by dur.
func (dt DateTime) CheckedSub(dur duration.Duration) (DateTime, bool) {
	return dt.CheckedAdd(dur.Neg())
}

// SaturatingAdd is CheckedAdd clamping to MinDateTime or MaxDateTime.
func (dt DateTime) SaturatingAdd(dur duration.Duration) DateTime {
	if v, ok := dt.CheckedAdd(dur); ok {
		return v
	}

	if dur.IsNegative() {
		return MinDateTime
	}

	return MaxDateTime
}

// SaturatingSub is CheckedSub clamping to MinDateTime or MaxDateTime.
func (dt DateTime) SaturatingSub(dur duration.Duration) DateTime {
	if v, ok := dt.CheckedSub(dur); ok {
		return v
	}

	if dur.IsNegative() {
		return MaxDateTime
	}

	return MinDateTime
}

// Sub returns the signed duration between two instants.
func (dt DateTime) Sub(rhs DateTime) duration.Duration {
	days := int64(dt.date.ToJulianDay()) - int64(rhs.date.ToJulianDay())

	return duration.New(
		days*86_400+dt.time.secondsOfDay()-rhs.time.secondsOfDay(),
		int32(dt.time.nsec)-int32(rhs.time.nsec),
	)
}

// Cmp compares two instants chronologically.
func (dt DateTime) Cmp(rhs DateTime) int {
	if c := dt.date.Cmp(rhs.date); c != 0 {
		return c
	}

	return dt.time.Cmp(rhs.time)
}
