package datetime

import (
	"github.com/pkg/errors"

	"github.com/mailru/chrono/pkg/duration"
)

// Time is a wall-clock time within a day, with nanosecond precision.
// Values are comparable with ==.
type Time struct {
	hour   uint8
	minute uint8
	second uint8
	nsec   uint32
}

var (
	Midnight = Time{}
	MaxTime  = Time{hour: 23, minute: 59, second: 59, nsec: 999_999_999}
)

func checkClock(hour, minute, second uint8) error {
	if hour > 23 {
		return errors.Wrapf(ErrComponentRange, "hour %d not in [0, 23]", hour)
	}

	if minute > 59 {
		return errors.Wrapf(ErrComponentRange, "minute %d not in [0, 59]", minute)
	}

	if second > 59 {
		return errors.Wrapf(ErrComponentRange, "second %d not in [0, 59]", second)
	}

	return nil
}

// FromHMS builds a Time from hours, minutes and seconds.
func FromHMS(hour, minute, second uint8) (Time, error) {
	if err := checkClock(hour, minute, second); err != nil {
		return Time{}, err
	}

	return Time{hour: hour, minute: minute, second: second}, nil
}

// FromHMSMilli builds a Time with millisecond precision.
func FromHMSMilli(hour, minute, second uint8, milli uint16) (Time, error) {
	if milli > 999 {
		return Time{}, errors.Wrapf(ErrComponentRange, "millisecond %d not in [0, 999]", milli)
	}

	t, err := FromHMS(hour, minute, second)
	if err != nil {
		return Time{}, err
	}

	t.nsec = uint32(milli) * 1_000_000

	return t, nil
}

// FromHMSMicro builds a Time with microsecond precision.
func FromHMSMicro(hour, minute, second uint8, micro uint32) (Time, error) {
	if micro > 999_999 {
		return Time{}, errors.Wrapf(ErrComponentRange, "microsecond %d not in [0, 999999]", micro)
	}

	t, err := FromHMS(hour, minute, second)
	if err != nil {
		return Time{}, err
	}

	t.nsec = micro * 1_000

	return t, nil
}

// FromHMSNano builds a Time with nanosecond precision.
func FromHMSNano(hour, minute, second uint8, nsec uint32) (Time, error) {
	if nsec > 999_999_999 {
		return Time{}, errors.Wrapf(ErrComponentRange, "nanosecond %d not in [0, 999999999]", nsec)
	}

	t, err := FromHMS(hour, minute, second)
	if err != nil {
		return Time{}, err
	}

	t.nsec = nsec

	return t, nil
}

func (t Time) Hour() uint8   { return t.hour }
func (t Time) Minute() uint8 { return t.minute }
func (t Time) Second() uint8 { return t.second }

func (t Time) Millisecond() uint16 { return uint16(t.nsec / 1_000_000) }
func (t Time) Microsecond() uint32 { return t.nsec / 1_000 }
func (t Time) Nanosecond() uint32  { return t.nsec }

// secondsOfDay returns the whole seconds elapsed since midnight.
func (t Time) secondsOfDay() int64 {
	return int64(t.hour)*3_600 + int64(t.minute)*60 + int64(t.second)
}

// Add shifts the time by the sub-day component of dur, wrapping within
// the day. The returned carry is -1, 0 or +1 whole days for the date
// to absorb.
func (t Time) Add(dur duration.Duration) (Time, int) {
	nsec := int32(t.nsec) + dur.SubsecNanoseconds()
	second := int8(t.second) + int8(dur.WholeSeconds()%60)
	minute := int8(t.minute) + int8(dur.WholeMinutes()%60)
	hour := int8(t.hour) + int8(dur.WholeHours()%24)
	carry := 0

	if nsec >= 1_000_000_000 {
		nsec -= 1_000_000_000
		second++
	} else if nsec < 0 {
		nsec += 1_000_000_000
		second--
	}

	if second >= 60 {
		second -= 60
		minute++
	} else if second < 0 {
		second += 60
		minute--
	}

	if minute >= 60 {
		minute -= 60
		hour++
	} else if minute < 0 {
		minute += 60
		hour--
	}

	if hour >= 24 {
		hour -= 24
		carry = 1
	} else if hour < 0 {
		hour += 24
		carry = -1
	}

	return Time{
		hour:   uint8(hour),
		minute: uint8(minute),
		second: uint8(second),
		nsec:   uint32(nsec),
	}, carry
}

// Sub returns the signed duration between two times of day.
func (t Time) Sub(rhs Time) duration.Duration {
	return duration.New(
		t.secondsOfDay()-rhs.secondsOfDay(),
		int32(t.nsec)-int32(rhs.nsec),
	)
}

// Cmp compares two times of day.
func (t Time) Cmp(rhs Time) int {
	a := t.secondsOfDay()
	b := rhs.secondsOfDay()

	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	case t.nsec < rhs.nsec:
		return -1
	case t.nsec > rhs.nsec:
		return 1
	}

	return 0
}
