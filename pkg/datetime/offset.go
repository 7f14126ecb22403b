package datetime

import (
	"github.com/pkg/errors"

	"github.com/mailru/chrono/pkg/duration"
)

// UtcOffset is a whole-second offset from UTC, within ±23:59:59. All
// three components carry the sign of the offset.
type UtcOffset struct {
	hours   int8
	minutes int8
	seconds int8
}

// UTC is the zero offset.
var UTC = UtcOffset{}

// OffsetFromHMS builds an offset from hour, minute and second
// components, which must agree in sign.
func OffsetFromHMS(hours, minutes, seconds int8) (UtcOffset, error) {
	if hours < -23 || hours > 23 {
		return UtcOffset{}, errors.Wrapf(ErrComponentRange, "offset hours %d not in [-23, 23]", hours)
	}

	if minutes < -59 || minutes > 59 {
		return UtcOffset{}, errors.Wrapf(ErrComponentRange, "offset minutes %d not in [-59, 59]", minutes)
	}

	if seconds < -59 || seconds > 59 {
		return UtcOffset{}, errors.Wrapf(ErrComponentRange, "offset seconds %d not in [-59, 59]", seconds)
	}

	if (hours > 0 && (minutes < 0 || seconds < 0)) ||
		(hours < 0 && (minutes > 0 || seconds > 0)) ||
		(minutes > 0 && seconds < 0) || (minutes < 0 && seconds > 0) {
		return UtcOffset{}, errors.Wrap(ErrComponentRange, "offset components disagree in sign")
	}

	return UtcOffset{hours: hours, minutes: minutes, seconds: seconds}, nil
}

// OffsetFromWholeSeconds builds an offset from a total second count.
func OffsetFromWholeSeconds(seconds int32) (UtcOffset, error) {
	if seconds < -86_399 || seconds > 86_399 {
		return UtcOffset{}, errors.Wrapf(ErrComponentRange, "offset seconds %d not in [-86399, 86399]", seconds)
	}

	return UtcOffset{
		hours:   int8(seconds / 3_600),
		minutes: int8(seconds / 60 % 60),
		seconds: int8(seconds % 60),
	}, nil
}

func (o UtcOffset) WholeHours() int8 { return o.hours }

func (o UtcOffset) WholeMinutes() int16 {
	return int16(o.hours)*60 + int16(o.minutes)
}

func (o UtcOffset) WholeSeconds() int32 {
	return int32(o.hours)*3_600 + int32(o.minutes)*60 + int32(o.seconds)
}

// MinutesPastHour returns the minute component, carrying the offset
// sign.
func (o UtcOffset) MinutesPastHour() int8 { return o.minutes }

// SecondsPastMinute returns the second component, carrying the offset
// sign.
func (o UtcOffset) SecondsPastMinute() int8 { return o.seconds }

func (o UtcOffset) IsUTC() bool {
	return o.hours == 0 && o.minutes == 0 && o.seconds == 0
}

func (o UtcOffset) IsPositive() bool {
	return o.hours > 0 || o.minutes > 0 || o.seconds > 0
}

func (o UtcOffset) IsNegative() bool {
	return o.hours < 0 || o.minutes < 0 || o.seconds < 0
}

// Neg returns the mirrored offset.
func (o UtcOffset) Neg() UtcOffset {
	return UtcOffset{hours: -o.hours, minutes: -o.minutes, seconds: -o.seconds}
}

// AsDuration returns the offset as a Duration.
func (o UtcOffset) AsDuration() duration.Duration {
	return duration.Seconds(int64(o.WholeSeconds()))
}
