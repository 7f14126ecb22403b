// Package duration contains a signed duration type with nanosecond
// precision and a range far beyond time.Duration, together with checked
// and saturating arithmetic over it.
package duration

import (
	"math"
)

const (
	nsecPerSec  = 1_000_000_000
	nsecPerMsec = 1_000_000
	nsecPerUsec = 1_000

	secPerMinute = 60
	secPerHour   = 3_600
	secPerDay    = 86_400
	secPerWeek   = 604_800
)

// Duration is a span of time stored as whole seconds plus a sub-second
// nanosecond offset. Unlike time.Duration it covers the full int64 range
// of seconds.
//
// The representation is kept canonical: nsec is always in
// (-1e9, 1e9) and its sign is zero or matches the sign of sec. A
// sub-second negative duration such as -0.5s is therefore {0, -5e8}.
// Values are comparable with ==.
type Duration struct {
	// sec gives the number of whole seconds.
	sec int64

	// nsec specifies the sub-second offset within the second.
	// It must be in the range [-999999999, 999999999] and sign-aligned
	// with sec.
	nsec int32
}

// Named unit values and the representable extremes.
var (
	Zero        = Duration{}
	Nanosecond  = Duration{nsec: 1}
	Microsecond = Duration{nsec: nsecPerUsec}
	Millisecond = Duration{nsec: nsecPerMsec}
	Second      = Duration{sec: 1}
	Minute      = Duration{sec: secPerMinute}
	Hour        = Duration{sec: secPerHour}
	Day         = Duration{sec: secPerDay}
	Week        = Duration{sec: secPerWeek}

	Min = Duration{sec: math.MinInt64, nsec: -nsecPerSec + 1}
	Max = Duration{sec: math.MaxInt64, nsec: nsecPerSec - 1}
)

// New builds a Duration from any pair of seconds and nanoseconds,
// normalizing it to canonical form. The nanosecond argument is not
// restricted to the sub-second range.
func New(sec int64, nsec int32) Duration {
	sec += int64(nsec) / nsecPerSec
	nsec %= nsecPerSec

	if sec > 0 && nsec < 0 {
		sec--
		nsec += nsecPerSec
	} else if sec < 0 && nsec > 0 {
		sec++
		nsec -= nsecPerSec
	}

	return Duration{sec: sec, nsec: nsec}
}

// Seconds returns a Duration of n whole seconds.
func Seconds(n int64) Duration {
	return Duration{sec: n}
}

// Milliseconds returns a Duration of n milliseconds.
func Milliseconds(n int64) Duration {
	return Duration{
		sec:  n / 1_000,
		nsec: int32(n%1_000) * nsecPerMsec,
	}
}

// Microseconds returns a Duration of n microseconds.
func Microseconds(n int64) Duration {
	return Duration{
		sec:  n / 1_000_000,
		nsec: int32(n%1_000_000) * nsecPerUsec,
	}
}

// Nanoseconds returns a Duration of n nanoseconds.
func Nanoseconds(n int64) Duration {
	return Duration{
		sec:  n / nsecPerSec,
		nsec: int32(n % nsecPerSec),
	}
}

func Minutes(n int64) Duration { return Seconds(n * secPerMinute) }
func Hours(n int64) Duration   { return Seconds(n * secPerHour) }
func Days(n int64) Duration    { return Seconds(n * secPerDay) }
func Weeks(n int64) Duration   { return Seconds(n * secPerWeek) }

// SecondsF64 returns a Duration of n seconds given as a float64. The
// whole and fractional parts are extracted with Go's truncating
// float-to-integer conversion; the result for NaN, infinities or values
// outside the int64 second range is undefined.
func SecondsF64(n float64) Duration {
	return Duration{
		sec:  int64(n),
		nsec: int32(math.Mod(n, 1) * nsecPerSec),
	}
}

// SecondsF32 is SecondsF64 for float32 input.
func SecondsF32(n float32) Duration {
	return Duration{
		sec:  int64(n),
		nsec: int32(float64(math.Mod(float64(n), 1)) * nsecPerSec),
	}
}

// WholeSeconds returns the number of whole seconds, truncated toward
// zero.
func (d Duration) WholeSeconds() int64 { return d.sec }

func (d Duration) WholeWeeks() int64   { return d.sec / secPerWeek }
func (d Duration) WholeDays() int64    { return d.sec / secPerDay }
func (d Duration) WholeHours() int64   { return d.sec / secPerHour }
func (d Duration) WholeMinutes() int64 { return d.sec / secPerMinute }

// WholeMilliseconds returns the duration in whole milliseconds,
// saturating at the int64 bounds for values beyond ±292 million years.
func (d Duration) WholeMilliseconds() int64 {
	return wideUnits(d.sec, d.nsec, 1_000, nsecPerMsec)
}

// WholeMicroseconds returns the duration in whole microseconds,
// saturating at the int64 bounds.
func (d Duration) WholeMicroseconds() int64 {
	return wideUnits(d.sec, d.nsec, 1_000_000, nsecPerUsec)
}

// WholeNanoseconds returns the duration in whole nanoseconds,
// saturating at the int64 bounds for values beyond ±292 years (the
// time.Duration range).
func (d Duration) WholeNanoseconds() int64 {
	return wideUnits(d.sec, d.nsec, nsecPerSec, 1)
}

// wideUnits computes sec*scale + nsec/nsecdiv with explicit overflow
// checks, saturating at the int64 bounds.
func wideUnits(sec int64, nsec int32, scale int64, nsecdiv int32) int64 {
	if sec > math.MaxInt64/scale {
		return math.MaxInt64
	}
	if sec < math.MinInt64/scale {
		return math.MinInt64
	}

	v := sec * scale
	sub := int64(nsec / nsecdiv)

	// sub is sign-aligned with v, so the add can only overflow in the
	// direction of v.
	if sub > 0 && v > math.MaxInt64-sub {
		return math.MaxInt64
	}
	if sub < 0 && v < math.MinInt64-sub {
		return math.MinInt64
	}

	return v + sub
}

// SubsecMilliseconds returns the sub-second component in milliseconds,
// in the range (-1000, 1000).
func (d Duration) SubsecMilliseconds() int16 {
	return int16(d.nsec / nsecPerMsec)
}

// SubsecMicroseconds returns the sub-second component in microseconds.
func (d Duration) SubsecMicroseconds() int32 {
	return d.nsec / nsecPerUsec
}

// SubsecNanoseconds returns the sub-second component in nanoseconds.
func (d Duration) SubsecNanoseconds() int32 {
	return d.nsec
}

// AsSecondsF64 returns the duration as a floating-point number of
// seconds.
func (d Duration) AsSecondsF64() float64 {
	return float64(d.sec) + float64(d.nsec)/nsecPerSec
}

// AsSecondsF32 is AsSecondsF64 narrowed to float32.
func (d Duration) AsSecondsF32() float32 {
	return float32(d.sec) + float32(d.nsec)/nsecPerSec
}

// IsZero reports whether the duration spans no time.
func (d Duration) IsZero() bool {
	return d.sec == 0 && d.nsec == 0
}

// IsNegative reports whether the duration is strictly negative.
func (d Duration) IsNegative() bool {
	return d.sec < 0 || d.nsec < 0
}

// IsPositive reports whether the duration is strictly positive.
func (d Duration) IsPositive() bool {
	return d.sec > 0 || d.nsec > 0
}

// Abs returns the absolute value of the duration. The seconds of Min
// saturate at math.MaxInt64 rather than overflowing on negation.
func (d Duration) Abs() Duration {
	sec := d.sec
	if sec < 0 {
		if sec == math.MinInt64 {
			sec = math.MaxInt64
		} else {
			sec = -sec
		}
	}

	nsec := d.nsec
	if nsec < 0 {
		nsec = -nsec
	}

	return Duration{sec: sec, nsec: nsec}
}

// Neg returns the negated duration. Negating Min has no representable
// result and wraps.
func (d Duration) Neg() Duration {
	return Duration{sec: -d.sec, nsec: -d.nsec}
}

// Equal reports whether d and rhs represent the same span. Identical
// to == since the representation is canonical.
func (d Duration) Equal(rhs Duration) bool {
	return d == rhs
}

// Less reports whether d is strictly shorter than rhs.
func (d Duration) Less(rhs Duration) bool {
	return d.sec < rhs.sec || (d.sec == rhs.sec && d.nsec < rhs.nsec)
}

// Cmp compares d and rhs, returning -1, 0 or +1. The canonical form
// makes the field-wise comparison total.
func (d Duration) Cmp(rhs Duration) int {
	switch {
	case d.sec < rhs.sec:
		return -1
	case d.sec > rhs.sec:
		return 1
	case d.nsec < rhs.nsec:
		return -1
	case d.nsec > rhs.nsec:
		return 1
	}

	return 0
}
