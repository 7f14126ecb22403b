package duration

import (
	stderrors "errors"
	"math"
	"time"

	"github.com/pkg/errors"
)

// ErrConversionRange is returned when a value does not fit the target
// representation.
var ErrConversionRange = stderrors.New("conversion out of range")

const (
	// time.Duration bounds decomposed into the sec/nsec pair.
	maxStdSec  = math.MaxInt64 / nsecPerSec
	maxStdNsec = math.MaxInt64 % nsecPerSec
	minStdSec  = math.MinInt64 / nsecPerSec
	minStdNsec = math.MinInt64 % nsecPerSec
)

// FromStd converts a time.Duration. The conversion is always exact:
// every time.Duration value is representable.
func FromStd(d time.Duration) Duration {
	return Duration{
		sec:  int64(d / time.Second),
		nsec: int32(d % time.Second),
	}
}

// Std converts the duration to a time.Duration. Values outside the
// ±292 year time.Duration range yield ErrConversionRange.
func (d Duration) Std() (time.Duration, error) {
	if d.sec > maxStdSec || (d.sec == maxStdSec && d.nsec > maxStdNsec) ||
		d.sec < minStdSec || (d.sec == minStdSec && d.nsec < minStdNsec) {
		return 0, errors.Wrap(ErrConversionRange, "duration exceeds time.Duration range")
	}

	return time.Duration(d.sec)*time.Second + time.Duration(d.nsec), nil
}

// AbsUnsigned returns the magnitude of the duration as an unsigned
// (seconds, sub-second nanoseconds) pair. The sign is lost; callers
// round-tripping through this form must track it separately.
func (d Duration) AbsUnsigned() (sec uint64, nsec uint32) {
	s, n := d.sec, d.nsec

	if s < 0 {
		sec = uint64(-(s + 1)) + 1
	} else {
		sec = uint64(s)
	}

	if n < 0 {
		n = -n
	}

	return sec, uint32(n)
}

// FromUnsigned builds a Duration from an unsigned (seconds, sub-second
// nanoseconds) pair, as produced by AbsUnsigned or a platform clock.
// Seconds beyond the int64 range or a nanosecond component of a full
// second or more yield ErrConversionRange.
func FromUnsigned(sec uint64, nsec uint32) (Duration, error) {
	if sec > math.MaxInt64 {
		return Duration{}, errors.Wrap(ErrConversionRange, "seconds exceed int64 range")
	}

	if nsec >= nsecPerSec {
		return Duration{}, errors.Wrapf(ErrConversionRange, "nanoseconds %d not below 1e9", nsec)
	}

	return New(int64(sec), int32(nsec)), nil
}

// AddStd returns d plus a time.Duration, panicking on overflow.
func (d Duration) AddStd(rhs time.Duration) Duration {
	return d.Add(FromStd(rhs))
}

// SubStd returns d minus a time.Duration, panicking on overflow.
func (d Duration) SubStd(rhs time.Duration) Duration {
	return d.Sub(FromStd(rhs))
}

// CmpStd compares d against a time.Duration.
func (d Duration) CmpStd(rhs time.Duration) int {
	return d.Cmp(FromStd(rhs))
}

// EqualStd reports whether d represents the same span as a
// time.Duration.
func (d Duration) EqualStd(rhs time.Duration) bool {
	return d == FromStd(rhs)
}

// DivStd returns the dimensionless ratio d/rhs for a time.Duration
// divisor.
func (d Duration) DivStd(rhs time.Duration) float64 {
	return d.AsSecondsF64() / rhs.Seconds()
}
