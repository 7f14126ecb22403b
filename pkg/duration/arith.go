package duration

import "math"

// checkedAdd64 returns a+b and whether the sum stayed in range.
func checkedAdd64(a, b int64) (int64, bool) {
	s := a + b
	if (a > 0 && b > 0 && s < 0) || (a < 0 && b < 0 && s >= 0) {
		return 0, false
	}

	return s, true
}

// checkedSub64 returns a-b and whether the difference stayed in range.
func checkedSub64(a, b int64) (int64, bool) {
	s := a - b
	if (b < 0 && s < a) || (b > 0 && s > a) {
		return 0, false
	}

	return s, true
}

// checkedMul64 returns a*b and whether the product stayed in range.
func checkedMul64(a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}

	if (a == math.MinInt64 && b == -1) || (b == math.MinInt64 && a == -1) {
		return 0, false
	}

	p := a * b
	if p/b != a {
		return 0, false
	}

	return p, true
}

// CheckedAdd returns d+rhs, reporting false instead of wrapping when
// the sum is not representable.
func (d Duration) CheckedAdd(rhs Duration) (Duration, bool) {
	sec, ok := checkedAdd64(d.sec, rhs.sec)
	if !ok {
		return Duration{}, false
	}

	// Both fields are inside ±1e9, so the raw sum stays inside int32.
	nsec := d.nsec + rhs.nsec
	if nsec >= nsecPerSec || (sec < 0 && nsec > 0) {
		nsec -= nsecPerSec

		if sec, ok = checkedAdd64(sec, 1); !ok {
			return Duration{}, false
		}
	} else if nsec <= -nsecPerSec || (sec > 0 && nsec < 0) {
		nsec += nsecPerSec

		if sec, ok = checkedSub64(sec, 1); !ok {
			return Duration{}, false
		}
	}

	return Duration{sec: sec, nsec: nsec}, true
}

// CheckedSub returns d-rhs, reporting false instead of wrapping when
// the difference is not representable.
func (d Duration) CheckedSub(rhs Duration) (Duration, bool) {
	sec, ok := checkedSub64(d.sec, rhs.sec)
	if !ok {
		return Duration{}, false
	}

	nsec := d.nsec - rhs.nsec
	if nsec >= nsecPerSec || (sec < 0 && nsec > 0) {
		nsec -= nsecPerSec

		if sec, ok = checkedAdd64(sec, 1); !ok {
			return Duration{}, false
		}
	} else if nsec <= -nsecPerSec || (sec > 0 && nsec < 0) {
		nsec += nsecPerSec

		if sec, ok = checkedSub64(sec, 1); !ok {
			return Duration{}, false
		}
	}

	return Duration{sec: sec, nsec: nsec}, true
}

// CheckedMul returns d*rhs, reporting false when the product is not
// representable. The nanosecond product is carried through a 64-bit
// intermediate, which cannot overflow for any int32 scalar.
func (d Duration) CheckedMul(rhs int32) (Duration, bool) {
	totalNsec := int64(d.nsec) * int64(rhs)
	extraSec := totalNsec / nsecPerSec
	nsec := int32(totalNsec % nsecPerSec)

	sec, ok := checkedMul64(d.sec, int64(rhs))
	if !ok {
		return Duration{}, false
	}

	if sec, ok = checkedAdd64(sec, extraSec); !ok {
		return Duration{}, false
	}

	return Duration{sec: sec, nsec: nsec}, true
}

// CheckedDiv returns d/rhs, reporting false for a zero divisor or an
// unrepresentable quotient.
func (d Duration) CheckedDiv(rhs int32) (Duration, bool) {
	if rhs == 0 {
		return Duration{}, false
	}

	if d.sec == math.MinInt64 && rhs == -1 {
		return Duration{}, false
	}

	sec := d.sec / int64(rhs)

	// Redistribute the truncated remainder into the nanosecond field.
	// |carry| < |rhs| <= 2^31, so carry*1e9 stays well inside int64.
	carry := d.sec - sec*int64(rhs)
	extraNsec := carry * nsecPerSec / int64(rhs)
	nsec := d.nsec/rhs + int32(extraNsec)

	return Duration{sec: sec, nsec: nsec}, true
}

// SaturatingAdd returns d+rhs, clamping to Max or Min when the sum
// overflows in the respective direction.
func (d Duration) SaturatingAdd(rhs Duration) Duration {
	sec, ok := checkedAdd64(d.sec, rhs.sec)
	if !ok {
		if d.sec > 0 {
			return Max
		}

		return Min
	}

	nsec := d.nsec + rhs.nsec
	if nsec >= nsecPerSec || (sec < 0 && nsec > 0) {
		nsec -= nsecPerSec

		if sec == math.MaxInt64 {
			return Max
		}
		sec++
	} else if nsec <= -nsecPerSec || (sec > 0 && nsec < 0) {
		nsec += nsecPerSec

		if sec == math.MinInt64 {
			return Min
		}
		sec--
	}

	return Duration{sec: sec, nsec: nsec}
}

// SaturatingSub returns d-rhs, clamping to Max or Min on overflow.
func (d Duration) SaturatingSub(rhs Duration) Duration {
	sec, ok := checkedSub64(d.sec, rhs.sec)
	if !ok {
		if d.sec > 0 {
			return Max
		}

		return Min
	}

	nsec := d.nsec - rhs.nsec
	if nsec >= nsecPerSec || (sec < 0 && nsec > 0) {
		nsec -= nsecPerSec

		if sec == math.MaxInt64 {
			return Max
		}
		sec++
	} else if nsec <= -nsecPerSec || (sec > 0 && nsec < 0) {
		nsec += nsecPerSec

		if sec == math.MinInt64 {
			return Min
		}
		sec--
	}

	return Duration{sec: sec, nsec: nsec}
}

// SaturatingMul returns d*rhs, clamping to Max or Min on overflow. The
// clamp direction follows the signs of the operands.
func (d Duration) SaturatingMul(rhs int32) Duration {
	totalNsec := int64(d.nsec) * int64(rhs)
	extraSec := totalNsec / nsecPerSec
	nsec := int32(totalNsec % nsecPerSec)

	sec, ok := checkedMul64(d.sec, int64(rhs))
	if !ok {
		if (d.sec > 0 && rhs > 0) || (d.sec < 0 && rhs < 0) {
			return Max
		}

		return Min
	}

	if sec, ok = checkedAdd64(sec, extraSec); !ok {
		if (d.sec > 0 && rhs > 0) || (d.sec < 0 && rhs < 0) {
			return Max
		}

		return Min
	}

	return Duration{sec: sec, nsec: nsec}
}

// Add returns d+rhs, panicking on overflow. Use CheckedAdd or
// SaturatingAdd for recoverable handling.
func (d Duration) Add(rhs Duration) Duration {
	v, ok := d.CheckedAdd(rhs)
	if !ok {
		panic("overflow when adding durations")
	}

	return v
}

// Sub returns d-rhs, panicking on overflow.
func (d Duration) Sub(rhs Duration) Duration {
	v, ok := d.CheckedSub(rhs)
	if !ok {
		panic("overflow when subtracting durations")
	}

	return v
}

// Mul returns d*rhs, panicking on overflow.
func (d Duration) Mul(rhs int32) Duration {
	v, ok := d.CheckedMul(rhs)
	if !ok {
		panic("overflow when multiplying duration")
	}

	return v
}

// Div returns d/rhs, panicking on a zero divisor or overflow.
func (d Duration) Div(rhs int32) Duration {
	v, ok := d.CheckedDiv(rhs)
	if !ok {
		panic("overflow when dividing duration")
	}

	return v
}

// MulF64 scales the duration by a float64 factor through the
// floating-point seconds representation.
func (d Duration) MulF64(rhs float64) Duration {
	return SecondsF64(d.AsSecondsF64() * rhs)
}

// DivF64 divides the duration by a float64 factor through the
// floating-point seconds representation.
func (d Duration) DivF64(rhs float64) Duration {
	return SecondsF64(d.AsSecondsF64() / rhs)
}

// DivDuration returns the dimensionless ratio d/rhs.
func (d Duration) DivDuration(rhs Duration) float64 {
	return d.AsSecondsF64() / rhs.AsSecondsF64()
}

// Sum folds the given durations with Add, with Zero as the identity
// for an empty argument list.
func Sum(ds ...Duration) Duration {
	var total Duration
	for _, d := range ds {
		total = total.Add(d)
	}

	return total
}
