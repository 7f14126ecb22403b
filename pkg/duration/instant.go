package duration

import "time"

// Instant is a reading of a monotonic clock. It is meaningful only
// relative to other Instants from the same process; the value does not
// survive a restart.
type Instant struct {
	sec  int64
	nsec int32
}

// Now returns the current monotonic clock reading.
func Now() Instant {
	return now()
}

// stdNow derives an Instant from the runtime clock on platforms
// without a direct monotonic source.
func stdNow() Instant {
	n := time.Now()
	sec := n.Unix()

	return Instant{
		sec:  sec,
		nsec: int32(n.UnixNano() - sec*nsecPerSec),
	}
}

// Sub returns the duration i-u between two clock readings.
func (i Instant) Sub(u Instant) Duration {
	return New(i.sec-u.sec, i.nsec-u.nsec)
}

// Add returns the instant shifted by d.
func (i Instant) Add(d Duration) Instant {
	sec := i.sec + d.sec
	nsec := i.nsec + d.nsec

	if nsec >= nsecPerSec {
		sec++
		nsec -= nsecPerSec
	} else if nsec < 0 {
		sec--
		nsec += nsecPerSec
	}

	return Instant{sec: sec, nsec: nsec}
}

// Elapsed returns the time passed since the instant was taken.
func (i Instant) Elapsed() Duration {
	return Now().Sub(i)
}

func (i Instant) Equal(u Instant) bool {
	return i.sec == u.sec && i.nsec == u.nsec
}

func (i Instant) Before(u Instant) bool {
	return i.sec < u.sec || (i.sec == u.sec && i.nsec < u.nsec)
}

func (i Instant) After(u Instant) bool {
	return i.sec > u.sec || (i.sec == u.sec && i.nsec > u.nsec)
}

// TimeFn invokes f and measures how long the call took against the
// monotonic clock.
func TimeFn[T any](f func() T) (Duration, T) {
	start := Now()
	ret := f()

	return start.Elapsed(), ret
}
