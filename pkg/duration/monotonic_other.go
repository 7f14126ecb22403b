//go:build !linux

package duration

// now falls back to the runtime clock where no direct monotonic
// source is wired up. Subject to wall-clock adjustments.
func now() Instant {
	return stdNow()
}
