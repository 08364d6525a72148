package poolbook

import "time"

// Clock supplies ledger time. All period arithmetic and LastPayment stamps
// read through it, so tests can warp time without sleeping.
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a function to the Clock interface.
type ClockFunc func() time.Time

func (f ClockFunc) Now() time.Time {
	return f()
}

// systemClock is the default Clock, returning wall time in UTC.
var systemClock Clock = ClockFunc(func() time.Time {
	return time.Now().UTC()
})
