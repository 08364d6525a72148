package subscription

import (
	"testing"
	"time"
)

func TestPeriodSeconds(t *testing.T) {
	tests := []struct {
		period  Period
		seconds int64
	}{
		{PeriodWeekly, 604_800},
		{PeriodMonthly, 2_592_000},
		{PeriodQuarterly, 7_776_000},
		{Period("yearly"), 0},
		{Period(""), 0},
	}

	for _, tt := range tests {
		t.Run(string(tt.period), func(t *testing.T) {
			if got := tt.period.Seconds(); got != tt.seconds {
				t.Errorf("Seconds: got %d, want %d", got, tt.seconds)
			}
			if got := tt.period.Valid(); got != (tt.seconds > 0) {
				t.Errorf("Valid: got %v, want %v", got, tt.seconds > 0)
			}
		})
	}
}

func TestDue(t *testing.T) {
	enrolled := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	sub := &Subscription{Period: PeriodWeekly, LastPayment: enrolled}

	boundary := enrolled.Add(sub.Period.Duration())
	tests := []struct {
		name string
		now  time.Time
		due  bool
	}{
		{"immediately after enrollment", enrolled, false},
		{"one second before boundary", boundary.Add(-time.Second), false},
		{"exactly at boundary", boundary, true},
		{"one second past boundary", boundary.Add(time.Second), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := sub.Due(tt.now); got != tt.due {
				t.Errorf("Due(%v): got %v, want %v", tt.now, got, tt.due)
			}
		})
	}

	if got := sub.NextPaymentAt(); !got.Equal(boundary) {
		t.Errorf("NextPaymentAt: got %v, want %v", got, boundary)
	}
}
