package subscription

import (
	"time"

	"github.com/xraph/poolbook/id"
	"github.com/xraph/poolbook/types"
)

// Period is the fixed cadence governing how often a subscription may be
// processed. Each period maps to a fixed number of seconds; calendar
// irregularities (leap days, month lengths) are deliberately ignored so the
// gate is a pure arithmetic check over ledger time.
type Period string

const (
	PeriodWeekly    Period = "weekly"
	PeriodMonthly   Period = "monthly"
	PeriodQuarterly Period = "quarterly"
)

// Period lengths in seconds.
const (
	secondsWeekly    = 604_800
	secondsMonthly   = 2_592_000
	secondsQuarterly = 7_776_000
)

// Seconds returns the period length in seconds, or 0 for an unknown period.
func (p Period) Seconds() int64 {
	switch p {
	case PeriodWeekly:
		return secondsWeekly
	case PeriodMonthly:
		return secondsMonthly
	case PeriodQuarterly:
		return secondsQuarterly
	default:
		return 0
	}
}

// Duration returns the period length as a time.Duration.
func (p Period) Duration() time.Duration {
	return time.Duration(p.Seconds()) * time.Second
}

// Valid reports whether p is one of the known periods.
func (p Period) Valid() bool {
	return p.Seconds() > 0
}

// Subscription is a recurring-deposit commitment by one account to one pool,
// keyed uniquely by (PoolID, Subscriber). LastPayment is the timestamp of
// the most recent processed deposit, or the enrollment time if none has been
// processed yet.
type Subscription struct {
	types.Entity
	Subscriber  id.AccountID `json:"subscriber"`
	PoolID      uint64       `json:"pool_id"`
	Amount      types.Amount `json:"amount"`
	Period      Period       `json:"period"`
	LastPayment time.Time    `json:"last_payment"`
}

// NextPaymentAt returns the earliest instant at which the next deposit may
// be processed.
func (s *Subscription) NextPaymentAt() time.Time {
	return s.LastPayment.Add(s.Period.Duration())
}

// Due reports whether a deposit may be processed at the given ledger time.
// The boundary instant itself is due: only now < LastPayment + period is
// rejected.
func (s *Subscription) Due(now time.Time) bool {
	return !now.Before(s.NextPaymentAt())
}

type ListOpts struct {
	Limit  int
	Offset int
}
