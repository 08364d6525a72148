package pool

import (
	"github.com/xraph/poolbook/id"
	"github.com/xraph/poolbook/types"
)

// Pool is a named collective account accruing subscriber deposits in a
// single asset. Pool IDs are assigned sequentially from 1 by the registry
// and are immutable once created.
type Pool struct {
	types.Entity
	ID              uint64       `json:"id"`
	Name            string       `json:"name"`
	Asset           id.AssetID   `json:"asset"`
	TotalBalance    types.Amount `json:"total_balance"`
	SubscriberCount uint32       `json:"subscriber_count"`
}

// CanDebit reports whether the pool balance covers a withdrawal of amount.
func (p *Pool) CanDebit(amount types.Amount) bool {
	return !amount.GreaterThan(p.TotalBalance)
}

// Credit adds amount to the pool balance.
func (p *Pool) Credit(amount types.Amount) {
	p.TotalBalance = p.TotalBalance.Add(amount)
}

// Debit subtracts amount from the pool balance. Callers must check CanDebit
// first; the balance invariant (never negative) is enforced at the engine.
func (p *Pool) Debit(amount types.Amount) {
	p.TotalBalance = p.TotalBalance.Sub(amount)
}

type ListOpts struct {
	Limit  int
	Offset int
}
