package poolbook

import (
	"context"

	"github.com/xraph/poolbook/id"
	"github.com/xraph/poolbook/types"
)

// Transferrer moves real assets alongside the ledger booking. ProcessDeposits
// calls Collect before crediting the pool; Withdraw calls Disburse before
// debiting. A transfer error aborts the operation with no booking.
//
// The default is nil: the ledger books balances only and asset custody is
// the host's problem.
type Transferrer interface {
	// Collect pulls amount of asset from the account into pool custody.
	Collect(ctx context.Context, asset id.AssetID, from id.AccountID, amount types.Amount) error

	// Disburse pays amount of asset out of pool custody to the account.
	Disburse(ctx context.Context, asset id.AssetID, to id.AccountID, amount types.Amount) error
}
