// Package poolbook provides a pooled recurring-contribution ledger for Go applications.
//
// Poolbook is designed as a library, not a service. Import it directly into
// your Go application and wire in your own storage, time source, identity
// layer, and asset mover. It provides:
//
//   - A pool registry with sequential, stable pool IDs
//   - Per-subscriber recurring deposit commitments with fixed periods
//   - Time-gated deposit processing with exact boundary semantics
//   - Balance-guarded withdrawals that can never overdraw a pool
//   - Pluggable lifecycle hooks for audit trails and metrics
//
// # Quick Start
//
// Create a ledger instance with your preferred store:
//
//	import (
//	    "github.com/xraph/poolbook"
//	    "github.com/xraph/poolbook/store/postgres"
//	)
//
//	// Initialize store
//	store, err := postgres.New(databaseURL)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Create ledger
//	l := poolbook.New(store)
//
//	// Start the ledger (runs migrations, initializes plugins)
//	if err := l.Start(ctx); err != nil {
//	    log.Fatal(err)
//	}
//	defer l.Stop()
//
// # Core Concepts
//
// Pools are named collective accounts in a single asset:
//
//	poolID, err := l.CreatePool(ctx, "Vacation Fund", asset)
//
// Subscriptions commit an account to a recurring contribution:
//
//	sub, err := l.Subscribe(ctx, poolID, account, poolbook.NewAmount(250_000_000), subscription.PeriodMonthly)
//
// Deposits are booked once per elapsed period, on demand:
//
//	err := l.ProcessDeposits(ctx, poolID, account)  // ErrPeriodNotElapsed if early
//
// Withdrawals debit the shared balance, never past zero:
//
//	err := l.Withdraw(ctx, poolID, recipient, amount)
//
// # Amounts
//
// All monetary values use integer arithmetic over the Amount type, an
// arbitrary-precision integer counted in an asset's smallest unit. Amounts
// well beyond the int64 range are handled exactly; there is no floating
// point anywhere in the accounting path.
//
// # TypeID
//
// Accounts, assets, and events use TypeID for globally unique, type-safe
// identifiers:
//
//	acct_01h2xcejqtf2nbrexx3vqjhp41   // Account ID
//	asset_01h455vb4pex5vsknk084sn02q  // Asset ID
//
// Pool IDs are the deliberate exception: they are allocated sequentially
// from 1 by a persisted counter, so pool 1 is always the first pool created.
package poolbook
