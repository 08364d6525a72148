package poolbook_test

import (
	"context"
	"log"
	"log/slog"
	"testing"

	"github.com/xraph/poolbook"
	"github.com/xraph/poolbook/id"
	"github.com/xraph/poolbook/store/memory"
	"github.com/xraph/poolbook/subscription"
)

// TestDocumentationExamples verifies that the examples in the package
// documentation compile and run against the memory store.
func TestDocumentationExamples(t *testing.T) {
	// Quick Start example from doc.go / README
	t.Run("QuickStartExample", func(t *testing.T) {
		// Create store (memory for demo, use PostgreSQL in production)
		store := memory.New()

		// Create ledger
		l := poolbook.New(store,
			poolbook.WithLogger(slog.Default()),
		)

		// Start the ledger (runs migrations, initializes plugins)
		ctx := context.Background()
		if err := l.Start(ctx); err != nil {
			t.Fatal(err)
		}
		defer l.Stop()

		// Create a pool
		asset := id.NewAssetID()
		poolID, err := l.CreatePool(ctx, "Vacation Fund", asset)
		if err != nil {
			t.Fatal(err)
		}

		// Subscribe an account to a recurring monthly contribution
		account := id.NewAccountID()
		sub, err := l.Subscribe(ctx, poolID, account,
			poolbook.NewAmount(250_000_000), subscription.PeriodMonthly)
		if err != nil {
			t.Fatal(err)
		}
		log.Printf("subscribed: pool=%d amount=%s period=%s\n",
			sub.PoolID, sub.Amount, sub.Period)

		// The first deposit is due only after one full period.
		err = l.ProcessDeposits(ctx, poolID, account)
		if !poolbook.IsPrecondition(err) {
			t.Fatalf("expected period gate, got %v", err)
		}

		// Withdrawals never overdraw the pool balance.
		err = l.Withdraw(ctx, poolID, account, poolbook.NewAmount(1))
		if !poolbook.IsPrecondition(err) {
			t.Fatalf("expected insufficient balance, got %v", err)
		}
	})

	// Amount type examples
	t.Run("AmountExamples", func(t *testing.T) {
		// Constructors
		_ = poolbook.NewAmount(100_000_000)
		_ = poolbook.ZeroAmount()
		_ = poolbook.MustParseAmount("170141183460469231731687303715884105727")

		// Arithmetic
		a := poolbook.NewAmount(100)
		b := poolbook.NewAmount(200)
		_ = a.Add(b)
		_ = b.Sub(a)

		// Comparison
		if a.LessThan(b) {
			// a is less than b
		}

		// Formatting
		_ = a.String() // "100"
	})
}
