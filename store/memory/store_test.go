package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/xraph/poolbook"
	"github.com/xraph/poolbook/id"
	"github.com/xraph/poolbook/pool"
	"github.com/xraph/poolbook/subscription"
	"github.com/xraph/poolbook/types"
)

func newPool(poolID uint64) *pool.Pool {
	return &pool.Pool{
		Entity:       types.NewEntity(),
		ID:           poolID,
		Name:         "test",
		Asset:        id.NewAssetID(),
		TotalBalance: types.ZeroAmount(),
	}
}

func TestPoolCRUD(t *testing.T) {
	s := New()
	ctx := context.Background()

	if _, err := s.GetPool(ctx, 1); !errors.Is(err, poolbook.ErrPoolNotFound) {
		t.Fatalf("empty store: got %v, want ErrPoolNotFound", err)
	}

	p := newPool(1)
	if err := s.CreatePool(ctx, p); err != nil {
		t.Fatalf("CreatePool: %v", err)
	}
	if err := s.CreatePool(ctx, newPool(1)); !errors.Is(err, poolbook.ErrAlreadyExists) {
		t.Errorf("duplicate create: got %v, want ErrAlreadyExists", err)
	}

	p.TotalBalance = types.NewAmount(500)
	if err := s.UpdatePool(ctx, p); err != nil {
		t.Fatalf("UpdatePool: %v", err)
	}
	got, err := s.GetPool(ctx, 1)
	if err != nil {
		t.Fatalf("GetPool: %v", err)
	}
	if !got.TotalBalance.Equal(types.NewAmount(500)) {
		t.Errorf("balance: got %s", got.TotalBalance)
	}

	if err := s.UpdatePool(ctx, newPool(9)); !errors.Is(err, poolbook.ErrPoolNotFound) {
		t.Errorf("update missing: got %v, want ErrPoolNotFound", err)
	}
}

func TestListPoolsOrderAndPaging(t *testing.T) {
	s := New()
	ctx := context.Background()

	for _, poolID := range []uint64{3, 1, 2} {
		if err := s.CreatePool(ctx, newPool(poolID)); err != nil {
			t.Fatalf("CreatePool %d: %v", poolID, err)
		}
	}

	all, err := s.ListPools(ctx, pool.ListOpts{})
	if err != nil {
		t.Fatalf("ListPools: %v", err)
	}
	if len(all) != 3 || all[0].ID != 1 || all[2].ID != 3 {
		t.Errorf("order: got %v", []uint64{all[0].ID, all[1].ID, all[2].ID})
	}

	page, err := s.ListPools(ctx, pool.ListOpts{Limit: 1, Offset: 1})
	if err != nil {
		t.Fatalf("ListPools paged: %v", err)
	}
	if len(page) != 1 || page[0].ID != 2 {
		t.Errorf("page: got %d entries", len(page))
	}
}

func TestPoolCounter(t *testing.T) {
	s := New()
	ctx := context.Background()

	count, err := s.PoolCount(ctx)
	if err != nil {
		t.Fatalf("PoolCount: %v", err)
	}
	if count != 0 {
		t.Errorf("fresh counter: got %d, want 0", count)
	}

	if err := s.SetPoolCount(ctx, 7); err != nil {
		t.Fatalf("SetPoolCount: %v", err)
	}
	count, _ = s.PoolCount(ctx)
	if count != 7 {
		t.Errorf("counter: got %d, want 7", count)
	}
}

func TestSubscriptionCRUD(t *testing.T) {
	s := New()
	ctx := context.Background()
	account := id.NewAccountID()

	sub := &subscription.Subscription{
		Entity:      types.NewEntity(),
		Subscriber:  account,
		PoolID:      1,
		Amount:      types.NewAmount(100_000_000),
		Period:      subscription.PeriodWeekly,
		LastPayment: time.Now().UTC(),
	}

	if _, err := s.GetSubscription(ctx, 1, account); !errors.Is(err, poolbook.ErrSubscriptionNotFound) {
		t.Fatalf("empty store: got %v, want ErrSubscriptionNotFound", err)
	}
	if err := s.CreateSubscription(ctx, sub); err != nil {
		t.Fatalf("CreateSubscription: %v", err)
	}
	if err := s.CreateSubscription(ctx, sub); !errors.Is(err, poolbook.ErrAlreadyExists) {
		t.Errorf("duplicate create: got %v, want ErrAlreadyExists", err)
	}

	// Same account in a different pool is a distinct key.
	other := &subscription.Subscription{
		Entity:     types.NewEntity(),
		Subscriber: account,
		PoolID:     2,
		Amount:     types.NewAmount(100_000_000),
		Period:     subscription.PeriodMonthly,
	}
	if err := s.CreateSubscription(ctx, other); err != nil {
		t.Fatalf("create in second pool: %v", err)
	}

	sub.Amount = types.NewAmount(200_000_000)
	if err := s.UpdateSubscription(ctx, sub); err != nil {
		t.Fatalf("UpdateSubscription: %v", err)
	}
	got, err := s.GetSubscription(ctx, 1, account)
	if err != nil {
		t.Fatalf("GetSubscription: %v", err)
	}
	if !got.Amount.Equal(types.NewAmount(200_000_000)) {
		t.Errorf("amount: got %s", got.Amount)
	}

	subs, err := s.ListSubscriptions(ctx, 1, subscription.ListOpts{})
	if err != nil {
		t.Fatalf("ListSubscriptions: %v", err)
	}
	if len(subs) != 1 {
		t.Errorf("pool 1 subscriptions: got %d, want 1", len(subs))
	}
}

func TestPingAfterClose(t *testing.T) {
	s := New()
	ctx := context.Background()

	if err := s.Ping(ctx); err != nil {
		t.Fatalf("Ping: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if err := s.Ping(ctx); !errors.Is(err, poolbook.ErrStoreClosed) {
		t.Errorf("Ping after close: got %v, want ErrStoreClosed", err)
	}
}
