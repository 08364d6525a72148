package store

import (
	"context"

	"github.com/xraph/poolbook/id"
	"github.com/xraph/poolbook/pool"
	"github.com/xraph/poolbook/subscription"
)

// Store is the unified storage interface for all Poolbook entities.
// Instead of embedding the sub-interfaces, we explicitly declare all methods
// to avoid naming conflicts.
type Store interface {
	// Pool methods
	CreatePool(ctx context.Context, p *pool.Pool) error
	GetPool(ctx context.Context, poolID uint64) (*pool.Pool, error)
	UpdatePool(ctx context.Context, p *pool.Pool) error
	ListPools(ctx context.Context, opts pool.ListOpts) ([]*pool.Pool, error)

	// Pool counter. The counter is a singleton; a store with no counter
	// row reports 0, so the first allocated pool ID is 1.
	PoolCount(ctx context.Context) (uint64, error)
	SetPoolCount(ctx context.Context, count uint64) error

	// Subscription methods. Subscriptions are keyed by (pool, subscriber).
	CreateSubscription(ctx context.Context, s *subscription.Subscription) error
	GetSubscription(ctx context.Context, poolID uint64, subscriber id.AccountID) (*subscription.Subscription, error)
	UpdateSubscription(ctx context.Context, s *subscription.Subscription) error
	ListSubscriptions(ctx context.Context, poolID uint64, opts subscription.ListOpts) ([]*subscription.Subscription, error)

	// Core methods
	Migrate(ctx context.Context) error
	Ping(ctx context.Context) error
	Close() error
}
