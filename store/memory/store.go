// Package memory provides an in-memory Store implementation, suitable for
// tests and single-process embedding. State does not survive restarts.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/xraph/poolbook"
	"github.com/xraph/poolbook/id"
	"github.com/xraph/poolbook/pool"
	"github.com/xraph/poolbook/store"
	"github.com/xraph/poolbook/subscription"
)

var _ store.Store = (*Store)(nil)

type Store struct {
	mu sync.RWMutex

	// Pool storage
	pools     map[uint64]*pool.Pool
	poolCount uint64

	// Subscription storage, keyed by (pool, subscriber)
	subscriptions map[string]*subscription.Subscription

	closed bool
}

func New() *Store {
	return &Store{
		pools:         make(map[uint64]*pool.Pool),
		subscriptions: make(map[string]*subscription.Subscription),
	}
}

func subKey(poolID uint64, subscriber id.AccountID) string {
	return fmt.Sprintf("%d/%s", poolID, subscriber.String())
}

// Pool Store implementation

func (s *Store) CreatePool(_ context.Context, p *pool.Pool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.pools[p.ID]; exists {
		return poolbook.ErrAlreadyExists
	}
	s.pools[p.ID] = p
	return nil
}

func (s *Store) GetPool(_ context.Context, poolID uint64) (*pool.Pool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if p, ok := s.pools[poolID]; ok {
		return p, nil
	}
	return nil, poolbook.ErrPoolNotFound
}

func (s *Store) UpdatePool(_ context.Context, p *pool.Pool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.pools[p.ID]; !exists {
		return poolbook.ErrPoolNotFound
	}
	s.pools[p.ID] = p
	return nil
}

func (s *Store) ListPools(_ context.Context, opts pool.ListOpts) ([]*pool.Pool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*pool.Pool, 0, len(s.pools))
	for _, p := range s.pools {
		result = append(result, p)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })

	return paginate(result, opts.Offset, opts.Limit), nil
}

func (s *Store) PoolCount(_ context.Context) (uint64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.poolCount, nil
}

func (s *Store) SetPoolCount(_ context.Context, count uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.poolCount = count
	return nil
}

// Subscription Store implementation

func (s *Store) CreateSubscription(_ context.Context, sub *subscription.Subscription) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := subKey(sub.PoolID, sub.Subscriber)
	if _, exists := s.subscriptions[key]; exists {
		return poolbook.ErrAlreadyExists
	}
	s.subscriptions[key] = sub
	return nil
}

func (s *Store) GetSubscription(_ context.Context, poolID uint64, subscriber id.AccountID) (*subscription.Subscription, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if sub, ok := s.subscriptions[subKey(poolID, subscriber)]; ok {
		return sub, nil
	}
	return nil, poolbook.ErrSubscriptionNotFound
}

func (s *Store) UpdateSubscription(_ context.Context, sub *subscription.Subscription) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := subKey(sub.PoolID, sub.Subscriber)
	if _, exists := s.subscriptions[key]; !exists {
		return poolbook.ErrSubscriptionNotFound
	}
	s.subscriptions[key] = sub
	return nil
}

func (s *Store) ListSubscriptions(_ context.Context, poolID uint64, opts subscription.ListOpts) ([]*subscription.Subscription, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*subscription.Subscription, 0)
	for _, sub := range s.subscriptions {
		if sub.PoolID == poolID {
			result = append(result, sub)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Subscriber.String() < result[j].Subscriber.String()
	})

	return paginate(result, opts.Offset, opts.Limit), nil
}

// Core methods

func (s *Store) Migrate(_ context.Context) error {
	return nil
}

func (s *Store) Ping(_ context.Context) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return poolbook.ErrStoreClosed
	}
	return nil
}

func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}

func paginate[T any](items []T, offset, limit int) []T {
	start := offset
	if start > len(items) {
		start = len(items)
	}
	end := start + limit
	if limit == 0 || end > len(items) {
		end = len(items)
	}
	return items[start:end]
}
