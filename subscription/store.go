package subscription

import (
	"context"

	"github.com/xraph/poolbook/id"
)

type Store interface {
	Create(ctx context.Context, s *Subscription) error
	Get(ctx context.Context, poolID uint64, subscriber id.AccountID) (*Subscription, error)
	Update(ctx context.Context, s *Subscription) error
	List(ctx context.Context, poolID uint64, opts ListOpts) ([]*Subscription, error)
}
