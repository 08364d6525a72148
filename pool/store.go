package pool

import "context"

type Store interface {
	Create(ctx context.Context, p *Pool) error
	Get(ctx context.Context, poolID uint64) (*Pool, error)
	Update(ctx context.Context, p *Pool) error
	List(ctx context.Context, opts ListOpts) ([]*Pool, error)
}
