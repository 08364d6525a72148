package postgres

import (
	"time"

	"github.com/xraph/grove"

	"github.com/xraph/poolbook/id"
	"github.com/xraph/poolbook/pool"
	"github.com/xraph/poolbook/subscription"
	"github.com/xraph/poolbook/types"
)

// ==================== Pool models ====================

// Balances and amounts travel as decimal strings; NUMERIC(39,0) in the
// schema covers the full 128-bit range without loss.
type poolModel struct {
	grove.BaseModel `grove:"table:poolbook_pools"`

	ID              uint64    `grove:"id,pk"`
	Name            string    `grove:"name"`
	Asset           string    `grove:"asset"`
	TotalBalance    string    `grove:"total_balance"`
	SubscriberCount uint32    `grove:"subscriber_count"`
	CreatedAt       time.Time `grove:"created_at"`
	UpdatedAt       time.Time `grove:"updated_at"`
}

func toPoolModel(p *pool.Pool) *poolModel {
	return &poolModel{
		ID:              p.ID,
		Name:            p.Name,
		Asset:           p.Asset.String(),
		TotalBalance:    p.TotalBalance.String(),
		SubscriberCount: p.SubscriberCount,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}

func fromPoolModel(m *poolModel) (*pool.Pool, error) {
	asset, err := id.ParseAssetID(m.Asset)
	if err != nil {
		return nil, err
	}
	balance, err := types.ParseAmount(m.TotalBalance)
	if err != nil {
		return nil, err
	}

	return &pool.Pool{
		Entity: types.Entity{
			CreatedAt: m.CreatedAt,
			UpdatedAt: m.UpdatedAt,
		},
		ID:              m.ID,
		Name:            m.Name,
		Asset:           asset,
		TotalBalance:    balance,
		SubscriberCount: m.SubscriberCount,
	}, nil
}

// ==================== Subscription models ====================

type subscriptionModel struct {
	grove.BaseModel `grove:"table:poolbook_subscriptions"`

	PoolID      uint64    `grove:"pool_id"`
	Subscriber  string    `grove:"subscriber"`
	Amount      string    `grove:"amount"`
	Period      string    `grove:"period"`
	LastPayment time.Time `grove:"last_payment"`
	CreatedAt   time.Time `grove:"created_at"`
	UpdatedAt   time.Time `grove:"updated_at"`
}

func toSubscriptionModel(s *subscription.Subscription) *subscriptionModel {
	return &subscriptionModel{
		PoolID:      s.PoolID,
		Subscriber:  s.Subscriber.String(),
		Amount:      s.Amount.String(),
		Period:      string(s.Period),
		LastPayment: s.LastPayment,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}

func fromSubscriptionModel(m *subscriptionModel) (*subscription.Subscription, error) {
	subscriber, err := id.ParseAccountID(m.Subscriber)
	if err != nil {
		return nil, err
	}
	amount, err := types.ParseAmount(m.Amount)
	if err != nil {
		return nil, err
	}

	return &subscription.Subscription{
		Entity: types.Entity{
			CreatedAt: m.CreatedAt,
			UpdatedAt: m.UpdatedAt,
		},
		Subscriber:  subscriber,
		PoolID:      m.PoolID,
		Amount:      amount,
		Period:      subscription.Period(m.Period),
		LastPayment: m.LastPayment,
	}, nil
}

// ==================== Counter model ====================

// poolCountModel is a one-row singleton; id is always 1.
type poolCountModel struct {
	grove.BaseModel `grove:"table:poolbook_pool_count"`

	ID    int    `grove:"id,pk"`
	Count uint64 `grove:"count"`
}
