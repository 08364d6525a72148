package mongo

import (
	"fmt"
	"time"

	"github.com/xraph/grove"

	"github.com/xraph/poolbook/id"
	"github.com/xraph/poolbook/pool"
	"github.com/xraph/poolbook/subscription"
	"github.com/xraph/poolbook/types"
)

// ==================== Pool models ====================

// Amounts travel as decimal strings; Mongo's int64 cannot hold the full
// 128-bit range.
type poolModel struct {
	grove.BaseModel `grove:"table:poolbook_pools"`

	ID              uint64    `grove:"id,pk"            bson:"_id"`
	Name            string    `grove:"name"             bson:"name"`
	Asset           string    `grove:"asset"            bson:"asset"`
	TotalBalance    string    `grove:"total_balance"    bson:"total_balance"`
	SubscriberCount uint32    `grove:"subscriber_count" bson:"subscriber_count"`
	CreatedAt       time.Time `grove:"created_at"       bson:"created_at"`
	UpdatedAt       time.Time `grove:"updated_at"       bson:"updated_at"`
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

// The document _id is the composite "poolID/subscriber" key, giving the
// (pool, subscriber) uniqueness invariant for free.
type subscriptionModel struct {
	grove.BaseModel `grove:"table:poolbook_subscriptions"`

	ID          string    `grove:"id,pk"        bson:"_id"`
	PoolID      uint64    `grove:"pool_id"      bson:"pool_id"`
	Subscriber  string    `grove:"subscriber"   bson:"subscriber"`
	Amount      string    `grove:"amount"       bson:"amount"`
	Period      string    `grove:"period"       bson:"period"`
	LastPayment time.Time `grove:"last_payment" bson:"last_payment"`
	CreatedAt   time.Time `grove:"created_at"   bson:"created_at"`
	UpdatedAt   time.Time `grove:"updated_at"   bson:"updated_at"`
}

func subKey(poolID uint64, subscriber string) string {
	return fmt.Sprintf("%d/%s", poolID, subscriber)
}

func toSubscriptionModel(s *subscription.Subscription) *subscriptionModel {
	return &subscriptionModel{
		ID:          subKey(s.PoolID, s.Subscriber.String()),
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

// poolCountModel is a one-document singleton; _id is always 1.
type poolCountModel struct {
	grove.BaseModel `grove:"table:poolbook_pool_count"`

	ID    int    `grove:"id,pk" bson:"_id"`
	Count uint64 `grove:"count" bson:"count"`
}
