package poolbook

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/xraph/poolbook/id"
	"github.com/xraph/poolbook/plugin"
	"github.com/xraph/poolbook/pool"
	"github.com/xraph/poolbook/store"
	"github.com/xraph/poolbook/subscription"
	"github.com/xraph/poolbook/types"
)

// DefaultMinContribution is the smallest accepted recurring contribution,
// in minor units of a 7-decimal asset (10 whole units).
const DefaultMinContribution = 100_000_000

// Ledger is the main pool accounting engine.
type Ledger struct {
	store   store.Store
	plugins *plugin.Registry
	logger  *slog.Logger

	clock       Clock
	authorizer  Authorizer
	transferrer Transferrer

	// mu serializes all mutating operations. Reads go straight to the
	// store. Every mutation validates fully before its first write, so a
	// failed call leaves no partial state behind.
	mu sync.Mutex

	minContribution types.Amount
}

// New creates a new Ledger instance.
func New(s store.Store, opts ...Option) *Ledger {
	l := &Ledger{
		store:           s,
		plugins:         plugin.NewRegistry(),
		logger:          slog.Default(),
		clock:           systemClock,
		authorizer:      allowAll,
		minContribution: types.NewAmount(DefaultMinContribution),
	}

	for _, opt := range opts {
		opt(l)
	}

	return l
}

// Option configures a Ledger instance.
type Option func(*Ledger)

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(l *Ledger) {
		l.logger = logger
		l.plugins.WithLogger(logger)
	}
}

// WithPlugin registers a plugin.
func WithPlugin(p plugin.Plugin) Option {
	return func(l *Ledger) {
		_ = l.plugins.Register(p) //nolint:errcheck // best-effort plugin registration during init
	}
}

// WithClock sets the ledger time source.
func WithClock(c Clock) Option {
	return func(l *Ledger) {
		l.clock = c
	}
}

// WithAuthorizer sets the authorization hook for guarded operations.
func WithAuthorizer(a Authorizer) Option {
	return func(l *Ledger) {
		l.authorizer = a
	}
}

// WithTransferrer sets the asset mover invoked before each booking.
func WithTransferrer(t Transferrer) Option {
	return func(l *Ledger) {
		l.transferrer = t
	}
}

// WithMinContribution overrides the minimum recurring contribution.
func WithMinContribution(min types.Amount) Option {
	return func(l *Ledger) {
		l.minContribution = min
	}
}

// Start migrates the store and initializes plugins.
func (l *Ledger) Start(ctx context.Context) error {
	if err := l.store.Migrate(ctx); err != nil {
		return err
	}

	l.plugins.EmitInit(ctx, l)

	l.logger.Info("poolbook started",
		"min_contribution", l.minContribution.String(),
	)

	return nil
}

// Stop shuts down the Ledger.
func (l *Ledger) Stop() error {
	ctx := context.Background()
	l.plugins.EmitShutdown(ctx)

	return l.store.Close()
}

// Plugins returns the plugin registry.
func (l *Ledger) Plugins() *plugin.Registry {
	return l.plugins
}

// ──────────────────────────────────────────────────
// Pool Management
// ──────────────────────────────────────────────────

// CreatePool registers a new pool and returns its ID. IDs are allocated
// sequentially from 1 by a persisted counter; an empty store yields 1.
func (l *Ledger) CreatePool(ctx context.Context, name string, asset id.AssetID) (uint64, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	count, err := l.store.PoolCount(ctx)
	if err != nil {
		return 0, err
	}
	poolID := count + 1

	p := &pool.Pool{
		Entity:       types.NewEntity(),
		ID:           poolID,
		Name:         name,
		Asset:        asset,
		TotalBalance: types.ZeroAmount(),
	}

	if err := l.store.CreatePool(ctx, p); err != nil {
		return 0, err
	}
	if err := l.store.SetPoolCount(ctx, poolID); err != nil {
		return 0, err
	}

	l.logger.Info("pool created",
		"pool_id", poolID,
		"name", name,
		"asset", asset.String(),
	)

	l.plugins.EmitPoolCreated(ctx, p)
	return poolID, nil
}

// GetPool retrieves a pool by ID.
func (l *Ledger) GetPool(ctx context.Context, poolID uint64) (*pool.Pool, error) {
	return l.store.GetPool(ctx, poolID)
}

// ListPools returns a page of pools ordered by ID.
func (l *Ledger) ListPools(ctx context.Context, opts pool.ListOpts) ([]*pool.Pool, error) {
	return l.store.ListPools(ctx, opts)
}

// ──────────────────────────────────────────────────
// Subscription Management
// ──────────────────────────────────────────────────

// Subscribe enrolls an account in a pool with a recurring contribution.
// The enrollment instant becomes the subscription's LastPayment, so the
// first deposit is processable only after one full period. An account may
// hold at most one subscription per pool.
func (l *Ledger) Subscribe(ctx context.Context, poolID uint64, subscriber id.AccountID, amount types.Amount, period subscription.Period) (*subscription.Subscription, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.authorizer.Authorize(ctx, OpSubscribe, subscriber); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnauthorized, err)
	}
	if amount.LessThan(l.minContribution) {
		return nil, ErrBelowMinimum
	}
	if !period.Valid() {
		return nil, ErrInvalidPeriod
	}

	p, err := l.store.GetPool(ctx, poolID)
	if err != nil {
		return nil, err
	}

	if _, err := l.store.GetSubscription(ctx, poolID, subscriber); err == nil {
		return nil, ErrSubscriptionExists
	} else if !errors.Is(err, ErrSubscriptionNotFound) {
		return nil, err
	}

	sub := &subscription.Subscription{
		Entity:      types.NewEntity(),
		Subscriber:  subscriber,
		PoolID:      poolID,
		Amount:      amount,
		Period:      period,
		LastPayment: l.clock.Now(),
	}

	if err := l.store.CreateSubscription(ctx, sub); err != nil {
		return nil, err
	}

	p.SubscriberCount++
	p.Touch()
	if err := l.store.UpdatePool(ctx, p); err != nil {
		return nil, err
	}

	l.logger.Info("account subscribed",
		"pool_id", poolID,
		"subscriber", subscriber.String(),
		"amount", amount.String(),
		"period", string(period),
	)

	l.plugins.EmitSubscribed(ctx, sub)
	return sub, nil
}

// GetSubscription retrieves a subscription by pool and subscriber.
func (l *Ledger) GetSubscription(ctx context.Context, poolID uint64, subscriber id.AccountID) (*subscription.Subscription, error) {
	return l.store.GetSubscription(ctx, poolID, subscriber)
}

// ListSubscriptions returns a page of a pool's subscriptions.
func (l *Ledger) ListSubscriptions(ctx context.Context, poolID uint64, opts subscription.ListOpts) ([]*subscription.Subscription, error) {
	return l.store.ListSubscriptions(ctx, poolID, opts)
}

// ──────────────────────────────────────────────────
// Deposit Processing
// ──────────────────────────────────────────────────

// ProcessDeposits books one due recurring deposit for a subscriber. The gate
// rejects while now < LastPayment + period; the boundary instant itself is
// processable. On success the pool is credited by the committed amount and
// LastPayment advances to now.
func (l *Ledger) ProcessDeposits(ctx context.Context, poolID uint64, subscriber id.AccountID) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.processDeposit(ctx, poolID, subscriber)
}

// processDeposit books a single deposit. Caller holds l.mu.
func (l *Ledger) processDeposit(ctx context.Context, poolID uint64, subscriber id.AccountID) error {
	sub, err := l.store.GetSubscription(ctx, poolID, subscriber)
	if err != nil {
		return err
	}
	p, err := l.store.GetPool(ctx, poolID)
	if err != nil {
		return err
	}

	now := l.clock.Now()
	if !sub.Due(now) {
		return ErrPeriodNotElapsed
	}

	if l.transferrer != nil {
		if err := l.transferrer.Collect(ctx, p.Asset, subscriber, sub.Amount); err != nil {
			return fmt.Errorf("%w: %w", ErrTransferFailed, err)
		}
	}

	p.Credit(sub.Amount)
	p.Touch()
	sub.LastPayment = now
	sub.Touch()

	if err := l.store.UpdateSubscription(ctx, sub); err != nil {
		return err
	}
	if err := l.store.UpdatePool(ctx, p); err != nil {
		return err
	}

	l.logger.Debug("deposit processed",
		"pool_id", poolID,
		"subscriber", subscriber.String(),
		"amount", sub.Amount.String(),
		"balance", p.TotalBalance.String(),
	)

	l.plugins.EmitDepositProcessed(ctx, poolID, subscriber.String(), sub.Amount.String())
	return nil
}

// SweepDeposits books every due deposit in a pool and reports how many were
// processed and how many were not yet due. Individual transfer failures are
// logged and counted as skipped; the sweep keeps going.
func (l *Ledger) SweepDeposits(ctx context.Context, poolID uint64) (processed, skipped int, err error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	start := time.Now()

	subs, err := l.store.ListSubscriptions(ctx, poolID, subscription.ListOpts{})
	if err != nil {
		return 0, 0, err
	}

	for _, sub := range subs {
		switch err := l.processDeposit(ctx, poolID, sub.Subscriber); {
		case err == nil:
			processed++
		case errors.Is(err, ErrPeriodNotElapsed):
			skipped++
		case errors.Is(err, ErrTransferFailed):
			l.logger.Warn("sweep transfer failed",
				"pool_id", poolID,
				"subscriber", sub.Subscriber.String(),
				"error", err,
			)
			skipped++
		default:
			return processed, skipped, err
		}
	}

	l.plugins.EmitSweepCompleted(ctx, poolID, processed, skipped, time.Since(start))
	return processed, skipped, nil
}

// ──────────────────────────────────────────────────
// Withdrawals
// ──────────────────────────────────────────────────

// Withdraw debits amount from the pool balance and pays it to the recipient.
// The pool balance covers the whole withdrawal or the call fails; the
// balance never goes negative.
func (l *Ledger) Withdraw(ctx context.Context, poolID uint64, recipient id.AccountID, amount types.Amount) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.authorizer.Authorize(ctx, OpWithdraw, recipient); err != nil {
		return fmt.Errorf("%w: %w", ErrUnauthorized, err)
	}
	if !amount.IsPositive() {
		return ErrInvalidAmount
	}

	p, err := l.store.GetPool(ctx, poolID)
	if err != nil {
		return err
	}
	if !p.CanDebit(amount) {
		return ErrInsufficientBalance
	}

	if l.transferrer != nil {
		if err := l.transferrer.Disburse(ctx, p.Asset, recipient, amount); err != nil {
			return fmt.Errorf("%w: %w", ErrTransferFailed, err)
		}
	}

	p.Debit(amount)
	p.Touch()
	if err := l.store.UpdatePool(ctx, p); err != nil {
		return err
	}

	l.logger.Info("withdrawal booked",
		"pool_id", poolID,
		"recipient", recipient.String(),
		"amount", amount.String(),
		"balance", p.TotalBalance.String(),
	)

	l.plugins.EmitWithdrawn(ctx, poolID, recipient.String(), amount.String())
	return nil
}
