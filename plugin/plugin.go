// Package plugin provides an extensible plugin system for Poolbook.
// Plugins can hook into pool and subscription lifecycle events to extend
// functionality.
package plugin

import (
	"context"
	"time"
)

// Plugin is the base interface that all plugins must implement.
type Plugin interface {
	Name() string
}

// ──────────────────────────────────────────────────
// Lifecycle hooks
// ──────────────────────────────────────────────────

// OnInit is called when the plugin is initialized.
type OnInit interface {
	Plugin
	OnInit(ctx context.Context, l interface{}) error
}

// OnShutdown is called when the plugin is shutting down.
type OnShutdown interface {
	Plugin
	OnShutdown(ctx context.Context) error
}

// ──────────────────────────────────────────────────
// Pool lifecycle hooks
// ──────────────────────────────────────────────────

// OnPoolCreated is called when a new pool is registered.
type OnPoolCreated interface {
	Plugin
	OnPoolCreated(ctx context.Context, pool interface{}) error
}

// OnSubscribed is called when an account enrolls in a pool.
type OnSubscribed interface {
	Plugin
	OnSubscribed(ctx context.Context, sub interface{}) error
}

// ──────────────────────────────────────────────────
// Money movement hooks
// ──────────────────────────────────────────────────

// OnDepositProcessed is called when a due recurring deposit is booked.
type OnDepositProcessed interface {
	Plugin
	OnDepositProcessed(ctx context.Context, poolID uint64, subscriber, amount string) error
}

// OnWithdrawn is called when a withdrawal is booked against a pool.
type OnWithdrawn interface {
	Plugin
	OnWithdrawn(ctx context.Context, poolID uint64, recipient, amount string) error
}

// ──────────────────────────────────────────────────
// Batch processing hooks
// ──────────────────────────────────────────────────

// OnSweepCompleted is called after a deposit sweep over a pool's
// subscriptions finishes.
type OnSweepCompleted interface {
	Plugin
	OnSweepCompleted(ctx context.Context, poolID uint64, processed, skipped int, elapsed time.Duration) error
}
