// Package observability provides a metrics extension for Poolbook that
// records lifecycle event counts via an injected MetricFactory.
package observability

import (
	"context"
	"time"

	"github.com/xraph/poolbook/plugin"
)

// Ensure MetricsExtension implements required interfaces.
var (
	_ plugin.Plugin             = (*MetricsExtension)(nil)
	_ plugin.OnInit             = (*MetricsExtension)(nil)
	_ plugin.OnPoolCreated      = (*MetricsExtension)(nil)
	_ plugin.OnSubscribed       = (*MetricsExtension)(nil)
	_ plugin.OnDepositProcessed = (*MetricsExtension)(nil)
	_ plugin.OnWithdrawn        = (*MetricsExtension)(nil)
	_ plugin.OnSweepCompleted   = (*MetricsExtension)(nil)
)

// Counter interface for metric counters.
type Counter interface {
	Inc()
	Add(float64)
}

// Histogram interface for metric histograms.
type Histogram interface {
	Observe(float64)
}

// MetricFactory creates metrics.
type MetricFactory interface {
	Counter(name string) Counter
	Histogram(name string) Histogram
}

// MetricsExtension records system-wide lifecycle metrics.
// Register it as a Poolbook plugin to automatically track pool activity.
type MetricsExtension struct {
	factory MetricFactory

	// Pool metrics
	PoolCreated Counter

	// Subscription metrics
	Subscribed Counter

	// Deposit metrics
	DepositsProcessed Counter
	SweepProcessed    Histogram
	SweepSkipped      Histogram
	SweepLatency      Histogram

	// Withdrawal metrics
	Withdrawals Counter
}

// NewMetricsExtension creates a MetricsExtension with the provided MetricFactory.
func NewMetricsExtension(factory MetricFactory) *MetricsExtension {
	return &MetricsExtension{
		factory: factory,

		// Pool metrics
		PoolCreated: factory.Counter("poolbook.pool.created"),

		// Subscription metrics
		Subscribed: factory.Counter("poolbook.subscription.created"),

		// Deposit metrics
		DepositsProcessed: factory.Counter("poolbook.deposit.processed"),
		SweepProcessed:    factory.Histogram("poolbook.sweep.processed"),
		SweepSkipped:      factory.Histogram("poolbook.sweep.skipped"),
		SweepLatency:      factory.Histogram("poolbook.sweep.latency_ms"),

		// Withdrawal metrics
		Withdrawals: factory.Counter("poolbook.withdrawal.booked"),
	}
}

// Name implements plugin.Plugin.
func (m *MetricsExtension) Name() string { return "observability-metrics" }

// OnInit implements plugin.OnInit.
func (m *MetricsExtension) OnInit(_ context.Context, _ interface{}) error {
	// No initialization needed
	return nil
}

// OnPoolCreated implements plugin.OnPoolCreated.
func (m *MetricsExtension) OnPoolCreated(_ context.Context, _ interface{}) error {
	m.PoolCreated.Inc()
	return nil
}

// OnSubscribed implements plugin.OnSubscribed.
func (m *MetricsExtension) OnSubscribed(_ context.Context, _ interface{}) error {
	m.Subscribed.Inc()
	return nil
}

// OnDepositProcessed implements plugin.OnDepositProcessed.
func (m *MetricsExtension) OnDepositProcessed(_ context.Context, _ uint64, _, _ string) error {
	m.DepositsProcessed.Inc()
	return nil
}

// OnWithdrawn implements plugin.OnWithdrawn.
func (m *MetricsExtension) OnWithdrawn(_ context.Context, _ uint64, _, _ string) error {
	m.Withdrawals.Inc()
	return nil
}

// OnSweepCompleted implements plugin.OnSweepCompleted.
func (m *MetricsExtension) OnSweepCompleted(_ context.Context, _ uint64, processed, skipped int, elapsed time.Duration) error {
	m.SweepProcessed.Observe(float64(processed))
	m.SweepSkipped.Observe(float64(skipped))
	m.SweepLatency.Observe(float64(elapsed.Milliseconds()))
	return nil
}
