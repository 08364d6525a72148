// Package audithook bridges Poolbook lifecycle events to an audit trail backend.
//
// It defines a local Recorder interface so the package does not import any
// concrete audit system directly. Callers inject a RecorderFunc adapter that
// bridges to their trail at wiring time.
package audithook

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/xraph/poolbook/plugin"
)

// Compile-time interface checks.
var (
	_ plugin.Plugin             = (*Extension)(nil)
	_ plugin.OnPoolCreated      = (*Extension)(nil)
	_ plugin.OnSubscribed       = (*Extension)(nil)
	_ plugin.OnDepositProcessed = (*Extension)(nil)
	_ plugin.OnWithdrawn        = (*Extension)(nil)
	_ plugin.OnSweepCompleted   = (*Extension)(nil)
)

// Recorder is the interface that audit backends must implement.
// It is defined locally so that the audit_hook package carries no backend
// dependency; callers inject the concrete recorder at wiring time.
type Recorder interface {
	Record(ctx context.Context, event *AuditEvent) error
}

// AuditEvent is a local representation of an audit event.
type AuditEvent struct {
	Action     string         `json:"action"`
	Resource   string         `json:"resource"`
	Category   string         `json:"category"`
	ResourceID string         `json:"resource_id,omitempty"`
	Metadata   map[string]any `json:"metadata,omitempty"`
	Outcome    string         `json:"outcome"`
	Severity   string         `json:"severity"`
	Reason     string         `json:"reason,omitempty"`
}

// RecorderFunc is an adapter to use a plain function as a Recorder.
type RecorderFunc func(ctx context.Context, event *AuditEvent) error

// Record implements Recorder.
func (f RecorderFunc) Record(ctx context.Context, event *AuditEvent) error {
	return f(ctx, event)
}

// Extension bridges Poolbook lifecycle events to an audit trail backend.
type Extension struct {
	recorder Recorder
	enabled  map[string]bool // nil = all enabled
	logger   *slog.Logger
}

// New creates an Extension that emits audit events through the provided Recorder.
func New(r Recorder, opts ...Option) *Extension {
	e := &Extension{
		recorder: r,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Name implements plugin.Plugin.
func (e *Extension) Name() string { return "audit-hook" }

// ──────────────────────────────────────────────────
// Pool lifecycle hooks
// ──────────────────────────────────────────────────

// OnPoolCreated implements plugin.OnPoolCreated.
func (e *Extension) OnPoolCreated(ctx context.Context, _ interface{}) error {
	return e.record(ctx, ActionPoolCreated, SeverityInfo, OutcomeSuccess,
		ResourcePool, "", CategoryPool, nil,
		"event", "pool_created",
	)
}

// OnSubscribed implements plugin.OnSubscribed.
func (e *Extension) OnSubscribed(ctx context.Context, _ interface{}) error {
	return e.record(ctx, ActionSubscribed, SeverityInfo, OutcomeSuccess,
		ResourceSubscription, "", CategoryPool, nil,
		"event", "subscribed",
	)
}

// ──────────────────────────────────────────────────
// Money movement hooks
// ──────────────────────────────────────────────────

// OnDepositProcessed implements plugin.OnDepositProcessed.
func (e *Extension) OnDepositProcessed(ctx context.Context, poolID uint64, subscriber, amount string) error {
	return e.record(ctx, ActionDepositProcessed, SeverityInfo, OutcomeSuccess,
		ResourcePool, fmt.Sprintf("%d", poolID), CategoryTransfer, nil,
		"pool_id", poolID,
		"subscriber", subscriber,
		"amount", amount,
	)
}

// OnWithdrawn implements plugin.OnWithdrawn.
func (e *Extension) OnWithdrawn(ctx context.Context, poolID uint64, recipient, amount string) error {
	return e.record(ctx, ActionWithdrawn, SeverityInfo, OutcomeSuccess,
		ResourcePool, fmt.Sprintf("%d", poolID), CategoryTransfer, nil,
		"pool_id", poolID,
		"recipient", recipient,
		"amount", amount,
	)
}

// OnSweepCompleted implements plugin.OnSweepCompleted.
func (e *Extension) OnSweepCompleted(ctx context.Context, poolID uint64, processed, skipped int, elapsed time.Duration) error {
	outcome := OutcomeSuccess
	if skipped > 0 && processed == 0 {
		outcome = OutcomePartial
	}
	return e.record(ctx, ActionSweepCompleted, SeverityInfo, outcome,
		ResourcePool, fmt.Sprintf("%d", poolID), CategoryTransfer, nil,
		"pool_id", poolID,
		"processed", processed,
		"skipped", skipped,
		"elapsed_ms", elapsed.Milliseconds(),
	)
}

// ──────────────────────────────────────────────────
// Internal helpers
// ──────────────────────────────────────────────────

// record builds and sends an audit event if the action is enabled.
func (e *Extension) record(
	ctx context.Context,
	action, severity, outcome string,
	resource, resourceID, category string,
	err error,
	kvPairs ...any,
) error {
	if e.enabled != nil && !e.enabled[action] {
		return nil
	}

	meta := make(map[string]any, len(kvPairs)/2+1)
	for i := 0; i+1 < len(kvPairs); i += 2 {
		key, ok := kvPairs[i].(string)
		if !ok {
			key = fmt.Sprintf("%v", kvPairs[i])
		}
		meta[key] = kvPairs[i+1]
	}

	var reason string
	if err != nil {
		reason = err.Error()
		meta["error"] = err.Error()
	}

	evt := &AuditEvent{
		Action:     action,
		Resource:   resource,
		Category:   category,
		ResourceID: resourceID,
		Metadata:   meta,
		Outcome:    outcome,
		Severity:   severity,
		Reason:     reason,
	}

	if recErr := e.recorder.Record(ctx, evt); recErr != nil {
		e.logger.Warn("audit_hook: failed to record audit event",
			"action", action,
			"resource_id", resourceID,
			"error", recErr,
		)
	}
	return nil
}
