package audithook

// Action constants for audit events.
const (
	// Pool actions
	ActionPoolCreated = "pool.created"

	// Subscription actions
	ActionSubscribed = "pool.subscribed"

	// Money movement actions
	ActionDepositProcessed = "pool.deposit_processed"
	ActionWithdrawn        = "pool.withdrawn"
	ActionSweepCompleted   = "pool.sweep_completed"
)

// Resource constants for audit events.
const (
	ResourcePool         = "pool"
	ResourceSubscription = "subscription"
)

// Category constants for audit events.
const (
	CategoryPool     = "pool"
	CategoryTransfer = "transfer"
)

// Severity levels for audit events.
const (
	SeverityInfo     = "info"
	SeverityWarning  = "warning"
	SeverityError    = "error"
	SeverityCritical = "critical"
)

// Outcome values for audit events.
const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
	OutcomePartial = "partial"
)
