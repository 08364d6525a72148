package poolbook

import "errors"

// Sentinel errors for common failure scenarios. All precondition failures
// abort the invocation with no state change; none are retried automatically.
var (
	// General errors
	ErrNotFound      = errors.New("poolbook: not found")
	ErrAlreadyExists = errors.New("poolbook: already exists")
	ErrInvalidInput  = errors.New("poolbook: invalid input")
	ErrUnauthorized  = errors.New("poolbook: unauthorized")

	// Pool errors
	ErrPoolNotFound = errors.New("poolbook: pool not found")

	// Subscription errors
	ErrSubscriptionNotFound = errors.New("poolbook: subscription not found")
	ErrSubscriptionExists   = errors.New("poolbook: subscription already exists")
	ErrBelowMinimum         = errors.New("poolbook: contribution below minimum")
	ErrInvalidPeriod        = errors.New("poolbook: invalid contribution period")

	// Deposit errors
	ErrPeriodNotElapsed = errors.New("poolbook: contribution period not elapsed")
	ErrTransferFailed   = errors.New("poolbook: asset transfer failed")

	// Withdrawal errors
	ErrInsufficientBalance = errors.New("poolbook: insufficient pool balance")
	ErrInvalidAmount       = errors.New("poolbook: invalid amount")

	// Store errors
	ErrStoreNotReady     = errors.New("poolbook: store not ready")
	ErrStoreClosed       = errors.New("poolbook: store is closed")
	ErrMigrationFailed   = errors.New("poolbook: migration failed")
	ErrTransactionFailed = errors.New("poolbook: transaction failed")
)

// IsNotFound returns true if the error is a not found error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrPoolNotFound) ||
		errors.Is(err, ErrSubscriptionNotFound)
}

// IsPrecondition returns true if the error is a precondition violation that
// the caller can correct (increase the amount, wait out the period, use a
// valid id) and reissue.
func IsPrecondition(err error) bool {
	return errors.Is(err, ErrBelowMinimum) ||
		errors.Is(err, ErrInvalidPeriod) ||
		errors.Is(err, ErrInvalidAmount) ||
		errors.Is(err, ErrPeriodNotElapsed) ||
		errors.Is(err, ErrInsufficientBalance) ||
		errors.Is(err, ErrSubscriptionExists) ||
		IsNotFound(err)
}

// IsRetryable returns true if the error is temporary and the operation can
// be retried without changing the input.
func IsRetryable(err error) bool {
	return errors.Is(err, ErrStoreNotReady) ||
		errors.Is(err, ErrTransactionFailed)
}
