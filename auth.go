package poolbook

import (
	"context"

	"github.com/xraph/poolbook/id"
)

// Operation identifies a guarded engine operation for authorization checks.
type Operation string

const (
	OpSubscribe Operation = "subscribe"
	OpWithdraw  Operation = "withdraw"
)

// Authorizer decides whether an account may perform a guarded operation.
// The host wires its own identity layer here; a denial aborts the operation
// before any state change.
type Authorizer interface {
	Authorize(ctx context.Context, op Operation, account id.AccountID) error
}

// AuthorizerFunc adapts a function to the Authorizer interface.
type AuthorizerFunc func(ctx context.Context, op Operation, account id.AccountID) error

func (f AuthorizerFunc) Authorize(ctx context.Context, op Operation, account id.AccountID) error {
	return f(ctx, op, account)
}

// allowAll is the default Authorizer. Hosts that need real identity checks
// replace it with WithAuthorizer.
var allowAll Authorizer = AuthorizerFunc(func(context.Context, Operation, id.AccountID) error {
	return nil
})
