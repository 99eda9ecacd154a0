package ports

import "context"

// TxManager scopes a use case execution to one transaction. Repositories
// called with the inner ctx share that transaction.
type TxManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}
