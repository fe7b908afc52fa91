package repository

import "context"

// TxRepos exposes the repositories that take part in a checkout
// transaction.
type TxRepos interface {
	Orders() OrderRepository
	Products() ProductRepository
}

// TransactionManager hides transaction begin/commit/rollback from
// usecases.
type TransactionManager interface {
	WithinTx(ctx context.Context, fn func(r TxRepos) error) error
}
