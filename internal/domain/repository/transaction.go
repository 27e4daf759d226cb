package repository

import "context"

// TransactionManager runs a unit of work atomically. fn receives a factory whose
// repositories all share one transaction; it commits when fn returns nil.
type TransactionManager interface {
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory hands out repositories bound to the current transaction.
type RepositoryFactory interface {
	NewOrderRepository() OrderRepository
	NewProductRepository() ProductRepository
	NewUserRepository() UserRepository
}
