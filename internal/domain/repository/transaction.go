package repository

import "context"

// RepositoryFactory yields repository instances bound to one transaction.
type RepositoryFactory interface {
	UserRepo() UserRepository
	RefreshTokenRepo() RefreshTokenRepository
}

// TransactionManager runs multi-repository work atomically. The callback
// receives a factory whose repositories all share a single transaction;
// returning an error rolls everything back.
type TransactionManager interface {
	Execute(ctx context.Context, fn func(repoFactory RepositoryFactory) error) error
}
