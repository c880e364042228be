package unitofwork

import (
	"context"

	"quality-gate-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	ReviewSessionRepository() contract.ReviewSessionRepository
	TaskRepository() contract.TaskRepository
	UserRepository() contract.UserRepository
}
