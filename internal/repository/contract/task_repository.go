package contract

import (
	"context"

	"quality-gate-be/internal/entity"
	"quality-gate-be/internal/repository/specification"

	"github.com/google/uuid"
)

type TaskRepository interface {
	Create(ctx context.Context, task *entity.Task) error
	UpdateWorkflowStatus(ctx context.Context, id uuid.UUID, status entity.TaskWorkflowStatus) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Task, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Task, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
