package contract

import (
	"context"

	"quality-gate-be/internal/entity"
	"quality-gate-be/internal/repository/specification"
)

type ReviewSessionRepository interface {
	Create(ctx context.Context, session *entity.ReviewSession) error
	Update(ctx context.Context, session *entity.ReviewSession) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ReviewSession, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ReviewSession, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
