package gamification

import (
	"context"
	"time"

	"quality-gate-be/internal/entity"
	"quality-gate-be/internal/pkg/logger"
	pkgEvents "quality-gate-be/pkg/events"
	pktNats "quality-gate-be/pkg/nats"

	"github.com/google/uuid"
)

// Publisher abstracts the outbound side effects of a review decision:
// XP awards to the gamification system, workflow status changes to the
// task planner, and the decision events themselves. Emission happens
// after the review's own state is committed, so the review is never
// left ahead of its side effects.
type Publisher interface {
	PublishXPAwarded(ctx context.Context, sessionId, taskId uuid.UUID, userIds []uuid.UUID, amount int)
	PublishReviewPassed(ctx context.Context, sessionId, taskId, reviewerId uuid.UUID, totalXP int)
	PublishReviewRevised(ctx context.Context, sessionId, taskId, reviewerId uuid.UUID, feedback string)
	PublishWorkflowChanged(ctx context.Context, taskId uuid.UUID, status entity.TaskWorkflowStatus)
}

// NatsPublisher implements Publisher using NATS JetStream. All methods
// are nil-safe so the service degrades to log-only when NATS is down.
type NatsPublisher struct {
	publisher *pktNats.Publisher
	logger    logger.ILogger
}

func NewNatsPublisher(publisher *pktNats.Publisher, logger logger.ILogger) *NatsPublisher {
	return &NatsPublisher{
		publisher: publisher,
		logger:    logger,
	}
}

// PublishXPAwarded emits one XP_AWARDED event covering the whole
// recipient set; every member receives the same amount.
func (p *NatsPublisher) PublishXPAwarded(ctx context.Context, sessionId, taskId uuid.UUID, userIds []uuid.UUID, amount int) {
	if p.publisher == nil {
		return
	}

	ids := make([]string, len(userIds))
	for i, id := range userIds {
		ids[i] = id.String()
	}

	evt := pkgEvents.BaseEvent{
		Type: "XP_AWARDED",
		Data: map[string]interface{}{
			"session_id":  sessionId.String(),
			"task_id":     taskId.String(),
			"user_ids":    ids,
			"amount":      amount,
			"entity_type": "review_session",
			"entity_id":   sessionId.String(),
		},
		OccurredAt: time.Now(),
	}

	if err := p.publisher.Publish(ctx, evt); err != nil {
		p.logger.Error("GAMIFICATION", "Failed to publish XP_AWARDED event", map[string]interface{}{"error": err.Error()})
	}
}

// PublishReviewPassed emits REVIEW_PASSED for one approved round.
func (p *NatsPublisher) PublishReviewPassed(ctx context.Context, sessionId, taskId, reviewerId uuid.UUID, totalXP int) {
	if p.publisher == nil {
		return
	}

	evt := pkgEvents.BaseEvent{
		Type: "REVIEW_PASSED",
		Data: map[string]interface{}{
			"session_id":  sessionId.String(),
			"task_id":     taskId.String(),
			"reviewer_id": reviewerId.String(),
			"total_xp":    totalXP,
			"entity_type": "review_session",
			"entity_id":   sessionId.String(),
		},
		OccurredAt: time.Now(),
	}

	if err := p.publisher.Publish(ctx, evt); err != nil {
		p.logger.Error("GAMIFICATION", "Failed to publish REVIEW_PASSED event", map[string]interface{}{"error": err.Error()})
	}
}

// PublishReviewRevised emits REVIEW_REVISED when a round is sent back.
func (p *NatsPublisher) PublishReviewRevised(ctx context.Context, sessionId, taskId, reviewerId uuid.UUID, feedback string) {
	if p.publisher == nil {
		return
	}

	evt := pkgEvents.BaseEvent{
		Type: "REVIEW_REVISED",
		Data: map[string]interface{}{
			"session_id":  sessionId.String(),
			"task_id":     taskId.String(),
			"reviewer_id": reviewerId.String(),
			"feedback":    feedback,
			"entity_type": "review_session",
			"entity_id":   sessionId.String(),
		},
		OccurredAt: time.Now(),
	}

	if err := p.publisher.Publish(ctx, evt); err != nil {
		p.logger.Error("GAMIFICATION", "Failed to publish REVIEW_REVISED event", map[string]interface{}{"error": err.Error()})
	}
}

// PublishWorkflowChanged notifies the task planner that a review
// decision moved the task's workflow status.
func (p *NatsPublisher) PublishWorkflowChanged(ctx context.Context, taskId uuid.UUID, status entity.TaskWorkflowStatus) {
	if p.publisher == nil {
		return
	}

	evt := pkgEvents.BaseEvent{
		Type: "TASK_WORKFLOW_CHANGED",
		Data: map[string]interface{}{
			"task_id":     taskId.String(),
			"status":      string(status),
			"entity_type": "task",
			"entity_id":   taskId.String(),
		},
		OccurredAt: time.Now(),
	}

	if err := p.publisher.Publish(ctx, evt); err != nil {
		p.logger.Error("GAMIFICATION", "Failed to publish TASK_WORKFLOW_CHANGED event", map[string]interface{}{"error": err.Error()})
	}
}
