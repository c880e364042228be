package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"quality-gate-be/internal/dto"
	"quality-gate-be/internal/entity"
	"quality-gate-be/internal/pkg/logger"
	"quality-gate-be/internal/repository/specification"
	"quality-gate-be/internal/repository/unitofwork"
	"quality-gate-be/pkg/gamification"
	"quality-gate-be/pkg/grading"
	"quality-gate-be/pkg/lock"
	"quality-gate-be/pkg/review"

	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"
)

const taskIndexCacheKey = "review:task_index"

type IReviewService interface {
	GetBoard(ctx context.Context, req *dto.BoardQueryRequest) (*dto.ReviewBoardResponse, error)
	GetSummary(ctx context.Context) (*dto.ReviewSummaryResponse, error)
	GetSummaryDetail(ctx context.Context, bucket string) ([]*dto.ReviewSummaryDetailItem, error)
	GetPresets(ctx context.Context) []grading.Preset
	Pass(ctx context.Context, reviewerId uuid.UUID, req *dto.PassReviewRequest) (*dto.PassReviewResponse, error)
	Revise(ctx context.Context, reviewerId uuid.UUID, req *dto.ReviseReviewRequest) (*dto.ReviseReviewResponse, error)
}

type reviewService struct {
	uowFactory       unitofwork.RepositoryFactory
	publisherService IPublisherService
	events           gamification.Publisher
	locker           lock.SessionLocker
	taskCache        *gocache.Cache
	logger           logger.ILogger
	now              func() time.Time
}

func NewReviewService(
	uowFactory unitofwork.RepositoryFactory,
	publisherService IPublisherService,
	events gamification.Publisher,
	locker lock.SessionLocker,
	log logger.ILogger,
) IReviewService {
	return &reviewService{
		uowFactory:       uowFactory,
		publisherService: publisherService,
		events:           events,
		locker:           locker,
		taskCache:        gocache.New(30*time.Second, time.Minute),
		logger:           log,
		now:              time.Now,
	}
}

// liveTaskIndex loads the planner's task list, cached briefly. The
// board is read far more often than tasks change; a stale index only
// delays which copy of a task wins the resolve precedence, never the
// decision writes (those re-read the task directly).
func (s *reviewService) liveTaskIndex(ctx context.Context) (review.TaskIndex, error) {
	if v, ok := s.taskCache.Get(taskIndexCacheKey); ok {
		return v.(review.TaskIndex), nil
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	tasks, err := uow.TaskRepository().FindAll(ctx)
	if err != nil {
		return nil, err
	}

	idx := review.BuildTaskIndex(tasks)
	s.taskCache.Set(taskIndexCacheKey, idx, gocache.DefaultExpiration)
	return idx, nil
}

// loadDeduped fetches every review session, resolves tasks and
// collapses stale rounds. Round ties are a data defect upstream; they
// are logged and resolved deterministically rather than surfaced.
func (s *reviewService) loadDeduped(ctx context.Context) ([]review.Enriched, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	sessions, err := uow.ReviewSessionRepository().FindAll(ctx,
		specification.OrderBy{Field: "scheduled_at"},
	)
	if err != nil {
		return nil, err
	}

	idx, err := s.liveTaskIndex(ctx)
	if err != nil {
		return nil, err
	}

	deduped, conflicts := review.Deduplicate(review.Enrich(sessions, idx))
	for _, taskId := range conflicts {
		s.logger.Warn("ReviewService", "Duplicate round number for task", map[string]interface{}{"task_id": taskId})
	}
	return deduped, nil
}

func (s *reviewService) GetBoard(ctx context.Context, req *dto.BoardQueryRequest) (*dto.ReviewBoardResponse, error) {
	deduped, err := s.loadDeduped(ctx)
	if err != nil {
		return nil, err
	}

	scope := review.DateScope(req.Scope)
	if scope == "" {
		scope = review.ScopeAllPending
	}
	q := review.Query{
		ChannelId: req.ChannelId,
		Search:    req.Search,
		Scope:     scope,
	}

	groups := review.Classify(deduped, q, s.now())

	return &dto.ReviewBoardResponse{
		Critical: s.toGroup("critical", groups.Critical),
		Revise:   s.toGroup("revise", groups.Revise),
		Today:    s.toGroup("today", groups.Today),
		Upcoming: s.toGroup("upcoming", groups.Upcoming),
	}, nil
}

func (s *reviewService) toGroup(key string, items []review.Enriched) dto.ReviewGroupResponse {
	out := dto.ReviewGroupResponse{
		Key:       key,
		Collapsed: review.CollapsedByDefault(key),
		Items:     make([]dto.ReviewItemResponse, 0, len(items)),
	}
	for _, e := range items {
		out.Items = append(out.Items, s.toItem(e))
	}
	return out
}

func (s *reviewService) toItem(e review.Enriched) dto.ReviewItemResponse {
	t := e.Task
	sess := e.Session
	return dto.ReviewItemResponse{
		SessionId:    sess.Id,
		TaskId:       sess.TaskId,
		Title:        t.Title,
		ChannelId:    t.ChannelId,
		Round:        sess.Round,
		RoundLabel:   roundLabel(sess.Round),
		ScheduledAt:  sess.ScheduledAt,
		Status:       string(sess.Status),
		Feedback:     sess.Feedback,
		Difficulty:   string(t.Difficulty),
		Caution:      t.Caution,
		Importance:   t.Importance,
		LatestAsset:  t.LatestAsset(),
		SubmitterId:  review.Submitter(t),
		GradePreview: grading.Grade(t.Difficulty, t.EstimatedHours, 0),
	}
}

func roundLabel(round int) string {
	if round <= 1 {
		return "First cut"
	}
	return fmt.Sprintf("Round %d", round)
}

func (s *reviewService) GetSummary(ctx context.Context) (*dto.ReviewSummaryResponse, error) {
	deduped, err := s.loadDeduped(ctx)
	if err != nil {
		return nil, err
	}

	sum := review.Summarize(deduped, s.now())
	return &dto.ReviewSummaryResponse{
		Pending:     sum.Pending,
		PassedToday: sum.PassedToday,
		Revise:      sum.Revise,
		Overdue:     sum.Overdue,
	}, nil
}

func (s *reviewService) GetSummaryDetail(ctx context.Context, bucket string) ([]*dto.ReviewSummaryDetailItem, error) {
	switch review.SummaryBucket(bucket) {
	case review.BucketPending, review.BucketPassedToday, review.BucketRevise, review.BucketOverdue:
	default:
		return nil, ErrNotFound
	}

	deduped, err := s.loadDeduped(ctx)
	if err != nil {
		return nil, err
	}

	filtered := review.FilterBucket(deduped, review.SummaryBucket(bucket), s.now())

	// Resolve submitter names in one batch.
	var submitterIds []uuid.UUID
	for _, e := range filtered {
		if id := review.Submitter(e.Task); id != nil {
			submitterIds = append(submitterIds, *id)
		}
	}
	names := map[uuid.UUID]string{}
	if len(submitterIds) > 0 {
		uow := s.uowFactory.NewUnitOfWork(ctx)
		users, err := uow.UserRepository().FindAll(ctx, specification.ByIDs{IDs: submitterIds})
		if err != nil {
			return nil, err
		}
		for _, u := range users {
			names[u.Id] = u.FullName
		}
	}

	out := make([]*dto.ReviewSummaryDetailItem, 0, len(filtered))
	for _, e := range filtered {
		item := &dto.ReviewSummaryDetailItem{
			SessionId:   e.Session.Id,
			Title:       e.Task.Title,
			RoundLabel:  roundLabel(e.Session.Round),
			SubmitterId: review.Submitter(e.Task),
			ScheduledAt: e.Session.ScheduledAt,
			Feedback:    e.Session.Feedback,
		}
		if item.SubmitterId != nil {
			if name, ok := names[*item.SubmitterId]; ok {
				item.SubmitterName = &name
			}
		}
		out = append(out, item)
	}
	return out, nil
}

func (s *reviewService) GetPresets(ctx context.Context) []grading.Preset {
	return grading.Presets()
}

// requireReviewer re-applies the reviewer gate on the write path. The
// UI already hides the buttons, but the check here is the one that
// counts.
func (s *reviewService) requireReviewer(ctx context.Context, uow unitofwork.UnitOfWork, reviewerId uuid.UUID) error {
	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: reviewerId})
	if err != nil {
		return err
	}
	if !review.CanReview(user) {
		return ErrForbidden
	}
	return nil
}

// loadActionable fetches a PENDING session plus its resolved task for a
// decision write. The task is re-read directly instead of through the
// cached index so grading never uses stale difficulty or hours.
func (s *reviewService) loadActionable(ctx context.Context, uow unitofwork.UnitOfWork, sessionId uuid.UUID) (*entity.ReviewSession, *entity.Task, error) {
	session, err := uow.ReviewSessionRepository().FindOne(ctx, specification.ByID{ID: sessionId})
	if err != nil {
		return nil, nil, err
	}
	if session == nil {
		return nil, nil, ErrNotFound
	}
	if session.Status != entity.ReviewStatusPending {
		return nil, nil, ErrInvalidTransition
	}

	task, err := uow.TaskRepository().FindOne(ctx, specification.ByID{ID: session.TaskId})
	if err != nil {
		return nil, nil, err
	}
	if task == nil {
		task = session.TaskSnapshot
	}
	if task == nil {
		return nil, nil, ErrNotFound
	}
	return session, task, nil
}

func (s *reviewService) Pass(ctx context.Context, reviewerId uuid.UUID, req *dto.PassReviewRequest) (*dto.PassReviewResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if err := s.requireReviewer(ctx, uow, reviewerId); err != nil {
		return nil, err
	}

	ok, err := s.locker.Acquire(ctx, req.Id)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrActionInFlight
	}
	defer s.locker.Release(ctx, req.Id)

	session, task, err := s.loadActionable(ctx, uow, req.Id)
	if err != nil {
		return nil, err
	}

	if _, known := map[entity.TaskDifficulty]bool{
		entity.TaskDifficultyEasy:   true,
		entity.TaskDifficultyMedium: true,
		entity.TaskDifficultyHard:   true,
	}[task.Difficulty]; !known {
		s.logger.Warn("ReviewService", "Unknown difficulty, grading as MEDIUM", map[string]interface{}{
			"task_id":    task.Id,
			"difficulty": task.Difficulty,
		})
	}

	adjustment := grading.ClampAdjustment(req.AdjustmentXP)
	breakdown := grading.Grade(task.Difficulty, task.EstimatedHours, adjustment)
	recipients := review.AwardRecipients(task)

	now := s.now()
	session.Status = entity.ReviewStatusPassed
	session.ReviewerId = &reviewerId
	session.Feedback = req.Feedback
	session.AwardedXP = &breakdown.TotalXP
	session.UpdatedAt = &now

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	// Order matters: the session decision lands first, then the task
	// leaves review. A failure in between leaves the task IN_REVIEW,
	// which operators can see and re-drive.
	if err := uow.ReviewSessionRepository().Update(ctx, session); err != nil {
		return nil, err
	}
	if err := uow.TaskRepository().UpdateWorkflowStatus(ctx, task.Id, entity.TaskWorkflowCompleted); err != nil {
		return nil, err
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}

	// Side effects only after the commit: the review is never left
	// ahead of an XP award that may not have happened.
	s.events.PublishXPAwarded(ctx, session.Id, task.Id, recipients, breakdown.TotalXP)
	s.events.PublishReviewPassed(ctx, session.Id, task.Id, reviewerId, breakdown.TotalXP)
	s.events.PublishWorkflowChanged(ctx, task.Id, entity.TaskWorkflowCompleted)
	s.notifyBoardChanged(ctx, session.Id, task.Id, "PASS")
	s.taskCache.Delete(taskIndexCacheKey)

	return &dto.PassReviewResponse{
		Id:         session.Id,
		Breakdown:  breakdown,
		Recipients: recipients,
	}, nil
}

func (s *reviewService) Revise(ctx context.Context, reviewerId uuid.UUID, req *dto.ReviseReviewRequest) (*dto.ReviseReviewResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if err := s.requireReviewer(ctx, uow, reviewerId); err != nil {
		return nil, err
	}

	ok, err := s.locker.Acquire(ctx, req.Id)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrActionInFlight
	}
	defer s.locker.Release(ctx, req.Id)

	session, task, err := s.loadActionable(ctx, uow, req.Id)
	if err != nil {
		return nil, err
	}

	now := s.now()
	session.Status = entity.ReviewStatusRevise
	session.ReviewerId = &reviewerId
	session.Feedback = &req.Feedback
	session.UpdatedAt = &now

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.ReviewSessionRepository().Update(ctx, session); err != nil {
		return nil, err
	}
	if err := uow.TaskRepository().UpdateWorkflowStatus(ctx, task.Id, entity.TaskWorkflowInProgress); err != nil {
		return nil, err
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}

	s.events.PublishReviewRevised(ctx, session.Id, task.Id, reviewerId, req.Feedback)
	s.events.PublishWorkflowChanged(ctx, task.Id, entity.TaskWorkflowInProgress)
	s.notifyBoardChanged(ctx, session.Id, task.Id, "REVISE")
	s.taskCache.Delete(taskIndexCacheKey)

	return &dto.ReviseReviewResponse{Id: session.Id}, nil
}

func (s *reviewService) notifyBoardChanged(ctx context.Context, sessionId, taskId uuid.UUID, action string) {
	msg := dto.BoardChangedMessage{
		SessionId: sessionId,
		TaskId:    taskId,
		Action:    action,
	}
	payload, err := json.Marshal(msg)
	if err != nil {
		return
	}
	if err := s.publisherService.Publish(ctx, payload); err != nil {
		s.logger.Warn("ReviewService", "Failed to publish board change", map[string]interface{}{"error": err.Error()})
	}
}
