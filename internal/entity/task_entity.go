package entity

import (
	"time"

	"github.com/google/uuid"
)

type TaskDifficulty string
type TaskWorkflowStatus string

const (
	TaskDifficultyEasy   TaskDifficulty = "EASY"
	TaskDifficultyMedium TaskDifficulty = "MEDIUM"
	TaskDifficultyHard   TaskDifficulty = "HARD"

	TaskWorkflowInProgress TaskWorkflowStatus = "IN_PROGRESS"
	TaskWorkflowInReview   TaskWorkflowStatus = "IN_REVIEW"
	TaskWorkflowCompleted  TaskWorkflowStatus = "COMPLETED"
)

// Task is owned by the task planner; this service reads it for review
// enrichment and grading, and only ever writes WorkflowStatus.
type Task struct {
	Id             uuid.UUID
	Title          string
	ChannelId      uuid.UUID
	Difficulty     TaskDifficulty
	EstimatedHours float64
	Caution        bool
	Importance     string

	// Assets is ordered oldest first; the last entry is the submission
	// under review.
	Assets []string

	AssigneeIds  []uuid.UUID
	IdeaOwnerIds []uuid.UUID
	EditorIds    []uuid.UUID

	WorkflowStatus TaskWorkflowStatus
	CreatedAt      time.Time
	UpdatedAt      *time.Time
}

// LatestAsset returns the most recent submission, or nil if none exist.
func (t *Task) LatestAsset() *string {
	if len(t.Assets) == 0 {
		return nil
	}
	return &t.Assets[len(t.Assets)-1]
}
