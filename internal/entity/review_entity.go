package entity

import (
	"time"

	"github.com/google/uuid"
)

type ReviewStatus string

const (
	ReviewStatusPending ReviewStatus = "PENDING"
	ReviewStatusPassed  ReviewStatus = "PASSED"
	ReviewStatusRevise  ReviewStatus = "REVISE"
)

// ReviewSession is one submission-and-decision round for a task.
// Round numbers increase monotonically per task; only the session with
// the highest round is active for decision-making, older rounds are
// kept as history.
type ReviewSession struct {
	Id          uuid.UUID
	TaskId      uuid.UUID
	Round       int
	ScheduledAt time.Time
	Status      ReviewStatus
	ReviewerId  *uuid.UUID
	Feedback    *string

	// TaskSnapshot is the task as it looked when the round was created.
	// It may be stale; the live task record supersedes it.
	TaskSnapshot *Task

	// AwardedXP is set once the round passes review.
	AwardedXP *int

	CreatedAt time.Time
	UpdatedAt *time.Time
}
