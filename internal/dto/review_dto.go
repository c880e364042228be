package dto

import (
	"time"

	"quality-gate-be/pkg/grading"

	"github.com/google/uuid"
)

// BoardQueryRequest carries the board filter state: channel tab,
// title search and date scope. Parsed from query params.
type BoardQueryRequest struct {
	ChannelId *uuid.UUID `query:"channel_id"`
	Search    string     `query:"search"`
	Scope     string     `query:"scope"` // ALL_PENDING | TODAY | OVERDUE
}

type ReviewItemResponse struct {
	SessionId   uuid.UUID  `json:"session_id"`
	TaskId      uuid.UUID  `json:"task_id"`
	Title       string     `json:"title"`
	ChannelId   uuid.UUID  `json:"channel_id"`
	Round       int        `json:"round"`
	RoundLabel  string     `json:"round_label"`
	ScheduledAt time.Time  `json:"scheduled_at"`
	Status      string     `json:"status"`
	Feedback    *string    `json:"feedback,omitempty"`
	Difficulty  string     `json:"difficulty"`
	Caution     bool       `json:"caution"`
	Importance  string     `json:"importance,omitempty"`
	LatestAsset *string    `json:"latest_asset,omitempty"`
	SubmitterId *uuid.UUID `json:"submitter_id,omitempty"`

	// GradePreview shows what the round is worth before any reviewer
	// adjustment (adjustment 0).
	GradePreview grading.Breakdown `json:"grade_preview"`
}

type ReviewGroupResponse struct {
	Key       string               `json:"key"`
	Collapsed bool                 `json:"collapsed"`
	Items     []ReviewItemResponse `json:"items"`
}

// ReviewBoardResponse is the classified board in fixed render order.
type ReviewBoardResponse struct {
	Critical ReviewGroupResponse `json:"critical"`
	Revise   ReviewGroupResponse `json:"revise"`
	Today    ReviewGroupResponse `json:"today"`
	Upcoming ReviewGroupResponse `json:"upcoming"`
}

type PassReviewRequest struct {
	Id           uuid.UUID
	AdjustmentXP int     `json:"adjustment_xp"`
	Feedback     *string `json:"feedback,omitempty"`
}

type PassReviewResponse struct {
	Id         uuid.UUID         `json:"id"`
	Breakdown  grading.Breakdown `json:"breakdown"`
	Recipients []uuid.UUID       `json:"recipients"`
}

type ReviseReviewRequest struct {
	Id       uuid.UUID
	Feedback string `json:"feedback" validate:"required"`
}

type ReviseReviewResponse struct {
	Id uuid.UUID `json:"id"`
}

type ReviewSummaryResponse struct {
	Pending     int `json:"pending"`
	PassedToday int `json:"passed_today"`
	Revise      int `json:"revise"`
	Overdue     int `json:"overdue"`
}

type ReviewSummaryDetailItem struct {
	SessionId     uuid.UUID  `json:"session_id"`
	Title         string     `json:"title"`
	RoundLabel    string     `json:"round_label"`
	SubmitterId   *uuid.UUID `json:"submitter_id,omitempty"`
	SubmitterName *string    `json:"submitter_name,omitempty"`
	ScheduledAt   time.Time  `json:"scheduled_at"`
	Feedback      *string    `json:"feedback,omitempty"`
}

// BoardChangedMessage is the internal bus payload emitted after a
// successful PASS or REVISE write.
type BoardChangedMessage struct {
	SessionId uuid.UUID `json:"session_id"`
	TaskId    uuid.UUID `json:"task_id"`
	Action    string    `json:"action"` // PASS | REVISE
}
