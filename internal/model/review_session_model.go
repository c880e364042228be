package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type ReviewSession struct {
	Id          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	TaskId      uuid.UUID `gorm:"type:uuid;not null;index:idx_review_sessions_task_round,priority:1"`
	Round       int       `gorm:"not null;index:idx_review_sessions_task_round,priority:2"`
	ScheduledAt time.Time `gorm:"not null;index"`
	Status      string    `gorm:"type:varchar(10);not null;default:'PENDING';index"`
	ReviewerId  *uuid.UUID `gorm:"type:uuid"`
	Feedback    *string    `gorm:"type:text"`

	// TaskSnapshot is the task record frozen at submission time.
	TaskSnapshot datatypes.JSON `gorm:"type:jsonb"`

	AwardedXP *int
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (ReviewSession) TableName() string {
	return "review_sessions"
}
