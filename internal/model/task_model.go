package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Task struct {
	Id             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Title          string    `gorm:"type:varchar(255);not null"`
	ChannelId      uuid.UUID `gorm:"type:uuid;not null;index"`
	Difficulty     string    `gorm:"type:varchar(10)"`
	EstimatedHours float64   `gorm:"default:0"`
	Caution        bool      `gorm:"default:false"`
	Importance     string    `gorm:"type:varchar(50)"`

	Assets       datatypes.JSONSlice[string] `gorm:"type:jsonb"`
	AssigneeIds  datatypes.JSONSlice[string] `gorm:"type:jsonb"`
	IdeaOwnerIds datatypes.JSONSlice[string] `gorm:"type:jsonb"`
	EditorIds    datatypes.JSONSlice[string] `gorm:"type:jsonb"`

	WorkflowStatus string    `gorm:"type:varchar(20);not null;default:'IN_PROGRESS';index"`
	CreatedAt      time.Time `gorm:"autoCreateTime"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime"`
}

func (Task) TableName() string {
	return "tasks"
}
