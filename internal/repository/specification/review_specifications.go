package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ByTaskID filters review sessions by their owning task.
type ByTaskID struct {
	TaskID uuid.UUID
}

func (s ByTaskID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("task_id = ?", s.TaskID)
}

// StatusIn filters by a set of review statuses.
type StatusIn struct {
	Statuses []string
}

func (s StatusIn) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("status IN ?", s.Statuses)
}
