package mapper

import (
	"encoding/json"
	"time"

	"quality-gate-be/internal/entity"
	"quality-gate-be/internal/model"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// taskSnapshot is the JSONB shape of the task copy frozen on a review
// session at submission time.
type taskSnapshot struct {
	Id             uuid.UUID `json:"id"`
	Title          string    `json:"title"`
	ChannelId      uuid.UUID `json:"channel_id"`
	Difficulty     string    `json:"difficulty"`
	EstimatedHours float64   `json:"estimated_hours"`
	Caution        bool      `json:"caution"`
	Importance     string    `json:"importance"`
	Assets         []string  `json:"assets,omitempty"`
	AssigneeIds    []string  `json:"assignee_ids,omitempty"`
	IdeaOwnerIds   []string  `json:"idea_owner_ids,omitempty"`
	EditorIds      []string  `json:"editor_ids,omitempty"`
	WorkflowStatus string    `json:"workflow_status"`
}

type ReviewMapper struct{}

func NewReviewMapper() *ReviewMapper {
	return &ReviewMapper{}
}

func (m *ReviewMapper) ToEntity(s *model.ReviewSession) *entity.ReviewSession {
	if s == nil {
		return nil
	}

	var updatedAt *time.Time
	if !s.UpdatedAt.IsZero() {
		u := s.UpdatedAt
		updatedAt = &u
	}

	return &entity.ReviewSession{
		Id:           s.Id,
		TaskId:       s.TaskId,
		Round:        s.Round,
		ScheduledAt:  s.ScheduledAt,
		Status:       entity.ReviewStatus(s.Status),
		ReviewerId:   s.ReviewerId,
		Feedback:     s.Feedback,
		TaskSnapshot: m.snapshotToTask(s.TaskSnapshot),
		AwardedXP:    s.AwardedXP,
		CreatedAt:    s.CreatedAt,
		UpdatedAt:    updatedAt,
	}
}

func (m *ReviewMapper) ToModel(s *entity.ReviewSession) *model.ReviewSession {
	if s == nil {
		return nil
	}

	var updatedAt time.Time
	if s.UpdatedAt != nil {
		updatedAt = *s.UpdatedAt
	}

	return &model.ReviewSession{
		Id:           s.Id,
		TaskId:       s.TaskId,
		Round:        s.Round,
		ScheduledAt:  s.ScheduledAt,
		Status:       string(s.Status),
		ReviewerId:   s.ReviewerId,
		Feedback:     s.Feedback,
		TaskSnapshot: m.taskToSnapshot(s.TaskSnapshot),
		AwardedXP:    s.AwardedXP,
		CreatedAt:    s.CreatedAt,
		UpdatedAt:    updatedAt,
	}
}

func (m *ReviewMapper) ToEntities(sessions []*model.ReviewSession) []*entity.ReviewSession {
	entities := make([]*entity.ReviewSession, len(sessions))
	for i, s := range sessions {
		entities[i] = m.ToEntity(s)
	}
	return entities
}

// snapshotToTask decodes the cached task copy. A malformed or empty
// snapshot yields nil; enrichment then falls back to the live task.
func (m *ReviewMapper) snapshotToTask(raw datatypes.JSON) *entity.Task {
	if len(raw) == 0 {
		return nil
	}
	var snap taskSnapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return nil
	}
	if snap.Id == uuid.Nil {
		return nil
	}
	return &entity.Task{
		Id:             snap.Id,
		Title:          snap.Title,
		ChannelId:      snap.ChannelId,
		Difficulty:     entity.TaskDifficulty(snap.Difficulty),
		EstimatedHours: snap.EstimatedHours,
		Caution:        snap.Caution,
		Importance:     snap.Importance,
		Assets:         snap.Assets,
		AssigneeIds:    parseUUIDs(snap.AssigneeIds),
		IdeaOwnerIds:   parseUUIDs(snap.IdeaOwnerIds),
		EditorIds:      parseUUIDs(snap.EditorIds),
		WorkflowStatus: entity.TaskWorkflowStatus(snap.WorkflowStatus),
	}
}

func (m *ReviewMapper) taskToSnapshot(t *entity.Task) datatypes.JSON {
	if t == nil {
		return nil
	}
	snap := taskSnapshot{
		Id:             t.Id,
		Title:          t.Title,
		ChannelId:      t.ChannelId,
		Difficulty:     string(t.Difficulty),
		EstimatedHours: t.EstimatedHours,
		Caution:        t.Caution,
		Importance:     t.Importance,
		Assets:         t.Assets,
		AssigneeIds:    formatUUIDs(t.AssigneeIds),
		IdeaOwnerIds:   formatUUIDs(t.IdeaOwnerIds),
		EditorIds:      formatUUIDs(t.EditorIds),
		WorkflowStatus: string(t.WorkflowStatus),
	}
	raw, err := json.Marshal(snap)
	if err != nil {
		return nil
	}
	return datatypes.JSON(raw)
}
