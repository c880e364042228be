package mapper

import (
	"time"

	"quality-gate-be/internal/entity"
	"quality-gate-be/internal/model"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type TaskMapper struct{}

func NewTaskMapper() *TaskMapper {
	return &TaskMapper{}
}

func (m *TaskMapper) ToEntity(t *model.Task) *entity.Task {
	if t == nil {
		return nil
	}

	var updatedAt *time.Time
	if !t.UpdatedAt.IsZero() {
		u := t.UpdatedAt
		updatedAt = &u
	}

	return &entity.Task{
		Id:             t.Id,
		Title:          t.Title,
		ChannelId:      t.ChannelId,
		Difficulty:     entity.TaskDifficulty(t.Difficulty),
		EstimatedHours: t.EstimatedHours,
		Caution:        t.Caution,
		Importance:     t.Importance,
		Assets:         []string(t.Assets),
		AssigneeIds:    parseUUIDs(t.AssigneeIds),
		IdeaOwnerIds:   parseUUIDs(t.IdeaOwnerIds),
		EditorIds:      parseUUIDs(t.EditorIds),
		WorkflowStatus: entity.TaskWorkflowStatus(t.WorkflowStatus),
		CreatedAt:      t.CreatedAt,
		UpdatedAt:      updatedAt,
	}
}

func (m *TaskMapper) ToModel(t *entity.Task) *model.Task {
	if t == nil {
		return nil
	}

	var updatedAt time.Time
	if t.UpdatedAt != nil {
		updatedAt = *t.UpdatedAt
	}

	return &model.Task{
		Id:             t.Id,
		Title:          t.Title,
		ChannelId:      t.ChannelId,
		Difficulty:     string(t.Difficulty),
		EstimatedHours: t.EstimatedHours,
		Caution:        t.Caution,
		Importance:     t.Importance,
		Assets:         datatypes.NewJSONSlice(t.Assets),
		AssigneeIds:    datatypes.NewJSONSlice(formatUUIDs(t.AssigneeIds)),
		IdeaOwnerIds:   datatypes.NewJSONSlice(formatUUIDs(t.IdeaOwnerIds)),
		EditorIds:      datatypes.NewJSONSlice(formatUUIDs(t.EditorIds)),
		WorkflowStatus: string(t.WorkflowStatus),
		CreatedAt:      t.CreatedAt,
		UpdatedAt:      updatedAt,
	}
}

func (m *TaskMapper) ToEntities(tasks []*model.Task) []*entity.Task {
	entities := make([]*entity.Task, len(tasks))
	for i, t := range tasks {
		entities[i] = m.ToEntity(t)
	}
	return entities
}

// parseUUIDs converts the stored string ids, skipping malformed
// entries instead of failing the whole row.
func parseUUIDs(in []string) []uuid.UUID {
	out := make([]uuid.UUID, 0, len(in))
	for _, s := range in {
		if id, err := uuid.Parse(s); err == nil {
			out = append(out, id)
		}
	}
	return out
}

func formatUUIDs(in []uuid.UUID) []string {
	out := make([]string, len(in))
	for i, id := range in {
		out[i] = id.String()
	}
	return out
}
