package review

import (
	"quality-gate-be/internal/entity"

	"github.com/google/uuid"
)

// submitterOrder is the role-priority policy for the "submitter" shown
// in summary drill-downs: the first non-empty role set wins, and the
// first member of that set is the submitter. Editors submit cuts, so
// they outrank assignees, which outrank idea owners.
var submitterOrder = []func(*entity.Task) []uuid.UUID{
	func(t *entity.Task) []uuid.UUID { return t.EditorIds },
	func(t *entity.Task) []uuid.UUID { return t.AssigneeIds },
	func(t *entity.Task) []uuid.UUID { return t.IdeaOwnerIds },
}

// Submitter resolves the user credited with the submission, or nil
// when the task has no members at all.
func Submitter(t *entity.Task) *uuid.UUID {
	if t == nil {
		return nil
	}
	for _, accessor := range submitterOrder {
		if ids := accessor(t); len(ids) > 0 {
			return &ids[0]
		}
	}
	return nil
}

// AwardRecipients is the role union eligible for XP when a task passes
// review: idea owners, editors and assignees, each counted once. Every
// member receives the same total; there is no per-role weighting.
func AwardRecipients(t *entity.Task) []uuid.UUID {
	seen := make(map[uuid.UUID]bool)
	var out []uuid.UUID
	for _, set := range [][]uuid.UUID{t.IdeaOwnerIds, t.EditorIds, t.AssigneeIds} {
		for _, id := range set {
			if !seen[id] {
				seen[id] = true
				out = append(out, id)
			}
		}
	}
	return out
}
