package review

import (
	"quality-gate-be/internal/entity"

	"github.com/google/uuid"
)

// Enriched pairs a review session with its resolved task. Task is nil
// when neither the live task list nor the session snapshot knows the
// task; consumers render such sessions as "Unknown Task" (and the
// deduplication stage drops them, since they cannot be actioned).
type Enriched struct {
	Session *entity.ReviewSession
	Task    *entity.Task
}

// TaskIndex is the live task list keyed by id.
type TaskIndex map[uuid.UUID]*entity.Task

func BuildTaskIndex(tasks []*entity.Task) TaskIndex {
	idx := make(TaskIndex, len(tasks))
	for _, t := range tasks {
		idx[t.Id] = t
	}
	return idx
}

// ResolveTask merges a session's cached snapshot with the live task
// list. Precedence is explicit and total: the live record wins, the
// cached snapshot is the fallback, nil is the final fallback.
func ResolveTask(session *entity.ReviewSession, live TaskIndex) *entity.Task {
	if t, ok := live[session.TaskId]; ok {
		return t
	}
	if session.TaskSnapshot != nil {
		return session.TaskSnapshot
	}
	return nil
}

// Enrich resolves every session against the live task index. Pure
// projection, no side effects; input order is preserved.
func Enrich(sessions []*entity.ReviewSession, live TaskIndex) []Enriched {
	out := make([]Enriched, 0, len(sessions))
	for _, s := range sessions {
		out = append(out, Enriched{Session: s, Task: ResolveTask(s, live)})
	}
	return out
}
