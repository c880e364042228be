package review

import (
	"testing"

	"quality-gate-be/internal/entity"

	"github.com/google/uuid"
)

func TestResolveTask(t *testing.T) {
	taskId := uuid.New()
	live := &entity.Task{Id: taskId, Title: "live title"}
	snapshot := &entity.Task{Id: taskId, Title: "stale title"}

	tests := []struct {
		name      string
		session   *entity.ReviewSession
		index     TaskIndex
		wantTitle string
		wantNil   bool
	}{
		{
			name:      "live task wins over snapshot",
			session:   &entity.ReviewSession{TaskId: taskId, TaskSnapshot: snapshot},
			index:     TaskIndex{taskId: live},
			wantTitle: "live title",
		},
		{
			name:      "snapshot fallback when task deleted",
			session:   &entity.ReviewSession{TaskId: taskId, TaskSnapshot: snapshot},
			index:     TaskIndex{},
			wantTitle: "stale title",
		},
		{
			name:    "nil when neither exists",
			session: &entity.ReviewSession{TaskId: taskId},
			index:   TaskIndex{},
			wantNil: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveTask(tt.session, tt.index)
			if tt.wantNil {
				if got != nil {
					t.Fatalf("ResolveTask() = %+v, want nil", got)
				}
				return
			}
			if got == nil || got.Title != tt.wantTitle {
				t.Errorf("ResolveTask() = %+v, want title %q", got, tt.wantTitle)
			}
		})
	}
}

func TestEnrichPreservesOrder(t *testing.T) {
	sessions := []*entity.ReviewSession{
		{Id: uuid.New(), TaskId: uuid.New()},
		{Id: uuid.New(), TaskId: uuid.New()},
		{Id: uuid.New(), TaskId: uuid.New()},
	}

	enriched := Enrich(sessions, TaskIndex{})
	if len(enriched) != len(sessions) {
		t.Fatalf("Enrich() returned %d items, want %d", len(enriched), len(sessions))
	}
	for i, e := range enriched {
		if e.Session.Id != sessions[i].Id {
			t.Errorf("Enrich() reordered input at index %d", i)
		}
		if e.Task != nil {
			t.Errorf("Enrich() resolved a task for an unknown id at index %d", i)
		}
	}
}
