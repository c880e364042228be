package review

import (
	"testing"

	"quality-gate-be/internal/entity"

	"github.com/google/uuid"
)

func TestSubmitter(t *testing.T) {
	editor := uuid.New()
	assignee := uuid.New()
	owner := uuid.New()

	tests := []struct {
		name string
		task *entity.Task
		want *uuid.UUID
	}{
		{
			name: "editor outranks everyone",
			task: &entity.Task{EditorIds: []uuid.UUID{editor}, AssigneeIds: []uuid.UUID{assignee}, IdeaOwnerIds: []uuid.UUID{owner}},
			want: &editor,
		},
		{
			name: "assignee when no editor",
			task: &entity.Task{AssigneeIds: []uuid.UUID{assignee}, IdeaOwnerIds: []uuid.UUID{owner}},
			want: &assignee,
		},
		{
			name: "idea owner as last resort",
			task: &entity.Task{IdeaOwnerIds: []uuid.UUID{owner}},
			want: &owner,
		},
		{
			name: "no members",
			task: &entity.Task{},
			want: nil,
		},
		{
			name: "nil task",
			task: nil,
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Submitter(tt.task)
			if (got == nil) != (tt.want == nil) {
				t.Fatalf("Submitter() = %v, want %v", got, tt.want)
			}
			if got != nil && *got != *tt.want {
				t.Errorf("Submitter() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestAwardRecipients(t *testing.T) {
	owner := uuid.New()
	editor := uuid.New()
	assignee := uuid.New()

	task := &entity.Task{
		IdeaOwnerIds: []uuid.UUID{owner},
		EditorIds:    []uuid.UUID{editor, owner}, // owner doubles as editor
		AssigneeIds:  []uuid.UUID{assignee},
	}

	got := AwardRecipients(task)
	if len(got) != 3 {
		t.Fatalf("AwardRecipients() returned %d ids, want 3 (dedup across roles)", len(got))
	}

	seen := map[uuid.UUID]bool{}
	for _, id := range got {
		if seen[id] {
			t.Errorf("AwardRecipients() returned duplicate id %s", id)
		}
		seen[id] = true
	}
	for _, id := range []uuid.UUID{owner, editor, assignee} {
		if !seen[id] {
			t.Errorf("AwardRecipients() missing %s", id)
		}
	}
}

func TestAwardRecipientsEmptyTask(t *testing.T) {
	if got := AwardRecipients(&entity.Task{}); len(got) != 0 {
		t.Errorf("AwardRecipients() on empty task = %v, want empty", got)
	}
}
