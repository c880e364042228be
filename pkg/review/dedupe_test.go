package review

import (
	"testing"

	"quality-gate-be/internal/entity"

	"github.com/google/uuid"
)

func enrichedRound(taskId uuid.UUID, round int) Enriched {
	return Enriched{
		Session: &entity.ReviewSession{Id: uuid.New(), TaskId: taskId, Round: round},
		Task:    &entity.Task{Id: taskId},
	}
}

func TestDeduplicateKeepsLatestRound(t *testing.T) {
	taskA := uuid.New()
	taskB := uuid.New()

	in := []Enriched{
		enrichedRound(taskA, 1),
		enrichedRound(taskB, 1),
		enrichedRound(taskA, 3),
		enrichedRound(taskA, 2),
	}

	out, conflicts := Deduplicate(in)
	if len(out) != 2 {
		t.Fatalf("Deduplicate() returned %d items, want 2", len(out))
	}
	if len(conflicts) != 0 {
		t.Fatalf("Deduplicate() reported %d conflicts, want 0", len(conflicts))
	}

	byTask := map[uuid.UUID]int{}
	for _, e := range out {
		byTask[e.Session.TaskId] = e.Session.Round
	}
	if byTask[taskA] != 3 {
		t.Errorf("task A kept round %d, want 3", byTask[taskA])
	}
	if byTask[taskB] != 1 {
		t.Errorf("task B kept round %d, want 1", byTask[taskB])
	}
}

func TestDeduplicateDropsUnknownTasks(t *testing.T) {
	in := []Enriched{
		{Session: &entity.ReviewSession{Id: uuid.New(), TaskId: uuid.New(), Round: 1}, Task: nil},
		enrichedRound(uuid.New(), 1),
	}

	out, _ := Deduplicate(in)
	if len(out) != 1 {
		t.Fatalf("Deduplicate() returned %d items, want 1", len(out))
	}
	if out[0].Task == nil {
		t.Error("Deduplicate() kept a session with no resolvable task")
	}
}

func TestDeduplicateRoundTie(t *testing.T) {
	taskId := uuid.New()
	first := enrichedRound(taskId, 2)
	second := enrichedRound(taskId, 2)

	out, conflicts := Deduplicate([]Enriched{first, second})
	if len(out) != 1 {
		t.Fatalf("Deduplicate() returned %d items, want 1", len(out))
	}
	// Last seen wins, deterministically.
	if out[0].Session.Id != second.Session.Id {
		t.Error("Deduplicate() did not keep the last-seen session on a round tie")
	}
	if len(conflicts) != 1 || conflicts[0] != taskId {
		t.Errorf("Deduplicate() conflicts = %v, want [%s]", conflicts, taskId)
	}
}

func TestDeduplicateIdempotent(t *testing.T) {
	taskA := uuid.New()
	in := []Enriched{
		enrichedRound(taskA, 1),
		enrichedRound(taskA, 2),
		enrichedRound(uuid.New(), 1),
	}

	once, _ := Deduplicate(in)
	twice, _ := Deduplicate(once)

	if len(once) != len(twice) {
		t.Fatalf("second pass changed the result: %d vs %d items", len(once), len(twice))
	}
	for i := range once {
		if once[i].Session.Id != twice[i].Session.Id {
			t.Errorf("second pass changed item %d", i)
		}
	}
}
