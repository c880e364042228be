package review

import (
	"testing"
	"time"

	"quality-gate-be/internal/entity"

	"github.com/google/uuid"
)

var testNow = time.Date(2026, 3, 10, 14, 0, 0, 0, time.UTC)

func pendingAt(scheduled time.Time, task *entity.Task) Enriched {
	return Enriched{
		Session: &entity.ReviewSession{
			Id:          uuid.New(),
			TaskId:      task.Id,
			Round:       1,
			ScheduledAt: scheduled,
			Status:      entity.ReviewStatusPending,
		},
		Task: task,
	}
}

func withStatus(e Enriched, status entity.ReviewStatus) Enriched {
	e.Session.Status = status
	return e
}

func someTask() *entity.Task {
	return &entity.Task{Id: uuid.New(), Title: "Episode cut", ChannelId: uuid.New()}
}

func TestClassifyPartition(t *testing.T) {
	overdue := pendingAt(testNow.AddDate(0, 0, -3), someTask())
	today := pendingAt(testNow.Add(2*time.Hour), someTask())
	upcoming := pendingAt(testNow.AddDate(0, 0, 5), someTask())
	revise := withStatus(pendingAt(testNow.AddDate(0, 0, -1), someTask()), entity.ReviewStatusRevise)
	passed := withStatus(pendingAt(testNow, someTask()), entity.ReviewStatusPassed)

	in := []Enriched{overdue, today, upcoming, revise, passed}
	g := Classify(in, Query{Scope: ScopeAllPending}, testNow)

	total := len(g.Critical) + len(g.Revise) + len(g.Today) + len(g.Upcoming)
	if total != 4 {
		t.Fatalf("classified %d sessions, want 4 (PASSED never appears)", total)
	}

	if len(g.Critical) != 1 || g.Critical[0].Session.Id != overdue.Session.Id {
		t.Error("overdue pending session not in Critical")
	}
	if len(g.Revise) != 1 || g.Revise[0].Session.Id != revise.Session.Id {
		t.Error("revise session not in Revise")
	}
	if len(g.Today) != 1 || g.Today[0].Session.Id != today.Session.Id {
		t.Error("session due today not in Today")
	}
	if len(g.Upcoming) != 1 || g.Upcoming[0].Session.Id != upcoming.Session.Id {
		t.Error("future session not in Upcoming")
	}
}

func TestClassifyReviseBeatsDate(t *testing.T) {
	// A REVISE round scheduled in the past stays in Revise, not Critical.
	revise := withStatus(pendingAt(testNow.AddDate(0, 0, -7), someTask()), entity.ReviewStatusRevise)

	g := Classify([]Enriched{revise}, Query{Scope: ScopeAllPending}, testNow)
	if len(g.Revise) != 1 || len(g.Critical) != 0 {
		t.Errorf("revise/critical = %d/%d, want 1/0", len(g.Revise), len(g.Critical))
	}
}

func TestClassifyDayBoundary(t *testing.T) {
	// 23:59 yesterday is Critical; 00:00 today is Today.
	lateYesterday := pendingAt(time.Date(2026, 3, 9, 23, 59, 0, 0, time.UTC), someTask())
	earlyToday := pendingAt(time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC), someTask())

	g := Classify([]Enriched{lateYesterday, earlyToday}, Query{Scope: ScopeAllPending}, testNow)
	if len(g.Critical) != 1 || g.Critical[0].Session.Id != lateYesterday.Session.Id {
		t.Error("23:59 yesterday should be Critical")
	}
	if len(g.Today) != 1 || g.Today[0].Session.Id != earlyToday.Session.Id {
		t.Error("00:00 today should be Today")
	}
}

func TestFilterChannel(t *testing.T) {
	taskA := someTask()
	taskB := someTask()
	in := []Enriched{
		pendingAt(testNow, taskA),
		pendingAt(testNow, taskB),
	}

	out := Filter(in, Query{ChannelId: &taskA.ChannelId, Scope: ScopeAllPending}, testNow)
	if len(out) != 1 || out[0].Task.Id != taskA.Id {
		t.Errorf("channel filter returned %d items", len(out))
	}
}

func TestFilterSearchCaseInsensitive(t *testing.T) {
	task := someTask()
	task.Title = "Channel Trailer Recut"
	in := []Enriched{pendingAt(testNow, task)}

	if out := Filter(in, Query{Search: "trailer", Scope: ScopeAllPending}, testNow); len(out) != 1 {
		t.Error("lowercase search did not match mixed-case title")
	}
	if out := Filter(in, Query{Search: "  TRAILER  ", Scope: ScopeAllPending}, testNow); len(out) != 1 {
		t.Error("search term should be trimmed and case-folded")
	}
	if out := Filter(in, Query{Search: "podcast", Scope: ScopeAllPending}, testNow); len(out) != 0 {
		t.Error("non-matching search returned results")
	}
}

func TestFilterScopes(t *testing.T) {
	overdue := pendingAt(testNow.AddDate(0, 0, -1), someTask())
	today := pendingAt(testNow, someTask())
	future := pendingAt(testNow.AddDate(0, 0, 2), someTask())
	revise := withStatus(pendingAt(testNow, someTask()), entity.ReviewStatusRevise)

	in := []Enriched{overdue, today, future, revise}

	tests := []struct {
		scope DateScope
		want  int
	}{
		{scope: ScopeAllPending, want: 4}, // everything not PASSED
		{scope: ScopeToday, want: 1},      // pending due today only
		{scope: ScopeOverdue, want: 1},    // pending past due only
	}

	for _, tt := range tests {
		if out := Filter(in, Query{Scope: tt.scope}, testNow); len(out) != tt.want {
			t.Errorf("Filter(scope=%s) returned %d items, want %d", tt.scope, len(out), tt.want)
		}
	}
}

func TestFilterDropsUnknownTasks(t *testing.T) {
	in := []Enriched{
		{Session: &entity.ReviewSession{Id: uuid.New(), ScheduledAt: testNow, Status: entity.ReviewStatusPending}, Task: nil},
	}
	if out := Filter(in, Query{Scope: ScopeAllPending}, testNow); len(out) != 0 {
		t.Error("session with unknown task should not pass the filter")
	}
}

func TestCollapsedByDefault(t *testing.T) {
	if !CollapsedByDefault("upcoming") {
		t.Error("upcoming should start collapsed")
	}
	for _, g := range []string{"critical", "revise", "today"} {
		if CollapsedByDefault(g) {
			t.Errorf("%s should start expanded", g)
		}
	}
}
