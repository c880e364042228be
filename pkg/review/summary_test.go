package review

import (
	"testing"

	"quality-gate-be/internal/entity"
)

func TestSummarize(t *testing.T) {
	overduePending := pendingAt(testNow.AddDate(0, 0, -2), someTask())
	todayPending := pendingAt(testNow, someTask())
	futurePending := pendingAt(testNow.AddDate(0, 0, 4), someTask())
	passedToday := withStatus(pendingAt(testNow, someTask()), entity.ReviewStatusPassed)
	passedLastWeek := withStatus(pendingAt(testNow.AddDate(0, 0, -6), someTask()), entity.ReviewStatusPassed)
	revise := withStatus(pendingAt(testNow, someTask()), entity.ReviewStatusRevise)

	in := []Enriched{overduePending, todayPending, futurePending, passedToday, passedLastWeek, revise}
	got := Summarize(in, testNow)

	want := Summary{Pending: 3, PassedToday: 1, Revise: 1, Overdue: 1}
	if got != want {
		t.Errorf("Summarize() = %+v, want %+v", got, want)
	}
}

func TestOverdueCountsAsPendingToo(t *testing.T) {
	// Tiles are independent predicates: one overdue session shows up in
	// both the pending and overdue counts.
	overdue := pendingAt(testNow.AddDate(0, 0, -1), someTask())
	got := Summarize([]Enriched{overdue}, testNow)

	if got.Pending != 1 || got.Overdue != 1 {
		t.Errorf("Summarize() = %+v, want pending=1 overdue=1", got)
	}
}

func TestFilterBucket(t *testing.T) {
	overdue := pendingAt(testNow.AddDate(0, 0, -1), someTask())
	today := pendingAt(testNow, someTask())
	passed := withStatus(pendingAt(testNow, someTask()), entity.ReviewStatusPassed)
	revise := withStatus(pendingAt(testNow, someTask()), entity.ReviewStatusRevise)

	in := []Enriched{overdue, today, passed, revise}

	tests := []struct {
		bucket SummaryBucket
		want   int
	}{
		{bucket: BucketPending, want: 2},
		{bucket: BucketPassedToday, want: 1},
		{bucket: BucketRevise, want: 1},
		{bucket: BucketOverdue, want: 1},
	}

	for _, tt := range tests {
		if out := FilterBucket(in, tt.bucket, testNow); len(out) != tt.want {
			t.Errorf("FilterBucket(%s) returned %d items, want %d", tt.bucket, len(out), tt.want)
		}
	}

	if out := FilterBucket(in, SummaryBucket("bogus"), testNow); len(out) != 0 {
		t.Error("unknown bucket should match nothing")
	}
}
