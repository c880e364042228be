package review

import (
	"time"

	"quality-gate-be/internal/entity"
)

type SummaryBucket string

const (
	BucketPending     SummaryBucket = "pending"
	BucketPassedToday SummaryBucket = "passed_today"
	BucketRevise      SummaryBucket = "revise"
	BucketOverdue     SummaryBucket = "overdue"
)

// Summary holds the dashboard tile counts. Unlike the classification
// groups the predicates are independent: an overdue session counts as
// both pending and overdue.
type Summary struct {
	Pending     int
	PassedToday int
	Revise      int
	Overdue     int
}

// Summarize computes tile counts over the deduplicated session list.
func Summarize(in []Enriched, now time.Time) Summary {
	var s Summary
	for _, e := range in {
		switch e.Session.Status {
		case entity.ReviewStatusPending:
			s.Pending++
			if beforeDay(e.Session.ScheduledAt, now) {
				s.Overdue++
			}
		case entity.ReviewStatusPassed:
			if sameDay(e.Session.ScheduledAt, now) {
				s.PassedToday++
			}
		case entity.ReviewStatusRevise:
			s.Revise++
		}
	}
	return s
}

// InBucket reports whether a session satisfies a tile's predicate.
func InBucket(s *entity.ReviewSession, b SummaryBucket, now time.Time) bool {
	switch b {
	case BucketPending:
		return s.Status == entity.ReviewStatusPending
	case BucketPassedToday:
		return s.Status == entity.ReviewStatusPassed && sameDay(s.ScheduledAt, now)
	case BucketRevise:
		return s.Status == entity.ReviewStatusRevise
	case BucketOverdue:
		return s.Status == entity.ReviewStatusPending && beforeDay(s.ScheduledAt, now)
	}
	return false
}

// FilterBucket returns the sessions behind one tile, for drill-down.
func FilterBucket(in []Enriched, b SummaryBucket, now time.Time) []Enriched {
	out := make([]Enriched, 0)
	for _, e := range in {
		if InBucket(e.Session, b, now) {
			out = append(out, e)
		}
	}
	return out
}
