package review

import (
	"strings"
	"time"

	"quality-gate-be/internal/entity"

	"github.com/google/uuid"
)

type DateScope string

const (
	ScopeAllPending DateScope = "ALL_PENDING"
	ScopeToday      DateScope = "TODAY"
	ScopeOverdue    DateScope = "OVERDUE"
)

// Query is the immutable filter state for one classification pass. The
// UI's independent toggles (channel tab, search box, date scope) are
// folded into this single value object so classification stays a pure
// function of its inputs.
type Query struct {
	ChannelId *uuid.UUID
	Search    string
	Scope     DateScope
}

// Groups is the urgency partition of the filtered sessions. Render
// order is fixed: Critical, Revise, Today, Upcoming. Every PENDING or
// REVISE session in the filtered set lands in exactly one group;
// PASSED sessions never appear.
type Groups struct {
	Critical []Enriched
	Revise   []Enriched
	Today    []Enriched
	Upcoming []Enriched
}

// CollapsedByDefault reports the initial collapsed state of a group.
// Upcoming starts collapsed, the actionable groups start expanded.
func CollapsedByDefault(group string) bool {
	return group == "upcoming"
}

// Filter applies the channel filter, a case-insensitive title search
// and the date-scope predicate. Sessions whose task is unknown never
// match a channel or title, so they are excluded here as well.
func Filter(in []Enriched, q Query, now time.Time) []Enriched {
	search := strings.ToLower(strings.TrimSpace(q.Search))
	out := make([]Enriched, 0, len(in))
	for _, e := range in {
		if e.Task == nil {
			continue
		}
		if q.ChannelId != nil && e.Task.ChannelId != *q.ChannelId {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(e.Task.Title), search) {
			continue
		}
		if !matchesScope(e.Session, q.Scope, now) {
			continue
		}
		out = append(out, e)
	}
	return out
}

func matchesScope(s *entity.ReviewSession, scope DateScope, now time.Time) bool {
	switch scope {
	case ScopeToday:
		return s.Status == entity.ReviewStatusPending && sameDay(s.ScheduledAt, now)
	case ScopeOverdue:
		return s.Status == entity.ReviewStatusPending && beforeDay(s.ScheduledAt, now)
	default: // ALL_PENDING
		return s.Status != entity.ReviewStatusPassed
	}
}

// Classify partitions the filtered sessions into urgency buckets:
// overdue PENDING work is Critical, REVISE rounds regardless of date,
// PENDING due today, PENDING due later. Day boundaries are calendar
// days in now's location.
func Classify(in []Enriched, q Query, now time.Time) Groups {
	var g Groups
	for _, e := range Filter(in, q, now) {
		s := e.Session
		switch {
		case s.Status == entity.ReviewStatusRevise:
			g.Revise = append(g.Revise, e)
		case s.Status == entity.ReviewStatusPending && beforeDay(s.ScheduledAt, now):
			g.Critical = append(g.Critical, e)
		case s.Status == entity.ReviewStatusPending && sameDay(s.ScheduledAt, now):
			g.Today = append(g.Today, e)
		case s.Status == entity.ReviewStatusPending:
			g.Upcoming = append(g.Upcoming, e)
		}
	}
	return g
}

func sameDay(t, now time.Time) bool {
	t = t.In(now.Location())
	return t.Year() == now.Year() && t.YearDay() == now.YearDay()
}

func beforeDay(t, now time.Time) bool {
	t = t.In(now.Location())
	startOfToday := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return t.Before(startOfToday)
}
