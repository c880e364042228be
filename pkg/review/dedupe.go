package review

import "github.com/google/uuid"

// Deduplicate collapses multiple submission rounds of the same task to
// the single latest round. Sessions without a resolvable task are
// dropped. Round numbers are strictly increasing per task, so ties are
// a data defect; when one occurs the result is still deterministic
// (last seen wins, input order is stable) and the offending task ids
// are returned so the caller can log the anomaly.
func Deduplicate(in []Enriched) ([]Enriched, []uuid.UUID) {
	latest := make(map[uuid.UUID]int) // taskId -> index into out
	out := make([]Enriched, 0, len(in))
	var conflicts []uuid.UUID

	for _, e := range in {
		if e.Task == nil {
			continue
		}
		taskId := e.Session.TaskId
		i, seen := latest[taskId]
		if !seen {
			latest[taskId] = len(out)
			out = append(out, e)
			continue
		}
		if e.Session.Round == out[i].Session.Round {
			conflicts = append(conflicts, taskId)
		}
		if e.Session.Round >= out[i].Session.Round {
			out[i] = e
		}
	}

	return out, conflicts
}
