package grading

import (
	"math"

	"quality-gate-be/internal/entity"
)

// Reviewer adjustment slider bounds. These are a UI convenience only:
// Grade never rejects an out-of-range value, the client clamps.
const (
	AdjustmentMin  = -100
	AdjustmentMax  = 100
	AdjustmentStep = 10
)

const xpPerEstimatedHour = 20

var baseXPByDifficulty = map[entity.TaskDifficulty]int{
	entity.TaskDifficultyEasy:   100,
	entity.TaskDifficultyMedium: 200,
	entity.TaskDifficultyHard:   300,
}

// Breakdown is the grade computation for one passed review round. It
// is ephemeral; only TotalXP is persisted on the session.
type Breakdown struct {
	BaseXP       int `json:"base_xp"`
	TimeBonusXP  int `json:"time_bonus_xp"`
	AdjustmentXP int `json:"adjustment_xp"`
	TotalXP      int `json:"total_xp"`
}

// Preset is a named quick-adjust value offered by the review dialog.
type Preset struct {
	Label string `json:"label"`
	Value int    `json:"value"`
}

// Presets returns the quick-adjust presets in display order.
func Presets() []Preset {
	return []Preset{
		{Label: "late/needs fixing", Value: -20},
		{Label: "fast/good", Value: 20},
		{Label: "excellent", Value: 50},
		{Label: "reset", Value: 0},
	}
}

// Grade converts task metadata and the reviewer's judgment into an XP
// award. Deterministic: same inputs always yield the same breakdown.
// Unknown difficulty defaults to MEDIUM, negative or missing estimated
// hours count as zero; both are data-quality defaults, not errors.
// The total is intentionally not floored at zero: a large negative
// adjustment may drive it below the base.
func Grade(difficulty entity.TaskDifficulty, estimatedHours float64, adjustmentXP int) Breakdown {
	base, ok := baseXPByDifficulty[difficulty]
	if !ok {
		base = baseXPByDifficulty[entity.TaskDifficultyMedium]
	}

	if estimatedHours < 0 {
		estimatedHours = 0
	}
	bonus := int(math.Floor(estimatedHours * xpPerEstimatedHour))

	return Breakdown{
		BaseXP:       base,
		TimeBonusXP:  bonus,
		AdjustmentXP: adjustmentXP,
		TotalXP:      base + bonus + adjustmentXP,
	}
}

// ClampAdjustment bounds a slider value to [AdjustmentMin, AdjustmentMax].
func ClampAdjustment(v int) int {
	if v < AdjustmentMin {
		return AdjustmentMin
	}
	if v > AdjustmentMax {
		return AdjustmentMax
	}
	return v
}
