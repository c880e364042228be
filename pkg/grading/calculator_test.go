package grading

import (
	"testing"

	"quality-gate-be/internal/entity"
)

func TestGrade(t *testing.T) {
	tests := []struct {
		name       string
		difficulty entity.TaskDifficulty
		hours      float64
		adjustment int
		want       Breakdown
	}{
		{
			name:       "hard task with excellent bonus",
			difficulty: entity.TaskDifficultyHard,
			hours:      5,
			adjustment: 50,
			want:       Breakdown{BaseXP: 300, TimeBonusXP: 100, AdjustmentXP: 50, TotalXP: 450},
		},
		{
			name:       "easy task no adjustment",
			difficulty: entity.TaskDifficultyEasy,
			hours:      0,
			adjustment: 0,
			want:       Breakdown{BaseXP: 100, TimeBonusXP: 0, AdjustmentXP: 0, TotalXP: 100},
		},
		{
			name:       "medium task with penalty",
			difficulty: entity.TaskDifficultyMedium,
			hours:      3,
			adjustment: -20,
			want:       Breakdown{BaseXP: 200, TimeBonusXP: 60, AdjustmentXP: -20, TotalXP: 240},
		},
		{
			name:       "fractional hours floor",
			difficulty: entity.TaskDifficultyMedium,
			hours:      2.75,
			adjustment: 0,
			want:       Breakdown{BaseXP: 200, TimeBonusXP: 55, AdjustmentXP: 0, TotalXP: 255},
		},
		{
			name:       "unknown difficulty defaults to medium",
			difficulty: entity.TaskDifficulty("EXTREME"),
			hours:      1,
			adjustment: 0,
			want:       Breakdown{BaseXP: 200, TimeBonusXP: 20, AdjustmentXP: 0, TotalXP: 220},
		},
		{
			name:       "empty difficulty defaults to medium",
			difficulty: "",
			hours:      0,
			adjustment: 0,
			want:       Breakdown{BaseXP: 200, TimeBonusXP: 0, AdjustmentXP: 0, TotalXP: 200},
		},
		{
			name:       "negative hours count as zero",
			difficulty: entity.TaskDifficultyEasy,
			hours:      -4,
			adjustment: 0,
			want:       Breakdown{BaseXP: 100, TimeBonusXP: 0, AdjustmentXP: 0, TotalXP: 100},
		},
		{
			name:       "total is not floored at zero",
			difficulty: entity.TaskDifficultyEasy,
			hours:      0,
			adjustment: -150,
			want:       Breakdown{BaseXP: 100, TimeBonusXP: 0, AdjustmentXP: -150, TotalXP: -50},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Grade(tt.difficulty, tt.hours, tt.adjustment)
			if got != tt.want {
				t.Errorf("Grade() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestGradeDeterministic(t *testing.T) {
	a := Grade(entity.TaskDifficultyHard, 7.5, 30)
	b := Grade(entity.TaskDifficultyHard, 7.5, 30)
	if a != b {
		t.Errorf("Grade is not deterministic: %+v vs %+v", a, b)
	}
}

func TestClampAdjustment(t *testing.T) {
	tests := []struct {
		in   int
		want int
	}{
		{in: 0, want: 0},
		{in: 50, want: 50},
		{in: -100, want: -100},
		{in: 100, want: 100},
		{in: 150, want: 100},
		{in: -150, want: -100},
	}

	for _, tt := range tests {
		if got := ClampAdjustment(tt.in); got != tt.want {
			t.Errorf("ClampAdjustment(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestPresets(t *testing.T) {
	presets := Presets()
	if len(presets) != 4 {
		t.Fatalf("Presets() returned %d entries, want 4", len(presets))
	}

	wantValues := []int{-20, 20, 50, 0}
	for i, p := range presets {
		if p.Value != wantValues[i] {
			t.Errorf("Presets()[%d].Value = %d, want %d", i, p.Value, wantValues[i])
		}
		if ClampAdjustment(p.Value) != p.Value {
			t.Errorf("preset %q is outside the adjustment bounds", p.Label)
		}
	}
}
