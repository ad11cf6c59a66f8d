package mastery

import (
	"math"
	"testing"
)

func TestUpdateDifficulty_LevelUpOnFastStreak(t *testing.T) {
	s := NewSkillState()
	s = UpdateDifficulty(true, s, 2000)
	if s.Difficulty != 1 || s.CorrectStreak != 1 {
		t.Fatalf("after 1 correct: difficulty %d streak %d", s.Difficulty, s.CorrectStreak)
	}
	s = UpdateDifficulty(true, s, 2000)
	if s.Difficulty != 2 {
		t.Errorf("Difficulty = %d, want 2", s.Difficulty)
	}
	if s.CorrectStreak != 0 {
		t.Errorf("CorrectStreak = %d, want reset to 0", s.CorrectStreak)
	}
}

func TestUpdateDifficulty_SlowStreakKeepsLevel(t *testing.T) {
	s := NewSkillState()
	s = UpdateDifficulty(true, s, 9000)
	s = UpdateDifficulty(true, s, 9000)
	if s.Difficulty != 1 {
		t.Errorf("Difficulty = %d, want 1 with slow average", s.Difficulty)
	}
	if s.CorrectStreak != 2 {
		t.Errorf("CorrectStreak = %d, want 2 kept", s.CorrectStreak)
	}

	// A fast third answer brings the average under the gate.
	s = UpdateDifficulty(true, s, 0)
	if s.AverageResponseMs != 6000 {
		t.Fatalf("AverageResponseMs = %v, want 6000", s.AverageResponseMs)
	}
	if s.Difficulty != 1 {
		t.Errorf("average exactly at gate must not level up, got %d", s.Difficulty)
	}
	s = UpdateDifficulty(true, s, 0)
	if s.Difficulty != 2 {
		t.Errorf("Difficulty = %d, want 2 once average < 6000", s.Difficulty)
	}
}

func TestUpdateDifficulty_LevelDown(t *testing.T) {
	s := SkillState{Difficulty: 3}
	s = UpdateDifficulty(false, s, 1000)
	if s.Difficulty != 3 || s.IncorrectStreak != 1 {
		t.Fatalf("after 1 incorrect: difficulty %d streak %d", s.Difficulty, s.IncorrectStreak)
	}
	s = UpdateDifficulty(false, s, 1000)
	if s.Difficulty != 2 {
		t.Errorf("Difficulty = %d, want 2", s.Difficulty)
	}
	if s.IncorrectStreak != 0 {
		t.Errorf("IncorrectStreak = %d, want 0", s.IncorrectStreak)
	}
}

func TestUpdateDifficulty_Bounds(t *testing.T) {
	top := UpdateDifficulty(true, SkillState{Difficulty: 5, CorrectStreak: 1}, 100)
	if top.Difficulty != 5 || top.CorrectStreak != 0 {
		t.Errorf("at max: difficulty %d streak %d", top.Difficulty, top.CorrectStreak)
	}
	bottom := UpdateDifficulty(false, SkillState{Difficulty: 1, IncorrectStreak: 1}, 100)
	if bottom.Difficulty != 1 || bottom.IncorrectStreak != 0 {
		t.Errorf("at min: difficulty %d streak %d", bottom.Difficulty, bottom.IncorrectStreak)
	}
}

func TestUpdateDifficulty_StreaksExclusive(t *testing.T) {
	s := UpdateDifficulty(true, SkillState{Difficulty: 2, IncorrectStreak: 1}, 100)
	if s.IncorrectStreak != 0 {
		t.Errorf("correct answer left IncorrectStreak = %d", s.IncorrectStreak)
	}
	s = UpdateDifficulty(false, SkillState{Difficulty: 2, CorrectStreak: 1}, 100)
	if s.CorrectStreak != 0 {
		t.Errorf("incorrect answer left CorrectStreak = %d", s.CorrectStreak)
	}
}

func TestUpdateDifficulty_Counters(t *testing.T) {
	s := NewSkillState()
	s = UpdateDifficulty(true, s, 1000)
	s = UpdateDifficulty(false, s, 3000)
	s = UpdateDifficulty(true, s, 2000)
	if s.TotalAnswered != 3 || s.TotalCorrect != 2 {
		t.Errorf("totals = %d/%d, want 2/3", s.TotalCorrect, s.TotalAnswered)
	}
	if s.AverageResponseMs != 2000 {
		t.Errorf("AverageResponseMs = %v, want 2000", s.AverageResponseMs)
	}
	if math.Abs(s.Accuracy()-2.0/3.0) > 1e-9 {
		t.Errorf("Accuracy = %v", s.Accuracy())
	}
}

func TestUpdateDifficulty_NeverOutOfRange(t *testing.T) {
	starts := []SkillState{
		{Difficulty: -10},
		{Difficulty: 0, CorrectStreak: 5},
		{Difficulty: 99, IncorrectStreak: 7},
		{Difficulty: 3, AverageResponseMs: math.NaN(), TotalAnswered: -2},
	}
	latencies := []float64{-50, 0, 1, 5999, 6000, 1e9, math.Inf(1), math.NaN()}
	for _, start := range starts {
		for _, correct := range []bool{true, false} {
			for _, ms := range latencies {
				got := UpdateDifficulty(correct, start, ms)
				if got.Difficulty < 1 || got.Difficulty > 5 {
					t.Errorf("UpdateDifficulty(%v, %+v, %v).Difficulty = %d", correct, start, ms, got.Difficulty)
				}
				if got.AverageResponseMs < 0 || math.IsNaN(got.AverageResponseMs) {
					t.Errorf("AverageResponseMs = %v", got.AverageResponseMs)
				}
				if got.TotalAnswered < got.TotalCorrect {
					t.Errorf("answered %d < correct %d", got.TotalAnswered, got.TotalCorrect)
				}
			}
		}
	}
}

func TestUpdateDifficulty_Pure(t *testing.T) {
	in := SkillState{Difficulty: 2, CorrectStreak: 1, TotalAnswered: 1, TotalCorrect: 1, AverageResponseMs: 500}
	copyIn := in
	_ = UpdateDifficulty(true, in, 100)
	if in != copyIn {
		t.Errorf("input mutated: %+v", in)
	}
}

func TestSanitize(t *testing.T) {
	got := Sanitize(SkillState{
		Difficulty:        8,
		CorrectStreak:     -1,
		IncorrectStreak:   3,
		TotalCorrect:      5,
		TotalAnswered:     2,
		AverageResponseMs: -4,
	})
	want := SkillState{Difficulty: 5, IncorrectStreak: 3, TotalCorrect: 5, TotalAnswered: 5}
	if got != want {
		t.Errorf("Sanitize = %+v, want %+v", got, want)
	}
	if again := Sanitize(got); again != got {
		t.Errorf("Sanitize not idempotent: %+v", again)
	}
}

func TestDifficultyMeter(t *testing.T) {
	if got := DifficultyMeter(2); got != "●●○○○" {
		t.Errorf("DifficultyMeter(2) = %q", got)
	}
	if got := DifficultyMeter(0); got != "●○○○○" {
		t.Errorf("DifficultyMeter(0) = %q", got)
	}
}
