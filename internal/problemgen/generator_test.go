package problemgen

import (
	"math"
	"testing"

	"github.com/abhisek/mathmonsters/internal/catalog"
	"github.com/abhisek/mathmonsters/internal/rng"
)

func TestGenerate_OperandsWithinRange(t *testing.T) {
	cat := catalog.Default()
	for _, skill := range cat.Skills {
		for _, grade := range cat.Grades {
			for d := catalog.MinDifficulty; d <= catalog.MaxDifficulty; d++ {
				want := skill.Range(grade, d)
				for i := 0; i < 200; i++ {
					q := Generate(cat, skill.ID, grade, d)
					for _, op := range q.Operands {
						if !want.Contains(op) {
							t.Fatalf("%s grade %d d%d: operand %d outside %v", skill.ID, grade, d, op, want)
						}
					}
					if q.Difficulty != d {
						t.Fatalf("Difficulty = %d, want %d", q.Difficulty, d)
					}
				}
			}
		}
	}
}

func TestGenerate_UndefinedRangeDefaults(t *testing.T) {
	cat := catalog.Default()
	for i := 0; i < 200; i++ {
		q := Generate(cat, "math.addition", 9, 3)
		for _, op := range q.Operands {
			if !catalog.DefaultRange.Contains(op) {
				t.Fatalf("operand %d outside default range", op)
			}
		}
	}
}

func TestGenerate_SubtractionNeverNegative(t *testing.T) {
	cat := catalog.Default()
	st := rng.New("subtraction")
	for i := 0; i < 1000; i++ {
		var q Question
		q, st = GenerateSeeded(cat, "math.subtraction", 3, 1+i%5, st)
		if q.Answer < 0 {
			t.Fatalf("negative answer %d for %q", q.Answer, q.Prompt)
		}
		if q.Operands[0] < q.Operands[1] {
			t.Fatalf("minuend %d smaller than subtrahend %d", q.Operands[0], q.Operands[1])
		}
		if q.Operator != OpSubtract {
			t.Fatalf("Operator = %q, want %q", q.Operator, OpSubtract)
		}
	}
}

func TestGenerateSeeded_Reproducible(t *testing.T) {
	cat := catalog.Default()
	st := rng.State{Seed: "test", Cursor: 0}

	q1, next1 := GenerateSeeded(cat, "math.subtraction", 2, 1, st)
	q2, next2 := GenerateSeeded(cat, "math.subtraction", 2, 1, st)

	if q1.Prompt != q2.Prompt || q1.Answer != q2.Answer {
		t.Errorf("same seed produced %q/%d and %q/%d", q1.Prompt, q1.Answer, q2.Prompt, q2.Answer)
	}
	if next1 != next2 {
		t.Errorf("advanced states differ: %+v vs %+v", next1, next2)
	}
	if next1.Cursor != 2 {
		t.Errorf("cursor = %d, want 2", next1.Cursor)
	}

	if q1.Prompt != "9 - 6 = ?" || q1.Answer != 3 {
		t.Errorf("got %q = %d, want %q = 3", q1.Prompt, q1.Answer, "9 - 6 = ?")
	}
}

func TestGenerateSeeded_AdvancingChangesQuestion(t *testing.T) {
	cat := catalog.Default()
	st := rng.New("sequence")
	seen := make(map[string]bool)
	for i := 0; i < 20; i++ {
		var q Question
		q, st = GenerateSeeded(cat, "math.addition", 3, 5, st)
		seen[q.Prompt] = true
	}
	if len(seen) < 2 {
		t.Errorf("expected varied questions from an advancing stream, got %d distinct", len(seen))
	}
}

func TestGenerate_Addition(t *testing.T) {
	q := GenerateWith(catalog.Default(), "math.addition", 2, 1, func() float64 { return 0.5 })
	if q.Prompt != "5 + 5 = ?" || q.Answer != 10 {
		t.Errorf("got %q = %d", q.Prompt, q.Answer)
	}
	if q.Operator != OpAdd {
		t.Errorf("Operator = %q, want %q", q.Operator, OpAdd)
	}
}

func TestGenerate_UnknownSkillFallsBack(t *testing.T) {
	q := Generate(catalog.Default(), "math.unknown", 2, 1)
	if q.SkillID != "math.addition" {
		t.Errorf("SkillID = %q, want fallback to first skill", q.SkillID)
	}

	q = Generate(&catalog.Catalog{}, "anything", 2, 1)
	if q.SkillID != catalog.DefaultSkillID {
		t.Errorf("empty catalog SkillID = %q", q.SkillID)
	}
	if q.Answer != q.Operands[0]+q.Operands[1] {
		t.Errorf("empty catalog should generate addition, got %q", q.Prompt)
	}
}

func TestGenerate_ClampsDifficulty(t *testing.T) {
	q := Generate(catalog.Default(), "math.addition", 2, 42)
	if q.Difficulty != catalog.MaxDifficulty {
		t.Errorf("Difficulty = %d, want %d", q.Difficulty, catalog.MaxDifficulty)
	}
	q = Generate(catalog.Default(), "math.addition", 2, 0)
	if q.Difficulty != catalog.MinDifficulty {
		t.Errorf("Difficulty = %d, want %d", q.Difficulty, catalog.MinDifficulty)
	}
}

func TestParseAnswer(t *testing.T) {
	tests := []struct {
		in     string
		want   float64
		wantOK bool
	}{
		{"12", 12, true},
		{"  7 ", 7, true},
		{"3.0", 3, true},
		{"-4", -4, true},
		{"", 0, false},
		{"abc", 0, false},
		{"NaN", 0, false},
		{"Inf", 0, false},
		{"1 2", 0, false},
	}
	for _, tt := range tests {
		got, ok := ParseAnswer(tt.in)
		if ok != tt.wantOK {
			t.Errorf("ParseAnswer(%q) ok = %v, want %v", tt.in, ok, tt.wantOK)
			continue
		}
		if !ok {
			if !math.IsNaN(got) {
				t.Errorf("ParseAnswer(%q) = %v, want NaN", tt.in, got)
			}
			continue
		}
		if got != tt.want {
			t.Errorf("ParseAnswer(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestCheckAnswer(t *testing.T) {
	q := Question{Answer: 8}
	if !CheckAnswer(8, q) {
		t.Error("8 should be correct")
	}
	if CheckAnswer(8.5, q) {
		t.Error("8.5 should be incorrect")
	}
	if CheckAnswer(math.NaN(), q) {
		t.Error("NaN should never be correct")
	}
}
