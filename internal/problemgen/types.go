package problemgen

// Operator is the arithmetic operation of a question.
type Operator string

const (
	OpAdd      Operator = "+"
	OpSubtract Operator = "-"
)

// Question represents a generated arithmetic question ready for display.
type Question struct {
	// Prompt is the text shown to the player, e.g. "7 + 5 = ?".
	Prompt string `json:"prompt"`

	// Answer is the single correct answer.
	Answer int `json:"answer"`

	// Operands are the integers in display order. For subtraction the
	// larger operand comes first.
	Operands []int `json:"operands"`

	// Operator is the operation applied to Operands.
	Operator Operator `json:"operator"`

	// SkillID is the skill this question was generated for.
	SkillID string `json:"skillId"`

	// Difficulty is the clamped difficulty level the operand range came from.
	Difficulty int `json:"difficulty"`
}

// Clone returns a deep copy of q.
func (q Question) Clone() Question {
	q.Operands = append([]int(nil), q.Operands...)
	return q
}
