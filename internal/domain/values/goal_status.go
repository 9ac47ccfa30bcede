package values

// GoalStatus is the outcome of evaluating one goal against a recipe.
type GoalStatus string

const (
	// GoalMet indicates the expression evaluated to true
	GoalMet GoalStatus = "met"
	// GoalMissed indicates the expression evaluated to false
	GoalMissed GoalStatus = "missed"
	// GoalError indicates the expression could not be compiled or run
	GoalError GoalStatus = "error"
)

// IsFailure returns true for missed and errored goals
func (s GoalStatus) IsFailure() bool {
	return s == GoalMissed || s == GoalError
}

// Symbol returns the single-character marker used in terminal output.
func (s GoalStatus) Symbol() string {
	switch s {
	case GoalMet:
		return "✓"
	case GoalMissed:
		return "✗"
	case GoalError:
		return "⚠"
	default:
		return "?"
	}
}
