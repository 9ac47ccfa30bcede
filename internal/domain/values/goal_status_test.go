package values

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGoalStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		status  GoalStatus
		symbol  string
		failure bool
	}{
		{GoalMet, "✓", false},
		{GoalMissed, "✗", true},
		{GoalError, "⚠", true},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			assert.Equal(t, tt.symbol, tt.status.Symbol())
			assert.Equal(t, tt.failure, tt.status.IsFailure())
		})
	}

	assert.Equal(t, "?", GoalStatus("bogus").Symbol())
}
