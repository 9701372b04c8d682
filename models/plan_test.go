package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlanConflictClause(t *testing.T) {
	goalID := 7
	assert.Equal(t,
		`ON CONFLICT (user_id, goal_id, week_number) WHERE goal_id IS NOT NULL`,
		planConflictClause(&goalID))

	// Goal-less plans must still collapse onto one row per week.
	assert.Equal(t,
		`ON CONFLICT (user_id, week_number) WHERE goal_id IS NULL`,
		planConflictClause(nil))
}
