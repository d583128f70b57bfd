package services

import (
	"github.com/QaEldaniz/futureup-academy-sub002/internal/models"
	"github.com/QaEldaniz/futureup-academy-sub002/pkg/logger"
)

// Facts is a read-only snapshot of a student's countable progress,
// keyed by the condition kind each count answers.
type Facts map[models.ConditionType]int64

// IsEligible decides whether a badge condition is met by the given facts.
// All known condition kinds use >= threshold semantics. An unrecognized
// kind evaluates to false rather than erroring, so a malformed
// admin-entered condition can never break the award pipeline.
func IsEligible(condType models.ConditionType, condValue int, facts Facts) bool {
	if !condType.Known() {
		logger.Warn().
			Str("condition_type", string(condType)).
			Msg("Unknown badge condition type, treating as ineligible")
		return false
	}
	return facts[condType] >= int64(condValue)
}
