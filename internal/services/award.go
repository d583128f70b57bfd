package services

import (
	"fmt"

	"github.com/QaEldaniz/futureup-academy-sub002/internal/database"
	"github.com/QaEldaniz/futureup-academy-sub002/internal/models"
	"github.com/QaEldaniz/futureup-academy-sub002/pkg/logger"
)

// GrantResult is what a collaborator gets back from GrantXP.
type GrantResult struct {
	Transaction *models.XPTransaction `json:"transaction"`
	NewBadges   []models.Badge        `json:"newBadges"`
}

// GrantXP is the collaborator-facing entry point: record the XP, then
// run one badge evaluation pass. A ledger failure aborts the whole call;
// badge failures after a successful ledger write are logged and absorbed
// so the student keeps the recorded transaction.
func GrantXP(studentID string, reason models.XPReason, amount int, eventFacts Facts) (*GrantResult, error) {
	txn, err := RecordTransaction(studentID, amount, reason, nil)
	if err != nil {
		return nil, err
	}

	newBadges := EvaluateBadges(studentID, eventFacts)

	return &GrantResult{Transaction: txn, NewBadges: newBadges}, nil
}

// EvaluateBadges runs a single evaluation pass over the active catalog
// and awards every badge the student newly qualifies for. Exactly one
// pass per external event: bonus XP written here never re-triggers
// evaluation, so xp_total-conditioned badges cannot cascade into each
// other within one event. A badge that only becomes reachable through
// another badge's bonus is picked up on the next triggering event.
func EvaluateBadges(studentID string, eventFacts Facts) []models.Badge {
	var earnedIDs []string
	database.DB.Model(&models.StudentBadge{}).
		Where("student_id = ?", studentID).
		Pluck("badge_id", &earnedIDs)

	earned := make(map[string]bool, len(earnedIDs))
	for _, id := range earnedIDs {
		earned[id] = true
	}

	badges, err := ListActiveBadges()
	if err != nil {
		logger.Error().Err(err).Str("student_id", studentID).Msg("Failed to load badge catalog")
		return nil
	}

	facts := gatherFacts(studentID, eventFacts)

	var newBadges []models.Badge
	for _, badge := range badges {
		if earned[badge.ID] {
			continue
		}
		if !IsEligible(badge.ConditionType, badge.ConditionValue, facts) {
			continue
		}

		sb := models.StudentBadge{StudentID: studentID, BadgeID: badge.ID}
		if err := database.DB.Create(&sb).Error; err != nil {
			// A lost concurrent race or a transient write error: either
			// way this badge gets no duplicate row and no bonus. Keep
			// going so the remaining badges still get their chance.
			logger.Warn().Err(err).
				Str("student_id", studentID).
				Str("badge_code", badge.Code).
				Msg("Badge award skipped")
			continue
		}

		if badge.XPReward > 0 {
			if _, err := RecordTransaction(studentID, badge.XPReward, models.ReasonBadgeEarned,
				map[string]interface{}{"badgeCode": badge.Code}); err != nil {
				logger.Error().Err(err).
					Str("student_id", studentID).
					Str("badge_code", badge.Code).
					Msg("Badge bonus XP write failed")
			}
		}

		LogActivity(studentID, models.ActivityBadgeEarned, badge.ID,
			fmt.Sprintf("Earned the %q badge", badge.Name))

		newBadges = append(newBadges, badge)
	}

	return newBadges
}

// gatherFacts merges provider aggregates with the triggering event's own
// facts (event facts win) and stamps in the post-transaction XP total.
func gatherFacts(studentID string, eventFacts Facts) Facts {
	facts, err := Stats.Counts(studentID)
	if err != nil {
		logger.Warn().Err(err).Str("student_id", studentID).Msg("Stats provider failed, using event facts only")
		facts = Facts{}
	}
	for fact, count := range eventFacts {
		facts[fact] = count
	}
	if total, err := GetTotal(studentID); err == nil {
		facts[models.CondXPTotal] = total
	}
	return facts
}
