package seeds

import (
	"github.com/QaEldaniz/futureup-academy-sub002/internal/database"
	"github.com/QaEldaniz/futureup-academy-sub002/internal/models"
	"github.com/QaEldaniz/futureup-academy-sub002/pkg/logger"
)

// defaultBadges is the stock catalog every academy starts with.
var defaultBadges = []models.Badge{
	{
		Code:           "FIRST_LESSON",
		Name:           "First Lesson",
		Description:    "Completed your very first lesson.",
		Icon:           "book-open",
		Category:       models.BadgeCategoryLearning,
		ConditionType:  models.CondLessonsCompleted,
		ConditionValue: 1,
		XPReward:       50,
	},
	{
		Code:           "LESSON_MASTER",
		Name:           "Lesson Master",
		Description:    "Completed 10 lessons.",
		Icon:           "graduation-cap",
		Category:       models.BadgeCategoryLearning,
		ConditionType:  models.CondLessonsCompleted,
		ConditionValue: 10,
		XPReward:       200,
	},
	{
		Code:           "FIRST_QUIZ",
		Name:           "First Quiz",
		Description:    "Passed your first quiz.",
		Icon:           "help-circle",
		Category:       models.BadgeCategoryQuiz,
		ConditionType:  models.CondQuizzesPassed,
		ConditionValue: 1,
		XPReward:       50,
	},
	{
		Code:           "QUIZ_MASTER",
		Name:           "Quiz Master",
		Description:    "Scored 90% or higher on 5 quizzes.",
		Icon:           "award",
		Category:       models.BadgeCategoryQuiz,
		ConditionType:  models.CondQuizzesHighScore,
		ConditionValue: 5,
		XPReward:       300,
	},
	{
		Code:           "PERFECT_SCORE",
		Name:           "Perfect Score",
		Description:    "Scored 100% on a quiz.",
		Icon:           "star",
		Category:       models.BadgeCategoryQuiz,
		ConditionType:  models.CondPerfectQuizScore,
		ConditionValue: 1,
		XPReward:       100,
	},
	{
		Code:           "FIRST_ASSIGNMENT",
		Name:           "First Assignment",
		Description:    "Submitted your first assignment.",
		Icon:           "file-text",
		Category:       models.BadgeCategoryLearning,
		ConditionType:  models.CondAssignmentsSubmitted,
		ConditionValue: 1,
		XPReward:       50,
	},
	{
		Code:           "ASSIGNMENT_STREAK",
		Name:           "Assignment Streak",
		Description:    "Turned in 5 assignments on time.",
		Icon:           "check-circle",
		Category:       models.BadgeCategoryLearning,
		ConditionType:  models.CondAssignmentsOnTime,
		ConditionValue: 5,
		XPReward:       200,
	},
	{
		Code:           "PERFECT_ATTENDANCE",
		Name:           "Perfect Attendance",
		Description:    "A full month without a single absence.",
		Icon:           "calendar-check",
		Category:       models.BadgeCategoryAttendance,
		ConditionType:  models.CondPerfectAttendanceMonth,
		ConditionValue: 1,
		XPReward:       150,
	},
	{
		Code:           "EARLY_BIRD",
		Name:           "Early Bird",
		Description:    "Submitted an assignment well before the deadline.",
		Icon:           "sunrise",
		Category:       models.BadgeCategoryLearning,
		ConditionType:  models.CondEarlySubmission,
		ConditionValue: 1,
		XPReward:       75,
	},
	{
		Code:           "FIRST_CERT",
		Name:           "First Certificate",
		Description:    "Earned your first course certificate.",
		Icon:           "scroll",
		Category:       models.BadgeCategoryMilestone,
		ConditionType:  models.CondCertificatesEarned,
		ConditionValue: 1,
		XPReward:       250,
	},
	{
		Code:           "TOP_STUDENT",
		Name:           "Top Student",
		Description:    "Reached 500 total XP.",
		Icon:           "trophy",
		Category:       models.BadgeCategoryMilestone,
		ConditionType:  models.CondXPTotal,
		ConditionValue: 500,
		XPReward:       0,
	},
	{
		Code:           "XP_1000",
		Name:           "XP Collector",
		Description:    "Reached 1,000 total XP.",
		Icon:           "gem",
		Category:       models.BadgeCategoryMilestone,
		ConditionType:  models.CondXPTotal,
		ConditionValue: 1000,
		XPReward:       0,
	},
}

// SeedBadges inserts the default catalog. Idempotent: existing codes are
// skipped, never overwritten, so admin edits survive re-seeding. Returns
// how many badges were actually created.
func SeedBadges() (int, error) {
	logger.Info().Msg("Seeding default badge catalog...")

	created := 0
	for i, badge := range defaultBadges {
		var count int64
		if err := database.DB.Model(&models.Badge{}).
			Where("code = ?", badge.Code).
			Count(&count).Error; err != nil {
			return created, err
		}
		if count > 0 {
			continue
		}

		badge.DisplayOrder = i + 1
		badge.IsActive = true
		if err := database.DB.Create(&badge).Error; err != nil {
			return created, err
		}
		created++
	}

	logger.Info().Int("created", created).Int("total", len(defaultBadges)).Msg("Badge catalog seeded")
	return created, nil
}
