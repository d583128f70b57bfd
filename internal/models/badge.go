package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BadgeCategory string

const (
	BadgeCategoryLearning   BadgeCategory = "LEARNING"
	BadgeCategoryQuiz       BadgeCategory = "QUIZ"
	BadgeCategoryAttendance BadgeCategory = "ATTENDANCE"
	BadgeCategorySocial     BadgeCategory = "SOCIAL"
	BadgeCategoryMilestone  BadgeCategory = "MILESTONE"
)

// ConditionType names a countable fact a badge condition compares against.
// Unknown values are tolerated in the catalog (admins type these in) and
// simply never match — the evaluator fails closed.
type ConditionType string

const (
	CondLessonsCompleted       ConditionType = "lessons_completed"
	CondAssignmentsSubmitted   ConditionType = "assignments_submitted"
	CondAssignmentsOnTime      ConditionType = "assignments_on_time"
	CondQuizzesPassed          ConditionType = "quizzes_passed"
	CondQuizzesHighScore       ConditionType = "quizzes_high_score"
	CondPerfectQuizScore       ConditionType = "perfect_quiz_score"
	CondCertificatesEarned     ConditionType = "certificates_earned"
	CondPerfectAttendanceMonth ConditionType = "perfect_attendance_month"
	CondEarlySubmission        ConditionType = "early_submission"
	CondXPTotal                ConditionType = "xp_total"
)

// Known reports whether t is one of the condition kinds the evaluator
// understands.
func (t ConditionType) Known() bool {
	switch t {
	case CondLessonsCompleted, CondAssignmentsSubmitted, CondAssignmentsOnTime,
		CondQuizzesPassed, CondQuizzesHighScore, CondPerfectQuizScore,
		CondCertificatesEarned, CondPerfectAttendanceMonth,
		CondEarlySubmission, CondXPTotal:
		return true
	}
	return false
}

// Badge is a catalog entry. Code is the stable machine key and becomes
// immutable once any StudentBadge references the badge.
type Badge struct {
	ID          string        `gorm:"primaryKey;type:text" json:"id"`
	Code        string        `gorm:"uniqueIndex;not null" json:"code"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Icon        string        `json:"icon"` // Name of the Lucide icon
	Category    BadgeCategory `gorm:"type:text" json:"category"`

	ConditionType  ConditionType `gorm:"type:text;not null" json:"conditionType"`
	ConditionValue int           `gorm:"not null" json:"conditionValue"`

	XPReward     int  `gorm:"column:xp_reward;default:0" json:"xpReward"`
	DisplayOrder int  `gorm:"column:display_order;default:0" json:"order"`
	IsActive     bool `gorm:"default:true" json:"isActive"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (b *Badge) BeforeCreate(tx *gorm.DB) (err error) {
	if b.ID == "" {
		b.ID = uuid.New().String()
	}
	return
}

// StudentBadge records one award. The composite primary key doubles as
// the store-level uniqueness guarantee: concurrent duplicate awards
// collapse into a single row.
type StudentBadge struct {
	StudentID string    `gorm:"primaryKey;type:text" json:"studentId"`
	BadgeID   string    `gorm:"primaryKey;type:text" json:"badgeId"`
	AwardedAt time.Time `json:"awardedAt"`

	Badge   Badge   `gorm:"foreignKey:BadgeID" json:"badge"`
	Student Student `gorm:"foreignKey:StudentID" json:"-"`
}

func (sb *StudentBadge) BeforeCreate(tx *gorm.DB) (err error) {
	if sb.AwardedAt.IsZero() {
		sb.AwardedAt = time.Now()
	}
	return
}
