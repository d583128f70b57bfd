package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ActivityType string

const (
	ActivityXPEarned    ActivityType = "XP_EARNED"
	ActivityBadgeEarned ActivityType = "BADGE_EARNED"
	ActivityRankChange  ActivityType = "RANK_CHANGE"
)

// StudentActivity is a lightweight feed row shown on the student
// dashboard. Writes are best-effort; losing one never fails an award.
type StudentActivity struct {
	ID        string       `gorm:"primaryKey;type:text" json:"id"`
	Type      ActivityType `gorm:"type:text;not null" json:"type"`
	StudentID string       `gorm:"index;not null" json:"studentId"`
	TargetID  string       `gorm:"index" json:"targetId"` // badge id, transaction id
	Message   string       `json:"message"`
	CreatedAt time.Time    `json:"createdAt"`

	Student Student `gorm:"foreignKey:StudentID" json:"-"`
}

func (sa *StudentActivity) TableName() string {
	return "student_activities"
}

func (sa *StudentActivity) BeforeCreate(tx *gorm.DB) (err error) {
	if sa.ID == "" {
		sa.ID = uuid.New().String()
	}
	if sa.CreatedAt.IsZero() {
		sa.CreatedAt = time.Now()
	}
	return
}
