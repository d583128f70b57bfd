package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// XPReason enumerates the domain events that earn experience points.
// Collaborating subsystems pass one of these when granting XP;
// ReasonBadgeEarned is reserved for the engine's own bonus awards.
type XPReason string

const (
	ReasonLessonCompleted     XPReason = "lesson_completed"
	ReasonAssignmentSubmitted XPReason = "assignment_submitted"
	ReasonAssignmentHighGrade XPReason = "assignment_high_grade"
	ReasonQuizCompleted       XPReason = "quiz_completed"
	ReasonQuizHighScore       XPReason = "quiz_high_score"
	ReasonAttendancePresent   XPReason = "attendance_present"
	ReasonFirstMessage        XPReason = "first_message"
	ReasonBadgeEarned         XPReason = "badge_earned"
)

// XPTransaction is one immutable ledger row. Rows are never updated or
// deleted; a student's xp_total always equals the sum of their rows.
type XPTransaction struct {
	ID        string          `gorm:"primaryKey;type:text" json:"id"`
	StudentID string          `gorm:"index;not null" json:"studentId"`
	Amount    int             `gorm:"not null" json:"amount"`
	Reason    XPReason        `gorm:"type:text;not null" json:"reason"`
	Metadata  json.RawMessage `gorm:"type:jsonb" json:"metadata,omitempty"`
	CreatedAt time.Time       `json:"createdAt"`

	Student Student `gorm:"foreignKey:StudentID" json:"-"`
}

func (t *XPTransaction) BeforeCreate(tx *gorm.DB) (err error) {
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	return
}
