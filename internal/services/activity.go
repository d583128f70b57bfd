package services

import (
	"github.com/QaEldaniz/futureup-academy-sub002/internal/database"
	"github.com/QaEldaniz/futureup-academy-sub002/internal/models"
	"github.com/QaEldaniz/futureup-academy-sub002/pkg/logger"
)

// LogActivity writes a dashboard feed row. Best-effort: a failed write
// is logged and swallowed, never surfaced to the caller.
func LogActivity(studentID string, activityType models.ActivityType, targetID string, message string) {
	activity := models.StudentActivity{
		Type:      activityType,
		StudentID: studentID,
		TargetID:  targetID,
		Message:   message,
	}

	if err := database.DB.Create(&activity).Error; err != nil {
		logger.Warn().Err(err).Str("student_id", studentID).Msg("Failed to log activity")
	}
}

// RecentActivity returns the newest feed rows for a student.
func RecentActivity(studentID string, limit int) ([]models.StudentActivity, error) {
	var activities []models.StudentActivity
	err := database.DB.
		Where("student_id = ?", studentID).
		Order("created_at desc").
		Limit(limit).
		Find(&activities).Error
	return activities, err
}
