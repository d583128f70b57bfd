package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/QaEldaniz/futureup-academy-sub002/internal/database"
	"github.com/QaEldaniz/futureup-academy-sub002/internal/models"
	apperrors "github.com/QaEldaniz/futureup-academy-sub002/pkg/errors"
)

type LeaderboardEntry struct {
	Rank       int    `json:"rank"`
	StudentID  string `json:"studentId"`
	Name       string `json:"name"`
	XPTotal    int64  `json:"xpTotal"`
	BadgeCount int64  `json:"badgeCount"`
}

// GlobalTop returns the top n active students by XP. Ties break on
// student id so repeated calls always rank the same way; every entry
// gets its own successive rank.
func GlobalTop(n int) ([]LeaderboardEntry, error) {
	var students []models.Student
	err := database.DB.
		Where("is_active = ?", true).
		Order("xp_total desc, id asc").
		Limit(n).
		Find(&students).Error
	if err != nil {
		return nil, err
	}
	return rankStudents(students)
}

// CourseTop is GlobalTop restricted to a course's active enrollments.
func CourseTop(courseID string, n int) ([]LeaderboardEntry, error) {
	var course models.Course
	if err := database.DB.Select("id").First(&course, "id = ?", courseID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("Course not found")
		}
		return nil, err
	}

	var students []models.Student
	err := database.DB.Model(&models.Student{}).
		Joins("JOIN enrollments ON enrollments.student_id = students.id").
		Where("enrollments.course_id = ? AND enrollments.is_active = ?", courseID, true).
		Where("students.is_active = ?", true).
		Order("students.xp_total desc, students.id asc").
		Limit(n).
		Find(&students).Error
	if err != nil {
		return nil, err
	}
	return rankStudents(students)
}

// StudentRank returns the student's 1-based global rank: one more than
// the number of active students strictly ahead under the leaderboard
// ordering.
func StudentRank(studentID string) (int, error) {
	var student models.Student
	if err := database.DB.Select("id, xp_total").First(&student, "id = ?", studentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, apperrors.NotFound("Student not found")
		}
		return 0, err
	}

	var ahead int64
	err := database.DB.Model(&models.Student{}).
		Where("is_active = ?", true).
		Where("xp_total > ? OR (xp_total = ? AND id < ?)", student.XPTotal, student.XPTotal, student.ID).
		Count(&ahead).Error
	if err != nil {
		return 0, err
	}
	return int(ahead) + 1, nil
}

func rankStudents(students []models.Student) ([]LeaderboardEntry, error) {
	if len(students) == 0 {
		return []LeaderboardEntry{}, nil
	}

	ids := make([]string, len(students))
	for i, s := range students {
		ids[i] = s.ID
	}

	type badgeCount struct {
		StudentID string
		Count     int64
	}
	var counts []badgeCount
	err := database.DB.Model(&models.StudentBadge{}).
		Select("student_id, count(*) as count").
		Where("student_id IN ?", ids).
		Group("student_id").
		Scan(&counts).Error
	if err != nil {
		return nil, err
	}

	countByStudent := make(map[string]int64, len(counts))
	for _, c := range counts {
		countByStudent[c.StudentID] = c.Count
	}

	entries := make([]LeaderboardEntry, len(students))
	for i, s := range students {
		entries[i] = LeaderboardEntry{
			Rank:       i + 1,
			StudentID:  s.ID,
			Name:       s.Name,
			XPTotal:    s.XPTotal,
			BadgeCount: countByStudent[s.ID],
		}
	}
	return entries, nil
}
