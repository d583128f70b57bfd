package services_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/QaEldaniz/futureup-academy-sub002/internal/database"
	"github.com/QaEldaniz/futureup-academy-sub002/internal/models"
	"github.com/QaEldaniz/futureup-academy-sub002/internal/services"
	apperrors "github.com/QaEldaniz/futureup-academy-sub002/pkg/errors"
)

func createRankedStudent(t *testing.T, id string, xp int64, active bool) *models.Student {
	t.Helper()
	student := &models.Student{
		ID:       id,
		Name:     "Student " + id,
		Email:    fmt.Sprintf("%s.%s@futureup.example", id, t.Name()),
		XPTotal:  xp,
		IsActive: active,
	}
	if err := database.DB.Create(student).Error; err != nil {
		t.Fatalf("create student: %v", err)
	}
	return student
}

func TestGlobalTop_DeterministicRanksWithTies(t *testing.T) {
	setupTestDB(t)

	createRankedStudent(t, "s1", 500, true)
	// Two students tied at 300: the smaller id wins the earlier rank
	createRankedStudent(t, "s3", 300, true)
	createRankedStudent(t, "s2", 300, true)
	createRankedStudent(t, "s4", 100, true)

	entries, err := services.GlobalTop(4)
	assert.NoError(t, err)
	assert.Len(t, entries, 4)

	assert.Equal(t, []int{1, 2, 3, 4}, []int{entries[0].Rank, entries[1].Rank, entries[2].Rank, entries[3].Rank})
	assert.Equal(t, "s1", entries[0].StudentID)
	assert.Equal(t, "s2", entries[1].StudentID)
	assert.Equal(t, "s3", entries[2].StudentID)
	assert.Equal(t, "s4", entries[3].StudentID)
}

func TestGlobalTop_ExcludesInactiveStudents(t *testing.T) {
	setupTestDB(t)

	createRankedStudent(t, "active", 100, true)
	createRankedStudent(t, "gone", 9000, false)

	entries, err := services.GlobalTop(10)
	assert.NoError(t, err)
	assert.Len(t, entries, 1)
	assert.Equal(t, "active", entries[0].StudentID)
}

func TestGlobalTop_IncludesBadgeCounts(t *testing.T) {
	setupTestDB(t)

	student := createRankedStudent(t, "s1", 200, true)
	badge := models.Badge{Code: "B1", Name: "B1", ConditionType: models.CondLessonsCompleted, ConditionValue: 1, IsActive: true}
	assert.NoError(t, database.DB.Create(&badge).Error)
	assert.NoError(t, database.DB.Create(&models.StudentBadge{StudentID: student.ID, BadgeID: badge.ID}).Error)

	entries, err := services.GlobalTop(1)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), entries[0].BadgeCount)
}

func TestCourseTop_ScopedToActiveEnrollments(t *testing.T) {
	setupTestDB(t)

	course := models.Course{Title: "Algebra", IsActive: true}
	assert.NoError(t, database.DB.Create(&course).Error)

	enrolled := createRankedStudent(t, "in", 100, true)
	dropped := createRankedStudent(t, "out", 400, true)
	createRankedStudent(t, "elsewhere", 900, true)

	assert.NoError(t, database.DB.Create(&models.Enrollment{StudentID: enrolled.ID, CourseID: course.ID, IsActive: true}).Error)
	assert.NoError(t, database.DB.Create(&models.Enrollment{StudentID: dropped.ID, CourseID: course.ID, IsActive: false}).Error)

	entries, err := services.CourseTop(course.ID, 10)
	assert.NoError(t, err)
	assert.Len(t, entries, 1)
	assert.Equal(t, "in", entries[0].StudentID)
	assert.Equal(t, 1, entries[0].Rank)
}

func TestCourseTop_UnknownCourse(t *testing.T) {
	setupTestDB(t)

	_, err := services.CourseTop("no-such-course", 10)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestStudentRank_GlobalPosition(t *testing.T) {
	setupTestDB(t)

	createRankedStudent(t, "s1", 500, true)
	createRankedStudent(t, "s2", 300, true)
	createRankedStudent(t, "s3", 300, true)
	bottom := createRankedStudent(t, "s4", 100, true)

	rank, err := services.StudentRank(bottom.ID)
	assert.NoError(t, err)
	assert.Equal(t, 4, rank)

	// Tied students get distinct successive ranks by id
	rank, err = services.StudentRank("s2")
	assert.NoError(t, err)
	assert.Equal(t, 2, rank)
	rank, err = services.StudentRank("s3")
	assert.NoError(t, err)
	assert.Equal(t, 3, rank)
}

func TestStudentRank_UnknownStudent(t *testing.T) {
	setupTestDB(t)

	_, err := services.StudentRank("nobody")
	assert.True(t, apperrors.IsNotFound(err))
}
