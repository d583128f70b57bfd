package seeds

import (
	"fmt"

	"github.com/QaEldaniz/futureup-academy-sub002/internal/database"
	"github.com/QaEldaniz/futureup-academy-sub002/internal/models"
	"github.com/QaEldaniz/futureup-academy-sub002/pkg/logger"
)

// SeedDemoData creates a handful of students enrolled in one course so a
// local frontend has something to render. Idempotent on email/title.
func SeedDemoData() error {
	logger.Info().Msg("Seeding demo students...")

	course := models.Course{Title: "Introduction to Programming"}
	var existing models.Course
	if err := database.DB.Where("title = ?", course.Title).First(&existing).Error; err == nil {
		course = existing
	} else if err := database.DB.Create(&course).Error; err != nil {
		return err
	}

	names := []string{"Aysel Mammadova", "Tural Aliyev", "Nigar Hasanova", "Rashad Guliyev", "Leyla Ismayilova"}
	for i, name := range names {
		email := fmt.Sprintf("demo.student%d@futureup.example", i+1)

		var student models.Student
		if err := database.DB.Where("email = ?", email).First(&student).Error; err == nil {
			continue
		}

		student = models.Student{Name: name, Email: email}
		if err := database.DB.Create(&student).Error; err != nil {
			return err
		}
		enrollment := models.Enrollment{StudentID: student.ID, CourseID: course.ID}
		if err := database.DB.Create(&enrollment).Error; err != nil {
			return err
		}
	}

	return nil
}
