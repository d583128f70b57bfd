package services_test

import (
	"fmt"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/QaEldaniz/futureup-academy-sub002/internal/database"
	"github.com/QaEldaniz/futureup-academy-sub002/internal/models"
	"github.com/QaEldaniz/futureup-academy-sub002/pkg/logger"
)

// setupTestDB points database.DB at a fresh in-memory SQLite database.
// Each test gets its own named database so state never leaks between
// tests in the package.
func setupTestDB(t *testing.T) {
	t.Helper()
	logger.Init("test")

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	database.DB = db

	if err := database.DB.AutoMigrate(
		&models.Student{},
		&models.Course{},
		&models.Enrollment{},
		&models.XPTransaction{},
		&models.Badge{},
		&models.StudentBadge{},
		&models.StudentActivity{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}
}

func createStudent(t *testing.T, name string) *models.Student {
	t.Helper()
	student := &models.Student{
		Name:     name,
		Email:    fmt.Sprintf("%s.%s@futureup.example", name, t.Name()),
		IsActive: true,
	}
	if err := database.DB.Create(student).Error; err != nil {
		t.Fatalf("create student: %v", err)
	}
	return student
}
