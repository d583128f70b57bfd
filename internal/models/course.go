package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Course struct {
	ID        string    `gorm:"primaryKey;type:text" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Title    string `json:"title"`
	IsActive bool   `gorm:"default:true" json:"isActive"`
}

func (c *Course) BeforeCreate(tx *gorm.DB) (err error) {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	return
}

// Enrollment links a student to a course. The leaderboard's course scope
// only counts rows with IsActive set.
type Enrollment struct {
	ID        string    `gorm:"primaryKey;type:text" json:"id"`
	StudentID string    `gorm:"index;not null" json:"studentId"`
	CourseID  string    `gorm:"index;not null" json:"courseId"`
	IsActive  bool      `gorm:"default:true" json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`

	Student Student `gorm:"foreignKey:StudentID" json:"-"`
	Course  Course  `gorm:"foreignKey:CourseID" json:"-"`
}

func (e *Enrollment) BeforeCreate(tx *gorm.DB) (err error) {
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	return
}
