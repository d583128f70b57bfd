package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Role string

const (
	RoleStudent Role = "STUDENT"
	RoleTeacher Role = "TEACHER"
	RoleParent  Role = "PARENT"
	RoleAdmin   Role = "ADMIN"
)

// Student is the identity the gamification engine keys everything on.
// XPTotal is a denormalized running sum of the student's ledger and is
// only ever mutated inside the ledger's transaction. Students are never
// hard-deleted while ledger rows reference them; IsActive handles exits.
type Student struct {
	ID        string    `gorm:"primaryKey;type:text" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Name  string `json:"name"`
	Email string `gorm:"uniqueIndex" json:"email"`

	Role     Role  `gorm:"type:text;default:'STUDENT'" json:"role"`
	XPTotal  int64 `gorm:"column:xp_total;default:0" json:"xpTotal"`
	IsActive bool  `gorm:"default:true" json:"isActive"`
}

func (s *Student) BeforeCreate(tx *gorm.DB) (err error) {
	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	return
}
