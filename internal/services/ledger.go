package services

import (
	"encoding/json"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/QaEldaniz/futureup-academy-sub002/internal/database"
	"github.com/QaEldaniz/futureup-academy-sub002/internal/models"
	apperrors "github.com/QaEldaniz/futureup-academy-sub002/pkg/errors"
)

// RecordTransaction appends one immutable ledger row and bumps the
// student's denormalized xp_total in the same database transaction, so
// the two can never diverge. Negative amounts are accepted for
// auditability even though no current event source emits them.
func RecordTransaction(studentID string, amount int, reason models.XPReason, metadata map[string]interface{}) (*models.XPTransaction, error) {
	if studentID == "" {
		return nil, apperrors.Validation("studentId is required")
	}
	if reason == "" {
		return nil, apperrors.Validation("reason is required")
	}

	txn := models.XPTransaction{
		StudentID: studentID,
		Amount:    amount,
		Reason:    reason,
	}
	if metadata != nil {
		if b, err := json.Marshal(metadata); err == nil {
			txn.Metadata = b
		}
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		// Row-lock the student so same-student grants serialize.
		// SQLite (tests) rejects FOR UPDATE; its writes serialize anyway.
		q := tx
		if tx.Dialector.Name() == "postgres" {
			q = tx.Clauses(clause.Locking{Strength: "UPDATE"})
		}
		var student models.Student
		if err := q.Select("id").First(&student, "id = ?", studentID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NotFound("Student not found")
			}
			return err
		}

		if err := tx.Create(&txn).Error; err != nil {
			return err
		}

		return tx.Model(&models.Student{}).
			Where("id = ?", studentID).
			UpdateColumn("xp_total", gorm.Expr("xp_total + ?", amount)).Error
	})
	if err != nil {
		return nil, err
	}
	return &txn, nil
}

// GetRecentTransactions returns up to limit ledger rows, newest first.
func GetRecentTransactions(studentID string, limit int) ([]models.XPTransaction, error) {
	var txns []models.XPTransaction
	err := database.DB.
		Where("student_id = ?", studentID).
		Order("created_at desc, id desc").
		Limit(limit).
		Find(&txns).Error
	return txns, err
}

// GetTotal returns the student's running XP total.
func GetTotal(studentID string) (int64, error) {
	var student models.Student
	if err := database.DB.Select("id, xp_total").First(&student, "id = ?", studentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, apperrors.NotFound("Student not found")
		}
		return 0, err
	}
	return student.XPTotal, nil
}
