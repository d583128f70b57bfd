package services

import (
	"github.com/QaEldaniz/futureup-academy-sub002/internal/database"
	"github.com/QaEldaniz/futureup-academy-sub002/internal/models"
)

// StatsProvider supplies aggregate progress counts for a student. The
// lesson/quiz/assignment subsystems own the authoritative tables; they
// can install their own provider at startup. The default derives counts
// from the ledger itself, since every collaborator event leaves exactly
// one ledger row with its reason.
type StatsProvider interface {
	Counts(studentID string) (Facts, error)
}

// Stats is the active provider. Swapped in tests and by the host app.
var Stats StatsProvider = LedgerStats{}

// reasonFacts maps ledger reasons to the condition kind they count for.
// Facts with no ledger proxy (perfect scores, on-time streaks, monthly
// attendance) must arrive as event facts from the collaborator.
var reasonFacts = map[models.XPReason]models.ConditionType{
	models.ReasonLessonCompleted:     models.CondLessonsCompleted,
	models.ReasonAssignmentSubmitted: models.CondAssignmentsSubmitted,
	models.ReasonQuizCompleted:       models.CondQuizzesPassed,
	models.ReasonQuizHighScore:       models.CondQuizzesHighScore,
}

// LedgerStats counts a student's ledger rows grouped by reason.
type LedgerStats struct{}

func (LedgerStats) Counts(studentID string) (Facts, error) {
	type reasonCount struct {
		Reason models.XPReason
		Count  int64
	}

	var rows []reasonCount
	err := database.DB.Model(&models.XPTransaction{}).
		Select("reason, count(*) as count").
		Where("student_id = ?", studentID).
		Group("reason").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	facts := make(Facts, len(rows))
	for _, row := range rows {
		if fact, ok := reasonFacts[row.Reason]; ok {
			facts[fact] = row.Count
		}
	}
	return facts, nil
}
