package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/QaEldaniz/futureup-academy-sub002/internal/models"
	"github.com/QaEldaniz/futureup-academy-sub002/internal/services"
	"github.com/QaEldaniz/futureup-academy-sub002/pkg/logger"
)

func TestIsEligible_ThresholdSemantics(t *testing.T) {
	logger.Init("test")

	facts := services.Facts{
		models.CondLessonsCompleted: 10,
		models.CondQuizzesPassed:    4,
	}

	assert.True(t, services.IsEligible(models.CondLessonsCompleted, 10, facts))
	assert.True(t, services.IsEligible(models.CondLessonsCompleted, 1, facts))
	assert.False(t, services.IsEligible(models.CondQuizzesPassed, 5, facts))
}

func TestIsEligible_MissingFactCountsAsZero(t *testing.T) {
	logger.Init("test")

	facts := services.Facts{}
	assert.False(t, services.IsEligible(models.CondCertificatesEarned, 1, facts))
}

func TestIsEligible_UnknownConditionFailsClosed(t *testing.T) {
	logger.Init("test")

	facts := services.Facts{models.CondLessonsCompleted: 100}

	// An admin typo must evaluate to ineligible, never panic or error.
	assert.NotPanics(t, func() {
		assert.False(t, services.IsEligible(models.ConditionType("lessons_compleded"), 1, facts))
	})
}

func TestIsEligible_XPTotal(t *testing.T) {
	logger.Init("test")

	facts := services.Facts{models.CondXPTotal: 500}
	assert.True(t, services.IsEligible(models.CondXPTotal, 500, facts))
	assert.False(t, services.IsEligible(models.CondXPTotal, 501, facts))
}
