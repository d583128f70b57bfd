package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/QaEldaniz/futureup-academy-sub002/internal/models"
	"github.com/QaEldaniz/futureup-academy-sub002/internal/services"
	apperrors "github.com/QaEldaniz/futureup-academy-sub002/pkg/errors"
)

type grantXPRequest struct {
	StudentID string           `json:"studentId" binding:"required"`
	Reason    models.XPReason  `json:"reason" binding:"required"`
	Amount    int              `json:"amount"`
	Facts     map[string]int64 `json:"facts"`
}

// AdminGrantXP POST /admin/xp/grant — the collaborator contract over
// HTTP. Lesson/quiz/attendance subsystems call this after their own
// transaction commits; facts carries counts only they can compute.
func AdminGrantXP(c *gin.Context) {
	var req grantXPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	eventFacts := make(services.Facts, len(req.Facts))
	for fact, count := range req.Facts {
		eventFacts[models.ConditionType(fact)] = count
	}

	result, err := services.GrantXP(req.StudentID, req.Reason, req.Amount, eventFacts)
	if err != nil {
		if appErr, ok := err.(*apperrors.AppError); ok {
			c.JSON(appErr.Code, gin.H{"error": appErr.Message})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to grant XP"})
		return
	}

	c.JSON(http.StatusCreated, result)
}
