package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/QaEldaniz/futureup-academy-sub002/internal/database"
	"github.com/QaEldaniz/futureup-academy-sub002/internal/models"
	"github.com/QaEldaniz/futureup-academy-sub002/internal/services"
)

// GetBadges GET /badges — the active catalog, display order.
func GetBadges(c *gin.Context) {
	badges, err := services.ListActiveBadges()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch badges"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"badges": badges})
}

// GetMyBadges GET /me/badges — earned badges grouped by category.
func GetMyBadges(c *gin.Context) {
	studentID, exists := c.Get("studentId")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var earned []models.StudentBadge
	if err := database.DB.Preload("Badge").
		Where("student_id = ?", studentID).
		Order("awarded_at desc").
		Find(&earned).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch badges"})
		return
	}

	grouped := make(map[models.BadgeCategory][]models.StudentBadge)
	for _, sb := range earned {
		grouped[sb.Badge.Category] = append(grouped[sb.Badge.Category], sb)
	}

	c.JSON(http.StatusOK, gin.H{
		"total":      len(earned),
		"categories": grouped,
	})
}
