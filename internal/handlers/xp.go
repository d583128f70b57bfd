package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/QaEldaniz/futureup-academy-sub002/internal/database"
	"github.com/QaEldaniz/futureup-academy-sub002/internal/models"
	"github.com/QaEldaniz/futureup-academy-sub002/internal/services"
)

// GetMyXP GET /me/xp — running total, recent ledger rows, global rank.
func GetMyXP(c *gin.Context) {
	studentID, exists := c.Get("studentId")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	id := studentID.(string)

	total, err := services.GetTotal(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Student not found"})
		return
	}

	recent, err := services.GetRecentTransactions(id, 20)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch transactions"})
		return
	}

	rank, err := services.StudentRank(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute rank"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"xpTotal":            total,
		"recentTransactions": recent,
		"rank":               rank,
	})
}

// GetMySummary GET /me/summary — the dashboard widget payload.
func GetMySummary(c *gin.Context) {
	studentID, exists := c.Get("studentId")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	id := studentID.(string)

	total, err := services.GetTotal(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Student not found"})
		return
	}

	rank, err := services.StudentRank(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute rank"})
		return
	}

	catalog, err := services.ListActiveBadges()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch badges"})
		return
	}

	var earned []models.StudentBadge
	if err := database.DB.Preload("Badge").
		Where("student_id = ?", id).
		Order("awarded_at desc").
		Find(&earned).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch badges"})
		return
	}

	earnedSet := make(map[string]bool, len(earned))
	for _, sb := range earned {
		earnedSet[sb.BadgeID] = true
	}

	recentBadges := earned
	if len(recentBadges) > 5 {
		recentBadges = recentBadges[:5]
	}

	// Closest unearned badges in catalog order
	var nextBadges []models.Badge
	for _, badge := range catalog {
		if earnedSet[badge.ID] {
			continue
		}
		nextBadges = append(nextBadges, badge)
		if len(nextBadges) == 5 {
			break
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"xpTotal":      total,
		"rank":         rank,
		"totalBadges":  len(catalog),
		"earnedBadges": len(earned),
		"recentBadges": recentBadges,
		"nextBadges":   nextBadges,
	})
}

// GetMyActivity GET /me/activity — recent feed rows.
func GetMyActivity(c *gin.Context) {
	studentID, exists := c.Get("studentId")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	activities, err := services.RecentActivity(studentID.(string), 50)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch activity"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"activities": activities})
}
