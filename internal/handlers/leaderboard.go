package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/QaEldaniz/futureup-academy-sub002/internal/services"
	apperrors "github.com/QaEldaniz/futureup-academy-sub002/pkg/errors"
)

const leaderboardSize = 20

// GetGlobalLeaderboard GET /leaderboard/global
func GetGlobalLeaderboard(c *gin.Context) {
	entries, err := services.GlobalTop(leaderboardSize)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute leaderboard"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"entries": entries})
}

// GetCourseLeaderboard GET /leaderboard/courses/:courseId
func GetCourseLeaderboard(c *gin.Context) {
	courseID := c.Param("courseId")

	entries, err := services.CourseTop(courseID, leaderboardSize)
	if err != nil {
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Course not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute leaderboard"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"courseId": courseID, "entries": entries})
}
