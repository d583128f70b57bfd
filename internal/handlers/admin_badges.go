package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/QaEldaniz/futureup-academy-sub002/internal/seeds"
	"github.com/QaEldaniz/futureup-academy-sub002/internal/services"
	apperrors "github.com/QaEldaniz/futureup-academy-sub002/pkg/errors"
)

// AdminCreateBadge POST /admin/badges
func AdminCreateBadge(c *gin.Context) {
	var input services.BadgeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	badge, err := services.CreateBadge(input)
	if err != nil {
		if appErr, ok := err.(*apperrors.AppError); ok {
			c.JSON(appErr.Code, gin.H{"error": appErr.Message})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create badge"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"badge": badge})
}

// AdminUpdateBadge PUT /admin/badges/:id
func AdminUpdateBadge(c *gin.Context) {
	badgeID := c.Param("id")

	var update services.BadgeUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	badge, err := services.UpdateBadge(badgeID, update)
	if err != nil {
		if appErr, ok := err.(*apperrors.AppError); ok {
			c.JSON(appErr.Code, gin.H{"error": appErr.Message})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update badge"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"badge": badge})
}

// AdminSeedBadges POST /admin/badges/seed — idempotent default catalog.
func AdminSeedBadges(c *gin.Context) {
	created, err := seeds.SeedBadges()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Seeding failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"created": created})
}
