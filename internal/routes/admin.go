package routes

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/QaEldaniz/futureup-academy-sub002/internal/handlers"
	"github.com/QaEldaniz/futureup-academy-sub002/internal/middleware"
)

func RegisterAdminRoutes(rg *gin.RouterGroup) {
	admin := rg.Group("/admin")
	admin.Use(middleware.AuthMiddleware(), middleware.AdminOnly())

	// Badge catalog management
	admin.POST("/badges", handlers.AdminCreateBadge)
	admin.PUT("/badges/:id", handlers.AdminUpdateBadge)
	admin.POST("/badges/seed", handlers.AdminSeedBadges)

	// Collaborator-facing XP grant
	admin.POST("/xp/grant",
		middleware.GrantRateLimit(),
		middleware.StudentRateLimit(300, time.Minute),
		handlers.AdminGrantXP)
}
