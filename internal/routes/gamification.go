package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/QaEldaniz/futureup-academy-sub002/internal/handlers"
	"github.com/QaEldaniz/futureup-academy-sub002/internal/middleware"
)

func RegisterGamificationRoutes(r gin.IRouter) {
	// Public catalog
	r.GET("/badges", handlers.GetBadges)

	// Leaderboards are visible to any signed-in member
	leaderboard := r.Group("/leaderboard")
	leaderboard.Use(middleware.AuthMiddleware())
	{
		leaderboard.GET("/global", handlers.GetGlobalLeaderboard)
		leaderboard.GET("/courses/:courseId", handlers.GetCourseLeaderboard)
	}

	// Per-student views
	me := r.Group("/me")
	me.Use(middleware.AuthMiddleware())
	{
		me.GET("/badges", handlers.GetMyBadges)
		me.GET("/xp", handlers.GetMyXP)
		me.GET("/summary", handlers.GetMySummary)
		me.GET("/activity", handlers.GetMyActivity)
	}
}
