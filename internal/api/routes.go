// internal/api/routes.go
// Central route registration for all API endpoints (spec.md §6)

package api

import (
	"golf-sim/internal/middleware"
	"golf-sim/internal/services"

	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers organizer authentication routes
func RegisterAuthRoutes(router *gin.RouterGroup, services *services.Container) {
	auth := router.Group("/auth")
	{
		auth.POST("/register", HandleRegister(services.Auth))
		auth.POST("/login", HandleLogin(services.Auth))
		auth.POST("/logout", HandleLogout(services.Auth))
		auth.POST("/refresh", HandleRefreshToken(services.Auth))
		auth.PUT("/password", middleware.RequireOrganizer(services.Auth), HandleChangePassword(services.Auth))
	}
}

// RegisterCourseRoutes registers the course catalogue routes
func RegisterCourseRoutes(router *gin.RouterGroup, services *services.Container) {
	courses := router.Group("/courses")
	{
		courses.GET("", HandleListCourses(services.Course))
		courses.GET("/:id", HandleGetCourse(services.Course))
	}
}

// RegisterGolferRoutes registers the golfer catalogue routes
func RegisterGolferRoutes(router *gin.RouterGroup, services *services.Container) {
	golfers := router.Group("/golfers")
	{
		golfers.GET("", HandleListGolfers(services.Golfer))
		golfers.POST("/refresh_ratings", middleware.RequireOrganizer(services.Auth), HandleRefreshRatings(services.Golfer))
	}
}

// RegisterTournamentRoutes registers the tournament lifecycle routes
func RegisterTournamentRoutes(router *gin.RouterGroup, services *services.Container) {
	tournaments := router.Group("/tournaments")
	{
		tournaments.GET("", HandleListTournaments(services.Tournament))
		tournaments.GET("/:id", HandleGetTournament(services.Tournament))

		tournaments.Use(middleware.RequireOrganizer(services.Auth))
		tournaments.POST("", HandleCreateTournament(services.Tournament))
		tournaments.POST("/:id/tick", HandleTick(services.Tournament))
		tournaments.POST("/:id/sim-to-tee", HandleSimToTee(services.Tournament))
		tournaments.POST("/:id/sim-to-end-of-day", HandleSimToEndOfDay(services.Tournament))
		tournaments.POST("/:id/hole-result", HandleSubmitHoleResult(services.Tournament))
		tournaments.POST("/:id/shuffle-pairings", HandleShufflePairings(services.Tournament))
	}
}
