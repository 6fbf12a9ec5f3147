package team

import (
	"github.com/gin-gonic/gin"
)

// TeamRoutes sets up the team selection routes. guards run before every
// route that changes state.
func TeamRoutes(router *gin.RouterGroup, selector *Selector, groups GroupLookup, guards ...gin.HandlerFunc) {
	teamController := NewTeamController(selector, groups)

	router.GET("/groups/:group/teams", teamController.GetTeams)

	authRoutes := router.Group("/")
	authRoutes.Use(guards...)
	{
		authRoutes.PUT("/groups/:group/teams/active", teamController.SetActiveTeam)
	}
}
