package player

import (
	"github.com/gin-gonic/gin"

	"github.com/DhavalSuthar-24/pickup/internal/group"
	"github.com/DhavalSuthar-24/pickup/internal/team"
)

// PlayerRoutes sets up the players screen routes. guards run before every
// route that changes state.
func PlayerRoutes(router *gin.RouterGroup, svc *Service, repo group.GroupRepository, selector *team.Selector, guards ...gin.HandlerFunc) {
	playerController := NewPlayerController(svc, repo, selector)

	router.GET("/groups/:group/players", playerController.GetPlayers)

	authRoutes := router.Group("/")
	authRoutes.Use(guards...)
	{
		authRoutes.POST("/groups/:group/players", playerController.AddPlayer)
		authRoutes.DELETE("/groups/:group/players/:player_name", playerController.RemovePlayer)
	}
}
