package group

import (
	"github.com/gin-gonic/gin"

	"github.com/DhavalSuthar-24/pickup/internal/team"
)

// GroupRoutes sets up all group-related routes. guards run before every
// route that changes state.
func GroupRoutes(router *gin.RouterGroup, repo GroupRepository, selector *team.Selector, guards ...gin.HandlerFunc) {
	groupController := NewGroupController(repo, selector)

	router.GET("/groups", groupController.GetAllGroups)
	router.GET("/groups/:group", groupController.GetGroup)

	authRoutes := router.Group("/")
	authRoutes.Use(guards...)
	{
		authRoutes.POST("/groups", groupController.CreateGroup)
		authRoutes.DELETE("/groups/:group", groupController.RemoveGroup)
	}
}
