package auth

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/DhavalSuthar-24/pickup/config"
)

func RegisterAuthRoutes(router *gin.RouterGroup, appConfig *config.Config, log *zap.Logger) {
	authController := NewAuthController(appConfig.JWT.AccessTokenSecret, appConfig.TokenTTL(), log)

	authPublic := router.Group("/auth")
	{
		authPublic.POST("/token", authController.IssueToken)
	}
}
