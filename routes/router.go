package routes

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"github.com/DhavalSuthar-24/pickup/config"
	"github.com/DhavalSuthar-24/pickup/internal/auth"
	"github.com/DhavalSuthar-24/pickup/internal/group"
	"github.com/DhavalSuthar-24/pickup/internal/middleware"
	"github.com/DhavalSuthar-24/pickup/internal/player"
	"github.com/DhavalSuthar-24/pickup/internal/team"
)

// Dependencies are the services the HTTP surface is wired to.
type Dependencies struct {
	Config   *config.Config
	Log      *zap.Logger
	Groups   group.GroupRepository
	Selector *team.Selector
	Players  *player.Service
}

func SetupRoutes(deps Dependencies) *gin.Engine {
	if deps.Config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(deps.Log))
	r.Use(cors.Default()) // allows all origins

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Swagger route
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API routes
	api := r.Group("/api")
	auth.RegisterAuthRoutes(api, deps.Config, deps.Log)

	var guards []gin.HandlerFunc
	if deps.Config.Auth.Enabled {
		guards = append(guards, middleware.AuthMiddleware(deps.Config.JWT.AccessTokenSecret))
	}

	group.GroupRoutes(api, deps.Groups, deps.Selector, guards...)
	team.TeamRoutes(api, deps.Selector, deps.Groups, guards...)
	player.PlayerRoutes(api, deps.Players, deps.Groups, deps.Selector, guards...)

	return r
}
