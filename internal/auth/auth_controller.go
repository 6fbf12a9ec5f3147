package auth

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/DhavalSuthar-24/pickup/pkg/responses"
	"github.com/DhavalSuthar-24/pickup/pkg/token"
	"github.com/DhavalSuthar-24/pickup/pkg/validator"
)

type AuthController struct {
	secret string
	ttl    time.Duration
	log    *zap.Logger
}

func NewAuthController(secret string, ttl time.Duration, log *zap.Logger) *AuthController {
	return &AuthController{
		secret: secret,
		ttl:    ttl,
		log:    log,
	}
}

// IssueToken godoc
// @Summary Issue a device token
// @Description Issues a bearer token for a device installation. Required on mutating routes when AUTH_ENABLED is set.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body TokenRequest true "Device identity"
// @Success 201 {object} responses.SuccessResponse{data=TokenResponse} "Token issued"
// @Failure 400 {object} responses.ErrorResponse "Invalid input"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /auth/token [post]
func (ac *AuthController) IssueToken(c *gin.Context) {
	var req TokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendValidationError(c, "Invalid request payload", validator.ParseError(err))
		return
	}

	accessToken, expiresAt, err := token.GenerateJWT(req.DeviceID, ac.secret, ac.ttl)
	if err != nil {
		ac.log.Error("token generation failed", zap.Error(err))
		responses.SendError(c, http.StatusInternalServerError, "Could not issue token")
		return
	}

	responses.SendSuccess(c, http.StatusCreated, "Token issued", TokenResponse{
		AccessToken: accessToken,
		TokenType:   "Bearer",
		ExpiresAt:   expiresAt,
	})
}
