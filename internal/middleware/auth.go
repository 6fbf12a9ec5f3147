package middleware

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/DhavalSuthar-24/pickup/pkg/responses"
	"github.com/DhavalSuthar-24/pickup/pkg/token"
)

const (
	AuthDeviceIDKey = "auth_device_id"
)

// AuthMiddleware requires a valid device token in the Authorization header.
func AuthMiddleware(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			responses.Unauthorized(c, "Authorization header is required")
			return
		}

		bearerToken := strings.Fields(authHeader)
		if len(bearerToken) != 2 || strings.ToLower(bearerToken[0]) != "bearer" {
			responses.Unauthorized(c, "Invalid Authorization header format. Expected: Bearer <token>")
			return
		}

		claims, err := token.ValidateJWT(bearerToken[1], jwtSecret)
		if err != nil {
			responses.Unauthorized(c, "Invalid or expired token: "+err.Error())
			return
		}

		c.Set(AuthDeviceIDKey, claims.DeviceID)
		c.Next()
	}
}

// GetDeviceIDFromContext extracts the device ID set by AuthMiddleware.
func GetDeviceIDFromContext(c *gin.Context) (string, error) {
	deviceID, exists := c.Get(AuthDeviceIDKey)
	if !exists {
		return "", errors.New("device ID not found in context")
	}

	id, ok := deviceID.(string)
	if !ok {
		return "", fmt.Errorf("device ID has unexpected type: %T", deviceID)
	}

	return id, nil
}
