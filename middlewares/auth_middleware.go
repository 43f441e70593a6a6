package middlewares

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/cafe-kiosk/models"
	"github.com/yeremiapane/cafe-kiosk/utils"
	"gorm.io/gorm"
)

// Context keys set by the auth middlewares.
const (
	ContextUserID     = "userID"
	ContextIsOperator = "isOperator"
)

// AuthMiddleware rejects requests without a valid bearer token.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.RespondError(c, http.StatusUnauthorized, errors.New("Authorization header missing"))
			c.Abort()
			return
		}

		if !setClaims(c, authHeader) {
			utils.RespondError(c, http.StatusUnauthorized, errors.New("Invalid or expired token"))
			c.Abort()
			return
		}
		c.Next()
	}
}

// OptionalAuthMiddleware resolves the user when a token is sent and lets
// anonymous kiosk customers through otherwise. A bad token is still rejected.
func OptionalAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.Next()
			return
		}

		if !setClaims(c, authHeader) {
			utils.RespondError(c, http.StatusUnauthorized, errors.New("Invalid or expired token"))
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireOperator checks the admin flag on the stored user rather than
// trusting the token claim, so revoking admin takes effect immediately.
// It must run after AuthMiddleware.
func RequireOperator(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := CurrentUserID(c)
		if !ok {
			utils.RespondError(c, http.StatusUnauthorized, errors.New("unauthorized"))
			c.Abort()
			return
		}

		var user models.User
		if err := db.WithContext(c.Request.Context()).Select("id", "is_admin").First(&user, userID).Error; err != nil || !user.IsAdmin {
			utils.RespondError(c, http.StatusForbidden, errors.New("Access denied. Admin only."))
			c.Abort()
			return
		}

		c.Set(ContextIsOperator, true)
		c.Next()
	}
}

// LoadCapabilities marks operators in the context without rejecting anyone.
// Use it on routes where both customers and operators are served.
func LoadCapabilities(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		if userID, ok := CurrentUserID(c); ok {
			var user models.User
			if err := db.WithContext(c.Request.Context()).Select("id", "is_admin").First(&user, userID).Error; err == nil && user.IsAdmin {
				c.Set(ContextIsOperator, true)
			}
		}
		c.Next()
	}
}

// CurrentUserID returns the authenticated user id, if any.
func CurrentUserID(c *gin.Context) (uint, bool) {
	v, exists := c.Get(ContextUserID)
	if !exists {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok && id != 0
}

func setClaims(c *gin.Context, authHeader string) bool {
	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	claims, err := utils.ParseToken(tokenString)
	if err != nil || claims == nil || claims.UserID == 0 {
		return false
	}
	c.Set(ContextUserID, claims.UserID)
	return true
}
