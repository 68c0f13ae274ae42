package middelware

import (
	"ceam-backend/models"
	"ceam-backend/utils/logger"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const claimsContextKey = "jwt_claims"

// JWTManager issues and checks the operator tokens used on admin endpoints
type JWTManager struct {
	Config *models.Config
	Logger logger.Logger
}

// NewJWTManager creates a new JWT manager
func NewJWTManager(cfg *models.Config, log logger.Logger) *JWTManager {
	return &JWTManager{
		Config: cfg,
		Logger: log,
	}
}

// GenerateToken signs an HS256 token for an operator
func (j *JWTManager) GenerateToken(email, role string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := models.AdminClaims{
		Email: email,
		Role:  role,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.New().String(),
			Subject:   email,
			Issuer:    j.Config.AppName,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(j.Config.JWTSecret))
	if err != nil {
		j.Logger.Errorf("Failed to sign JWT token: %v", err)
		return "", err
	}
	return tokenString, nil
}

// ValidateToken parses tokenString and returns its claims
func (j *JWTManager) ValidateToken(tokenString string) (*models.AdminClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &models.AdminClaims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(j.Config.JWTSecret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*models.AdminClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	return claims, nil
}

func abortAuth(c *gin.Context, code int, message, errType, details string) {
	c.AbortWithStatusJSON(code, models.APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		Error: &models.APIError{
			Type:    errType,
			Details: details,
		},
	})
}

// AuthMiddleware requires a valid bearer token
func (j *JWTManager) AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			j.Logger.Warn("Missing Authorization header")
			abortAuth(c, http.StatusUnauthorized, "Missing Authorization header", "AuthenticationError", "Authorization header is required")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" || strings.TrimSpace(parts[1]) == "" {
			j.Logger.Warn("Invalid Authorization header format")
			abortAuth(c, http.StatusUnauthorized, "Invalid Authorization header format", "AuthenticationError", "Authorization header must be in format: Bearer <token>")
			return
		}

		claims, err := j.ValidateToken(strings.TrimSpace(parts[1]))
		if err != nil {
			j.Logger.Warnf("Token validation failed: %v", err)
			abortAuth(c, http.StatusUnauthorized, "Invalid or expired token", "AuthenticationError", err.Error())
			return
		}

		c.Set(claimsContextKey, claims)
		c.Set("user_email", claims.Email)
		c.Next()
	}
}

// RequireRole checks the role claim set by AuthMiddleware
func (j *JWTManager) RequireRole(requiredRole string) gin.HandlerFunc {
	return func(c *gin.Context) {
		value, exists := c.Get(claimsContextKey)
		if !exists {
			abortAuth(c, http.StatusUnauthorized, "Authentication required", "AuthenticationError", "User not authenticated")
			return
		}

		claims := value.(*models.AdminClaims)
		if claims.Role != requiredRole {
			j.Logger.Warnf("User %s does not have required role: %s", claims.Email, requiredRole)
			abortAuth(c, http.StatusForbidden, "Insufficient permissions", "AuthorizationError", fmt.Sprintf("Required role: %s", requiredRole))
			return
		}

		c.Next()
	}
}
