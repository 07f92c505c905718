package auth

import (
	"net/http"
	"strings"

	apperrors "aircraft-factory-backend/internal/errors"
	"aircraft-factory-backend/internal/logger"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles HTTP requests for authentication
type AuthHandler struct {
	service *AuthService
}

// NewAuthHandler creates a new authentication handler
func NewAuthHandler(service *AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

// IssueToken handles POST /api/auth/token
// @Summary Issue a development token
// @Description Issue a bearer token for a username. Disabled when ENVIRONMENT is production.
// @Tags authentication
// @Accept json
// @Produce json
// @Param request body TokenRequest true "Username to issue the token for"
// @Success 200 {object} TokenResponse "Issued token"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 403 {object} map[string]interface{} "Token issuing disabled"
// @Router /api/auth/token [post]
func (h *AuthHandler) IssueToken(c *gin.Context) {
	if !h.service.IssuingEnabled() {
		c.JSON(http.StatusForbidden, gin.H{"error": apperrors.ErrTokenDisabled.Error()})
		return
	}

	var req TokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	token, err := h.service.GenerateJWT(strings.TrimSpace(req.Username))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	logger.WithContext(c.Request.Context()).WithField("username", req.Username).Info("development token issued")
	c.JSON(http.StatusOK, token)
}

// ValidateToken handles POST /api/auth/validate
// @Summary Validate JWT token
// @Description Validate JWT token and return token claims
// @Tags authentication
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token to validate" example("Bearer eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9...")
// @Success 200 {object} AuthValidateResponse "Token is valid with claims"
// @Failure 401 {object} map[string]interface{} "Authorization header required or token invalid"
// @Router /api/auth/validate [post]
func (h *AuthHandler) ValidateToken(c *gin.Context) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
		return
	}

	// Extract token from Bearer header
	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenString == authHeader {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization header format"})
		return
	}

	claims, err := h.service.ValidateJWT(tokenString)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, AuthValidateResponse{Valid: true, Claims: claims})
}
