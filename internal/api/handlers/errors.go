package handlers

import (
	"net/http"
	"strconv"

	"aircraft-factory-backend/internal/auth"
	apperrors "aircraft-factory-backend/internal/errors"
	"aircraft-factory-backend/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// respondError maps service errors to HTTP status codes
func respondError(c *gin.Context, err error) {
	switch {
	case apperrors.IsNotFound(err):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case apperrors.IsValidation(err):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case apperrors.IsDomainRule(err):
		c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error(), Code: string(apperrors.RuleCodeOf(err))})
	case apperrors.IsAlreadyExists(err):
		c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	case apperrors.IsAuthentication(err):
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: err.Error()})
	case apperrors.IsAuthorization(err):
		c.JSON(http.StatusForbidden, ErrorResponse{Error: err.Error()})
	default:
		logger.WithContext(c.Request.Context()).WithField("path", c.FullPath()).Errorf("request failed: %v", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
	}
}

// parseID reads a UUID path parameter and answers 400 when it is malformed
func parseID(c *gin.Context, param, label string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(param))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid " + label + " ID"})
		return uuid.Nil, false
	}
	return id, true
}

// parseOptionalID reads an optional UUID query parameter
func parseOptionalID(c *gin.Context, query, label string) (*uuid.UUID, bool) {
	raw := c.Query(query)
	if raw == "" {
		return nil, true
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid " + label + " ID"})
		return nil, false
	}
	return &id, true
}

// pagination reads page and page_size; the service clamps them
func pagination(c *gin.Context) (int, int) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	pageSize, err := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	if err != nil || pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	return page, pageSize
}

// actor returns the authenticated username or answers 401
func actor(c *gin.Context) (string, bool) {
	username, ok := auth.GetUsername(c)
	if !ok {
		respondError(c, apperrors.ErrMissingActor)
		return "", false
	}
	return username, true
}

func bindJSON(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body: " + err.Error()})
		return false
	}
	return true
}
