package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/cafe-kiosk/services"
	"github.com/yeremiapane/cafe-kiosk/utils"
)

// ErrNoPermission adalah contoh error custom
var ErrNoPermission = &CustomError{"You do not have permission"}

var (
	ErrUserExists         = &CustomError{"User already exists"}
	ErrInvalidCredentials = &CustomError{"Invalid credentials"}
	ErrInvalidID          = &CustomError{"Invalid id"}
)

type CustomError struct {
	Message string
}

func (e *CustomError) Error() string {
	return e.Message
}

// respondServiceError maps the order core's error taxonomy onto HTTP codes.
func respondServiceError(c *gin.Context, err error) {
	code := http.StatusInternalServerError
	switch {
	case errors.Is(err, services.ErrInvalidInput), errors.Is(err, services.ErrInvalidStatus):
		code = http.StatusBadRequest
	case errors.Is(err, services.ErrInsufficientPoints):
		code = http.StatusConflict
	case errors.Is(err, services.ErrNotFound):
		code = http.StatusNotFound
	case errors.Is(err, services.ErrForbidden):
		code = http.StatusForbidden
	case errors.Is(err, services.ErrOrderNumberCollision), errors.Is(err, services.ErrTransientStore):
		code = http.StatusServiceUnavailable
	}

	if code >= http.StatusInternalServerError {
		utils.ErrorLogger.WithError(err).WithField("path", c.Request.URL.Path).Error("Request failed")
	}
	_ = c.Error(err)
	utils.RespondError(c, code, err)
}

func parseID(c *gin.Context, param string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(param), 10, 64)
	if err != nil || id == 0 {
		utils.RespondError(c, http.StatusBadRequest, ErrInvalidID)
		return 0, false
	}
	return uint(id), true
}
