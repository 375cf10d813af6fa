package utils

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func traceID(c *gin.Context) string {
	if v, ok := c.Get("trace_id"); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: message,
		TraceID: traceID(c),
		Data:    data,
	})
}

// RespondWarning reports a soft outcome ("already registered") that is
// not an error: the request succeeded but changed nothing.
func RespondWarning(c *gin.Context, message string) {
	c.JSON(http.StatusOK, APIResponse{
		Status:  "warning",
		Code:    http.StatusOK,
		Message: message,
		TraceID: traceID(c),
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: traceID(c),
	})
}

func HandleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrPasswordMismatch):
		RespondError(c, http.StatusBadRequest, ErrPasswordMismatch.Error())
	case errors.Is(err, ErrEmailAlreadyExists):
		RespondError(c, http.StatusConflict, ErrEmailAlreadyExists.Error())
	case errors.Is(err, ErrInvalidCredentials):
		RespondError(c, http.StatusUnauthorized, ErrInvalidCredentials.Error())
	case errors.Is(err, ErrUnauthorized):
		RespondError(c, http.StatusUnauthorized, ErrUnauthorized.Error())
	case errors.Is(err, ErrUserNotFound):
		RespondError(c, http.StatusNotFound, ErrUserNotFound.Error())
	case errors.Is(err, ErrHallNotFound):
		RespondError(c, http.StatusNotFound, ErrHallNotFound.Error())
	case errors.Is(err, ErrEventNotFound):
		RespondError(c, http.StatusNotFound, ErrEventNotFound.Error())
	case errors.Is(err, ErrNoVacancy):
		RespondError(c, http.StatusConflict, ErrNoVacancy.Error())
	case errors.Is(err, ErrAlreadyBooked):
		RespondError(c, http.StatusConflict, ErrAlreadyBooked.Error())
	case errors.Is(err, ErrDatabaseError):
		log.Printf("Database error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	default:
		log.Printf("Unknown error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
