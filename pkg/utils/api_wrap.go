package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Message string `json:"message"`
	TraceID string `json:"trace_id,omitempty"`
}

// RespondSuccess writes data as the raw response body. The storefront
// consumes bare objects and arrays, so there is no envelope.
func RespondSuccess(c *gin.Context, code int, data interface{}) {
	c.JSON(code, data)
}

func RespondMessage(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"message": message})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, ErrorResponse{
		Message: message,
		TraceID: c.GetString("trace_id"),
	})
}

func AbortWithError(c *gin.Context, code int, message string) {
	RespondError(c, code, message)
	c.Abort()
}

// HandleServiceError maps service sentinels onto HTTP statuses. Anything
// unrecognised is logged and reported as a generic internal error.
func HandleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrMissingCredentials):
		RespondError(c, http.StatusBadRequest, "Email and password required")
	case errors.Is(err, ErrInvalidCredentials):
		RespondError(c, http.StatusBadRequest, "Invalid credentials")
	case errors.Is(err, ErrEmailAlreadyExists):
		RespondError(c, http.StatusBadRequest, "Email already exists")
	case errors.Is(err, ErrInvalidRole):
		RespondError(c, http.StatusBadRequest, "Invalid role")
	case errors.Is(err, ErrInvalidEmail):
		RespondError(c, http.StatusBadRequest, "Invalid email")
	case errors.Is(err, ErrAccountNotFound):
		RespondError(c, http.StatusNotFound, "User not found")
	case errors.Is(err, ErrInvalidToken):
		RespondError(c, http.StatusUnauthorized, "Invalid token")
	case errors.Is(err, ErrOrderDataMissing):
		RespondError(c, http.StatusBadRequest, "Missing order data")
	case errors.Is(err, ErrOrderTotalMismatch):
		RespondError(c, http.StatusBadRequest, "Total price does not match items")
	case errors.Is(err, ErrInvalidProductData):
		RespondError(c, http.StatusBadRequest, "Invalid product data")
	case errors.Is(err, ErrProductNotFound):
		RespondError(c, http.StatusNotFound, "Not found")
	case errors.Is(err, ErrNoFileUploaded):
		RespondError(c, http.StatusBadRequest, "No file uploaded")
	case errors.Is(err, ErrFileTooLarge):
		RespondError(c, http.StatusBadRequest, "File too large")
	case errors.Is(err, ErrUnsupportedFileType):
		RespondError(c, http.StatusBadRequest, "Only image files are allowed")
	case errors.Is(err, ErrDatabaseError):
		zap.L().Error("database error", zap.Error(err), zap.String("trace_id", c.GetString("trace_id")))
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	default:
		zap.L().Error("unhandled service error", zap.Error(err), zap.String("trace_id", c.GetString("trace_id")))
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
