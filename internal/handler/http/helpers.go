package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mikiasgoitom/Vendora/internal/domain/contract"
	"github.com/mikiasgoitom/Vendora/internal/handler/http/dto"
)

// ErrorHandler centralizes error handling for HTTP responses
func ErrorHandler(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, dto.ErrorResponse{Error: message})
}

// SuccessHandler centralizes success responses
func SuccessHandler(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}

// MessageHandler centralizes message responses
func MessageHandler(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, dto.MessageResponse{Message: message})
}

// BindAndValidate binds JSON request and validates it
func BindAndValidate(c *gin.Context, req interface{}) error {
	if err := c.ShouldBindJSON(req); err != nil {
		ErrorHandler(c, http.StatusBadRequest, err.Error())
		return err
	}
	return nil
}

// HandleUsecaseError maps domain errors onto HTTP status codes and writes
// the response.
func HandleUsecaseError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, contract.ErrPostNotFound),
		errors.Is(err, contract.ErrCommentNotFound),
		errors.Is(err, contract.ErrUserNotFound),
		errors.Is(err, contract.ErrShopNotFound):
		ErrorHandler(c, http.StatusNotFound, err.Error())
	case errors.Is(err, contract.ErrValidation):
		ErrorHandler(c, http.StatusBadRequest, err.Error())
	default:
		ErrorHandler(c, http.StatusInternalServerError, err.Error())
	}
}
