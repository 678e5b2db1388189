package apperrors

import (
	"log/slog"

	"github.com/gin-gonic/gin"
)

// ErrorResponse - стандартный ответ об ошибке
type ErrorResponse struct {
	Error *AppError `json:"error"`
}

// GinErrorHandler - обработчик ошибок для Gin
type GinErrorHandler struct {
	Debug bool
}

// HandleGinError - основная логика обработки ошибок для Gin
func (h *GinErrorHandler) HandleGinError(c *gin.Context, err error) {
	appErr, ok := AsAppError(err)
	if !ok {
		appErr = InternalError(err)
	}

	if appErr.HTTPCode >= 500 {
		slog.Default().Error("server error", "code", appErr.Code, "error", appErr.Unwrap())
		if !h.Debug {
			appErr = New(appErr.Code, appErr.Domain, appErr.Message, appErr.HTTPCode)
		}
	}

	c.AbortWithStatusJSON(appErr.HTTPCode, ErrorResponse{Error: appErr})
}

// debugErrors управляет детализацией 5xx ответов, выставляется из конфига.
var debugErrors = false

// SetDebug включает подробные ответы для серверных ошибок.
func SetDebug(debug bool) {
	debugErrors = debug
}

// HandleError - быстрая функция-помощник для Gin
func HandleError(c *gin.Context, err error) {
	handler := &GinErrorHandler{Debug: debugErrors}
	handler.HandleGinError(c, err)
}
