package handlers

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"reflect"
	"strings"

	"github.com/SscSPs/campus_connect/internal/apperrors"
	"github.com/SscSPs/campus_connect/internal/dto"
	"github.com/SscSPs/campus_connect/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

func init() {
	// Report validation failures with the JSON names clients send.
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(jsonFieldName)
	}
}

func jsonFieldName(fld reflect.StructField) string {
	name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
	if name == "-" {
		return ""
	}
	if name == "" {
		return fld.Name
	}
	return name
}

// bindJSON binds the request body into req. An empty body binds to the zero
// value so the service can report which fields are missing.
func bindJSON(c *gin.Context, req any) bool {
	err := c.ShouldBindJSON(req)
	if err == nil || errors.Is(err, io.EOF) {
		return true
	}
	middleware.GetLoggerFromCtx(c.Request.Context()).Warn("Failed to bind request body", slog.String("error", err.Error()))
	c.JSON(http.StatusBadRequest, dto.Fail(bindingErrorMessage(err)))
	return false
}

// bindingErrorMessage turns binder errors into a message a client can act on.
func bindingErrorMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return "Invalid request body"
	}
	var missing, invalid []string
	for _, fe := range verrs {
		if fe.Tag() == "required" {
			missing = append(missing, fe.Field())
		} else {
			invalid = append(invalid, fe.Field())
		}
	}
	if len(missing) > 0 {
		return "Missing required fields: " + strings.Join(missing, ", ")
	}
	return "Invalid value for field: " + strings.Join(invalid, ", ")
}

// respondError writes the error envelope for err. Anything that is not an
// AppError, and every internal error, is logged and answered generically.
func respondError(c *gin.Context, err error, fallback string) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var appErr *apperrors.AppError
	if !errors.As(err, &appErr) {
		logger.Error("Unhandled error", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.Fail(fallback))
		return
	}

	if appErr.Code >= http.StatusInternalServerError {
		logger.Error("Request failed", slog.String("error", err.Error()), slog.Int("status", appErr.Code))
		if errors.Is(appErr, apperrors.ErrInternal) {
			c.JSON(appErr.Code, dto.Fail(fallback))
			return
		}
	}
	c.JSON(appErr.Code, dto.Fail(appErr.Message))
}
