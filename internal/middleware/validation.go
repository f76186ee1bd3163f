package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"reflect"
	"strings"

	"github.com/ayodiya/hux-assessment-backend/internal/constants"
	"github.com/ayodiya/hux-assessment-backend/pkg/logger"
	"github.com/ayodiya/hux-assessment-backend/pkg/validation"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

type ValidationMiddleware struct {
	validate *validator.Validate
}

func NewValidationMiddleware() *ValidationMiddleware {
	v := validator.New()

	// Report violations under the JSON field names the client sent,
	// not the Go struct field names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &ValidationMiddleware{validate: v}
}

// ValidateRequestBody decodes the body into a fresh DTO from factory and
// runs the validator over it. Violations stop the request with 422 and a
// list of field/message pairs; the body is restored for the handler.
func (m *ValidationMiddleware) ValidateRequestBody(factory func() interface{}) gin.HandlerFunc {
	return func(c *gin.Context) {
		body, err := io.ReadAll(c.Request.Body)
		if err != nil {
			logger.GetLogger().Warn("Failed to read request body",
				zap.String("path", c.Request.URL.Path),
				zap.Error(err))
			c.AbortWithStatusJSON(http.StatusUnprocessableEntity, constants.BuildValidationErrorResponse(
				[]map[string]string{{"body": "must be readable"}},
			))
			return
		}
		c.Request.Body = io.NopCloser(bytes.NewBuffer(body))

		payload := factory()
		if err := json.Unmarshal(body, payload); err != nil {
			logger.GetLogger().Warn("Malformed request body",
				zap.String("path", c.Request.URL.Path),
				zap.Error(err))
			c.AbortWithStatusJSON(http.StatusUnprocessableEntity, constants.BuildValidationErrorResponse(
				[]map[string]string{{"body": "must be valid JSON"}},
			))
			return
		}

		if err := m.validate.Struct(payload); err != nil {
			var validationErrors validator.ValidationErrors
			fieldErrors := make([]map[string]string, 0)
			if verrs, ok := err.(validator.ValidationErrors); ok {
				validationErrors = verrs
			}
			for _, fieldErr := range validationErrors {
				fieldErrors = append(fieldErrors, map[string]string{
					fieldErr.Field(): validation.Message(fieldErr.Field(), fieldErr.Tag()),
				})
			}

			logger.GetLogger().Info("Request validation failed",
				zap.String("path", c.Request.URL.Path),
				zap.Int("violations", len(fieldErrors)))
			c.AbortWithStatusJSON(http.StatusUnprocessableEntity, constants.BuildValidationErrorResponse(fieldErrors))
			return
		}

		c.Next()
	}
}
