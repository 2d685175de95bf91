package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"reflect"
	"strings"
	"sync"

	"github.com/SomSankar/omni-links/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

var registerTagNames sync.Once

// useJSONFieldNames makes validator report `slug` rather than `Slug`.
func useJSONFieldNames() {
	registerTagNames.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	})
}

// statusFor maps service errors onto HTTP statuses and the message shown to the caller.
func statusFor(err error) (int, string) {
	var verr *services.ValidationError
	switch {
	case errors.As(err, &verr):
		return http.StatusBadRequest, verr.Message
	case errors.Is(err, services.ErrNotFound):
		return http.StatusNotFound, "not found"
	case errors.Is(err, services.ErrDuplicateSlug):
		return http.StatusConflict, "slug is already taken"
	case errors.Is(err, services.ErrStaleOrder):
		return http.StatusConflict, "links changed, reload and try again"
	default:
		return http.StatusInternalServerError, "internal error"
	}
}

// respondError logs a failed admin operation at level and writes
// {"error": "Error <action>: <message>"}.
func (h *Handler) respondError(c *gin.Context, level slog.Level, action string, err error) {
	status, msg := statusFor(err)
	h.logger.Log(c.Request.Context(), level, "Error "+action, "status", status, "error", err)

	body := gin.H{"error": fmt.Sprintf("Error %s: %s", action, msg)}
	var verr *services.ValidationError
	if errors.As(err, &verr) {
		body["field"] = verr.Field
	}
	c.JSON(status, body)
}

func (h *Handler) respondBindError(c *gin.Context, action string, err error) {
	h.logger.Warn("Error "+action, "status", http.StatusBadRequest, "error", err)
	c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Error %s: %s", action, bindingMessage(err))})
}

func bindingMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return "invalid request body"
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fieldMessage(fe))
	}
	return strings.Join(msgs, "; ")
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "url":
		return fe.Field() + " must be a valid URL"
	case "uuid":
		return fe.Field() + " must be a valid id"
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", fe.Field(), fe.Param())
	case "min":
		return fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
	}
	return fe.Field() + " is invalid"
}

func parseIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name})
		return uuid.Nil, false
	}
	return id, true
}
