package httpx

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/Fidelis-Mayaba-II-Cheelo/Lodge-Accommodation-Management-REST-API-with-JWT-Authentication/internal/apperr"
)

type ErrorResponse struct {
	Error     string `json:"error"`
	Code      string `json:"code,omitempty"`
	Detail    string `json:"detail,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}

func requestID(c *fiber.Ctx) string {
	if v := c.Locals("requestid"); v != nil {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

func Error(c *fiber.Ctx, status int, code string, message string) error {
	if message == "" {
		message = "Request failed"
	}
	return c.Status(status).JSON(ErrorResponse{
		Error:     message,
		Code:      code,
		RequestID: requestID(c),
	})
}

func BadRequest(c *fiber.Ctx, code string, message string) error {
	return Error(c, fiber.StatusBadRequest, code, message)
}

func Unauthorized(c *fiber.Ctx, code string, message string) error {
	return Error(c, fiber.StatusUnauthorized, code, message)
}

func Forbidden(c *fiber.Ctx, code string, message string) error {
	return Error(c, fiber.StatusForbidden, code, message)
}

func NotFound(c *fiber.Ctx, code string, message string) error {
	return Error(c, fiber.StatusNotFound, code, message)
}

func Conflict(c *fiber.Ctx, code string, message string) error {
	return Error(c, fiber.StatusConflict, code, message)
}

func Internal(c *fiber.Ctx, code string) error {
	return Error(c, fiber.StatusInternalServerError, code, "Internal server error")
}

// FromError maps a service error onto the HTTP response. Store failures hide
// their underlying detail in production.
func FromError(c *fiber.Ctx, err error) error {
	var e *apperr.Error
	msg := "Request failed"
	kind := apperr.KindOf(err)
	if errors.As(err, &e) {
		msg = e.Msg
	}

	switch kind {
	case apperr.KindNotFound:
		return NotFound(c, "not_found", msg)
	case apperr.KindValidation:
		return BadRequest(c, "validation_failed", msg)
	case apperr.KindUnauthorized:
		return Unauthorized(c, "unauthorized", msg)
	case apperr.KindConflict:
		return Conflict(c, "conflict", msg)
	default:
		resp := ErrorResponse{
			Error:     "Internal server error",
			Code:      kind.String(),
			RequestID: requestID(c),
		}
		if e != nil && !isProduction() {
			resp.Detail = e.Error()
		}
		return c.Status(fiber.StatusInternalServerError).JSON(resp)
	}
}

func isProduction() bool {
	return strings.ToLower(strings.TrimSpace(os.Getenv("APP_ENV"))) == "production"
}

func LocalUint(c *fiber.Ctx, key string) (uint, error) {
	v := c.Locals(key)
	if v == nil {
		return 0, fmt.Errorf("missing local %s", key)
	}
	u, ok := v.(uint)
	if !ok {
		return 0, fmt.Errorf("invalid local %s", key)
	}
	return u, nil
}
