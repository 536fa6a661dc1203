package api

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"meetreport/internal/analysis"
	"meetreport/internal/logging"
	"meetreport/internal/services"
)

const (
	headerRequestID = "X-Request-ID"
	localsRequestID = "request_id"
)

// requestID adopts the caller's X-Request-ID or mints one, echoes it on the
// response and stores it on the request context.
func (s *Server) requestID(c *fiber.Ctx) error {
	id := strings.TrimSpace(c.Get(headerRequestID))
	if id == "" || len(id) > 128 {
		id = services.NewRequestID()
	}
	c.Locals(localsRequestID, id)
	c.Set(headerRequestID, id)
	c.SetUserContext(services.WithRequestID(c.UserContext(), id))
	return c.Next()
}

func requestIDOf(c *fiber.Ctx) string {
	if id, ok := c.Locals(localsRequestID).(string); ok {
		return id
	}
	return ""
}

// handleError renders every failure as {"error", "code", "request_id"}.
func (s *Server) handleError(c *fiber.Ctx, err error) error {
	status := services.HTTPStatus(err)
	code := services.ErrorCode(err)
	body := fiber.Map{
		"error":      err.Error(),
		"code":       code,
		"request_id": requestIDOf(c),
	}

	var fe *fiber.Error
	if errors.As(err, &fe) {
		status = fe.Code
		body["error"] = fe.Message
		body["code"] = fiberCode(fe.Code)
	}
	var field *analysis.FieldError
	if errors.As(err, &field) {
		body["field"] = field.Field
	}

	logger := logging.WithContext(c.UserContext(), s.logger)
	if status >= fiber.StatusInternalServerError {
		logging.ErrorWithContext(logger, "request failed", "http_error",
			logging.String("path", c.Path()),
			logging.Int("status", status),
			logging.Error(err),
		)
	} else {
		logging.WarnWithContext(logger, "request rejected", "http_rejected",
			logging.String("path", c.Path()),
			logging.Int("status", status),
			logging.String(logging.FieldErrorHint, "fix the request and retry"),
			logging.Error(err),
		)
	}
	return c.Status(status).JSON(body)
}

func fiberCode(status int) string {
	switch status {
	case fiber.StatusNotFound:
		return "ERR_NOT_FOUND"
	case fiber.StatusMethodNotAllowed:
		return "ERR_METHOD_NOT_ALLOWED"
	case fiber.StatusRequestEntityTooLarge:
		return "ERR_BODY_TOO_LARGE"
	case fiber.StatusBadRequest:
		return "ERR_BAD_REQUEST"
	default:
		if status >= fiber.StatusInternalServerError {
			return "ERR_INTERNAL"
		}
		return "ERR_REQUEST"
	}
}
