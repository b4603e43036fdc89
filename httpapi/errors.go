package httpapi

import (
	"github.com/gofiber/fiber/v2"
	"github.com/goliatone/go-errors"
	"github.com/goliatone/go-print"
)

var errMissingToken = errors.New("no authorization token provided", errors.CategoryAuth).
	WithTextCode("MISSING_TOKEN").
	WithCode(errors.CodeUnauthorized)

var errUnauthorized = errors.New("invalid or expired token", errors.CategoryAuth).
	WithTextCode("UNAUTHORIZED").
	WithCode(errors.CodeUnauthorized)

// errorHandler maps rich errors onto the JSON error envelope. Authentication
// failures collapse into a uniform 401 so callers cannot enumerate accounts.
func (s *Server) errorHandler(c *fiber.Ctx, err error) error {
	if fiberErr, ok := err.(*fiber.Error); ok {
		return c.Status(fiberErr.Code).JSON(fiber.Map{
			"error": fiber.Map{"message": fiberErr.Message},
		})
	}

	var richErr *errors.Error
	if !errors.As(err, &richErr) {
		richErr = errors.Wrap(err, errors.CategoryInternal, "an unexpected server error occurred").
			WithCode(errors.CodeInternal)
	}

	status := richErr.Code
	if status < fiber.StatusBadRequest || status > 599 {
		status = statusFromCategory(richErr.Category)
	}

	if status >= fiber.StatusInternalServerError {
		s.logger.Error("request failed",
			"error", richErr.Message,
			"category", richErr.Category,
			"path", c.OriginalURL(),
			"details", print.MaybePrettyJSON(richErr.Metadata),
		)
	}

	body := fiber.Map{
		"message":   richErr.Message,
		"text_code": richErr.TextCode,
		"category":  richErr.Category,
	}

	if richErr.Category == errors.CategoryValidation {
		if fields := richErr.ValidationMap(); len(fields) > 0 {
			body["validation"] = fields
		}
	}

	return c.Status(status).JSON(fiber.Map{"error": body})
}

// statusFromCategory picks an HTTP status for rich errors that carry a
// category but no explicit code, e.g. ozzo validation failures.
func statusFromCategory(category errors.Category) int {
	switch category {
	case errors.CategoryValidation, errors.CategoryBadInput:
		return fiber.StatusBadRequest
	case errors.CategoryAuth:
		return fiber.StatusUnauthorized
	case errors.CategoryAuthz:
		return fiber.StatusForbidden
	case errors.CategoryNotFound:
		return fiber.StatusNotFound
	case errors.CategoryConflict:
		return fiber.StatusConflict
	default:
		return fiber.StatusInternalServerError
	}
}
