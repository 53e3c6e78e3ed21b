package apperr

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

// Sentinel errors for the failure modes the API distinguishes. Callers wrap
// them with fmt.Errorf("%w: ...") so errors.Is keeps working through layers.
var (
	ErrUnauthorized    = errors.New("unauthorized")
	ErrNotFound        = errors.New("not found")
	ErrBadRequest      = errors.New("bad request")
	ErrModelInvocation = errors.New("model invocation failed")
	ErrParse           = errors.New("model response is not valid")
	ErrWriteFailure    = errors.New("write failed")
)

func StatusCode(err error) int {
	switch {
	case errors.Is(err, ErrUnauthorized):
		return fiber.StatusUnauthorized
	case errors.Is(err, ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, ErrBadRequest):
		return fiber.StatusBadRequest
	case errors.Is(err, ErrModelInvocation), errors.Is(err, ErrParse):
		return fiber.StatusBadGateway
	default:
		return fiber.StatusInternalServerError
	}
}
