package handler

import (
	"errors"
	"log"

	"go-warehouse/internal/service"
	"go-warehouse/pkg/validator"

	"github.com/gofiber/fiber/v2"
)

const internalErrorMessage = "Internal server error"

// ErrorMessage is one entry of a {errors: [...]} response body.
type ErrorMessage struct {
	Msg string `json:"msg"`
}

func errorList(messages ...string) fiber.Map {
	list := make([]ErrorMessage, len(messages))
	for i, m := range messages {
		list[i] = ErrorMessage{Msg: m}
	}
	return fiber.Map{"errors": list}
}

// ErrorHandler is the single place where errors returned by handlers and
// middleware become HTTP responses. Anything it does not recognise is
// logged and reported as a generic 500.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var (
		verr   *validator.ValidationError
		nfErr  *service.NotFoundError
		refErr *service.InvalidReferenceError
		fErr   *fiber.Error
	)

	switch {
	case errors.As(err, &verr):
		return c.Status(fiber.StatusBadRequest).JSON(errorList(verr.Messages...))
	case errors.As(err, &nfErr):
		return c.Status(fiber.StatusNotFound).JSON(errorList(nfErr.Error()))
	case errors.As(err, &refErr):
		return c.Status(fiber.StatusBadRequest).JSON(errorList(refErr.Error()))
	case errors.As(err, &fErr) && fErr.Code < fiber.StatusInternalServerError:
		return c.Status(fErr.Code).JSON(errorList(fErr.Message))
	}

	log.Printf("[Error] %s %s - %v", c.Method(), c.OriginalURL(), err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": internalErrorMessage})
}
