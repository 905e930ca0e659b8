package middleware

import (
	"bytes"
	"encoding/json"

	"go-warehouse/pkg/validator"

	"github.com/gofiber/fiber/v2"
)

// ValidateBody runs the rule chain against the JSON request body before
// the route handler. Every failing check is reported in one response.
func ValidateBody(chain validator.Chain) fiber.Handler {
	return func(c *fiber.Ctx) error {
		body := map[string]any{}

		if raw := bytes.TrimSpace(c.Body()); len(raw) > 0 {
			dec := json.NewDecoder(bytes.NewReader(raw))
			dec.UseNumber()
			if err := dec.Decode(&body); err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "Invalid JSON body")
			}
		}

		if verr := chain.Run(body); verr != nil {
			return verr
		}
		return c.Next()
	}
}
