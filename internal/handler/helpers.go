package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const (
	defaultLimit = 10
	maxLimit     = 100
)

// parseID reads the :id path parameter. An id that does not parse names
// no record, so it is reported the same way as a missing one.
func parseID(c *fiber.Ctx, notFound error) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return uuid.Nil, notFound
	}
	return id, nil
}

// pagination reads offset/limit query parameters with lenient defaults.
func pagination(c *fiber.Ctx) (offset, limit int) {
	offset, err := strconv.Atoi(c.Query("offset"))
	if err != nil || offset < 0 {
		offset = 0
	}

	limit, err = strconv.Atoi(c.Query("limit"))
	if err != nil || limit < 1 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	return offset, limit
}

func badJSON() error {
	return fiber.NewError(fiber.StatusBadRequest, "Invalid JSON body")
}
