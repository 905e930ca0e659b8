package handler

import (
	"go-warehouse/internal/service"

	"github.com/gofiber/fiber/v2"
)

type CategoryHandler struct {
	service service.CategoryService
}

func NewCategoryHandler(s service.CategoryService) *CategoryHandler {
	return &CategoryHandler{service: s}
}

type categoryRequest struct {
	Name string `json:"name"`
}

// GetCategories returns all categories
// GET /api/categories
func (h *CategoryHandler) GetCategories(c *fiber.Ctx) error {
	categories, err := h.service.GetAllCategories()
	if err != nil {
		return err
	}
	return c.JSON(categories)
}

// CreateCategory handles category creation
// POST /api/categories
func (h *CategoryHandler) CreateCategory(c *fiber.Ctx) error {
	var req categoryRequest
	if err := c.BodyParser(&req); err != nil {
		return badJSON()
	}

	category, err := h.service.CreateCategory(req.Name)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(category)
}

// GetCategory returns a single category by ID
// GET /api/categories/:id
func (h *CategoryHandler) GetCategory(c *fiber.Ctx) error {
	id, err := parseID(c, service.ErrCategoryNotFound)
	if err != nil {
		return err
	}

	category, err := h.service.GetCategoryByID(id)
	if err != nil {
		return err
	}
	return c.JSON(category)
}

// UpdateCategory renames a category
// PUT /api/categories/:id
func (h *CategoryHandler) UpdateCategory(c *fiber.Ctx) error {
	var req categoryRequest
	if err := c.BodyParser(&req); err != nil {
		return badJSON()
	}

	id, err := parseID(c, service.ErrCategoryNotFound)
	if err != nil {
		return err
	}

	category, err := h.service.UpdateCategory(id, req.Name)
	if err != nil {
		return err
	}
	return c.JSON(category)
}

// DeleteCategory removes a category and detaches its products
// DELETE /api/categories/:id
func (h *CategoryHandler) DeleteCategory(c *fiber.Ctx) error {
	id, err := parseID(c, service.ErrCategoryNotFound)
	if err != nil {
		return err
	}

	if err := h.service.DeleteCategory(id); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Category deleted and products updated"})
}
