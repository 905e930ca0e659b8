package handler

import (
	"encoding/json"

	"go-warehouse/internal/middleware"
	"go-warehouse/internal/model"
	"go-warehouse/internal/service"
	"go-warehouse/pkg/validator"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

type ProductHandler struct {
	service service.ProductService
}

func NewProductHandler(s service.ProductService) *ProductHandler {
	return &ProductHandler{service: s}
}

// productRequest accepts numbers either as JSON numbers or numeric strings.
type productRequest struct {
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Category    *string     `json:"category"`
	Quantity    json.Number `json:"quantity"`
	Price       json.Number `json:"price"`
	Unit        string      `json:"unit"`
	ImageURL    string      `json:"imageUrl"`
}

func (r productRequest) toInput() (service.ProductInput, error) {
	quantity, err := decimal.NewFromString(r.Quantity.String())
	if err != nil || !quantity.IsInteger() {
		return service.ProductInput{}, validator.NewValidationError("Quantity must be a whole number")
	}
	// IntPart keeps only the low 64 bits, so bound before converting.
	if quantity.GreaterThan(decimal.NewFromInt(model.MaxQuantity)) {
		return service.ProductInput{}, validator.NewValidationError(middleware.MsgQuantityTooLarge)
	}
	if !quantity.IsPositive() {
		return service.ProductInput{}, validator.NewValidationError("Quantity must be greater than 0")
	}
	price, err := decimal.NewFromString(r.Price.String())
	if err != nil {
		return service.ProductInput{}, validator.NewValidationError("Price must be a number")
	}

	return service.ProductInput{
		Name:        r.Name,
		Description: r.Description,
		Category:    r.Category,
		Quantity:    int(quantity.IntPart()),
		Price:       price,
		Unit:        r.Unit,
		ImageURL:    r.ImageURL,
	}, nil
}

func parseProduct(c *fiber.Ctx) (service.ProductInput, error) {
	var req productRequest
	if err := c.BodyParser(&req); err != nil {
		return service.ProductInput{}, badJSON()
	}
	return req.toInput()
}

// GetProducts returns one page of products plus the overall total
// GET /api/products?offset&limit
func (h *ProductHandler) GetProducts(c *fiber.Ctx) error {
	offset, limit := pagination(c)

	page, err := h.service.GetProducts(offset, limit)
	if err != nil {
		return err
	}
	return c.JSON(page)
}

// CreateProduct handles product creation
// POST /api/products
func (h *ProductHandler) CreateProduct(c *fiber.Ctx) error {
	input, err := parseProduct(c)
	if err != nil {
		return err
	}

	product, err := h.service.CreateProduct(input)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(product)
}

// GetProduct returns a single product by ID
// GET /api/products/:id
func (h *ProductHandler) GetProduct(c *fiber.Ctx) error {
	id, err := parseID(c, service.ErrProductNotFound)
	if err != nil {
		return err
	}

	product, err := h.service.GetProductByID(id)
	if err != nil {
		return err
	}
	return c.JSON(product)
}

// UpdateProduct replaces the writable fields of a product
// PUT /api/products/:id
func (h *ProductHandler) UpdateProduct(c *fiber.Ctx) error {
	input, err := parseProduct(c)
	if err != nil {
		return err
	}

	id, err := parseID(c, service.ErrProductNotFound)
	if err != nil {
		return err
	}

	product, err := h.service.UpdateProduct(id, input)
	if err != nil {
		return err
	}
	return c.JSON(product)
}

// DeleteProduct removes a product
// DELETE /api/products/:id
func (h *ProductHandler) DeleteProduct(c *fiber.Ctx) error {
	id, err := parseID(c, service.ErrProductNotFound)
	if err != nil {
		return err
	}

	if err := h.service.DeleteProduct(id); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Product deleted"})
}
