package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"go-warehouse/internal/model"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

// APIError is a non-2xx answer from the catalog API.
type APIError struct {
	Status   int
	Message  string
	Messages []string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api error: status %d", e.Status)
	}
	return fmt.Sprintf("api error: status %d: %s", e.Status, e.Message)
}

// ServerMessage returns the message the server sent with err, if any.
func ServerMessage(err error) (string, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message, true
	}
	return "", false
}

// ProductPayload is the body of product create and update requests.
type ProductPayload struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Category    *string         `json:"category"`
	Quantity    int             `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
	Unit        string          `json:"unit"`
	ImageURL    string          `json:"imageUrl,omitempty"`
}

type Client struct {
	baseURL string
	timeout time.Duration
}

// New returns a client for the API rooted at baseURL (e.g. http://host:3000/api).
func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		timeout: 10 * time.Second,
	}
}

func (c *Client) ListProducts(offset, limit int) (*model.ProductPage, error) {
	var page model.ProductPage
	path := fmt.Sprintf("/products?offset=%d&limit=%d", offset, limit)
	if err := c.do(fiber.MethodGet, path, nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

func (c *Client) GetProduct(id string) (*model.Product, error) {
	var product model.Product
	if err := c.do(fiber.MethodGet, "/products/"+id, nil, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

func (c *Client) CreateProduct(payload ProductPayload) (*model.Product, error) {
	var product model.Product
	if err := c.do(fiber.MethodPost, "/products", payload, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

func (c *Client) UpdateProduct(id string, payload ProductPayload) (*model.Product, error) {
	var product model.Product
	if err := c.do(fiber.MethodPut, "/products/"+id, payload, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

func (c *Client) DeleteProduct(id string) error {
	return c.do(fiber.MethodDelete, "/products/"+id, nil, nil)
}

func (c *Client) ListCategories() ([]model.Category, error) {
	var categories []model.Category
	if err := c.do(fiber.MethodGet, "/categories", nil, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

func (c *Client) CreateCategory(name string) (*model.Category, error) {
	var category model.Category
	if err := c.do(fiber.MethodPost, "/categories", fiber.Map{"name": name}, &category); err != nil {
		return nil, err
	}
	return &category, nil
}

func (c *Client) UpdateCategory(id, name string) (*model.Category, error) {
	var category model.Category
	if err := c.do(fiber.MethodPut, "/categories/"+id, fiber.Map{"name": name}, &category); err != nil {
		return nil, err
	}
	return &category, nil
}

func (c *Client) DeleteCategory(id string) error {
	return c.do(fiber.MethodDelete, "/categories/"+id, nil, nil)
}

func (c *Client) do(method, path string, payload, out any) error {
	a := fiber.AcquireAgent()
	req := a.Request()
	req.Header.SetMethod(method)
	req.SetRequestURI(c.baseURL + path)
	a.Timeout(c.timeout)
	if payload != nil {
		a.JSON(payload)
	}

	if err := a.Parse(); err != nil {
		fiber.ReleaseAgent(a)
		return err
	}

	// Bytes releases the agent.
	code, body, errs := a.Bytes()
	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	if code >= fiber.StatusBadRequest {
		return decodeError(code, body)
	}
	if out == nil {
		return nil
	}
	return json.Unmarshal(body, out)
}

type errorBody struct {
	Error  string `json:"error"`
	Errors []struct {
		Msg string `json:"msg"`
	} `json:"errors"`
}

func decodeError(code int, body []byte) *APIError {
	apiErr := &APIError{Status: code}

	var eb errorBody
	if json.Unmarshal(body, &eb) != nil {
		return apiErr
	}
	for _, e := range eb.Errors {
		apiErr.Messages = append(apiErr.Messages, e.Msg)
	}
	apiErr.Message = eb.Error
	if apiErr.Message == "" {
		apiErr.Message = strings.Join(apiErr.Messages, "; ")
	}
	return apiErr
}
