package middleware

import (
	"fmt"

	"go-warehouse/internal/model"
	"go-warehouse/pkg/validator"

	"github.com/shopspring/decimal"
)

var (
	MsgQuantityTooLarge = fmt.Sprintf("Quantity must be at most %d", model.MaxQuantity)
	MsgPriceTooLarge    = "Price must be at most " + model.MaxPrice.StringFixed(model.PricePlaces)
	MsgPricePlaces      = fmt.Sprintf("Price must have at most %d decimal places", model.PricePlaces)
)

// CategoryRules validates create/update category bodies.
func CategoryRules() validator.Chain {
	return validator.Chain{
		validator.Field("name").
			NotEmpty("Category name is required"),
	}
}

// ProductRules validates create/update product bodies.
func ProductRules() validator.Chain {
	return validator.Chain{
		validator.Field("name").
			NotEmpty("Product name is required"),
		validator.Field("description").
			NotEmpty("Product description is required"),
		validator.Field("quantity").
			NotEmpty("Quantity is required").
			IsNumeric("Quantity must be a number").
			Custom(validator.Positive, "Quantity must be greater than 0").
			Custom(validator.Whole, "Quantity must be a whole number").
			Custom(validator.AtMost(decimal.NewFromInt(model.MaxQuantity)), MsgQuantityTooLarge),
		validator.Field("price").
			NotEmpty("Price is required").
			IsNumeric("Price must be a number").
			Custom(validator.Positive, "Price must be greater than 0").
			Custom(validator.MaxPlaces(model.PricePlaces), MsgPricePlaces).
			Custom(validator.AtMost(model.MaxPrice), MsgPriceTooLarge),
		validator.Field("unit").
			NotEmpty("Unit of measure is required"),
	}
}
