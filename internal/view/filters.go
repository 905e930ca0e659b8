package view

import (
	"regexp"
	"strings"

	"go-warehouse/internal/model"
)

// Filters narrow the loaded products on the client. Zero values match
// everything; set criteria are combined with AND.
type Filters struct {
	// Name is matched case-insensitively as a regular expression, or as a
	// plain substring when it is not a valid expression.
	Name       string
	InStock    bool
	CategoryID string
}

// Apply returns the products that pass every set criterion, in order.
func (f Filters) Apply(products []model.Product) []model.Product {
	match := f.nameMatcher()

	out := make([]model.Product, 0, len(products))
	for _, p := range products {
		if !match(p.Name) {
			continue
		}
		if f.InStock && p.Quantity <= 0 {
			continue
		}
		if f.CategoryID != "" && (p.CategoryID == nil || p.CategoryID.String() != f.CategoryID) {
			continue
		}
		out = append(out, p)
	}
	return out
}

func (f Filters) nameMatcher() func(string) bool {
	if f.Name == "" {
		return func(string) bool { return true }
	}
	if re, err := regexp.Compile("(?i)" + f.Name); err == nil {
		return re.MatchString
	}
	needle := strings.ToLower(f.Name)
	return func(name string) bool {
		return strings.Contains(strings.ToLower(name), needle)
	}
}
