package service

// NotFoundError is returned when the addressed entity does not exist.
type NotFoundError struct {
	msg string
}

func (e *NotFoundError) Error() string { return e.msg }

// InvalidReferenceError is returned when a write references an entity
// that does not exist.
type InvalidReferenceError struct {
	msg string
}

func (e *InvalidReferenceError) Error() string { return e.msg }

var (
	ErrCategoryNotFound = &NotFoundError{msg: "Category not found"}
	ErrProductNotFound  = &NotFoundError{msg: "Product not found"}
	ErrUnknownCategory  = &InvalidReferenceError{msg: "Category not found"}
)
