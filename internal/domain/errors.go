package domain

import "errors"

var (
	// ErrNotFound indicates the requested remote resource does not exist.
	ErrNotFound = errors.New("not found")
	// ErrNoCart indicates an operation that needs an existing cart was
	// called before any cart was created.
	ErrNoCart = errors.New("no cart available")
)

// UserError is a business-rule rejection reported by the commerce
// platform, distinct from a transport failure.
type UserError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// CartRejectedError wraps the userErrors returned by a cart mutation the
// platform executed but refused (e.g. insufficient inventory).
type CartRejectedError struct {
	Errors []UserError
}

func (e *CartRejectedError) Error() string {
	if len(e.Errors) == 0 {
		return "cart operation rejected"
	}
	return e.Errors[0].Message
}
