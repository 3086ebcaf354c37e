package domain

import "errors"

var (
	// ErrEmptyCart rejects order placement with no usable lines, whether the
	// cart arrived empty or every line failed price resolution.
	ErrEmptyCart = errors.New("cart is empty")

	ErrOrderNotFound = errors.New("order not found")
)
