package checkout

import "errors"

var (
	ErrEmptyCart        = errors.New("cart is empty, nothing to checkout")
	ErrInsufficientCash = errors.New("cash received is less than the total")
)
