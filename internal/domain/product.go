package domain

// Product is the catalog snapshot as known at fetch time. Prices are whole
// rupiah. The snapshot embedded in a cart line may go stale relative to the
// server; that staleness is accepted, not corrected.
type Product struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
	Price    int64  `json:"price"`
	Stock    int    `json:"stock"`
	Sale     int    `json:"sale"`
	Image    string `json:"image,omitempty"`
	IsActive bool   `json:"isActive"`
}

type NewProduct struct {
	Name     string `json:"name" validate:"required"`
	Category string `json:"category" validate:"required"`
	Price    int64  `json:"price" validate:"required,gt=0"`
	Stock    int    `json:"stock" validate:"gte=0"`
	Image    string `json:"image,omitempty"`
}

type UpdateProduct struct {
	Name     *string `json:"name,omitempty" validate:"omitempty,min=1"`
	Category *string `json:"category,omitempty" validate:"omitempty,min=1"`
	Price    *int64  `json:"price,omitempty" validate:"omitempty,gt=0"`
	Stock    *int    `json:"stock,omitempty" validate:"omitempty,gte=0"`
	Image    *string `json:"image,omitempty"`
}
