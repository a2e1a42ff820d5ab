package domain

// Cart is the cashier's active, unpaid order-in-progress. It is owned by the
// server and mirrored locally; consumers must treat it as read-only and go
// through the cart store for mutations.
type Cart struct {
	ID     int64      `json:"id"`
	UserID int64      `json:"userId"`
	Items  []CartItem `json:"items"`
}

// CartItem is one product line within a cart. ID is server-assigned for
// persisted items; lines added optimistically carry a negative placeholder id
// until the server confirms them.
type CartItem struct {
	ID        int64   `json:"id"`
	CartID    int64   `json:"cartId"`
	ProductID int64   `json:"productId"`
	Quantity  int     `json:"quantity"`
	Product   Product `json:"product"`
}

// Clone returns a deep copy, used as a rollback snapshot for optimistic
// mutations.
func (c *Cart) Clone() *Cart {
	if c == nil {
		return nil
	}
	cp := *c
	cp.Items = make([]CartItem, len(c.Items))
	copy(cp.Items, c.Items)
	return &cp
}

// Find returns the index of the item with the given id, or -1.
func (c *Cart) Find(itemID int64) int {
	if c == nil {
		return -1
	}
	for i := range c.Items {
		if c.Items[i].ID == itemID {
			return i
		}
	}
	return -1
}

// FindProduct returns the index of the line holding the given product, or -1.
// A cart holds at most one line per product.
func (c *Cart) FindProduct(productID int64) int {
	if c == nil {
		return -1
	}
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			return i
		}
	}
	return -1
}

// TotalAmount is the sum of price*quantity over all lines.
func (c *Cart) TotalAmount() int64 {
	if c == nil {
		return 0
	}
	var total int64
	for _, item := range c.Items {
		total += item.Product.Price * int64(item.Quantity)
	}
	return total
}
