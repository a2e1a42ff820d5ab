package domain

import "time"

type OrderStatus string

const (
	OrderCompleted OrderStatus = "COMPLETED"
	OrderVoid      OrderStatus = "VOID"
)

type Order struct {
	ID            int64       `json:"id"`
	UserID        int64       `json:"userId"`
	TotalAmount   int64       `json:"totalAmount"`
	PaymentCash   int64       `json:"paymentCash"`
	PaymentChange int64       `json:"paymentChange"`
	Status        OrderStatus `json:"status"`
	Items         []OrderItem `json:"items"`
	CreatedAt     time.Time   `json:"createdAt"`
}

type OrderItem struct {
	ID        int64   `json:"id"`
	OrderID   int64   `json:"orderId"`
	ProductID int64   `json:"productId"`
	Quantity  int     `json:"quantity"`
	UnitPrice int64   `json:"unitPrice"`
	Product   Product `json:"product"`
}

// NewOrder is the order-creation payload submitted at checkout.
type NewOrder struct {
	UserID        int64 `json:"userId"`
	TotalAmount   int64 `json:"totalAmount"`
	PaymentCash   int64 `json:"paymentCash"`
	PaymentChange int64 `json:"paymentChange"`
}

// OrderSummary is the aggregated report the back office shows.
type OrderSummary struct {
	TotalRevenue     int64 `json:"totalRevenue"`
	TotalSales       int   `json:"totalSales"`
	AverageSaleValue int64 `json:"averageSaleValue"`
	ItemsSold        int   `json:"itemsSold"`
}
