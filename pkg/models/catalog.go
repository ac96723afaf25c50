package models

import "time"

type Product struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Price       float64   `json:"price"`
	Stock       int       `json:"stock"`
	Threshold   int       `json:"threshold"`
	Category    string    `json:"category"`
	SKU         string    `json:"sku,omitempty"`
	Unit        string    `json:"unit,omitempty"`
	Image       string    `json:"image,omitempty"`
	SupplierID  int       `json:"supplierId,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// LowStock reports whether the product is at or below its refill threshold.
func (p *Product) LowStock() bool { return p.Stock <= p.Threshold }

type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderConfirmed OrderStatus = "confirmed"
	OrderShipped   OrderStatus = "shipped"
	OrderDelivered OrderStatus = "delivered"
	OrderCancelled OrderStatus = "cancelled"
)

type PaymentStatus string

const (
	PaymentUnpaid PaymentStatus = "unpaid"
	PaymentPaid   PaymentStatus = "paid"
)

type Order struct {
	ID            int           `json:"id"`
	ProductID     int           `json:"productId"`
	Product       *Product      `json:"product,omitempty"`
	Quantity      int           `json:"quantity"`
	Status        OrderStatus   `json:"status"`
	PaymentStatus PaymentStatus `json:"paymentStatus"`
	TotalAmount   float64       `json:"totalAmount"`
	SupplierID    int           `json:"supplierId,omitempty"`
	Supplier      *User         `json:"supplier,omitempty"`
	RequestedBy   int           `json:"requestedBy,omitempty"`
	RequestedByUser *User       `json:"requestedByUser,omitempty"`
	ExpectedDeliveryDate string `json:"expectedDeliveryDate,omitempty"`
	PaidAt        *time.Time    `json:"paidAt,omitempty"`
	CreatedAt     time.Time     `json:"createdAt"`
	UpdatedAt     time.Time     `json:"updatedAt"`
}

// Open reports whether the order still counts against auto-refill, i.e. a
// replacement delivery is already on its way.
func (o *Order) Open() bool {
	return o.Status == OrderPending || o.Status == OrderConfirmed || o.Status == OrderShipped
}

type NotificationType string

const (
	NotifyLowStock       NotificationType = "LOW_STOCK"
	NotifyOrderShipped   NotificationType = "ORDER_SHIPPED"
	NotifyOrderDelivered NotificationType = "ORDER_DELIVERED"
	NotifySystem         NotificationType = "SYSTEM"
)

type Notification struct {
	ID        int              `json:"id"`
	Type      NotificationType `json:"type"`
	Title     string           `json:"title"`
	Message   string           `json:"message"`
	Read      bool             `json:"read"`
	UserID    int              `json:"userId,omitempty"`
	ProductID int              `json:"productId,omitempty"`
	OrderID   int              `json:"orderId,omitempty"`
	CreatedAt time.Time        `json:"createdAt"`
}

// Page is the pagination envelope shared by all list endpoints.
type Page struct {
	Data       any `json:"data"`
	Total      int `json:"total"`
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	TotalPages int `json:"totalPages"`
}

type MonthlyConsumption struct {
	Month       string  `json:"month"`
	ProductID   int     `json:"productId"`
	ProductName string  `json:"productName"`
	Quantity    int     `json:"quantity"`
	TotalValue  float64 `json:"totalValue"`
}
