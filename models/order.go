package models

import "time"

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"   // set at creation; the only transition implemented
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusShipped   OrderStatus = "shipped"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusCancelled OrderStatus = "cancelled"
)

type Order struct {
	ID          uint        `gorm:"primaryKey" json:"id"`
	Ref         string      `gorm:"uniqueIndex;not null" json:"ref"`
	UserID      uint        `gorm:"not null;index" json:"user_id"`
	Items       []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	TotalAmount float64     `json:"total_amount"`
	Status      OrderStatus `gorm:"type:VARCHAR(20);default:'pending'" json:"status"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

// OrderItem freezes the product name and price as they were at order time, so
// historical orders are not rewritten by later catalog changes.
type OrderItem struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	OrderID     uint    `gorm:"index" json:"-"`
	ProductID   uint    `gorm:"not null" json:"product_id"`
	ProductName string  `json:"product_name"`
	Price       float64 `gorm:"not null" json:"price"`
	Quantity    int     `gorm:"not null" json:"quantity"`
}
