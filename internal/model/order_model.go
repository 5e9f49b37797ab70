package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const (
	OrderStatusPending         = "pending"
	OrderStatusPaymentReceived = "payment_received"
	OrderStatusPaymentFailed   = "payment_failed"
	OrderStatusRefunded        = "refunded"
)

type ShippingAddress struct {
	Name       string `json:"name"`
	Line1      string `json:"line1"`
	Line2      string `json:"line2,omitempty"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`
}

type Order struct {
	BaseEntity
	OrderDate        time.Time                           `gorm:"not null;index"`
	BuyerEmail       string                              `gorm:"type:varchar(255);not null;index"`
	ShippingAddress  datatypes.JSONType[ShippingAddress] `gorm:"type:jsonb"`
	DeliveryMethodId uuid.UUID                           `gorm:"type:uuid;not null"`
	DeliveryMethod   *DeliveryMethod                     `gorm:"foreignKey:DeliveryMethodId"`
	OrderItems       []OrderItem                         `gorm:"foreignKey:OrderId;constraint:OnDelete:CASCADE"`
	Subtotal         float64                             `gorm:"type:numeric(18,2);not null"`
	Status           string                              `gorm:"type:varchar(50);not null;default:'pending'"`
	PaymentIntentId  string                              `gorm:"type:varchar(255);index"`
}

func (Order) TableName() string {
	return "orders"
}

// Total is the subtotal plus the delivery price, when the delivery method is loaded.
func (o *Order) Total() float64 {
	if o.DeliveryMethod == nil {
		return o.Subtotal
	}
	return o.Subtotal + o.DeliveryMethod.Price
}

type OrderItem struct {
	BaseEntity
	OrderId     uuid.UUID `gorm:"type:uuid;not null;index"`
	ProductId   uuid.UUID `gorm:"type:uuid;not null"`
	Product     *Product  `gorm:"foreignKey:ProductId"`
	ProductName string    `gorm:"type:varchar(255);not null"`
	PictureUrl  string    `gorm:"type:varchar(512)"`
	Price       float64   `gorm:"type:numeric(18,2);not null"`
	Quantity    int       `gorm:"not null"`
}

func (OrderItem) TableName() string {
	return "order_items"
}

// OrderSummary is a flat read model projected from orders.
type OrderSummary struct {
	Id         uuid.UUID
	OrderDate  time.Time
	BuyerEmail string
	Status     string
	Subtotal   float64
}
