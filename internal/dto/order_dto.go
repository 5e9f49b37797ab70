package dto

import (
	"time"

	"github.com/google/uuid"
)

type OrderItemResponse struct {
	ProductId   uuid.UUID `json:"product_id"`
	ProductName string    `json:"product_name"`
	PictureUrl  string    `json:"picture_url"`
	Price       float64   `json:"price"`
	Quantity    int       `json:"quantity"`
}

type ShippingAddressResponse struct {
	Name       string `json:"name"`
	Line1      string `json:"line1"`
	Line2      string `json:"line2,omitempty"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`
}

type OrderResponse struct {
	Id              uuid.UUID               `json:"id"`
	OrderDate       time.Time               `json:"order_date"`
	BuyerEmail      string                  `json:"buyer_email"`
	ShippingAddress ShippingAddressResponse `json:"shipping_address"`
	DeliveryMethod  string                  `json:"delivery_method"`
	ShippingPrice   float64                 `json:"shipping_price"`
	OrderItems      []OrderItemResponse     `json:"order_items"`
	Subtotal        float64                 `json:"subtotal"`
	Total           float64                 `json:"total"`
	Status          string                  `json:"status"`
	PaymentIntentId string                  `json:"payment_intent_id"`
}

type OrderSummaryResponse struct {
	Id         uuid.UUID `json:"id"`
	OrderDate  time.Time `json:"order_date"`
	BuyerEmail string    `json:"buyer_email"`
	Status     string    `json:"status"`
	Subtotal   float64   `json:"subtotal"`
}
