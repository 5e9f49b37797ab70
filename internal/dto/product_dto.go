package dto

import (
	"encoding/json"

	"github.com/google/uuid"
)

type ProductResponse struct {
	Id              uuid.UUID       `json:"id"`
	Name            string          `json:"name"`
	Description     string          `json:"description"`
	Price           float64         `json:"price"`
	PictureUrl      string          `json:"picture_url"`
	Type            string          `json:"type"`
	Brand           string          `json:"brand"`
	QuantityInStock int             `json:"quantity_in_stock"`
	Attributes      json.RawMessage `json:"attributes,omitempty"`
}
