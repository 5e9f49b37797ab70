package model

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Product struct {
	BaseEntity
	Name            string         `gorm:"type:varchar(255);not null"`
	Description     string         `gorm:"type:text"`
	Price           float64        `gorm:"type:numeric(18,2);not null"`
	PictureUrl      string         `gorm:"type:varchar(512)"`
	Type            string         `gorm:"type:varchar(100);not null;index"`
	Brand           string         `gorm:"type:varchar(100);not null;index"`
	QuantityInStock int            `gorm:"not null"`
	IsActive        bool           `gorm:"not null;index"`
	Attributes      datatypes.JSON `gorm:"type:jsonb"`
	CreatedAt       time.Time      `gorm:"autoCreateTime"`
	UpdatedAt       time.Time      `gorm:"autoUpdateTime"`
	DeletedAt       gorm.DeletedAt `gorm:"index"`
}

func (Product) TableName() string {
	return "products"
}
