package model

type DeliveryMethod struct {
	BaseEntity
	ShortName    string  `gorm:"type:varchar(100);not null"`
	DeliveryTime string  `gorm:"type:varchar(100)"`
	Description  string  `gorm:"type:text"`
	Price        float64 `gorm:"type:numeric(18,2);not null"`
}

func (DeliveryMethod) TableName() string {
	return "delivery_methods"
}
