package models

import "github.com/shopspring/decimal"

type Ingredient struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	Name        string          `gorm:"size:255;not null;unique" json:"name"`
	Type        *string         `gorm:"size:64" json:"type"`
	ABVPercent  decimal.Decimal `gorm:"column:abv_percent;type:numeric(5,2);not null;default:0" json:"abv_percent"`
	CostPerOz   decimal.Decimal `gorm:"column:cost_per_oz;type:numeric(10,4);not null;default:0" json:"cost_per_oz"`
	IsHousemade bool            `gorm:"not null;default:false" json:"is_housemade"`
	Notes       *string         `json:"notes"`
	ImageURL    *string         `gorm:"size:500" json:"image_url"`
}

func (Ingredient) TableName() string { return "ingredients" }
