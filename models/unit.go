package models

import "github.com/shopspring/decimal"

type Unit struct {
	Name          string              `gorm:"primaryKey;size:32" json:"name"`
	ToOzFactor    decimal.NullDecimal `gorm:"column:to_oz_factor;type:numeric(12,6)" json:"to_oz_factor"`
	NonVolumetric bool                `gorm:"not null;default:false" json:"non_volumetric"`
	OzEquivalent  decimal.NullDecimal `gorm:"column:oz_equivalent;type:numeric(12,6)" json:"oz_equivalent"`
}

func (Unit) TableName() string { return "units" }
