package models

import "github.com/shopspring/decimal"

// PricingSettings is a single row table; PricingSettingsID is the only id ever used.
const PricingSettingsID = 1

type PricingSettings struct {
	ID                  int16           `gorm:"primaryKey" json:"id"`
	LaborCostPerHour    decimal.Decimal `gorm:"column:labor_cost_per_hour;type:numeric(10,2);not null;default:20" json:"labor_cost_per_hour"`
	OverheadPct         decimal.Decimal `gorm:"column:overhead_pct;type:numeric(6,4);not null;default:0.10" json:"overhead_pct"`
	PriceRoundIncrement decimal.Decimal `gorm:"column:price_round_increment;type:numeric(6,3);not null;default:0.25" json:"price_round_increment"`
}

func (PricingSettings) TableName() string { return "settings" }
