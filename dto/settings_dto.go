package dto

import "github.com/shopspring/decimal"

type UpdateSettingsInput struct {
	LaborCostPerHour    *decimal.Decimal `json:"labor_cost_per_hour"`
	OverheadPct         *decimal.Decimal `json:"overhead_pct"`
	PriceRoundIncrement *decimal.Decimal `json:"price_round_increment"`
}
