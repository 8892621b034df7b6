package dto

import "github.com/shopspring/decimal"

type CreateIngredientInput struct {
	Name        string           `json:"name" binding:"required"`
	Type        *string          `json:"type"`
	ABVPercent  *decimal.Decimal `json:"abv_percent"`
	CostPerOz   *decimal.Decimal `json:"cost_per_oz"`
	IsHousemade bool             `json:"is_housemade"`
	Notes       *string          `json:"notes"`
	ImageURL    *string          `json:"image_url"`
	Allergens   []string         `json:"allergens"`
}

type UpdateIngredientInput struct {
	Name        *string          `json:"name"`
	Type        *string          `json:"type"`
	ABVPercent  *decimal.Decimal `json:"abv_percent"`
	CostPerOz   *decimal.Decimal `json:"cost_per_oz"`
	IsHousemade *bool            `json:"is_housemade"`
	Notes       *string          `json:"notes"`
	ImageURL    *string          `json:"image_url"`
	Allergens   []string         `json:"allergens"`
}

type IngredientDTO struct {
	ID          uint            `json:"id"`
	Name        string          `json:"name"`
	Type        *string         `json:"type"`
	ABVPercent  decimal.Decimal `json:"abv_percent"`
	CostPerOz   decimal.Decimal `json:"cost_per_oz"`
	IsHousemade bool            `json:"is_housemade"`
	Notes       *string         `json:"notes"`
	ImageURL    *string         `json:"image_url"`
	Allergens   []string        `json:"allergens"`
}
