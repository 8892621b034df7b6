package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// Read-only rows backed by cocktail_summary_v. The per-metric views
// (cocktail_abv_v, cocktail_price_v, cocktail_allergens_v) exist only as
// building blocks of the summary view and are never queried directly.

type CocktailSummary struct {
	ID               uint                `gorm:"primaryKey" json:"id"`
	Slug             string              `json:"slug"`
	Name             string              `json:"name"`
	GlassType        *string             `json:"glass_type"`
	FlavorScale      int16               `json:"flavor_scale"`
	InventionYear    *int16              `json:"invention_year"`
	DescriptionShort *string             `json:"description_short"`
	StoryLong        *string             `json:"story_long"`
	TimeToMakeSec    int                 `gorm:"column:time_to_make_sec" json:"time_to_make_sec"`
	ABVPercent       decimal.NullDecimal `gorm:"column:abv_percent" json:"abv_percent"`
	PriceSuggested   decimal.NullDecimal `gorm:"column:price_suggested" json:"price_suggested"`
	AllergensJSON    datatypes.JSON      `gorm:"column:allergens_json" json:"allergens_json"`
}

func (CocktailSummary) TableName() string { return "cocktail_summary_v" }

// PublishedCocktail is a summary row joined with the cocktail's media
// columns, the shape the public menu endpoints serve.
type PublishedCocktail struct {
	ID               uint                `json:"id"`
	Slug             string              `json:"slug"`
	Name             string              `json:"name"`
	GlassType        *string             `json:"glass_type"`
	FlavorScale      int16               `json:"flavor_scale"`
	InventionYear    *int16              `json:"invention_year"`
	DescriptionShort *string             `json:"description_short"`
	StoryLong        *string             `json:"story_long"`
	TimeToMakeSec    int                 `gorm:"column:time_to_make_sec" json:"time_to_make_sec"`
	ABVPercent       decimal.NullDecimal `gorm:"column:abv_percent" json:"abv_percent"`
	PriceSuggested   decimal.NullDecimal `gorm:"column:price_suggested" json:"price_suggested"`
	AllergensJSON    datatypes.JSON      `gorm:"column:allergens_json" json:"allergens_json"`
	ImageURL         *string             `json:"image_url"`
	VideoURL         *string             `json:"video_url"`
}
