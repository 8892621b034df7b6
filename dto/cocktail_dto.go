package dto

import (
	"github.com/shopspring/decimal"
)

// LineInput is one ingredient line as edited in the admin console. Lines
// are stored in the order given; amount_oz is always recomputed server-side.
type LineInput struct {
	IngredientID uint            `json:"ingredient_id" binding:"required"`
	Amount       decimal.Decimal `json:"amount" binding:"required"`
	Unit         string          `json:"unit" binding:"required"`
	PrepNote     *string         `json:"prep_note"`
	IsOptional   bool            `json:"is_optional"`
}

type CreateCocktailInput struct {
	Name             string      `json:"name" binding:"required"`
	Slug             *string     `json:"slug"`
	GlassType        *string     `json:"glass_type"`
	FlavorScale      *int16      `json:"flavor_scale" binding:"omitempty,min=0,max=10"`
	InventionYear    *int16      `json:"invention_year"`
	DescriptionShort *string     `json:"description_short"`
	StoryLong        *string     `json:"story_long"`
	TimeToMakeSec    *int        `json:"time_to_make_sec" binding:"omitempty,min=0"`
	ImageURL         *string     `json:"image_url"`
	VideoURL         *string     `json:"video_url"`
	Status           *string     `json:"status" binding:"omitempty,oneof=draft published archived"`
	Tags             []string    `json:"tags"`
	Lines            []LineInput `json:"lines" binding:"omitempty,dive"`
}

type UpdateCocktailInput struct {
	Name             *string  `json:"name"`
	Slug             *string  `json:"slug"`
	GlassType        *string  `json:"glass_type"`
	FlavorScale      *int16   `json:"flavor_scale" binding:"omitempty,min=0,max=10"`
	InventionYear    *int16   `json:"invention_year"`
	DescriptionShort *string  `json:"description_short"`
	StoryLong        *string  `json:"story_long"`
	TimeToMakeSec    *int     `json:"time_to_make_sec" binding:"omitempty,min=0"`
	ImageURL         *string  `json:"image_url"`
	VideoURL         *string  `json:"video_url"`
	Tags             []string `json:"tags"`
}

type UpdateCocktailStatusInput struct {
	Status string `json:"status" binding:"required,oneof=draft published archived"`
}

type ReplaceLinesInput struct {
	Lines []LineInput `json:"lines" binding:"required,dive"`
}

// LineDTO is an ingredient line as served, amounts in the original units.
type LineDTO struct {
	Seq            int16               `json:"seq"`
	IngredientID   uint                `json:"ingredient_id"`
	IngredientName string              `json:"ingredient_name"`
	Amount         decimal.Decimal     `json:"amount"`
	Unit           string              `json:"unit"`
	AmountOz       decimal.Decimal     `json:"amount_oz"`
	PrepNote       *string             `json:"prep_note"`
	IsOptional     bool                `json:"is_optional"`
	ABVPercent     decimal.NullDecimal `json:"abv_percent,omitempty"`
}

// CocktailAdminRow is one row of the admin list, cocktail columns plus the
// computed ABV and suggested price.
type CocktailAdminRow struct {
	ID             uint                `json:"id"`
	Slug           string              `json:"slug"`
	Name           string              `json:"name"`
	GlassType      *string             `json:"glass_type"`
	FlavorScale    int16               `json:"flavor_scale"`
	Status         string              `json:"status"`
	ABVPercent     decimal.NullDecimal `json:"abv_percent"`
	PriceSuggested decimal.NullDecimal `json:"price_suggested"`
	UpdatedAt      string              `json:"updated_at"`
}

// CocktailDetailDTO is the full admin edit view of one cocktail.
type CocktailDetailDTO struct {
	ID               uint                `json:"id"`
	Slug             string              `json:"slug"`
	Name             string              `json:"name"`
	GlassType        *string             `json:"glass_type"`
	FlavorScale      int16               `json:"flavor_scale"`
	InventionYear    *int16              `json:"invention_year"`
	DescriptionShort *string             `json:"description_short"`
	StoryLong        *string             `json:"story_long"`
	TimeToMakeSec    int                 `json:"time_to_make_sec"`
	PriceAuto        decimal.NullDecimal `json:"price_auto"`
	ImageURL         *string             `json:"image_url"`
	VideoURL         *string             `json:"video_url"`
	Status           string              `json:"status"`
	CreatedAt        string              `json:"created_at"`
	UpdatedAt        string              `json:"updated_at"`
	Tags             []string            `json:"tags"`
	Lines            []LineDTO           `json:"lines"`
	Totals           CocktailTotalsDTO   `json:"totals"`
}

// CocktailTotalsDTO mirrors the computed summary columns for one cocktail.
type CocktailTotalsDTO struct {
	VolumeOz       decimal.Decimal     `json:"volume_oz"`
	ABVPercent     decimal.Decimal     `json:"abv_percent"`
	Cost           decimal.Decimal     `json:"cost"`
	PriceRaw       decimal.NullDecimal `json:"price_raw"`
	PriceSuggested decimal.NullDecimal `json:"price_suggested"`
}

// MenuCocktailDTO is the public menu shape, one published cocktail.
type MenuCocktailDTO struct {
	Slug             string              `json:"slug"`
	Name             string              `json:"name"`
	GlassType        *string             `json:"glass_type"`
	FlavorScale      int16               `json:"flavor_scale"`
	InventionYear    *int16              `json:"invention_year,omitempty"`
	DescriptionShort *string             `json:"description_short"`
	StoryLong        *string             `json:"story_long,omitempty"`
	TimeToMakeSec    int                 `json:"time_to_make_sec"`
	ABVPercent       decimal.NullDecimal `json:"abv_percent"`
	PriceSuggested   decimal.NullDecimal `json:"price_suggested"`
	Allergens        []string            `json:"allergens"`
	ImageURL         *string             `json:"image_url"`
	VideoURL         *string             `json:"video_url"`
	Tags             []string            `json:"tags,omitempty"`
	Lines            []LineDTO           `json:"lines,omitempty"`
}

// MenuEvent is what the menu websocket feed broadcasts.
type MenuEvent struct {
	Event    string           `json:"event"`
	Slug     string           `json:"slug"`
	Cocktail *MenuCocktailDTO `json:"cocktail,omitempty"`
}
