package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type CocktailStatus string

const (
	CocktailStatusDraft     CocktailStatus = "draft"
	CocktailStatusPublished CocktailStatus = "published"
	CocktailStatusArchived  CocktailStatus = "archived"
)

type Cocktail struct {
	ID               uint                 `gorm:"primaryKey" json:"id"`
	Slug             string               `gorm:"size:140;not null;unique" json:"slug"`
	Name             string               `gorm:"size:255;not null" json:"name"`
	GlassType        *string              `gorm:"size:80" json:"glass_type"`
	FlavorScale      int16                `gorm:"not null;default:0" json:"flavor_scale"`
	InventionYear    *int16               `json:"invention_year"`
	DescriptionShort *string              `json:"description_short"`
	StoryLong        *string              `json:"story_long"`
	TimeToMakeSec    int                  `gorm:"column:time_to_make_sec;not null;default:0" json:"time_to_make_sec"`
	PriceAuto        decimal.NullDecimal  `gorm:"column:price_auto;type:numeric(10,2)" json:"price_auto"`
	ImageURL         *string              `gorm:"size:500" json:"image_url"`
	VideoURL         *string              `gorm:"size:500" json:"video_url"`
	Status           CocktailStatus       `gorm:"type:cocktail_status;not null;default:'draft'" json:"status"`
	CreatedAt        time.Time            `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time            `gorm:"autoUpdateTime" json:"updated_at"`
	Tags             []Tag                `gorm:"many2many:cocktail_tags" json:"tags,omitempty"`
	Lines            []CocktailIngredient `gorm:"foreignKey:CocktailID" json:"lines,omitempty"`
}

func (Cocktail) TableName() string { return "cocktails" }

type CocktailIngredient struct {
	ID           uint            `gorm:"primaryKey" json:"id"`
	CocktailID   uint            `gorm:"not null;uniqueIndex:uq_cocktail_ingredient_seq" json:"cocktail_id"`
	IngredientID uint            `gorm:"not null;uniqueIndex:uq_cocktail_ingredient_seq" json:"ingredient_id"`
	Seq          int16           `gorm:"not null;default:1;uniqueIndex:uq_cocktail_ingredient_seq" json:"seq"`
	AmountOz     decimal.Decimal `gorm:"column:amount_oz;type:numeric(10,4);not null;default:0" json:"amount_oz"`
	UnitInput    string          `gorm:"size:32;not null" json:"unit_input"`
	AmountInput  decimal.Decimal `gorm:"column:amount_input;type:numeric(10,4);not null;default:0" json:"amount_input"`
	PrepNote     *string         `gorm:"size:255" json:"prep_note"`
	IsOptional   bool            `gorm:"not null;default:false" json:"is_optional"`
	Ingredient   *Ingredient     `gorm:"foreignKey:IngredientID" json:"ingredient,omitempty"`
}

func (CocktailIngredient) TableName() string { return "cocktail_ingredients" }
