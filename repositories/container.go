package repositories

import (
	"github.com/adanilkinca/techcockbar/db"
)

type Repos struct {
	User       UserRepo
	Cocktail   CocktailRepo
	Ingredient IngredientRepo
	Tag        TagRepo
	Unit       UnitRepo
	Settings   SettingsRepo
	Summary    SummaryRepo
	Audit      AuditRepo
}

func New() *Repos {
	return &Repos{
		User:       NewUserRepo(db.DB),
		Cocktail:   NewCocktailRepo(db.DB),
		Ingredient: NewIngredientRepo(db.DB),
		Tag:        NewTagRepo(db.DB),
		Unit:       NewUnitRepo(db.DB),
		Settings:   NewSettingsRepo(db.DB),
		Summary:    NewSummaryRepo(db.DB),
		Audit:      NewAuditRepo(db.DB),
	}
}
