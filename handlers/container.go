package handlers

import (
	"github.com/adanilkinca/techcockbar/services"
	"github.com/adanilkinca/techcockbar/websocket"
)

type Handlers struct {
	Auth       *AuthHandler
	Menu       *MenuHandler
	MenuFeed   *MenuFeedHandler
	Cocktail   *CocktailHandler
	Ingredient *IngredientHandler
	Tag        *TagHandler
	Unit       *UnitHandler
	Settings   *SettingsHandler
	User       *UserHandler
	Audit      *AuditHandler
	Upload     *UploadHandler
}

// New wires one handler per service. The hub may be nil when no menu feed
// is running.
func New(svc *services.Services, hub *websocket.Hub) *Handlers {
	return &Handlers{
		Auth:       NewAuthHandler(svc.User),
		Menu:       NewMenuHandler(svc.Menu),
		MenuFeed:   NewMenuFeedHandler(hub),
		Cocktail:   NewCocktailHandler(svc.Cocktail),
		Ingredient: NewIngredientHandler(svc.Ingredient),
		Tag:        NewTagHandler(svc.Tag),
		Unit:       NewUnitHandler(svc.Unit),
		Settings:   NewSettingsHandler(svc.Settings),
		User:       NewUserHandler(svc.User),
		Audit:      NewAuditHandler(svc.Audit),
		Upload:     NewUploadHandler(svc.Upload),
	}
}
