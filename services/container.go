package services

import (
	"github.com/adanilkinca/techcockbar/repositories"
	"github.com/adanilkinca/techcockbar/websocket"
)

type Services struct {
	User       *UserService
	Cocktail   *CocktailService
	Ingredient *IngredientService
	Tag        *TagService
	Unit       *UnitService
	Settings   *SettingsService
	Menu       *MenuService
	Audit      *AuditService
	Import     *ImportService
	Seed       *SeedService
	Upload     *UploadService
}

// New wires every service against the shared repositories. The hub may be
// nil when no menu feed is running, as in the CLI.
func New(repos *repositories.Repos, hub *websocket.Hub) *Services {
	menu := NewMenuService(repos)
	return &Services{
		User:       NewUserService(repos),
		Cocktail:   NewCocktailService(repos, menu, hub),
		Ingredient: NewIngredientService(repos),
		Tag:        NewTagService(repos),
		Unit:       NewUnitService(repos),
		Settings:   NewSettingsService(repos),
		Menu:       menu,
		Audit:      NewAuditService(repos),
		Import:     NewImportService(repos),
		Seed:       NewSeedService(repos),
		Upload:     NewUploadService(),
	}
}
