package services

import (
	"encoding/json"

	"gorm.io/datatypes"

	"github.com/adanilkinca/techcockbar/dto"
	"github.com/adanilkinca/techcockbar/models"
	"github.com/adanilkinca/techcockbar/repositories"
)

// MenuService serves the public side of the site: published cocktails only.
type MenuService struct {
	Repos *repositories.Repos
}

func NewMenuService(repos *repositories.Repos) *MenuService {
	return &MenuService{Repos: repos}
}

func (s *MenuService) ListMenu(params repositories.PublicQueryParams) ([]dto.MenuCocktailDTO, error) {
	rows, err := s.Repos.Summary.ListPublished(params)
	if err != nil {
		return nil, err
	}
	out := make([]dto.MenuCocktailDTO, 0, len(rows))
	for _, row := range rows {
		out = append(out, menuCocktailDTO(row))
	}
	return out, nil
}

// GetMenuItem returns one published cocktail with its tags and recipe lines.
func (s *MenuService) GetMenuItem(slug string) (dto.MenuCocktailDTO, error) {
	row, err := s.Repos.Summary.GetPublishedBySlug(slug)
	if err != nil {
		return dto.MenuCocktailDTO{}, ErrCocktailNotFound
	}
	item := menuCocktailDTO(row)

	cocktail, err := s.Repos.Cocktail.GetCocktailByID(row.ID)
	if err != nil {
		return dto.MenuCocktailDTO{}, err
	}
	units, err := s.Repos.Unit.ListUnits()
	if err != nil {
		return dto.MenuCocktailDTO{}, err
	}
	item.Tags = tagNames(cocktail.Tags)
	item.Lines = lineDTOs(cocktail.Lines, factorsFromUnits(units))
	return item, nil
}

func menuCocktailDTO(row models.PublishedCocktail) dto.MenuCocktailDTO {
	imageURL := row.ImageURL
	if imageURL == nil || *imageURL == "" {
		placeholder := models.NoImageURL
		imageURL = &placeholder
	}
	return dto.MenuCocktailDTO{
		Slug:             row.Slug,
		Name:             row.Name,
		GlassType:        row.GlassType,
		FlavorScale:      row.FlavorScale,
		InventionYear:    row.InventionYear,
		DescriptionShort: row.DescriptionShort,
		StoryLong:        row.StoryLong,
		TimeToMakeSec:    row.TimeToMakeSec,
		ABVPercent:       row.ABVPercent,
		PriceSuggested:   row.PriceSuggested,
		Allergens:        allergensFromJSON(row.AllergensJSON),
		ImageURL:         imageURL,
		VideoURL:         row.VideoURL,
	}
}

// allergensFromJSON decodes the view's json_agg column. A missing or
// malformed value reads as no allergens rather than an error.
func allergensFromJSON(raw datatypes.JSON) []string {
	out := []string{}
	if len(raw) == 0 {
		return out
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return []string{}
	}
	if out == nil {
		// a JSON null decodes to a nil slice
		return []string{}
	}
	return out
}
