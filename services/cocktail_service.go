package services

import (
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/adanilkinca/techcockbar/db"
	"github.com/adanilkinca/techcockbar/dto"
	"github.com/adanilkinca/techcockbar/models"
	"github.com/adanilkinca/techcockbar/pkg/drinks"
	"github.com/adanilkinca/techcockbar/repositories"
	"github.com/adanilkinca/techcockbar/utils"
	"github.com/adanilkinca/techcockbar/websocket"
)

var (
	ErrCocktailNotFound  = errors.New("cocktail not found")
	ErrSlugTaken         = errors.New("slug already in use")
	ErrUnknownIngredient = errors.New("ingredient does not exist")
	ErrUnknownGlassType  = errors.New("unknown glass type")
)

type CocktailService struct {
	Repos *repositories.Repos
	Menu  *MenuService
	Hub   *websocket.Hub
}

func NewCocktailService(repos *repositories.Repos, menu *MenuService, hub *websocket.Hub) *CocktailService {
	return &CocktailService{Repos: repos, Menu: menu, Hub: hub}
}

func (s *CocktailService) ListCocktails(params repositories.CocktailQueryParams) ([]dto.CocktailAdminRow, error) {
	cocktails, err := s.Repos.Cocktail.ListCocktails(params)
	if err != nil {
		return nil, err
	}
	ids := make([]uint, 0, len(cocktails))
	for _, c := range cocktails {
		ids = append(ids, c.ID)
	}
	summaries, err := s.Repos.Summary.ListSummariesByIDs(ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[uint]models.CocktailSummary, len(summaries))
	for _, sm := range summaries {
		byID[sm.ID] = sm
	}

	rows := make([]dto.CocktailAdminRow, 0, len(cocktails))
	for _, c := range cocktails {
		row := dto.CocktailAdminRow{
			ID:          c.ID,
			Slug:        c.Slug,
			Name:        c.Name,
			GlassType:   c.GlassType,
			FlavorScale: c.FlavorScale,
			Status:      string(c.Status),
			UpdatedAt:   c.UpdatedAt.Format(timeLayout),
		}
		if sm, ok := byID[c.ID]; ok {
			row.ABVPercent = sm.ABVPercent
			row.PriceSuggested = sm.PriceSuggested
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func (s *CocktailService) GetCocktail(id uint) (dto.CocktailDetailDTO, error) {
	cocktail, err := s.Repos.Cocktail.GetCocktailByID(id)
	if err != nil {
		return dto.CocktailDetailDTO{}, ErrCocktailNotFound
	}
	return s.detailDTO(cocktail)
}

func (s *CocktailService) CreateCocktail(c *gin.Context, input dto.CreateCocktailInput) (dto.CocktailDetailDTO, error) {
	if input.GlassType != nil && !models.IsValidGlassType(*input.GlassType) {
		return dto.CocktailDetailDTO{}, fmt.Errorf("%w: %q", ErrUnknownGlassType, *input.GlassType)
	}
	factors, err := s.unitFactors()
	if err != nil {
		return dto.CocktailDetailDTO{}, err
	}
	settings, err := s.Repos.Settings.GetSettings()
	if err != nil {
		return dto.CocktailDetailDTO{}, err
	}

	slug, err := s.resolveSlug(input.Slug, input.Name, 0)
	if err != nil {
		return dto.CocktailDetailDTO{}, err
	}

	cocktail := models.Cocktail{
		Slug:             slug,
		Name:             input.Name,
		GlassType:        input.GlassType,
		InventionYear:    input.InventionYear,
		DescriptionShort: input.DescriptionShort,
		StoryLong:        input.StoryLong,
		ImageURL:         input.ImageURL,
		VideoURL:         input.VideoURL,
		Status:           models.CocktailStatusDraft,
	}
	if cocktail.GlassType == nil {
		glass := models.DefaultGlassType
		cocktail.GlassType = &glass
	}
	if input.FlavorScale != nil {
		cocktail.FlavorScale = *input.FlavorScale
	}
	if input.TimeToMakeSec != nil {
		cocktail.TimeToMakeSec = *input.TimeToMakeSec
	}
	if input.Status != nil {
		cocktail.Status = models.CocktailStatus(*input.Status)
	}

	err = db.DB.Transaction(func(tx *gorm.DB) error {
		cocktailRepo := s.Repos.Cocktail.WithTx(tx)

		lines, err := s.buildLines(s.Repos.Ingredient.WithTx(tx), input.Lines, factors)
		if err != nil {
			return err
		}

		totals := drinks.ComputeTotals(drinkLines(lines), factors)
		price := drinks.ComputePrice(totals.Cost, cocktail.TimeToMakeSec, drinksSettings(settings))
		cocktail.PriceAuto = decimal.NullDecimal{Decimal: price.Rounded, Valid: true}

		if err := cocktailRepo.CreateCocktail(&cocktail); err != nil {
			return err
		}
		tags, err := resolveTags(s.Repos.Tag.WithTx(tx), input.Tags)
		if err != nil {
			return err
		}
		if len(tags) > 0 {
			if err := cocktailRepo.ReplaceTags(&cocktail, tags); err != nil {
				return err
			}
		}
		if len(lines) > 0 {
			if err := cocktailRepo.ReplaceLines(cocktail.ID, lines); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return dto.CocktailDetailDTO{}, err
	}

	utils.LogAuditWithConsole(c, "create", "cocktail", fmt.Sprintf("id=%d", cocktail.ID), nil, cocktail, "", s.Repos.Audit)
	if cocktail.Status == models.CocktailStatusPublished {
		s.broadcastMenuEvent("published", cocktail.Slug)
	}
	return s.GetCocktail(cocktail.ID)
}

func (s *CocktailService) UpdateCocktail(c *gin.Context, id uint, input dto.UpdateCocktailInput) (dto.CocktailDetailDTO, error) {
	cocktail, err := s.Repos.Cocktail.GetCocktailByID(id)
	if err != nil {
		return dto.CocktailDetailDTO{}, ErrCocktailNotFound
	}
	oldCocktail := cocktail

	if input.Slug != nil && *input.Slug != "" {
		slug := utils.Slugify(*input.Slug)
		if slug != cocktail.Slug {
			exists, err := s.Repos.Cocktail.SlugExists(slug, id)
			if err != nil {
				return dto.CocktailDetailDTO{}, err
			}
			if exists {
				return dto.CocktailDetailDTO{}, ErrSlugTaken
			}
			cocktail.Slug = slug
		}
	}
	if input.Name != nil {
		cocktail.Name = *input.Name
	}
	if input.GlassType != nil {
		if !models.IsValidGlassType(*input.GlassType) {
			return dto.CocktailDetailDTO{}, fmt.Errorf("%w: %q", ErrUnknownGlassType, *input.GlassType)
		}
		cocktail.GlassType = input.GlassType
	}
	if input.FlavorScale != nil {
		cocktail.FlavorScale = *input.FlavorScale
	}
	if input.InventionYear != nil {
		cocktail.InventionYear = input.InventionYear
	}
	if input.DescriptionShort != nil {
		cocktail.DescriptionShort = input.DescriptionShort
	}
	if input.StoryLong != nil {
		cocktail.StoryLong = input.StoryLong
	}
	if input.TimeToMakeSec != nil {
		cocktail.TimeToMakeSec = *input.TimeToMakeSec
	}
	if input.ImageURL != nil {
		cocktail.ImageURL = input.ImageURL
	}
	if input.VideoURL != nil {
		cocktail.VideoURL = input.VideoURL
	}

	factors, err := s.unitFactors()
	if err != nil {
		return dto.CocktailDetailDTO{}, err
	}
	settings, err := s.Repos.Settings.GetSettings()
	if err != nil {
		return dto.CocktailDetailDTO{}, err
	}
	totals := drinks.ComputeTotals(drinkLines(cocktail.Lines), factors)
	price := drinks.ComputePrice(totals.Cost, cocktail.TimeToMakeSec, drinksSettings(settings))
	cocktail.PriceAuto = decimal.NullDecimal{Decimal: price.Rounded, Valid: true}

	err = db.DB.Transaction(func(tx *gorm.DB) error {
		cocktailRepo := s.Repos.Cocktail.WithTx(tx)
		if err := cocktailRepo.SaveCocktail(&cocktail); err != nil {
			return err
		}
		if input.Tags != nil {
			tags, err := resolveTags(s.Repos.Tag.WithTx(tx), input.Tags)
			if err != nil {
				return err
			}
			if err := cocktailRepo.ReplaceTags(&cocktail, tags); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return dto.CocktailDetailDTO{}, err
	}

	utils.LogAuditWithConsole(c, "update", "cocktail", fmt.Sprintf("id=%d", id), oldCocktail, cocktail, "", s.Repos.Audit)
	if cocktail.Status == models.CocktailStatusPublished {
		s.broadcastMenuEvent("updated", cocktail.Slug)
	}
	return s.GetCocktail(id)
}

// UpdateStatus moves a cocktail between draft, published and archived and
// tells the menu feed when the public menu changed.
func (s *CocktailService) UpdateStatus(c *gin.Context, id uint, status models.CocktailStatus) (dto.CocktailDetailDTO, error) {
	cocktail, err := s.Repos.Cocktail.GetCocktailByID(id)
	if err != nil {
		return dto.CocktailDetailDTO{}, ErrCocktailNotFound
	}
	if cocktail.Status == status {
		return s.detailDTO(cocktail)
	}
	oldStatus := cocktail.Status
	cocktail.Status = status
	if err := s.Repos.Cocktail.SaveCocktail(&cocktail); err != nil {
		return dto.CocktailDetailDTO{}, err
	}

	utils.LogAuditWithConsole(c, "status", "cocktail", fmt.Sprintf("id=%d", id),
		map[string]string{"status": string(oldStatus)}, map[string]string{"status": string(status)}, "", s.Repos.Audit)

	switch {
	case status == models.CocktailStatusPublished:
		s.broadcastMenuEvent("published", cocktail.Slug)
	case oldStatus == models.CocktailStatusPublished:
		s.broadcastMenuEvent("archived", cocktail.Slug)
	}
	return s.detailDTO(cocktail)
}

// ReplaceIngredients swaps the whole recipe in one transaction. Every
// line's amount_oz is recomputed from the entered amount and unit, and the
// stored auto price is refreshed.
func (s *CocktailService) ReplaceIngredients(c *gin.Context, id uint, input dto.ReplaceLinesInput) (dto.CocktailDetailDTO, error) {
	cocktail, err := s.Repos.Cocktail.GetCocktailByID(id)
	if err != nil {
		return dto.CocktailDetailDTO{}, ErrCocktailNotFound
	}
	oldLines := cocktail.Lines

	factors, err := s.unitFactors()
	if err != nil {
		return dto.CocktailDetailDTO{}, err
	}
	settings, err := s.Repos.Settings.GetSettings()
	if err != nil {
		return dto.CocktailDetailDTO{}, err
	}

	err = db.DB.Transaction(func(tx *gorm.DB) error {
		cocktailRepo := s.Repos.Cocktail.WithTx(tx)

		lines, err := s.buildLines(s.Repos.Ingredient.WithTx(tx), input.Lines, factors)
		if err != nil {
			return err
		}
		if err := cocktailRepo.ReplaceLines(id, lines); err != nil {
			return err
		}

		totals := drinks.ComputeTotals(drinkLines(lines), factors)
		price := drinks.ComputePrice(totals.Cost, cocktail.TimeToMakeSec, drinksSettings(settings))
		cocktail.PriceAuto = decimal.NullDecimal{Decimal: price.Rounded, Valid: true}
		cocktail.Lines = nil
		return cocktailRepo.SaveCocktail(&cocktail)
	})
	if err != nil {
		return dto.CocktailDetailDTO{}, err
	}

	utils.LogAuditWithConsole(c, "update", "cocktail_ingredients", fmt.Sprintf("cocktail_id=%d", id), oldLines, input.Lines, "", s.Repos.Audit)
	if cocktail.Status == models.CocktailStatusPublished {
		s.broadcastMenuEvent("updated", cocktail.Slug)
	}
	return s.GetCocktail(id)
}

func (s *CocktailService) DeleteCocktail(c *gin.Context, id uint) error {
	cocktail, err := s.Repos.Cocktail.GetCocktailByID(id)
	if err != nil {
		return ErrCocktailNotFound
	}
	if err := s.Repos.Cocktail.DeleteCocktail(id); err != nil {
		return err
	}

	utils.LogAuditWithConsole(c, "delete", "cocktail", fmt.Sprintf("id=%d", id), cocktail, nil, "", s.Repos.Audit)
	if cocktail.Status == models.CocktailStatusPublished {
		s.broadcastMenuEvent("deleted", cocktail.Slug)
	}
	return nil
}

// BackfillOunces recomputes amount_oz for every ingredient line from its
// original amount and unit, writing back only the lines whose stored value
// drifted. Returns the number of lines updated.
func (s *CocktailService) BackfillOunces() (int, error) {
	factors, err := s.unitFactors()
	if err != nil {
		return 0, err
	}
	lines, err := s.Repos.Cocktail.ListAllLines()
	if err != nil {
		return 0, err
	}

	updated := 0
	for i := range lines {
		want := drinks.ToOunces(lines[i].AmountInput, lines[i].UnitInput, factors)
		if lines[i].AmountOz.Equal(want) {
			continue
		}
		lines[i].AmountOz = want
		if err := s.Repos.Cocktail.SaveLine(&lines[i]); err != nil {
			return updated, fmt.Errorf("line id=%d: %w", lines[i].ID, err)
		}
		updated++
	}
	return updated, nil
}

// resolveSlug slugifies an explicit slug and rejects collisions, or derives
// a unique one from the name by suffixing -2, -3 and so on.
func (s *CocktailService) resolveSlug(explicit *string, name string, excludeID uint) (string, error) {
	if explicit != nil && *explicit != "" {
		slug := utils.Slugify(*explicit)
		exists, err := s.Repos.Cocktail.SlugExists(slug, excludeID)
		if err != nil {
			return "", err
		}
		if exists {
			return "", ErrSlugTaken
		}
		return slug, nil
	}

	base := utils.Slugify(name)
	slug := base
	for i := 2; ; i++ {
		exists, err := s.Repos.Cocktail.SlugExists(slug, excludeID)
		if err != nil {
			return "", err
		}
		if !exists {
			return slug, nil
		}
		slug = fmt.Sprintf("%s-%d", base, i)
	}
}

func (s *CocktailService) buildLines(ingredients repositories.IngredientRepo, inputs []dto.LineInput, factors map[string]decimal.Decimal) ([]models.CocktailIngredient, error) {
	lines := make([]models.CocktailIngredient, 0, len(inputs))
	for i, in := range inputs {
		ing, err := ingredients.GetIngredientByID(in.IngredientID)
		if err != nil {
			return nil, fmt.Errorf("%w: id=%d", ErrUnknownIngredient, in.IngredientID)
		}
		lines = append(lines, models.CocktailIngredient{
			IngredientID: ing.ID,
			Seq:          int16(i + 1),
			AmountInput:  in.Amount,
			UnitInput:    in.Unit,
			AmountOz:     drinks.ToOunces(in.Amount, in.Unit, factors),
			PrepNote:     in.PrepNote,
			IsOptional:   in.IsOptional,
			Ingredient:   &ing,
		})
	}
	return lines, nil
}

func (s *CocktailService) unitFactors() (map[string]decimal.Decimal, error) {
	return factorsFromRepo(s.Repos.Unit)
}

func (s *CocktailService) detailDTO(cocktail models.Cocktail) (dto.CocktailDetailDTO, error) {
	factors, err := s.unitFactors()
	if err != nil {
		return dto.CocktailDetailDTO{}, err
	}
	settings, err := s.Repos.Settings.GetSettings()
	if err != nil {
		return dto.CocktailDetailDTO{}, err
	}

	totals := drinks.ComputeTotals(drinkLines(cocktail.Lines), factors)
	price := drinks.ComputePrice(totals.Cost, cocktail.TimeToMakeSec, drinksSettings(settings))

	return dto.CocktailDetailDTO{
		ID:               cocktail.ID,
		Slug:             cocktail.Slug,
		Name:             cocktail.Name,
		GlassType:        cocktail.GlassType,
		FlavorScale:      cocktail.FlavorScale,
		InventionYear:    cocktail.InventionYear,
		DescriptionShort: cocktail.DescriptionShort,
		StoryLong:        cocktail.StoryLong,
		TimeToMakeSec:    cocktail.TimeToMakeSec,
		PriceAuto:        cocktail.PriceAuto,
		ImageURL:         cocktail.ImageURL,
		VideoURL:         cocktail.VideoURL,
		Status:           string(cocktail.Status),
		CreatedAt:        cocktail.CreatedAt.Format(timeLayout),
		UpdatedAt:        cocktail.UpdatedAt.Format(timeLayout),
		Tags:             tagNames(cocktail.Tags),
		Lines:            lineDTOs(cocktail.Lines, factors),
		Totals: dto.CocktailTotalsDTO{
			VolumeOz:       totals.VolumeOz,
			ABVPercent:     totals.ABVPercent,
			Cost:           totals.Cost,
			PriceRaw:       decimal.NullDecimal{Decimal: price.Raw, Valid: true},
			PriceSuggested: decimal.NullDecimal{Decimal: price.Rounded, Valid: true},
		},
	}, nil
}

func (s *CocktailService) broadcastMenuEvent(event, slug string) {
	if s.Hub == nil {
		return
	}
	evt := dto.MenuEvent{Event: event, Slug: slug}
	if event == "published" || event == "updated" {
		if item, err := s.Menu.GetMenuItem(slug); err == nil {
			evt.Cocktail = &item
		}
	}
	s.Hub.BroadcastJSON(evt)
}

func drinkLines(lines []models.CocktailIngredient) []drinks.Line {
	out := make([]drinks.Line, 0, len(lines))
	for _, l := range lines {
		dl := drinks.Line{
			AmountOz:    l.AmountOz,
			AmountInput: l.AmountInput,
			UnitInput:   l.UnitInput,
		}
		if l.Ingredient != nil {
			dl.ABVPercent = l.Ingredient.ABVPercent
			dl.CostPerOz = l.Ingredient.CostPerOz
		}
		out = append(out, dl)
	}
	return out
}

func lineDTOs(lines []models.CocktailIngredient, factors map[string]decimal.Decimal) []dto.LineDTO {
	out := make([]dto.LineDTO, 0, len(lines))
	for _, l := range lines {
		d := dto.LineDTO{
			Seq:          l.Seq,
			IngredientID: l.IngredientID,
			Amount:       l.AmountInput,
			Unit:         l.UnitInput,
			AmountOz:     drinks.LineOunces(l.AmountOz, l.AmountInput, l.UnitInput, factors),
			PrepNote:     l.PrepNote,
			IsOptional:   l.IsOptional,
		}
		if l.Ingredient != nil {
			d.IngredientName = l.Ingredient.Name
			d.ABVPercent = decimal.NullDecimal{Decimal: l.Ingredient.ABVPercent, Valid: true}
		}
		out = append(out, d)
	}
	return out
}

func tagNames(tags []models.Tag) []string {
	names := make([]string, 0, len(tags))
	for _, t := range tags {
		names = append(names, t.Name)
	}
	return names
}
