package services

import (
	"errors"
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v2"
	"gorm.io/gorm"

	"github.com/adanilkinca/techcockbar/db"
	"github.com/adanilkinca/techcockbar/models"
	"github.com/adanilkinca/techcockbar/pkg/drinks"
	"github.com/adanilkinca/techcockbar/repositories"
	"github.com/adanilkinca/techcockbar/utils"
)

// YAML shapes for `cli import <file.yaml>`. Recipe lines reference
// ingredients by name so one file can ship cocktails together with the
// ingredients they need.
type ImportFile struct {
	Ingredients []ImportIngredient `yaml:"ingredients"`
	Cocktails   []ImportCocktail   `yaml:"cocktails"`
}

type ImportIngredient struct {
	Name        string   `yaml:"name"`
	Type        string   `yaml:"type"`
	ABVPercent  float64  `yaml:"abv_percent"`
	CostPerOz   float64  `yaml:"cost_per_oz"`
	IsHousemade bool     `yaml:"is_housemade"`
	Notes       string   `yaml:"notes"`
	ImageURL    string   `yaml:"image_url"`
	Allergens   []string `yaml:"allergens"`
}

type ImportLine struct {
	Ingredient string  `yaml:"ingredient"`
	Amount     float64 `yaml:"amount"`
	Unit       string  `yaml:"unit"`
	PrepNote   string  `yaml:"prep_note"`
	IsOptional bool    `yaml:"is_optional"`
}

type ImportCocktail struct {
	Slug             string       `yaml:"slug"`
	Name             string       `yaml:"name"`
	GlassType        string       `yaml:"glass_type"`
	FlavorScale      int16        `yaml:"flavor_scale"`
	InventionYear    *int16       `yaml:"invention_year"`
	DescriptionShort string       `yaml:"description_short"`
	StoryLong        string       `yaml:"story_long"`
	TimeToMakeSec    int          `yaml:"time_to_make_sec"`
	ImageURL         string       `yaml:"image_url"`
	VideoURL         string       `yaml:"video_url"`
	Status           string       `yaml:"status"`
	Tags             []string     `yaml:"tags"`
	Lines            []ImportLine `yaml:"lines"`
}

type ImportReport struct {
	IngredientsCreated int
	IngredientsUpdated int
	CocktailsCreated   int
	CocktailsUpdated   int
}

type ImportService struct {
	Repos *repositories.Repos
}

func NewImportService(repos *repositories.Repos) *ImportService {
	return &ImportService{Repos: repos}
}

func (s *ImportService) ImportPath(path string) (ImportReport, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return ImportReport{}, err
	}
	var file ImportFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return ImportReport{}, fmt.Errorf("parse %s: %w", path, err)
	}
	return s.Import(file)
}

// Import upserts ingredients by name first, then cocktails by slug, so a
// cocktail can use ingredients declared in the same file.
func (s *ImportService) Import(file ImportFile) (ImportReport, error) {
	var report ImportReport

	for _, in := range file.Ingredients {
		created, err := s.upsertIngredient(in)
		if err != nil {
			return report, fmt.Errorf("ingredient %q: %w", in.Name, err)
		}
		if created {
			report.IngredientsCreated++
		} else {
			report.IngredientsUpdated++
		}
	}

	factors, err := factorsFromRepo(s.Repos.Unit)
	if err != nil {
		return report, err
	}
	settings, err := s.Repos.Settings.GetSettings()
	if err != nil {
		return report, err
	}

	for _, in := range file.Cocktails {
		created, err := s.upsertCocktail(in, factors, settings)
		if err != nil {
			return report, fmt.Errorf("cocktail %q: %w", in.Name, err)
		}
		if created {
			report.CocktailsCreated++
		} else {
			report.CocktailsUpdated++
		}
	}
	return report, nil
}

func (s *ImportService) upsertIngredient(in ImportIngredient) (bool, error) {
	ing, err := s.Repos.Ingredient.GetIngredientByName(in.Name)
	created := false
	if errors.Is(err, gorm.ErrRecordNotFound) {
		ing = models.Ingredient{Name: in.Name}
		created = true
	} else if err != nil {
		return false, err
	}

	ing.Type = optString(in.Type)
	ing.ABVPercent = decimal.NewFromFloat(in.ABVPercent)
	ing.CostPerOz = decimal.NewFromFloat(in.CostPerOz)
	ing.IsHousemade = in.IsHousemade
	ing.Notes = optString(in.Notes)
	ing.ImageURL = optString(in.ImageURL)

	err = db.DB.Transaction(func(tx *gorm.DB) error {
		repo := s.Repos.Ingredient.WithTx(tx)
		if created {
			if err := repo.CreateIngredient(&ing); err != nil {
				return err
			}
		} else if err := repo.SaveIngredient(&ing); err != nil {
			return err
		}
		if in.Allergens != nil {
			return repo.ReplaceAllergens(ing.ID, in.Allergens)
		}
		return nil
	})
	return created, err
}

func (s *ImportService) upsertCocktail(in ImportCocktail, factors map[string]decimal.Decimal, settings models.PricingSettings) (bool, error) {
	status := models.CocktailStatusDraft
	if in.Status != "" {
		switch models.CocktailStatus(in.Status) {
		case models.CocktailStatusDraft, models.CocktailStatusPublished, models.CocktailStatusArchived:
			status = models.CocktailStatus(in.Status)
		default:
			return false, fmt.Errorf("invalid status %q", in.Status)
		}
	}

	slug := in.Slug
	if slug == "" {
		slug = utils.Slugify(in.Name)
	}

	cocktail, err := s.Repos.Cocktail.GetCocktailBySlug(slug)
	created := false
	if errors.Is(err, gorm.ErrRecordNotFound) {
		cocktail = models.Cocktail{Slug: slug}
		created = true
	} else if err != nil {
		return false, err
	}

	cocktail.Name = in.Name
	cocktail.GlassType = optString(in.GlassType)
	if cocktail.GlassType == nil {
		glass := models.DefaultGlassType
		cocktail.GlassType = &glass
	}
	cocktail.FlavorScale = in.FlavorScale
	cocktail.InventionYear = in.InventionYear
	cocktail.DescriptionShort = optString(in.DescriptionShort)
	cocktail.StoryLong = optString(in.StoryLong)
	cocktail.TimeToMakeSec = in.TimeToMakeSec
	cocktail.ImageURL = optString(in.ImageURL)
	cocktail.VideoURL = optString(in.VideoURL)
	cocktail.Status = status

	err = db.DB.Transaction(func(tx *gorm.DB) error {
		cocktailRepo := s.Repos.Cocktail.WithTx(tx)

		lines := cocktail.Lines
		if in.Lines != nil {
			var err error
			lines, err = importLines(s.Repos.Ingredient.WithTx(tx), in.Lines, factors)
			if err != nil {
				return err
			}
		}

		totals := drinks.ComputeTotals(drinkLines(lines), factors)
		price := drinks.ComputePrice(totals.Cost, cocktail.TimeToMakeSec, drinksSettings(settings))
		cocktail.PriceAuto = decimal.NullDecimal{Decimal: price.Rounded, Valid: true}
		cocktail.Lines = nil

		if created {
			if err := cocktailRepo.CreateCocktail(&cocktail); err != nil {
				return err
			}
		} else if err := cocktailRepo.SaveCocktail(&cocktail); err != nil {
			return err
		}

		if in.Tags != nil {
			tags, err := resolveTags(s.Repos.Tag.WithTx(tx), in.Tags)
			if err != nil {
				return err
			}
			if err := cocktailRepo.ReplaceTags(&cocktail, tags); err != nil {
				return err
			}
		}
		if in.Lines != nil {
			return cocktailRepo.ReplaceLines(cocktail.ID, lines)
		}
		return nil
	})
	return created, err
}

func importLines(ingredients repositories.IngredientRepo, inputs []ImportLine, factors map[string]decimal.Decimal) ([]models.CocktailIngredient, error) {
	lines := make([]models.CocktailIngredient, 0, len(inputs))
	for i, in := range inputs {
		ing, err := ingredients.GetIngredientByName(in.Ingredient)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrUnknownIngredient, in.Ingredient)
		}
		amount := decimal.NewFromFloat(in.Amount)
		lines = append(lines, models.CocktailIngredient{
			IngredientID: ing.ID,
			Seq:          int16(i + 1),
			AmountInput:  amount,
			UnitInput:    in.Unit,
			AmountOz:     drinks.ToOunces(amount, in.Unit, factors),
			PrepNote:     optString(in.PrepNote),
			IsOptional:   in.IsOptional,
			Ingredient:   &ing,
		})
	}
	return lines, nil
}

func factorsFromRepo(units repositories.UnitRepo) (map[string]decimal.Decimal, error) {
	all, err := units.ListUnits()
	if err != nil {
		return nil, err
	}
	return factorsFromUnits(all), nil
}

func optString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
