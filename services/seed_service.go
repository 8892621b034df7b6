package services

import (
	"errors"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/adanilkinca/techcockbar/db"
	"github.com/adanilkinca/techcockbar/models"
	"github.com/adanilkinca/techcockbar/repositories"
)

type SeedReport struct {
	IngredientsCreated int
	CocktailsCreated   int
}

type SeedService struct {
	Repos *repositories.Repos
}

func NewSeedService(repos *repositories.Repos) *SeedService {
	return &SeedService{Repos: repos}
}

// seedData is the starter menu. Units and pricing settings come from the
// reference-data migration; this covers content rows only.
func seedData() ImportFile {
	return ImportFile{
		Ingredients: []ImportIngredient{
			{
				Name:       "Amaretto",
				Type:       "liqueur",
				ABVPercent: 28,
				ImageURL:   "https://res.cloudinary.com/dau9qbp3l/image/upload/v1754790212/amaretto_liqueur-master.webp",
			},
			{
				Name:       "Irish Cream Liqueur",
				Type:       "liqueur",
				ABVPercent: 17,
				Allergens:  []string{"milk"},
				ImageURL:   "https://res.cloudinary.com/dau9qbp3l/image/upload/v1754790215/irish_cream_liqueur-master.webp",
			},
			{
				Name:      "Whipped Cream",
				Type:      "dairy",
				Allergens: []string{"milk"},
				ImageURL:  "https://res.cloudinary.com/dau9qbp3l/image/upload/v1754790221/whipped-cream-master.webp",
			},
		},
		Cocktails: []ImportCocktail{
			{
				Slug:             "blow-job",
				Name:             "Blow Job",
				GlassType:        "Shot",
				DescriptionShort: "Layered amaretto and Irish cream shot topped with whipped cream.",
				TimeToMakeSec:    60,
				ImageURL:         "https://res.cloudinary.com/dau9qbp3l/image/upload/v1754790155/blow_job-master.jpg",
				Status:           "published",
				Tags:             []string{"shot", "sweet"},
				Lines: []ImportLine{
					{Ingredient: "Amaretto", Amount: 0.5, Unit: "oz"},
					{Ingredient: "Irish Cream Liqueur", Amount: 0.5, Unit: "oz"},
					{Ingredient: "Whipped Cream", Amount: 0, Unit: "oz", IsOptional: true},
				},
			},
		},
	}
}

// EnsureSeedData creates the starter rows that are missing and leaves
// existing ones untouched, so re-running seed never clobbers admin edits.
func (s *SeedService) EnsureSeedData() (SeedReport, error) {
	var report SeedReport
	data := seedData()

	for _, in := range data.Ingredients {
		created, err := s.ensureIngredient(in)
		if err != nil {
			return report, err
		}
		if created {
			report.IngredientsCreated++
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

	importer := ImportService{Repos: s.Repos}
	for _, in := range data.Cocktails {
		_, err := s.Repos.Cocktail.GetCocktailBySlug(in.Slug)
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return report, err
		}
		if _, err := importer.upsertCocktail(in, factors, settings); err != nil {
			return report, err
		}
		report.CocktailsCreated++
	}
	return report, nil
}

func (s *SeedService) ensureIngredient(in ImportIngredient) (bool, error) {
	_, err := s.Repos.Ingredient.GetIngredientByName(in.Name)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}

	ing := models.Ingredient{
		Name:        in.Name,
		Type:        optString(in.Type),
		ABVPercent:  decimal.NewFromFloat(in.ABVPercent),
		CostPerOz:   decimal.NewFromFloat(in.CostPerOz),
		IsHousemade: in.IsHousemade,
		Notes:       optString(in.Notes),
		ImageURL:    optString(in.ImageURL),
	}
	err = db.DB.Transaction(func(tx *gorm.DB) error {
		repo := s.Repos.Ingredient.WithTx(tx)
		if err := repo.CreateIngredient(&ing); err != nil {
			return err
		}
		if len(in.Allergens) > 0 {
			return repo.ReplaceAllergens(ing.ID, in.Allergens)
		}
		return nil
	})
	return err == nil, err
}
