package services

import (
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/adanilkinca/techcockbar/db"
	"github.com/adanilkinca/techcockbar/dto"
	"github.com/adanilkinca/techcockbar/models"
	"github.com/adanilkinca/techcockbar/repositories"
	"github.com/adanilkinca/techcockbar/utils"
)

var (
	ErrIngredientNotFound  = errors.New("ingredient not found")
	ErrIngredientNameTaken = errors.New("ingredient name already in use")
	ErrIngredientInUse     = errors.New("ingredient is used by cocktail recipes")
)

type IngredientService struct {
	Repos *repositories.Repos
}

func NewIngredientService(repos *repositories.Repos) *IngredientService {
	return &IngredientService{Repos: repos}
}

// ListIngredients returns bare rows; allergens are looked up per ingredient
// on the detail view only.
func (s *IngredientService) ListIngredients(params repositories.IngredientQueryParams) ([]dto.IngredientDTO, error) {
	ingredients, err := s.Repos.Ingredient.ListIngredients(params)
	if err != nil {
		return nil, err
	}
	out := make([]dto.IngredientDTO, 0, len(ingredients))
	for _, ing := range ingredients {
		out = append(out, toIngredientDTO(ing, nil))
	}
	return out, nil
}

func (s *IngredientService) GetIngredient(id uint) (dto.IngredientDTO, error) {
	ing, err := s.Repos.Ingredient.GetIngredientByID(id)
	if err != nil {
		return dto.IngredientDTO{}, ErrIngredientNotFound
	}
	allergens, err := s.Repos.Ingredient.GetAllergens(id)
	if err != nil {
		return dto.IngredientDTO{}, err
	}
	return toIngredientDTO(ing, allergens), nil
}

func (s *IngredientService) CreateIngredient(c *gin.Context, input dto.CreateIngredientInput) (dto.IngredientDTO, error) {
	_, err := s.Repos.Ingredient.GetIngredientByName(input.Name)
	if err == nil {
		return dto.IngredientDTO{}, ErrIngredientNameTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return dto.IngredientDTO{}, err
	}

	ing := models.Ingredient{
		Name:        input.Name,
		Type:        input.Type,
		IsHousemade: input.IsHousemade,
		Notes:       input.Notes,
		ImageURL:    input.ImageURL,
	}
	if input.ABVPercent != nil {
		ing.ABVPercent = *input.ABVPercent
	}
	if input.CostPerOz != nil {
		ing.CostPerOz = *input.CostPerOz
	}

	err = db.DB.Transaction(func(tx *gorm.DB) error {
		repo := s.Repos.Ingredient.WithTx(tx)
		if err := repo.CreateIngredient(&ing); err != nil {
			return err
		}
		if len(input.Allergens) > 0 {
			return repo.ReplaceAllergens(ing.ID, input.Allergens)
		}
		return nil
	})
	if err != nil {
		return dto.IngredientDTO{}, err
	}

	utils.LogAuditWithConsole(c, "create", "ingredient", fmt.Sprintf("id=%d", ing.ID), nil, ing, "", s.Repos.Audit)
	return toIngredientDTO(ing, input.Allergens), nil
}

func (s *IngredientService) UpdateIngredient(c *gin.Context, id uint, input dto.UpdateIngredientInput) (dto.IngredientDTO, error) {
	ing, err := s.Repos.Ingredient.GetIngredientByID(id)
	if err != nil {
		return dto.IngredientDTO{}, ErrIngredientNotFound
	}
	oldIng := ing

	if input.Name != nil && *input.Name != ing.Name {
		existing, err := s.Repos.Ingredient.GetIngredientByName(*input.Name)
		if err == nil && existing.ID != id {
			return dto.IngredientDTO{}, ErrIngredientNameTaken
		}
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.IngredientDTO{}, err
		}
		ing.Name = *input.Name
	}
	if input.Type != nil {
		ing.Type = input.Type
	}
	if input.ABVPercent != nil {
		ing.ABVPercent = *input.ABVPercent
	}
	if input.CostPerOz != nil {
		ing.CostPerOz = *input.CostPerOz
	}
	if input.IsHousemade != nil {
		ing.IsHousemade = *input.IsHousemade
	}
	if input.Notes != nil {
		ing.Notes = input.Notes
	}
	if input.ImageURL != nil {
		ing.ImageURL = input.ImageURL
	}

	err = db.DB.Transaction(func(tx *gorm.DB) error {
		repo := s.Repos.Ingredient.WithTx(tx)
		if err := repo.SaveIngredient(&ing); err != nil {
			return err
		}
		if input.Allergens != nil {
			return repo.ReplaceAllergens(id, input.Allergens)
		}
		return nil
	})
	if err != nil {
		return dto.IngredientDTO{}, err
	}

	allergens, err := s.Repos.Ingredient.GetAllergens(id)
	if err != nil {
		return dto.IngredientDTO{}, err
	}

	utils.LogAuditWithConsole(c, "update", "ingredient", fmt.Sprintf("id=%d", id), oldIng, ing, "", s.Repos.Audit)
	return toIngredientDTO(ing, allergens), nil
}

// DeleteIngredient refuses to delete anything still referenced by a recipe
// line, mirroring the database's RESTRICT rule with a friendlier error.
func (s *IngredientService) DeleteIngredient(c *gin.Context, id uint) error {
	ing, err := s.Repos.Ingredient.GetIngredientByID(id)
	if err != nil {
		return ErrIngredientNotFound
	}
	used, err := s.Repos.Ingredient.CountLinesUsing(id)
	if err != nil {
		return err
	}
	if used > 0 {
		return ErrIngredientInUse
	}
	if err := s.Repos.Ingredient.DeleteIngredient(id); err != nil {
		return err
	}

	utils.LogAuditWithConsole(c, "delete", "ingredient", fmt.Sprintf("id=%d", id), ing, nil, "", s.Repos.Audit)
	return nil
}

func toIngredientDTO(ing models.Ingredient, allergens []string) dto.IngredientDTO {
	return dto.IngredientDTO{
		ID:          ing.ID,
		Name:        ing.Name,
		Type:        ing.Type,
		ABVPercent:  ing.ABVPercent,
		CostPerOz:   ing.CostPerOz,
		IsHousemade: ing.IsHousemade,
		Notes:       ing.Notes,
		ImageURL:    ing.ImageURL,
		Allergens:   allergens,
	}
}
