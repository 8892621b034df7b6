package repositories

import (
	"gorm.io/gorm"

	"github.com/adanilkinca/techcockbar/models"
)

type IngredientQueryParams struct {
	Type   *string
	Q      string
	Limit  int
	Offset int
}

type IngredientRepo interface {
	ListIngredients(params IngredientQueryParams) ([]models.Ingredient, error)
	GetIngredientByID(id uint) (models.Ingredient, error)
	GetIngredientByName(name string) (models.Ingredient, error)
	CreateIngredient(ing *models.Ingredient) error
	SaveIngredient(ing *models.Ingredient) error
	DeleteIngredient(id uint) error
	CountLinesUsing(ingredientID uint) (int64, error)
	GetAllergens(ingredientID uint) ([]string, error)
	ReplaceAllergens(ingredientID uint, allergens []string) error
	WithTx(tx *gorm.DB) IngredientRepo
}

type DBIngredientRepo struct {
	db *gorm.DB
}

func NewIngredientRepo(db *gorm.DB) *DBIngredientRepo {
	return &DBIngredientRepo{db: db}
}

func (r *DBIngredientRepo) ListIngredients(params IngredientQueryParams) ([]models.Ingredient, error) {
	var ingredients []models.Ingredient
	query := r.db.Model(&models.Ingredient{}).Order("id")

	if params.Type != nil {
		query = query.Where("type = ?", *params.Type)
	}
	if params.Q != "" {
		query = query.Where("name ILIKE ?", "%"+params.Q+"%")
	}
	if params.Limit > 0 {
		query = query.Limit(params.Limit)
	}
	if params.Offset > 0 {
		query = query.Offset(params.Offset)
	}

	err := query.Find(&ingredients).Error
	return ingredients, err
}

func (r *DBIngredientRepo) GetIngredientByID(id uint) (models.Ingredient, error) {
	var ing models.Ingredient
	err := r.db.First(&ing, id).Error
	return ing, err
}

func (r *DBIngredientRepo) GetIngredientByName(name string) (models.Ingredient, error) {
	var ing models.Ingredient
	err := r.db.Where("name = ?", name).First(&ing).Error
	return ing, err
}

func (r *DBIngredientRepo) CreateIngredient(ing *models.Ingredient) error {
	return r.db.Create(ing).Error
}

func (r *DBIngredientRepo) SaveIngredient(ing *models.Ingredient) error {
	return r.db.Save(ing).Error
}

func (r *DBIngredientRepo) DeleteIngredient(id uint) error {
	return r.db.Delete(&models.Ingredient{}, id).Error
}

// CountLinesUsing reports how many recipes reference the ingredient, so a
// delete can fail with a useful message before hitting the FK constraint.
func (r *DBIngredientRepo) CountLinesUsing(ingredientID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.CocktailIngredient{}).
		Where("ingredient_id = ?", ingredientID).
		Count(&count).Error
	return count, err
}

func (r *DBIngredientRepo) GetAllergens(ingredientID uint) ([]string, error) {
	var allergens []string
	err := r.db.Table("ingredient_allergens").
		Select("allergen").
		Where("ingredient_id = ?", ingredientID).
		Order("allergen").
		Scan(&allergens).Error
	return allergens, err
}

func (r *DBIngredientRepo) ReplaceAllergens(ingredientID uint, allergens []string) error {
	if err := r.db.Exec(
		"DELETE FROM ingredient_allergens WHERE ingredient_id = ?", ingredientID,
	).Error; err != nil {
		return err
	}
	for _, a := range allergens {
		if err := r.db.Exec(
			"INSERT INTO ingredient_allergens (ingredient_id, allergen) VALUES (?, ?) ON CONFLICT DO NOTHING",
			ingredientID, a,
		).Error; err != nil {
			return err
		}
	}
	return nil
}

func (r *DBIngredientRepo) WithTx(tx *gorm.DB) IngredientRepo {
	if tx == nil {
		return r
	}
	return &DBIngredientRepo{db: tx}
}
