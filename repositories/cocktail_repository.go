package repositories

import (
	"gorm.io/gorm"

	"github.com/adanilkinca/techcockbar/models"
)

type CocktailQueryParams struct {
	Status *models.CocktailStatus
	Q      string
	Limit  int
	Offset int
}

type CocktailRepo interface {
	ListCocktails(params CocktailQueryParams) ([]models.Cocktail, error)
	GetCocktailByID(id uint) (models.Cocktail, error)
	GetCocktailBySlug(slug string) (models.Cocktail, error)
	SlugExists(slug string, excludeID uint) (bool, error)
	CreateCocktail(cocktail *models.Cocktail) error
	SaveCocktail(cocktail *models.Cocktail) error
	DeleteCocktail(id uint) error
	ListAllLines() ([]models.CocktailIngredient, error)
	ReplaceLines(cocktailID uint, lines []models.CocktailIngredient) error
	SaveLine(line *models.CocktailIngredient) error
	ReplaceTags(cocktail *models.Cocktail, tags []models.Tag) error
	WithTx(tx *gorm.DB) CocktailRepo
}

type DBCocktailRepo struct {
	db *gorm.DB
}

func NewCocktailRepo(db *gorm.DB) *DBCocktailRepo {
	return &DBCocktailRepo{db: db}
}

func (r *DBCocktailRepo) ListCocktails(params CocktailQueryParams) ([]models.Cocktail, error) {
	var cocktails []models.Cocktail
	query := r.db.Model(&models.Cocktail{}).Order("name")

	if params.Status != nil {
		query = query.Where("status = ?", *params.Status)
	}
	if params.Q != "" {
		like := "%" + params.Q + "%"
		query = query.Where("name ILIKE ? OR slug ILIKE ?", like, like)
	}
	if params.Limit > 0 {
		query = query.Limit(params.Limit)
	}
	if params.Offset > 0 {
		query = query.Offset(params.Offset)
	}

	err := query.Find(&cocktails).Error
	return cocktails, err
}

func (r *DBCocktailRepo) GetCocktailByID(id uint) (models.Cocktail, error) {
	var c models.Cocktail
	err := r.db.
		Preload("Tags").
		Preload("Lines", func(db *gorm.DB) *gorm.DB { return db.Order("seq") }).
		Preload("Lines.Ingredient").
		First(&c, id).Error
	return c, err
}

func (r *DBCocktailRepo) GetCocktailBySlug(slug string) (models.Cocktail, error) {
	var c models.Cocktail
	err := r.db.
		Preload("Tags").
		Preload("Lines", func(db *gorm.DB) *gorm.DB { return db.Order("seq") }).
		Preload("Lines.Ingredient").
		Where("slug = ?", slug).
		First(&c).Error
	return c, err
}

func (r *DBCocktailRepo) SlugExists(slug string, excludeID uint) (bool, error) {
	var count int64
	query := r.db.Model(&models.Cocktail{}).Where("slug = ?", slug)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}
	err := query.Count(&count).Error
	return count > 0, err
}

func (r *DBCocktailRepo) CreateCocktail(cocktail *models.Cocktail) error {
	return r.db.Create(cocktail).Error
}

func (r *DBCocktailRepo) SaveCocktail(cocktail *models.Cocktail) error {
	return r.db.Omit("Tags", "Lines").Save(cocktail).Error
}

func (r *DBCocktailRepo) DeleteCocktail(id uint) error {
	return r.db.Select("Lines").Delete(&models.Cocktail{ID: id}).Error
}

func (r *DBCocktailRepo) ListAllLines() ([]models.CocktailIngredient, error) {
	var lines []models.CocktailIngredient
	err := r.db.Order("cocktail_id, seq").Find(&lines).Error
	return lines, err
}

// ReplaceLines swaps the full ingredient list of a cocktail. Call inside a
// transaction so a failed insert cannot leave the recipe empty.
func (r *DBCocktailRepo) ReplaceLines(cocktailID uint, lines []models.CocktailIngredient) error {
	if err := r.db.Where("cocktail_id = ?", cocktailID).
		Delete(&models.CocktailIngredient{}).Error; err != nil {
		return err
	}
	if len(lines) == 0 {
		return nil
	}
	for i := range lines {
		lines[i].ID = 0
		lines[i].CocktailID = cocktailID
	}
	return r.db.Create(&lines).Error
}

func (r *DBCocktailRepo) SaveLine(line *models.CocktailIngredient) error {
	return r.db.Save(line).Error
}

func (r *DBCocktailRepo) ReplaceTags(cocktail *models.Cocktail, tags []models.Tag) error {
	return r.db.Model(cocktail).Association("Tags").Replace(tags)
}

func (r *DBCocktailRepo) WithTx(tx *gorm.DB) CocktailRepo {
	if tx == nil {
		return r
	}
	return &DBCocktailRepo{db: tx}
}
