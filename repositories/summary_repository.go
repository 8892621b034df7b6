package repositories

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/adanilkinca/techcockbar/models"
)

type PublicQueryParams struct {
	Glass  string
	Tag    string
	Q      string
	MaxABV *decimal.Decimal
	Limit  int
	Offset int
}

type SummaryRepo interface {
	ListPublished(params PublicQueryParams) ([]models.PublishedCocktail, error)
	GetPublishedBySlug(slug string) (models.PublishedCocktail, error)
	ListSummariesByIDs(ids []uint) ([]models.CocktailSummary, error)
	WithTx(tx *gorm.DB) SummaryRepo
}

type DBSummaryRepo struct {
	db *gorm.DB
}

func NewSummaryRepo(db *gorm.DB) *DBSummaryRepo {
	return &DBSummaryRepo{db: db}
}

func (r *DBSummaryRepo) publishedQuery() *gorm.DB {
	return r.db.Table("cocktail_summary_v v").
		Select("v.*, c.image_url, c.video_url").
		Joins("JOIN cocktails c ON c.id = v.id").
		Where("c.status = ?", models.CocktailStatusPublished)
}

func (r *DBSummaryRepo) ListPublished(params PublicQueryParams) ([]models.PublishedCocktail, error) {
	var rows []models.PublishedCocktail
	query := r.publishedQuery().Order("v.name")

	if params.Glass != "" {
		query = query.Where("v.glass_type = ?", params.Glass)
	}
	if params.Tag != "" {
		query = query.Where(
			"EXISTS (SELECT 1 FROM cocktail_tags ct JOIN tags t ON t.id = ct.tag_id WHERE ct.cocktail_id = v.id AND t.name = ?)",
			params.Tag,
		)
	}
	if params.Q != "" {
		like := "%" + params.Q + "%"
		query = query.Where("v.name ILIKE ? OR v.slug ILIKE ?", like, like)
	}
	if params.MaxABV != nil {
		query = query.Where("v.abv_percent <= ?", *params.MaxABV)
	}
	if params.Limit > 0 {
		query = query.Limit(params.Limit)
	}
	if params.Offset > 0 {
		query = query.Offset(params.Offset)
	}

	err := query.Scan(&rows).Error
	return rows, err
}

func (r *DBSummaryRepo) GetPublishedBySlug(slug string) (models.PublishedCocktail, error) {
	var row models.PublishedCocktail
	err := r.publishedQuery().Where("v.slug = ?", slug).Take(&row).Error
	return row, err
}

func (r *DBSummaryRepo) ListSummariesByIDs(ids []uint) ([]models.CocktailSummary, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var summaries []models.CocktailSummary
	err := r.db.Where("id IN ?", ids).Find(&summaries).Error
	return summaries, err
}

func (r *DBSummaryRepo) WithTx(tx *gorm.DB) SummaryRepo {
	if tx == nil {
		return r
	}
	return &DBSummaryRepo{db: tx}
}
