package repositories

import (
	"gorm.io/gorm"

	"github.com/adanilkinca/techcockbar/models"
)

type TagRepo interface {
	ListTags() ([]models.Tag, error)
	GetTagByID(id uint) (models.Tag, error)
	GetOrCreateTag(name string) (models.Tag, error)
	CreateTag(tag *models.Tag) error
	SaveTag(tag *models.Tag) error
	DeleteTag(id uint) error
	WithTx(tx *gorm.DB) TagRepo
}

type DBTagRepo struct {
	db *gorm.DB
}

func NewTagRepo(db *gorm.DB) *DBTagRepo {
	return &DBTagRepo{db: db}
}

func (r *DBTagRepo) ListTags() ([]models.Tag, error) {
	var tags []models.Tag
	err := r.db.Order("name").Find(&tags).Error
	return tags, err
}

func (r *DBTagRepo) GetTagByID(id uint) (models.Tag, error) {
	var tag models.Tag
	err := r.db.First(&tag, id).Error
	return tag, err
}

func (r *DBTagRepo) GetOrCreateTag(name string) (models.Tag, error) {
	var tag models.Tag
	err := r.db.Where("name = ?", name).First(&tag).Error
	if err == nil {
		return tag, nil
	}
	if err != gorm.ErrRecordNotFound {
		return tag, err
	}
	tag = models.Tag{Name: name}
	err = r.db.Create(&tag).Error
	return tag, err
}

func (r *DBTagRepo) CreateTag(tag *models.Tag) error {
	return r.db.Create(tag).Error
}

func (r *DBTagRepo) SaveTag(tag *models.Tag) error {
	return r.db.Save(tag).Error
}

func (r *DBTagRepo) DeleteTag(id uint) error {
	return r.db.Delete(&models.Tag{}, id).Error
}

func (r *DBTagRepo) WithTx(tx *gorm.DB) TagRepo {
	if tx == nil {
		return r
	}
	return &DBTagRepo{db: tx}
}
