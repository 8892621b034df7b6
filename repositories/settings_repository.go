package repositories

import (
	"gorm.io/gorm"

	"github.com/adanilkinca/techcockbar/models"
)

type SettingsRepo interface {
	GetSettings() (models.PricingSettings, error)
	SaveSettings(settings *models.PricingSettings) error
	WithTx(tx *gorm.DB) SettingsRepo
}

type DBSettingsRepo struct {
	db *gorm.DB
}

func NewSettingsRepo(db *gorm.DB) *DBSettingsRepo {
	return &DBSettingsRepo{db: db}
}

func (r *DBSettingsRepo) GetSettings() (models.PricingSettings, error) {
	var s models.PricingSettings
	err := r.db.First(&s, "id = ?", models.PricingSettingsID).Error
	return s, err
}

func (r *DBSettingsRepo) SaveSettings(settings *models.PricingSettings) error {
	settings.ID = models.PricingSettingsID
	return r.db.Save(settings).Error
}

func (r *DBSettingsRepo) WithTx(tx *gorm.DB) SettingsRepo {
	if tx == nil {
		return r
	}
	return &DBSettingsRepo{db: tx}
}
