package repositories

import (
	"gorm.io/gorm"

	"github.com/adanilkinca/techcockbar/models"
)

type UnitRepo interface {
	ListUnits() ([]models.Unit, error)
	WithTx(tx *gorm.DB) UnitRepo
}

type DBUnitRepo struct {
	db *gorm.DB
}

func NewUnitRepo(db *gorm.DB) *DBUnitRepo {
	return &DBUnitRepo{db: db}
}

func (r *DBUnitRepo) ListUnits() ([]models.Unit, error) {
	var units []models.Unit
	err := r.db.Order("name").Find(&units).Error
	return units, err
}

func (r *DBUnitRepo) WithTx(tx *gorm.DB) UnitRepo {
	if tx == nil {
		return r
	}
	return &DBUnitRepo{db: tx}
}
