package repositories

import (
	"gorm.io/gorm"

	"github.com/adanilkinca/techcockbar/models"
)

type UserQueryParams struct {
	Q      string
	Limit  int
	Offset int
}

type UserRepo interface {
	ListUsers(params UserQueryParams) ([]models.User, error)
	GetUserByID(id uint) (models.User, error)
	GetUserByUsername(username string) (models.User, error)
	CreateUser(user *models.User) error
	SaveUser(user *models.User) error
	DeleteUser(id uint) error
	IsSuperuser(id uint) (bool, error)
	CountSuperusers() (int64, error)
	WithTx(tx *gorm.DB) UserRepo
}

type DBUserRepo struct {
	db *gorm.DB
}

func NewUserRepo(db *gorm.DB) *DBUserRepo {
	return &DBUserRepo{db: db}
}

func (r *DBUserRepo) ListUsers(params UserQueryParams) ([]models.User, error) {
	var users []models.User
	query := r.db.Model(&models.User{}).Order("id")

	if params.Q != "" {
		query = query.Where("username ILIKE ?", "%"+params.Q+"%")
	}
	if params.Limit > 0 {
		query = query.Limit(params.Limit)
	}
	if params.Offset > 0 {
		query = query.Offset(params.Offset)
	}

	err := query.Find(&users).Error
	return users, err
}

func (r *DBUserRepo) GetUserByID(id uint) (models.User, error) {
	var u models.User
	if err := r.db.First(&u, id).Error; err != nil {
		return u, err
	}
	return u, nil
}

func (r *DBUserRepo) GetUserByUsername(username string) (models.User, error) {
	var u models.User
	if err := r.db.Where("username = ?", username).First(&u).Error; err != nil {
		return u, err
	}
	return u, nil
}

func (r *DBUserRepo) CreateUser(user *models.User) error {
	return r.db.Create(user).Error
}

func (r *DBUserRepo) SaveUser(user *models.User) error {
	return r.db.Save(user).Error
}

func (r *DBUserRepo) DeleteUser(id uint) error {
	return r.db.Delete(&models.User{}, id).Error
}

func (r *DBUserRepo) IsSuperuser(id uint) (bool, error) {
	var isSuper bool
	err := r.db.Model(&models.User{}).
		Select("is_superuser").
		Where("id = ? AND is_active", id).
		First(&isSuper).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return false, nil
		}
		return false, err
	}
	return isSuper, nil
}

func (r *DBUserRepo) CountSuperusers() (int64, error) {
	var count int64
	err := r.db.Model(&models.User{}).
		Where("is_superuser AND is_active").
		Count(&count).Error
	return count, err
}

func (r *DBUserRepo) WithTx(tx *gorm.DB) UserRepo {
	if tx == nil {
		return r
	}
	return &DBUserRepo{db: tx}
}
