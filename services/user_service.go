package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/adanilkinca/techcockbar/config"
	"github.com/adanilkinca/techcockbar/dto"
	"github.com/adanilkinca/techcockbar/middleware"
	"github.com/adanilkinca/techcockbar/models"
	"github.com/adanilkinca/techcockbar/repositories"
	"github.com/adanilkinca/techcockbar/utils"
)

var (
	ErrUserNotFound        = errors.New("user not found")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrIncorrectPassword   = errors.New("old password is incorrect")
	ErrMissingOldPassword  = errors.New("old password is required to change password")
	ErrPasswordHashFailure = errors.New("failed to hash new password")
	ErrUsernameTaken       = errors.New("username already taken")
	ErrLastSuperuser       = errors.New("cannot remove the last superuser")
	ErrSelfDelete          = errors.New("cannot delete your own account")
	ErrReservedUser        = errors.New("reserved account cannot be changed")
	ErrSuperuserOnly       = errors.New("only a superuser may change roles or active state")
)

const timeLayout = "2006-01-02 15:04:05"

type UserService struct {
	Repos *repositories.Repos
}

func NewUserService(repos *repositories.Repos) *UserService {
	return &UserService{Repos: repos}
}

// LoginUser checks the credentials and mints a JWT for the session.
// Inactive accounts fail the same way as wrong passwords.
func (s *UserService) LoginUser(username, password string) (models.User, string, error) {
	user, err := s.Repos.User.GetUserByUsername(username)
	if err != nil {
		return models.User{}, "", ErrInvalidCredentials
	}
	if !user.IsActive {
		return models.User{}, "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return models.User{}, "", ErrInvalidCredentials
	}

	lifetime := time.Duration(config.TokenLifetimeHours) * time.Hour
	token, err := middleware.GenerateToken(user.ID, user.Username, user.IsSuperuser, lifetime)
	if err != nil {
		return models.User{}, "", err
	}
	return user, token, nil
}

func (s *UserService) ListUsers(params repositories.UserQueryParams) ([]dto.UserDTO, error) {
	users, err := s.Repos.User.ListUsers(params)
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserDTO, 0, len(users))
	for _, u := range users {
		out = append(out, toUserDTO(u))
	}
	return out, nil
}

func (s *UserService) GetUser(id uint) (dto.UserDTO, error) {
	user, err := s.Repos.User.GetUserByID(id)
	if err != nil {
		return dto.UserDTO{}, ErrUserNotFound
	}
	return toUserDTO(user), nil
}

func (s *UserService) CreateUser(c *gin.Context, input dto.CreateUserInput) (dto.UserDTO, error) {
	_, err := s.Repos.User.GetUserByUsername(input.Username)
	if err == nil {
		return dto.UserDTO{}, ErrUsernameTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return dto.UserDTO{}, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return dto.UserDTO{}, ErrPasswordHashFailure
	}

	user := models.User{
		Username:    input.Username,
		Password:    string(hashed),
		Email:       input.Email,
		FullName:    input.FullName,
		IsSuperuser: input.IsSuperuser,
		IsActive:    true,
	}
	if err := s.Repos.User.CreateUser(&user); err != nil {
		return dto.UserDTO{}, err
	}

	utils.LogAuditWithConsole(c, "create", "user", fmt.Sprintf("id=%d", user.ID), nil, toUserDTO(user), "", s.Repos.Audit)
	return toUserDTO(user), nil
}

// UpdateUser applies a partial update. Only a superuser may change the
// password without the old one, flip is_superuser, or deactivate accounts.
func (s *UserService) UpdateUser(c *gin.Context, id uint, input dto.UpdateUserInput, actorIsSuperuser bool) (dto.UserDTO, error) {
	user, err := s.Repos.User.GetUserByID(id)
	if err != nil {
		return dto.UserDTO{}, ErrUserNotFound
	}
	oldUser := toUserDTO(user)

	if !actorIsSuperuser && (input.IsSuperuser != nil || input.IsActive != nil) {
		return dto.UserDTO{}, ErrSuperuserOnly
	}

	if input.Password != nil {
		if !actorIsSuperuser {
			if input.OldPassword == nil {
				return dto.UserDTO{}, ErrMissingOldPassword
			}
			if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(*input.OldPassword)); err != nil {
				return dto.UserDTO{}, ErrIncorrectPassword
			}
		}
		hashed, err := bcrypt.GenerateFromPassword([]byte(*input.Password), bcrypt.DefaultCost)
		if err != nil {
			return dto.UserDTO{}, ErrPasswordHashFailure
		}
		user.Password = string(hashed)
	}

	demoting := input.IsSuperuser != nil && !*input.IsSuperuser && user.IsSuperuser
	deactivating := input.IsActive != nil && !*input.IsActive && user.IsActive
	if demoting || deactivating {
		if user.Username == config.ReservedAdminUsername {
			return dto.UserDTO{}, ErrReservedUser
		}
		if user.IsSuperuser {
			count, err := s.Repos.User.CountSuperusers()
			if err != nil {
				return dto.UserDTO{}, err
			}
			if count <= 1 {
				return dto.UserDTO{}, ErrLastSuperuser
			}
		}
	}

	if input.Email != nil {
		user.Email = input.Email
	}
	if input.FullName != nil {
		user.FullName = input.FullName
	}
	if input.IsSuperuser != nil {
		user.IsSuperuser = *input.IsSuperuser
	}
	if input.IsActive != nil {
		user.IsActive = *input.IsActive
	}

	if err := s.Repos.User.SaveUser(&user); err != nil {
		return dto.UserDTO{}, err
	}

	utils.LogAuditWithConsole(c, "update", "user", fmt.Sprintf("id=%d", user.ID), oldUser, toUserDTO(user), "", s.Repos.Audit)
	return toUserDTO(user), nil
}

func (s *UserService) DeleteUser(c *gin.Context, id, actorID uint) error {
	if id == actorID {
		return ErrSelfDelete
	}
	user, err := s.Repos.User.GetUserByID(id)
	if err != nil {
		return ErrUserNotFound
	}
	if user.Username == config.ReservedAdminUsername {
		return ErrReservedUser
	}
	if user.IsSuperuser {
		count, err := s.Repos.User.CountSuperusers()
		if err != nil {
			return err
		}
		if count <= 1 {
			return ErrLastSuperuser
		}
	}
	if err := s.Repos.User.DeleteUser(id); err != nil {
		return err
	}

	utils.LogAuditWithConsole(c, "delete", "user", fmt.Sprintf("id=%d", id), toUserDTO(user), nil, "", s.Repos.Audit)
	return nil
}

// CreateSuperuser backs the createsuperuser CLI command. No audit row is
// written because there is no HTTP actor.
func (s *UserService) CreateSuperuser(username, password string, email *string) (models.User, error) {
	_, err := s.Repos.User.GetUserByUsername(username)
	if err == nil {
		return models.User{}, ErrUsernameTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return models.User{}, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, ErrPasswordHashFailure
	}

	user := models.User{
		Username:    username,
		Password:    string(hashed),
		Email:       email,
		IsSuperuser: true,
		IsActive:    true,
	}
	if err := s.Repos.User.CreateUser(&user); err != nil {
		return models.User{}, err
	}
	return user, nil
}

func toUserDTO(u models.User) dto.UserDTO {
	return dto.UserDTO{
		ID:          u.ID,
		Username:    u.Username,
		Email:       u.Email,
		FullName:    u.FullName,
		IsSuperuser: u.IsSuperuser,
		IsActive:    u.IsActive,
		CreatedAt:   u.CreatedAt.Format(timeLayout),
		UpdatedAt:   u.UpdatedAt.Format(timeLayout),
	}
}
