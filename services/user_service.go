package services

import (
	"errors"

	"gorm.io/gorm"

	"tunecheck/config"
	"tunecheck/models"
	"tunecheck/repositories"
)

type UserService interface {
	GetByID(id uint) (*models.User, error)
	GetAll() ([]models.User, error)
	Update(actor *models.User, targetID uint, req models.UpdateUserRequest) (*models.User, error)
	Delete(actor *models.User, targetID uint) error
}

type userService struct {
	userRepo repositories.UserRepository
	cfg      *config.Config
}

func NewUserService(userRepo repositories.UserRepository, cfg *config.Config) UserService {
	return &userService{userRepo: userRepo, cfg: cfg}
}

func (s *userService) GetByID(id uint) (*models.User, error) {
	user, err := s.userRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrorNotFound{Message: "user not found"}
		}
		return nil, err
	}
	return user, nil
}

func (s *userService) GetAll() ([]models.User, error) {
	return s.userRepo.GetAll()
}

func (s *userService) Update(actor *models.User, targetID uint, req models.UpdateUserRequest) (*models.User, error) {
	if !CanMutateUser(actor, targetID) {
		return nil, models.ErrorForbidden{Message: "not authorized to update this user"}
	}

	user, err := s.userRepo.GetByID(targetID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrorNotFound{Message: "user doesn't exist"}
		}
		return nil, err
	}

	if req.Username != "" && req.Username != user.Username {
		if _, err := s.userRepo.GetByUsername(req.Username); err == nil {
			return nil, models.ErrorConflict{Message: "user with this username already exists"}
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		user.Username = req.Username
	}

	if req.Password != "" {
		hashed, err := HashPassword(req.Password, s.cfg.PasswordScheme)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = hashed
	}

	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) Delete(actor *models.User, targetID uint) error {
	if !CanMutateUser(actor, targetID) {
		return models.ErrorForbidden{Message: "not authorized to delete this user"}
	}

	if _, err := s.userRepo.GetByID(targetID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.ErrorNotFound{Message: "user doesn't exist"}
		}
		return err
	}

	return s.userRepo.Delete(targetID)
}
