package service

import (
	"github.com/recipebox/internal/models"
	"github.com/recipebox/internal/repository"
)

// UserService handles profile reads and updates
type UserService struct {
	userRepo *repository.UserRepository
}

// NewUserService creates a new UserService
func NewUserService(userRepo *repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// UpdateProfileRequest represents the profile-update request
type UpdateProfileRequest struct {
	Username  string `json:"username" binding:"required,max=50"`
	FirstName string `json:"first_name" binding:"required,max=50"`
	LastName  string `json:"last_name" binding:"required,max=50"`
	Email     string `json:"email" binding:"required,email"`
}

// ListOthers returns every user except the given one, ordered by username.
func (s *UserService) ListOthers(userID uint) ([]models.User, error) {
	return s.userRepo.ListExcluding(userID)
}

// GetByID retrieves a user by ID
func (s *UserService) GetByID(id uint) (*models.User, error) {
	return s.userRepo.GetByID(id)
}

// UpdateProfile updates the given user's own profile fields. The target
// record is always the caller's, never taken from request parameters.
func (s *UserService) UpdateProfile(user *models.User, req *UpdateProfileRequest) error {
	if req.Username != user.Username {
		exists, err := s.userRepo.ExistsByUsername(req.Username)
		if err != nil {
			return err
		}
		if exists {
			return ErrUsernameTaken
		}
	}
	if req.Email != user.Email {
		exists, err := s.userRepo.ExistsByEmail(req.Email)
		if err != nil {
			return err
		}
		if exists {
			return ErrEmailTaken
		}
	}

	user.Username = req.Username
	user.FirstName = req.FirstName
	user.LastName = req.LastName
	user.Email = req.Email
	return s.userRepo.Update(user)
}
