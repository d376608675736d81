package services

import (
	"context"

	"github.com/englishlessons/backend/internal/auth"
	"github.com/englishlessons/backend/internal/models"
)

// UserRepository defines methods for user data access
type UserRepository interface {
	// GetByID retrieves a user by ID
	GetByID(ctx context.Context, id int) (*models.User, error)
}

type profileService struct {
	userRepo UserRepository
}

// NewProfileService creates a new profile service
func NewProfileService(userRepo UserRepository) *profileService {
	return &profileService{
		userRepo: userRepo,
	}
}

// Me retrieves the authenticated actor's own profile
func (s *profileService) Me(ctx context.Context, actor auth.Actor) (*models.User, error) {
	return s.userRepo.GetByID(ctx, actor.UserID)
}
