package services

import (
	"context"
	"strings"

	"jobboard_backend/internal/auth"
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/services/dto"
	"jobboard_backend/internal/validator"

	"gorm.io/gorm"
)

// UserService keeps the local mirror of identities used to display posters.
type UserService interface {
	SyncProfile(ctx context.Context, db *gorm.DB, req *dto.SyncProfileRequest, identity auth.Identity) (*dto.UserResponse, error)
	GetMe(ctx context.Context, db *gorm.DB, identity auth.Identity) (*dto.UserResponse, error)
}

type UserServiceImpl struct {
	userRepo  repositories.UserRepository
	validator *validator.Validator
}

func NewUserService(userRepo repositories.UserRepository, v *validator.Validator) UserService {
	return &UserServiceImpl{userRepo: userRepo, validator: v}
}

// SyncProfile upserts the caller's profile. The role always comes from the token.
func (s *UserServiceImpl) SyncProfile(ctx context.Context, db *gorm.DB, req *dto.SyncProfileRequest, identity auth.Identity) (*dto.UserResponse, error) {
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}

	db = db.WithContext(ctx)
	user := &models.User{
		BaseModel: models.BaseModel{ID: identity.UserID},
		Email:     req.Email,
		FirstName: strings.TrimSpace(req.FirstName),
		LastName:  strings.TrimSpace(req.LastName),
		Role:      identity.Role,
	}
	if err := s.userRepo.UpsertUser(db, user); err != nil {
		return nil, storeError(ctx, "upsert user", err)
	}
	return s.GetMe(ctx, db, identity)
}

func (s *UserServiceImpl) GetMe(ctx context.Context, db *gorm.DB, identity auth.Identity) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindUserByID(db.WithContext(ctx), identity.UserID)
	if err != nil {
		return nil, storeError(ctx, "find user", err)
	}
	return dto.NewUserResponse(user), nil
}
