package service

import (
	"context"

	"rentmarket-backend/internal/domain"
	"rentmarket-backend/internal/repository"
)

type userService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) GetProfile(ctx context.Context, userID int32) (*domain.User, *domain.UserProfile, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	profile, err := s.userRepo.GetProfileByUserID(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	return user, profile, nil
}

func (s *userService) UpdateProfile(ctx context.Context, userID int32, in ProfileInput) (*domain.UserProfile, error) {
	profile, err := s.userRepo.GetProfileByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	ve := domain.NewValidationError()
	if in.Role != "" && in.Role != string(domain.ProfileRoleLister) && in.Role != string(domain.ProfileRoleRenter) {
		ve.Add("role", "The role must be lister or renter.")
	}
	if in.Language != "" && len(in.Language) != 2 {
		ve.Add("language", "The language must be a 2-letter code.")
	}
	if len(in.Bio) > 5000 {
		ve.Add("bio", "The bio cannot exceed 5000 characters.")
	}
	if err := ve.ErrOrNil(); err != nil {
		return nil, err
	}

	if in.Role != "" {
		profile.Role = domain.ProfileRole(in.Role)
	}
	if in.Language != "" {
		profile.Language = in.Language
	}
	if in.Timezone != "" {
		profile.Timezone = in.Timezone
	}
	profile.Phone = in.Phone
	profile.Bio = in.Bio
	profile.Avatar = in.Avatar

	if err := s.userRepo.UpdateProfile(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}
