package service

import (
	"context"
	"errors"
	"strings"

	"rentmarket-backend/internal/domain"
	"rentmarket-backend/internal/repository"
	"rentmarket-backend/internal/security"

	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidCredentials = errors.New("invalid email or password")

type authService struct {
	userRepo repository.UserRepository
	tokens   security.TokenManager
}

func NewAuthService(userRepo repository.UserRepository, tokens security.TokenManager) AuthService {
	return &authService{
		userRepo: userRepo,
		tokens:   tokens,
	}
}

func (s *authService) Signup(ctx context.Context, name, email, password string) (*domain.User, string, string, error) {
	ve := domain.NewValidationError()
	if name == "" {
		ve.Add("name", "Please provide your name.")
	}
	if email == "" || !strings.Contains(email, "@") {
		ve.Add("email", "Please provide a valid email address.")
	}
	if len(password) < 8 {
		ve.Add("password", "The password must be at least 8 characters.")
	}
	if err := ve.ErrOrNil(); err != nil {
		return nil, "", "", err
	}

	if _, err := s.userRepo.GetByEmail(ctx, email); err == nil {
		ve.Add("email", "This email is already registered.")
		return nil, "", "", ve
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, "", "", err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", "", err
	}

	user := &domain.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, "", "", err
	}

	// Every new account starts with a renter profile; roles can be changed
	// from the profile page.
	profile := &domain.UserProfile{
		UserID:   user.ID,
		Role:     domain.ProfileRoleRenter,
		Language: "en",
		Timezone: "UTC",
	}
	if err := s.userRepo.CreateProfile(ctx, profile); err != nil {
		return nil, "", "", err
	}

	access, refresh, err := s.issueTokens(user)
	if err != nil {
		return nil, "", "", err
	}
	return user, access, refresh, nil
}

func (s *authService) Login(ctx context.Context, email, password string) (string, string, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if errors.Is(err, domain.ErrNotFound) {
		return "", "", ErrInvalidCredentials
	}
	if err != nil {
		return "", "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", "", ErrInvalidCredentials
	}

	return s.issueTokens(user)
}

func (s *authService) Refresh(ctx context.Context, refreshToken string) (string, string, error) {
	claims, err := s.tokens.ValidateToken(refreshToken)
	if err != nil {
		return "", "", err
	}
	if claims.Type != security.TokenTypeRefresh {
		return "", "", security.ErrWrongTokenType
	}

	// Re-resolve the user so a deleted account cannot refresh forever.
	user, err := s.userRepo.GetByID(ctx, claims.UserID)
	if err != nil {
		return "", "", err
	}
	return s.issueTokens(user)
}

func (s *authService) issueTokens(user *domain.User) (string, string, error) {
	access, err := s.tokens.GenerateAccessToken(user.ID, user.Email)
	if err != nil {
		return "", "", err
	}
	refresh, err := s.tokens.GenerateRefreshToken(user.ID, user.Email)
	if err != nil {
		return "", "", err
	}
	return access, refresh, nil
}
