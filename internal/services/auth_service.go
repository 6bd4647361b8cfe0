package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"avagostar-product-api/internal/models"
	"avagostar-product-api/internal/repo"
	"avagostar-product-api/internal/utils"
)

type AuthService struct {
	users          repo.UserStore
	tokens         *TokenService
	passwordMinLen int
}

type RegisterInput struct {
	Email     string
	Username  string
	Password  string
	FirstName *string
	LastName  *string
}

type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token,omitempty"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int64  `json:"expires_in"`
}

func NewAuthService(users repo.UserStore, tokens *TokenService, passwordMinLen int) *AuthService {
	return &AuthService{users: users, tokens: tokens, passwordMinLen: passwordMinLen}
}

func (s *AuthService) validatePassword(password string) error {
	if len(password) < s.passwordMinLen {
		return utils.ErrValidation(
			fmt.Sprintf("password must be at least %d characters", s.passwordMinLen), nil)
	}
	if len(password) > bcryptMaxBytes {
		return utils.ErrValidation(
			fmt.Sprintf("password must be at most %d bytes", bcryptMaxBytes), nil)
	}
	return nil
}

// Register creates a user account. The very first account in the store is
// bootstrapped as a verified admin; everyone after that starts as an
// unverified regular user.
func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*models.User, error) {
	if err := s.validatePassword(input.Password); err != nil {
		return nil, err
	}

	email := strings.TrimSpace(input.Email)
	username := strings.TrimSpace(input.Username)

	exists, err := s.users.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, utils.ErrInternal("could not check existing users")
	}
	if exists {
		return nil, utils.ErrConflict("email already registered")
	}

	exists, err = s.users.ExistsByUsername(ctx, username)
	if err != nil {
		return nil, utils.ErrInternal("could not check existing users")
	}
	if exists {
		return nil, utils.ErrConflict("username already taken")
	}

	count, err := s.users.Count(ctx)
	if err != nil {
		return nil, utils.ErrInternal("could not check existing users")
	}
	firstUser := count == 0

	hash, err := HashPassword(input.Password)
	if err != nil {
		return nil, utils.ErrInternal("could not secure password")
	}

	user := &models.User{
		Email:        email,
		Username:     username,
		PasswordHash: hash,
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Role:         models.RoleUser,
		IsActive:     true,
		IsVerified:   false,
	}
	if firstUser {
		user.Role = models.RoleAdmin
		user.IsVerified = true
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		if errors.Is(err, repo.ErrDuplicate) {
			// Lost the race against a concurrent registration.
			return nil, utils.ErrConflict("email or username already taken")
		}
		return nil, utils.ErrInternal("could not create user")
	}
	return created, nil
}

// Login authenticates by username or email. Unknown user, wrong password and
// a deactivated account all return the same error so callers cannot
// enumerate accounts.
func (s *AuthService) Login(ctx context.Context, identifier, password string) (*TokenResponse, error) {
	unauthorized := utils.ErrUnauthorized("incorrect username or password")

	user, err := s.users.GetByUsernameOrEmail(ctx, strings.TrimSpace(identifier))
	if err != nil {
		return nil, unauthorized
	}
	if !VerifyPassword(password, user.PasswordHash) {
		return nil, unauthorized
	}
	if !user.IsActive {
		return nil, unauthorized
	}

	if err := s.users.UpdateLastLogin(ctx, user.ID, time.Now().UTC()); err != nil {
		return nil, utils.ErrInternal("could not record login")
	}

	accessToken, err := s.tokens.IssueAccess(user)
	if err != nil {
		return nil, utils.ErrInternal("could not generate token")
	}
	refreshToken, err := s.tokens.IssueRefresh(user)
	if err != nil {
		return nil, utils.ErrInternal("could not generate token")
	}

	return &TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    "bearer",
		ExpiresIn:    s.tokens.AccessTTLSeconds(),
	}, nil
}

// Refresh exchanges a valid refresh token for a new access token. The
// presented refresh token stays valid until its own expiry; it is not
// rotated.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*TokenResponse, error) {
	claims, err := s.tokens.Verify(refreshToken, TokenKindRefresh)
	if err != nil {
		return nil, utils.ErrUnauthorized("invalid refresh token")
	}

	user, err := s.users.GetByID(ctx, claims.UserID)
	if err != nil {
		return nil, utils.ErrUnauthorized("invalid refresh token")
	}
	if !user.IsActive {
		return nil, utils.ErrUnauthorized("invalid refresh token")
	}

	accessToken, err := s.tokens.IssueAccess(user)
	if err != nil {
		return nil, utils.ErrInternal("could not generate token")
	}

	return &TokenResponse{
		AccessToken: accessToken,
		TokenType:   "bearer",
		ExpiresIn:   s.tokens.AccessTTLSeconds(),
	}, nil
}

// ChangePassword replaces the stored hash. Outstanding tokens stay valid;
// there is no revocation list.
func (s *AuthService) ChangePassword(ctx context.Context, user *models.User, oldPassword, newPassword string) error {
	if !VerifyPassword(oldPassword, user.PasswordHash) {
		return utils.ErrUnauthorized("incorrect current password")
	}
	if err := s.validatePassword(newPassword); err != nil {
		return err
	}

	hash, err := HashPassword(newPassword)
	if err != nil {
		return utils.ErrInternal("could not update password")
	}
	if err := s.users.UpdatePassword(ctx, user.ID, hash); err != nil {
		return utils.ErrInternal("could not update password")
	}
	return nil
}
