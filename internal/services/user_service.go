package services

import (
	"context"
	"errors"
	"strings"

	"avagostar-product-api/internal/models"
	"avagostar-product-api/internal/repo"
	"avagostar-product-api/internal/utils"
)

// UserService covers the role-gated user management surface.
type UserService struct {
	users repo.UserStore
}

type ProfileUpdateInput struct {
	Email     *string
	Username  *string
	FirstName *string
	LastName  *string
}

// AdminUserUpdateInput additionally allows role and status flags.
type AdminUserUpdateInput struct {
	ProfileUpdateInput
	Role       *models.Role
	IsActive   *bool
	IsVerified *bool
}

func NewUserService(users repo.UserStore) *UserService {
	return &UserService{users: users}
}

func (s *UserService) List(ctx context.Context, skip, limit int) ([]models.User, int64, error) {
	if skip < 0 {
		skip = 0
	}
	if limit <= 0 || limit > 100 {
		limit = 100
	}
	users, total, err := s.users.List(ctx, skip, limit)
	if err != nil {
		return nil, 0, utils.ErrInternal("could not list users")
	}
	return users, total, nil
}

func (s *UserService) GetByID(ctx context.Context, id int64) (*models.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, utils.ErrNotFound("user not found")
		}
		return nil, utils.ErrInternal("could not load user")
	}
	return user, nil
}

// UpdateProfile lets a user change their own identity fields. Role and
// status flags are out of reach here.
func (s *UserService) UpdateProfile(ctx context.Context, current *models.User, input ProfileUpdateInput) (*models.User, error) {
	if input.Email != nil {
		email := strings.TrimSpace(*input.Email)
		if !strings.EqualFold(email, current.Email) {
			taken, err := s.users.ExistsByEmail(ctx, email)
			if err != nil {
				return nil, utils.ErrInternal("could not check existing users")
			}
			if taken {
				return nil, utils.ErrConflict("email already taken")
			}
		}
		current.Email = email
	}

	if input.Username != nil {
		username := strings.TrimSpace(*input.Username)
		if username != current.Username {
			taken, err := s.users.ExistsByUsername(ctx, username)
			if err != nil {
				return nil, utils.ErrInternal("could not check existing users")
			}
			if taken {
				return nil, utils.ErrConflict("username already taken")
			}
		}
		current.Username = username
	}

	if input.FirstName != nil {
		current.FirstName = input.FirstName
	}
	if input.LastName != nil {
		current.LastName = input.LastName
	}

	updated, err := s.users.Update(ctx, current)
	if err != nil {
		return nil, utils.ErrInternal("could not update user")
	}
	return updated, nil
}

// AdminUpdate lets an admin change any field including role and flags.
// Admins cannot deactivate themselves.
func (s *UserService) AdminUpdate(ctx context.Context, actor *models.User, targetID int64, input AdminUserUpdateInput) (*models.User, error) {
	target, err := s.GetByID(ctx, targetID)
	if err != nil {
		return nil, err
	}

	if input.IsActive != nil && !*input.IsActive && target.ID == actor.ID {
		return nil, utils.ErrValidation("you cannot deactivate yourself", nil)
	}
	if input.Role != nil && !input.Role.Valid() {
		return nil, utils.ErrValidation("invalid role", nil)
	}

	updated, err := s.UpdateProfile(ctx, target, input.ProfileUpdateInput)
	if err != nil {
		return nil, err
	}

	if input.Role != nil {
		updated.Role = *input.Role
	}
	if input.IsActive != nil {
		updated.IsActive = *input.IsActive
	}
	if input.IsVerified != nil {
		updated.IsVerified = *input.IsVerified
	}

	if input.Role != nil || input.IsActive != nil || input.IsVerified != nil {
		updated, err = s.users.Update(ctx, updated)
		if err != nil {
			return nil, utils.ErrInternal("could not update user")
		}
	}
	return updated, nil
}

func (s *UserService) Delete(ctx context.Context, actor *models.User, targetID int64) error {
	if targetID == actor.ID {
		return utils.ErrValidation("you cannot delete yourself", nil)
	}
	if err := s.users.Delete(ctx, targetID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return utils.ErrNotFound("user not found")
		}
		return utils.ErrInternal("could not delete user")
	}
	return nil
}

func (s *UserService) SetActive(ctx context.Context, actor *models.User, targetID int64, active bool) (*models.User, error) {
	if !active && targetID == actor.ID {
		return nil, utils.ErrValidation("you cannot deactivate yourself", nil)
	}

	target, err := s.GetByID(ctx, targetID)
	if err != nil {
		return nil, err
	}
	target.IsActive = active

	updated, err := s.users.Update(ctx, target)
	if err != nil {
		return nil, utils.ErrInternal("could not update user")
	}
	return updated, nil
}

func (s *UserService) Verify(ctx context.Context, targetID int64) (*models.User, error) {
	target, err := s.GetByID(ctx, targetID)
	if err != nil {
		return nil, err
	}
	target.IsVerified = true

	updated, err := s.users.Update(ctx, target)
	if err != nil {
		return nil, utils.ErrInternal("could not update user")
	}
	return updated, nil
}

func (s *UserService) Stats(ctx context.Context) (*models.UserStats, error) {
	stats, err := s.users.Stats(ctx)
	if err != nil {
		return nil, utils.ErrInternal("could not load user stats")
	}
	return stats, nil
}
