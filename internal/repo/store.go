package repo

import (
	"context"
	"errors"
	"time"

	"avagostar-product-api/internal/models"
)

// ErrDuplicate is returned when an insert or update violates a unique
// constraint (email or username).
var ErrDuplicate = errors.New("duplicate")

// UserStore defines persistence operations over user records.
type UserStore interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetByUsernameOrEmail(ctx context.Context, identifier string) (*models.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	Count(ctx context.Context) (int64, error)
	List(ctx context.Context, skip, limit int) ([]models.User, int64, error)
	Update(ctx context.Context, user *models.User) (*models.User, error)
	UpdatePassword(ctx context.Context, userID int64, passwordHash string) error
	UpdateLastLogin(ctx context.Context, userID int64, at time.Time) error
	Delete(ctx context.Context, userID int64) error
	Stats(ctx context.Context) (*models.UserStats, error)
}

// ProductStore defines persistence operations over the product catalogue.
type ProductStore interface {
	Create(ctx context.Context, p *models.Product) (*models.Product, error)
	GetByID(ctx context.Context, id int64) (*models.Product, error)
	List(ctx context.Context, filters ProductFilters) ([]models.Product, int64, error)
	Update(ctx context.Context, p *models.Product) (*models.Product, error)
	UpdateStock(ctx context.Context, id int64, quantity int) (*models.Product, error)
	Delete(ctx context.Context, id int64) error
}

var _ UserStore = (*UserRepo)(nil)
var _ ProductStore = (*ProductRepo)(nil)
