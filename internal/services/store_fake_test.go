package services

import (
	"context"
	"strings"
	"sync"
	"time"

	"avagostar-product-api/internal/models"
	"avagostar-product-api/internal/repo"
)

// fakeUserStore is an in-memory repo.UserStore for service tests.
type fakeUserStore struct {
	mu    sync.Mutex
	seq   int64
	users map[int64]*models.User

	failNextCount bool
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[int64]*models.User)}
}

var _ repo.UserStore = (*fakeUserStore)(nil)

func (f *fakeUserStore) Create(_ context.Context, user *models.User) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, existing := range f.users {
		if existing.Username == user.Username || strings.EqualFold(existing.Email, user.Email) {
			return nil, repo.ErrDuplicate
		}
	}

	f.seq++
	user.ID = f.seq
	user.CreatedAt = time.Now().UTC()
	user.UpdatedAt = user.CreatedAt
	clone := *user
	f.users[user.ID] = &clone
	return user, nil
}

func (f *fakeUserStore) GetByID(_ context.Context, id int64) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	user, ok := f.users[id]
	if !ok {
		return nil, repo.ErrNotFound
	}
	clone := *user
	return &clone, nil
}

func (f *fakeUserStore) GetByUsernameOrEmail(_ context.Context, identifier string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, user := range f.users {
		if user.Username == identifier || strings.EqualFold(user.Email, identifier) {
			clone := *user
			return &clone, nil
		}
	}
	return nil, repo.ErrNotFound
}

func (f *fakeUserStore) ExistsByEmail(_ context.Context, email string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, user := range f.users {
		if strings.EqualFold(user.Email, email) {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeUserStore) ExistsByUsername(_ context.Context, username string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, user := range f.users {
		if user.Username == username {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeUserStore) Count(_ context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.failNextCount {
		f.failNextCount = false
		return 0, context.DeadlineExceeded
	}
	return int64(len(f.users)), nil
}

func (f *fakeUserStore) List(_ context.Context, skip, limit int) ([]models.User, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var all []models.User
	for id := int64(1); id <= f.seq; id++ {
		if user, ok := f.users[id]; ok {
			all = append(all, *user)
		}
	}
	total := int64(len(all))
	if skip >= len(all) {
		return nil, total, nil
	}
	all = all[skip:]
	if limit < len(all) {
		all = all[:limit]
	}
	return all, total, nil
}

func (f *fakeUserStore) Update(_ context.Context, user *models.User) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.users[user.ID]; !ok {
		return nil, repo.ErrNotFound
	}
	user.UpdatedAt = time.Now().UTC()
	clone := *user
	f.users[user.ID] = &clone
	return user, nil
}

func (f *fakeUserStore) UpdatePassword(_ context.Context, userID int64, passwordHash string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	user, ok := f.users[userID]
	if !ok {
		return repo.ErrNotFound
	}
	user.PasswordHash = passwordHash
	return nil
}

func (f *fakeUserStore) UpdateLastLogin(_ context.Context, userID int64, at time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	user, ok := f.users[userID]
	if !ok {
		return repo.ErrNotFound
	}
	user.LastLogin = &at
	return nil
}

func (f *fakeUserStore) Delete(_ context.Context, userID int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.users[userID]; !ok {
		return repo.ErrNotFound
	}
	delete(f.users, userID)
	return nil
}

func (f *fakeUserStore) Stats(_ context.Context) (*models.UserStats, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	stats := &models.UserStats{}
	for _, user := range f.users {
		stats.TotalUsers++
		if user.IsActive {
			stats.ActiveUsers++
		}
		if user.IsVerified {
			stats.VerifiedUsers++
		}
		if user.Role == models.RoleAdmin {
			stats.AdminUsers++
		}
	}
	return stats, nil
}
