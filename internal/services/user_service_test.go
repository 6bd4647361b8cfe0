package services

import (
	"context"
	"net/http"
	"testing"

	"avagostar-product-api/internal/models"
	"github.com/stretchr/testify/require"
)

func seedUsers(t *testing.T, store *fakeUserStore) (admin, bob *models.User) {
	t.Helper()
	svc, _ := newAuthService(store)
	admin = register(t, svc, "a@x.com", "alice", "secret1")
	bob = register(t, svc, "b@x.com", "bob", "secret2")
	return admin, bob
}

func TestUserService_AdminUpdateRole(t *testing.T) {
	t.Parallel()

	store := newFakeUserStore()
	admin, bob := seedUsers(t, store)
	svc := NewUserService(store)

	role := models.RoleModerator
	updated, err := svc.AdminUpdate(context.Background(), admin, bob.ID, AdminUserUpdateInput{Role: &role})
	require.NoError(t, err)
	require.Equal(t, models.RoleModerator, updated.Role)

	stored, err := store.GetByID(context.Background(), bob.ID)
	require.NoError(t, err)
	require.Equal(t, models.RoleModerator, stored.Role)
}

func TestUserService_AdminCannotDeactivateSelf(t *testing.T) {
	t.Parallel()

	store := newFakeUserStore()
	admin, _ := seedUsers(t, store)
	svc := NewUserService(store)

	inactive := false
	_, err := svc.AdminUpdate(context.Background(), admin, admin.ID, AdminUserUpdateInput{IsActive: &inactive})
	requireAppError(t, err, http.StatusUnprocessableEntity, "VALIDATION_ERROR")

	_, err = svc.SetActive(context.Background(), admin, admin.ID, false)
	requireAppError(t, err, http.StatusUnprocessableEntity, "VALIDATION_ERROR")
}

func TestUserService_AdminCannotDeleteSelf(t *testing.T) {
	t.Parallel()

	store := newFakeUserStore()
	admin, bob := seedUsers(t, store)
	svc := NewUserService(store)

	err := svc.Delete(context.Background(), admin, admin.ID)
	requireAppError(t, err, http.StatusUnprocessableEntity, "VALIDATION_ERROR")

	require.NoError(t, svc.Delete(context.Background(), admin, bob.ID))
	_, err = svc.GetByID(context.Background(), bob.ID)
	requireAppError(t, err, http.StatusNotFound, "NOT_FOUND")
}

func TestUserService_UpdateProfileUniqueness(t *testing.T) {
	t.Parallel()

	store := newFakeUserStore()
	_, bob := seedUsers(t, store)
	svc := NewUserService(store)

	takenEmail := "a@x.com"
	_, err := svc.UpdateProfile(context.Background(), bob, ProfileUpdateInput{Email: &takenEmail})
	requireAppError(t, err, http.StatusConflict, "CONFLICT")

	takenUsername := "alice"
	_, err = svc.UpdateProfile(context.Background(), bob, ProfileUpdateInput{Username: &takenUsername})
	requireAppError(t, err, http.StatusConflict, "CONFLICT")

	first := "Bob"
	updated, err := svc.UpdateProfile(context.Background(), bob, ProfileUpdateInput{FirstName: &first})
	require.NoError(t, err)
	require.Equal(t, "Bob", *updated.FirstName)
	require.Equal(t, models.RoleUser, updated.Role)
}

func TestUserService_VerifyAndStats(t *testing.T) {
	t.Parallel()

	store := newFakeUserStore()
	_, bob := seedUsers(t, store)
	svc := NewUserService(store)

	updated, err := svc.Verify(context.Background(), bob.ID)
	require.NoError(t, err)
	require.True(t, updated.IsVerified)

	stats, err := svc.Stats(context.Background())
	require.NoError(t, err)
	require.Equal(t, int64(2), stats.TotalUsers)
	require.Equal(t, int64(2), stats.ActiveUsers)
	require.Equal(t, int64(2), stats.VerifiedUsers)
	require.Equal(t, int64(1), stats.AdminUsers)
}

func TestUserService_List(t *testing.T) {
	t.Parallel()

	store := newFakeUserStore()
	seedUsers(t, store)
	svc := NewUserService(store)

	users, total, err := svc.List(context.Background(), 0, 100)
	require.NoError(t, err)
	require.Equal(t, int64(2), total)
	require.Len(t, users, 2)

	users, total, err = svc.List(context.Background(), 1, 100)
	require.NoError(t, err)
	require.Equal(t, int64(2), total)
	require.Len(t, users, 1)
}
