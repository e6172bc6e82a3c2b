package services

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schoolsafe/backend/internal/app/models"
	"github.com/schoolsafe/backend/internal/app/models/dto"
	"github.com/schoolsafe/backend/internal/pkg/apperrors"
)

func newUserService() (*UserService, *mockUserRepo) {
	repo := newMockUserRepo()
	return NewUserService(repo, zerolog.Nop()), repo
}

func TestSetActive(t *testing.T) {
	svc, repo := newUserService()
	user := repo.add(&models.User{Username: "pending", Role: models.RoleUser, IsActive: false})
	ctx := context.Background()

	resp, err := svc.SetActive(ctx, user.ID, true)
	require.NoError(t, err)
	assert.True(t, resp.IsActive)

	resp, err = svc.SetActive(ctx, user.ID, false)
	require.NoError(t, err)
	assert.False(t, resp.IsActive)

	_, err = svc.SetActive(ctx, 404, true)
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}

func TestUpdateAddress(t *testing.T) {
	svc, repo := newUserService()
	user := repo.add(&models.User{Username: "alice", Role: models.RoleUser, IsActive: true})

	resp, err := svc.UpdateAddress(context.Background(), user.ID, &dto.UpdateAddressRequest{
		HomeAddress:   "1 Home St",
		OfficeAddress: "2 Office Ave",
	})
	require.NoError(t, err)
	require.NotNil(t, resp.HomeAddress)
	require.NotNil(t, resp.OfficeAddress)
	assert.Equal(t, "1 Home St", *resp.HomeAddress)
	assert.Equal(t, "2 Office Ave", *resp.OfficeAddress)
}

func TestListUsers(t *testing.T) {
	svc, repo := newUserService()
	repo.add(&models.User{Username: "alice", Role: models.RoleUser, IsActive: true})
	repo.add(&models.User{Username: "bob", Role: models.RoleUser, IsActive: false})

	page, err := svc.ListUsers(context.Background(), 1, 10)
	require.NoError(t, err)

	users, ok := page.Items.([]dto.UserResponse)
	require.True(t, ok)
	assert.Len(t, users, 2)
	assert.Equal(t, 2, page.Pagination.TotalItems)

	usernames := []string{users[0].Username, users[1].Username}
	assert.ElementsMatch(t, []string{"alice", "bob"}, usernames)
}
