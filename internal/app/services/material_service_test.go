package services

import (
	"context"
	"errors"
	"mime/multipart"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schoolsafe/backend/internal/app/models"
	"github.com/schoolsafe/backend/internal/app/models/dto"
	"github.com/schoolsafe/backend/internal/pkg/apperrors"
)

type materialFixture struct {
	svc     *MaterialService
	repo    *mockMaterialRepo
	storage *fakeFileStorage
}

func newMaterialFixture(t *testing.T) *materialFixture {
	t.Helper()

	repo := newMockMaterialRepo()
	storage := &fakeFileStorage{}
	return &materialFixture{
		svc:     NewMaterialService(repo, storage, zerolog.Nop()),
		repo:    repo,
		storage: storage,
	}
}

func pdfUpload() *multipart.FileHeader {
	return &multipart.FileHeader{Filename: "guide.pdf"}
}

func TestCreateMaterial(t *testing.T) {
	f := newMaterialFixture(t)

	material, err := f.svc.CreateMaterial(context.Background(), 7, &dto.CreateMaterialRequest{
		Title:       "Evacuation Guide",
		Description: "Classroom evacuation steps",
		Category:    "GUIDE",
	}, pdfUpload())
	require.NoError(t, err)

	assert.NotZero(t, material.ID)
	assert.Equal(t, int64(7), material.UploaderID)
	assert.Equal(t, "GUIDE", material.Category)
	assert.Contains(t, material.FileURL, "guide.pdf")
	require.NotNil(t, material.Description)
	assert.Equal(t, "Classroom evacuation steps", *material.Description)
}

func TestCreateMaterial_FileRequired(t *testing.T) {
	f := newMaterialFixture(t)

	_, err := f.svc.CreateMaterial(context.Background(), 7, &dto.CreateMaterialRequest{
		Title: "No File", Category: "GUIDE",
	}, nil)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestCreateMaterial_CleansUpOnFailure(t *testing.T) {
	f := newMaterialFixture(t)
	f.repo.createErr = errors.New("insert failed")

	_, err := f.svc.CreateMaterial(context.Background(), 7, &dto.CreateMaterialRequest{
		Title: "Doomed", Category: "GUIDE",
	}, pdfUpload())
	require.Error(t, err)

	// The stored file is removed when the insert fails
	require.Len(t, f.storage.deleted, 1)
	assert.Contains(t, f.storage.deleted[0], "guide.pdf")
}

func TestUpdateMaterial(t *testing.T) {
	f := newMaterialFixture(t)
	ctx := context.Background()

	created, err := f.svc.CreateMaterial(ctx, 7, &dto.CreateMaterialRequest{
		Title: "Evacuation Guide", Category: "GUIDE",
	}, pdfUpload())
	require.NoError(t, err)

	update := &dto.CreateMaterialRequest{Title: "Evacuation Guide v2", Category: "GUIDE"}

	// Another plain user may not touch the material
	_, err = f.svc.UpdateMaterial(ctx, 8, models.RoleUser, created.ID, update, nil)
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)

	// Metadata-only update keeps the stored file
	updated, err := f.svc.UpdateMaterial(ctx, 7, models.RoleUser, created.ID, update, nil)
	require.NoError(t, err)
	assert.Equal(t, "Evacuation Guide v2", updated.Title)
	assert.Equal(t, created.FileURL, updated.FileURL)
	assert.Empty(t, f.storage.deleted)

	// A new file replaces and removes the old one
	replaced, err := f.svc.UpdateMaterial(ctx, 99, models.RoleAdmin, created.ID, update,
		&multipart.FileHeader{Filename: "guide-v2.pdf"})
	require.NoError(t, err)
	assert.Contains(t, replaced.FileURL, "guide-v2.pdf")
	require.Len(t, f.storage.deleted, 1)
	assert.Equal(t, created.FileURL, f.storage.deleted[0])
}

func TestDeleteMaterial(t *testing.T) {
	f := newMaterialFixture(t)
	ctx := context.Background()

	created, err := f.svc.CreateMaterial(ctx, 7, &dto.CreateMaterialRequest{
		Title: "Evacuation Guide", Category: "GUIDE",
	}, pdfUpload())
	require.NoError(t, err)

	err = f.svc.DeleteMaterial(ctx, 8, models.RoleUser, created.ID)
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)

	require.NoError(t, f.svc.DeleteMaterial(ctx, 7, models.RoleUser, created.ID))

	_, err = f.svc.GetMaterial(ctx, created.ID)
	assert.ErrorIs(t, err, apperrors.ErrMaterialNotFound)
	assert.Contains(t, f.storage.deleted, created.FileURL)
}

func TestListMaterials_ByCategory(t *testing.T) {
	f := newMaterialFixture(t)
	ctx := context.Background()

	_, err := f.svc.CreateMaterial(ctx, 7, &dto.CreateMaterialRequest{Title: "A", Category: "GUIDE"}, pdfUpload())
	require.NoError(t, err)
	_, err = f.svc.CreateMaterial(ctx, 7, &dto.CreateMaterialRequest{Title: "B", Category: "VIDEO"}, pdfUpload())
	require.NoError(t, err)

	page, err := f.svc.ListMaterials(ctx, "GUIDE", 1, 10)
	require.NoError(t, err)
	materials, ok := page.Items.([]*models.Material)
	require.True(t, ok)
	require.Len(t, materials, 1)
	assert.Equal(t, "A", materials[0].Title)
	assert.Equal(t, 1, page.Pagination.TotalItems)
}
