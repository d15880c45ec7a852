package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/volatiletech/null/v8"
	"shopstack.backend/internal/domain/entities"
	domainerrors "shopstack.backend/internal/domain/errors"
)

func TestStoreRepository_CRUD(t *testing.T) {
	db := newTestDB(t)
	createStoreTable(t, db)
	repo := NewStoreRepository(db)
	ctx := context.Background()

	now := time.Now()
	store := &entities.Store{
		ID:          uuid.New(),
		Name:        "Acme Outdoors",
		Slug:        "acme-outdoors",
		Description: null.StringFrom("camping gear"),
		Email:       "owner@acme.dev",
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	require.NoError(t, repo.Create(ctx, store))

	byID, err := repo.GetByID(ctx, store.ID)
	require.NoError(t, err)
	require.Equal(t, "Acme Outdoors", byID.Name)
	require.Equal(t, "camping gear", byID.Description.String)

	bySlug, err := repo.GetBySlug(ctx, "acme-outdoors")
	require.NoError(t, err)
	require.Equal(t, store.ID, bySlug.ID)

	store.Name = "Acme Outdoors Co"
	require.NoError(t, repo.Update(ctx, store))
	updated, err := repo.GetByID(ctx, store.ID)
	require.NoError(t, err)
	require.Equal(t, "Acme Outdoors Co", updated.Name)

	require.NoError(t, repo.SetActive(ctx, store.ID, false))
	deactivated, err := repo.GetByID(ctx, store.ID)
	require.NoError(t, err)
	require.False(t, deactivated.IsActive)
}

func TestStoreRepository_SlugUnique(t *testing.T) {
	db := newTestDB(t)
	createStoreTable(t, db)
	repo := NewStoreRepository(db)
	ctx := context.Background()
	now := time.Now()

	a := &entities.Store{ID: uuid.New(), Name: "A", Slug: "same", Email: "a@x.dev", IsActive: true, CreatedAt: now, UpdatedAt: now}
	require.NoError(t, repo.Create(ctx, a))

	b := &entities.Store{ID: uuid.New(), Name: "B", Slug: "same", Email: "b@x.dev", IsActive: true, CreatedAt: now, UpdatedAt: now}
	require.Error(t, repo.Create(ctx, b))
}

func TestStoreRepository_NotFoundBranches(t *testing.T) {
	db := newTestDB(t)
	createStoreTable(t, db)
	repo := NewStoreRepository(db)
	ctx := context.Background()

	_, err := repo.GetByID(ctx, uuid.New())
	require.ErrorIs(t, err, domainerrors.ErrNotFound)

	_, err = repo.GetBySlug(ctx, "missing")
	require.ErrorIs(t, err, domainerrors.ErrNotFound)

	err = repo.Update(ctx, &entities.Store{ID: uuid.New(), Name: "x", Email: "x@x.dev"})
	require.ErrorIs(t, err, domainerrors.ErrNotFound)

	err = repo.SetActive(ctx, uuid.New(), false)
	require.ErrorIs(t, err, domainerrors.ErrNotFound)
}
