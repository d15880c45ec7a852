package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"shopstack.backend/internal/domain/entities"
	domainerrors "shopstack.backend/internal/domain/errors"
)

func TestApiKeyRepository_CreateAndFinders(t *testing.T) {
	db := newTestDB(t)
	createStoreTable(t, db)
	createAPIKeyTable(t, db)
	repo := NewApiKeyRepository(db)
	ctx := context.Background()

	storeID := seedStore(t, db, true)
	now := time.Now()

	ak := &entities.ApiKey{
		ID:        uuid.New(),
		StoreID:   storeID,
		Name:      "default",
		KeyPrefix: "sk_live_a1b2",
		KeyHash:   "hash_1",
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	require.NoError(t, repo.Create(ctx, ak))

	byHash, err := repo.FindByKeyHash(ctx, "hash_1")
	require.NoError(t, err)
	require.Equal(t, ak.ID, byHash.ID)
	require.NotNil(t, byHash.Store, "store must be joined on hash lookup")
	require.Equal(t, storeID, byHash.Store.ID)
	require.True(t, byHash.Store.IsActive)

	byStore, err := repo.FindByStoreID(ctx, storeID)
	require.NoError(t, err)
	require.Len(t, byStore, 1)
	require.Equal(t, "default", byStore[0].Name)
}

func TestApiKeyRepository_UniqueHash(t *testing.T) {
	db := newTestDB(t)
	createStoreTable(t, db)
	createAPIKeyTable(t, db)
	repo := NewApiKeyRepository(db)
	ctx := context.Background()

	storeID := seedStore(t, db, true)
	now := time.Now()

	first := &entities.ApiKey{ID: uuid.New(), StoreID: storeID, Name: "a", KeyPrefix: "sk_live_0000", KeyHash: "dup", IsActive: true, CreatedAt: now, UpdatedAt: now}
	require.NoError(t, repo.Create(ctx, first))

	second := &entities.ApiKey{ID: uuid.New(), StoreID: storeID, Name: "b", KeyPrefix: "sk_live_1111", KeyHash: "dup", IsActive: true, CreatedAt: now, UpdatedAt: now}
	require.Error(t, repo.Create(ctx, second), "key_hash must be unique")
}

func TestApiKeyRepository_FindByStoreID_ScopedToStore(t *testing.T) {
	db := newTestDB(t)
	createStoreTable(t, db)
	createAPIKeyTable(t, db)
	repo := NewApiKeyRepository(db)
	ctx := context.Background()

	storeA := seedStore(t, db, true)
	storeB := seedStore(t, db, true)
	now := time.Now()

	// both stores hold a key named "k1"; names carry no uniqueness
	keyA := &entities.ApiKey{ID: uuid.New(), StoreID: storeA, Name: "k1", KeyPrefix: "sk_live_aaaa", KeyHash: "hash_a", IsActive: true, CreatedAt: now, UpdatedAt: now}
	keyB := &entities.ApiKey{ID: uuid.New(), StoreID: storeB, Name: "k1", KeyPrefix: "sk_live_bbbb", KeyHash: "hash_b", IsActive: true, CreatedAt: now, UpdatedAt: now}
	require.NoError(t, repo.Create(ctx, keyA))
	require.NoError(t, repo.Create(ctx, keyB))

	forA, err := repo.FindByStoreID(ctx, storeA)
	require.NoError(t, err)
	require.Len(t, forA, 1)
	require.Equal(t, keyA.ID, forA[0].ID)
	require.Equal(t, storeA, forA[0].StoreID)

	forB, err := repo.FindByStoreID(ctx, storeB)
	require.NoError(t, err)
	require.Len(t, forB, 1)
	require.Equal(t, keyB.ID, forB[0].ID)
}

func TestApiKeyRepository_SetActive(t *testing.T) {
	db := newTestDB(t)
	createStoreTable(t, db)
	createAPIKeyTable(t, db)
	repo := NewApiKeyRepository(db)
	ctx := context.Background()

	storeID := seedStore(t, db, true)
	otherStoreID := seedStore(t, db, true)
	now := time.Now()

	ak := &entities.ApiKey{ID: uuid.New(), StoreID: storeID, Name: "k1", KeyPrefix: "sk_live_2222", KeyHash: "hash_2", IsActive: true, CreatedAt: now, UpdatedAt: now}
	require.NoError(t, repo.Create(ctx, ak))

	// cross-tenant id surfaces as not found
	err := repo.SetActive(ctx, ak.ID, otherStoreID, false)
	require.ErrorIs(t, err, domainerrors.ErrNotFound)

	require.NoError(t, repo.SetActive(ctx, ak.ID, storeID, false))
	byHash, err := repo.FindByKeyHash(ctx, "hash_2")
	require.NoError(t, err)
	require.False(t, byHash.IsActive)

	// deactivating an already-inactive key is a success
	require.NoError(t, repo.SetActive(ctx, ak.ID, storeID, false))

	// unknown id
	err = repo.SetActive(ctx, uuid.New(), storeID, false)
	require.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestApiKeyRepository_NotFoundBranches(t *testing.T) {
	db := newTestDB(t)
	createStoreTable(t, db)
	createAPIKeyTable(t, db)
	repo := NewApiKeyRepository(db)
	ctx := context.Background()

	_, err := repo.FindByKeyHash(ctx, "missing")
	require.ErrorIs(t, err, domainerrors.ErrNotFound)

	keys, err := repo.FindByStoreID(ctx, uuid.New())
	require.NoError(t, err)
	require.Empty(t, keys)
}
