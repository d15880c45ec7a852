package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"shopstack.backend/internal/config"
	"shopstack.backend/internal/domain/entities"
)

type fakeRuntime struct {
	store       *entities.Store
	getErr      error
	registerErr error
	createErr   error

	lastKeyName   string
	lastRegister  *entities.RegisterStoreInput
	createdForIDs []uuid.UUID
}

func (f *fakeRuntime) GetStore(ctx context.Context, id uuid.UUID) (*entities.Store, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.store, nil
}

func (f *fakeRuntime) Register(ctx context.Context, input *entities.RegisterStoreInput) (*entities.RegisterStoreResponse, error) {
	if f.registerErr != nil {
		return nil, f.registerErr
	}
	f.lastRegister = input
	return &entities.RegisterStoreResponse{
		Store: &entities.Store{ID: uuid.New(), Name: input.Name, Slug: input.Slug},
		ApiKey: &entities.CreateApiKeyResponse{
			ID:     uuid.New(),
			Name:   "default",
			ApiKey: "sk_live_" + strings.Repeat("a", 64),
		},
	}, nil
}

func (f *fakeRuntime) CreateApiKey(ctx context.Context, storeID uuid.UUID, input *entities.CreateApiKeyInput) (*entities.CreateApiKeyResponse, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.lastKeyName = input.Name
	f.createdForIDs = append(f.createdForIDs, storeID)
	return &entities.CreateApiKeyResponse{
		ID:     uuid.New(),
		Name:   input.Name,
		ApiKey: "sk_live_" + strings.Repeat("b", 64),
	}, nil
}

func testDeps(rt storeKeyRuntime, out io.Writer) storeKeyDeps {
	return storeKeyDeps{
		loadEnv: func() error { return nil },
		loadCfg: func() *config.Config { return &config.Config{} },
		prepare: func(*config.Config) (storeKeyRuntime, io.Closer, error) {
			return rt, nopCloser{}, nil
		},
		now: func() time.Time { return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC) },
		out: out,
	}
}

func TestRunStoreKey_FlagValidation(t *testing.T) {
	var out bytes.Buffer
	err := runStoreKey(nil, testDeps(&fakeRuntime{}, &out))
	if err == nil {
		t.Fatal("expected error when no flags given")
	}

	err = runStoreKey([]string{"--name", "Acme"}, testDeps(&fakeRuntime{}, &out))
	if err == nil {
		t.Fatal("expected error when slug and email are missing")
	}
}

func TestRunStoreKey_IssueKeyForExistingStore(t *testing.T) {
	storeID := uuid.New()
	rt := &fakeRuntime{store: &entities.Store{ID: storeID, Name: "Acme", IsActive: true}}
	var out bytes.Buffer

	err := runStoreKey([]string{"--store-id", storeID.String(), "--key-name", "ci"}, testDeps(rt, &out))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if rt.lastKeyName != "ci" {
		t.Fatalf("expected key name ci, got %s", rt.lastKeyName)
	}
	if len(rt.createdForIDs) != 1 || rt.createdForIDs[0] != storeID {
		t.Fatalf("key issued for wrong store: %v", rt.createdForIDs)
	}
	if !strings.Contains(out.String(), "API_KEY=sk_live_") {
		t.Fatalf("plaintext key missing from output: %s", out.String())
	}
}

func TestRunStoreKey_DefaultKeyName(t *testing.T) {
	storeID := uuid.New()
	rt := &fakeRuntime{store: &entities.Store{ID: storeID}}
	var out bytes.Buffer

	if err := runStoreKey([]string{"--store-id", storeID.String()}, testDeps(rt, &out)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rt.lastKeyName != "ops-20250601-120000" {
		t.Fatalf("unexpected default key name: %s", rt.lastKeyName)
	}
}

func TestRunStoreKey_InvalidStoreID(t *testing.T) {
	var out bytes.Buffer
	err := runStoreKey([]string{"--store-id", "not-a-uuid"}, testDeps(&fakeRuntime{}, &out))
	if err == nil {
		t.Fatal("expected parse error")
	}
}

func TestRunStoreKey_StoreLookupError(t *testing.T) {
	rt := &fakeRuntime{getErr: errors.New("not found")}
	var out bytes.Buffer
	err := runStoreKey([]string{"--store-id", uuid.New().String()}, testDeps(rt, &out))
	if err == nil || !strings.Contains(err.Error(), "failed to load store") {
		t.Fatalf("expected store lookup error, got %v", err)
	}
}

func TestRunStoreKey_CreateStore(t *testing.T) {
	rt := &fakeRuntime{}
	var out bytes.Buffer

	err := runStoreKey([]string{"--name", "Acme", "--slug", "acme", "--email", "o@acme.dev"}, testDeps(rt, &out))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rt.lastRegister == nil || rt.lastRegister.Slug != "acme" {
		t.Fatalf("register input not passed through: %+v", rt.lastRegister)
	}
	for _, want := range []string{"store_id=", "slug=acme", "API_KEY=sk_live_"} {
		if !strings.Contains(out.String(), want) {
			t.Fatalf("output missing %q: %s", want, out.String())
		}
	}
}

func TestRunStoreKey_RegisterError(t *testing.T) {
	rt := &fakeRuntime{registerErr: fmt.Errorf("slug taken")}
	var out bytes.Buffer
	err := runStoreKey([]string{"--name", "Acme", "--slug", "acme", "--email", "o@acme.dev"}, testDeps(rt, &out))
	if err == nil || !strings.Contains(err.Error(), "failed creating store") {
		t.Fatalf("expected register error, got %v", err)
	}
}
