package usecases

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"shopstack.backend/internal/domain/entities"
	domainerrors "shopstack.backend/internal/domain/errors"
	"shopstack.backend/internal/domain/repositories"
	"shopstack.backend/pkg/apikey"
	"shopstack.backend/pkg/utils"
)

const bearerScheme = "Bearer "

// RejectReason classifies why a credential was turned away. Malformed and
// unknown credentials surface the same 401 to the caller; the distinction
// exists for audit logs only.
type RejectReason int

const (
	ReasonNone RejectReason = iota
	ReasonMissing
	ReasonMalformed
	ReasonUnknown
	ReasonInactive
)

func (r RejectReason) String() string {
	switch r {
	case ReasonNone:
		return "none"
	case ReasonMissing:
		return "credential_missing"
	case ReasonMalformed:
		return "malformed_credential"
	case ReasonUnknown:
		return "invalid_credential"
	case ReasonInactive:
		return "credential_inactive"
	default:
		return "unknown"
	}
}

// Decision is the tagged outcome of a validation pass: either Identity is
// set and Reason is ReasonNone, or Identity is nil and Reason says why.
type Decision struct {
	Identity *entities.Identity
	Reason   RejectReason
}

// Accepted reports whether the credential passed every check
func (d Decision) Accepted() bool {
	return d.Reason == ReasonNone && d.Identity != nil
}

// AppError maps the reject reason to the client-facing error. Only three
// external codes exist; malformed and unknown share INVALID_API_KEY.
func (d Decision) AppError() *domainerrors.AppError {
	switch d.Reason {
	case ReasonMissing:
		return domainerrors.Unauthorized("API key is required").WithCode(domainerrors.CodeApiKeyRequired)
	case ReasonInactive:
		return domainerrors.Unauthorized("API key is inactive").WithCode(domainerrors.CodeApiKeyInactive)
	default:
		return domainerrors.Unauthorized("invalid API key").WithCode(domainerrors.CodeInvalidApiKey)
	}
}

// ApiKeyUsecase issues, lists, deactivates and validates store credentials
type ApiKeyUsecase struct {
	apiKeyRepo repositories.ApiKeyRepository
}

// NewApiKeyUsecase creates a new API key usecase
func NewApiKeyUsecase(apiKeyRepo repositories.ApiKeyRepository) *ApiKeyUsecase {
	return &ApiKeyUsecase{apiKeyRepo: apiKeyRepo}
}

// CreateApiKey generates a credential for the store and persists its hash.
// The plaintext is part of the response and is never retrievable again.
func (u *ApiKeyUsecase) CreateApiKey(ctx context.Context, storeID uuid.UUID, input *entities.CreateApiKeyInput) (*entities.CreateApiKeyResponse, error) {
	key, err := apikey.Generate()
	if err != nil {
		return nil, domainerrors.InternalServerError("failed to generate key")
	}

	now := time.Now()
	entity := &entities.ApiKey{
		ID:        utils.GenerateUUIDv7(),
		StoreID:   storeID,
		Name:      input.Name,
		KeyPrefix: apikey.PrefixOf(key),
		KeyHash:   apikey.Hash(key),
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := u.apiKeyRepo.Create(ctx, entity); err != nil {
		return nil, err
	}

	return &entities.CreateApiKeyResponse{
		ID:        entity.ID,
		Name:      entity.Name,
		KeyPrefix: entity.KeyPrefix,
		ApiKey:    key, // shown once
		CreatedAt: entity.CreatedAt,
	}, nil
}

// Validate runs the full accept/reject decision for a raw Authorization
// header value. The pass is stateless and deterministic:
//
//  1. extract the credential ("Bearer <key>" and bare "<key>" are equivalent)
//  2. format check, before any storage access
//  3. single hash lookup joined with the owning store
//  4. key-active check, then store-active check
//
// A storage failure is returned as the error value and is never converted
// into a rejection; callers must treat it as an infrastructure fault.
func (u *ApiKeyUsecase) Validate(ctx context.Context, rawHeaderValue string) (Decision, error) {
	raw := strings.TrimSpace(rawHeaderValue)
	if strings.HasPrefix(raw, bearerScheme) {
		raw = strings.TrimSpace(strings.TrimPrefix(raw, bearerScheme))
	}
	if raw == "" {
		return Decision{Reason: ReasonMissing}, nil
	}

	if !apikey.ValidFormat(raw) {
		return Decision{Reason: ReasonMalformed}, nil
	}

	key, err := u.apiKeyRepo.FindByKeyHash(ctx, apikey.Hash(raw))
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return Decision{Reason: ReasonUnknown}, nil
		}
		return Decision{}, err
	}

	if !key.IsActive {
		return Decision{Reason: ReasonInactive}, nil
	}
	if key.Store == nil || !key.Store.IsActive {
		// store-level deactivation reads the same as key-level to the caller
		return Decision{Reason: ReasonInactive}, nil
	}

	return Decision{
		Identity: &entities.Identity{
			StoreID:    key.StoreID,
			StoreName:  key.Store.Name,
			ApiKeyID:   key.ID,
			ApiKeyName: key.Name,
		},
	}, nil
}

// ListApiKeys returns the caller's key metadata; hashes and plaintext never
// leave this layer
func (u *ApiKeyUsecase) ListApiKeys(ctx context.Context, storeID uuid.UUID) ([]*entities.ApiKey, error) {
	keys, err := u.apiKeyRepo.FindByStoreID(ctx, storeID)
	if err != nil {
		return nil, err
	}
	for _, k := range keys {
		k.KeyHash = ""
	}
	return keys, nil
}

// DeactivateApiKey flips a key inactive. A key owned by another store is
// reported as not found. Repeating the call on an inactive key succeeds.
func (u *ApiKeyUsecase) DeactivateApiKey(ctx context.Context, storeID, id uuid.UUID) error {
	if err := u.apiKeyRepo.SetActive(ctx, id, storeID, false); err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return domainerrors.NotFound("API key not found").WithCode(domainerrors.CodeApiKeyNotFound)
		}
		return err
	}
	return nil
}
