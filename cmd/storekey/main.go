package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"shopstack.backend/internal/config"
	"shopstack.backend/internal/domain/entities"
	"shopstack.backend/internal/infrastructure/repositories"
	"shopstack.backend/internal/usecases"
)

var openStoreKeyDB = func(dsn string) (*gorm.DB, error) {
	return gorm.Open(postgres.New(postgres.Config{DSN: dsn, PreferSimpleProtocol: true}), &gorm.Config{PrepareStmt: false})
}

var openStoreKeySQLDB = func(db *gorm.DB) (io.Closer, error) {
	return db.DB()
}

// storeKeyRuntime is the slice of the application the CLI needs
type storeKeyRuntime interface {
	GetStore(ctx context.Context, id uuid.UUID) (*entities.Store, error)
	Register(ctx context.Context, input *entities.RegisterStoreInput) (*entities.RegisterStoreResponse, error)
	CreateApiKey(ctx context.Context, storeID uuid.UUID, input *entities.CreateApiKeyInput) (*entities.CreateApiKeyResponse, error)
}

type storeKeyDeps struct {
	loadEnv func() error
	loadCfg func() *config.Config
	prepare func(cfg *config.Config) (storeKeyRuntime, io.Closer, error)
	now     func() time.Time
	out     io.Writer
}

type storeKeyRuntimeImpl struct {
	storeCase  *usecases.StoreUsecase
	apiKeyCase *usecases.ApiKeyUsecase
}

func (r storeKeyRuntimeImpl) GetStore(ctx context.Context, id uuid.UUID) (*entities.Store, error) {
	return r.storeCase.GetStore(ctx, id)
}

func (r storeKeyRuntimeImpl) Register(ctx context.Context, input *entities.RegisterStoreInput) (*entities.RegisterStoreResponse, error) {
	return r.storeCase.Register(ctx, input)
}

func (r storeKeyRuntimeImpl) CreateApiKey(ctx context.Context, storeID uuid.UUID, input *entities.CreateApiKeyInput) (*entities.CreateApiKeyResponse, error) {
	return r.apiKeyCase.CreateApiKey(ctx, storeID, input)
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

func defaultStoreKeyDeps() storeKeyDeps {
	return storeKeyDeps{
		loadEnv: func() error { return godotenv.Load() },
		loadCfg: config.Load,
		prepare: func(cfg *config.Config) (storeKeyRuntime, io.Closer, error) {
			dsn := cfg.Database.URL()
			db, err := openStoreKeyDB(dsn)
			if err != nil {
				return nil, nil, fmt.Errorf("failed to connect db: %w", err)
			}

			sqlDB, err := openStoreKeySQLDB(db)
			if err != nil {
				return nil, nil, fmt.Errorf("failed to init sql db: %w", err)
			}

			storeRepo := repositories.NewStoreRepository(db)
			apiKeyRepo := repositories.NewApiKeyRepository(db)
			apiKeyUsecase := usecases.NewApiKeyUsecase(apiKeyRepo)
			storeUsecase := usecases.NewStoreUsecase(storeRepo, apiKeyUsecase)
			return storeKeyRuntimeImpl{
				storeCase:  storeUsecase,
				apiKeyCase: apiKeyUsecase,
			}, sqlDB, nil
		},
		now: time.Now,
		out: os.Stdout,
	}
}

func resolveKeyName(input string, now time.Time) string {
	if input != "" {
		return input
	}
	return fmt.Sprintf("ops-%s", now.Format("20060102-150405"))
}

func runStoreKey(args []string, deps storeKeyDeps) error {
	if deps.loadEnv == nil {
		deps.loadEnv = func() error { return godotenv.Load() }
	}
	if deps.loadCfg == nil {
		deps.loadCfg = config.Load
	}
	if deps.now == nil {
		deps.now = time.Now
	}
	if deps.prepare == nil {
		def := defaultStoreKeyDeps()
		deps.prepare = def.prepare
	}
	if deps.out == nil {
		deps.out = os.Stdout
	}

	fs := flag.NewFlagSet("storekey", flag.ContinueOnError)
	storeIDFlag := fs.String("store-id", "", "existing store UUID; issues a key for it")
	nameFlag := fs.String("name", "", "new store name (with --slug and --email)")
	slugFlag := fs.String("slug", "", "new store slug")
	emailFlag := fs.String("email", "", "new store contact email")
	keyNameFlag := fs.String("key-name", "", "api key display name (optional)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *storeIDFlag == "" && (*nameFlag == "" || *slugFlag == "" || *emailFlag == "") {
		return fmt.Errorf("either --store-id or all of --name/--slug/--email are required")
	}

	if err := deps.loadEnv(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := deps.loadCfg()
	runtime, closer, err := deps.prepare(cfg)
	if err != nil {
		return err
	}
	if closer == nil {
		closer = nopCloser{}
	}
	defer closer.Close()

	ctx := context.Background()

	// Issue an additional key for an existing store
	if *storeIDFlag != "" {
		storeID, err := uuid.Parse(*storeIDFlag)
		if err != nil {
			return fmt.Errorf("invalid --store-id: %w", err)
		}

		store, err := runtime.GetStore(ctx, storeID)
		if err != nil {
			return fmt.Errorf("failed to load store %s: %w", storeID, err)
		}

		resp, err := runtime.CreateApiKey(ctx, store.ID, &entities.CreateApiKeyInput{
			Name: resolveKeyName(*keyNameFlag, deps.now()),
		})
		if err != nil {
			return fmt.Errorf("failed creating api key: %w", err)
		}

		_, _ = fmt.Fprintln(deps.out, "Issued API key")
		_, _ = fmt.Fprintf(deps.out, "store_id=%s\n", store.ID.String())
		_, _ = fmt.Fprintf(deps.out, "api_key_id=%s\n", resp.ID.String())
		_, _ = fmt.Fprintf(deps.out, "name=%s\n", resp.Name)
		_, _ = fmt.Fprintf(deps.out, "API_KEY=%s\n", resp.ApiKey)
		return nil
	}

	// Create a store; its first key is issued as part of registration
	resp, err := runtime.Register(ctx, &entities.RegisterStoreInput{
		Name:  *nameFlag,
		Slug:  *slugFlag,
		Email: *emailFlag,
	})
	if err != nil {
		return fmt.Errorf("failed creating store: %w", err)
	}

	_, _ = fmt.Fprintln(deps.out, "Created store with first API key")
	_, _ = fmt.Fprintf(deps.out, "store_id=%s\n", resp.Store.ID.String())
	_, _ = fmt.Fprintf(deps.out, "slug=%s\n", resp.Store.Slug)
	_, _ = fmt.Fprintf(deps.out, "api_key_id=%s\n", resp.ApiKey.ID.String())
	_, _ = fmt.Fprintf(deps.out, "API_KEY=%s\n", resp.ApiKey.ApiKey)
	return nil
}

func main() {
	if err := runStoreKey(os.Args[1:], defaultStoreKeyDeps()); err != nil {
		log.Fatal(err)
	}
}
