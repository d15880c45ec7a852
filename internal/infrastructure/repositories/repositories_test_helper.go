package repositories

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", t.Name(), time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err, "open sqlite")
	return db
}

func mustExec(t *testing.T, db *gorm.DB, q string, args ...interface{}) {
	t.Helper()
	require.NoError(t, db.Exec(q, args...).Error, "exec failed: query=%s", q)
}

func createStoreTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE stores (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		slug TEXT UNIQUE NOT NULL,
		description TEXT,
		email TEXT NOT NULL,
		is_active BOOLEAN NOT NULL DEFAULT 1,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createAPIKeyTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE api_keys (
		id TEXT PRIMARY KEY,
		store_id TEXT NOT NULL,
		name TEXT NOT NULL,
		key_prefix TEXT NOT NULL,
		key_hash TEXT NOT NULL UNIQUE,
		is_active BOOLEAN NOT NULL DEFAULT 1,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createProductTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE products (
		id TEXT PRIMARY KEY,
		store_id TEXT NOT NULL,
		category_id TEXT,
		name TEXT NOT NULL,
		slug TEXT NOT NULL,
		description TEXT,
		price_cents INTEGER NOT NULL,
		currency TEXT NOT NULL DEFAULT 'USD',
		stock INTEGER NOT NULL DEFAULT 0,
		is_published BOOLEAN NOT NULL DEFAULT 0,
		created_at DATETIME,
		updated_at DATETIME,
		UNIQUE(store_id, slug)
	);`)
}

func createCategoryTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE categories (
		id TEXT PRIMARY KEY,
		store_id TEXT NOT NULL,
		name TEXT NOT NULL,
		slug TEXT NOT NULL,
		description TEXT,
		created_at DATETIME,
		updated_at DATETIME,
		UNIQUE(store_id, slug)
	);`)
}

func createReviewTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE reviews (
		id TEXT PRIMARY KEY,
		store_id TEXT NOT NULL,
		product_id TEXT NOT NULL,
		customer_id TEXT,
		author TEXT NOT NULL,
		rating INTEGER NOT NULL,
		body TEXT,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createCustomerTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE customers (
		id TEXT PRIMARY KEY,
		store_id TEXT NOT NULL,
		email TEXT NOT NULL,
		name TEXT,
		created_at DATETIME,
		updated_at DATETIME,
		UNIQUE(store_id, email)
	);`)
}

func createNewsletterTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE newsletter_subscriptions (
		id TEXT PRIMARY KEY,
		store_id TEXT NOT NULL,
		email TEXT NOT NULL,
		created_at DATETIME,
		UNIQUE(store_id, email)
	);`)
}

func seedStore(t *testing.T, db *gorm.DB, active bool) uuid.UUID {
	t.Helper()
	id := uuid.New()
	now := time.Now()
	mustExec(t, db, `INSERT INTO stores(id,name,slug,email,is_active,created_at,updated_at) VALUES (?,?,?,?,?,?,?)`,
		id.String(), "Store "+id.String()[:8], "store-"+id.String()[:8], "owner@shopstack.dev", active, now, now)
	return id
}
