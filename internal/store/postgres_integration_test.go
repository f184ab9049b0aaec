package store_test

import (
	"context"
	"os"
	"testing"

	"deli-pos/internal/store"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
)

func setupTestStore(t *testing.T) *store.PostgresStore {
	_ = godotenv.Load("../../.env")

	// Use a dedicated TEST database to avoid wiping the live app database.
	// Set TEST_DATABASE_URL in your .env or environment to run integration tests.
	dbURL := os.Getenv("TEST_DATABASE_URL")
	if dbURL == "" {
		t.Skip("TEST_DATABASE_URL not set — skipping integration test to protect live database")
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, dbURL)
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}
	t.Cleanup(pool.Close)

	st := store.NewPostgresStore(pool)
	if err := st.EnsureSchema(ctx); err != nil {
		t.Fatalf("Failed to ensure schema: %v", err)
	}
	if err := st.Reset(ctx); err != nil {
		t.Fatalf("Failed to clean test table: %v", err)
	}
	return st
}

func TestPostgresStore_RoundTrip(t *testing.T) {
	st := setupTestStore(t)
	ctx := context.Background()

	type row struct {
		Name  string `json:"name"`
		Total string `json:"total"`
	}
	saved := []row{{Name: "Pollo Broaster", Total: "30"}}

	if err := st.Save(ctx, store.KeySales, saved); err != nil {
		t.Fatalf("save: %v", err)
	}

	var loaded []row
	if err := st.Load(ctx, store.KeySales, &loaded); err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(loaded) != 1 || loaded[0].Name != "Pollo Broaster" {
		t.Errorf("loaded %+v", loaded)
	}
}

func TestPostgresStore_SaveOverwrites(t *testing.T) {
	st := setupTestStore(t)
	ctx := context.Background()

	if err := st.Save(ctx, store.KeyGlobalCash, "100"); err != nil {
		t.Fatalf("first save: %v", err)
	}
	if err := st.Save(ctx, store.KeyGlobalCash, "250.75"); err != nil {
		t.Fatalf("second save: %v", err)
	}

	var cash string
	if err := st.Load(ctx, store.KeyGlobalCash, &cash); err != nil {
		t.Fatalf("load: %v", err)
	}
	if cash != "250.75" {
		t.Errorf("cash = %q, want 250.75", cash)
	}
}

func TestPostgresStore_MissingKey(t *testing.T) {
	st := setupTestStore(t)

	var dest []string
	if err := st.Load(context.Background(), "deli_never_saved", &dest); err != store.ErrNotFound {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestPostgresStore_Reset(t *testing.T) {
	st := setupTestStore(t)
	ctx := context.Background()

	if err := st.Save(ctx, store.KeyDrafts, []string{"d1"}); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := st.Reset(ctx); err != nil {
		t.Fatalf("reset: %v", err)
	}

	var dest []string
	if err := st.Load(ctx, store.KeyDrafts, &dest); err != store.ErrNotFound {
		t.Errorf("expected ErrNotFound after reset, got %v", err)
	}
}
