// Package store persists the POS ledger collections as keyed JSON snapshots.
package store

import (
	"context"
	"errors"
	"log"
	"reflect"
)

// Storage keys, one per top-level collection. They match the keys used by
// the original deployment's stored data.
const (
	KeySales      = "deli_sales"
	KeyExpenses   = "deli_expenses"
	KeyProducts   = "deli_products"
	KeyInventory  = "deli_inventory"
	KeyStockLogs  = "deli_stock_logs"
	KeyGlobalCash = "deli_global_cash"
	KeyDrafts     = "deli_drafts"
)

// ErrNotFound is returned by Load when a key has never been saved.
var ErrNotFound = errors.New("key not found")

// Store is a persistent key-value snapshot store. Save overwrites the whole
// value under a key; Load decodes it into dest.
type Store interface {
	Load(ctx context.Context, key string, dest any) error
	Save(ctx context.Context, key string, value any) error
	// Reset wipes every stored key. Used by the factory-reset path.
	Reset(ctx context.Context) error
}

// LoadOr loads a key into dest, leaving dest at its caller-provided fallback
// value when the key is missing or the stored value cannot be decoded.
// Decoding is staged through a fresh value and assigned only on success, so
// a snapshot that is valid JSON but fails mid-decode (a bad timestamp on one
// row, say) cannot leak partial rows into dest. Decode failures are logged
// and never surfaced further: a corrupt snapshot must not prevent the
// application from starting. dest must be a non-nil pointer.
func LoadOr(ctx context.Context, s Store, key string, dest any) {
	target := reflect.ValueOf(dest).Elem()
	staged := reflect.New(target.Type())

	err := s.Load(ctx, key, staged.Interface())
	if err == nil {
		target.Set(staged.Elem())
		return
	}
	if errors.Is(err, ErrNotFound) {
		return
	}
	log.Printf("store: falling back to default for %s: %v", key, err)
}
