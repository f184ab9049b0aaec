package app

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"deli-pos/internal/core"
	"deli-pos/internal/store"
)

func newClockedService(t *testing.T, at time.Time) *appService {
	t.Helper()
	svc := NewAppService(context.Background(), store.NewMemoryStore(), nil).(*appService)
	svc.now = func() time.Time { return at }
	return svc
}

func cutItem(qty int) core.SaleItem {
	return core.SaleItem{
		ID:          uuid.NewString(),
		ProductID:   "e_corte",
		ProductName: "Corte",
		Quantity:    qty,
		UnitPrice:   decimal.NewFromInt(3),
		Total:       decimal.NewFromInt(3).Mul(decimal.NewFromInt(int64(qty))),
		StockUnit:   core.StockCuts,
	}
}

func TestStockLevels_RollsOverAtMidnight(t *testing.T) {
	ctx := context.Background()
	evening := time.Date(2026, 3, 10, 18, 0, 0, 0, time.Local)
	svc := newClockedService(t, evening)

	prod, err := svc.RunProduction(ctx, ProductionRequest{RuleName: "Freír Pollos", Multiplier: 2})
	if err != nil {
		t.Fatalf("production: %v", err)
	}
	if prod.Stock.ChickenPieces.String() != "16" {
		t.Fatalf("evening stock = %s, want 16", prod.Stock.ChickenPieces)
	}

	// The session idles past midnight with no further mutations. Yesterday's
	// fryer run no longer counts toward today's projection.
	nextMorning := evening.Add(10 * time.Hour)
	svc.now = func() time.Time { return nextMorning }

	if got := svc.StockLevels().ChickenPieces; !got.IsZero() {
		t.Fatalf("stock after midnight = %s, want 0", got)
	}
}

func TestSaveSale_AutoConvertUsesCurrentDayCuts(t *testing.T) {
	ctx := context.Background()
	evening := time.Date(2026, 3, 10, 18, 0, 0, 0, time.Local)
	svc := newClockedService(t, evening)

	if _, err := svc.RunProduction(ctx, ProductionRequest{RuleName: "Freír Pollos", Multiplier: 1}); err != nil {
		t.Fatalf("production: %v", err)
	}

	// One cut sold in the evening converts one piece, leaving two cuts over.
	first, err := svc.SaveSale(ctx, SaveSaleRequest{Items: []core.SaleItem{cutItem(1)}, OrderType: core.DineIn})
	if err != nil {
		t.Fatalf("evening sale: %v", err)
	}
	if first.ConvertedPieces != 1 {
		t.Fatalf("evening conversion = %d, want 1", first.ConvertedPieces)
	}
	if first.Stock.CutPortions.String() != "2" {
		t.Fatalf("evening cuts = %s, want 2", first.Stock.CutPortions)
	}

	// After midnight yesterday's leftover cuts are gone. The deficit check
	// must see today's empty pool, not the cached evening snapshot.
	svc.now = func() time.Time { return evening.Add(10 * time.Hour) }

	second, err := svc.SaveSale(ctx, SaveSaleRequest{Items: []core.SaleItem{cutItem(1)}, OrderType: core.DineIn})
	if err != nil {
		t.Fatalf("morning sale: %v", err)
	}
	if second.ConvertedPieces != 1 {
		t.Fatalf("morning conversion = %d, want 1", second.ConvertedPieces)
	}
	if second.Stock.CutPortions.String() != "2" {
		t.Fatalf("morning cuts = %s, want 2", second.Stock.CutPortions)
	}
}
