package app

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"deli-pos/internal/core"
)

// ApplicationService is the single entry point the adapters talk to. It
// owns the in-memory state, runs the pure engines in core, and persists
// each slice of state after every mutation.
type ApplicationService interface {
	// Read accessors.
	StockLevels() core.StockSnapshot
	CashBalance() decimal.Decimal
	ListSales() []core.Sale
	ListExpenses() []core.Expense
	ListProducts() []core.Product
	ListInventory() []core.InventoryItem
	ListStockLogs() []core.StockLog
	ListDrafts() []core.SaleDraft
	ProductionRules() []core.KitchenProductionRule

	// Sales lifecycle.
	SaveSale(ctx context.Context, req SaveSaleRequest) (*SaleResult, error)
	ConfirmPayment(ctx context.Context, saleID string, method core.PaymentMethod, discount decimal.Decimal) (*SaleResult, error)
	ToggleDelivered(ctx context.Context, saleID string) error
	MinimizeSale(ctx context.Context, draft core.SaleDraft) error
	ResumeDraft(ctx context.Context, index int) (*ResumedDraft, error)

	// Money and stock.
	RecordTransaction(ctx context.Context, req TransactionRequest) (*TransactionResult, error)
	ConvertCuts(ctx context.Context, pieces int) error
	RunProduction(ctx context.Context, req ProductionRequest) (*ProductionResult, error)
	RescheduleStockLog(ctx context.Context, logID string, newTimestamp time.Time) error

	// Catalog management.
	UpdateProducts(ctx context.Context, products []core.Product) error
	UpdateInventory(ctx context.Context, items []core.InventoryItem) error

	// Reporting and AI.
	GetReport(ctx context.Context, rng core.ReportRange, date time.Time) (*core.Report, error)
	InterpretCommand(ctx context.Context, text string) (*core.ParsedCommand, error)
	ExecuteCommand(ctx context.Context, cmd core.ParsedCommand) (*CommandResult, error)
	AnalyzeBusinessDay(ctx context.Context) (string, error)

	// Danger zone.
	ResetAllData(ctx context.Context) error
}
