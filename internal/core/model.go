package core

import (
	"time"

	"github.com/shopspring/decimal"
)

// One chicken yields 8 pieces; one converted piece yields 3 cut portions.
const (
	PiecesPerChicken = 8
	CutsPerPiece     = 3
)

// Well-known inventory IDs consumed implicitly on every sale.
// These match the keys used by the stored data, so they are stable identifiers.
const (
	InvNapkins    = "inv_servilletas"
	InvPlateLarge = "inv_plato_grande"
	InvPlateSmall = "inv_plato_chico"
)

// StockUnit tags what a product draws from when sold: whole fried pieces or
// cut portions. The two pools are tracked separately by the stock projection.
type StockUnit string

const (
	StockPieces StockUnit = "PIECES"
	StockCuts   StockUnit = "CUTS"
)

// PlateSize selects which disposable-plate inventory bucket a takeaway
// sale of this product consumes.
type PlateSize string

const (
	PlateNone  PlateSize = "none"
	PlateSmall PlateSize = "small"
	PlateLarge PlateSize = "large"
)

type OrderType string

const (
	DineIn   OrderType = "DINE_IN"
	Takeaway OrderType = "TAKEAWAY"
)

type SaleStatus string

const (
	StatusPendiente SaleStatus = "PENDIENTE"
	StatusPagado    SaleStatus = "PAGADO"
)

type PaymentMethod string

const (
	PaymentCash PaymentMethod = "EFECTIVO"
	PaymentQR   PaymentMethod = "QR"
)

// RecipeLine is one ingredient draw: quantity of an inventory item consumed
// per unit of the product (or per production-rule multiplier unit).
type RecipeLine struct {
	InventoryID string          `json:"inventoryId"`
	Quantity    decimal.Decimal `json:"quantity"`
}

// ProductVariant is a sellable variation of a product with its own price and
// piece cost. A nil StockCost falls back to the parent product's.
type ProductVariant struct {
	ID        string           `json:"id"`
	Name      string           `json:"name"`
	Price     decimal.Decimal  `json:"price"`
	StockCost *decimal.Decimal `json:"stockCost,omitempty"`
}

// SideOption is a side dish attachable to a product. Its recipe is deducted
// in addition to the product's base recipe when selected.
type SideOption struct {
	ID     string       `json:"id"`
	Name   string       `json:"name"`
	Recipe []RecipeLine `json:"recipe,omitempty"`
}

// Product is a menu entry. Owned by the menu configuration editor; the core
// only reads it, except through explicit menu-update operations.
type Product struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Price       decimal.Decimal  `json:"price"`
	StockUnit   StockUnit        `json:"stockUnit,omitempty"` // empty means PIECES
	StockCost   decimal.Decimal  `json:"stockCost"`           // pieces consumed per unit sold
	Recipe      []RecipeLine     `json:"recipe,omitempty"`
	Variants    []ProductVariant `json:"variants,omitempty"`
	SideOptions []SideOption     `json:"sideOptions,omitempty"`
	PlateSize   PlateSize        `json:"plateSize,omitempty"`
}

// ConsumesCuts reports whether selling this product draws from the cut pool.
func (p Product) ConsumesCuts() bool { return p.StockUnit == StockCuts }

// InventoryItem is a raw material or supply. Quantity never goes below zero:
// every deduction clamps at 0, so recorded stock can silently diverge from
// true stock when oversold.
type InventoryItem struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Quantity decimal.Decimal `json:"quantity"`
	Unit     string          `json:"unit"`
}

// StockLog records one kitchen production run. Never deleted; only its
// timestamp may be corrected afterwards.
type StockLog struct {
	ID                   string    `json:"id"`
	Timestamp            time.Time `json:"timestamp"`
	TargetCompletionTime time.Time `json:"targetCompletionTime"`
	RuleName             string    `json:"ruleName"`
	QuantityChickens     int       `json:"quantityChickens"`
	TotalPieces          int       `json:"totalPieces"` // QuantityChickens × PiecesPerChicken
}

// SaleItem is one line of a sale. Display fields and the stock tags are
// denormalized copies taken from the product at sale time, so later menu
// edits do not rewrite history.
type SaleItem struct {
	ID               string          `json:"id"`
	ProductID        string          `json:"productId"`
	ProductName      string          `json:"productName"`
	VariantName      string          `json:"variantName,omitempty"`
	SelectedSideID   string          `json:"selectedSideId,omitempty"`
	SelectedSideName string          `json:"selectedSideName,omitempty"`
	Quantity         int             `json:"quantity"`
	UnitPrice        decimal.Decimal `json:"unitPrice"`
	Total            decimal.Decimal `json:"total"` // UnitPrice × Quantity
	StockUnit        StockUnit       `json:"stockUnit,omitempty"`
	StockCostPerUnit decimal.Decimal `json:"stockCostPerUnit"`
}

// ConsumesCuts reports whether this line draws from the cut pool.
func (i SaleItem) ConsumesCuts() bool { return i.StockUnit == StockCuts }

type Sale struct {
	ID            string          `json:"id"`
	Timestamp     time.Time       `json:"timestamp"`
	CustomerName  string          `json:"customerName"`
	OrderType     OrderType       `json:"orderType"`
	Items         []SaleItem      `json:"items"`
	Subtotal      decimal.Decimal `json:"subtotal"`
	Discount      decimal.Decimal `json:"discount"`
	FinalTotal    decimal.Decimal `json:"finalTotal"` // max(0, Subtotal − Discount)
	Status        SaleStatus      `json:"status"`
	PaymentMethod *PaymentMethod  `json:"paymentMethod"`
	Delivered     bool            `json:"delivered"`
}

type TransactionType string

const (
	ExpenseInventory   TransactionType = "EXPENSE_INVENTORY"
	ExpenseOperational TransactionType = "EXPENSE_OPERATIONAL"
	Withdrawal         TransactionType = "WITHDRAWAL"
	Deposit            TransactionType = "DEPOSIT"
)

// Expense is one financial transaction row. Rows whose description carries
// the internal-conversion marker are bookkeeping for the stock projection and
// are excluded from all financial reporting.
type Expense struct {
	ID          string          `json:"id"`
	Timestamp   time.Time       `json:"timestamp"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Type        TransactionType `json:"type"`
}

// DraftKind distinguishes a brand-new in-progress sale from edits to an
// existing one. Resolved explicitly at resume time.
type DraftKind string

const (
	DraftNew             DraftKind = "NEW"
	DraftEditingExisting DraftKind = "EDITING_EXISTING"
)

// SaleDraft is a minimized in-progress sale. It lives in the drafts queue
// until resumed or discarded and is never part of the sales ledger.
type SaleDraft struct {
	Kind           DraftKind       `json:"kind"`
	OriginalSaleID string          `json:"originalSaleId,omitempty"` // set only for DraftEditingExisting
	CustomerName   string          `json:"customerName"`
	OrderType      OrderType       `json:"orderType"`
	Items          []SaleItem      `json:"items"`
	Discount       decimal.Decimal `json:"discount"`
	Delivered      bool            `json:"delivered"`
	Paid           bool            `json:"paid"`
	PaymentMethod  *PaymentMethod  `json:"paymentMethod"`
}

// RuleOutput is what a production rule yields per multiplier unit: either a
// non-chicken inventory output, chickens for the fryer log, or both.
type RuleOutput struct {
	InventoryID     string          `json:"inventoryId,omitempty"`
	Quantity        decimal.Decimal `json:"quantity"`
	StockLogChicken int             `json:"stockLogChicken"`
}

// KitchenProductionRule describes one production run recipe.
type KitchenProductionRule struct {
	Name               string       `json:"name"`
	Inputs             []RecipeLine `json:"inputs"`
	Outputs            RuleOutput   `json:"outputs"`
	CookingTimeMinutes int          `json:"cookingTimeMinutes"`
}

// StockSnapshot is the derived daily stock position. Both counters are
// intentionally unclamped: negative values signal overselling or
// under-logging and are surfaced as-is.
type StockSnapshot struct {
	ChickenPieces decimal.Decimal
	CutPortions   decimal.Decimal
}
