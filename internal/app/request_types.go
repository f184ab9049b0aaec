package app

import (
	"time"

	"github.com/shopspring/decimal"

	"deli-pos/internal/core"
)

// SaveSaleRequest describes a sale being checked out. When OriginalSaleID
// is set the request replaces the line items of an existing sale instead
// of creating a new one.
type SaveSaleRequest struct {
	Items          []core.SaleItem
	OrderType      core.OrderType
	CustomerName   string
	Timestamp      time.Time
	Discount       decimal.Decimal
	Delivered      bool
	Paid           bool
	PaymentMethod  *core.PaymentMethod
	OriginalSaleID string
}

// TransactionRequest records money movement outside of sales: inventory
// purchases, operational expenses, withdrawals and deposits.
type TransactionRequest struct {
	Description string
	Amount      decimal.Decimal
	Type        core.TransactionType
	Purchase    *core.InventoryPurchase
}

// ProductionRequest runs a kitchen production rule. A zero StartTime
// means "now". Multiplier scales the rule's inputs and outputs.
type ProductionRequest struct {
	RuleName   string
	Multiplier int
	StartTime  time.Time
}
