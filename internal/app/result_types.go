package app

import (
	"github.com/shopspring/decimal"

	"deli-pos/internal/core"
)

// SaleResult reports the stored sale plus the stock position after the
// sale was applied. ConvertedPieces is the number of whole pieces that
// were auto-converted to cut portions to cover the order.
type SaleResult struct {
	Sale            core.Sale
	Stock           core.StockSnapshot
	ConvertedPieces int
}

// TransactionResult reports the recorded expense row and the cash
// balance after it was applied.
type TransactionResult struct {
	Expense core.Expense
	Cash    decimal.Decimal
}

// ProductionResult reports the outcome of a kitchen production run.
// StockLog is nil when the rule does not track chicken stock or an ETA.
type ProductionResult struct {
	StockLog *core.StockLog
	Stock    core.StockSnapshot
}

// ResumedDraft carries a draft taken off the queue. Original is the
// sale the draft was editing, when it still exists.
type ResumedDraft struct {
	Draft    core.SaleDraft
	Original *core.Sale
}

// CommandResult is the outcome of executing a parsed natural-language
// command. Exactly one of the pointer fields is set depending on the
// command type: a SALE stages a draft for the operator to confirm, an
// EXPENSE records immediately, an ADD_STOCK runs the kitchen rule.
type CommandResult struct {
	Type     core.CommandType
	Draft    *core.SaleDraft
	Expense  *core.Expense
	StockLog *core.StockLog
}
