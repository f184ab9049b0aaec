package core

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// InventoryPurchase names the stock received with an EXPENSE_INVENTORY
// transaction.
type InventoryPurchase struct {
	ItemID   string          `json:"itemId"`
	Quantity decimal.Decimal `json:"quantity"`
}

// TransactionResult is the outcome of classifying one financial transaction:
// the expense row (always recorded), the signed cash movement, and the
// inventory position after any purchase.
type TransactionResult struct {
	Expense   Expense
	CashDelta decimal.Decimal
	Inventory []InventoryItem
}

// RecordTransaction classifies a transaction and computes the matching cash
// and inventory mutations:
//
//   - EXPENSE_INVENTORY with purchase details: cash down by amount, the named
//     inventory item up by the purchased quantity
//   - EXPENSE_OPERATIONAL and WITHDRAWAL: cash down by amount
//   - DEPOSIT: cash up by amount
//
// Any other type records the expense row but moves nothing; unrecognized
// types are silently ignored, not an error. The expense row is always
// appended regardless of type.
func RecordTransaction(inventory []InventoryItem, description string, amount decimal.Decimal, txType TransactionType, purchase *InventoryPurchase, now time.Time) TransactionResult {
	result := TransactionResult{
		Expense: Expense{
			ID:          uuid.NewString(),
			Timestamp:   now,
			Description: description,
			Amount:      amount,
			Type:        txType,
		},
		CashDelta: decimal.Zero,
		Inventory: inventory,
	}

	switch {
	case txType == ExpenseInventory && purchase != nil:
		result.CashDelta = amount.Neg()
		result.Inventory = PurchaseInventory(inventory, purchase.ItemID, purchase.Quantity)
	case txType == ExpenseOperational || txType == Withdrawal:
		result.CashDelta = amount.Neg()
	case txType == Deposit:
		result.CashDelta = amount
	}
	return result
}

// ConversionTransaction builds the zero-amount operational expense that
// records an internal piece→cut conversion. It never moves cash.
func ConversionTransaction(pieces int, now time.Time) Expense {
	return Expense{
		ID:          uuid.NewString(),
		Timestamp:   now,
		Description: ConvertDescription(pieces),
		Amount:      decimal.Zero,
		Type:        ExpenseOperational,
	}
}
