package core_test

import (
	"strings"
	"testing"
	"time"

	"deli-pos/internal/core"
)

func TestRecordTransaction(t *testing.T) {
	now := time.Now()
	pantry := []core.InventoryItem{
		{ID: "inv_papa", Quantity: dec("5"), Unit: "kg"},
	}

	tests := []struct {
		name          string
		txType        core.TransactionType
		amount        string
		purchase      *core.InventoryPurchase
		wantCashDelta string
		wantPotatoes  string
	}{
		{
			name:          "inventory purchase restocks and pays",
			txType:        core.ExpenseInventory,
			amount:        "50",
			purchase:      &core.InventoryPurchase{ItemID: "inv_papa", Quantity: dec("10")},
			wantCashDelta: "-50",
			wantPotatoes:  "15",
		},
		{
			name:          "inventory expense without purchase moves nothing",
			txType:        core.ExpenseInventory,
			amount:        "50",
			wantCashDelta: "0",
			wantPotatoes:  "5",
		},
		{
			name:          "operational expense",
			txType:        core.ExpenseOperational,
			amount:        "30",
			wantCashDelta: "-30",
			wantPotatoes:  "5",
		},
		{
			name:          "withdrawal",
			txType:        core.Withdrawal,
			amount:        "100",
			wantCashDelta: "-100",
			wantPotatoes:  "5",
		},
		{
			name:          "deposit",
			txType:        core.Deposit,
			amount:        "200",
			wantCashDelta: "200",
			wantPotatoes:  "5",
		},
		{
			name:          "unknown type records row only",
			txType:        core.TransactionType("LOAN"),
			amount:        "500",
			wantCashDelta: "0",
			wantPotatoes:  "5",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := core.RecordTransaction(pantry, "test tx", dec(tt.amount), tt.txType, tt.purchase, now)

			if result.CashDelta.String() != tt.wantCashDelta {
				t.Errorf("cash delta = %s, want %s", result.CashDelta, tt.wantCashDelta)
			}
			if got := quantityOf(t, result.Inventory, "inv_papa"); got != tt.wantPotatoes {
				t.Errorf("potatoes = %s, want %s", got, tt.wantPotatoes)
			}
			if result.Expense.Type != tt.txType {
				t.Errorf("expense type = %s, want %s", result.Expense.Type, tt.txType)
			}
			if result.Expense.Amount.String() != tt.amount {
				t.Errorf("expense amount = %s, want %s", result.Expense.Amount, tt.amount)
			}
			if result.Expense.ID == "" {
				t.Error("expense row has no id")
			}
		})
	}
}

func TestConversionTransaction(t *testing.T) {
	now := time.Now()
	exp := core.ConversionTransaction(4, now)

	if !exp.Amount.IsZero() {
		t.Errorf("conversion moved money: %s", exp.Amount)
	}
	if exp.Type != core.ExpenseOperational {
		t.Errorf("type = %s", exp.Type)
	}
	if !strings.HasPrefix(exp.Description, core.InternalPrefix) {
		t.Errorf("description %q lacks the internal marker", exp.Description)
	}
	if n, ok := core.ParseConvertedPieces(exp.Description); !ok || n != 4 {
		t.Errorf("marker does not parse back to 4 pieces: %q", exp.Description)
	}
}
