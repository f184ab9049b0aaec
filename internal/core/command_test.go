package core_test

import (
	"testing"

	"deli-pos/internal/core"
)

func TestParsedCommand_Normalize(t *testing.T) {
	cmd := core.ParsedCommand{
		Type:          " sale ",
		Discount:      "",
		Amount:        "null",
		Description:   "  almuerzo  ",
		PaymentMethod: "efectivo",
	}
	cmd.Normalize()

	if cmd.Type != core.CommandSale {
		t.Errorf("type = %q", cmd.Type)
	}
	if cmd.Discount != "0" || cmd.Amount != "0" {
		t.Errorf("blank amounts not defaulted: discount=%q amount=%q", cmd.Discount, cmd.Amount)
	}
	if cmd.Description != "almuerzo" {
		t.Errorf("description = %q", cmd.Description)
	}
	if cmd.PaymentMethod != "EFECTIVO" {
		t.Errorf("payment method = %q", cmd.PaymentMethod)
	}
}

func TestParsedCommand_Validate(t *testing.T) {
	tests := []struct {
		name      string
		cmd       core.ParsedCommand
		expectErr bool
	}{
		{
			name: "valid sale",
			cmd: core.ParsedCommand{
				Type:     core.CommandSale,
				Items:    []core.CommandItem{{ProductID: "p_broaster", Quantity: 2}},
				Discount: "0",
			},
		},
		{
			name: "sale without items",
			cmd: core.ParsedCommand{
				Type:     core.CommandSale,
				Discount: "0",
			},
			expectErr: true,
		},
		{
			name: "sale item with zero quantity",
			cmd: core.ParsedCommand{
				Type:     core.CommandSale,
				Items:    []core.CommandItem{{ProductID: "p_broaster", Quantity: 0}},
				Discount: "0",
			},
			expectErr: true,
		},
		{
			name: "paid sale without method",
			cmd: core.ParsedCommand{
				Type:     core.CommandSale,
				Items:    []core.CommandItem{{ProductID: "p_broaster", Quantity: 1}},
				Discount: "0",
				Paid:     true,
			},
			expectErr: true,
		},
		{
			name: "paid sale with method",
			cmd: core.ParsedCommand{
				Type:          core.CommandSale,
				Items:         []core.CommandItem{{ProductID: "p_broaster", Quantity: 1}},
				Discount:      "0",
				Paid:          true,
				PaymentMethod: "QR",
			},
		},
		{
			name: "garbage discount",
			cmd: core.ParsedCommand{
				Type:     core.CommandSale,
				Items:    []core.CommandItem{{ProductID: "p_broaster", Quantity: 1}},
				Discount: "cinco",
			},
			expectErr: true,
		},
		{
			name: "valid expense",
			cmd: core.ParsedCommand{
				Type:        core.CommandExpense,
				Description: "gas",
				Amount:      "25.50",
			},
		},
		{
			name: "expense without description",
			cmd: core.ParsedCommand{
				Type:   core.CommandExpense,
				Amount: "25",
			},
			expectErr: true,
		},
		{
			name: "zero-amount expense",
			cmd: core.ParsedCommand{
				Type:        core.CommandExpense,
				Description: "gas",
				Amount:      "0",
			},
			expectErr: true,
		},
		{
			name: "valid add-stock",
			cmd:  core.ParsedCommand{Type: core.CommandAddStock, Quantity: 5},
		},
		{
			name:      "add-stock without quantity",
			cmd:       core.ParsedCommand{Type: core.CommandAddStock},
			expectErr: true,
		},
		{
			name:      "unknown type",
			cmd:       core.ParsedCommand{Type: "REFUND"},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cmd.Validate()
			if tt.expectErr && err == nil {
				t.Error("expected an error, got nil")
			}
			if !tt.expectErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestResolveCommandItems(t *testing.T) {
	variantCost := dec("2")
	products := []core.Product{
		{
			ID: "p_broaster", Name: "Pollo Broaster", Price: dec("15"),
			StockUnit: core.StockPieces, StockCost: dec("1"),
			Variants: []core.ProductVariant{
				{ID: "v_2presas", Name: "2 Presas", Price: dec("28"), StockCost: &variantCost},
				{ID: "v_cheap", Name: "Económico", Price: dec("12")},
			},
		},
		{ID: "p_mocochinchi", Name: "Mocochinchi", Price: dec("4")},
	}

	items := core.ResolveCommandItems(products, []core.CommandItem{
		{ProductID: "p_broaster", VariantID: "v_2presas", Quantity: 2},
		{ProductID: "p_broaster", VariantID: "v_cheap", Quantity: 1},
		{ProductID: "p_mocochinchi", Quantity: 3},
		{ProductID: "p_ghost", Quantity: 1},
	})

	if len(items) != 3 {
		t.Fatalf("resolved %d items, want 3 (ghost skipped)", len(items))
	}

	if items[0].UnitPrice.String() != "28" || items[0].Total.String() != "56" {
		t.Errorf("variant pricing wrong: %s @ %s", items[0].Total, items[0].UnitPrice)
	}
	if items[0].StockCostPerUnit.String() != "2" {
		t.Errorf("variant stock cost not applied: %s", items[0].StockCostPerUnit)
	}
	if items[0].VariantName != "2 Presas" {
		t.Errorf("variant name = %q", items[0].VariantName)
	}

	// A variant without its own stock cost inherits the product's.
	if items[1].StockCostPerUnit.String() != "1" {
		t.Errorf("fallback stock cost = %s, want 1", items[1].StockCostPerUnit)
	}
	if items[1].UnitPrice.String() != "12" {
		t.Errorf("variant price not applied: %s", items[1].UnitPrice)
	}

	if items[2].Total.String() != "12" {
		t.Errorf("plain product total = %s, want 12", items[2].Total)
	}
	if items[2].ID == "" {
		t.Error("resolved item has no id")
	}
}
