package core_test

import (
	"testing"
	"time"

	"deli-pos/internal/core"
)

func testPantry() []core.InventoryItem {
	return []core.InventoryItem{
		{ID: "inv_pollo_crudo", Name: "Pollo Crudo", Quantity: dec("10"), Unit: "unidades"},
		{ID: "inv_aceite", Name: "Aceite", Quantity: dec("5"), Unit: "litros"},
		{ID: "inv_arroz", Name: "Arroz", Quantity: dec("3"), Unit: "kg"},
		{ID: "inv_arroz_cocido", Name: "Arroz Cocido", Quantity: dec("0"), Unit: "porciones"},
	}
}

func fryRule() core.KitchenProductionRule {
	return core.KitchenProductionRule{
		Name: "Freír Pollos",
		Inputs: []core.RecipeLine{
			{InventoryID: "inv_pollo_crudo", Quantity: dec("1")},
			{InventoryID: "inv_aceite", Quantity: dec("0.25")},
		},
		Outputs:            core.RuleOutput{StockLogChicken: 1},
		CookingTimeMinutes: 20,
	}
}

func quantityOf(t *testing.T, inv []core.InventoryItem, id string) string {
	t.Helper()
	for _, item := range inv {
		if item.ID == id {
			return item.Quantity.String()
		}
	}
	t.Fatalf("inventory item %s not found", id)
	return ""
}

func TestProduce_FryChickens(t *testing.T) {
	start := time.Now()
	result := core.Produce(testPantry(), fryRule(), 5, start)

	if got := quantityOf(t, result.Inventory, "inv_pollo_crudo"); got != "5" {
		t.Errorf("raw chicken = %s, want 5", got)
	}
	if got := quantityOf(t, result.Inventory, "inv_aceite"); got != "3.75" {
		t.Errorf("oil = %s, want 3.75", got)
	}

	if result.StockLog == nil {
		t.Fatal("expected a stock log")
	}
	if result.StockLog.QuantityChickens != 5 {
		t.Errorf("chickens = %d, want 5", result.StockLog.QuantityChickens)
	}
	if result.StockLog.TotalPieces != 40 {
		t.Errorf("pieces = %d, want 40", result.StockLog.TotalPieces)
	}
	wantReady := start.Add(20 * time.Minute)
	if !result.StockLog.TargetCompletionTime.Equal(wantReady) {
		t.Errorf("ready at %v, want %v", result.StockLog.TargetCompletionTime, wantReady)
	}
	if result.StockLog.RuleName != "Freír Pollos" {
		t.Errorf("rule name = %s", result.StockLog.RuleName)
	}
}

func TestProduce_InputsClampAtZero(t *testing.T) {
	result := core.Produce(testPantry(), fryRule(), 100, time.Now())

	if got := quantityOf(t, result.Inventory, "inv_pollo_crudo"); got != "0" {
		t.Errorf("raw chicken = %s, want 0", got)
	}
	// The fryer log stays honest even when ingredients ran dry.
	if result.StockLog == nil || result.StockLog.TotalPieces != 800 {
		t.Errorf("expected a log for 800 pieces, got %+v", result.StockLog)
	}
}

func TestProduce_InventoryOutput(t *testing.T) {
	rule := core.KitchenProductionRule{
		Name:               "Cocinar Arroz",
		Inputs:             []core.RecipeLine{{InventoryID: "inv_arroz", Quantity: dec("1")}},
		Outputs:            core.RuleOutput{InventoryID: "inv_arroz_cocido", Quantity: dec("8")},
		CookingTimeMinutes: 25,
	}
	result := core.Produce(testPantry(), rule, 2, time.Now())

	if got := quantityOf(t, result.Inventory, "inv_arroz"); got != "1" {
		t.Errorf("raw rice = %s, want 1", got)
	}
	if got := quantityOf(t, result.Inventory, "inv_arroz_cocido"); got != "16" {
		t.Errorf("cooked rice = %s, want 16", got)
	}
	if result.StockLog == nil {
		t.Error("timed rule should emit a log for the kitchen timer")
	} else if result.StockLog.TotalPieces != 0 {
		t.Errorf("non-chicken rule logged %d pieces", result.StockLog.TotalPieces)
	}
}

func TestProduce_InstantRuleEmitsNoLog(t *testing.T) {
	rule := core.KitchenProductionRule{
		Name:    "Preparar Llajua",
		Inputs:  []core.RecipeLine{{InventoryID: "inv_arroz", Quantity: dec("0.5")}},
		Outputs: core.RuleOutput{InventoryID: "inv_arroz_cocido", Quantity: dec("10")},
	}
	result := core.Produce(testPantry(), rule, 1, time.Now())
	if result.StockLog != nil {
		t.Errorf("instant rule produced a log: %+v", result.StockLog)
	}
}

func TestProduce_DoesNotMutateInput(t *testing.T) {
	pantry := testPantry()
	core.Produce(pantry, fryRule(), 3, time.Now())
	if got := quantityOf(t, pantry, "inv_pollo_crudo"); got != "10" {
		t.Errorf("input pantry mutated: raw chicken = %s", got)
	}
}

func TestFindRule(t *testing.T) {
	rules := core.KitchenRules()
	if _, ok := core.FindRule(rules, "Freír Pollos"); !ok {
		t.Error("default fry rule missing")
	}
	if _, ok := core.FindRule(rules, "Hacer Sushi"); ok {
		t.Error("found a rule that does not exist")
	}
}
