package core

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductionResult is the outcome of one kitchen production run.
type ProductionResult struct {
	Inventory []InventoryItem
	// StockLog is non-nil only when the rule fries chickens or has a
	// nonzero cooking time worth tracking on a timer.
	StockLog *StockLog
}

// Produce runs a kitchen production rule at the given multiplier against an
// inventory snapshot. Ingredient draws scale by the multiplier and clamp at
// zero; a declared non-chicken output is added back to inventory. start is
// when the run began (callers pass now for immediate runs); the log's target
// completion is start plus the rule's cooking time.
func Produce(inventory []InventoryItem, rule KitchenProductionRule, multiplier int, start time.Time) ProductionResult {
	inv := cloneInventory(inventory)
	mult := decimal.NewFromInt(int64(multiplier))

	for _, input := range rule.Inputs {
		deduct(inv, input.InventoryID, input.Quantity.Mul(mult))
	}

	if rule.Outputs.InventoryID != "" && rule.Outputs.Quantity.Sign() > 0 {
		add(inv, rule.Outputs.InventoryID, rule.Outputs.Quantity.Mul(mult))
	}

	result := ProductionResult{Inventory: inv}

	chickens := rule.Outputs.StockLogChicken * multiplier
	if rule.Outputs.StockLogChicken > 0 || rule.CookingTimeMinutes > 0 {
		result.StockLog = &StockLog{
			ID:                   uuid.NewString(),
			Timestamp:            start,
			TargetCompletionTime: start.Add(time.Duration(rule.CookingTimeMinutes) * time.Minute),
			RuleName:             rule.Name,
			QuantityChickens:     chickens,
			TotalPieces:          chickens * PiecesPerChicken,
		}
	}
	return result
}

// FindRule returns the production rule with the given name.
func FindRule(rules []KitchenProductionRule, name string) (KitchenProductionRule, bool) {
	for _, r := range rules {
		if r.Name == name {
			return r, true
		}
	}
	return KitchenProductionRule{}, false
}
