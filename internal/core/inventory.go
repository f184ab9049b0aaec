package core

import (
	"github.com/shopspring/decimal"
)

// cloneInventory copies the collection so deductions never mutate the
// caller's snapshot.
func cloneInventory(inv []InventoryItem) []InventoryItem {
	out := make([]InventoryItem, len(inv))
	copy(out, inv)
	return out
}

func findInventory(inv []InventoryItem, id string) int {
	for i := range inv {
		if inv[i].ID == id {
			return i
		}
	}
	return -1
}

// deduct lowers an item's quantity, clamped at zero. Unknown ids are
// silently skipped; no row is mutated and no error is raised.
func deduct(inv []InventoryItem, id string, qty decimal.Decimal) {
	idx := findInventory(inv, id)
	if idx < 0 {
		return
	}
	next := inv[idx].Quantity.Sub(qty)
	if next.IsNegative() {
		next = decimal.Zero
	}
	inv[idx].Quantity = next
}

// add raises an item's quantity. Unknown ids are silently skipped.
func add(inv []InventoryItem, id string, qty decimal.Decimal) {
	idx := findInventory(inv, id)
	if idx < 0 {
		return
	}
	inv[idx].Quantity = inv[idx].Quantity.Add(qty)
}

// ApplySaleInventory computes the inventory position after committing a
// sale's line items. All deductions are read against the pre-sale product
// definitions and applied cumulatively to one working copy:
//
//  1. the product's base recipe, scaled by line quantity
//  2. the selected side option's recipe, resolved by side id
//  3. one napkin per unit sold, unconditionally
//  4. one disposable plate per unit sold, takeaway orders only, sized by
//     the product's plate declaration
//
// Each deduction clamps at zero independently; there is no rollback, so a
// sale referencing missing products or inventory rows still commits for
// whatever it can find. Cut-deficit conversion is a separate step
// (PiecesToConvert) that callers must run before this one.
func ApplySaleInventory(items []SaleItem, orderType OrderType, products []Product, inventory []InventoryItem) []InventoryItem {
	inv := cloneInventory(inventory)
	takeaway := orderType == Takeaway

	for _, item := range items {
		product, ok := findProduct(products, item.ProductID)
		if !ok {
			continue
		}
		qty := decimal.NewFromInt(int64(item.Quantity))

		for _, ing := range product.Recipe {
			deduct(inv, ing.InventoryID, ing.Quantity.Mul(qty))
		}

		if item.SelectedSideID != "" {
			for _, side := range product.SideOptions {
				if side.ID != item.SelectedSideID {
					continue
				}
				for _, ing := range side.Recipe {
					deduct(inv, ing.InventoryID, ing.Quantity.Mul(qty))
				}
				break
			}
		}

		deduct(inv, InvNapkins, qty)

		if takeaway && product.PlateSize != "" && product.PlateSize != PlateNone {
			plateID := InvPlateSmall
			if product.PlateSize == PlateLarge {
				plateID = InvPlateLarge
			}
			deduct(inv, plateID, qty)
		}
	}
	return inv
}

// PurchaseInventory applies an inventory purchase: the named item's quantity
// grows by qty. Unknown ids are silently skipped.
func PurchaseInventory(inventory []InventoryItem, itemID string, qty decimal.Decimal) []InventoryItem {
	inv := cloneInventory(inventory)
	add(inv, itemID, qty)
	return inv
}
