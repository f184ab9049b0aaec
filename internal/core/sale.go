package core

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SaleInput carries the fields a caller supplies when committing a sale,
// new or edited.
type SaleInput struct {
	Items         []SaleItem
	OrderType     OrderType
	CustomerName  string
	Timestamp     time.Time // zero value means "now" for new sales, "keep" for edits
	Discount      decimal.Decimal
	Delivered     bool
	Paid          bool
	PaymentMethod *PaymentMethod
}

// ComputeTotals derives a sale's money fields from its line items.
// The final total never goes below zero regardless of discount.
func ComputeTotals(items []SaleItem, discount decimal.Decimal) (subtotal, finalTotal decimal.Decimal) {
	subtotal = decimal.Zero
	for _, item := range items {
		subtotal = subtotal.Add(item.Total)
	}
	finalTotal = subtotal.Sub(discount)
	if finalTotal.IsNegative() {
		finalTotal = decimal.Zero
	}
	return subtotal, finalTotal
}

// NewSale builds a sale from scratch. A sale marked paid at creation starts
// in PAGADO and credits its final total to cash immediately, and the returned
// cashCredit is zero otherwise.
func NewSale(input SaleInput, now time.Time) (Sale, decimal.Decimal) {
	subtotal, finalTotal := ComputeTotals(input.Items, input.Discount)

	ts := input.Timestamp
	if ts.IsZero() {
		ts = now
	}

	status := StatusPendiente
	cashCredit := decimal.Zero
	if input.Paid {
		status = StatusPagado
		if input.PaymentMethod != nil {
			cashCredit = finalTotal
		}
	}

	return Sale{
		ID:            uuid.NewString(),
		Timestamp:     ts,
		CustomerName:  input.CustomerName,
		OrderType:     input.OrderType,
		Items:         input.Items,
		Subtotal:      subtotal,
		Discount:      input.Discount,
		FinalTotal:    finalTotal,
		Status:        status,
		PaymentMethod: input.PaymentMethod,
		Delivered:     input.Delivered,
	}, cashCredit
}

// EditSale replaces a sale's contents in place, recomputing the totals from
// the new item list. Editing never touches payment state: status and
// paymentMethod carry over from the stored sale unchanged.
func EditSale(existing Sale, input SaleInput) Sale {
	subtotal, finalTotal := ComputeTotals(input.Items, input.Discount)

	ts := input.Timestamp
	if ts.IsZero() {
		ts = existing.Timestamp
	}

	updated := existing
	updated.Timestamp = ts
	updated.CustomerName = input.CustomerName
	updated.OrderType = input.OrderType
	updated.Items = input.Items
	updated.Subtotal = subtotal
	updated.Discount = input.Discount
	updated.FinalTotal = finalTotal
	updated.Delivered = input.Delivered
	return updated
}

// PrependSale inserts a new sale at the head of the collection, newest first.
func PrependSale(sales []Sale, sale Sale) []Sale {
	out := make([]Sale, 0, len(sales)+1)
	out = append(out, sale)
	return append(out, sales...)
}

// ReplaceSale swaps a sale in place by id, preserving order.
func ReplaceSale(sales []Sale, sale Sale) []Sale {
	out := make([]Sale, len(sales))
	copy(out, sales)
	for i := range out {
		if out[i].ID == sale.ID {
			out[i] = sale
		}
	}
	return out
}

// FindSale returns the sale with the given id.
func FindSale(sales []Sale, id string) (Sale, bool) {
	for _, s := range sales {
		if s.ID == id {
			return s, true
		}
	}
	return Sale{}, false
}

// ApplyPayment confirms payment on a sale: PENDIENTE→PAGADO, records the
// method, applies the possibly revised discount, and recomputes the final
// total, which is returned as the cash credit. An unknown id changes
// nothing and credits zero. Confirming an already-PAGADO sale is not
// guarded against and will credit cash again, matching the source system.
func ApplyPayment(sales []Sale, id string, method PaymentMethod, discount decimal.Decimal) ([]Sale, decimal.Decimal) {
	sale, ok := FindSale(sales, id)
	if !ok {
		return sales, decimal.Zero
	}

	finalTotal := sale.Subtotal.Sub(discount)
	if finalTotal.IsNegative() {
		finalTotal = decimal.Zero
	}

	sale.Status = StatusPagado
	sale.PaymentMethod = &method
	sale.Discount = discount
	sale.FinalTotal = finalTotal
	return ReplaceSale(sales, sale), finalTotal
}

// ToggleDelivered flips a sale's delivered flag. Unknown ids change nothing.
func ToggleDelivered(sales []Sale, id string) []Sale {
	out := make([]Sale, len(sales))
	copy(out, sales)
	for i := range out {
		if out[i].ID == id {
			out[i].Delivered = !out[i].Delivered
		}
	}
	return out
}
