package core

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CommandType string

const (
	CommandSale     CommandType = "SALE"
	CommandExpense  CommandType = "EXPENSE"
	CommandAddStock CommandType = "ADD_STOCK"
)

// CommandItem is one requested line of a SALE command.
type CommandItem struct {
	ProductID string `json:"product_id" jsonschema_description:"The exact product id from the provided menu"`
	VariantID string `json:"variant_id,omitempty" jsonschema_description:"The variant id when the customer named a specific portion size, empty otherwise"`
	Quantity  int    `json:"quantity" jsonschema_description:"Units ordered, must be at least 1"`
}

// ParsedCommand is the tagged union produced by the voice/text command
// parser. Exactly one of the per-type field groups is meaningful, selected
// by Type.
type ParsedCommand struct {
	Type CommandType `json:"type" jsonschema:"enum=SALE,enum=EXPENSE,enum=ADD_STOCK" jsonschema_description:"SALE registers an order, EXPENSE records money spent, ADD_STOCK sends chickens to the fryer"`

	// SALE fields.
	Items         []CommandItem `json:"items,omitempty" jsonschema_description:"Ordered products, SALE only"`
	Discount      string        `json:"discount,omitempty" jsonschema_description:"Discount amount in Bs as a decimal string, '0' if none"`
	Delivered     bool          `json:"delivered,omitempty" jsonschema_description:"True if the order was already handed over"`
	Paid          bool          `json:"paid,omitempty" jsonschema_description:"True if the customer already paid"`
	PaymentMethod string        `json:"payment_method,omitempty" jsonschema:"enum=EFECTIVO,enum=QR,enum=" jsonschema_description:"How the customer paid, only when paid is true"`

	// EXPENSE fields.
	Description string `json:"description,omitempty" jsonschema_description:"What the money was spent on, EXPENSE only"`
	Amount      string `json:"amount,omitempty" jsonschema_description:"Amount spent in Bs as a decimal string, EXPENSE only"`

	// ADD_STOCK fields.
	Quantity int `json:"quantity,omitempty" jsonschema_description:"Number of chickens to fry, ADD_STOCK only"`
}

// Normalize cleans up parser output (LLM output) dealing with common
// formatting issues before validation.
func (c *ParsedCommand) Normalize() {
	c.Type = CommandType(strings.ToUpper(strings.TrimSpace(string(c.Type))))
	c.Description = strings.TrimSpace(c.Description)
	c.PaymentMethod = strings.ToUpper(strings.TrimSpace(c.PaymentMethod))

	if s := strings.TrimSpace(c.Discount); s == "" || strings.EqualFold(s, "null") {
		c.Discount = "0"
	} else {
		c.Discount = s
	}
	if s := strings.TrimSpace(c.Amount); s == "" || strings.EqualFold(s, "null") {
		c.Amount = "0"
	} else {
		c.Amount = s
	}
}

// Validate enforces the per-type field requirements of the tagged union.
func (c *ParsedCommand) Validate() error {
	switch c.Type {
	case CommandSale:
		if len(c.Items) == 0 {
			return errors.New("sale command must list at least one item")
		}
		for _, item := range c.Items {
			if item.ProductID == "" {
				return errors.New("sale item is missing a product id")
			}
			if item.Quantity <= 0 {
				return fmt.Errorf("sale item %s has quantity %d, must be >= 1", item.ProductID, item.Quantity)
			}
		}
		if _, err := decimal.NewFromString(c.Discount); err != nil {
			return fmt.Errorf("invalid discount %q: %v", c.Discount, err)
		}
		if c.Paid && c.PaymentMethod == "" {
			return errors.New("paid sale command must name a payment method")
		}
	case CommandExpense:
		if c.Description == "" {
			return errors.New("expense command must have a description")
		}
		amt, err := decimal.NewFromString(c.Amount)
		if err != nil {
			return fmt.Errorf("invalid amount %q: %v", c.Amount, err)
		}
		if amt.IsNegative() || amt.IsZero() {
			return fmt.Errorf("expense amount must be > 0, got %s", c.Amount)
		}
	case CommandAddStock:
		if c.Quantity <= 0 {
			return fmt.Errorf("add-stock quantity must be >= 1, got %d", c.Quantity)
		}
	default:
		return fmt.Errorf("unknown command type %q", c.Type)
	}
	return nil
}

// DiscountValue returns the parsed discount. Call after Normalize/Validate.
func (c *ParsedCommand) DiscountValue() decimal.Decimal {
	d, _ := decimal.NewFromString(c.Discount)
	return d
}

// AmountValue returns the parsed expense amount. Call after Normalize/Validate.
func (c *ParsedCommand) AmountValue() decimal.Decimal {
	a, _ := decimal.NewFromString(c.Amount)
	return a
}

// Method returns the payment method, or nil when the command names none.
func (c *ParsedCommand) Method() *PaymentMethod {
	if c.PaymentMethod == "" {
		return nil
	}
	m := PaymentMethod(c.PaymentMethod)
	return &m
}

// ResolveCommandItems prices the requested command items against the menu.
// Unknown product ids are silently skipped; a named variant overrides the
// product price and, when it declares one, the piece cost.
func ResolveCommandItems(products []Product, items []CommandItem) []SaleItem {
	var out []SaleItem
	for _, ci := range items {
		product, ok := findProduct(products, ci.ProductID)
		if !ok {
			continue
		}

		price := product.Price
		stockCost := product.StockCost
		variantName := ""
		if ci.VariantID != "" {
			for _, v := range product.Variants {
				if v.ID == ci.VariantID {
					price = v.Price
					if v.StockCost != nil {
						stockCost = *v.StockCost
					}
					variantName = v.Name
					break
				}
			}
		}

		out = append(out, SaleItem{
			ID:               uuid.NewString(),
			ProductID:        product.ID,
			ProductName:      product.Name,
			VariantName:      variantName,
			Quantity:         ci.Quantity,
			UnitPrice:        price,
			Total:            price.Mul(decimal.NewFromInt(int64(ci.Quantity))),
			StockUnit:        product.StockUnit,
			StockCostPerUnit: stockCost,
		})
	}
	return out
}

func findProduct(products []Product, id string) (Product, bool) {
	for _, p := range products {
		if p.ID == id {
			return p, true
		}
	}
	return Product{}, false
}
