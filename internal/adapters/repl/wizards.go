package repl

import (
	"bufio"
	"context"
	"fmt"
	"strconv"
	"strings"

	"deli-pos/internal/app"
	"deli-pos/internal/core"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// handleNewSale runs an interactive sale session. A non-nil draft seeds the
// session with its items and settings, whether it came from the drafts
// queue, an /edit, or the AI parser.
func handleNewSale(ctx context.Context, reader *bufio.Reader, svc app.ApplicationService, draft *core.SaleDraft) {
	products := svc.ListProducts()

	session := core.SaleDraft{Kind: core.DraftNew}
	if draft != nil {
		session = *draft
	}
	if session.OrderType == "" {
		session.OrderType = core.DineIn
	}

	if session.Kind == core.DraftEditingExisting {
		fmt.Println("Editing an existing sale. Saving replaces its items.")
	}
	printMenu(products)
	fmt.Println("Add lines with: <menu#> <quantity>. Type 'done' to checkout,")
	fmt.Println("'list' to review, 'remove <line#>' to drop a line, 'min' to")
	fmt.Println("minimize for later, 'cancel' to abort.")

	for {
		fmt.Printf("  [%d items] > ", len(session.Items))
		raw, _ := reader.ReadString('\n')
		raw = strings.TrimSpace(raw)
		lower := strings.ToLower(raw)

		switch {
		case raw == "":
			continue
		case lower == "cancel":
			fmt.Println("Sale cancelled.")
			return
		case lower == "done":
			if len(session.Items) == 0 {
				fmt.Println("  No items yet. Add at least one line or 'cancel'.")
				continue
			}
		case lower == "min":
			if len(session.Items) == 0 {
				fmt.Println("  Nothing to minimize.")
				continue
			}
			if session.CustomerName == "" {
				fmt.Print("  Customer name (for the drafts list): ")
				name, _ := reader.ReadString('\n')
				session.CustomerName = strings.TrimSpace(name)
			}
			if err := svc.MinimizeSale(ctx, session); err != nil {
				fmt.Printf("  Error: %v\n", err)
				return
			}
			fmt.Println("Sale minimized. Resume it with /drafts and /resume.")
			return
		case strings.HasPrefix(lower, "remove"):
			parts := strings.Fields(raw)
			if len(parts) < 2 {
				fmt.Println("  Usage: remove <line#>")
				continue
			}
			n, err := strconv.Atoi(parts[1])
			if err != nil || n < 1 || n > len(session.Items) {
				fmt.Println("  No such line.")
				continue
			}
			session.Items = append(session.Items[:n-1], session.Items[n:]...)
			continue
		case lower == "list":
			for i, item := range session.Items {
				fmt.Printf("  %d. %d × %s %s = Bs %s\n",
					i+1, item.Quantity, item.ProductName, item.VariantName,
					item.Total.StringFixed(2))
			}
			continue
		default:
			item, ok := readSaleLine(reader, products, raw)
			if !ok {
				continue
			}
			session.Items = append(session.Items, item)
			fmt.Printf("  Added: %d × %s = Bs %s\n",
				item.Quantity, item.ProductName, item.Total.StringFixed(2))
			continue
		}
		break // "done"
	}

	// Checkout.
	if session.CustomerName == "" {
		fmt.Print("Customer name (blank for casual): ")
		name, _ := reader.ReadString('\n')
		session.CustomerName = strings.TrimSpace(name)
	}

	fmt.Printf("Takeaway? (y/N): ")
	answer, _ := reader.ReadString('\n')
	if strings.TrimSpace(strings.ToLower(answer)) == "y" {
		session.OrderType = core.Takeaway
	}

	fmt.Print("Discount in Bs (blank for none): ")
	rawDiscount, _ := reader.ReadString('\n')
	rawDiscount = strings.TrimSpace(rawDiscount)
	if rawDiscount != "" {
		d, err := decimal.NewFromString(rawDiscount)
		if err != nil || d.IsNegative() {
			fmt.Println("Invalid discount, using 0.")
		} else {
			session.Discount = d
		}
	}

	if session.Kind != core.DraftEditingExisting {
		fmt.Print("Paid now? (y/N): ")
		answer, _ = reader.ReadString('\n')
		if strings.TrimSpace(strings.ToLower(answer)) == "y" {
			session.Paid = true
			fmt.Print("Method (1=EFECTIVO, 2=QR): ")
			m, _ := reader.ReadString('\n')
			method := core.PaymentCash
			if strings.TrimSpace(m) == "2" {
				method = core.PaymentQR
			}
			session.PaymentMethod = &method
		}
	}

	result, err := svc.SaveSale(ctx, app.SaveSaleRequest{
		Items:          session.Items,
		OrderType:      session.OrderType,
		CustomerName:   session.CustomerName,
		Discount:       session.Discount,
		Delivered:      session.Delivered,
		Paid:           session.Paid,
		PaymentMethod:  session.PaymentMethod,
		OriginalSaleID: session.OriginalSaleID,
	})
	if err != nil {
		fmt.Printf("Error saving sale: %v\n", err)
		return
	}

	printSaleDetail(result.Sale)
	if result.ConvertedPieces > 0 {
		fmt.Printf("Auto-converted %d whole piece(s) into cuts to cover the order.\n",
			result.ConvertedPieces)
	}
	fmt.Printf("Stock: %s presas, %s cortes\n",
		result.Stock.ChickenPieces.String(), result.Stock.CutPortions.String())
	if result.Sale.Status == core.StatusPendiente {
		fmt.Println("Sale saved as PENDIENTE. Use /pay when the customer settles.")
	}
}

// readSaleLine parses "<menu#> <quantity>" and walks the operator through
// variant and side selection when the product has them.
func readSaleLine(reader *bufio.Reader, products []core.Product, raw string) (core.SaleItem, bool) {
	parts := strings.Fields(raw)
	if len(parts) < 2 {
		fmt.Println("  Invalid format. Use: <menu#> <quantity>")
		return core.SaleItem{}, false
	}
	menuIdx, err := strconv.Atoi(parts[0])
	if err != nil || menuIdx < 1 || menuIdx > len(products) {
		fmt.Println("  No such menu item.")
		return core.SaleItem{}, false
	}
	qty, err := strconv.Atoi(parts[1])
	if err != nil || qty < 1 {
		fmt.Println("  Invalid quantity.")
		return core.SaleItem{}, false
	}
	product := products[menuIdx-1]

	price := product.Price
	stockCost := product.StockCost
	variantName := ""
	if len(product.Variants) > 0 {
		for i, v := range product.Variants {
			fmt.Printf("    %d. %s — Bs %s\n", i+1, v.Name, v.Price.StringFixed(2))
		}
		fmt.Print("  Variant #: ")
		rawVariant, _ := reader.ReadString('\n')
		vi, err := strconv.Atoi(strings.TrimSpace(rawVariant))
		if err != nil || vi < 1 || vi > len(product.Variants) {
			fmt.Println("  No such variant.")
			return core.SaleItem{}, false
		}
		variant := product.Variants[vi-1]
		price = variant.Price
		variantName = variant.Name
		if variant.StockCost != nil {
			stockCost = *variant.StockCost
		}
	}

	sideID, sideName := "", ""
	if len(product.SideOptions) > 0 {
		for i, s := range product.SideOptions {
			fmt.Printf("    %d. %s\n", i+1, s.Name)
		}
		fmt.Print("  Side # (blank for none): ")
		rawSide, _ := reader.ReadString('\n')
		rawSide = strings.TrimSpace(rawSide)
		if rawSide != "" {
			si, err := strconv.Atoi(rawSide)
			if err != nil || si < 1 || si > len(product.SideOptions) {
				fmt.Println("  No such side.")
				return core.SaleItem{}, false
			}
			sideID = product.SideOptions[si-1].ID
			sideName = product.SideOptions[si-1].Name
		}
	}

	return core.SaleItem{
		ID:               uuid.NewString(),
		ProductID:        product.ID,
		ProductName:      product.Name,
		VariantName:      variantName,
		SelectedSideID:   sideID,
		SelectedSideName: sideName,
		Quantity:         qty,
		UnitPrice:        price,
		Total:            price.Mul(decimal.NewFromInt(int64(qty))),
		StockUnit:        product.StockUnit,
		StockCostPerUnit: stockCost,
	}, true
}
