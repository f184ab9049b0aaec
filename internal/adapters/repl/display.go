package repl

import (
	"fmt"
	"strings"

	"deli-pos/internal/core"
)

func printStock(stock core.StockSnapshot, logs []core.StockLog) {
	fmt.Println()
	fmt.Println(strings.Repeat("=", 62))
	fmt.Printf("  %-58s\n", "STOCK DEL DÍA")
	fmt.Println(strings.Repeat("=", 62))
	fmt.Printf("  Presas enteras : %s\n", stock.ChickenPieces.String())
	fmt.Printf("  Cortes         : %s\n", stock.CutPortions.String())
	fmt.Println(strings.Repeat("-", 62))
	if len(logs) == 0 {
		fmt.Println("  No production runs logged.")
		fmt.Println(strings.Repeat("=", 62))
		return
	}
	fmt.Printf("  %-4s %-18s %8s %8s  %s\n", "#", "RULE", "CHICKENS", "PIECES", "READY AT")
	fmt.Println(strings.Repeat("-", 62))
	for i, l := range logs {
		fmt.Printf("  %-4d %-18s %8d %8d  %s\n",
			i+1, l.RuleName, l.QuantityChickens, l.TotalPieces,
			l.TargetCompletionTime.Format("Jan 02 15:04"))
	}
	fmt.Println(strings.Repeat("=", 62))
}

func printInventory(items []core.InventoryItem) {
	fmt.Println()
	fmt.Println(strings.Repeat("=", 62))
	fmt.Printf("  %-58s\n", "INVENTARIO")
	fmt.Println(strings.Repeat("=", 62))
	fmt.Printf("  %-22s %-24s %10s %-6s\n", "ID", "NAME", "QTY", "UNIT")
	fmt.Println(strings.Repeat("-", 62))
	for _, item := range items {
		fmt.Printf("  %-22s %-24s %10s %-6s\n",
			item.ID, item.Name, item.Quantity.String(), item.Unit)
	}
	fmt.Println(strings.Repeat("=", 62))
}

func printMenu(products []core.Product) {
	fmt.Println()
	fmt.Println(strings.Repeat("=", 68))
	fmt.Printf("  %-64s\n", "MENÚ")
	fmt.Println(strings.Repeat("=", 68))
	for i, p := range products {
		unit := "presas"
		if p.ConsumesCuts() {
			unit = "cortes"
		}
		fmt.Printf("  %d. %-30s Bs %8s  (%s)\n", i+1, p.Name, p.Price.StringFixed(2), unit)
		for _, v := range p.Variants {
			fmt.Printf("       - %-26s Bs %8s\n", v.Name, v.Price.StringFixed(2))
		}
		if len(p.SideOptions) > 0 {
			names := make([]string, len(p.SideOptions))
			for j, s := range p.SideOptions {
				names[j] = s.Name
			}
			fmt.Printf("       sides: %s\n", strings.Join(names, ", "))
		}
	}
	fmt.Println(strings.Repeat("=", 68))
}

func printSales(sales []core.Sale, pendingOnly bool) {
	title := "VENTAS"
	if pendingOnly {
		title = "VENTAS PENDIENTES"
	}
	fmt.Println()
	fmt.Println(strings.Repeat("=", 78))
	fmt.Printf("  %-74s\n", title)
	fmt.Println(strings.Repeat("=", 78))
	shown := 0
	fmt.Printf("  %-4s %-20s %-10s %-10s %10s  %-5s %s\n",
		"#", "CUSTOMER", "STATUS", "TYPE", "TOTAL", "ENTR.", "TIME")
	fmt.Println(strings.Repeat("-", 78))
	for i, s := range sales {
		if pendingOnly && s.Status != core.StatusPendiente {
			continue
		}
		delivered := "no"
		if s.Delivered {
			delivered = "sí"
		}
		fmt.Printf("  %-4d %-20s %-10s %-10s %10s  %-5s %s\n",
			i+1, s.CustomerName, s.Status, s.OrderType,
			s.FinalTotal.StringFixed(2), delivered, s.Timestamp.Format("Jan 02 15:04"))
		shown++
	}
	if shown == 0 {
		fmt.Println("  No sales found.")
	}
	fmt.Println(strings.Repeat("=", 78))
}

func printSaleDetail(s core.Sale) {
	fmt.Println()
	fmt.Println(strings.Repeat("-", 60))
	fmt.Printf("  Cliente:  %s\n", s.CustomerName)
	fmt.Printf("  Tipo:     %s\n", s.OrderType)
	fmt.Printf("  Estado:   %s\n", s.Status)
	if s.PaymentMethod != nil {
		fmt.Printf("  Pago:     %s\n", *s.PaymentMethod)
	}
	fmt.Println(strings.Repeat("-", 60))
	for _, item := range s.Items {
		name := item.ProductName
		if item.VariantName != "" {
			name += " (" + item.VariantName + ")"
		}
		if item.SelectedSideName != "" {
			name += " + " + item.SelectedSideName
		}
		fmt.Printf("  %2d × %-38s %12s\n", item.Quantity, name, item.Total.StringFixed(2))
	}
	fmt.Println(strings.Repeat("-", 60))
	fmt.Printf("  %-43s %12s\n", "Subtotal", s.Subtotal.StringFixed(2))
	if !s.Discount.IsZero() {
		fmt.Printf("  %-43s %12s\n", "Descuento", "-"+s.Discount.StringFixed(2))
	}
	fmt.Printf("  %-43s %12s\n", "TOTAL", s.FinalTotal.StringFixed(2))
	fmt.Println(strings.Repeat("-", 60))
}

func printDrafts(drafts []core.SaleDraft) {
	fmt.Println()
	fmt.Println(strings.Repeat("=", 70))
	fmt.Printf("  %-66s\n", "VENTAS MINIMIZADAS")
	fmt.Println(strings.Repeat("=", 70))
	if len(drafts) == 0 {
		fmt.Println("  No minimized sales.")
		fmt.Println(strings.Repeat("=", 70))
		return
	}
	fmt.Printf("  %-4s %-20s %-18s %6s\n", "#", "CUSTOMER", "KIND", "ITEMS")
	fmt.Println(strings.Repeat("-", 70))
	for i, d := range drafts {
		name := d.CustomerName
		if name == "" {
			name = "(sin nombre)"
		}
		fmt.Printf("  %-4d %-20s %-18s %6d\n", i+1, name, d.Kind, len(d.Items))
	}
	fmt.Println(strings.Repeat("=", 70))
	fmt.Println("  Use '/resume <#>' to continue one.")
}

func printRules(rules []core.KitchenProductionRule) {
	fmt.Println()
	fmt.Println(strings.Repeat("=", 62))
	fmt.Printf("  %-58s\n", "RECETAS DE PRODUCCIÓN")
	fmt.Println(strings.Repeat("=", 62))
	for i, r := range rules {
		fmt.Printf("  %d. %s (%d min)\n", i+1, r.Name, r.CookingTimeMinutes)
		for _, in := range r.Inputs {
			fmt.Printf("       uses %s × %s\n", in.Quantity.String(), in.InventoryID)
		}
		if r.Outputs.StockLogChicken > 0 {
			fmt.Printf("       yields %d chicken(s) for the fryer log\n", r.Outputs.StockLogChicken)
		}
		if r.Outputs.InventoryID != "" {
			fmt.Printf("       yields %s × %s\n", r.Outputs.Quantity.String(), r.Outputs.InventoryID)
		}
	}
	fmt.Println(strings.Repeat("=", 62))
}

func printReport(r *core.Report) {
	fmt.Println()
	fmt.Println(strings.Repeat("=", 70))
	fmt.Printf("  REPORTE %s — %s\n", r.Range, r.ReferenceDate.Format("2006-01-02"))
	fmt.Println(strings.Repeat("=", 70))
	fmt.Printf("  Ingresos (pagado) : Bs %s\n", r.TotalRevenue.StringFixed(2))
	fmt.Printf("  Gastos            : Bs %s\n", r.TotalExpenses.StringFixed(2))
	fmt.Printf("  Ganancia neta     : Bs %s\n", r.NetProfit.StringFixed(2))
	fmt.Println(strings.Repeat("-", 70))
	if len(r.Products) > 0 {
		fmt.Println("  PRODUCTOS MÁS VENDIDOS")
		fmt.Printf("  %-36s %8s %12s\n", "PRODUCT", "QTY", "TOTAL")
		for _, p := range r.Products {
			fmt.Printf("  %-36s %8d %12s\n", p.Name, p.Quantity, p.Total.StringFixed(2))
		}
		fmt.Println(strings.Repeat("-", 70))
	}
	if len(r.Customers) > 0 {
		fmt.Println("  MEJORES CLIENTES")
		fmt.Printf("  %-36s %8s %12s\n", "CUSTOMER", "ORDERS", "TOTAL")
		for _, c := range r.Customers {
			fmt.Printf("  %-36s %8d %12s\n", c.Name, c.Orders, c.Total.StringFixed(2))
		}
		fmt.Println(strings.Repeat("-", 70))
	}
	fmt.Printf("  %d sales, %d expenses in range\n", len(r.Sales), len(r.Expenses))
	fmt.Println(strings.Repeat("=", 70))
}

func printCommand(c *core.ParsedCommand) {
	fmt.Printf("\nCOMMAND: %s\n", c.Type)
	switch c.Type {
	case core.CommandSale:
		for _, item := range c.Items {
			line := fmt.Sprintf("  %d × %s", item.Quantity, item.ProductID)
			if item.VariantID != "" {
				line += " (" + item.VariantID + ")"
			}
			fmt.Println(line)
		}
		if c.Discount != "" && c.Discount != "0" {
			fmt.Printf("  discount: Bs %s\n", c.Discount)
		}
		if c.Paid {
			fmt.Printf("  paid: %s\n", c.PaymentMethod)
		}
	case core.CommandExpense:
		fmt.Printf("  %s — Bs %s\n", c.Description, c.Amount)
	case core.CommandAddStock:
		fmt.Printf("  fry %d chicken(s)\n", c.Quantity)
	}
}

func printHelp() {
	fmt.Println()
	fmt.Println("POLLOS BROASTER — COMMANDS")
	fmt.Println(strings.Repeat("=", 62))
	fmt.Println()
	fmt.Println("  VENTAS")
	fmt.Println("  /sale                          New sale (interactive)")
	fmt.Println("  /sales                         List all sales (newest first)")
	fmt.Println("  /pending                       List unpaid sales")
	fmt.Println("  /pay <sale#> <EFECTIVO|QR> [discount]   Confirm payment")
	fmt.Println("  /deliver <sale#>               Toggle delivered flag")
	fmt.Println("  /edit <sale#>                  Edit an existing sale's items")
	fmt.Println("  /drafts                        List minimized sales")
	fmt.Println("  /resume <draft#>               Resume a minimized sale")
	fmt.Println()
	fmt.Println("  COCINA Y STOCK")
	fmt.Println("  /stock                         Today's pieces/cuts + production log")
	fmt.Println("  /produce [n] [rule name]       Run a production rule (default: fry chickens)")
	fmt.Println("  /rules                         List production rules")
	fmt.Println("  /convert <pieces>              Convert whole pieces into cuts")
	fmt.Println("  /reschedule <log#> <HH:MM>     Move a production run on the clock")
	fmt.Println()
	fmt.Println("  CAJA E INVENTARIO")
	fmt.Println("  /cash                          Cash box balance")
	fmt.Println("  /inventory                     Pantry levels")
	fmt.Println("  /menu                          Product catalog")
	fmt.Println("  /buy <item-id> <qty> <Bs>      Buy inventory (expense + restock)")
	fmt.Println("  /expense <Bs> [description]    Operational expense")
	fmt.Println("  /withdraw <Bs> [description]   Take cash out")
	fmt.Println("  /deposit <Bs> [description]    Put cash in")
	fmt.Println()
	fmt.Println("  REPORTES")
	fmt.Println("  /report [day|week|month]       Revenue, expenses, rankings")
	fmt.Println("  /analyze                       AI summary of today's numbers")
	fmt.Println()
	fmt.Println("  SESSION")
	fmt.Println("  /reset                         Wipe everything (asks to confirm)")
	fmt.Println("  /help                          Show this help")
	fmt.Println("  /exit                          Exit")
	fmt.Println()
	fmt.Println("  AGENT MODE  (no / prefix)")
	fmt.Println("  Type an order, expense or stock instruction in plain words.")
	fmt.Println("  Example: \"2 presas con arroz para Juan, pagó en efectivo\"")
	fmt.Println(strings.Repeat("=", 62))
}
