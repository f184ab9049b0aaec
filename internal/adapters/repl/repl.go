package repl

import (
	"bufio"
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"deli-pos/internal/app"
	"deli-pos/internal/core"

	"github.com/shopspring/decimal"
)

// Run starts the interactive REPL loop.
// It reads commands from reader, dispatches slash commands deterministically,
// and routes natural language input through the AI command parser.
func Run(ctx context.Context, svc app.ApplicationService, reader *bufio.Reader) {
	stock := svc.StockLevels()

	fmt.Println("Pollos Broaster — Caja")
	fmt.Printf("Stock: %s presas, %s cortes | Caja: Bs %s\n",
		stock.ChickenPieces.String(), stock.CutPortions.String(), svc.CashBalance().StringFixed(2))
	fmt.Println("Describe an order in plain words, or use /help for commands.")
	fmt.Println(strings.Repeat("-", 70))

	errExit := fmt.Errorf("exit")

	dispatchSlash := func(input string) error {
		tokens := strings.Fields(strings.TrimPrefix(input, "/"))
		if len(tokens) == 0 {
			return nil
		}
		cmd := strings.ToLower(tokens[0])
		args := tokens[1:]

		switch cmd {
		case "stock":
			printStock(svc.StockLevels(), svc.ListStockLogs())

		case "cash", "caja":
			fmt.Printf("Caja: Bs %s\n", svc.CashBalance().StringFixed(2))

		case "inventory", "inv":
			printInventory(svc.ListInventory())

		case "menu":
			printMenu(svc.ListProducts())

		case "sales", "pending":
			pendingOnly := cmd == "pending"
			printSales(svc.ListSales(), pendingOnly)

		case "sale", "new-sale":
			handleNewSale(ctx, reader, svc, nil)

		case "pay":
			if len(args) < 2 {
				fmt.Println("Usage: /pay <sale#> <EFECTIVO|QR> [discount]")
				return nil
			}
			sale, ok := saleByIndex(svc.ListSales(), args[0])
			if !ok {
				fmt.Printf("No sale #%s\n", args[0])
				return nil
			}
			method := core.PaymentMethod(strings.ToUpper(args[1]))
			if method != core.PaymentCash && method != core.PaymentQR {
				fmt.Println("Payment method must be EFECTIVO or QR.")
				return nil
			}
			discount := sale.Discount
			if len(args) >= 3 {
				d, err := decimal.NewFromString(args[2])
				if err != nil || d.IsNegative() {
					fmt.Printf("Invalid discount: %s\n", args[2])
					return nil
				}
				discount = d
			}
			result, err := svc.ConfirmPayment(ctx, sale.ID, method, discount)
			if err != nil {
				return err
			}
			fmt.Printf("Sale paid: Bs %s (%s). Caja: Bs %s\n",
				result.Sale.FinalTotal.StringFixed(2), method, svc.CashBalance().StringFixed(2))

		case "deliver":
			if len(args) < 1 {
				fmt.Println("Usage: /deliver <sale#>")
				return nil
			}
			sale, ok := saleByIndex(svc.ListSales(), args[0])
			if !ok {
				fmt.Printf("No sale #%s\n", args[0])
				return nil
			}
			if err := svc.ToggleDelivered(ctx, sale.ID); err != nil {
				return err
			}
			fmt.Printf("Delivery flag toggled for %s.\n", sale.CustomerName)

		case "edit":
			if len(args) < 1 {
				fmt.Println("Usage: /edit <sale#>")
				return nil
			}
			sale, ok := saleByIndex(svc.ListSales(), args[0])
			if !ok {
				fmt.Printf("No sale #%s\n", args[0])
				return nil
			}
			draft := core.SaleDraft{
				Kind:           core.DraftEditingExisting,
				OriginalSaleID: sale.ID,
				CustomerName:   sale.CustomerName,
				OrderType:      sale.OrderType,
				Items:          sale.Items,
				Discount:       sale.Discount,
				Delivered:      sale.Delivered,
			}
			handleNewSale(ctx, reader, svc, &draft)

		case "drafts":
			printDrafts(svc.ListDrafts())

		case "resume":
			if len(args) < 1 {
				fmt.Println("Usage: /resume <draft#>")
				return nil
			}
			idx, err := strconv.Atoi(args[0])
			if err != nil || idx < 1 {
				fmt.Printf("Invalid draft number: %s\n", args[0])
				return nil
			}
			resumed, err := svc.ResumeDraft(ctx, idx-1)
			if err != nil {
				return err
			}
			handleNewSale(ctx, reader, svc, &resumed.Draft)

		case "produce":
			// Usage: /produce [multiplier] [rule name...]
			mult := 1
			ruleArgs := args
			if len(args) > 0 {
				if n, err := strconv.Atoi(args[0]); err == nil {
					mult = n
					ruleArgs = args[1:]
				}
			}
			rules := svc.ProductionRules()
			ruleName := rules[0].Name
			if len(ruleArgs) > 0 {
				ruleName = strings.Join(ruleArgs, " ")
			}
			result, err := svc.RunProduction(ctx, app.ProductionRequest{RuleName: ruleName, Multiplier: mult})
			if err != nil {
				return err
			}
			if result.StockLog != nil {
				fmt.Printf("Production started: %s ×%d → %d pieces, ready at %s\n",
					ruleName, mult, result.StockLog.TotalPieces,
					result.StockLog.TargetCompletionTime.Format("15:04"))
			} else {
				fmt.Printf("Production run complete: %s ×%d\n", ruleName, mult)
			}

		case "rules":
			printRules(svc.ProductionRules())

		case "convert":
			if len(args) < 1 {
				fmt.Println("Usage: /convert <pieces>")
				return nil
			}
			pieces, err := strconv.Atoi(args[0])
			if err != nil || pieces < 1 {
				fmt.Printf("Invalid piece count: %s\n", args[0])
				return nil
			}
			if err := svc.ConvertCuts(ctx, pieces); err != nil {
				return err
			}
			stock := svc.StockLevels()
			fmt.Printf("Converted %d pieces into cuts. Stock: %s presas, %s cortes\n",
				pieces, stock.ChickenPieces.String(), stock.CutPortions.String())

		case "buy":
			// Usage: /buy <inventory-id> <qty> <amount>
			if len(args) < 3 {
				fmt.Println("Usage: /buy <inventory-id> <qty> <amount-Bs>")
				return nil
			}
			qty, err := decimal.NewFromString(args[1])
			if err != nil || !qty.IsPositive() {
				fmt.Printf("Invalid quantity: %s\n", args[1])
				return nil
			}
			amount, err := decimal.NewFromString(args[2])
			if err != nil || amount.IsNegative() {
				fmt.Printf("Invalid amount: %s\n", args[2])
				return nil
			}
			itemName := args[0]
			for _, item := range svc.ListInventory() {
				if item.ID == args[0] {
					itemName = item.Name
				}
			}
			result, err := svc.RecordTransaction(ctx, app.TransactionRequest{
				Description: fmt.Sprintf("Compra: %s", itemName),
				Amount:      amount,
				Type:        core.ExpenseInventory,
				Purchase:    &core.InventoryPurchase{ItemID: args[0], Quantity: qty},
			})
			if err != nil {
				return err
			}
			fmt.Printf("Purchase recorded: Bs %s. Caja: Bs %s\n",
				amount.StringFixed(2), result.Cash.StringFixed(2))

		case "expense", "withdraw", "deposit":
			txType := core.ExpenseOperational
			switch cmd {
			case "withdraw":
				txType = core.Withdrawal
			case "deposit":
				txType = core.Deposit
			}
			if len(args) < 1 {
				fmt.Printf("Usage: /%s <amount-Bs> [description...]\n", cmd)
				return nil
			}
			amount, err := decimal.NewFromString(args[0])
			if err != nil || !amount.IsPositive() {
				fmt.Printf("Invalid amount: %s\n", args[0])
				return nil
			}
			description := strings.Join(args[1:], " ")
			if description == "" {
				description = strings.ToUpper(cmd[:1]) + cmd[1:]
			}
			result, err := svc.RecordTransaction(ctx, app.TransactionRequest{
				Description: description,
				Amount:      amount,
				Type:        txType,
			})
			if err != nil {
				return err
			}
			fmt.Printf("%s recorded: Bs %s. Caja: Bs %s\n",
				result.Expense.Type, amount.StringFixed(2), result.Cash.StringFixed(2))

		case "report":
			rng := core.RangeDay
			if len(args) > 0 {
				switch strings.ToLower(args[0]) {
				case "day", "dia":
					rng = core.RangeDay
				case "week", "semana":
					rng = core.RangeWeek
				case "month", "mes":
					rng = core.RangeMonth
				default:
					fmt.Println("Usage: /report [day|week|month]")
					return nil
				}
			}
			report, err := svc.GetReport(ctx, rng, time.Now())
			if err != nil {
				return err
			}
			printReport(report)

		case "reschedule":
			if len(args) < 2 {
				fmt.Println("Usage: /reschedule <log#> <HH:MM>")
				return nil
			}
			logs := svc.ListStockLogs()
			idx, err := strconv.Atoi(args[0])
			if err != nil || idx < 1 || idx > len(logs) {
				fmt.Printf("No stock log #%s\n", args[0])
				return nil
			}
			clock, err := time.Parse("15:04", args[1])
			if err != nil {
				fmt.Printf("Invalid time %q, expected HH:MM\n", args[1])
				return nil
			}
			now := time.Now()
			ts := time.Date(now.Year(), now.Month(), now.Day(), clock.Hour(), clock.Minute(), 0, 0, now.Location())
			if err := svc.RescheduleStockLog(ctx, logs[idx-1].ID, ts); err != nil {
				return err
			}
			fmt.Printf("Stock log moved to %s. Stock recalculated.\n", ts.Format("15:04"))

		case "analyze":
			fmt.Println("[AI] Analyzing today's numbers...")
			summary, err := svc.AnalyzeBusinessDay(ctx)
			if err != nil {
				return err
			}
			fmt.Println()
			fmt.Println(summary)

		case "reset":
			fmt.Print("This wipes ALL sales, expenses and stock history. Type 'yes' to confirm: ")
			confirm, _ := reader.ReadString('\n')
			if strings.TrimSpace(strings.ToLower(confirm)) != "yes" {
				fmt.Println("Reset cancelled.")
				return nil
			}
			if err := svc.ResetAllData(ctx); err != nil {
				return err
			}
			fmt.Println("All data wiped. Default menu and pantry restored.")

		case "help", "h":
			printHelp()

		case "exit", "quit", "e", "q":
			return errExit

		default:
			fmt.Printf("Unknown command: /%s  (type /help for all commands)\n", cmd)
		}
		return nil
	}

	for {
		fmt.Print("\n> ")
		input, _ := reader.ReadString('\n')
		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}

		// Slash prefix → deterministic command dispatcher, no AI invoked.
		if strings.HasPrefix(input, "/") {
			if err := dispatchSlash(input); err != nil {
				if err == errExit {
					fmt.Println("Hasta luego!")
					break
				}
				fmt.Printf("Error: %v\n", err)
			}
			continue
		}

		// No slash prefix → route to the AI command parser.
		fmt.Println("[AI] Processing...")
		cmd, err := svc.InterpretCommand(ctx, input)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			continue
		}

		printCommand(cmd)
		fmt.Print("\nExecute? (y/n): ")
		choice, _ := reader.ReadString('\n')
		choice = strings.TrimSpace(strings.ToLower(choice))
		if choice != "y" && choice != "yes" {
			fmt.Println("Cancelled.")
			continue
		}

		result, err := svc.ExecuteCommand(ctx, *cmd)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			continue
		}

		switch result.Type {
		case core.CommandSale:
			// A SALE stages a draft: let the operator adjust it before saving.
			handleNewSale(ctx, reader, svc, result.Draft)
		case core.CommandExpense:
			fmt.Printf("Expense recorded: %s — Bs %s. Caja: Bs %s\n",
				result.Expense.Description, result.Expense.Amount.StringFixed(2),
				svc.CashBalance().StringFixed(2))
		case core.CommandAddStock:
			if result.StockLog != nil {
				fmt.Printf("Frying started: %d pieces, ready at %s\n",
					result.StockLog.TotalPieces, result.StockLog.TargetCompletionTime.Format("15:04"))
			}
		}
	}
}

// saleByIndex resolves a 1-based position in the newest-first sales list.
func saleByIndex(sales []core.Sale, arg string) (core.Sale, bool) {
	idx, err := strconv.Atoi(arg)
	if err != nil || idx < 1 || idx > len(sales) {
		return core.Sale{}, false
	}
	return sales[idx-1], true
}
