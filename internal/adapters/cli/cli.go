package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"deli-pos/internal/app"
	"deli-pos/internal/core"

	"github.com/shopspring/decimal"
)

// Run executes a one-shot CLI command and exits.
// args is os.Args[1:], with the subcommand name first.
func Run(ctx context.Context, svc app.ApplicationService, args []string) {
	switch args[0] {
	case "parse", "p":
		if len(args) < 2 {
			log.Fatal("Usage: app parse \"<order or expense in plain words>\"")
		}
		cmd, err := svc.InterpretCommand(ctx, args[1])
		if err != nil {
			log.Fatalf("Agent error: %v", err)
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		enc.Encode(cmd)

	case "exec", "x":
		var cmd core.ParsedCommand
		if err := json.NewDecoder(os.Stdin).Decode(&cmd); err != nil {
			log.Fatalf("Invalid JSON: %v", err)
		}
		cmd.Normalize()
		result, err := svc.ExecuteCommand(ctx, cmd)
		if err != nil {
			log.Fatalf("Execution failed: %v", err)
		}
		if result.Type == core.CommandSale {
			// Sales need operator review; commit the staged draft directly.
			saved, err := svc.SaveSale(ctx, app.SaveSaleRequest{
				Items:         result.Draft.Items,
				OrderType:     result.Draft.OrderType,
				CustomerName:  result.Draft.CustomerName,
				Discount:      result.Draft.Discount,
				Delivered:     result.Draft.Delivered,
				Paid:          result.Draft.Paid,
				PaymentMethod: result.Draft.PaymentMethod,
			})
			if err != nil {
				log.Fatalf("Failed to save sale: %v", err)
			}
			fmt.Printf("Sale saved: Bs %s (%s)\n", saved.Sale.FinalTotal.StringFixed(2), saved.Sale.Status)
			return
		}
		fmt.Println("Command executed.")

	case "produce":
		mult := 1
		if len(args) >= 2 {
			n, err := strconv.Atoi(args[1])
			if err != nil || n < 1 {
				log.Fatalf("Invalid multiplier: %s", args[1])
			}
			mult = n
		}
		rules := svc.ProductionRules()
		result, err := svc.RunProduction(ctx, app.ProductionRequest{RuleName: rules[0].Name, Multiplier: mult})
		if err != nil {
			log.Fatalf("Production failed: %v", err)
		}
		if result.StockLog != nil {
			fmt.Printf("Frying %d chicken(s): %d pieces, ready at %s\n",
				result.StockLog.QuantityChickens, result.StockLog.TotalPieces,
				result.StockLog.TargetCompletionTime.Format("15:04"))
		}

	case "expense":
		if len(args) < 3 {
			log.Fatal("Usage: app expense <amount-Bs> \"<description>\"")
		}
		amount, err := decimal.NewFromString(args[1])
		if err != nil || !amount.IsPositive() {
			log.Fatalf("Invalid amount: %s", args[1])
		}
		result, err := svc.RecordTransaction(ctx, app.TransactionRequest{
			Description: args[2],
			Amount:      amount,
			Type:        core.ExpenseOperational,
		})
		if err != nil {
			log.Fatalf("Failed to record expense: %v", err)
		}
		fmt.Printf("Expense recorded. Caja: Bs %s\n", result.Cash.StringFixed(2))

	case "stock":
		stock := svc.StockLevels()
		fmt.Printf("Presas: %s\nCortes: %s\n", stock.ChickenPieces.String(), stock.CutPortions.String())

	case "cash":
		fmt.Printf("Caja: Bs %s\n", svc.CashBalance().StringFixed(2))

	case "report":
		rng := core.RangeDay
		if len(args) >= 2 {
			switch strings.ToLower(args[1]) {
			case "day":
				rng = core.RangeDay
			case "week":
				rng = core.RangeWeek
			case "month":
				rng = core.RangeMonth
			default:
				log.Fatalf("Unknown range: %s (day|week|month)", args[1])
			}
		}
		report, err := svc.GetReport(ctx, rng, time.Now())
		if err != nil {
			log.Fatalf("Failed to build report: %v", err)
		}
		printReport(report)

	case "analyze":
		summary, err := svc.AnalyzeBusinessDay(ctx)
		if err != nil {
			log.Fatalf("Analysis failed: %v", err)
		}
		fmt.Println(summary)

	default:
		log.Fatalf("Unknown command: %s\nAvailable: parse, exec, produce, expense, stock, cash, report, analyze", args[0])
	}
}

func printReport(r *core.Report) {
	fmt.Println()
	fmt.Println(strings.Repeat("=", 62))
	fmt.Printf("  REPORTE %s — %s\n", r.Range, r.ReferenceDate.Format("2006-01-02"))
	fmt.Println(strings.Repeat("=", 62))
	fmt.Printf("  Ingresos (pagado) : Bs %s\n", r.TotalRevenue.StringFixed(2))
	fmt.Printf("  Gastos            : Bs %s\n", r.TotalExpenses.StringFixed(2))
	fmt.Printf("  Ganancia neta     : Bs %s\n", r.NetProfit.StringFixed(2))
	fmt.Println(strings.Repeat("-", 62))
	fmt.Printf("  %-36s %8s %12s\n", "PRODUCT", "QTY", "TOTAL")
	for _, p := range r.Products {
		fmt.Printf("  %-36s %8d %12s\n", p.Name, p.Quantity, p.Total.StringFixed(2))
	}
	fmt.Println(strings.Repeat("=", 62))
}
