package core_test

import (
	"testing"
	"time"

	"deli-pos/internal/core"
)

func paidSale(ts time.Time, customer string, total string, items ...core.SaleItem) core.Sale {
	method := core.PaymentCash
	return core.Sale{
		ID:            "sale-" + customer + total,
		Timestamp:     ts,
		CustomerName:  customer,
		Items:         items,
		Subtotal:      dec(total),
		FinalTotal:    dec(total),
		Status:        core.StatusPagado,
		PaymentMethod: &method,
	}
}

func TestBuildReport_DayFigures(t *testing.T) {
	now := time.Now()
	sales := []core.Sale{
		paidSale(now, "Juan", "30", core.SaleItem{ProductName: "Pollo Broaster", Quantity: 2, Total: dec("30")}),
		paidSale(now, "", "10", core.SaleItem{ProductName: "Mocochinchi", Quantity: 2, Total: dec("10")}),
		{
			ID: "pending", Timestamp: now, CustomerName: "Ana",
			Items:    []core.SaleItem{{ProductName: "Pollo Broaster", Quantity: 1, Total: dec("15")}},
			Subtotal: dec("15"), FinalTotal: dec("15"), Status: core.StatusPendiente,
		},
	}
	expenses := []core.Expense{
		{ID: "e1", Timestamp: now, Description: "Compra: aceite", Amount: dec("25"), Type: core.ExpenseInventory},
		{ID: "e2", Timestamp: now, Description: core.ConvertDescription(2), Amount: dec("0"), Type: core.ExpenseOperational},
	}

	report := core.BuildReport(sales, expenses, core.RangeDay, now)

	// Pending sales are listed but never counted as revenue.
	if report.TotalRevenue.String() != "40" {
		t.Errorf("revenue = %s, want 40", report.TotalRevenue)
	}
	if len(report.Sales) != 3 {
		t.Errorf("listed sales = %d, want 3", len(report.Sales))
	}

	// The conversion marker is bookkeeping, not a business expense.
	if report.TotalExpenses.String() != "25" {
		t.Errorf("expenses = %s, want 25", report.TotalExpenses)
	}
	if len(report.Expenses) != 1 {
		t.Errorf("listed expenses = %d, want 1", len(report.Expenses))
	}

	if report.NetProfit.String() != "15" {
		t.Errorf("net = %s, want 15", report.NetProfit)
	}

	// Product ranking counts paid sales only.
	if len(report.Products) != 2 {
		t.Fatalf("product rows = %d, want 2", len(report.Products))
	}
	if report.Products[0].Name != "Pollo Broaster" || report.Products[0].Quantity != 2 {
		t.Errorf("top product = %+v", report.Products[0])
	}

	// Nameless sales group under the casual-customer label.
	foundCasual := false
	for _, c := range report.Customers {
		if c.Name == "Cliente Casual" {
			foundCasual = true
			if c.Orders != 1 || c.Total.String() != "10" {
				t.Errorf("casual customer row = %+v", c)
			}
		}
	}
	if !foundCasual {
		t.Error("nameless sale not grouped under Cliente Casual")
	}
}

func TestBuildReport_Ranges(t *testing.T) {
	ref := time.Date(2026, time.March, 15, 12, 0, 0, 0, time.Local)

	sales := []core.Sale{
		paidSale(ref, "today", "10"),
		paidSale(ref.AddDate(0, 0, -3), "this-week", "20"),
		paidSale(ref.AddDate(0, 0, -10), "this-month", "40"),
		paidSale(ref.AddDate(0, -1, 0), "last-month", "80"),
	}

	tests := []struct {
		rng  core.ReportRange
		want string
	}{
		{core.RangeDay, "10"},
		{core.RangeWeek, "30"},
		{core.RangeMonth, "70"},
	}

	for _, tt := range tests {
		t.Run(string(tt.rng), func(t *testing.T) {
			report := core.BuildReport(sales, nil, tt.rng, ref)
			if report.TotalRevenue.String() != tt.want {
				t.Errorf("revenue = %s, want %s", report.TotalRevenue, tt.want)
			}
		})
	}
}

func TestBuildReport_WeekIsSymmetric(t *testing.T) {
	ref := time.Date(2026, time.March, 15, 12, 0, 0, 0, time.Local)
	sales := []core.Sale{
		paidSale(ref.AddDate(0, 0, 5), "future", "10"),
		paidSale(ref.AddDate(0, 0, -5), "past", "20"),
		paidSale(ref.AddDate(0, 0, 8), "too-far", "40"),
	}

	report := core.BuildReport(sales, nil, core.RangeWeek, ref)
	if report.TotalRevenue.String() != "30" {
		t.Errorf("revenue = %s, want 30 (±7 day window)", report.TotalRevenue)
	}
}

func TestBuildReport_SortsByRevenue(t *testing.T) {
	now := time.Now()
	sales := []core.Sale{
		paidSale(now, "small", "5", core.SaleItem{ProductName: "Mocochinchi", Quantity: 1, Total: dec("5")}),
		paidSale(now, "big", "60", core.SaleItem{ProductName: "Pollo Entero", Quantity: 1, Total: dec("60")}),
		paidSale(now, "mid", "15", core.SaleItem{ProductName: "Presa", Quantity: 1, Total: dec("15")}),
	}

	report := core.BuildReport(sales, nil, core.RangeDay, now)
	for i := 1; i < len(report.Products); i++ {
		if report.Products[i].Total.GreaterThan(report.Products[i-1].Total) {
			t.Errorf("products not sorted by revenue: %s after %s",
				report.Products[i].Name, report.Products[i-1].Name)
		}
	}
	if report.Customers[0].Name != "big" {
		t.Errorf("top customer = %s, want big", report.Customers[0].Name)
	}
}
