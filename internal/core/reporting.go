package core

import (
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// ── Report types ──────────────────────────────────────────────────────────────

type ReportRange string

const (
	RangeDay   ReportRange = "DAY"
	RangeWeek  ReportRange = "WEEK"
	RangeMonth ReportRange = "MONTH"
)

// ProductSales is one row of the product ranking: units and revenue for one
// product display name, paid sales only.
type ProductSales struct {
	Name     string
	Quantity int
	Total    decimal.Decimal
}

// CustomerStats is one row of the customer ranking.
type CustomerStats struct {
	Name      string
	Orders    int
	Total     decimal.Decimal
	LastVisit time.Time
}

// Report is the financial summary for one date range. Revenue counts only
// PAGADO sales' final totals; expense figures exclude internal bookkeeping
// rows entirely.
type Report struct {
	Range         ReportRange
	ReferenceDate time.Time
	TotalRevenue  decimal.Decimal
	TotalExpenses decimal.Decimal
	NetProfit     decimal.Decimal
	Products      []ProductSales  // sorted by revenue, highest first
	Customers     []CustomerStats // sorted by spend, highest first
	Sales         []Sale          // chronological, newest first
	Expenses      []Expense       // internal rows already filtered out
}

// defaultCustomerLabel groups sales recorded without a customer name.
const defaultCustomerLabel = "Cliente Casual"

// ── Range filtering ───────────────────────────────────────────────────────────

// inRange reports whether an instant belongs to the reporting window around
// the reference date. DAY is same calendar day, WEEK is anything within
// seven days of the reference in either direction, MONTH is same calendar
// month and year.
func inRange(ts, ref time.Time, rng ReportRange) bool {
	switch rng {
	case RangeDay:
		return sameDay(ts, ref)
	case RangeWeek:
		diff := ts.Sub(ref)
		if diff < 0 {
			diff = -diff
		}
		return diff < 7*24*time.Hour
	case RangeMonth:
		return ts.Local().Month() == ref.Local().Month() && ts.Local().Year() == ref.Local().Year()
	}
	return false
}

// ── BuildReport ───────────────────────────────────────────────────────────────

// BuildReport aggregates sales and expenses over the requested range. Pure:
// identical inputs always yield an identical report.
func BuildReport(sales []Sale, expenses []Expense, rng ReportRange, referenceDate time.Time) *Report {
	report := &Report{
		Range:         rng,
		ReferenceDate: referenceDate,
		TotalRevenue:  decimal.Zero,
		TotalExpenses: decimal.Zero,
	}

	products := make(map[string]*ProductSales)
	customers := make(map[string]*CustomerStats)

	for _, sale := range sales {
		if !inRange(sale.Timestamp, referenceDate, rng) {
			continue
		}
		report.Sales = append(report.Sales, sale)

		if sale.Status != StatusPagado {
			continue
		}
		report.TotalRevenue = report.TotalRevenue.Add(sale.FinalTotal)

		for _, item := range sale.Items {
			ps, ok := products[item.ProductName]
			if !ok {
				ps = &ProductSales{Name: item.ProductName, Total: decimal.Zero}
				products[item.ProductName] = ps
			}
			ps.Quantity += item.Quantity
			ps.Total = ps.Total.Add(item.Total)
		}

		name := sale.CustomerName
		if name == "" {
			name = defaultCustomerLabel
		}
		cs, ok := customers[name]
		if !ok {
			cs = &CustomerStats{Name: name, Total: decimal.Zero}
			customers[name] = cs
		}
		cs.Orders++
		cs.Total = cs.Total.Add(sale.FinalTotal)
		if sale.Timestamp.After(cs.LastVisit) {
			cs.LastVisit = sale.Timestamp
		}
	}

	for _, e := range expenses {
		// Internal bookkeeping rows never reach any financial figure.
		if strings.HasPrefix(e.Description, InternalPrefix) {
			continue
		}
		if !inRange(e.Timestamp, referenceDate, rng) {
			continue
		}
		report.Expenses = append(report.Expenses, e)
		report.TotalExpenses = report.TotalExpenses.Add(e.Amount)
	}

	report.NetProfit = report.TotalRevenue.Sub(report.TotalExpenses)

	for _, ps := range products {
		report.Products = append(report.Products, *ps)
	}
	sort.Slice(report.Products, func(i, j int) bool {
		return report.Products[i].Total.GreaterThan(report.Products[j].Total)
	})

	for _, cs := range customers {
		report.Customers = append(report.Customers, *cs)
	}
	sort.Slice(report.Customers, func(i, j int) bool {
		return report.Customers[i].Total.GreaterThan(report.Customers[j].Total)
	})

	sort.Slice(report.Sales, func(i, j int) bool {
		return report.Sales[i].Timestamp.After(report.Sales[j].Timestamp)
	})

	return report
}
