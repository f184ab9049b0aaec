package app

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"deli-pos/internal/ai"
	"deli-pos/internal/core"
	"deli-pos/internal/store"
)

type appService struct {
	mu    sync.Mutex
	store store.Store
	agent ai.AgentService
	now   func() time.Time

	sales     []core.Sale
	expenses  []core.Expense
	products  []core.Product
	inventory []core.InventoryItem
	stockLogs []core.StockLog
	drafts    []core.SaleDraft
	cash      decimal.Decimal
	rules     []core.KitchenProductionRule
	stock     core.StockSnapshot
	stockAsOf time.Time
}

// NewAppService loads persisted state from the store, falling back to the
// default menu and pantry on first run, and derives the initial stock
// position. The agent may be nil; AI operations then return an error.
func NewAppService(ctx context.Context, st store.Store, agent ai.AgentService) ApplicationService {
	s := &appService{
		store: st,
		agent: agent,
		now:   time.Now,
		cash:  decimal.Zero,
		rules: core.KitchenRules(),
	}
	s.products = core.DefaultMenu()
	s.inventory = core.DefaultInventory()

	store.LoadOr(ctx, st, store.KeySales, &s.sales)
	store.LoadOr(ctx, st, store.KeyExpenses, &s.expenses)
	store.LoadOr(ctx, st, store.KeyProducts, &s.products)
	store.LoadOr(ctx, st, store.KeyInventory, &s.inventory)
	store.LoadOr(ctx, st, store.KeyStockLogs, &s.stockLogs)
	store.LoadOr(ctx, st, store.KeyDrafts, &s.drafts)
	store.LoadOr(ctx, st, store.KeyGlobalCash, &s.cash)

	s.refreshStock()
	return s
}

// refreshStock recomputes today's stock position from the full history.
// Callers must hold s.mu.
func (s *appService) refreshStock() {
	s.stockAsOf = s.now()
	s.stock = core.DeriveStock(s.sales, s.stockLogs, s.expenses, s.stockAsOf)
}

// currentStockLocked returns the cached stock snapshot, re-deriving it first
// when the cache was computed on an earlier calendar day. A session idling
// past midnight must not keep serving yesterday's projection. Callers must
// hold s.mu.
func (s *appService) currentStockLocked() core.StockSnapshot {
	if !sameCalendarDay(s.stockAsOf, s.now()) {
		s.refreshStock()
	}
	return s.stock
}

func sameCalendarDay(a, b time.Time) bool {
	ay, am, ad := a.Local().Date()
	by, bm, bd := b.Local().Date()
	return ay == by && am == bm && ad == bd
}

// persist saves one slice of state, logging rather than failing the
// operation when the store is unavailable. The in-memory state is the
// source of truth for the running session.
func (s *appService) persist(ctx context.Context, key string, value any) {
	if err := s.store.Save(ctx, key, value); err != nil {
		log.Printf("failed to persist %s: %v", key, err)
	}
}

// ── Read accessors ──────────────────────────────────────────────────────────

func (s *appService) StockLevels() core.StockSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currentStockLocked()
}

func (s *appService) CashBalance() decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cash
}

func (s *appService) ListSales() []core.Sale {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sales
}

func (s *appService) ListExpenses() []core.Expense {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.expenses
}

func (s *appService) ListProducts() []core.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.products
}

func (s *appService) ListInventory() []core.InventoryItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inventory
}

func (s *appService) ListStockLogs() []core.StockLog {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stockLogs
}

func (s *appService) ListDrafts() []core.SaleDraft {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.drafts
}

func (s *appService) ProductionRules() []core.KitchenProductionRule {
	return s.rules
}

// ── Sales lifecycle ─────────────────────────────────────────────────────────

func (s *appService) SaveSale(ctx context.Context, req SaveSaleRequest) (*SaleResult, error) {
	if len(req.Items) == 0 {
		return nil, fmt.Errorf("sale has no items")
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	// Cover cut-portion demand by converting whole pieces first, so the
	// stock derivation sees the conversion before the sale consumes it.
	converted := core.PiecesToConvert(core.RequiredCuts(req.Items), s.currentStockLocked().CutPortions)
	if converted > 0 {
		exp := core.ConversionTransaction(converted, s.now())
		s.expenses = append([]core.Expense{exp}, s.expenses...)
		s.persist(ctx, store.KeyExpenses, s.expenses)
	}

	s.inventory = core.ApplySaleInventory(req.Items, req.OrderType, s.products, s.inventory)
	s.persist(ctx, store.KeyInventory, s.inventory)

	input := core.SaleInput{
		Items:         req.Items,
		OrderType:     req.OrderType,
		CustomerName:  req.CustomerName,
		Timestamp:     req.Timestamp,
		Discount:      req.Discount,
		Delivered:     req.Delivered,
		Paid:          req.Paid,
		PaymentMethod: req.PaymentMethod,
	}

	var sale core.Sale
	edited := false
	if req.OriginalSaleID != "" {
		if existing, ok := core.FindSale(s.sales, req.OriginalSaleID); ok {
			sale = core.EditSale(existing, input)
			s.sales = core.ReplaceSale(s.sales, sale)
			edited = true
		}
	}
	if !edited {
		var credit decimal.Decimal
		sale, credit = core.NewSale(input, s.now())
		s.sales = core.PrependSale(s.sales, sale)
		if !credit.IsZero() {
			s.cash = s.cash.Add(credit)
			s.persist(ctx, store.KeyGlobalCash, s.cash)
		}
	}
	s.persist(ctx, store.KeySales, s.sales)
	s.refreshStock()

	return &SaleResult{Sale: sale, Stock: s.stock, ConvertedPieces: converted}, nil
}

func (s *appService) ConfirmPayment(ctx context.Context, saleID string, method core.PaymentMethod, discount decimal.Decimal) (*SaleResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	updated, credit := core.ApplyPayment(s.sales, saleID, method, discount)
	sale, ok := core.FindSale(updated, saleID)
	if !ok {
		return nil, fmt.Errorf("sale %s not found", saleID)
	}
	s.sales = updated
	s.cash = s.cash.Add(credit)
	s.persist(ctx, store.KeySales, s.sales)
	s.persist(ctx, store.KeyGlobalCash, s.cash)
	s.refreshStock()

	return &SaleResult{Sale: sale, Stock: s.stock}, nil
}

func (s *appService) ToggleDelivered(ctx context.Context, saleID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := core.FindSale(s.sales, saleID); !ok {
		return fmt.Errorf("sale %s not found", saleID)
	}
	s.sales = core.ToggleDelivered(s.sales, saleID)
	s.persist(ctx, store.KeySales, s.sales)
	return nil
}

func (s *appService) MinimizeSale(ctx context.Context, draft core.SaleDraft) error {
	if len(draft.Items) == 0 {
		return fmt.Errorf("draft has no items")
	}
	if draft.Kind == "" {
		if draft.OriginalSaleID != "" {
			draft.Kind = core.DraftEditingExisting
		} else {
			draft.Kind = core.DraftNew
		}
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	s.drafts = core.PushDraft(s.drafts, draft)
	s.persist(ctx, store.KeyDrafts, s.drafts)
	return nil
}

func (s *appService) ResumeDraft(ctx context.Context, index int) (*ResumedDraft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	remaining, draft := core.TakeDraft(s.drafts, index)
	if draft == nil {
		return nil, fmt.Errorf("no draft at position %d", index)
	}
	s.drafts = remaining
	s.persist(ctx, store.KeyDrafts, s.drafts)

	result := &ResumedDraft{Draft: *draft}
	if draft.Kind == core.DraftEditingExisting && draft.OriginalSaleID != "" {
		if sale, ok := core.FindSale(s.sales, draft.OriginalSaleID); ok {
			result.Original = &sale
		}
	}
	return result, nil
}

// ── Money and stock ─────────────────────────────────────────────────────────

func (s *appService) RecordTransaction(ctx context.Context, req TransactionRequest) (*TransactionResult, error) {
	if strings.TrimSpace(req.Description) == "" {
		return nil, fmt.Errorf("transaction description is required")
	}
	if req.Amount.IsNegative() {
		return nil, fmt.Errorf("transaction amount cannot be negative")
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	res := s.recordTransactionLocked(ctx, req.Description, req.Amount, req.Type, req.Purchase)
	return &TransactionResult{Expense: res, Cash: s.cash}, nil
}

// recordTransactionLocked applies a financial transaction and persists
// the affected state. Callers must hold s.mu.
func (s *appService) recordTransactionLocked(ctx context.Context, description string, amount decimal.Decimal, txType core.TransactionType, purchase *core.InventoryPurchase) core.Expense {
	res := core.RecordTransaction(s.inventory, description, amount, txType, purchase, s.now())
	s.expenses = append([]core.Expense{res.Expense}, s.expenses...)
	s.persist(ctx, store.KeyExpenses, s.expenses)

	if !res.CashDelta.IsZero() {
		s.cash = s.cash.Add(res.CashDelta)
		s.persist(ctx, store.KeyGlobalCash, s.cash)
	}
	if purchase != nil {
		s.inventory = res.Inventory
		s.persist(ctx, store.KeyInventory, s.inventory)
	}
	s.refreshStock()
	return res.Expense
}

func (s *appService) ConvertCuts(ctx context.Context, pieces int) error {
	if pieces <= 0 {
		return fmt.Errorf("conversion requires a positive piece count")
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	s.recordTransactionLocked(ctx, core.ConvertDescription(pieces), decimal.Zero, core.ExpenseOperational, nil)
	return nil
}

func (s *appService) RunProduction(ctx context.Context, req ProductionRequest) (*ProductionResult, error) {
	rule, ok := core.FindRule(s.rules, req.RuleName)
	if !ok {
		return nil, fmt.Errorf("production rule %q not found", req.RuleName)
	}
	if req.Multiplier <= 0 {
		return nil, fmt.Errorf("production multiplier must be positive")
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	start := req.StartTime
	if start.IsZero() {
		start = s.now()
	}
	return s.produceLocked(ctx, rule, req.Multiplier, start), nil
}

// produceLocked runs one production rule and persists the affected state.
// Callers must hold s.mu.
func (s *appService) produceLocked(ctx context.Context, rule core.KitchenProductionRule, multiplier int, start time.Time) *ProductionResult {
	result := core.Produce(s.inventory, rule, multiplier, start)
	s.inventory = result.Inventory
	s.persist(ctx, store.KeyInventory, s.inventory)
	if result.StockLog != nil {
		s.stockLogs = append([]core.StockLog{*result.StockLog}, s.stockLogs...)
		s.persist(ctx, store.KeyStockLogs, s.stockLogs)
	}
	s.refreshStock()

	return &ProductionResult{StockLog: result.StockLog, Stock: s.stock}
}

func (s *appService) RescheduleStockLog(ctx context.Context, logID string, newTimestamp time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stockLogs = core.RescheduleStockLog(s.stockLogs, logID, newTimestamp)
	s.persist(ctx, store.KeyStockLogs, s.stockLogs)
	s.refreshStock()
	return nil
}

// ── Catalog management ──────────────────────────────────────────────────────

func (s *appService) UpdateProducts(ctx context.Context, products []core.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.products = products
	s.persist(ctx, store.KeyProducts, s.products)
	return nil
}

func (s *appService) UpdateInventory(ctx context.Context, items []core.InventoryItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.inventory = items
	s.persist(ctx, store.KeyInventory, s.inventory)
	return nil
}

// ── Reporting and AI ────────────────────────────────────────────────────────

func (s *appService) GetReport(ctx context.Context, rng core.ReportRange, date time.Time) (*core.Report, error) {
	if date.IsZero() {
		date = s.now()
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	return core.BuildReport(s.sales, s.expenses, rng, date), nil
}

func (s *appService) InterpretCommand(ctx context.Context, text string) (*core.ParsedCommand, error) {
	if s.agent == nil {
		return nil, fmt.Errorf("AI assistant is not configured")
	}
	s.mu.Lock()
	menu := menuDigest(s.products)
	s.mu.Unlock()

	return s.agent.ParseCommand(ctx, text, menu)
}

func (s *appService) ExecuteCommand(ctx context.Context, cmd core.ParsedCommand) (*CommandResult, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	switch cmd.Type {
	case core.CommandSale:
		items := core.ResolveCommandItems(s.products, cmd.Items)
		if len(items) == 0 {
			return nil, fmt.Errorf("none of the requested products exist")
		}
		draft := core.SaleDraft{
			Kind:          core.DraftNew,
			OrderType:     core.DineIn,
			Items:         items,
			Discount:      cmd.DiscountValue(),
			Delivered:     cmd.Delivered,
			Paid:          cmd.Paid,
			PaymentMethod: cmd.Method(),
		}
		return &CommandResult{Type: cmd.Type, Draft: &draft}, nil

	case core.CommandExpense:
		exp := s.recordTransactionLocked(ctx, cmd.Description, cmd.AmountValue(), core.ExpenseOperational, nil)
		return &CommandResult{Type: cmd.Type, Expense: &exp}, nil

	case core.CommandAddStock:
		result := s.produceLocked(ctx, s.rules[0], cmd.Quantity, s.now())
		return &CommandResult{Type: cmd.Type, StockLog: result.StockLog}, nil
	}
	return nil, fmt.Errorf("unsupported command type: %s", cmd.Type)
}

func (s *appService) AnalyzeBusinessDay(ctx context.Context) (string, error) {
	if s.agent == nil {
		return "", fmt.Errorf("AI assistant is not configured")
	}
	s.mu.Lock()
	report := core.BuildReport(s.sales, s.expenses, core.RangeDay, s.now())
	stock := s.currentStockLocked()
	s.mu.Unlock()

	digest := businessDigest(report, stock)
	return s.agent.AnalyzeBusinessDay(ctx, digest)
}

// menuDigest renders the product catalog as a compact listing the model
// can resolve product and variant IDs against.
func menuDigest(products []core.Product) string {
	var b strings.Builder
	for _, p := range products {
		fmt.Fprintf(&b, "- %s (id=%s, Bs %s)\n", p.Name, p.ID, p.Price.StringFixed(2))
		for _, v := range p.Variants {
			fmt.Fprintf(&b, "  - variant %s (id=%s, Bs %s)\n", v.Name, v.ID, v.Price.StringFixed(2))
		}
	}
	return b.String()
}

func businessDigest(r *core.Report, stock core.StockSnapshot) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Ingresos del día (ventas pagadas): Bs %s\n", r.TotalRevenue.StringFixed(2))
	fmt.Fprintf(&b, "Gastos del día: Bs %s\n", r.TotalExpenses.StringFixed(2))
	fmt.Fprintf(&b, "Ganancia neta: Bs %s\n", r.NetProfit.StringFixed(2))
	fmt.Fprintf(&b, "Ventas registradas: %d\n", len(r.Sales))

	pending := 0
	for _, sale := range r.Sales {
		if sale.Status == core.StatusPendiente {
			pending++
		}
	}
	fmt.Fprintf(&b, "Ventas pendientes de pago: %d\n", pending)
	fmt.Fprintf(&b, "Stock actual: %s presas, %s cortes\n", stock.ChickenPieces.String(), stock.CutPortions.String())

	if len(r.Products) > 0 {
		b.WriteString("Productos más vendidos:\n")
		limit := len(r.Products)
		if limit > 5 {
			limit = 5
		}
		for _, p := range r.Products[:limit] {
			fmt.Fprintf(&b, "- %s: %d unidades, Bs %s\n", p.Name, p.Quantity, p.Total.StringFixed(2))
		}
	}
	return b.String()
}

// ── Danger zone ─────────────────────────────────────────────────────────────

func (s *appService) ResetAllData(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.Reset(ctx); err != nil {
		return fmt.Errorf("failed to reset store: %w", err)
	}
	s.sales = nil
	s.expenses = nil
	s.stockLogs = nil
	s.drafts = nil
	s.cash = decimal.Zero
	s.products = core.DefaultMenu()
	s.inventory = core.DefaultInventory()
	s.refreshStock()
	return nil
}
