package core

import (
	"fmt"
	"regexp"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

// InternalPrefix marks synthetic bookkeeping expenses. Anything whose
// description starts with it is excluded from financial reporting.
const InternalPrefix = "INTERNAL"

// internalConvertPrefix marks piece→cut conversion events specifically.
const internalConvertPrefix = "INTERNAL_CONVERT"

var convertPattern = regexp.MustCompile(`^INTERNAL_CONVERT_(\d+)`)

// ConvertDescription builds the marker description for a conversion of the
// given number of pieces, e.g. "INTERNAL_CONVERT_5_PIECES".
func ConvertDescription(pieces int) string {
	return fmt.Sprintf("%s_%d_PIECES", internalConvertPrefix, pieces)
}

// ParseConvertedPieces extracts the piece count from a conversion marker
// description. ok is false for anything that is not a conversion event.
func ParseConvertedPieces(description string) (int, bool) {
	m := convertPattern.FindStringSubmatch(description)
	if m == nil {
		return 0, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return n, true
}

// sameDay reports whether two instants fall on the same calendar day in
// local time.
func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Local().Date()
	by, bm, bd := b.Local().Date()
	return ay == by && am == bm && ad == bd
}

// DeriveStock recomputes the current chicken-piece and cut-portion balances
// for the calendar day of referenceDate. It is a pure daily projection:
// history before that day is irrelevant, modeling a kitchen that restocks
// fresh each morning. The result is never persisted; callers must recompute
// whenever sales, stock logs, or expenses change.
func DeriveStock(sales []Sale, stockLogs []StockLog, expenses []Expense, referenceDate time.Time) StockSnapshot {
	piecesAdded := 0
	for _, log := range stockLogs {
		if sameDay(log.Timestamp, referenceDate) {
			piecesAdded += log.TotalPieces
		}
	}

	piecesConsumed := decimal.Zero
	cutsConsumed := 0
	for _, sale := range sales {
		if !sameDay(sale.Timestamp, referenceDate) {
			continue
		}
		for _, item := range sale.Items {
			if item.ConsumesCuts() {
				cutsConsumed += item.Quantity
			} else {
				piecesConsumed = piecesConsumed.Add(
					item.StockCostPerUnit.Mul(decimal.NewFromInt(int64(item.Quantity))))
			}
		}
	}

	piecesConverted := 0
	for _, e := range expenses {
		if !sameDay(e.Timestamp, referenceDate) {
			continue
		}
		if n, ok := ParseConvertedPieces(e.Description); ok {
			piecesConverted += n
		}
	}
	cutsProduced := piecesConverted * CutsPerPiece

	return StockSnapshot{
		ChickenPieces: decimal.NewFromInt(int64(piecesAdded)).
			Sub(piecesConsumed).
			Sub(decimal.NewFromInt(int64(piecesConverted))),
		CutPortions: decimal.NewFromInt(int64(cutsProduced - cutsConsumed)),
	}
}

// RequiredCuts sums the cut portions the given line items will consume.
func RequiredCuts(items []SaleItem) int {
	required := 0
	for _, item := range items {
		if item.ConsumesCuts() {
			required += item.Quantity
		}
	}
	return required
}

// PiecesToConvert returns how many whole pieces must be converted to cover
// a cut demand against the currently available cut stock: ceil(deficit / 3),
// or 0 when stock suffices.
func PiecesToConvert(requiredCuts int, availableCuts decimal.Decimal) int {
	if requiredCuts == 0 {
		return 0
	}
	deficit := decimal.NewFromInt(int64(requiredCuts)).Sub(availableCuts)
	if deficit.Sign() <= 0 {
		return 0
	}
	return int(deficit.Div(decimal.NewFromInt(CutsPerPiece)).Ceil().IntPart())
}

// RescheduleStockLog corrects the creation timestamp of one production log,
// returning the updated collection. Unknown ids leave it unchanged.
func RescheduleStockLog(logs []StockLog, id string, newTimestamp time.Time) []StockLog {
	out := make([]StockLog, len(logs))
	copy(out, logs)
	for i := range out {
		if out[i].ID == id {
			out[i].Timestamp = newTimestamp
		}
	}
	return out
}
