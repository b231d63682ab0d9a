package sales

import (
	"sort"

	"github.com/shopspring/decimal"
)

// CategoryTotal is one product's share of the aggregated amount.
type CategoryTotal struct {
	Product    string
	Total      decimal.Decimal
	Percentage decimal.Decimal // of the grand total, rounded to 1 decimal place
}

// Summary holds the statistics derived from a record set. All amounts are
// summed in decimal arithmetic so that many small additions do not drift.
type Summary struct {
	TotalAmount       decimal.Decimal
	AveragePerProduct decimal.Decimal // total / distinct product count
	AveragePerSale    decimal.Decimal // total / record count
	DistinctProducts  int
	RecordCount       int

	// Categories ranked by descending total; ties keep first-encountered
	// order.
	Categories []CategoryTotal
}

// percentScale matches the dashboard's one-decimal percentage display.
const percentScale = 1

// averageScale keeps derived averages at currency precision.
const averageScale = 2

// Summarize computes display statistics for a record set. It never mutates
// its input and tolerates an empty set: every figure is zero rather than a
// division failure.
func Summarize(records []Sale) Summary {
	totals := make(map[string]decimal.Decimal, len(records))
	order := make([]string, 0, len(records))

	total := decimal.Zero
	for _, r := range records {
		amount := decimal.NewFromFloat(r.Amount)
		total = total.Add(amount)
		if prev, ok := totals[r.Product]; ok {
			totals[r.Product] = prev.Add(amount)
		} else {
			totals[r.Product] = amount
			order = append(order, r.Product)
		}
	}

	categories := make([]CategoryTotal, 0, len(order))
	for _, product := range order {
		categories = append(categories, CategoryTotal{
			Product:    product,
			Total:      totals[product],
			Percentage: percentageOf(totals[product], total),
		})
	}
	sort.SliceStable(categories, func(i, j int) bool {
		return categories[i].Total.GreaterThan(categories[j].Total)
	})

	s := Summary{
		TotalAmount:      total,
		DistinctProducts: len(order),
		RecordCount:      len(records),
		Categories:       categories,
	}
	if len(order) > 0 {
		s.AveragePerProduct = total.DivRound(decimal.NewFromInt(int64(len(order))), averageScale)
	}
	if len(records) > 0 {
		s.AveragePerSale = total.DivRound(decimal.NewFromInt(int64(len(records))), averageScale)
	}
	return s
}

// percentageOf returns part/total*100 at display precision, and zero (not a
// division error) when the total is zero.
func percentageOf(part, total decimal.Decimal) decimal.Decimal {
	if total.IsZero() {
		return decimal.Zero
	}
	return part.Mul(decimal.NewFromInt(100)).DivRound(total, percentScale)
}

// Latest returns the first n records of the set, which the dashboard feeds
// with a date-descending listing to show the most recent sales.
func Latest(records []Sale, n int) []Sale {
	if n > len(records) {
		n = len(records)
	}
	if n <= 0 {
		return nil
	}
	out := make([]Sale, n)
	copy(out, records[:n])
	return out
}
