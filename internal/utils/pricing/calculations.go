package pricing

import (
	"sort"
	"time"

	"github.com/SscSPs/buylog/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ranksBefore orders valued quotes by total cost, then earliest creation, then id.
// The id step only matters for quotes created in the same instant and keeps the order total.
func ranksBefore(a, b domain.ValuedQuote) bool {
	if c := a.TotalCost.Cmp(b.TotalCost); c != 0 {
		return c < 0
	}
	if !a.Quote.CreatedAt.Equal(b.Quote.CreatedAt) {
		return a.Quote.CreatedAt.Before(b.Quote.CreatedAt)
	}
	return a.Quote.QuoteID < b.Quote.QuoteID
}

// SelectBest returns the cheapest valued quote. Ties go to the earliest created quote.
// ok is false for an empty input.
func SelectBest(quotes []domain.ValuedQuote) (best domain.ValuedQuote, ok bool) {
	for i, vq := range quotes {
		if i == 0 || ranksBefore(vq, best) {
			best = vq
		}
	}
	return best, len(quotes) > 0
}

// RankQuotes sorts valued quotes cheapest first using the same ordering as SelectBest.
func RankQuotes(quotes []domain.ValuedQuote) {
	sort.SliceStable(quotes, func(i, j int) bool {
		return ranksBefore(quotes[i], quotes[j])
	})
}

// OrderHistory sorts entries oldest first by timestamp, falling back to storage sequence.
func OrderHistory(entries []domain.QuoteHistoryEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		if !entries[i].RecordedAt.Equal(entries[j].RecordedAt) {
			return entries[i].RecordedAt.Before(entries[j].RecordedAt)
		}
		return entries[i].Sequence < entries[j].Sequence
	})
}

// ClassifyTrend labels the latest change of an oldest-first history.
// Fewer than two entries is NEW.
func ClassifyTrend(history []domain.QuoteHistoryEntry) domain.Trend {
	if len(history) < 2 {
		return domain.TrendNew
	}
	latest := history[len(history)-1].NewTotal
	previous := history[len(history)-2].NewTotal
	switch latest.Cmp(previous) {
	case 1:
		return domain.TrendUp
	case -1:
		return domain.TrendDown
	default:
		return domain.TrendStable
	}
}

// EvaluateAlerts returns the alerts that fire at bestPrice, already marked triggered at now.
// A nil bestPrice means the product has no quotes and nothing fires.
// Inactive and already triggered alerts are skipped.
func EvaluateAlerts(bestPrice *decimal.Decimal, alerts []domain.PriceAlert, now time.Time) []domain.PriceAlert {
	if bestPrice == nil {
		return nil
	}
	var triggered []domain.PriceAlert
	for _, alert := range alerts {
		if !alert.Armed() {
			continue
		}
		if bestPrice.LessThanOrEqual(alert.Threshold) {
			at := now
			alert.IsTriggered = true
			alert.TriggeredAt = &at
			alert.LastUpdatedAt = now
			triggered = append(triggered, alert)
		}
	}
	return triggered
}

// Summary holds the aggregate figures of a ranked comparison.
type Summary struct {
	Best, Worst, Average, Spread decimal.Decimal
}

// Summarize computes best, worst, average and spread of ranked quotes.
// ok is false for an empty input.
func Summarize(ranked []domain.ValuedQuote) (s Summary, ok bool) {
	if len(ranked) == 0 {
		return Summary{}, false
	}
	sum := decimal.Zero
	s.Best = ranked[0].TotalCost
	s.Worst = ranked[0].TotalCost
	for _, vq := range ranked {
		sum = sum.Add(vq.TotalCost)
		if vq.TotalCost.LessThan(s.Best) {
			s.Best = vq.TotalCost
		}
		if vq.TotalCost.GreaterThan(s.Worst) {
			s.Worst = vq.TotalCost
		}
	}
	s.Average = sum.Div(decimal.NewFromInt(int64(len(ranked))))
	s.Spread = s.Worst.Sub(s.Best)
	return s, true
}
