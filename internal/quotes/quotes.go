// Package quotes proxies third-party market data for the JSE bank stocks and
// major cryptocurrencies. Prices are returned in cents; when every upstream
// request fails a static snapshot is served instead.
package quotes

import (
	"context"
	"sync"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"bankapp/internal/logger"
)

const userAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36"

// maxParallel bounds concurrent upstream requests per call.
const maxParallel = 5

// Quote is a single instrument price. Monetary fields are in cents.
type Quote struct {
	Symbol        string  `json:"symbol"`
	Name          string  `json:"name"`
	Exchange      string  `json:"exchange"`
	Price         int64   `json:"price"`
	Change        int64   `json:"change"`
	ChangePercent float64 `json:"changePercent"`
	Open          int64   `json:"open,omitempty"`
	High          int64   `json:"high,omitempty"`
	Low           int64   `json:"low,omitempty"`
	Volume        int64   `json:"volume"`
	MarketCap     int64   `json:"marketCap"`
	PE            float64 `json:"pe,omitempty"`
	DividendYield float64 `json:"dividendYield,omitempty"`
	Icon          string  `json:"icon"`
}

// Result is the response body for a quote listing.
type Result struct {
	Success  bool    `json:"success"`
	Fallback bool    `json:"fallback"`
	Data     []Quote `json:"data"`
}

// Instrument identifies something to fetch a quote for.
type Instrument struct {
	Symbol string
	Name   string
	Icon   string
}

// fetchFunc fetches a quote for one instrument.
type fetchFunc func(ctx context.Context, inst Instrument) (Quote, error)

// fetchAll fetches every instrument in parallel, keeping input order and
// skipping failures. Falls back to the static snapshot when nothing succeeds.
func fetchAll(ctx context.Context, source string, instruments []Instrument, fetch fetchFunc, fallback []Quote) Result {
	quotes := make([]*Quote, len(instruments))
	var mu sync.Mutex
	failures := 0

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxParallel)
	for i, inst := range instruments {
		g.Go(func() error {
			q, err := fetch(gctx, inst)
			if err != nil {
				logger.Get().Warnw("quote fetch failed", "source", source, "symbol", inst.Symbol, "error", err)
				mu.Lock()
				failures++
				mu.Unlock()
				return nil
			}
			quotes[i] = &q
			return nil
		})
	}
	_ = g.Wait()

	data := make([]Quote, 0, len(instruments))
	for _, q := range quotes {
		if q != nil {
			data = append(data, *q)
		}
	}

	if len(data) == 0 {
		logger.Get().Warnw("all quote fetches failed", "source", source, "failures", failures)
		return fallbackResult(source, fallback)
	}
	return Result{Success: true, Data: data}
}

// fallbackResult serves a copy of the static snapshot.
func fallbackResult(source string, fallback []Quote) Result {
	logger.Get().Infow("serving fallback quotes", "source", source)
	return Result{Success: true, Fallback: true, Data: append([]Quote(nil), fallback...)}
}

// roundCents rounds a float amount that is already in cents.
func roundCents(v float64) int64 {
	return decimal.NewFromFloat(v).Round(0).IntPart()
}

// percentChange returns change/base as a percentage rounded to two places.
func percentChange(change, base float64) float64 {
	if base == 0 {
		return 0
	}
	return decimal.NewFromFloat(change).
		Div(decimal.NewFromFloat(base)).
		Mul(decimal.NewFromInt(100)).
		Round(2).
		InexactFloat64()
}
