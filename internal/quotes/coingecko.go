package quotes

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/shopspring/decimal"

	"bankapp/internal/logger"
)

const coinGeckoBaseURL = "https://api.coingecko.com/api/v3"

// coinGeckoIDs maps ticker symbols to CoinGecko coin IDs.
var coinGeckoIDs = map[string]string{
	"BTC": "bitcoin",
	"ETH": "ethereum",
	"SOL": "solana",
	"XRP": "ripple",
	"ADA": "cardano",
}

// Cryptos are the coins served by /api/crypto/prices.
var Cryptos = []Instrument{
	{Symbol: "BTC", Name: "Bitcoin", Icon: "₿"},
	{Symbol: "ETH", Name: "Ethereum", Icon: "Ξ"},
	{Symbol: "SOL", Name: "Solana", Icon: "◎"},
	{Symbol: "XRP", Name: "XRP", Icon: "✕"},
	{Symbol: "ADA", Name: "Cardano", Icon: "₳"},
}

// cryptoFallback holds ZAR prices in cents, served when CoinGecko is unreachable.
var cryptoFallback = []Quote{
	{Symbol: "BTC", Name: "Bitcoin", Exchange: "CoinGecko", Price: 104567850, ChangePercent: 2.34, MarketCap: 20500000000000, Volume: 850000000000, Icon: "₿"},
	{Symbol: "ETH", Name: "Ethereum", Exchange: "CoinGecko", Price: 3845675, ChangePercent: -1.23, MarketCap: 4620000000000, Volume: 320000000000, Icon: "Ξ"},
	{Symbol: "SOL", Name: "Solana", Exchange: "CoinGecko", Price: 234580, ChangePercent: 5.67, MarketCap: 980000000000, Volume: 78000000000, Icon: "◎"},
	{Symbol: "XRP", Name: "XRP", Exchange: "CoinGecko", Price: 1125, ChangePercent: 1.89, MarketCap: 625000000000, Volume: 95000000000, Icon: "✕"},
	{Symbol: "ADA", Name: "Cardano", Exchange: "CoinGecko", Price: 890, ChangePercent: 2.15, MarketCap: 315000000000, Volume: 42000000000, Icon: "₳"},
}

// LookupCoinGeckoID returns the CoinGecko ID for a ticker symbol.
func LookupCoinGeckoID(symbol string) (string, bool) {
	id, ok := coinGeckoIDs[strings.ToUpper(symbol)]
	return id, ok
}

type coinGeckoMarket struct {
	ID                       string  `json:"id"`
	Symbol                   string  `json:"symbol"`
	CurrentPrice             float64 `json:"current_price"`
	PriceChange24h           float64 `json:"price_change_24h"`
	PriceChangePercentage24h float64 `json:"price_change_percentage_24h"`
	MarketCap                float64 `json:"market_cap"`
	TotalVolume              float64 `json:"total_volume"`
	High24h                  float64 `json:"high_24h"`
	Low24h                   float64 `json:"low_24h"`
}

// CryptoProvider fetches USD market data from CoinGecko and converts it to ZAR cents.
type CryptoProvider struct {
	httpClient *http.Client
	baseURL    string // overridable for tests
	usdZAR     decimal.Decimal
}

// NewCryptoProvider creates a CoinGecko provider converting at the given USD/ZAR rate.
func NewCryptoProvider(httpClient *http.Client, usdZARRate string) (*CryptoProvider, error) {
	rate, err := decimal.NewFromString(usdZARRate)
	if err != nil {
		return nil, fmt.Errorf("invalid USD/ZAR rate %q: %w", usdZARRate, err)
	}
	if !rate.IsPositive() {
		return nil, fmt.Errorf("USD/ZAR rate must be positive, got %s", rate)
	}
	return &CryptoProvider{httpClient: httpClient, baseURL: coinGeckoBaseURL, usdZAR: rate}, nil
}

// Name returns the provider's display name.
func (p *CryptoProvider) Name() string { return "CoinGecko" }

// Quotes fetches all supported coins in a single markets request.
func (p *CryptoProvider) Quotes(ctx context.Context) Result {
	markets, err := p.fetchMarkets(ctx)
	if err != nil {
		logger.Get().Warnw("markets request failed", "source", p.Name(), "error", err)
		return fallbackResult(p.Name(), cryptoFallback)
	}

	data := make([]Quote, 0, len(Cryptos))
	for _, inst := range Cryptos {
		id, _ := LookupCoinGeckoID(inst.Symbol)
		m, ok := markets[id]
		if !ok {
			logger.Get().Warnw("symbol missing from markets response", "source", p.Name(), "symbol", inst.Symbol)
			continue
		}
		data = append(data, p.toQuote(inst, m))
	}

	if len(data) == 0 {
		return fallbackResult(p.Name(), cryptoFallback)
	}
	return Result{Success: true, Data: data}
}

func (p *CryptoProvider) fetchMarkets(ctx context.Context) (map[string]coinGeckoMarket, error) {
	ids := make([]string, 0, len(Cryptos))
	for _, c := range Cryptos {
		if id, ok := LookupCoinGeckoID(c.Symbol); ok {
			ids = append(ids, id)
		}
	}

	q := url.Values{}
	q.Set("vs_currency", "usd")
	q.Set("ids", strings.Join(ids, ","))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.baseURL+"/coins/markets?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	var markets []coinGeckoMarket
	if err := json.NewDecoder(resp.Body).Decode(&markets); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}

	byID := make(map[string]coinGeckoMarket, len(markets))
	for _, m := range markets {
		byID[m.ID] = m
	}
	return byID, nil
}

// toZARCents converts a USD amount into ZAR cents.
func (p *CryptoProvider) toZARCents(usd float64) int64 {
	return decimal.NewFromFloat(usd).Mul(p.usdZAR).Mul(decimal.NewFromInt(100)).Round(0).IntPart()
}

func (p *CryptoProvider) toQuote(inst Instrument, m coinGeckoMarket) Quote {
	return Quote{
		Symbol:        inst.Symbol,
		Name:          inst.Name,
		Exchange:      p.Name(),
		Price:         p.toZARCents(m.CurrentPrice),
		Change:        p.toZARCents(m.PriceChange24h),
		ChangePercent: decimal.NewFromFloat(m.PriceChangePercentage24h).Round(2).InexactFloat64(),
		High:          p.toZARCents(m.High24h),
		Low:           p.toZARCents(m.Low24h),
		Volume:        p.toZARCents(m.TotalVolume),
		MarketCap:     p.toZARCents(m.MarketCap),
		Icon:          inst.Icon,
	}
}
