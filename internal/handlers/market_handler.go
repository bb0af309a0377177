package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"bankapp/internal/quotes"
)

// QuoteProvider serves a quote listing. Implementations never fail; they fall
// back to a static snapshot instead.
type QuoteProvider interface {
	Quotes(ctx context.Context) quotes.Result
}

// MarketHandler proxies third-party price feeds.
type MarketHandler struct {
	stocks QuoteProvider
	crypto QuoteProvider
}

// NewMarketHandler creates a new MarketHandler.
func NewMarketHandler(stocks, crypto QuoteProvider) *MarketHandler {
	return &MarketHandler{stocks: stocks, crypto: crypto}
}

// JSEStocks returns quotes for the JSE bank stocks in cents.
// @Summary     JSE bank stocks
// @Tags        market
// @Produce     json
// @Success     200 {object} quotes.Result "Quotes"
// @Router      /stocks/jse [get]
func (h *MarketHandler) JSEStocks(c *gin.Context) {
	c.JSON(http.StatusOK, h.stocks.Quotes(c.Request.Context()))
}

// CryptoPrices returns quotes for the major cryptocurrencies in ZAR cents.
// @Summary     Crypto prices
// @Tags        market
// @Produce     json
// @Success     200 {object} quotes.Result "Quotes"
// @Router      /crypto/prices [get]
func (h *MarketHandler) CryptoPrices(c *gin.Context) {
	c.JSON(http.StatusOK, h.crypto.Quotes(c.Request.Context()))
}
