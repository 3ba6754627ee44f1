package repository

import (
	"context"
	"fmt"

	"github.com/alpacahq/alpaca-trade-api-go/v3/marketdata"
)

type alpacaRepositoryHandler struct {
	MdClient *marketdata.Client
}

func NewAlpacaPriceRepository(apiKey, apiSecret string, endpoint string) PriceRepository {
	mdClient := marketdata.NewClient(marketdata.ClientOpts{
		BaseURL:   endpoint,
		APIKey:    apiKey,
		APISecret: apiSecret,
	})

	return alpacaRepositoryHandler{
		MdClient: mdClient,
	}
}

// GetCurrentPrice returns the latest bid, or the ask when there
// is no bid (e.g. outside market hours)
func (h alpacaRepositoryHandler) GetCurrentPrice(ctx context.Context, symbol string) (float64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	quote, err := h.MdClient.GetLatestQuote(symbol, marketdata.GetLatestQuoteRequest{})
	if err != nil {
		return 0, fmt.Errorf("failed to get latest quote for %s: %w", symbol, err)
	}
	if quote == nil {
		return 0, fmt.Errorf("no quote found for %s", symbol)
	}

	price := quote.BidPrice
	if price == 0 {
		price = quote.AskPrice
	}
	if price == 0 {
		return 0, fmt.Errorf("failed to get price for %s: got 0 price", symbol)
	}

	return price, nil
}
