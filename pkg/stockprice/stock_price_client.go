package stockprice

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/shopspring/decimal"
)

// Client talks to the stock-price service that exposes
// GET {BaseUrl}/api/stock-price/current/{symbol}
type Client struct {
	HttpClient *http.Client
	BaseUrl    string
}

type CurrentPriceResponse struct {
	Symbol string          `json:"symbol"`
	Price  decimal.Decimal `json:"price"`
}

func (c Client) GetCurrentPrice(ctx context.Context, symbol string) (*CurrentPriceResponse, error) {
	if strings.TrimSpace(symbol) == "" {
		return nil, fmt.Errorf("symbol is required")
	}

	endpoint := fmt.Sprintf(
		"%s/api/stock-price/current/%s",
		strings.TrimRight(c.BaseUrl, "/"),
		url.PathEscape(symbol),
	)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	httpClient := c.HttpClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	response, err := httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to get current price for %s: %w", symbol, err)
	}
	defer response.Body.Close()

	body, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read price response for %s: %w", symbol, err)
	}
	if response.StatusCode < 200 || response.StatusCode > 299 {
		return nil, fmt.Errorf("API returned %d: %s", response.StatusCode, string(body))
	}

	out := CurrentPriceResponse{}
	err = json.Unmarshal(body, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to decode price response for %s: %w", symbol, err)
	}
	if out.Symbol == "" {
		out.Symbol = symbol
	}

	return &out, nil
}
