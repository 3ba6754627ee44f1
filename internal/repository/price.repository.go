package repository

import (
	"context"
	"fmt"
	"net/http"
	"sentimenttracker/pkg/stockprice"
	"time"

	"github.com/piquette/finance-go/chart"
	"github.com/piquette/finance-go/datetime"
)

// PriceRepository looks up the current price of a single symbol
type PriceRepository interface {
	GetCurrentPrice(ctx context.Context, symbol string) (float64, error)
}

type stockPriceApiRepositoryHandler struct {
	Client stockprice.Client
}

func NewStockPriceApiRepository(baseUrl string, timeout time.Duration) PriceRepository {
	return stockPriceApiRepositoryHandler{
		Client: stockprice.Client{
			HttpClient: &http.Client{Timeout: timeout},
			BaseUrl:    baseUrl,
		},
	}
}

func (h stockPriceApiRepositoryHandler) GetCurrentPrice(ctx context.Context, symbol string) (float64, error) {
	result, err := h.Client.GetCurrentPrice(ctx, symbol)
	if err != nil {
		return 0, err
	}
	return result.Price.InexactFloat64(), nil
}

type yahooPriceRepositoryHandler struct {
	// how far back to look for the latest close
	Lookback time.Duration
}

func NewYahooPriceRepository() PriceRepository {
	return yahooPriceRepositoryHandler{
		Lookback: 7 * 24 * time.Hour,
	}
}

// GetCurrentPrice uses the most recent daily adjusted close
func (h yahooPriceRepositoryHandler) GetCurrentPrice(ctx context.Context, symbol string) (float64, error) {
	now := time.Now()
	start := now.Add(-h.Lookback)
	params := &chart.Params{
		Start:    datetime.New(&start),
		End:      datetime.New(&now),
		Symbol:   symbol,
		Interval: datetime.OneDay,
	}
	iter := chart.Get(params)

	price := 0.0
	found := false
	for iter.Next() {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		price = iter.Bar().AdjClose.InexactFloat64()
		found = true
	}
	if err := iter.Err(); err != nil {
		return 0, fmt.Errorf("failed to get prices for %s: %w", symbol, err)
	}
	if !found {
		return 0, fmt.Errorf("no recent prices found for %s", symbol)
	}

	return price, nil
}
