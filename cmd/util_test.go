package cmd

import (
	"sentimenttracker/internal/util"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewPriceRepository(t *testing.T) {
	t.Run("each provider", func(t *testing.T) {
		for _, provider := range []util.PriceProvider{
			util.PriceProviderStockPriceApi,
			util.PriceProviderYahoo,
			util.PriceProviderAlpaca,
		} {
			out, err := NewPriceRepository(util.Secrets{
				PriceProvider: provider,
				StockPriceApi: util.StockPriceApiConfig{BaseUrl: "http://localhost:8080"},
				Alpaca:        util.AlpacaSecrets{ApiKey: "key", ApiSecret: "secret"},
			})
			require.NoError(t, err)
			require.NotNil(t, out)
		}
	})

	t.Run("unknown provider", func(t *testing.T) {
		_, err := NewPriceRepository(util.Secrets{PriceProvider: "bloomberg"})
		require.Error(t, err)
	})
}
