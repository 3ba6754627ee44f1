package cmd

import (
	"database/sql"
	"fmt"
	"log"
	"sentimenttracker/api"
	"sentimenttracker/internal/logger"
	"sentimenttracker/internal/repository"
	"sentimenttracker/internal/service"
	"sentimenttracker/internal/util"

	_ "github.com/lib/pq"
)

func CloseDependencies(handler *api.ApiHandler) {
	err := handler.Db.Close()
	if err != nil {
		log.Fatalf("failed to close db: %v", err)
	}
	_ = handler.Logger.Sync()
}

// NewPriceRepository picks the provider used for win-rate pricing
func NewPriceRepository(secrets util.Secrets) (repository.PriceRepository, error) {
	switch secrets.PriceProvider {
	case util.PriceProviderStockPriceApi:
		return repository.NewStockPriceApiRepository(secrets.StockPriceApi.BaseUrl, secrets.StockPriceApi.Timeout()), nil
	case util.PriceProviderYahoo:
		return repository.NewYahooPriceRepository(), nil
	case util.PriceProviderAlpaca:
		return repository.NewAlpacaPriceRepository(secrets.Alpaca.ApiKey, secrets.Alpaca.ApiSecret, secrets.Alpaca.Endpoint), nil
	}
	return nil, fmt.Errorf("unknown price provider %s", secrets.PriceProvider)
}

// NewQuoteRepository backs the single-symbol quote endpoint. Alpaca
// when keys are configured, yahoo otherwise.
func NewQuoteRepository(secrets util.Secrets) repository.PriceRepository {
	if secrets.Alpaca.IsSet() {
		return repository.NewAlpacaPriceRepository(secrets.Alpaca.ApiKey, secrets.Alpaca.ApiSecret, secrets.Alpaca.Endpoint)
	}
	return repository.NewYahooPriceRepository()
}

func InitializeDependencies() (*api.ApiHandler, *util.Secrets, error) {
	secrets, err := util.LoadSecrets()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load secrets: %w", err)
	}

	dbConn, err := sql.Open("postgres", secrets.Db.ToConnectionStr())
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to db: %w", err)
	}

	priceRepository, err := NewPriceRepository(*secrets)
	if err != nil {
		return nil, nil, err
	}

	signalRepository := repository.NewSignalRepository(dbConn)
	basketRepository := repository.NewBasketRepository(dbConn)

	apiHandler := &api.ApiHandler{
		Db:               dbConn,
		Logger:           logger.New(),
		JwtDecodeToken:   secrets.Jwt,
		WinRateService:   service.NewWinRateService(signalRepository, priceRepository),
		BasketService:    service.NewBasketService(basketRepository),
		SentimentService: service.NewSentimentService(signalRepository),
		QuoteRepository:  NewQuoteRepository(*secrets),
	}

	return apiHandler, secrets, nil
}
