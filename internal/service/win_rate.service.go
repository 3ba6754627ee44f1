package service

import (
	"context"
	"fmt"
	"sentimenttracker/internal/calculator"
	"sentimenttracker/internal/domain"
	"sentimenttracker/internal/logger"
	"sentimenttracker/internal/repository"
	"sync"
)

type WinRateService interface {
	GetAggregatedWinRates(ctx context.Context) (*domain.AggregatedWinRates, error)
	GetWinRates(ctx context.Context) (map[domain.Source]domain.WinRate, error)
}

func NewWinRateService(
	signalRepository repository.SignalRepository,
	priceRepository repository.PriceRepository,
) WinRateService {
	return winRateServiceHandler{
		SignalRepository: signalRepository,
		PriceRepository:  priceRepository,
		NumWorkers:       10,
	}
}

type winRateServiceHandler struct {
	SignalRepository repository.SignalRepository
	PriceRepository  repository.PriceRepository
	NumWorkers       int
}

func (h winRateServiceHandler) GetAggregatedWinRates(ctx context.Context) (*domain.AggregatedWinRates, error) {
	winRates, err := h.GetWinRates(ctx)
	if err != nil {
		return nil, err
	}

	out := domain.AggregatedWinRates{}
	for source, w := range winRates {
		out.Set(source, w.WinRate)
	}

	return &out, nil
}

func (h winRateServiceHandler) GetWinRates(ctx context.Context) (map[domain.Source]domain.WinRate, error) {
	signalsBySource := map[domain.Source][]domain.SignalRow{}
	signalSets := [][]domain.SignalRow{}
	for _, source := range domain.AllSources {
		signals, err := h.SignalRepository.List(source)
		if err != nil {
			return nil, fmt.Errorf("failed to get %s signals: %w", source, err)
		}
		signalsBySource[source] = signals
		signalSets = append(signalSets, signals)
	}

	symbols := calculator.UniqueSymbols(signalSets...)
	currentPrices := h.getCurrentPrices(ctx, symbols)

	out := map[domain.Source]domain.WinRate{}
	for source, signals := range signalsBySource {
		out[source] = calculator.ComputeWinRate(signals, currentPrices)
	}

	return out, nil
}

// getCurrentPrices fetches every symbol once. Failed lookups are
// logged and left at 0.
func (h winRateServiceHandler) getCurrentPrices(ctx context.Context, symbols []string) map[string]float64 {
	log := logger.FromContext(ctx)

	numWorkers := h.NumWorkers
	if numWorkers <= 0 {
		numWorkers = 1
	}

	out := map[string]float64{}
	for _, symbol := range symbols {
		out[symbol] = 0
	}

	inputCh := make(chan string, len(symbols))
	for _, s := range symbols {
		inputCh <- s
	}
	close(inputCh)

	var (
		wg sync.WaitGroup
		mu sync.Mutex
	)
	for i := 0; i < numWorkers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for symbol := range inputCh {
				price, err := h.PriceRepository.GetCurrentPrice(ctx, symbol)
				if err != nil {
					log.Warnf("failed to get current price for %s: %s", symbol, err.Error())
					continue
				}
				mu.Lock()
				out[symbol] = price
				mu.Unlock()
			}
		}()
	}

	wg.Wait()

	return out
}
