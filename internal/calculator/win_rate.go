package calculator

import "sentimenttracker/internal/domain"

// ComputeWinRate scores each signal against the current price of its
// symbol. Rows with no entry price or a neutral sentiment can't win or
// lose and are left out of the denominator. Missing prices count as 0.
func ComputeWinRate(signals []domain.SignalRow, currentPrices map[string]float64) domain.WinRate {
	wins := 0
	losses := 0

	for _, signal := range signals {
		if signal.EntryPrice == 0 {
			continue
		}
		currentPrice := currentPrices[signal.Symbol]

		switch signal.Sentiment {
		case domain.SentimentPositive:
			if currentPrice >= signal.EntryPrice {
				wins++
			} else {
				losses++
			}
		case domain.SentimentNegative:
			if currentPrice <= signal.EntryPrice {
				wins++
			} else {
				losses++
			}
		}
	}

	out := domain.WinRate{
		Wins:   wins,
		Losses: losses,
	}
	if total := wins + losses; total > 0 {
		out.WinRate = float64(wins) / float64(total) * 100
	}
	return out
}

// UniqueSymbols preserves first-seen order
func UniqueSymbols(signalSets ...[]domain.SignalRow) []string {
	seen := map[string]bool{}
	out := []string{}
	for _, signals := range signalSets {
		for _, s := range signals {
			if s.Symbol == "" || seen[s.Symbol] {
				continue
			}
			seen[s.Symbol] = true
			out = append(out, s.Symbol)
		}
	}
	return out
}
