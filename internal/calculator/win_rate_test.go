package calculator

import (
	"sentimenttracker/internal/domain"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestComputeWinRate(t *testing.T) {
	date := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	t.Run("single positive win", func(t *testing.T) {
		out := ComputeWinRate(
			[]domain.SignalRow{
				{Date: date, Symbol: "X", Sentiment: domain.SentimentPositive, EntryPrice: 100},
			},
			map[string]float64{"X": 110},
		)
		require.Equal(t, domain.WinRate{Wins: 1, Losses: 0, WinRate: 100}, out)
	})

	t.Run("all losses", func(t *testing.T) {
		out := ComputeWinRate(
			[]domain.SignalRow{
				{Symbol: "X", Sentiment: domain.SentimentPositive, EntryPrice: 100},
				{Symbol: "Y", Sentiment: domain.SentimentNegative, EntryPrice: 50},
			},
			map[string]float64{"X": 90, "Y": 60},
		)
		require.Equal(t, domain.WinRate{Wins: 0, Losses: 2, WinRate: 0}, out)
	})

	t.Run("equal price is a win both ways", func(t *testing.T) {
		out := ComputeWinRate(
			[]domain.SignalRow{
				{Symbol: "X", Sentiment: domain.SentimentPositive, EntryPrice: 100},
				{Symbol: "X", Sentiment: domain.SentimentNegative, EntryPrice: 100},
			},
			map[string]float64{"X": 100},
		)
		require.Equal(t, 2, out.Wins)
		require.Equal(t, float64(100), out.WinRate)
	})

	t.Run("neutral and zero entry rows are excluded", func(t *testing.T) {
		out := ComputeWinRate(
			[]domain.SignalRow{
				{Symbol: "X", Sentiment: domain.SentimentPositive, EntryPrice: 100},
				{Symbol: "X", Sentiment: domain.SentimentNegative, EntryPrice: 90},
				{Symbol: "X", Sentiment: domain.SentimentNeutral, EntryPrice: 100},
				{Symbol: "Y", Sentiment: domain.SentimentPositive, EntryPrice: 0},
			},
			map[string]float64{"X": 110, "Y": 10},
		)
		require.Equal(t, domain.WinRate{Wins: 1, Losses: 1, WinRate: 50}, out)
	})

	t.Run("missing price counts as zero", func(t *testing.T) {
		out := ComputeWinRate(
			[]domain.SignalRow{
				{Symbol: "X", Sentiment: domain.SentimentPositive, EntryPrice: 100},
				{Symbol: "X", Sentiment: domain.SentimentNegative, EntryPrice: 100},
			},
			map[string]float64{},
		)
		require.Equal(t, domain.WinRate{Wins: 1, Losses: 1, WinRate: 50}, out)
	})

	t.Run("no decidable rows", func(t *testing.T) {
		out := ComputeWinRate(nil, nil)
		require.Equal(t, domain.WinRate{}, out)
	})
}

func TestUniqueSymbols(t *testing.T) {
	t.Run("dedupes across sources", func(t *testing.T) {
		out := UniqueSymbols(
			[]domain.SignalRow{{Symbol: "AAPL"}, {Symbol: "MSFT"}, {Symbol: "AAPL"}},
			[]domain.SignalRow{{Symbol: "TSLA"}, {Symbol: ""}, {Symbol: "MSFT"}},
		)
		require.Equal(t, "", cmp.Diff([]string{"AAPL", "MSFT", "TSLA"}, out))
	})
}
