package repository

import (
	"sentimenttracker/internal/db/models/postgres/public/model"
	"sentimenttracker/internal/domain"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func Test_signalFromModel(t *testing.T) {
	date := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	t.Run("nulls fall back to zero values", func(t *testing.T) {
		out := signalFromModel(model.SignalsFull{Date: date})
		require.Equal(t, "", cmp.Diff(domain.SignalRow{
			Date:      date,
			Sentiment: domain.SentimentNeutral,
		}, out))
	})

	t.Run("sentiment is case insensitive", func(t *testing.T) {
		symbol := " AAPL "
		sentiment := "Positive"
		price := 101.5
		out := signalFromModel(model.SignalsFull{
			Date:       date,
			CompSymbol: &symbol,
			Sentiment:  &sentiment,
			EntryPrice: &price,
		})
		require.Equal(t, "", cmp.Diff(domain.SignalRow{
			Date:       date,
			Symbol:     "AAPL",
			Sentiment:  domain.SentimentPositive,
			EntryPrice: 101.5,
		}, out))
	})

	t.Run("to model and back", func(t *testing.T) {
		row := domain.SignalRow{
			Date:       date,
			Symbol:     "TSLA",
			Sentiment:  domain.SentimentNegative,
			EntryPrice: 250,
		}
		require.Equal(t, "", cmp.Diff(row, signalFromModel(signalToModel(row))))
	})
}

func Test_signalTable(t *testing.T) {
	t.Run("known sources", func(t *testing.T) {
		for source, name := range map[domain.Source]string{
			domain.SourceNews:         "news_signals_full",
			domain.SourceGoogleTrends: "gtrend_signals_full",
			domain.SourceTwitter:      "twitter_signals_full",
		} {
			tbl, err := signalTable(source)
			require.NoError(t, err)
			require.Equal(t, name, tbl.TableName())
		}
	})

	t.Run("unknown source", func(t *testing.T) {
		_, err := signalTable(domain.Source("reddit"))
		require.Error(t, err)
	})
}
