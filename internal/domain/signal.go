package domain

import (
	"strings"
	"time"
)

type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNegative Sentiment = "negative"
	SentimentNeutral  Sentiment = "neutral"
)

// ParseSentiment is case-insensitive. Anything that isn't
// positive or negative is treated as neutral
func ParseSentiment(s string) Sentiment {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case string(SentimentPositive):
		return SentimentPositive
	case string(SentimentNegative):
		return SentimentNegative
	default:
		return SentimentNeutral
	}
}

// Score maps a sentiment onto [-1, 1]
func (s Sentiment) Score() float64 {
	switch s {
	case SentimentPositive:
		return 1
	case SentimentNegative:
		return -1
	default:
		return 0
	}
}

type SignalRow struct {
	Date       time.Time
	Symbol     string
	Sentiment  Sentiment
	EntryPrice float64
}

type WinRate struct {
	Wins    int     `json:"wins"`
	Losses  int     `json:"losses"`
	WinRate float64 `json:"winRate"`
}

type AggregatedWinRates struct {
	News         float64 `json:"news"`
	GoogleTrends float64 `json:"googleTrends"`
	Twitter      float64 `json:"twitter"`
}

func (a *AggregatedWinRates) Set(source Source, winRate float64) {
	switch source {
	case SourceNews:
		a.News = winRate
	case SourceGoogleTrends:
		a.GoogleTrends = winRate
	case SourceTwitter:
		a.Twitter = winRate
	}
}
