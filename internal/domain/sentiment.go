package domain

import (
	"fmt"
	"time"
)

type TimePeriod string

const (
	TimePeriodDay   TimePeriod = "1d"
	TimePeriodWeek  TimePeriod = "1w"
	TimePeriodMonth TimePeriod = "1m"
)

func (t TimePeriod) Days() (int, error) {
	switch t {
	case TimePeriodDay:
		return 1, nil
	case TimePeriodWeek:
		return 7, nil
	case TimePeriodMonth:
		return 30, nil
	}
	return 0, fmt.Errorf("unknown time period %q", t)
}

type SentimentDay struct {
	Date                  time.Time `json:"date"`
	TwitterSentiment      float64   `json:"twitterSentiment"`
	GoogleTrendsSentiment float64   `json:"googleTrendsSentiment"`
	NewsSentiment         float64   `json:"newsSentiment"`
	CompositeSentiment    float64   `json:"compositeSentiment"`
}

func (d SentimentDay) BySource() map[Source]float64 {
	return map[Source]float64{
		SourceTwitter:      d.TwitterSentiment,
		SourceGoogleTrends: d.GoogleTrendsSentiment,
		SourceNews:         d.NewsSentiment,
	}
}

func (d *SentimentDay) Set(source Source, score float64) {
	switch source {
	case SourceTwitter:
		d.TwitterSentiment = score
	case SourceGoogleTrends:
		d.GoogleTrendsSentiment = score
	case SourceNews:
		d.NewsSentiment = score
	}
}

type OverallSentiment string

const (
	OverallVeryPositive OverallSentiment = "Very Positive"
	OverallPositive     OverallSentiment = "Positive"
	OverallNeutral      OverallSentiment = "Neutral"
	OverallNegative     OverallSentiment = "Negative"
	OverallVeryNegative OverallSentiment = "Very Negative"
)
