package model

import (
	"time"
)

// SignalsFull is shared by news_signals_full, gtrend_signals_full and
// twitter_signals_full, which all have the same columns. Select with
// the table aliased AS("signals_full") so qrm maps into this type.
type SignalsFull struct {
	Date       time.Time
	CompSymbol *string
	Sentiment  *string
	EntryPrice *float64
}
