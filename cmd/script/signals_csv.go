package main

import (
	"fmt"
	"io"
	"sentimenttracker/internal/domain"
	"sentimenttracker/internal/util"

	"github.com/gocarina/gocsv"
)

// same columns as the *_signals_full tables
type signalCsvRow struct {
	Date       string  `csv:"date"`
	CompSymbol string  `csv:"comp_symbol"`
	Sentiment  string  `csv:"sentiment"`
	EntryPrice float64 `csv:"entry_price"`
}

func readSignalsCsv(in io.Reader) ([]domain.SignalRow, error) {
	rows := []signalCsvRow{}
	if err := gocsv.Unmarshal(in, &rows); err != nil {
		return nil, fmt.Errorf("failed to parse signals csv: %w", err)
	}

	out := []domain.SignalRow{}
	for i, row := range rows {
		date, err := util.ParseDate(row.Date)
		if err != nil {
			// +2 for the header and 1-indexing
			return nil, fmt.Errorf("line %d: %w", i+2, err)
		}
		out = append(out, domain.SignalRow{
			Date:       date,
			Symbol:     row.CompSymbol,
			Sentiment:  domain.ParseSentiment(row.Sentiment),
			EntryPrice: row.EntryPrice,
		})
	}

	return out, nil
}

func writeSignalsCsv(out io.Writer, signals []domain.SignalRow) error {
	rows := []signalCsvRow{}
	for _, s := range signals {
		rows = append(rows, signalCsvRow{
			Date:       util.FormatDate(s.Date),
			CompSymbol: s.Symbol,
			Sentiment:  string(s.Sentiment),
			EntryPrice: s.EntryPrice,
		})
	}
	if err := gocsv.Marshal(rows, out); err != nil {
		return fmt.Errorf("failed to write signals csv: %w", err)
	}
	return nil
}
