package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"sentimenttracker/internal/db/models/postgres/public/model"
	"sentimenttracker/internal/db/models/postgres/public/table"
	"sentimenttracker/internal/domain"
	"strings"
	"time"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
)

type SignalRepository interface {
	List(source domain.Source) ([]domain.SignalRow, error)
	ListSince(source domain.Source, since time.Time) ([]domain.SignalRow, error)
	AddMany(tx *sql.Tx, source domain.Source, rows []domain.SignalRow) error
}

type signalRepositoryHandler struct {
	Db *sql.DB
}

func NewSignalRepository(db *sql.DB) SignalRepository {
	return signalRepositoryHandler{Db: db}
}

func signalTable(source domain.Source) (*table.SignalsFullTable, error) {
	switch source {
	case domain.SourceNews:
		return table.NewsSignalsFull, nil
	case domain.SourceGoogleTrends:
		return table.GtrendSignalsFull, nil
	case domain.SourceTwitter:
		return table.TwitterSignalsFull, nil
	}
	return nil, fmt.Errorf("unknown signal source %s", source)
}

func (h signalRepositoryHandler) List(source domain.Source) ([]domain.SignalRow, error) {
	return h.list(source, nil)
}

func (h signalRepositoryHandler) ListSince(source domain.Source, since time.Time) ([]domain.SignalRow, error) {
	return h.list(source, &since)
}

func (h signalRepositoryHandler) list(source domain.Source, since *time.Time) ([]domain.SignalRow, error) {
	t, err := signalTable(source)
	if err != nil {
		return nil, err
	}
	// every source maps into model.SignalsFull
	aliased := t.AS("signals_full")

	query := aliased.
		SELECT(aliased.AllColumns).
		ORDER_BY(aliased.Date.ASC())
	if since != nil {
		query = query.WHERE(aliased.Date.GT_EQ(postgres.DateT(*since)))
	}

	result := []model.SignalsFull{}
	err = query.Query(h.Db, &result)
	if errors.Is(err, qrm.ErrNoRows) {
		return []domain.SignalRow{}, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to list %s signals: %w", source, err)
	}

	out := []domain.SignalRow{}
	for _, r := range result {
		out = append(out, signalFromModel(r))
	}

	return out, nil
}

func (h signalRepositoryHandler) AddMany(tx *sql.Tx, source domain.Source, rows []domain.SignalRow) error {
	if len(rows) == 0 {
		return nil
	}
	t, err := signalTable(source)
	if err != nil {
		return err
	}

	models := []model.SignalsFull{}
	for _, r := range rows {
		models = append(models, signalToModel(r))
	}

	query := t.
		INSERT(t.AllColumns).
		MODELS(models)

	_, err = query.Exec(tx)
	if err != nil {
		return fmt.Errorf("failed to insert %d %s signals: %w", len(rows), source, err)
	}

	return nil
}

func signalFromModel(m model.SignalsFull) domain.SignalRow {
	out := domain.SignalRow{
		Date:      m.Date,
		Sentiment: domain.SentimentNeutral,
	}
	if m.CompSymbol != nil {
		out.Symbol = strings.TrimSpace(*m.CompSymbol)
	}
	if m.Sentiment != nil {
		out.Sentiment = domain.ParseSentiment(*m.Sentiment)
	}
	if m.EntryPrice != nil {
		out.EntryPrice = *m.EntryPrice
	}
	return out
}

func signalToModel(r domain.SignalRow) model.SignalsFull {
	symbol := r.Symbol
	sentiment := string(r.Sentiment)
	entryPrice := r.EntryPrice
	return model.SignalsFull{
		Date:       r.Date,
		CompSymbol: &symbol,
		Sentiment:  &sentiment,
		EntryPrice: &entryPrice,
	}
}
