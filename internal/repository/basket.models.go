package repository

import (
	"encoding/json"
	"fmt"
	"sentimenttracker/internal/db/models/postgres/public/model"
	"sentimenttracker/internal/domain"
	"time"

	"github.com/google/uuid"
)

func basketToModel(b domain.Basket) (model.StockBasket, error) {
	weights := b.SourceWeights
	if weights == nil {
		weights = domain.DefaultSourceWeights()
	}
	weightsJson, err := json.Marshal(weights)
	if err != nil {
		return model.StockBasket{}, fmt.Errorf("failed to marshal source weights: %w", err)
	}

	out := model.StockBasket{
		BasketID:      b.ID,
		UserAccountID: b.UserAccountID,
		Name:          b.Name,
		SourceWeights: string(weightsJson),
		IsLocked:      b.IsLocked,
	}
	if b.CreatedAt != nil {
		out.CreatedAt = *b.CreatedAt
	}
	if b.UpdatedAt != nil {
		out.UpdatedAt = *b.UpdatedAt
	}

	return out, nil
}

func basketStocksToModels(basketID uuid.UUID, stocks []domain.Stock, now time.Time) []model.BasketStock {
	out := []model.BasketStock{}
	for i, s := range stocks {
		stockID := s.ID
		if stockID == uuid.Nil {
			stockID = uuid.New()
		}
		var sector *string
		if s.Sector != "" {
			sector = &s.Sector
		}
		out = append(out, model.BasketStock{
			BasketStockID: stockID,
			BasketID:      basketID,
			Symbol:        s.Symbol,
			Name:          s.Name,
			Sector:        sector,
			Allocation:    int32(s.Allocation),
			IsLocked:      s.Locked,
			Position:      int32(i),
			CreatedAt:     now,
		})
	}
	return out
}

func basketFromModel(m model.StockBasket, stocks []model.BasketStock) (*domain.Basket, error) {
	weights := domain.SourceWeights{}
	if m.SourceWeights != "" {
		err := json.Unmarshal([]byte(m.SourceWeights), &weights)
		if err != nil {
			return nil, fmt.Errorf("failed to unmarshal source weights for basket %s: %w", m.BasketID, err)
		}
	}
	if len(weights) == 0 {
		weights = domain.DefaultSourceWeights()
	}

	out := domain.Basket{
		ID:            m.BasketID,
		UserAccountID: m.UserAccountID,
		Name:          m.Name,
		SourceWeights: weights,
		IsLocked:      m.IsLocked,
		Stocks:        []domain.Stock{},
		CreatedAt:     timePtr(m.CreatedAt),
		UpdatedAt:     timePtr(m.UpdatedAt),
	}
	for _, s := range stocks {
		sector := domain.DefaultSector
		if s.Sector != nil && *s.Sector != "" {
			sector = *s.Sector
		}
		out.Stocks = append(out.Stocks, domain.Stock{
			ID:         s.BasketStockID,
			Symbol:     s.Symbol,
			Name:       s.Name,
			Sector:     sector,
			Allocation: int(s.Allocation),
			Locked:     s.IsLocked,
		})
	}

	return &out, nil
}

func timePtr(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}
