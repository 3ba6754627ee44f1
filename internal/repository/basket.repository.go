package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"sentimenttracker/internal/db/models/postgres/public/model"
	"sentimenttracker/internal/db/models/postgres/public/table"
	"sentimenttracker/internal/domain"
	"time"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
	"github.com/google/uuid"
)

type BasketRepository interface {
	Save(b domain.Basket) (*domain.Basket, error)
	Get(basketID uuid.UUID) (*domain.Basket, error)
	List(userAccountID uuid.UUID) ([]domain.Basket, error)
	GetMostRecent(userAccountID uuid.UUID) (*domain.Basket, error)
	Delete(basketID uuid.UUID) error
}

type basketRepositoryHandler struct {
	Db *sql.DB
}

func NewBasketRepository(db *sql.DB) BasketRepository {
	return basketRepositoryHandler{Db: db}
}

// Save upserts the basket row and replaces all of its stocks
// in a single transaction
func (h basketRepositoryHandler) Save(b domain.Basket) (*domain.Basket, error) {
	now := time.Now().UTC()
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	if b.CreatedAt == nil {
		b.CreatedAt = &now
	}
	b.UpdatedAt = &now

	basketModel, err := basketToModel(b)
	if err != nil {
		return nil, err
	}
	stockModels := basketStocksToModels(b.ID, b.Stocks, now)

	tx, err := h.Db.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	query := table.StockBasket.
		INSERT(table.StockBasket.AllColumns).
		MODEL(basketModel).
		ON_CONFLICT(table.StockBasket.BasketID).
		DO_UPDATE(postgres.SET(
			table.StockBasket.Name.SET(table.StockBasket.EXCLUDED.Name),
			table.StockBasket.SourceWeights.SET(table.StockBasket.EXCLUDED.SourceWeights),
			table.StockBasket.IsLocked.SET(table.StockBasket.EXCLUDED.IsLocked),
			table.StockBasket.UpdatedAt.SET(table.StockBasket.EXCLUDED.UpdatedAt),
		)).
		RETURNING(table.StockBasket.AllColumns)

	savedBasket := model.StockBasket{}
	err = query.Query(tx, &savedBasket)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert basket: %w", err)
	}

	deleteQuery := table.BasketStock.
		DELETE().
		WHERE(table.BasketStock.BasketID.EQ(postgres.UUID(b.ID)))
	_, err = deleteQuery.Exec(tx)
	if err != nil {
		return nil, fmt.Errorf("failed to clear basket stocks: %w", err)
	}

	savedStocks := []model.BasketStock{}
	if len(stockModels) > 0 {
		insertQuery := table.BasketStock.
			INSERT(table.BasketStock.AllColumns).
			MODELS(stockModels).
			RETURNING(table.BasketStock.AllColumns)
		err = insertQuery.Query(tx, &savedStocks)
		if err != nil {
			return nil, fmt.Errorf("failed to insert basket stocks: %w", err)
		}
	}

	err = tx.Commit()
	if err != nil {
		return nil, fmt.Errorf("failed to commit basket: %w", err)
	}

	return basketFromModel(savedBasket, savedStocks)
}

func (h basketRepositoryHandler) Get(basketID uuid.UUID) (*domain.Basket, error) {
	query := table.StockBasket.
		SELECT(table.StockBasket.AllColumns).
		WHERE(table.StockBasket.BasketID.EQ(postgres.UUID(basketID)))

	out := model.StockBasket{}
	err := query.Query(h.Db, &out)
	if errors.Is(err, qrm.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get basket %s: %w", basketID, err)
	}

	stocks, err := h.listStocks([]uuid.UUID{basketID})
	if err != nil {
		return nil, err
	}

	return basketFromModel(out, stocks[basketID])
}

func (h basketRepositoryHandler) GetMostRecent(userAccountID uuid.UUID) (*domain.Basket, error) {
	query := table.StockBasket.
		SELECT(table.StockBasket.AllColumns).
		WHERE(table.StockBasket.UserAccountID.EQ(postgres.UUID(userAccountID))).
		ORDER_BY(table.StockBasket.UpdatedAt.DESC()).
		LIMIT(1)

	out := model.StockBasket{}
	err := query.Query(h.Db, &out)
	if errors.Is(err, qrm.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get most recent basket: %w", err)
	}

	stocks, err := h.listStocks([]uuid.UUID{out.BasketID})
	if err != nil {
		return nil, err
	}

	return basketFromModel(out, stocks[out.BasketID])
}

func (h basketRepositoryHandler) List(userAccountID uuid.UUID) ([]domain.Basket, error) {
	query := table.StockBasket.
		SELECT(table.StockBasket.AllColumns).
		WHERE(table.StockBasket.UserAccountID.EQ(postgres.UUID(userAccountID))).
		ORDER_BY(table.StockBasket.UpdatedAt.DESC())

	baskets := []model.StockBasket{}
	err := query.Query(h.Db, &baskets)
	if errors.Is(err, qrm.ErrNoRows) {
		return []domain.Basket{}, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to list baskets: %w", err)
	}

	basketIDs := []uuid.UUID{}
	for _, b := range baskets {
		basketIDs = append(basketIDs, b.BasketID)
	}
	stocks, err := h.listStocks(basketIDs)
	if err != nil {
		return nil, err
	}

	out := []domain.Basket{}
	for _, b := range baskets {
		basket, err := basketFromModel(b, stocks[b.BasketID])
		if err != nil {
			return nil, err
		}
		out = append(out, *basket)
	}

	return out, nil
}

func (h basketRepositoryHandler) Delete(basketID uuid.UUID) error {
	// basket_stock rows go with it (on delete cascade)
	query := table.StockBasket.
		DELETE().
		WHERE(table.StockBasket.BasketID.EQ(postgres.UUID(basketID)))

	_, err := query.Exec(h.Db)
	if err != nil {
		return fmt.Errorf("failed to delete basket %s: %w", basketID, err)
	}

	return nil
}

func (h basketRepositoryHandler) listStocks(basketIDs []uuid.UUID) (map[uuid.UUID][]model.BasketStock, error) {
	out := map[uuid.UUID][]model.BasketStock{}
	if len(basketIDs) == 0 {
		return out, nil
	}

	ids := []postgres.Expression{}
	for _, id := range basketIDs {
		ids = append(ids, postgres.UUID(id))
	}

	query := table.BasketStock.
		SELECT(table.BasketStock.AllColumns).
		WHERE(table.BasketStock.BasketID.IN(ids...)).
		ORDER_BY(
			table.BasketStock.BasketID.ASC(),
			table.BasketStock.Position.ASC(),
		)

	result := []model.BasketStock{}
	err := query.Query(h.Db, &result)
	if errors.Is(err, qrm.ErrNoRows) {
		return out, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to list basket stocks: %w", err)
	}

	for _, s := range result {
		out[s.BasketID] = append(out[s.BasketID], s)
	}

	return out, nil
}
