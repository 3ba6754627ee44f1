package repository

import (
	"database/sql"
	"sentimenttracker/internal/db/models/postgres/public/model"
	"sentimenttracker/internal/db/models/postgres/public/table"
	"sentimenttracker/internal/domain"
	"sentimenttracker/internal/util"
	"testing"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/google/uuid"
	_ "github.com/lib/pq"
	"github.com/stretchr/testify/require"
)

func cleanupBaskets(db *sql.DB) error {
	if _, err := table.BasketStock.DELETE().WHERE(postgres.Bool(true)).Exec(db); err != nil {
		return err
	}
	if _, err := table.StockBasket.DELETE().WHERE(postgres.Bool(true)).Exec(db); err != nil {
		return err
	}
	return nil
}

func countBasketStocks(t *testing.T, db *sql.DB, basketID uuid.UUID) int {
	result := []model.BasketStock{}
	err := table.BasketStock.
		SELECT(table.BasketStock.AllColumns).
		WHERE(table.BasketStock.BasketID.EQ(postgres.UUID(basketID))).
		Query(db, &result)
	require.NoError(t, err)
	return len(result)
}

func newTestBasket(userAccountID uuid.UUID, name string, symbols ...string) domain.Basket {
	stocks := []domain.Stock{}
	for i, symbol := range symbols {
		allocation := 100 / len(symbols)
		if i == 0 {
			allocation += 100 % len(symbols)
		}
		stocks = append(stocks, domain.Stock{
			Symbol:     symbol,
			Name:       symbol,
			Sector:     "Technology",
			Allocation: allocation,
		})
	}
	return domain.Basket{
		UserAccountID: userAccountID,
		Name:          name,
		SourceWeights: domain.DefaultSourceWeights(),
		Stocks:        stocks,
	}
}

func stockSymbols(b *domain.Basket) []string {
	out := []string{}
	for _, s := range b.Stocks {
		out = append(out, s.Symbol)
	}
	return out
}

func Test_basketRepositoryHandler_Save(t *testing.T) {
	db, err := util.NewTestDb()
	require.NoError(t, err)
	handler := basketRepositoryHandler{Db: db}

	t.Run("insert assigns ids and keeps stock order", func(t *testing.T) {
		require.NoError(t, cleanupBaskets(db))

		saved, err := handler.Save(newTestBasket(uuid.New(), "tech", "NVDA", "AAPL", "MSFT"))
		require.NoError(t, err)
		require.NotEqual(t, uuid.Nil, saved.ID)
		require.NotNil(t, saved.CreatedAt)
		require.Equal(t, []string{"NVDA", "AAPL", "MSFT"}, stockSymbols(saved))
		for _, s := range saved.Stocks {
			require.NotEqual(t, uuid.Nil, s.ID)
		}

		got, err := handler.Get(saved.ID)
		require.NoError(t, err)
		require.Equal(t, []string{"NVDA", "AAPL", "MSFT"}, stockSymbols(got))
		require.Equal(t, domain.DefaultSourceWeights(), got.SourceWeights)
		require.Equal(t, 34, got.Stocks[0].Allocation)
	})

	t.Run("re-save replaces the stocks", func(t *testing.T) {
		require.NoError(t, cleanupBaskets(db))

		saved, err := handler.Save(newTestBasket(uuid.New(), "tech", "NVDA", "AAPL", "MSFT"))
		require.NoError(t, err)

		edited := saved.DeepCopy()
		edited.Name = "renamed"
		edited.IsLocked = true
		edited.Stocks = []domain.Stock{edited.Stocks[2], edited.Stocks[0]}
		edited.Stocks[0].Allocation = 60
		edited.Stocks[1].Allocation = 40

		resaved, err := handler.Save(edited)
		require.NoError(t, err)
		require.Equal(t, saved.ID, resaved.ID)
		require.Equal(t, saved.CreatedAt.Unix(), resaved.CreatedAt.Unix())

		got, err := handler.Get(saved.ID)
		require.NoError(t, err)
		require.Equal(t, "renamed", got.Name)
		require.True(t, got.IsLocked)
		require.Equal(t, []string{"MSFT", "NVDA"}, stockSymbols(got))
		require.Equal(t, saved.Stocks[2].ID, got.Stocks[0].ID)
		require.Equal(t, 60, got.Stocks[0].Allocation)
		require.Equal(t, 2, countBasketStocks(t, db, saved.ID))
	})

	t.Run("failed stock insert leaves the basket untouched", func(t *testing.T) {
		require.NoError(t, cleanupBaskets(db))

		saved, err := handler.Save(newTestBasket(uuid.New(), "tech", "AAPL", "MSFT"))
		require.NoError(t, err)

		edited := saved.DeepCopy()
		edited.Name = "renamed"
		edited.Stocks[1].ID = edited.Stocks[0].ID
		_, err = handler.Save(edited)
		require.Error(t, err)

		got, err := handler.Get(saved.ID)
		require.NoError(t, err)
		require.Equal(t, "tech", got.Name)
		require.Equal(t, []string{"AAPL", "MSFT"}, stockSymbols(got))
	})
}

func Test_basketRepositoryHandler_Get(t *testing.T) {
	db, err := util.NewTestDb()
	require.NoError(t, err)
	handler := basketRepositoryHandler{Db: db}

	t.Run("missing basket", func(t *testing.T) {
		require.NoError(t, cleanupBaskets(db))

		got, err := handler.Get(uuid.New())
		require.NoError(t, err)
		require.Nil(t, got)
	})

	t.Run("basket without stocks", func(t *testing.T) {
		require.NoError(t, cleanupBaskets(db))

		saved, err := handler.Save(newTestBasket(uuid.New(), "empty"))
		require.NoError(t, err)

		got, err := handler.Get(saved.ID)
		require.NoError(t, err)
		require.Equal(t, "empty", got.Name)
		require.Empty(t, got.Stocks)
	})
}

func Test_basketRepositoryHandler_ListAndGetMostRecent(t *testing.T) {
	db, err := util.NewTestDb()
	require.NoError(t, err)
	handler := basketRepositoryHandler{Db: db}

	t.Run("newest first, scoped to the user", func(t *testing.T) {
		require.NoError(t, cleanupBaskets(db))
		userID := uuid.New()

		first, err := handler.Save(newTestBasket(userID, "first", "AAPL"))
		require.NoError(t, err)
		_, err = handler.Save(newTestBasket(userID, "second", "MSFT", "NVDA"))
		require.NoError(t, err)
		_, err = handler.Save(newTestBasket(uuid.New(), "someone else", "TSLA"))
		require.NoError(t, err)

		baskets, err := handler.List(userID)
		require.NoError(t, err)
		require.Len(t, baskets, 2)
		require.Equal(t, "second", baskets[0].Name)
		require.Equal(t, []string{"MSFT", "NVDA"}, stockSymbols(&baskets[0]))
		require.Equal(t, "first", baskets[1].Name)

		mostRecent, err := handler.GetMostRecent(userID)
		require.NoError(t, err)
		require.Equal(t, "second", mostRecent.Name)

		// saving again bumps updated_at
		_, err = handler.Save(first.DeepCopy())
		require.NoError(t, err)

		mostRecent, err = handler.GetMostRecent(userID)
		require.NoError(t, err)
		require.Equal(t, first.ID, mostRecent.ID)
		require.Equal(t, []string{"AAPL"}, stockSymbols(mostRecent))
	})

	t.Run("no baskets", func(t *testing.T) {
		require.NoError(t, cleanupBaskets(db))
		userID := uuid.New()

		baskets, err := handler.List(userID)
		require.NoError(t, err)
		require.Empty(t, baskets)

		mostRecent, err := handler.GetMostRecent(userID)
		require.NoError(t, err)
		require.Nil(t, mostRecent)
	})
}

func Test_basketRepositoryHandler_Delete(t *testing.T) {
	db, err := util.NewTestDb()
	require.NoError(t, err)
	handler := basketRepositoryHandler{Db: db}

	t.Run("stocks are removed with the basket", func(t *testing.T) {
		require.NoError(t, cleanupBaskets(db))

		saved, err := handler.Save(newTestBasket(uuid.New(), "tech", "AAPL", "MSFT"))
		require.NoError(t, err)
		kept, err := handler.Save(newTestBasket(saved.UserAccountID, "other", "NVDA"))
		require.NoError(t, err)
		require.Equal(t, 2, countBasketStocks(t, db, saved.ID))

		require.NoError(t, handler.Delete(saved.ID))

		got, err := handler.Get(saved.ID)
		require.NoError(t, err)
		require.Nil(t, got)
		require.Equal(t, 0, countBasketStocks(t, db, saved.ID))
		require.Equal(t, 1, countBasketStocks(t, db, kept.ID))
	})

	t.Run("missing basket is a no-op", func(t *testing.T) {
		require.NoError(t, cleanupBaskets(db))
		require.NoError(t, handler.Delete(uuid.New()))
	})
}
