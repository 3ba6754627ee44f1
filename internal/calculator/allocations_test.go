package calculator

import (
	"sentimenttracker/internal/domain"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func newStock(symbol string, allocation int, locked bool) domain.Stock {
	return domain.Stock{
		ID:         uuid.New(),
		Symbol:     symbol,
		Allocation: allocation,
		Locked:     locked,
	}
}

func allocationsBySymbol(stocks []domain.Stock) map[string]int {
	out := map[string]int{}
	for _, s := range stocks {
		out[s.Symbol] = s.Allocation
	}
	return out
}

func sumAllocations(stocks []domain.Stock) int {
	total := 0
	for _, s := range stocks {
		total += s.Allocation
	}
	return total
}

func TestSetAllocation(t *testing.T) {
	t.Run("proportional with locked stocks", func(t *testing.T) {
		stocks := []domain.Stock{
			newStock("AAPL", 25, false),
			newStock("MSFT", 20, true),
			newStock("AMZN", 20, false),
			newStock("TSLA", 15, false),
			newStock("META", 20, true),
		}

		out, err := SetAllocation(stocks, stocks[0].ID, 35)
		require.NoError(t, err)

		// 60 - 40 locked - 35 = 25 left for AMZN/TSLA at 20:15
		require.Equal(
			t,
			"",
			cmp.Diff(
				map[string]int{
					"AAPL": 35,
					"MSFT": 20,
					"AMZN": 14,
					"TSLA": 11,
					"META": 20,
				},
				allocationsBySymbol(out),
			),
		)
		require.Equal(t, 100, sumAllocations(out))
	})

	t.Run("rounding remainder goes to first unlocked non-target stock", func(t *testing.T) {
		stocks := []domain.Stock{
			newStock("T", 10, false),
			newStock("A", 30, false),
			newStock("B", 30, false),
			newStock("C", 30, false),
		}

		out, err := SetAllocation(stocks, stocks[0].ID, 0)
		require.NoError(t, err)

		// 33.33 each rounds to 99 total
		require.Equal(t, map[string]int{"T": 0, "A": 34, "B": 33, "C": 33}, allocationsBySymbol(out))
	})

	t.Run("negative rounding remainder is absorbed", func(t *testing.T) {
		stocks := []domain.Stock{
			newStock("T", 0, false),
			newStock("A", 50, false),
			newStock("B", 50, false),
		}

		out, err := SetAllocation(stocks, stocks[0].ID, 97)
		require.NoError(t, err)

		// 1.5 / 1.5 both round up to 2, A gives one back
		require.Equal(t, map[string]int{"T": 97, "A": 1, "B": 2}, allocationsBySymbol(out))
	})

	t.Run("zero-sum unlocked group splits evenly", func(t *testing.T) {
		stocks := []domain.Stock{
			newStock("A", 100, false),
			newStock("B", 0, false),
			newStock("C", 0, false),
		}

		out, err := SetAllocation(stocks, stocks[0].ID, 50)
		require.NoError(t, err)
		require.Equal(t, map[string]int{"A": 50, "B": 25, "C": 25}, allocationsBySymbol(out))
	})

	t.Run("only unlocked stock absorbs the remainder", func(t *testing.T) {
		stocks := []domain.Stock{
			newStock("A", 40, false),
			newStock("B", 60, true),
		}

		out, err := SetAllocation(stocks, stocks[0].ID, 10)
		require.NoError(t, err)
		require.Equal(t, map[string]int{"A": 40, "B": 60}, allocationsBySymbol(out))
	})

	t.Run("new allocation capped by locked total", func(t *testing.T) {
		stocks := []domain.Stock{
			newStock("A", 20, false),
			newStock("B", 70, true),
			newStock("C", 10, false),
		}

		out, err := SetAllocation(stocks, stocks[0].ID, 90)
		require.NoError(t, err)
		require.Equal(t, map[string]int{"A": 30, "B": 70, "C": 0}, allocationsBySymbol(out))
	})

	t.Run("errors", func(t *testing.T) {
		stocks := []domain.Stock{
			newStock("A", 50, false),
			newStock("B", 50, true),
		}

		_, err := SetAllocation(stocks, uuid.New(), 10)
		require.ErrorContains(t, err, "not found")

		_, err = SetAllocation(stocks, stocks[1].ID, 10)
		require.ErrorContains(t, err, "locked")

		_, err = SetAllocation(stocks, stocks[0].ID, 101)
		require.Error(t, err)

		_, err = SetAllocation(stocks, stocks[0].ID, -1)
		require.Error(t, err)

		negative := []domain.Stock{
			newStock("A", 110, false),
			newStock("B", -10, false),
		}
		_, err = SetAllocation(negative, negative[0].ID, 50)
		require.ErrorContains(t, err, "between 0 and 100")
	})

	t.Run("input is not modified", func(t *testing.T) {
		stocks := []domain.Stock{
			newStock("A", 50, false),
			newStock("B", 50, false),
		}
		_, err := SetAllocation(stocks, stocks[0].ID, 10)
		require.NoError(t, err)
		require.Equal(t, 50, stocks[0].Allocation)
		require.Equal(t, 50, stocks[1].Allocation)
	})

	t.Run("every edit sums to 100 with locks unchanged", func(t *testing.T) {
		baskets := [][]domain.Stock{
			{
				newStock("A", 25, false),
				newStock("B", 20, true),
				newStock("C", 20, false),
				newStock("D", 15, false),
				newStock("E", 20, true),
			},
			{
				newStock("A", 14, false),
				newStock("B", 14, false),
				newStock("C", 14, false),
				newStock("D", 14, false),
				newStock("E", 14, false),
				newStock("F", 15, false),
				newStock("G", 15, false),
			},
			{
				newStock("A", 0, false),
				newStock("B", 0, false),
				newStock("C", 100, false),
			},
		}

		for _, stocks := range baskets {
			for _, target := range stocks {
				if target.Locked {
					continue
				}
				for allocation := 0; allocation <= 100; allocation++ {
					out, err := SetAllocation(stocks, target.ID, allocation)
					require.NoError(t, err)
					require.Equal(t, 100, sumAllocations(out))
					for i, s := range out {
						require.GreaterOrEqual(t, s.Allocation, 0)
						if s.Locked {
							require.Equal(t, stocks[i].Allocation, s.Allocation)
						}
					}
				}
			}
		}
	})
}

func TestResetAllocations(t *testing.T) {
	t.Run("even split with remainder on first unlocked", func(t *testing.T) {
		stocks := []domain.Stock{
			newStock("AAPL", 25, false),
			newStock("MSFT", 20, true),
			newStock("AMZN", 20, false),
			newStock("TSLA", 15, false),
			newStock("META", 20, true),
		}

		out := ResetAllocations(stocks)

		// 60 / 3
		require.Equal(
			t,
			map[string]int{"AAPL": 20, "MSFT": 20, "AMZN": 20, "TSLA": 20, "META": 20},
			allocationsBySymbol(out),
		)
	})

	t.Run("floor division remainder", func(t *testing.T) {
		stocks := []domain.Stock{
			newStock("A", 10, true),
			newStock("B", 0, false),
			newStock("C", 0, false),
			newStock("D", 0, false),
			newStock("E", 0, false),
			newStock("F", 0, false),
			newStock("G", 0, false),
			newStock("H", 0, false),
		}

		out := ResetAllocations(stocks)

		// 90 / 7 = 12 r 6
		require.Equal(t, 18, out[1].Allocation)
		for _, s := range out[2:] {
			require.Equal(t, 12, s.Allocation)
		}
		require.Equal(t, 100, sumAllocations(out))
	})

	t.Run("all locked is a no-op", func(t *testing.T) {
		stocks := []domain.Stock{
			newStock("A", 30, true),
			newStock("B", 70, true),
		}

		out := ResetAllocations(stocks)
		require.Equal(t, "", cmp.Diff(stocks, out))
	})

	t.Run("empty basket", func(t *testing.T) {
		out := ResetAllocations([]domain.Stock{})
		require.Empty(t, out)
	})
}
