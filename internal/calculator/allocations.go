package calculator

import (
	"fmt"
	"math"
	"sentimenttracker/internal/domain"

	"github.com/google/uuid"
)

const TotalAllocation = 100

// SetAllocation gives stockID the new allocation and spreads the rest
// of the 100% over the other unlocked stocks, proportional to what they
// currently hold (evenly if they hold nothing). Results are whole
// percentages that sum to exactly 100 as long as the locked stocks
// don't already exceed it.
func SetAllocation(stocks []domain.Stock, stockID uuid.UUID, allocation int) ([]domain.Stock, error) {
	out := domain.CopyStocks(stocks)

	targetIdx := -1
	for i, s := range out {
		if s.Allocation < 0 || s.Allocation > TotalAllocation {
			return nil, fmt.Errorf("allocation for %s must be between 0 and %d, got %d", s.Symbol, TotalAllocation, s.Allocation)
		}
		if s.ID == stockID && targetIdx == -1 {
			targetIdx = i
		}
	}
	if targetIdx == -1 {
		return nil, fmt.Errorf("stock %s not found in basket", stockID)
	}
	if out[targetIdx].Locked {
		return nil, fmt.Errorf("allocation for %s is locked", out[targetIdx].Symbol)
	}
	if allocation < 0 || allocation > TotalAllocation {
		return nil, fmt.Errorf("allocation must be between 0 and %d, got %d", TotalAllocation, allocation)
	}

	lockedOthers := 0
	otherIdx := []int{}
	for i, s := range out {
		if i == targetIdx {
			continue
		}
		if s.Locked {
			lockedOthers += s.Allocation
		} else {
			otherIdx = append(otherIdx, i)
		}
	}

	maxAllocation := TotalAllocation - lockedOthers
	if maxAllocation < 0 {
		maxAllocation = 0
	}
	if allocation > maxAllocation {
		allocation = maxAllocation
	}

	if len(otherIdx) == 0 {
		out[targetIdx].Allocation = maxAllocation
		return out, nil
	}
	out[targetIdx].Allocation = allocation

	remaining := float64(maxAllocation - allocation)
	currentOtherSum := 0
	for _, i := range otherIdx {
		currentOtherSum += out[i].Allocation
	}

	for _, i := range otherIdx {
		proportion := 1 / float64(len(otherIdx))
		if currentOtherSum > 0 {
			proportion = float64(out[i].Allocation) / float64(currentOtherSum)
		}
		out[i].Allocation = int(math.Round(math.Max(0, remaining*proportion)))
	}

	assignRemainder(out, otherIdx, maxAllocation-allocation)

	return out, nil
}

// assignRemainder fixes rounding drift so the stocks at idx add up to
// target. The first stock takes the whole correction unless it would
// go negative, in which case the rest spills into the next ones.
func assignRemainder(stocks []domain.Stock, idx []int, target int) {
	sum := 0
	for _, i := range idx {
		sum += stocks[i].Allocation
	}
	diff := target - sum
	if diff > 0 {
		stocks[idx[0]].Allocation += diff
		return
	}
	for _, i := range idx {
		if diff == 0 {
			return
		}
		take := -diff
		if take > stocks[i].Allocation {
			take = stocks[i].Allocation
		}
		stocks[i].Allocation -= take
		diff += take
	}
}

// ResetAllocations splits whatever the locked stocks leave over evenly
// across the unlocked ones. Integer division leftovers go to the first
// unlocked stock. With nothing unlocked the stocks come back unchanged.
func ResetAllocations(stocks []domain.Stock) []domain.Stock {
	out := domain.CopyStocks(stocks)

	lockedAllocation := 0
	unlockedCount := 0
	firstUnlocked := -1
	for i, s := range out {
		if s.Locked {
			lockedAllocation += s.Allocation
		} else {
			unlockedCount++
			if firstUnlocked == -1 {
				firstUnlocked = i
			}
		}
	}

	if unlockedCount == 0 {
		return out
	}

	remaining := TotalAllocation - lockedAllocation
	if remaining < 0 {
		remaining = 0
	}
	equalAllocation := remaining / unlockedCount

	newTotal := 0
	for i := range out {
		if !out[i].Locked {
			out[i].Allocation = equalAllocation
		}
		newTotal += out[i].Allocation
	}

	if newTotal < TotalAllocation {
		out[firstUnlocked].Allocation += TotalAllocation - newTotal
	}

	return out
}
