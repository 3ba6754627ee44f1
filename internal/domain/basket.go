package domain

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/google/uuid"
)

type Source string

const (
	SourceTwitter      Source = "twitter"
	SourceGoogleTrends Source = "googleTrends"
	SourceNews         Source = "news"
)

// canonical order, used whenever a deterministic
// "first unlocked source" is needed
var AllSources = []Source{
	SourceTwitter,
	SourceGoogleTrends,
	SourceNews,
}

const WeightTolerance = 0.001

type SourceWeights map[Source]float64

func DefaultSourceWeights() SourceWeights {
	return SourceWeights{
		SourceTwitter:      0.4,
		SourceGoogleTrends: 0.3,
		SourceNews:         0.3,
	}
}

func (w SourceWeights) Copy() SourceWeights {
	out := SourceWeights{}
	for k, v := range w {
		out[k] = v
	}
	return out
}

func (w SourceWeights) Sum() float64 {
	sum := 0.0
	for _, v := range w {
		sum += v
	}
	return sum
}

// Sources returns the keys of w with the known sources first,
// in canonical order, followed by anything else alphabetically
func (w SourceWeights) Sources() []Source {
	out := []Source{}
	seen := map[Source]bool{}
	for _, s := range AllSources {
		if _, ok := w[s]; ok {
			out = append(out, s)
			seen[s] = true
		}
	}
	extra := []Source{}
	for s := range w {
		if !seen[s] {
			extra = append(extra, s)
		}
	}
	sort.Slice(extra, func(i, j int) bool {
		return extra[i] < extra[j]
	})

	return append(out, extra...)
}

func (w SourceWeights) Validate() error {
	if len(w) == 0 {
		return fmt.Errorf("source weights are empty")
	}
	for _, source := range w.Sources() {
		v := w[source]
		if math.IsNaN(v) || v < 0 {
			return fmt.Errorf("invalid weight %f for %s", v, source)
		}
	}
	if sum := w.Sum(); math.Abs(sum-1) > WeightTolerance {
		return fmt.Errorf("source weights should sum to 1, got %f", sum)
	}
	return nil
}

type Stock struct {
	ID         uuid.UUID `json:"id"`
	Symbol     string    `json:"symbol"`
	Name       string    `json:"name"`
	Sector     string    `json:"sector"`
	Allocation int       `json:"allocation"`
	Locked     bool      `json:"locked"`
}

const DefaultSector = "Unknown"

type Basket struct {
	ID            uuid.UUID     `json:"id"`
	UserAccountID uuid.UUID     `json:"userAccountID"`
	Name          string        `json:"name"`
	SourceWeights SourceWeights `json:"sourceWeights"`
	IsLocked      bool          `json:"isLocked"`
	Stocks        []Stock       `json:"stocks"`
	CreatedAt     *time.Time    `json:"createdAt"`
	UpdatedAt     *time.Time    `json:"updatedAt"`
}

// NewBasket is the blank basket the dashboard starts from
// when the user picks "new"
func NewBasket(userAccountID uuid.UUID) Basket {
	return Basket{
		UserAccountID: userAccountID,
		SourceWeights: DefaultSourceWeights(),
		Stocks:        []Stock{},
	}
}

func (b Basket) IsSaved() bool {
	return b.ID != uuid.Nil
}

func (b Basket) TotalAllocation() int {
	total := 0
	for _, s := range b.Stocks {
		total += s.Allocation
	}
	return total
}

func (b Basket) DeepCopy() Basket {
	out := b
	out.SourceWeights = b.SourceWeights.Copy()
	out.Stocks = CopyStocks(b.Stocks)
	return out
}

func CopyStocks(stocks []Stock) []Stock {
	out := make([]Stock, len(stocks))
	copy(out, stocks)
	return out
}
