package service

import (
	"context"
	"fmt"
	"sentimenttracker/internal/calculator"
	"sentimenttracker/internal/domain"
	"sentimenttracker/internal/logger"
	"sentimenttracker/internal/repository"
	"strings"

	"github.com/google/uuid"
)

type BasketService interface {
	NewBasket(userAccountID uuid.UUID) domain.Basket
	Save(ctx context.Context, userAccountID uuid.UUID, basket domain.Basket, forceNew bool) (*domain.Basket, error)
	Get(ctx context.Context, userAccountID, basketID uuid.UUID) (*domain.Basket, error)
	List(ctx context.Context, userAccountID uuid.UUID) ([]domain.Basket, error)
	GetMostRecent(ctx context.Context, userAccountID uuid.UUID) (*domain.Basket, error)
	Delete(ctx context.Context, userAccountID, basketID uuid.UUID) error
	Lock(ctx context.Context, userAccountID, basketID uuid.UUID) (*domain.Basket, error)
	UpdateSourceWeight(ctx context.Context, userAccountID, basketID uuid.UUID, in UpdateSourceWeightInput) (*domain.Basket, error)
	UpdateAllocation(ctx context.Context, userAccountID, basketID, stockID uuid.UUID, allocation int) (*domain.Basket, error)
	ResetAllocations(ctx context.Context, userAccountID, basketID uuid.UUID) (*domain.Basket, error)
	ToggleStockLock(ctx context.Context, userAccountID, basketID, stockID uuid.UUID) (*domain.Basket, error)
	SetStocks(ctx context.Context, userAccountID, basketID uuid.UUID, stocks []domain.Stock) (*domain.Basket, error)
}

type UpdateSourceWeightInput struct {
	Source domain.Source
	Value  float64
	Locked map[domain.Source]bool
}

func NewBasketService(basketRepository repository.BasketRepository) BasketService {
	return basketServiceHandler{
		BasketRepository: basketRepository,
	}
}

type basketServiceHandler struct {
	BasketRepository repository.BasketRepository
}

func (h basketServiceHandler) NewBasket(userAccountID uuid.UUID) domain.Basket {
	return domain.NewBasket(userAccountID)
}

// Save persists the basket for the user. With forceNew, the basket is
// stored as a new, unlocked copy even if it already has an ID.
func (h basketServiceHandler) Save(ctx context.Context, userAccountID uuid.UUID, basket domain.Basket, forceNew bool) (*domain.Basket, error) {
	log := logger.FromContext(ctx)

	b := basket.DeepCopy()
	b.UserAccountID = userAccountID
	b.Name = strings.TrimSpace(b.Name)

	var existing *domain.Basket
	if b.IsSaved() && !forceNew {
		var err error
		existing, err = h.load(userAccountID, b.ID)
		if err != nil {
			return nil, err
		}
		if existing.IsLocked {
			return nil, invalidInputf("basket %s is locked", b.ID)
		}
		b.CreatedAt = existing.CreatedAt
		b.IsLocked = false
	} else {
		b.ID = uuid.Nil
		b.CreatedAt = nil
		b.IsLocked = false
	}

	// only keep stock ids that already belong to this basket
	knownStockIDs := map[uuid.UUID]bool{}
	if existing != nil {
		for _, s := range existing.Stocks {
			knownStockIDs[s.ID] = true
		}
	}
	usedStockIDs := map[uuid.UUID]bool{}
	for i := range b.Stocks {
		id := b.Stocks[i].ID
		if !knownStockIDs[id] || usedStockIDs[id] {
			b.Stocks[i].ID = uuid.Nil
			continue
		}
		usedStockIDs[id] = true
	}

	saved, err := h.persist(b)
	if err != nil {
		return nil, err
	}

	log.Infof("saved basket %s (%d stocks) for user %s", saved.ID, len(saved.Stocks), userAccountID)
	return saved, nil
}

func (h basketServiceHandler) Get(ctx context.Context, userAccountID, basketID uuid.UUID) (*domain.Basket, error) {
	return h.load(userAccountID, basketID)
}

func (h basketServiceHandler) List(ctx context.Context, userAccountID uuid.UUID) ([]domain.Basket, error) {
	baskets, err := h.BasketRepository.List(userAccountID)
	if err != nil {
		return nil, fmt.Errorf("failed to list baskets: %w", err)
	}
	if baskets == nil {
		baskets = []domain.Basket{}
	}
	return baskets, nil
}

func (h basketServiceHandler) GetMostRecent(ctx context.Context, userAccountID uuid.UUID) (*domain.Basket, error) {
	basket, err := h.BasketRepository.GetMostRecent(userAccountID)
	if err != nil {
		return nil, fmt.Errorf("failed to get most recent basket: %w", err)
	}
	if basket == nil {
		return nil, ErrBasketNotFound
	}
	return basket, nil
}

func (h basketServiceHandler) Delete(ctx context.Context, userAccountID, basketID uuid.UUID) error {
	if _, err := h.load(userAccountID, basketID); err != nil {
		return err
	}
	if err := h.BasketRepository.Delete(basketID); err != nil {
		return fmt.Errorf("failed to delete basket: %w", err)
	}

	logger.FromContext(ctx).Infof("deleted basket %s for user %s", basketID, userAccountID)
	return nil
}

func (h basketServiceHandler) Lock(ctx context.Context, userAccountID, basketID uuid.UUID) (*domain.Basket, error) {
	basket, err := h.load(userAccountID, basketID)
	if err != nil {
		return nil, err
	}
	if basket.IsLocked {
		return basket, nil
	}
	b := basket.DeepCopy()
	b.IsLocked = true

	return h.persist(b)
}

func (h basketServiceHandler) UpdateSourceWeight(ctx context.Context, userAccountID, basketID uuid.UUID, in UpdateSourceWeightInput) (*domain.Basket, error) {
	return h.update(userAccountID, basketID, func(b *domain.Basket) error {
		weights, err := calculator.NormalizeWeights(calculator.NormalizeWeightsInput{
			Weights: b.SourceWeights,
			Source:  in.Source,
			Value:   in.Value,
			Locked:  in.Locked,
		})
		if err != nil {
			return err
		}
		b.SourceWeights = weights
		return nil
	})
}

func (h basketServiceHandler) UpdateAllocation(ctx context.Context, userAccountID, basketID, stockID uuid.UUID, allocation int) (*domain.Basket, error) {
	return h.update(userAccountID, basketID, func(b *domain.Basket) error {
		stocks, err := calculator.SetAllocation(b.Stocks, stockID, allocation)
		if err != nil {
			return err
		}
		b.Stocks = stocks
		return nil
	})
}

func (h basketServiceHandler) ResetAllocations(ctx context.Context, userAccountID, basketID uuid.UUID) (*domain.Basket, error) {
	return h.update(userAccountID, basketID, func(b *domain.Basket) error {
		b.Stocks = calculator.ResetAllocations(b.Stocks)
		return nil
	})
}

func (h basketServiceHandler) ToggleStockLock(ctx context.Context, userAccountID, basketID, stockID uuid.UUID) (*domain.Basket, error) {
	return h.update(userAccountID, basketID, func(b *domain.Basket) error {
		for i := range b.Stocks {
			if b.Stocks[i].ID == stockID {
				b.Stocks[i].Locked = !b.Stocks[i].Locked
				return nil
			}
		}
		return fmt.Errorf("stock %s not found in basket", stockID)
	})
}

// SetStocks replaces the basket's stock selection. Stocks that stay
// keep their allocation and lock, new ones start unlocked at 0%. If the
// total no longer adds up to 100 the unlocked stocks are reset to an
// even split.
func (h basketServiceHandler) SetStocks(ctx context.Context, userAccountID, basketID uuid.UUID, stocks []domain.Stock) (*domain.Basket, error) {
	return h.update(userAccountID, basketID, func(b *domain.Basket) error {
		merged, err := MergeStocks(b.Stocks, stocks)
		if err != nil {
			return err
		}
		total := 0
		for _, s := range merged {
			total += s.Allocation
		}
		if len(merged) > 0 && total != calculator.TotalAllocation {
			merged = calculator.ResetAllocations(merged)
		}
		b.Stocks = merged
		return nil
	})
}

// MergeStocks matches the selection against current by symbol.
// Duplicate symbols in the selection are dropped.
func MergeStocks(current []domain.Stock, selection []domain.Stock) ([]domain.Stock, error) {
	bySymbol := map[string]domain.Stock{}
	for _, s := range current {
		bySymbol[normalizeSymbol(s.Symbol)] = s
	}

	seen := map[string]bool{}
	out := []domain.Stock{}
	for _, s := range selection {
		symbol := normalizeSymbol(s.Symbol)
		if symbol == "" {
			return nil, fmt.Errorf("stock symbol is required")
		}
		if seen[symbol] {
			continue
		}
		seen[symbol] = true

		if existing, ok := bySymbol[symbol]; ok {
			out = append(out, existing)
			continue
		}
		out = append(out, domain.Stock{
			Symbol: symbol,
			Name:   strings.TrimSpace(s.Name),
			Sector: strings.TrimSpace(s.Sector),
		})
	}

	return out, nil
}

func normalizeSymbol(symbol string) string {
	return strings.ToUpper(strings.TrimSpace(symbol))
}

func (h basketServiceHandler) load(userAccountID, basketID uuid.UUID) (*domain.Basket, error) {
	basket, err := h.BasketRepository.Get(basketID)
	if err != nil {
		return nil, fmt.Errorf("failed to get basket: %w", err)
	}
	// other users' baskets look the same as missing ones
	if basket == nil || basket.UserAccountID != userAccountID {
		return nil, ErrBasketNotFound
	}
	return basket, nil
}

func (h basketServiceHandler) update(userAccountID, basketID uuid.UUID, fn func(b *domain.Basket) error) (*domain.Basket, error) {
	basket, err := h.load(userAccountID, basketID)
	if err != nil {
		return nil, err
	}
	if basket.IsLocked {
		return nil, invalidInputf("basket %s is locked", basketID)
	}

	b := basket.DeepCopy()
	if err := fn(&b); err != nil {
		return nil, invalidInput(err)
	}

	return h.persist(b)
}

func (h basketServiceHandler) persist(b domain.Basket) (*domain.Basket, error) {
	if err := validateBasket(&b); err != nil {
		return nil, invalidInput(err)
	}

	saved, err := h.BasketRepository.Save(b)
	if err != nil {
		return nil, fmt.Errorf("failed to save basket: %w", err)
	}
	return saved, nil
}

// validateBasket also fills in default sectors
func validateBasket(b *domain.Basket) error {
	if b.Name == "" {
		return fmt.Errorf("basket name is required")
	}
	if b.SourceWeights == nil {
		b.SourceWeights = domain.DefaultSourceWeights()
	}
	if err := b.SourceWeights.Validate(); err != nil {
		return err
	}

	seen := map[string]bool{}
	seenIDs := map[uuid.UUID]bool{}
	for i := range b.Stocks {
		s := &b.Stocks[i]
		if s.ID != uuid.Nil {
			if seenIDs[s.ID] {
				return fmt.Errorf("duplicate stock id %s", s.ID)
			}
			seenIDs[s.ID] = true
		}
		s.Symbol = normalizeSymbol(s.Symbol)
		if s.Symbol == "" {
			return fmt.Errorf("stock symbol is required")
		}
		if seen[s.Symbol] {
			return fmt.Errorf("duplicate stock %s", s.Symbol)
		}
		seen[s.Symbol] = true
		if s.Allocation < 0 || s.Allocation > calculator.TotalAllocation {
			return fmt.Errorf("allocation for %s must be between 0 and 100, got %d", s.Symbol, s.Allocation)
		}
		if strings.TrimSpace(s.Sector) == "" {
			s.Sector = domain.DefaultSector
		}
	}

	if len(b.Stocks) > 0 && b.TotalAllocation() != calculator.TotalAllocation {
		return fmt.Errorf("stock allocations must sum to 100, got %d", b.TotalAllocation())
	}

	return nil
}
