package api

import (
	"fmt"
	"net/http"
	"sentimenttracker/internal/domain"
	"sentimenttracker/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// requireUser writes the error response itself when it fails
func requireUser(c *gin.Context) (uuid.UUID, bool) {
	userAccountID, err := getUserAccountID(c)
	if err != nil {
		returnErrorJsonCode(err, c, http.StatusUnauthorized)
		return uuid.Nil, false
	}
	return userAccountID, true
}

func uuidParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		returnErrorJsonCode(fmt.Errorf("invalid %s %q", name, c.Param(name)), c, http.StatusBadRequest)
		return uuid.Nil, false
	}
	return id, true
}

type saveBasketRequest struct {
	Basket   domain.Basket `json:"basket"`
	ForceNew bool          `json:"forceNew"`
}

func (m ApiHandler) saveBasket(c *gin.Context) {
	userAccountID, ok := requireUser(c)
	if !ok {
		return
	}
	var requestBody saveBasketRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(err, c, http.StatusBadRequest)
		return
	}

	basket, err := m.BasketService.Save(c.Request.Context(), userAccountID, requestBody.Basket, requestBody.ForceNew)
	if err != nil {
		returnServiceError(err, c)
		return
	}

	c.JSON(200, basket)
}

func (m ApiHandler) newBasket(c *gin.Context) {
	userAccountID, ok := requireUser(c)
	if !ok {
		return
	}

	c.JSON(200, m.BasketService.NewBasket(userAccountID))
}

func (m ApiHandler) listBaskets(c *gin.Context) {
	userAccountID, ok := requireUser(c)
	if !ok {
		return
	}

	baskets, err := m.BasketService.List(c.Request.Context(), userAccountID)
	if err != nil {
		returnServiceError(err, c)
		return
	}

	c.JSON(200, baskets)
}

func (m ApiHandler) getMostRecentBasket(c *gin.Context) {
	userAccountID, ok := requireUser(c)
	if !ok {
		return
	}

	basket, err := m.BasketService.GetMostRecent(c.Request.Context(), userAccountID)
	if err != nil {
		returnServiceError(err, c)
		return
	}

	c.JSON(200, basket)
}

func (m ApiHandler) getBasket(c *gin.Context) {
	userAccountID, ok := requireUser(c)
	if !ok {
		return
	}
	basketID, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	basket, err := m.BasketService.Get(c.Request.Context(), userAccountID, basketID)
	if err != nil {
		returnServiceError(err, c)
		return
	}

	c.JSON(200, basket)
}

func (m ApiHandler) deleteBasket(c *gin.Context) {
	userAccountID, ok := requireUser(c)
	if !ok {
		return
	}
	basketID, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	err := m.BasketService.Delete(c.Request.Context(), userAccountID, basketID)
	if err != nil {
		returnServiceError(err, c)
		return
	}

	c.JSON(200, gin.H{"message": "ok"})
}

func (m ApiHandler) lockBasket(c *gin.Context) {
	userAccountID, ok := requireUser(c)
	if !ok {
		return
	}
	basketID, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	basket, err := m.BasketService.Lock(c.Request.Context(), userAccountID, basketID)
	if err != nil {
		returnServiceError(err, c)
		return
	}

	c.JSON(200, basket)
}

type updateBasketWeightsRequest struct {
	Source domain.Source   `json:"source"`
	Value  float64         `json:"value"`
	Locked []domain.Source `json:"locked"`
}

func (m ApiHandler) updateBasketWeights(c *gin.Context) {
	userAccountID, ok := requireUser(c)
	if !ok {
		return
	}
	basketID, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	var requestBody updateBasketWeightsRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(err, c, http.StatusBadRequest)
		return
	}

	basket, err := m.BasketService.UpdateSourceWeight(c.Request.Context(), userAccountID, basketID, service.UpdateSourceWeightInput{
		Source: requestBody.Source,
		Value:  requestBody.Value,
		Locked: lockedSources(requestBody.Locked),
	})
	if err != nil {
		returnServiceError(err, c)
		return
	}

	c.JSON(200, basket)
}

type updateBasketAllocationRequest struct {
	StockID    uuid.UUID `json:"stockID"`
	Allocation int       `json:"allocation"`
}

func (m ApiHandler) updateBasketAllocation(c *gin.Context) {
	userAccountID, ok := requireUser(c)
	if !ok {
		return
	}
	basketID, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	var requestBody updateBasketAllocationRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(err, c, http.StatusBadRequest)
		return
	}

	basket, err := m.BasketService.UpdateAllocation(c.Request.Context(), userAccountID, basketID, requestBody.StockID, requestBody.Allocation)
	if err != nil {
		returnServiceError(err, c)
		return
	}

	c.JSON(200, basket)
}

func (m ApiHandler) resetBasketAllocations(c *gin.Context) {
	userAccountID, ok := requireUser(c)
	if !ok {
		return
	}
	basketID, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	basket, err := m.BasketService.ResetAllocations(c.Request.Context(), userAccountID, basketID)
	if err != nil {
		returnServiceError(err, c)
		return
	}

	c.JSON(200, basket)
}

func (m ApiHandler) toggleBasketStockLock(c *gin.Context) {
	userAccountID, ok := requireUser(c)
	if !ok {
		return
	}
	basketID, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	stockID, ok := uuidParam(c, "stockID")
	if !ok {
		return
	}

	basket, err := m.BasketService.ToggleStockLock(c.Request.Context(), userAccountID, basketID, stockID)
	if err != nil {
		returnServiceError(err, c)
		return
	}

	c.JSON(200, basket)
}

type setBasketStocksRequest struct {
	Stocks []domain.Stock `json:"stocks"`
}

func (m ApiHandler) setBasketStocks(c *gin.Context) {
	userAccountID, ok := requireUser(c)
	if !ok {
		return
	}
	basketID, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	var requestBody setBasketStocksRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(err, c, http.StatusBadRequest)
		return
	}

	basket, err := m.BasketService.SetStocks(c.Request.Context(), userAccountID, basketID, requestBody.Stocks)
	if err != nil {
		returnServiceError(err, c)
		return
	}

	c.JSON(200, basket)
}
