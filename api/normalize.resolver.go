package api

import (
	"net/http"
	"sentimenttracker/internal/calculator"
	"sentimenttracker/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// stateless versions of the basket edits, for baskets that
// haven't been saved yet

type normalizeWeightsRequest struct {
	Weights domain.SourceWeights `json:"weights"`
	Source  domain.Source        `json:"source"`
	Value   float64              `json:"value"`
	Locked  []domain.Source      `json:"locked"`
}

type normalizeWeightsResponse struct {
	Weights domain.SourceWeights `json:"weights"`
}

func lockedSources(sources []domain.Source) map[domain.Source]bool {
	out := map[domain.Source]bool{}
	for _, s := range sources {
		out[s] = true
	}
	return out
}

func (m ApiHandler) normalizeWeights(c *gin.Context) {
	var requestBody normalizeWeightsRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(err, c, http.StatusBadRequest)
		return
	}

	weights, err := calculator.NormalizeWeights(calculator.NormalizeWeightsInput{
		Weights: requestBody.Weights,
		Source:  requestBody.Source,
		Value:   requestBody.Value,
		Locked:  lockedSources(requestBody.Locked),
	})
	if err != nil {
		returnErrorJsonCode(err, c, http.StatusBadRequest)
		return
	}

	c.JSON(200, normalizeWeightsResponse{Weights: weights})
}

type normalizeAllocationRequest struct {
	Stocks     []domain.Stock `json:"stocks"`
	StockID    uuid.UUID      `json:"stockID"`
	Allocation int            `json:"allocation"`
}

type stocksResponse struct {
	Stocks []domain.Stock `json:"stocks"`
}

func (m ApiHandler) normalizeAllocation(c *gin.Context) {
	var requestBody normalizeAllocationRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(err, c, http.StatusBadRequest)
		return
	}

	stocks, err := calculator.SetAllocation(requestBody.Stocks, requestBody.StockID, requestBody.Allocation)
	if err != nil {
		returnErrorJsonCode(err, c, http.StatusBadRequest)
		return
	}

	c.JSON(200, stocksResponse{Stocks: stocks})
}

type resetAllocationsRequest struct {
	Stocks []domain.Stock `json:"stocks"`
}

func (m ApiHandler) normalizeResetAllocations(c *gin.Context) {
	var requestBody resetAllocationsRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(err, c, http.StatusBadRequest)
		return
	}

	c.JSON(200, stocksResponse{
		Stocks: calculator.ResetAllocations(requestBody.Stocks),
	})
}
