package api

import (
	"net/http"
	"sentimenttracker/internal/domain"
	"sentimenttracker/internal/service"

	"github.com/gin-gonic/gin"
)

type compositeSentimentRequest struct {
	Period  domain.TimePeriod    `json:"period"`
	Weights domain.SourceWeights `json:"weights"`
}

func (m ApiHandler) compositeSentiment(c *gin.Context) {
	var requestBody compositeSentimentRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(err, c, http.StatusBadRequest)
		return
	}
	if requestBody.Period == "" {
		requestBody.Period = domain.TimePeriodWeek
	}

	out, err := m.SentimentService.GetCompositeSentiment(c.Request.Context(), service.GetCompositeSentimentInput{
		Period:  requestBody.Period,
		Weights: requestBody.Weights,
	})
	if err != nil {
		returnServiceError(err, c)
		return
	}

	c.JSON(200, out)
}
