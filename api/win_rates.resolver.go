package api

import (
	"sentimenttracker/internal/domain"

	"github.com/gin-gonic/gin"
)

func (m ApiHandler) getAggregatedWinRates(c *gin.Context) {
	out, err := m.WinRateService.GetAggregatedWinRates(c.Request.Context())
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, out)
}

type winRateResponse struct {
	Source  domain.Source `json:"source"`
	Wins    int           `json:"wins"`
	Losses  int           `json:"losses"`
	WinRate float64       `json:"winRate"`
}

func (m ApiHandler) getWinRates(c *gin.Context) {
	winRates, err := m.WinRateService.GetWinRates(c.Request.Context())
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	out := []winRateResponse{}
	for _, source := range domain.AllSources {
		w, ok := winRates[source]
		if !ok {
			continue
		}
		out = append(out, winRateResponse{
			Source:  source,
			Wins:    w.Wins,
			Losses:  w.Losses,
			WinRate: w.WinRate,
		})
	}

	c.JSON(200, out)
}
