package api

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

type getCurrentStockPriceResponse struct {
	Symbol string  `json:"symbol"`
	Price  float64 `json:"price"`
}

func (m ApiHandler) getCurrentStockPrice(c *gin.Context) {
	symbol := strings.ToUpper(strings.TrimSpace(c.Param("symbol")))
	if symbol == "" {
		returnErrorJsonCode(fmt.Errorf("symbol is required"), c, http.StatusBadRequest)
		return
	}

	price, err := m.QuoteRepository.GetCurrentPrice(c.Request.Context(), symbol)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, getCurrentStockPriceResponse{
		Symbol: symbol,
		Price:  price,
	})
}
