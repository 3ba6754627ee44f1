package api

import (
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"sentimenttracker/internal/logger"
	"sentimenttracker/internal/repository"
	"sentimenttracker/internal/service"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ApiHandler struct {
	Db               *sql.DB
	Logger           *zap.SugaredLogger
	JwtDecodeToken   string
	WinRateService   service.WinRateService
	BasketService    service.BasketService
	SentimentService service.SentimentService
	// used for the single-symbol quote endpoint
	QuoteRepository repository.PriceRepository
}

func (m ApiHandler) InitializeRouterEngine() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AddAllowHeaders("Authorization")
	router.Use(cors.New(corsConfig))
	router.Use(m.logRequestMiddleware)

	router.GET("/", func(ctx *gin.Context) {
		ctx.JSON(200, map[string]string{"message": "welcome to sentiment tracker"})
	})
	router.GET("/aggregated-win-rates", m.getAggregatedWinRates)
	router.GET("/win-rates", m.getWinRates)
	router.GET("/stock-price/current/:symbol", m.getCurrentStockPrice)
	router.POST("/normalize/weights", m.normalizeWeights)
	router.POST("/normalize/allocation", m.normalizeAllocation)
	router.POST("/normalize/reset-allocations", m.normalizeResetAllocations)
	router.POST("/composite-sentiment", m.compositeSentiment)

	baskets := router.Group("/baskets", m.authMiddleware())
	baskets.POST("", m.saveBasket)
	baskets.GET("", m.listBaskets)
	baskets.GET("/new", m.newBasket)
	baskets.GET("/latest", m.getMostRecentBasket)
	baskets.GET("/:id", m.getBasket)
	baskets.DELETE("/:id", m.deleteBasket)
	baskets.POST("/:id/lock", m.lockBasket)
	baskets.POST("/:id/weights", m.updateBasketWeights)
	baskets.POST("/:id/allocation", m.updateBasketAllocation)
	baskets.POST("/:id/reset-allocations", m.resetBasketAllocations)
	baskets.POST("/:id/stocks/:stockID/toggle-lock", m.toggleBasketStockLock)
	baskets.PUT("/:id/stocks", m.setBasketStocks)

	return router
}

func (m ApiHandler) StartApi(port int) error {
	router := m.InitializeRouterEngine()
	return router.Run(fmt.Sprintf(":%d", port))
}

func returnErrorJson(err error, c *gin.Context) {
	returnErrorJsonCode(err, c, http.StatusInternalServerError)
}

func returnErrorJsonCode(err error, c *gin.Context, code int) {
	lg := logger.FromContext(c)
	if code >= 500 {
		lg.Errorf("request failed: %s", err.Error())
	} else {
		lg.Warnf("request rejected (%d): %s", code, err.Error())
	}
	c.AbortWithStatusJSON(code, gin.H{
		"error": err.Error(),
	})
}

// returnServiceError picks the status code from the error kind
func returnServiceError(err error, c *gin.Context) {
	switch {
	case errors.Is(err, service.ErrBasketNotFound):
		returnErrorJsonCode(err, c, http.StatusNotFound)
	case service.IsInvalidInput(err):
		returnErrorJsonCode(err, c, http.StatusBadRequest)
	default:
		returnErrorJson(err, c)
	}
}

func (m ApiHandler) logRequestMiddleware(c *gin.Context) {
	base := m.Logger
	if base == nil {
		base = zap.S()
	}
	requestID := uuid.New()
	lg := base.With(
		"requestID", requestID.String(),
		"method", c.Request.Method,
		"route", c.Request.URL.Path,
	)

	c.Set("requestID", requestID)
	c.Set(logger.ContextKey, lg)
	c.Request = c.Request.WithContext(logger.WithLogger(c.Request.Context(), lg))

	start := time.Now().UTC()
	c.Next()

	lg.Infow(
		"request completed",
		"status", c.Writer.Status(),
		"durationMs", time.Since(start).Milliseconds(),
		"ip", c.ClientIP(),
	)
}
