package handler

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"agroledger/internal/service"
	"agroledger/pkg/response"

	"github.com/gin-gonic/gin"
)

type PriceHandler struct {
	priceService service.PriceService
	now          func() time.Time
}

func NewPriceHandler(priceService service.PriceService) *PriceHandler {
	return &PriceHandler{priceService: priceService, now: time.Now}
}

func (h *PriceHandler) RegisterRoutes(router *gin.RouterGroup) {
	group := router.Group("/api/prices")
	{
		group.GET("/products", h.GetProducts)
		group.GET("/forecast", h.GetForecast)
		group.GET("/best-day", h.GetBestDay)
		group.GET("/seasonality", h.GetSeasonality)
		group.GET("/compare", h.ComparePeriods)
		group.GET("/overview", h.GetOverview)
	}
}

// requireProduct reads ?product= and answers 400 when it is blank.
func requireProduct(c *gin.Context) (string, bool) {
	product := strings.TrimSpace(c.Query("product"))
	if product == "" {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "product query parameter is required"))
		return "", false
	}
	return product, true
}

// GetProducts godoc
// @Summary      List products
// @Description  Lists every product with at least one trip in the ledger
// @Tags         Prices
// @Produce      json
// @Success      200  {object}  response.Response{data=[]string}
// @Failure      500  {object}  response.Response
// @Router       /api/prices/products [get]
func (h *PriceHandler) GetProducts(c *gin.Context) {
	products, err := h.priceService.Products(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, "Failed to retrieve products")
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, products))
}

// GetForecast godoc
// @Summary      Forecast next purchase price
// @Description  Weighted-average estimate of the next purchase price with a one-sigma range and trend
// @Tags         Prices
// @Produce      json
// @Param        product  query     string  true   "Product name (exact match)"
// @Param        lang     query     string  false  "Language for advice text (en, es)"
// @Success      200      {object}  response.Response{data=ForecastView}
// @Failure      400      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Router       /api/prices/forecast [get]
func (h *PriceHandler) GetForecast(c *gin.Context) {
	product, ok := requireProduct(c)
	if !ok {
		return
	}
	result, err := h.priceService.Forecast(c.Request.Context(), product)
	if err != nil {
		respondServiceError(c, err, "Failed to forecast price")
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, toForecastView(requestLocale(c), product, result)))
}

// GetBestDay godoc
// @Summary      Best weekday to buy
// @Description  Compares mean purchase price per weekday and names the cheapest and most expensive days
// @Tags         Prices
// @Produce      json
// @Param        product  query     string  true   "Product name (exact match)"
// @Param        lang     query     string  false  "Language for day names (en, es)"
// @Success      200      {object}  response.Response{data=WeekdayView}
// @Failure      400      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Router       /api/prices/best-day [get]
func (h *PriceHandler) GetBestDay(c *gin.Context) {
	product, ok := requireProduct(c)
	if !ok {
		return
	}
	advisory, err := h.priceService.BestBuyingDay(c.Request.Context(), product)
	if err != nil {
		respondServiceError(c, err, "Failed to analyze weekdays")
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, toWeekdayView(requestLocale(c), product, advisory)))
}

// GetSeasonality godoc
// @Summary      Seasonal price pattern
// @Description  Months whose average price is at least 15% above or below the average of monthly averages
// @Tags         Prices
// @Produce      json
// @Param        product  query     string  true   "Product name (exact match)"
// @Param        lang     query     string  false  "Language for month names (en, es)"
// @Success      200      {object}  response.Response{data=SeasonalityView}
// @Failure      400      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Router       /api/prices/seasonality [get]
func (h *PriceHandler) GetSeasonality(c *gin.Context) {
	product, ok := requireProduct(c)
	if !ok {
		return
	}
	pattern, err := h.priceService.Seasonality(c.Request.Context(), product)
	if err != nil {
		respondServiceError(c, err, "Failed to detect seasonality")
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, toSeasonalityView(requestLocale(c), product, pattern)))
}

// ComparePeriods godoc
// @Summary      Compare two years
// @Description  Week-of-month price comparison between two calendar years (defaults: last year vs this year)
// @Tags         Prices
// @Produce      json
// @Param        product  query     string  true   "Product name (exact match)"
// @Param        year_a   query     int     false  "Reference year"
// @Param        year_b   query     int     false  "Compared year"
// @Param        lang     query     string  false  "Language for month names (en, es)"
// @Success      200      {object}  response.Response{data=ComparisonView}
// @Failure      400      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Router       /api/prices/compare [get]
func (h *PriceHandler) ComparePeriods(c *gin.Context) {
	product, ok := requireProduct(c)
	if !ok {
		return
	}

	current := h.now().Year()
	yearA, errA := queryYear(c, "year_a", current-1)
	yearB, errB := queryYear(c, "year_b", current)
	if errA != nil || errB != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "year_a and year_b must be whole years"))
		return
	}

	cmp, err := h.priceService.ComparePeriods(c.Request.Context(), product, yearA, yearB)
	if err != nil {
		respondServiceError(c, err, "Failed to compare periods")
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, toComparisonView(requestLocale(c), cmp)))
}

// GetOverview godoc
// @Summary      Price intelligence overview
// @Description  Forecast, best weekday and seasonality for one product in a single call
// @Tags         Prices
// @Produce      json
// @Param        product  query     string  true   "Product name (exact match)"
// @Param        lang     query     string  false  "Language (en, es)"
// @Success      200      {object}  response.Response{data=OverviewView}
// @Failure      400      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Router       /api/prices/overview [get]
func (h *PriceHandler) GetOverview(c *gin.Context) {
	product, ok := requireProduct(c)
	if !ok {
		return
	}
	overview, err := h.priceService.Overview(c.Request.Context(), product)
	if err != nil {
		respondServiceError(c, err, "Failed to build overview")
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, toOverviewView(requestLocale(c), overview)))
}

func queryYear(c *gin.Context, key string, fallback int) (int, error) {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return fallback, nil
	}
	return strconv.Atoi(raw)
}
