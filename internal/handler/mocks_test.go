package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"time"

	"agroledger/internal/pricing"
	"agroledger/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
)

type mockPriceService struct {
	mock.Mock
}

func (m *mockPriceService) Products(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *mockPriceService) Forecast(ctx context.Context, product string) (pricing.ForecastResult, error) {
	args := m.Called(ctx, product)
	return args.Get(0).(pricing.ForecastResult), args.Error(1)
}

func (m *mockPriceService) BestBuyingDay(ctx context.Context, product string) (pricing.WeekdayAdvisory, error) {
	args := m.Called(ctx, product)
	return args.Get(0).(pricing.WeekdayAdvisory), args.Error(1)
}

func (m *mockPriceService) Seasonality(ctx context.Context, product string) (pricing.SeasonalPattern, error) {
	args := m.Called(ctx, product)
	return args.Get(0).(pricing.SeasonalPattern), args.Error(1)
}

func (m *mockPriceService) ComparePeriods(ctx context.Context, product string, yearA, yearB int) (service.PeriodComparison, error) {
	args := m.Called(ctx, product, yearA, yearB)
	return args.Get(0).(service.PeriodComparison), args.Error(1)
}

func (m *mockPriceService) Overview(ctx context.Context, product string) (service.PriceOverview, error) {
	args := m.Called(ctx, product)
	return args.Get(0).(service.PriceOverview), args.Error(1)
}

func (m *mockPriceService) OverviewRange(ctx context.Context, product string, from, to time.Time) (service.PriceOverview, error) {
	args := m.Called(ctx, product, from, to)
	return args.Get(0).(service.PriceOverview), args.Error(1)
}

func (m *mockPriceService) Invalidate() {
	m.Called()
}

type mockPriceNoteService struct {
	mock.Mock
}

func (m *mockPriceNoteService) CreateNote(ctx context.Context, actor string, req service.CreatePriceNoteRequest) (service.PriceNoteResponse, error) {
	args := m.Called(ctx, actor, req)
	return args.Get(0).(service.PriceNoteResponse), args.Error(1)
}

func (m *mockPriceNoteService) GetNotes(ctx context.Context, product string, page, limit int) ([]service.PriceNoteResponse, int64, error) {
	args := m.Called(ctx, product, page, limit)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]service.PriceNoteResponse), args.Get(1).(int64), args.Error(2)
}

type mockAuditService struct {
	mock.Mock
}

func (m *mockAuditService) GetAuditLogs(ctx context.Context, query service.AuditLogQuery) ([]service.AuditLogResponse, int64, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]service.AuditLogResponse), args.Get(1).(int64), args.Error(2)
}

type routeRegistrar interface {
	RegisterRoutes(router *gin.RouterGroup)
}

func newTestRouter(h routeRegistrar) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	h.RegisterRoutes(router.Group(""))
	return router
}

func perform(router *gin.Engine, method, target, body string, headers ...string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}
