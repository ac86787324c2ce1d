package service

import (
	"context"
	"time"

	"agroledger/internal/model"
	"agroledger/internal/repository"
	"agroledger/pkg/pagination"

	"github.com/stretchr/testify/mock"
)

// Mock implementations for testing.
type mockTripRepo struct {
	mock.Mock
}

func (m *mockTripRepo) ListObservations(ctx context.Context, from, to time.Time) ([]model.PriceObservationRow, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.PriceObservationRow), args.Error(1)
}

func (m *mockTripRepo) ListProducts(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *mockTripRepo) CreateBatch(ctx context.Context, trips []model.Trip, batchSize int) error {
	args := m.Called(ctx, trips, batchSize)
	return args.Error(0)
}

type mockPriceNoteRepo struct {
	mock.Mock
}

func (m *mockPriceNoteRepo) Create(ctx context.Context, note *model.PriceNote) error {
	args := m.Called(ctx, note)
	return args.Error(0)
}

func (m *mockPriceNoteRepo) List(ctx context.Context, product string, page pagination.Params) ([]model.PriceNote, int64, error) {
	args := m.Called(ctx, product, page)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]model.PriceNote), args.Get(1).(int64), args.Error(2)
}

type mockAuditRepo struct {
	mock.Mock
}

func (m *mockAuditRepo) Log(ctx context.Context, entry *model.AuditLog) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *mockAuditRepo) List(ctx context.Context, filter repository.AuditFilter, page pagination.Params) ([]model.AuditLog, int64, error) {
	args := m.Called(ctx, filter, page)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]model.AuditLog), args.Get(1).(int64), args.Error(2)
}

type mockPublisher struct {
	mock.Mock
}

func (m *mockPublisher) Publish(eventType string, data any) error {
	args := m.Called(eventType, data)
	return args.Error(0)
}

type mockPriceService struct {
	PriceService
	mock.Mock
}

func (m *mockPriceService) Invalidate() {
	m.Called()
}

// inlineTx runs the callback directly; its error is the transaction outcome.
type inlineTx struct {
	calls int
}

func (t *inlineTx) RunInTx(ctx context.Context, fn func(txCtx context.Context) error) error {
	t.calls++
	return fn(ctx)
}
