package service

import (
	"context"
	"encoding/json"
	"fmt"

	"agroledger/internal/model"
	"agroledger/internal/repository"
	"agroledger/internal/websocket"

	"github.com/rs/zerolog/log"
)

// DefaultImportBatchSize mirrors how many rows one insert statement carries.
const DefaultImportBatchSize = 100

// --- DTOs ---

type ImportRequest struct {
	// Source is the file name or other origin recorded in the audit trail.
	Source string
	Trips  []model.Trip
	// Read counts rows read from the source, skipped ones included.
	Read       int
	Skipped    int
	BatchSize  int
	OnProgress func(inserted, total int)
}

type ImportResult struct {
	Read     int `json:"read"`
	Inserted int `json:"inserted"`
	Skipped  int `json:"skipped"`
}

// --- Interface ---

type ImportService interface {
	ImportTrips(ctx context.Context, actor string, req ImportRequest) (ImportResult, error)
}

// --- Implementation ---

type importService struct {
	tripRepo  repository.TripRepository
	auditRepo repository.AuditRepository
	txManager repository.TransactionManager
	prices    PriceService
	publisher EventPublisher
}

// NewImportService wires the importer; prices and publisher may be nil.
func NewImportService(
	tripRepo repository.TripRepository,
	auditRepo repository.AuditRepository,
	txManager repository.TransactionManager,
	prices PriceService,
	publisher EventPublisher,
) ImportService {
	return &importService{
		tripRepo:  tripRepo,
		auditRepo: auditRepo,
		txManager: txManager,
		prices:    prices,
		publisher: publisher,
	}
}

// ImportTrips inserts every trip in one transaction, batch by batch. Any
// failing batch rolls the whole import back.
func (s *importService) ImportTrips(ctx context.Context, actor string, req ImportRequest) (ImportResult, error) {
	batchSize := req.BatchSize
	if batchSize <= 0 {
		batchSize = DefaultImportBatchSize
	}

	result := ImportResult{Read: req.Read, Skipped: req.Skipped}
	if result.Read < len(req.Trips)+req.Skipped {
		result.Read = len(req.Trips) + req.Skipped
	}
	if len(req.Trips) == 0 {
		return result, nil
	}

	total := len(req.Trips)
	inserted := 0
	err := s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		for start := 0; start < total; start += batchSize {
			end := min(start+batchSize, total)
			if err := s.tripRepo.CreateBatch(txCtx, req.Trips[start:end], batchSize); err != nil {
				return fmt.Errorf("failed to insert trips %d-%d: %w", start+1, end, err)
			}
			inserted = end
			if req.OnProgress != nil {
				req.OnProgress(inserted, total)
			}
		}

		details, _ := json.Marshal(map[string]interface{}{
			"source":   req.Source,
			"read":     result.Read,
			"inserted": inserted,
			"skipped":  result.Skipped,
		})
		entry := &model.AuditLog{
			Actor:      actor,
			Action:     model.ActionImportTrips,
			EntityID:   fmt.Sprintf("%d", inserted),
			EntityName: req.Source,
			Details:    string(details),
		}
		if err := s.auditRepo.Log(txCtx, entry); err != nil {
			return fmt.Errorf("failed to write audit log: %w", err)
		}
		return nil
	})
	if err != nil {
		return ImportResult{Read: result.Read, Skipped: result.Skipped}, err
	}
	result.Inserted = inserted

	log.Info().
		Str("source", req.Source).
		Int("read", result.Read).
		Int("inserted", result.Inserted).
		Int("skipped", result.Skipped).
		Msg("imported trips")

	if s.prices != nil {
		s.prices.Invalidate()
	}
	if s.publisher != nil {
		if err := s.publisher.Publish(websocket.EventTripsImported, result); err != nil {
			log.Warn().Err(err).Msg("failed to publish import event")
		}
	}
	return result, nil
}
