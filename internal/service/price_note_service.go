package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"agroledger/internal/model"
	"agroledger/internal/repository"
	"agroledger/internal/websocket"
	"agroledger/pkg/pagination"

	"github.com/rs/zerolog/log"
)

const maxNoteLength = 2000

// --- DTOs ---

type CreatePriceNoteRequest struct {
	Date      string `json:"date" binding:"required"` // YYYY-MM-DD
	Product   string `json:"product" binding:"required"`
	Note      string `json:"note" binding:"required"`
	EventType string `json:"event_type"` // HARVEST, WEATHER, DEMAND, SUPPLY, OTHER (default)
}

type PriceNoteResponse struct {
	ID        string `json:"id"`
	Date      string `json:"date"`
	Product   string `json:"product"`
	Note      string `json:"note"`
	EventType string `json:"event_type"`
	CreatedAt string `json:"created_at"`
}

// --- Interface ---

type PriceNoteService interface {
	CreateNote(ctx context.Context, actor string, req CreatePriceNoteRequest) (PriceNoteResponse, error)
	GetNotes(ctx context.Context, product string, page, limit int) ([]PriceNoteResponse, int64, error)
}

// --- Implementation ---

type priceNoteService struct {
	noteRepo  repository.PriceNoteRepository
	auditRepo repository.AuditRepository
	txManager repository.TransactionManager
	publisher EventPublisher
}

// NewPriceNoteService wires the note service; publisher may be nil.
func NewPriceNoteService(
	noteRepo repository.PriceNoteRepository,
	auditRepo repository.AuditRepository,
	txManager repository.TransactionManager,
	publisher EventPublisher,
) PriceNoteService {
	return &priceNoteService{
		noteRepo:  noteRepo,
		auditRepo: auditRepo,
		txManager: txManager,
		publisher: publisher,
	}
}

var validNoteEvents = map[string]bool{
	model.NoteEventHarvest: true,
	model.NoteEventWeather: true,
	model.NoteEventDemand:  true,
	model.NoteEventSupply:  true,
	model.NoteEventOther:   true,
}

func (s *priceNoteService) CreateNote(ctx context.Context, actor string, req CreatePriceNoteRequest) (PriceNoteResponse, error) {
	date, err := time.Parse(time.DateOnly, strings.TrimSpace(req.Date))
	if err != nil {
		return PriceNoteResponse{}, fmt.Errorf("%w: date must be formatted as YYYY-MM-DD", ErrInvalidInput)
	}
	product := strings.TrimSpace(req.Product)
	if product == "" {
		return PriceNoteResponse{}, fmt.Errorf("%w: product is required", ErrInvalidInput)
	}
	text := strings.TrimSpace(req.Note)
	if text == "" {
		return PriceNoteResponse{}, fmt.Errorf("%w: note is required", ErrInvalidInput)
	}
	if utf8.RuneCountInString(text) > maxNoteLength {
		return PriceNoteResponse{}, fmt.Errorf("%w: note must be at most %d characters", ErrInvalidInput, maxNoteLength)
	}
	eventType := strings.ToUpper(strings.TrimSpace(req.EventType))
	if eventType == "" {
		eventType = model.NoteEventOther
	}
	if !validNoteEvents[eventType] {
		return PriceNoteResponse{}, fmt.Errorf("%w: event_type must be one of: HARVEST, WEATHER, DEMAND, SUPPLY, OTHER", ErrInvalidInput)
	}

	note := &model.PriceNote{
		Date:      date,
		Product:   product,
		Note:      text,
		EventType: eventType,
	}

	err = s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.noteRepo.Create(txCtx, note); err != nil {
			return fmt.Errorf("failed to create price note: %w", err)
		}

		details, _ := json.Marshal(map[string]interface{}{
			"date":       req.Date,
			"event_type": eventType,
		})
		entry := &model.AuditLog{
			Actor:      actor,
			Action:     model.ActionCreatePriceNote,
			EntityID:   note.ID.String(),
			EntityName: product,
			Details:    string(details),
		}
		if err := s.auditRepo.Log(txCtx, entry); err != nil {
			return fmt.Errorf("failed to write audit log: %w", err)
		}
		return nil
	})
	if err != nil {
		return PriceNoteResponse{}, err
	}

	res := toPriceNoteResponse(*note)
	if s.publisher != nil {
		if err := s.publisher.Publish(websocket.EventPriceNoteCreated, res); err != nil {
			log.Warn().Err(err).Str("note_id", res.ID).Msg("failed to publish price note event")
		}
	}
	return res, nil
}

func (s *priceNoteService) GetNotes(ctx context.Context, product string, page, limit int) ([]PriceNoteResponse, int64, error) {
	notes, total, err := s.noteRepo.List(ctx, strings.TrimSpace(product), pagination.Normalize(page, limit))
	if err != nil {
		return nil, 0, fmt.Errorf("failed to fetch price notes: %w", err)
	}

	res := make([]PriceNoteResponse, 0, len(notes))
	for _, n := range notes {
		res = append(res, toPriceNoteResponse(n))
	}
	return res, total, nil
}

// --- Response mappers ---

func toPriceNoteResponse(n model.PriceNote) PriceNoteResponse {
	return PriceNoteResponse{
		ID:        n.ID.String(),
		Date:      n.Date.Format(time.DateOnly),
		Product:   n.Product,
		Note:      n.Note,
		EventType: n.EventType,
		CreatedAt: n.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}
