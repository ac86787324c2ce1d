package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"agroledger/internal/model"
	"agroledger/internal/websocket"
	"agroledger/pkg/pagination"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestPriceNoteService_CreateNote(t *testing.T) {
	noteRepo := new(mockPriceNoteRepo)
	auditRepo := new(mockAuditRepo)
	publisher := new(mockPublisher)
	tx := &inlineTx{}

	noteID := uuid.New()
	noteRepo.On("Create", mock.Anything, mock.MatchedBy(func(n *model.PriceNote) bool {
		return n.Product == banana && n.EventType == model.NoteEventWeather && n.Note == "Heavy rain in the valley"
	})).Run(func(args mock.Arguments) {
		n := args.Get(1).(*model.PriceNote)
		n.ID = noteID
		n.CreatedAt = time.Date(2025, time.March, 4, 8, 30, 0, 0, time.UTC)
	}).Return(nil).Once()
	auditRepo.On("Log", mock.Anything, mock.MatchedBy(func(e *model.AuditLog) bool {
		return e.Action == model.ActionCreatePriceNote && e.EntityID == noteID.String() && e.Actor == "api"
	})).Return(nil).Once()
	publisher.On("Publish", websocket.EventPriceNoteCreated, mock.AnythingOfType("service.PriceNoteResponse")).Return(nil).Once()

	svc := NewPriceNoteService(noteRepo, auditRepo, tx, publisher)
	res, err := svc.CreateNote(context.Background(), "api", CreatePriceNoteRequest{
		Date:      "2025-03-03",
		Product:   " " + banana,
		Note:      "Heavy rain in the valley",
		EventType: "weather",
	})
	require.NoError(t, err)

	assert.Equal(t, noteID.String(), res.ID)
	assert.Equal(t, "2025-03-03", res.Date)
	assert.Equal(t, banana, res.Product)
	assert.Equal(t, model.NoteEventWeather, res.EventType)
	assert.Equal(t, "2025-03-04 08:30:00", res.CreatedAt)
	assert.Equal(t, 1, tx.calls)
	noteRepo.AssertExpectations(t)
	auditRepo.AssertExpectations(t)
	publisher.AssertExpectations(t)
}

func TestPriceNoteService_DefaultsEventTypeAndToleratesNilPublisher(t *testing.T) {
	noteRepo := new(mockPriceNoteRepo)
	auditRepo := new(mockAuditRepo)
	noteRepo.On("Create", mock.Anything, mock.MatchedBy(func(n *model.PriceNote) bool {
		return n.EventType == model.NoteEventOther
	})).Return(nil).Once()
	auditRepo.On("Log", mock.Anything, mock.Anything).Return(nil).Once()

	svc := NewPriceNoteService(noteRepo, auditRepo, &inlineTx{}, nil)
	res, err := svc.CreateNote(context.Background(), "", CreatePriceNoteRequest{
		Date: "2025-03-03", Product: banana, Note: "Quiet market",
	})
	require.NoError(t, err)
	assert.Equal(t, model.NoteEventOther, res.EventType)
}

func TestPriceNoteService_Validation(t *testing.T) {
	valid := CreatePriceNoteRequest{Date: "2025-03-03", Product: banana, Note: "ok"}

	tests := []struct {
		name   string
		mutate func(r *CreatePriceNoteRequest)
		want   string
	}{
		{"bad date", func(r *CreatePriceNoteRequest) { r.Date = "03/03/2025" }, "date"},
		{"missing product", func(r *CreatePriceNoteRequest) { r.Product = "  " }, "product"},
		{"empty note", func(r *CreatePriceNoteRequest) { r.Note = "\n" }, "note"},
		{"note too long", func(r *CreatePriceNoteRequest) { r.Note = strings.Repeat("a", 2001) }, "2000"},
		{"unknown event", func(r *CreatePriceNoteRequest) { r.EventType = "STRIKE" }, "event_type"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			noteRepo := new(mockPriceNoteRepo)
			tx := &inlineTx{}
			svc := NewPriceNoteService(noteRepo, new(mockAuditRepo), tx, nil)

			req := valid
			tt.mutate(&req)
			_, err := svc.CreateNote(context.Background(), "api", req)

			require.ErrorIs(t, err, ErrInvalidInput)
			assert.Contains(t, err.Error(), tt.want)
			assert.Zero(t, tx.calls)
			noteRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestPriceNoteService_NoteAtLimitIsAccepted(t *testing.T) {
	noteRepo := new(mockPriceNoteRepo)
	auditRepo := new(mockAuditRepo)
	noteRepo.On("Create", mock.Anything, mock.Anything).Return(nil)
	auditRepo.On("Log", mock.Anything, mock.Anything).Return(nil)

	svc := NewPriceNoteService(noteRepo, auditRepo, &inlineTx{}, nil)
	_, err := svc.CreateNote(context.Background(), "api", CreatePriceNoteRequest{
		Date: "2025-03-03", Product: banana, Note: strings.Repeat("ñ", 2000),
	})
	assert.NoError(t, err)
}

func TestPriceNoteService_AuditFailureSkipsBroadcast(t *testing.T) {
	noteRepo := new(mockPriceNoteRepo)
	auditRepo := new(mockAuditRepo)
	publisher := new(mockPublisher)
	noteRepo.On("Create", mock.Anything, mock.Anything).Return(nil)
	auditRepo.On("Log", mock.Anything, mock.Anything).Return(errors.New("disk full"))

	svc := NewPriceNoteService(noteRepo, auditRepo, &inlineTx{}, publisher)
	_, err := svc.CreateNote(context.Background(), "api", CreatePriceNoteRequest{
		Date: "2025-03-03", Product: banana, Note: "Harvest started",
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to write audit log")
	publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}

func TestPriceNoteService_GetNotes(t *testing.T) {
	noteRepo := new(mockPriceNoteRepo)
	notes := []model.PriceNote{
		{ID: uuid.New(), Date: time.Date(2025, time.March, 3, 0, 0, 0, 0, time.UTC), Product: banana, Note: "Rain", EventType: model.NoteEventWeather},
	}
	noteRepo.On("List", mock.Anything, banana, pagination.Params{Page: 1, Limit: 20, Offset: 0}).Return(notes, int64(1), nil).Once()

	svc := NewPriceNoteService(noteRepo, new(mockAuditRepo), &inlineTx{}, nil)
	res, total, err := svc.GetNotes(context.Background(), banana, 0, 0)
	require.NoError(t, err)

	assert.Equal(t, int64(1), total)
	require.Len(t, res, 1)
	assert.Equal(t, "2025-03-03", res[0].Date)
	assert.Equal(t, "Rain", res[0].Note)
	noteRepo.AssertExpectations(t)
}
