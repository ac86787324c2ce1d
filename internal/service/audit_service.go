package service

import (
	"context"
	"fmt"
	"strings"

	"agroledger/internal/model"
	"agroledger/internal/repository"
	"agroledger/pkg/pagination"
)

type AuditLogResponse struct {
	ID         string `json:"id"`
	Actor      string `json:"actor"`
	Action     string `json:"action"`
	EntityID   string `json:"entity_id"`
	EntityName string `json:"entity_name"`
	Details    string `json:"details"`
	CreatedAt  string `json:"created_at"`
}

// AuditLogQuery selects one page of the audit trail. Actor and Action are
// optional exact-match filters.
type AuditLogQuery struct {
	Actor  string
	Action string
	Page   int
	Limit  int
}

type AuditService interface {
	GetAuditLogs(ctx context.Context, query AuditLogQuery) ([]AuditLogResponse, int64, error)
}

type auditService struct {
	auditRepo repository.AuditRepository
}

// NewAuditService creates a new AuditService instance
func NewAuditService(auditRepo repository.AuditRepository) AuditService {
	return &auditService{auditRepo: auditRepo}
}

var auditActions = map[string]bool{
	model.ActionCreatePriceNote: true,
	model.ActionImportTrips:     true,
}

// GetAuditLogs returns one page of audit entries, newest first
func (s *auditService) GetAuditLogs(ctx context.Context, query AuditLogQuery) ([]AuditLogResponse, int64, error) {
	filter := repository.AuditFilter{
		Actor:  strings.TrimSpace(query.Actor),
		Action: strings.ToUpper(strings.TrimSpace(query.Action)),
	}
	if filter.Action != "" && !auditActions[filter.Action] {
		return nil, 0, fmt.Errorf("%w: unknown audit action %q", ErrInvalidInput, query.Action)
	}

	logs, total, err := s.auditRepo.List(ctx, filter, pagination.Normalize(query.Page, query.Limit))
	if err != nil {
		return nil, 0, fmt.Errorf("failed to fetch audit logs: %w", err)
	}

	res := make([]AuditLogResponse, 0, len(logs))
	for _, l := range logs {
		actor := l.Actor
		if actor == "" {
			actor = "System"
		}
		res = append(res, AuditLogResponse{
			ID:         l.ID.String(),
			Actor:      actor,
			Action:     l.Action,
			EntityID:   l.EntityID,
			EntityName: l.EntityName,
			Details:    l.Details,
			CreatedAt:  l.CreatedAt.Format("2006-01-02 15:04:05"),
		})
	}

	return res, total, nil
}
