package handler

import (
	"net/http"

	"agroledger/internal/service"
	"agroledger/pkg/pagination"
	"agroledger/pkg/response"

	"github.com/gin-gonic/gin"
)

type AuditHandler struct {
	auditService service.AuditService
}

func NewAuditHandler(auditService service.AuditService) *AuditHandler {
	return &AuditHandler{auditService: auditService}
}

func (h *AuditHandler) RegisterRoutes(router *gin.RouterGroup) {
	group := router.Group("/api/audit-logs")
	{
		group.GET("", h.GetAuditLogs)
	}
}

// GetAuditLogs returns one page of the write history, newest first
// @Summary      Get audit logs
// @Description  Retrieves the history of price notes and trip imports
// @Tags         audit
// @Produce      json
// @Param        actor   query     string  false  "Only entries written by this actor (api, pricectl)"
// @Param        action  query     string  false  "Only entries of this action (CREATE_PRICE_NOTE, IMPORT_TRIPS)"
// @Param        page    query     int     false  "Page number (default 1)"
// @Param        limit   query     int     false  "Number of items per page (default 20)"
// @Success      200     {object}  response.Response{data=[]service.AuditLogResponse}
// @Failure      400     {object}  response.Response
// @Failure      500     {object}  response.Response
// @Router       /api/audit-logs [get]
func (h *AuditHandler) GetAuditLogs(c *gin.Context) {
	p := pagination.Parse(c)

	logs, total, err := h.auditService.GetAuditLogs(c.Request.Context(), service.AuditLogQuery{
		Actor:  c.Query("actor"),
		Action: c.Query("action"),
		Page:   p.Page,
		Limit:  p.Limit,
	})
	if err != nil {
		respondServiceError(c, err, "Failed to retrieve audit logs")
		return
	}

	c.JSON(http.StatusOK, response.SuccessWithPagination(http.StatusOK, logs, p.Page, p.Limit, total))
}
