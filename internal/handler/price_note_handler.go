package handler

import (
	"net/http"

	"agroledger/internal/service"
	"agroledger/pkg/pagination"
	"agroledger/pkg/response"

	"github.com/gin-gonic/gin"
)

// actorAPI marks audit entries written through the HTTP API.
const actorAPI = "api"

type PriceNoteHandler struct {
	noteService service.PriceNoteService
}

func NewPriceNoteHandler(noteService service.PriceNoteService) *PriceNoteHandler {
	return &PriceNoteHandler{noteService: noteService}
}

func (h *PriceNoteHandler) RegisterRoutes(router *gin.RouterGroup) {
	group := router.Group("/api/price-notes")
	{
		group.GET("", h.GetNotes)
		group.POST("", h.CreateNote)
	}
}

// CreateNote godoc
// @Summary      Add a price note
// @Description  Records a market note explaining a price movement and broadcasts it to live dashboards
// @Tags         PriceNotes
// @Accept       json
// @Produce      json
// @Param        request  body      service.CreatePriceNoteRequest  true  "Note payload"
// @Success      201      {object}  response.Response{data=service.PriceNoteResponse}
// @Failure      400      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Router       /api/price-notes [post]
func (h *PriceNoteHandler) CreateNote(c *gin.Context) {
	var req service.CreatePriceNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}

	res, err := h.noteService.CreateNote(c.Request.Context(), actorAPI, req)
	if err != nil {
		respondServiceError(c, err, "Failed to create price note")
		return
	}

	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, res))
}

// GetNotes godoc
// @Summary      List price notes
// @Description  Newest notes first, optionally for one product
// @Tags         PriceNotes
// @Produce      json
// @Param        product  query     string  false  "Product name (exact match)"
// @Param        page     query     int     false  "Page number (default 1)"
// @Param        limit    query     int     false  "Number of items per page (default 20)"
// @Success      200      {object}  response.Response{data=[]service.PriceNoteResponse}
// @Failure      500      {object}  response.Response
// @Router       /api/price-notes [get]
func (h *PriceNoteHandler) GetNotes(c *gin.Context) {
	p := pagination.Parse(c)

	notes, total, err := h.noteService.GetNotes(c.Request.Context(), c.Query("product"), p.Page, p.Limit)
	if err != nil {
		respondServiceError(c, err, "Failed to retrieve price notes")
		return
	}

	c.JSON(http.StatusOK, response.SuccessWithPagination(http.StatusOK, notes, p.Page, p.Limit, total))
}
