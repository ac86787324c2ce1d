package handler

import (
	"errors"
	"net/http"

	"agroledger/internal/display"
	"agroledger/internal/service"
	"agroledger/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// requestLocale prefers an explicit ?lang= over the Accept-Language header.
func requestLocale(c *gin.Context) display.Locale {
	if lang := c.Query("lang"); lang != "" {
		return display.MatchLocale(lang)
	}
	return display.MatchLocale(c.GetHeader("Accept-Language"))
}

// respondServiceError maps validation failures to 400 and anything else to 500.
func respondServiceError(c *gin.Context, err error, message string) {
	if errors.Is(err, service.ErrInvalidInput) {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}
	log.Error().Err(err).Str("path", c.FullPath()).Msg(message)
	c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, message+": "+err.Error()))
}
