package search

import (
	"errors"
	"net/http"
	"strings"

	searchsvc "github.com/angristan/spotify-wrapper/internal/app/services/search"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/codes"
)

func (h *SearchHandler) Search(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "SearchHandler.Search")
	defer span.End()

	qType := c.Param("type")
	if qType == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "type is required"})
		return
	}

	// *query keeps the leading slash
	query := strings.TrimPrefix(c.Param("query"), "/")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "query is required"})
		return
	}

	result, err := h.searchService.Search(ctx, query, strings.Split(qType, ","))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())

		switch {
		case errors.Is(err, searchsvc.ErrInvalidSearchType):
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid search type"})
		case errors.Is(err, searchsvc.ErrEmptyQuery):
			c.JSON(http.StatusBadRequest, gin.H{"error": "query is required"})
		case errors.Is(err, searchsvc.ErrSpotifyClient):
			logrus.WithError(err).Warn("Spotify search failed")
			c.JSON(http.StatusBadGateway, gin.H{"error": "spotify client error"})
		default:
			logrus.WithError(err).Error("Unexpected search error")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		}
		return
	}

	contentType := result.ContentType
	if contentType == "" {
		contentType = "application/json"
	}

	c.Data(result.StatusCode, contentType, result.Body)
}
