package handler

import (
	"context"
	"errors"
	"net/http"

	"placefinder-api/internal/models"
	"placefinder-api/internal/repository"

	"github.com/gin-gonic/gin"
)

// MapReader interface for dependency injection
type MapReader interface {
	Get(ctx context.Context, id string) (*models.RenderedMap, error)
	Latest(ctx context.Context) (*models.RenderedMap, error)
}

// MapHandler serves rendered map documents
type MapHandler struct {
	maps MapReader
}

// NewMapHandler creates a new map handler
func NewMapHandler(maps MapReader) *MapHandler {
	return &MapHandler{maps: maps}
}

// ShowMap handles GET /map/:id requests
//
//	@Summary	Rendered map of a search
//	@Produce	html
//	@Param		id	path	string	true	"Map id returned by /find"
//	@Success	200
//	@Failure	404	{object}	ErrorResponse
//	@Router		/map/{id} [get]
func (h *MapHandler) ShowMap(c *gin.Context) {
	m, err := h.maps.Get(c.Request.Context(), c.Param("id"))
	h.write(c, m, err)
}

// ShowLatestMap handles GET /map requests
//
//	@Summary	Most recently rendered map
//	@Produce	html
//	@Success	200
//	@Failure	404	{object}	ErrorResponse
//	@Router		/map [get]
func (h *MapHandler) ShowLatestMap(c *gin.Context) {
	m, err := h.maps.Latest(c.Request.Context())
	h.write(c, m, err)
}

func (h *MapHandler) write(c *gin.Context, m *models.RenderedMap, err error) {
	if errors.Is(err, repository.ErrMapNotFound) {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "map not found"})
		return
	}
	if err != nil {
		c.Error(err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", m.Document)
}
