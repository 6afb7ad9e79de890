package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"placefinder-api/internal/models"
	"placefinder-api/internal/registry"
	"placefinder-api/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// Validation messages returned with HTTP 400.
const (
	MsgNoData             = "No data provided"
	MsgMissingParameters  = "Missing required parameters"
	MsgInvalidCoordinates = "Invalid latitude or longitude"
	MsgInvalidCategory    = "Invalid category selected"
)

// PlacesService interface for dependency injection
type PlacesService interface {
	Find(ctx context.Context, origin models.Coordinate, category registry.Category) (*service.FindResult, error)
}

// PlacesHandler handles place search requests
type PlacesHandler struct {
	service  PlacesService
	validate *validator.Validate
}

// FindResponse is the body of a successful search
type FindResponse struct {
	Places models.CategoryResult `json:"places" swaggertype:"object"`
	Status models.LabelStatuses  `json:"status" swaggertype:"object"`
	MapID  string                `json:"map_id"`
	MapURL string                `json:"map_url"`
}

// ErrorResponse is the body of every failed request
type ErrorResponse struct {
	Error string `json:"error"`
}

// NewPlacesHandler creates a new places handler
func NewPlacesHandler(svc PlacesService) *PlacesHandler {
	return &PlacesHandler{service: svc, validate: validator.New()}
}

// FindPlaces handles POST /find requests. A latitude or longitude of 0 is
// a valid coordinate; only absent, null or empty string values are missing.
//
//	@Description	latitude and longitude accept numbers or numeric strings; 0 is a valid value
//	@Summary	Find places near a coordinate
//	@Accept		json
//	@Produce	json
//	@Param		request	body		object{latitude=number,longitude=number,category=string}	true	"Search"
//	@Success	200		{object}	FindResponse
//	@Failure	400		{object}	ErrorResponse
//	@Failure	500		{object}	ErrorResponse
//	@Router		/find [post]
func (h *PlacesHandler) FindPlaces(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: MsgNoData})
		return
	}

	data, ok := decodeObject(body)
	if !ok || len(data) == 0 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: MsgNoData})
		return
	}

	rawLat, rawLon, rawCategory := data["latitude"], data["longitude"], data["category"]
	if missing(rawLat) || missing(rawLon) || missing(rawCategory) {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: MsgMissingParameters})
		return
	}

	lat, latOK := parseFloat(rawLat)
	lon, lonOK := parseFloat(rawLon)
	origin := models.Coordinate{Latitude: lat, Longitude: lon}
	if !latOK || !lonOK || h.validate.Struct(origin) != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: MsgInvalidCoordinates})
		return
	}

	name, _ := rawCategory.(string)
	category, found := registry.Lookup(name)
	if !found {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: MsgInvalidCategory})
		return
	}

	result, err := h.service.Find(c.Request.Context(), origin, category)
	if err != nil {
		c.Error(err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, FindResponse{
		Places: result.Places,
		Status: result.Places.Statuses(),
		MapID:  result.MapID,
		MapURL: "/map/" + result.MapID,
	})
}

// Categories handles GET /categories requests
//
//	@Summary	List searchable categories
//	@Produce	json
//	@Success	200	{array}	registry.Category
//	@Router		/categories [get]
func (h *PlacesHandler) Categories(c *gin.Context) {
	c.JSON(http.StatusOK, registry.Categories())
}

// Index handles GET / requests
func (h *PlacesHandler) Index(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", gin.H{"categories": registry.Names()})
}

func decodeObject(body []byte) (map[string]any, bool) {
	if len(bytes.TrimSpace(body)) == 0 {
		return nil, false
	}

	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var data map[string]any
	if err := dec.Decode(&data); err != nil {
		return nil, false
	}
	return data, true
}

func missing(v any) bool {
	switch val := v.(type) {
	case nil:
		return true
	case string:
		return val == ""
	}
	return false
}

func parseFloat(v any) (float64, bool) {
	var (
		f   float64
		err error
	)
	switch val := v.(type) {
	case json.Number:
		f, err = val.Float64()
	case string:
		f, err = strconv.ParseFloat(strings.TrimSpace(val), 64)
	default:
		return 0, false
	}
	return f, err == nil
}
