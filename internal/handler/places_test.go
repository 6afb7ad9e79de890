package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"placefinder-api/internal/models"
	"placefinder-api/internal/registry"
	"placefinder-api/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockPlacesService is a mock implementation of the PlacesService interface
type MockPlacesService struct {
	mock.Mock
}

func (m *MockPlacesService) Find(ctx context.Context, origin models.Coordinate, category registry.Category) (*service.FindResult, error) {
	args := m.Called(ctx, origin, category)
	result, _ := args.Get(0).(*service.FindResult)
	return result, args.Error(1)
}

func TestPlacesHandler_FindPlaces(t *testing.T) {
	gin.SetMode(gin.TestMode)

	gas, _ := registry.Lookup("Gas Stations")
	found := &service.FindResult{
		Places: models.CategoryResult{{
			Label:  "Petrol Bunk",
			Status: models.StatusOK,
			Places: []models.Place{{Name: "Fuel", Lat: 12.971, Lon: 77.591, Distance: 154.95}},
		}},
		MapID: "map-1",
	}

	tests := []struct {
		name           string
		body           string
		mockOrigin     *models.Coordinate
		mockResult     *service.FindResult
		mockError      error
		expectedStatus int
		expectedBody   interface{}
	}{
		{
			name:           "empty body",
			body:           "",
			expectedStatus: http.StatusBadRequest,
			expectedBody:   gin.H{"error": MsgNoData},
		},
		{
			name:           "empty object",
			body:           `{}`,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   gin.H{"error": MsgNoData},
		},
		{
			name:           "not an object",
			body:           `[1, 2]`,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   gin.H{"error": MsgNoData},
		},
		{
			name:           "malformed json",
			body:           `{"latitude":`,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   gin.H{"error": MsgNoData},
		},
		{
			name:           "missing longitude and category",
			body:           `{"latitude": 10}`,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   gin.H{"error": MsgMissingParameters},
		},
		{
			name:           "null latitude",
			body:           `{"latitude": null, "longitude": 1, "category": "Medical"}`,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   gin.H{"error": MsgMissingParameters},
		},
		{
			name:           "empty category",
			body:           `{"latitude": 1, "longitude": 1, "category": ""}`,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   gin.H{"error": MsgMissingParameters},
		},
		{
			name:           "non numeric latitude",
			body:           `{"latitude": "x", "longitude": 1, "category": "Medical"}`,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   gin.H{"error": MsgInvalidCoordinates},
		},
		{
			name:           "boolean longitude",
			body:           `{"latitude": 1, "longitude": true, "category": "Medical"}`,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   gin.H{"error": MsgInvalidCoordinates},
		},
		{
			name:           "latitude out of range",
			body:           `{"latitude": 91, "longitude": 1, "category": "Medical"}`,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   gin.H{"error": MsgInvalidCoordinates},
		},
		{
			name:           "longitude out of range",
			body:           `{"latitude": 1, "longitude": "-180.5", "category": "Medical"}`,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   gin.H{"error": MsgInvalidCoordinates},
		},
		{
			name:           "nan latitude",
			body:           `{"latitude": "NaN", "longitude": 1, "category": "Medical"}`,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   gin.H{"error": MsgInvalidCoordinates},
		},
		{
			name:           "unknown category",
			body:           `{"latitude": 1, "longitude": 1, "category": "Nonexistent"}`,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   gin.H{"error": MsgInvalidCategory},
		},
		{
			name:           "non string category",
			body:           `{"latitude": 1, "longitude": 1, "category": 5}`,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   gin.H{"error": MsgInvalidCategory},
		},
		{
			name:           "numeric strings are accepted",
			body:           `{"latitude": " 12.97 ", "longitude": "77.59", "category": "Gas Stations"}`,
			mockOrigin:     &models.Coordinate{Latitude: 12.97, Longitude: 77.59},
			mockResult:     found,
			expectedStatus: http.StatusOK,
			expectedBody: map[string]interface{}{
				"places": map[string]interface{}{
					"Petrol Bunk": []interface{}{
						map[string]interface{}{"name": "Fuel", "lat": 12.971, "lon": 77.591, "distance": 154.95},
					},
				},
				"status":  map[string]interface{}{"Petrol Bunk": "ok"},
				"map_id":  "map-1",
				"map_url": "/map/map-1",
			},
		},
		{
			name:           "zero coordinates are valid",
			body:           `{"latitude": 0, "longitude": 0, "category": "Gas Stations"}`,
			mockOrigin:     &models.Coordinate{},
			mockResult:     &service.FindResult{Places: models.CategoryResult{{Label: "Petrol Bunk", Status: models.StatusOK}}, MapID: "map-2"},
			expectedStatus: http.StatusOK,
			expectedBody: map[string]interface{}{
				"places":  map[string]interface{}{"Petrol Bunk": []interface{}{}},
				"status":  map[string]interface{}{"Petrol Bunk": "ok"},
				"map_id":  "map-2",
				"map_url": "/map/map-2",
			},
		},
		{
			name:           "service error",
			body:           `{"latitude": 12.97, "longitude": 77.59, "category": "Gas Stations"}`,
			mockOrigin:     &models.Coordinate{Latitude: 12.97, Longitude: 77.59},
			mockError:      assert.AnError,
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   gin.H{"error": assert.AnError.Error()},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Setup
			mockSvc := new(MockPlacesService)
			handler := NewPlacesHandler(mockSvc)

			if tt.mockOrigin != nil {
				mockSvc.On("Find", mock.Anything, *tt.mockOrigin, gas).Return(tt.mockResult, tt.mockError)
			}

			// Create request
			req := httptest.NewRequest(http.MethodPost, "/find", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			// Create Gin context
			c, _ := gin.CreateTestContext(w)
			c.Request = req

			// Execute
			handler.FindPlaces(c)

			// Assert
			assert.Equal(t, tt.expectedStatus, w.Code)

			var actualBody interface{}
			err := json.Unmarshal(w.Body.Bytes(), &actualBody)
			assert.NoError(t, err)

			expected, _ := json.Marshal(tt.expectedBody)
			var expectedBody interface{}
			assert.NoError(t, json.Unmarshal(expected, &expectedBody))
			assert.Equal(t, expectedBody, actualBody)

			mockSvc.AssertExpectations(t)
		})
	}
}

func TestPlacesHandler_Categories(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/categories", nil)

	NewPlacesHandler(new(MockPlacesService)).Categories(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var categories []registry.Category
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &categories))
	assert.Equal(t, registry.Categories(), categories)
}
