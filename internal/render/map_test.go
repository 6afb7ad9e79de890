package render

import (
	"strings"
	"testing"

	"placefinder-api/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var origin = models.Coordinate{Latitude: 12.97, Longitude: 77.59}

func TestRender(t *testing.T) {
	result := models.CategoryResult{
		{
			Label:  "Pharmacy",
			Status: models.StatusOK,
			Places: []models.Place{
				{Name: "Pharmacy One", Lat: 12.971, Lon: 77.591, Distance: 154.954},
			},
		},
		{
			Label:  "Library",
			Status: models.StatusOK,
			Places: []models.Place{
				{Name: "Books", Lat: 12.98, Lon: 77.60, Distance: 1549.527},
			},
		},
		{Label: "Hospital", Status: models.StatusUpstreamError},
	}

	doc, err := Render(origin, result)
	require.NoError(t, err)
	html := string(doc)

	assert.True(t, strings.HasPrefix(html, "<!DOCTYPE html>"))
	assert.Contains(t, html, "leaflet.js")
	assert.Contains(t, html, `"popup":"Your Location"`)
	assert.Contains(t, html, `"icon":"star"`)
	assert.Contains(t, html, `"color":"red"`)

	assert.Contains(t, html, `"popup":"Pharmacy One - 154.95 meters away"`)
	assert.Contains(t, html, `"icon":"plus-square"`)
	assert.Contains(t, html, `"color":"lightgreen"`)

	assert.Contains(t, html, `"popup":"Books - 1549.53 meters away"`)
	assert.Contains(t, html, `"icon":"info-sign"`)
	assert.Contains(t, html, `"color":"gray"`)

	assert.Equal(t, 2, strings.Count(html, `"popup":`)-1)
}

func TestRender_Empty(t *testing.T) {
	doc, err := Render(origin, nil)
	require.NoError(t, err)

	assert.Contains(t, string(doc), `"popup":"Your Location"`)
	assert.Contains(t, string(doc), "[]")
}

func TestRender_EscapesNames(t *testing.T) {
	result := models.CategoryResult{{
		Label:  "Restaurant",
		Status: models.StatusOK,
		Places: []models.Place{{Name: `</script><script>alert(1)</script>`, Lat: 12.98, Lon: 77.60, Distance: 10}},
	}}

	doc, err := Render(origin, result)
	require.NoError(t, err)

	assert.NotContains(t, string(doc), "<script>alert(1)")
}

func TestPopup(t *testing.T) {
	assert.Equal(t, "Bank - 0.00 meters away", Popup(models.Place{Name: "Bank"}))
	assert.Equal(t, "Bank - 1234.57 meters away", Popup(models.Place{Name: "Bank", Distance: 1234.5678}))
}
