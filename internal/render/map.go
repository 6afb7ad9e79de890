package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"

	"placefinder-api/internal/models"
	"placefinder-api/internal/registry"
)

// DefaultZoom is the initial zoom level of a rendered map.
const DefaultZoom = 14

//go:embed templates/map.html
var templateFS embed.FS

var mapTemplate = template.Must(template.ParseFS(templateFS, "templates/map.html"))

var originIcon = registry.Icon{Name: "star", Color: "red"}

type marker struct {
	Lat   float64 `json:"lat"`
	Lon   float64 `json:"lon"`
	Popup string  `json:"popup"`
	Icon  string  `json:"icon"`
	Color string  `json:"color"`
}

type mapView struct {
	Origin  marker
	Markers []marker
	Zoom    int
}

// Render builds a self-contained Leaflet document centered on origin with one
// marker per place, styled by the icon registered for its label.
func Render(origin models.Coordinate, result models.CategoryResult) ([]byte, error) {
	view := mapView{
		Origin: marker{
			Lat:   origin.Latitude,
			Lon:   origin.Longitude,
			Popup: "Your Location",
			Icon:  originIcon.Name,
			Color: originIcon.Color,
		},
		Markers: []marker{},
		Zoom:    DefaultZoom,
	}

	for _, lr := range result {
		icon := registry.IconFor(lr.Label)
		for _, p := range lr.Places {
			view.Markers = append(view.Markers, marker{
				Lat:   p.Lat,
				Lon:   p.Lon,
				Popup: Popup(p),
				Icon:  icon.Name,
				Color: icon.Color,
			})
		}
	}

	var buf bytes.Buffer
	if err := mapTemplate.Execute(&buf, view); err != nil {
		return nil, fmt.Errorf("render: failed to execute map template: %w", err)
	}

	return buf.Bytes(), nil
}

// Popup is the marker label of a place.
func Popup(p models.Place) string {
	return fmt.Sprintf("%s - %.2f meters away", p.Name, p.Distance)
}
