package models

import (
	"bytes"
	"encoding/json"
	"time"
)

// Coordinate is a WGS-84 latitude/longitude pair in decimal degrees.
type Coordinate struct {
	Latitude  float64 `json:"latitude" validate:"latitude"`
	Longitude float64 `json:"longitude" validate:"longitude"`
}

// Place is a point of interest found near an origin, with its geodesic distance from that origin in meters.
type Place struct {
	Name     string  `json:"name"`
	Lat      float64 `json:"lat"`
	Lon      float64 `json:"lon"`
	Distance float64 `json:"distance"`
}

// Location returns the coordinate of the place.
func (p Place) Location() Coordinate {
	return Coordinate{Latitude: p.Lat, Longitude: p.Lon}
}

// LabelStatus tells whether the places of a label could be fetched at all.
type LabelStatus string

const (
	StatusOK            LabelStatus = "ok"
	StatusUpstreamError LabelStatus = "upstream_error"
)

// LabelResult holds the ranked places found for one place label.
type LabelResult struct {
	Label  string
	Places []Place
	Status LabelStatus
}

// CategoryResult is the ordered list of label results for a category.
// It marshals to a JSON object keyed by label, keys in slice order.
type CategoryResult []LabelResult

func (r CategoryResult) MarshalJSON() ([]byte, error) {
	return marshalOrdered(len(r), func(i int) (string, any) {
		places := r[i].Places
		if places == nil {
			places = []Place{}
		}
		return r[i].Label, places
	})
}

// Statuses returns a view of r that marshals to a label -> status object.
func (r CategoryResult) Statuses() LabelStatuses {
	return LabelStatuses(r)
}

// LabelStatuses marshals a CategoryResult as a JSON object of label -> status.
type LabelStatuses []LabelResult

func (s LabelStatuses) MarshalJSON() ([]byte, error) {
	return marshalOrdered(len(s), func(i int) (string, any) {
		return s[i].Label, s[i].Status
	})
}

func marshalOrdered(n int, entry func(i int) (string, any)) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i := 0; i < n; i++ {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, value := entry(i)
		k, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(value)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// RenderedMap is a stored, self-contained map document.
type RenderedMap struct {
	ID        string     `json:"id"`
	Origin    Coordinate `json:"origin"`
	Document  []byte     `json:"-"`
	CreatedAt time.Time  `json:"created_at"`
}
