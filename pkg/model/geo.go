package model

// GeoLocation is a WGS84 coordinate pair.
type GeoLocation struct {
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lng"`
}
