package model

// Court is read-only reference data supplied at startup.
type Court struct {
	ID       string      `json:"id"`
	Name     string      `json:"name"`
	Address  string      `json:"address"`
	Location GeoLocation `json:"location"`
}
