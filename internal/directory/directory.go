// Package directory holds the read-only Court and Player reference data the
// booking core consumes for display and derivation. The data is loaded once
// at startup and never mutated.
package directory

import (
	"encoding/json"
	"fmt"
	"os"

	"matchpoint/pkg/model"
)

type Directory struct {
	courts  []model.Court
	players []model.Player

	courtsByID  map[string]model.Court
	playersByID map[string]model.Player
}

func New(courts []model.Court, players []model.Player) *Directory {
	d := &Directory{
		courts:      courts,
		players:     players,
		courtsByID:  make(map[string]model.Court, len(courts)),
		playersByID: make(map[string]model.Player, len(players)),
	}
	for _, c := range courts {
		d.courtsByID[c.ID] = c
	}
	for _, p := range players {
		d.playersByID[p.ID] = p
	}
	return d
}

type fileFormat struct {
	Courts  []model.Court  `json:"courts"`
	Players []model.Player `json:"players"`
}

// NewFromFile loads reference data from a JSON file with top-level "courts"
// and "players" arrays.
func NewFromFile(path string) (*Directory, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory file: %w", err)
	}

	var parsed fileFormat
	if err := json.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse directory file: %w", err)
	}

	return New(parsed.Courts, parsed.Players), nil
}

// NewWithDefaults returns the built-in Singapore seed data used when no
// directory file is configured.
func NewWithDefaults() *Directory {
	courts := []model.Court{
		{ID: "c1", Name: "Kallang Squash Centre", Address: "8 Stadium Blvd, Singapore", Location: model.GeoLocation{Latitude: 1.3069, Longitude: 103.8760}},
		{ID: "c2", Name: "Burghley Squash Centre", Address: "43 Burghley Dr, Singapore", Location: model.GeoLocation{Latitude: 1.3605, Longitude: 103.8643}},
		{ID: "c3", Name: "Yio Chu Kang Squash Centre", Address: "200 Ang Mo Kio Ave 9, Singapore", Location: model.GeoLocation{Latitude: 1.3820, Longitude: 103.8450}},
	}
	players := []model.Player{
		{ID: "p1", Name: "Alex Johnson", SkillLevel: model.SkillAdvanced, Rating: 4.5},
		{ID: "p2", Name: "Sam Smith", SkillLevel: model.SkillIntermediate, Rating: 3.2},
		{ID: "p3", Name: "Jordan Lee", SkillLevel: model.SkillPro, Rating: 4.9},
	}
	return New(courts, players)
}

// Courts returns all courts in declaration order.
func (d *Directory) Courts() []model.Court {
	out := make([]model.Court, len(d.courts))
	copy(out, d.courts)
	return out
}

// Players returns all players in declaration order.
func (d *Directory) Players() []model.Player {
	out := make([]model.Player, len(d.players))
	copy(out, d.players)
	return out
}

func (d *Directory) Court(id string) (model.Court, bool) {
	c, ok := d.courtsByID[id]
	return c, ok
}

func (d *Directory) Player(id string) (model.Player, bool) {
	p, ok := d.playersByID[id]
	return p, ok
}
