package model

// Player is read-only reference data supplied at startup.
type Player struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	SkillLevel SkillLevel `json:"skill_level"`
	Rating     float64    `json:"rating"`
	Avatar     string     `json:"avatar,omitempty"`
}
