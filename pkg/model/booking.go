package model

import "time"

type Status string

const (
	StatusOpen      Status = "OPEN"
	StatusConfirmed Status = "CONFIRMED"
	StatusCancelled Status = "CANCELLED"
)

type SkillLevel string

const (
	SkillBeginner     SkillLevel = "Beginner"
	SkillIntermediate SkillLevel = "Intermediate"
	SkillAdvanced     SkillLevel = "Advanced"
	SkillPro          SkillLevel = "Pro"
	SkillAny          SkillLevel = "Any"
)

// OpponentLabelOpen is the display label of a booking that has no confirmed
// opponent yet.
const OpponentLabelOpen = "Open Match"

// OpponentLabelJoined is the fallback post-join label when the guest is not
// in the player directory.
const OpponentLabelJoined = "Opponent Joined"

type Booking struct {
	ID                     string       `json:"id"`
	CourtID                string       `json:"court_id"`
	HostID                 string       `json:"host_id"`
	GuestID                string       `json:"guest_id,omitempty"`
	Date                   string       `json:"date"`
	Time                   string       `json:"time"`
	RegisteredAt           time.Time    `json:"registered_at"`
	LocationAtRegistration *GeoLocation `json:"location_at_registration,omitempty"`
	OpponentLabel          string       `json:"opponent_label"`
	TargetSkillLevel       SkillLevel   `json:"target_skill_level,omitempty"`
	Status                 Status       `json:"status"`
}

// Involves reports whether the player is the booking's host or guest.
func (b *Booking) Involves(playerID string) bool {
	return playerID != "" && (b.HostID == playerID || b.GuestID == playerID)
}

// Clone returns a deep copy so store snapshots cannot be mutated by callers.
func (b *Booking) Clone() *Booking {
	clone := *b
	if b.LocationAtRegistration != nil {
		loc := *b.LocationAtRegistration
		clone.LocationAtRegistration = &loc
	}
	return &clone
}

type MatchType string

const (
	MatchTypeSpecific MatchType = "specific"
	MatchTypeOpen     MatchType = "open"
)

// CreateBookingRequest is the staging payload for a new booking.
type CreateBookingRequest struct {
	PlayerID         string       `json:"player_id" validate:"required"`
	CourtID          string       `json:"court_id" validate:"required"`
	Date             string       `json:"date" validate:"required,datetime=2006-01-02"`
	Time             string       `json:"time" validate:"required,datetime=15:04"`
	MatchType        MatchType    `json:"match_type" validate:"omitempty,oneof=specific open"`
	OpponentName     string       `json:"opponent_name" validate:"omitempty,max=100"`
	TargetSkillLevel SkillLevel   `json:"target_skill_level" validate:"omitempty,oneof=Beginner Intermediate Advanced Pro Any"`
	Location         *GeoLocation `json:"location,omitempty"`
}
