// Package matching derives player-facing booking lists from a store
// snapshot. All functions are pure: equal snapshots give equal results in
// equal order, and inputs are never mutated.
package matching

import "matchpoint/pkg/model"

// FilterAll disables skill filtering in OpenMatches.
const FilterAll = "All"

// MyBookings returns every non-cancelled booking the player participates in,
// as host or guest, preserving insertion order.
func MyBookings(snapshot []*model.Booking, playerID string) []*model.Booking {
	result := make([]*model.Booking, 0)
	for _, b := range snapshot {
		if b.Status == model.StatusCancelled {
			continue
		}
		if b.Involves(playerID) {
			result = append(result, b)
		}
	}
	return result
}

// OpenMatches returns open bookings joinable by the viewer: a host never
// sees their own listing, and a booking targeting Any remains visible under
// every concrete skill filter.
func OpenMatches(snapshot []*model.Booking, viewerID string, skillFilter string) []*model.Booking {
	result := make([]*model.Booking, 0)
	for _, b := range snapshot {
		if b.Status != model.StatusOpen {
			continue
		}
		if b.HostID == viewerID {
			continue
		}
		if !matchesFilter(b.TargetSkillLevel, skillFilter) {
			continue
		}
		result = append(result, b)
	}
	return result
}

func matchesFilter(target model.SkillLevel, filter string) bool {
	if filter == "" || filter == FilterAll {
		return true
	}
	return target == model.SkillAny || string(target) == filter
}
