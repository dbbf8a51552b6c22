package matching

import (
	"testing"

	"matchpoint/pkg/model"
)

func open(id, host string, target model.SkillLevel) *model.Booking {
	return &model.Booking{
		ID:               id,
		CourtID:          "c1",
		HostID:           host,
		Date:             "2024-11-15",
		Time:             "18:00",
		OpponentLabel:    model.OpponentLabelOpen,
		TargetSkillLevel: target,
		Status:           model.StatusOpen,
	}
}

func confirmed(id, host, guest string) *model.Booking {
	return &model.Booking{
		ID:            id,
		CourtID:       "c1",
		HostID:        host,
		GuestID:       guest,
		Date:          "2024-11-16",
		Time:          "10:00",
		OpponentLabel: model.OpponentLabelJoined,
		Status:        model.StatusConfirmed,
	}
}

func ids(bookings []*model.Booking) []string {
	out := make([]string, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, b.ID)
	}
	return out
}

func equalIDs(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestMyBookings(t *testing.T) {
	snapshot := []*model.Booking{
		open("b1", "me", model.SkillAny),
		confirmed("b2", "other", "me"),
		open("b3", "other", model.SkillAdvanced),
		confirmed("b4", "me", "someone"),
		{ID: "b5", HostID: "me", Status: model.StatusCancelled},
	}

	got := ids(MyBookings(snapshot, "me"))
	want := []string{"b1", "b2", "b4"}
	if !equalIDs(got, want) {
		t.Errorf("MyBookings = %v, want %v", got, want)
	}

	if got := MyBookings(snapshot, ""); len(got) != 0 {
		t.Errorf("empty identity should match nothing, got %v", ids(got))
	}
}

func TestOpenMatches_ExcludesOwnListings(t *testing.T) {
	snapshot := []*model.Booking{
		open("mine", "me", model.SkillAdvanced),
		open("theirs", "other", model.SkillAdvanced),
		confirmed("done", "other", "third"),
	}

	got := ids(OpenMatches(snapshot, "me", FilterAll))
	want := []string{"theirs"}
	if !equalIDs(got, want) {
		t.Errorf("OpenMatches = %v, want %v", got, want)
	}
}

func TestOpenMatches_SkillFilter(t *testing.T) {
	snapshot := []*model.Booking{
		open("beginner", "h1", model.SkillBeginner),
		open("intermediate", "h2", model.SkillIntermediate),
		open("advanced", "h3", model.SkillAdvanced),
		open("pro", "h4", model.SkillPro),
		open("any", "h5", model.SkillAny),
	}

	tests := []struct {
		filter string
		want   []string
	}{
		{FilterAll, []string{"beginner", "intermediate", "advanced", "pro", "any"}},
		{"Advanced", []string{"advanced", "any"}},
		{"Beginner", []string{"beginner", "any"}},
		{"Pro", []string{"pro", "any"}},
		{"", []string{"beginner", "intermediate", "advanced", "pro", "any"}},
	}

	for _, tt := range tests {
		t.Run("filter="+tt.filter, func(t *testing.T) {
			got := ids(OpenMatches(snapshot, "viewer", tt.filter))
			if !equalIDs(got, tt.want) {
				t.Errorf("OpenMatches(%q) = %v, want %v", tt.filter, got, tt.want)
			}
		})
	}
}

func TestDerivationsAreStable(t *testing.T) {
	snapshot := []*model.Booking{
		open("b1", "h1", model.SkillAny),
		open("b2", "h2", model.SkillPro),
		confirmed("b3", "h1", "viewer"),
	}

	first := ids(OpenMatches(snapshot, "viewer", "Pro"))
	second := ids(OpenMatches(snapshot, "viewer", "Pro"))
	if !equalIDs(first, second) {
		t.Errorf("repeated derivation differs: %v vs %v", first, second)
	}

	mineFirst := ids(MyBookings(snapshot, "viewer"))
	mineSecond := ids(MyBookings(snapshot, "viewer"))
	if !equalIDs(mineFirst, mineSecond) {
		t.Errorf("repeated derivation differs: %v vs %v", mineFirst, mineSecond)
	}

	// Derivations must not mutate the snapshot.
	if snapshot[0].Status != model.StatusOpen || snapshot[2].GuestID != "viewer" {
		t.Error("derivation mutated the snapshot")
	}
}
