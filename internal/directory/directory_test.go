package directory

import (
	"os"
	"path/filepath"
	"testing"

	"matchpoint/pkg/model"
)

func TestNewWithDefaults(t *testing.T) {
	d := NewWithDefaults()

	if got := len(d.Courts()); got != 3 {
		t.Errorf("expected 3 seed courts, got %d", got)
	}
	if got := len(d.Players()); got != 3 {
		t.Errorf("expected 3 seed players, got %d", got)
	}

	court, ok := d.Court("c1")
	if !ok {
		t.Fatal("expected court c1 in seed data")
	}
	if court.Name != "Kallang Squash Centre" {
		t.Errorf("unexpected court name %q", court.Name)
	}

	player, ok := d.Player("p3")
	if !ok {
		t.Fatal("expected player p3 in seed data")
	}
	if player.SkillLevel != model.SkillPro {
		t.Errorf("unexpected skill level %q", player.SkillLevel)
	}

	if _, ok := d.Court("unknown"); ok {
		t.Error("unknown court should not resolve")
	}
}

func TestNewFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "directory.json")
	content := `{
		"courts": [{"id": "x1", "name": "Test Court", "address": "1 Test St", "location": {"lat": 1.0, "lng": 2.0}}],
		"players": [{"id": "u1", "name": "Test Player", "skill_level": "Beginner", "rating": 2.5}]
	}`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	d, err := NewFromFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, ok := d.Court("x1"); !ok {
		t.Error("expected court x1 from file")
	}
	player, ok := d.Player("u1")
	if !ok {
		t.Fatal("expected player u1 from file")
	}
	if player.SkillLevel != model.SkillBeginner {
		t.Errorf("unexpected skill level %q", player.SkillLevel)
	}
}

func TestNewFromFile_Errors(t *testing.T) {
	if _, err := NewFromFile("/nonexistent/directory.json"); err == nil {
		t.Error("expected error for missing file")
	}

	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte("not json"), 0o600); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}
	if _, err := NewFromFile(path); err == nil {
		t.Error("expected error for malformed file")
	}
}
