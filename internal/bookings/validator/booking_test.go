package validator

import (
	"testing"

	"matchpoint/pkg/logger"
	"matchpoint/pkg/model"
)

func testLogger() *logger.Logger {
	return logger.New(logger.Config{
		Level:   "error",
		Format:  logger.FormatJSON,
		Service: "test",
	})
}

func validRequest() *model.CreateBookingRequest {
	return &model.CreateBookingRequest{
		PlayerID:  "p1",
		CourtID:   "c1",
		Date:      "2024-11-15",
		Time:      "18:00",
		MatchType: model.MatchTypeSpecific,
	}
}

func TestValidateCreate(t *testing.T) {
	v := NewBookingValidator(testLogger())

	tests := []struct {
		name      string
		mutate    func(*model.CreateBookingRequest)
		wantError bool
	}{
		{
			name:      "valid specific opponent",
			mutate:    func(r *model.CreateBookingRequest) { r.OpponentName = "John Doe" },
			wantError: false,
		},
		{
			name: "valid open match with target skill",
			mutate: func(r *model.CreateBookingRequest) {
				r.MatchType = model.MatchTypeOpen
				r.TargetSkillLevel = model.SkillAdvanced
			},
			wantError: false,
		},
		{
			name:      "missing court",
			mutate:    func(r *model.CreateBookingRequest) { r.CourtID = "" },
			wantError: true,
		},
		{
			name:      "missing date",
			mutate:    func(r *model.CreateBookingRequest) { r.Date = "" },
			wantError: true,
		},
		{
			name:      "missing time",
			mutate:    func(r *model.CreateBookingRequest) { r.Time = "" },
			wantError: true,
		},
		{
			name:      "missing player",
			mutate:    func(r *model.CreateBookingRequest) { r.PlayerID = "" },
			wantError: true,
		},
		{
			name:      "malformed date",
			mutate:    func(r *model.CreateBookingRequest) { r.Date = "15/11/2024" },
			wantError: true,
		},
		{
			name:      "malformed time",
			mutate:    func(r *model.CreateBookingRequest) { r.Time = "6pm" },
			wantError: true,
		},
		{
			name: "unknown skill level",
			mutate: func(r *model.CreateBookingRequest) {
				r.MatchType = model.MatchTypeOpen
				r.TargetSkillLevel = "Expert"
			},
			wantError: true,
		},
		{
			name: "target skill on specific match",
			mutate: func(r *model.CreateBookingRequest) {
				r.TargetSkillLevel = model.SkillAdvanced
			},
			wantError: true,
		},
		{
			name:      "unknown match type",
			mutate:    func(r *model.CreateBookingRequest) { r.MatchType = "tournament" },
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(req)
			err := v.ValidateCreate(req)
			if (err != nil) != tt.wantError {
				t.Errorf("ValidateCreate() error = %v, wantError %v", err, tt.wantError)
			}
		})
	}
}

func TestMissingRequiredFields(t *testing.T) {
	v := NewBookingValidator(testLogger())

	req := validRequest()
	req.CourtID = ""
	err := v.ValidateCreate(req)
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !MissingRequiredFields(err) {
		t.Error("missing court should be reported as incomplete booking")
	}

	req = validRequest()
	req.Date = "bad-format"
	err = v.ValidateCreate(req)
	if err == nil {
		t.Fatal("expected validation error")
	}
	if MissingRequiredFields(err) {
		t.Error("format errors are not incomplete-booking errors")
	}
}
