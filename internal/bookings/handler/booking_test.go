package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"matchpoint/internal/bookings/service"
	apperrors "matchpoint/pkg/errors"
	httputil "matchpoint/pkg/http"
	"matchpoint/pkg/logger"
	"matchpoint/pkg/model"

	"github.com/julienschmidt/httprouter"
)

// Mock service for testing
type mockBookingService struct {
	stageCreateFunc func(ctx context.Context, req *model.CreateBookingRequest) (*service.Confirmation, error)
	stageJoinFunc   func(ctx context.Context, bookingID, playerID string) (*service.Confirmation, error)
	stageCancelFunc func(ctx context.Context, bookingID, playerID string) (*service.Confirmation, error)
	confirmFunc     func(ctx context.Context, token string) (*service.ConfirmResult, error)
	getByIDFunc     func(ctx context.Context, id string) (*model.Booking, error)
	myBookingsFunc  func(ctx context.Context, playerID string) ([]*model.Booking, error)
	openMatchesFunc func(ctx context.Context, playerID, skillFilter string) ([]*model.Booking, error)
}

func (m *mockBookingService) StageCreate(ctx context.Context, req *model.CreateBookingRequest) (*service.Confirmation, error) {
	if m.stageCreateFunc != nil {
		return m.stageCreateFunc(ctx, req)
	}
	return &service.Confirmation{Token: "t"}, nil
}

func (m *mockBookingService) StageJoin(ctx context.Context, bookingID, playerID string) (*service.Confirmation, error) {
	if m.stageJoinFunc != nil {
		return m.stageJoinFunc(ctx, bookingID, playerID)
	}
	return &service.Confirmation{Token: "t"}, nil
}

func (m *mockBookingService) StageCancel(ctx context.Context, bookingID, playerID string) (*service.Confirmation, error) {
	if m.stageCancelFunc != nil {
		return m.stageCancelFunc(ctx, bookingID, playerID)
	}
	return &service.Confirmation{Token: "t"}, nil
}

func (m *mockBookingService) Confirm(ctx context.Context, token string) (*service.ConfirmResult, error) {
	if m.confirmFunc != nil {
		return m.confirmFunc(ctx, token)
	}
	return &service.ConfirmResult{Outcome: service.OutcomeJoined}, nil
}

func (m *mockBookingService) GetByID(ctx context.Context, id string) (*model.Booking, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockBookingService) MyBookings(ctx context.Context, playerID string) ([]*model.Booking, error) {
	if m.myBookingsFunc != nil {
		return m.myBookingsFunc(ctx, playerID)
	}
	return []*model.Booking{}, nil
}

func (m *mockBookingService) OpenMatches(ctx context.Context, playerID, skillFilter string) ([]*model.Booking, error) {
	if m.openMatchesFunc != nil {
		return m.openMatchesFunc(ctx, playerID, skillFilter)
	}
	return []*model.Booking{}, nil
}

func (m *mockBookingService) Stop() {}

func testLogger() *logger.Logger {
	return logger.New(logger.Config{
		Level:   "error",
		Format:  logger.FormatJSON,
		Service: "test",
	})
}

func newTestRouter(mock *mockBookingService) *httprouter.Router {
	h := NewBookingHandler(mock, testLogger())
	router := httprouter.New()
	h.RegisterRoutes(router)
	return router
}

func TestStageCreate(t *testing.T) {
	var received *model.CreateBookingRequest
	mock := &mockBookingService{
		stageCreateFunc: func(_ context.Context, req *model.CreateBookingRequest) (*service.Confirmation, error) {
			received = req
			return &service.Confirmation{Token: "tok-1", Action: "create"}, nil
		},
	}
	router := newTestRouter(mock)

	body := `{"player_id":"p1","court_id":"c1","date":"2024-11-15","time":"18:00","match_type":"open","target_skill_level":"Advanced"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(body))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusAccepted {
		t.Fatalf("expected 202, got %d: %s", w.Code, w.Body.String())
	}
	if received == nil || received.PlayerID != "p1" || received.MatchType != model.MatchTypeOpen {
		t.Errorf("service received wrong request: %+v", received)
	}

	var resp struct {
		Data service.Confirmation `json:"data"`
	}
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Data.Token != "tok-1" {
		t.Errorf("expected confirmation token in response, got %+v", resp.Data)
	}
}

func TestStageCreate_InvalidBody(t *testing.T) {
	router := newTestRouter(&mockBookingService{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader("{not json"))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestStageCreate_ValidationErrorBubblesUp(t *testing.T) {
	mock := &mockBookingService{
		stageCreateFunc: func(context.Context, *model.CreateBookingRequest) (*service.Confirmation, error) {
			return nil, apperrors.InvalidInput("A court, date and time are required to book")
		},
	}
	router := newTestRouter(mock)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(`{"player_id":"p1"}`))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}

	var resp httputil.ErrorResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode error response: %v", err)
	}
	if resp.Code != apperrors.CodeInvalidInput {
		t.Errorf("expected code %s, got %s", apperrors.CodeInvalidInput, resp.Code)
	}
}

func TestStageJoin(t *testing.T) {
	var gotBooking, gotPlayer string
	mock := &mockBookingService{
		stageJoinFunc: func(_ context.Context, bookingID, playerID string) (*service.Confirmation, error) {
			gotBooking, gotPlayer = bookingID, playerID
			return &service.Confirmation{Token: "tok-2", Action: "join"}, nil
		},
	}
	router := newTestRouter(mock)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings/id/b1/join", strings.NewReader(`{"player_id":"p2"}`))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusAccepted {
		t.Fatalf("expected 202, got %d: %s", w.Code, w.Body.String())
	}
	if gotBooking != "b1" || gotPlayer != "p2" {
		t.Errorf("expected (b1, p2), got (%s, %s)", gotBooking, gotPlayer)
	}
}

func TestStageJoin_ServiceErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"self join", apperrors.Forbidden("You cannot join your own open match"), http.StatusForbidden},
		{"already taken", apperrors.Conflict("This match is no longer open to join"), http.StatusConflict},
		{"not found", apperrors.NotFoundWithID("Booking", "b1"), http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := &mockBookingService{
				stageJoinFunc: func(context.Context, string, string) (*service.Confirmation, error) {
					return nil, tt.err
				},
			}
			router := newTestRouter(mock)

			req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings/id/b1/join", strings.NewReader(`{"player_id":"p2"}`))
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("expected %d, got %d", tt.wantStatus, w.Code)
			}
		})
	}
}

func TestStageCancel(t *testing.T) {
	var gotBooking, gotPlayer string
	mock := &mockBookingService{
		stageCancelFunc: func(_ context.Context, bookingID, playerID string) (*service.Confirmation, error) {
			gotBooking, gotPlayer = bookingID, playerID
			return &service.Confirmation{Token: "tok-3", Action: "cancel"}, nil
		},
	}
	router := newTestRouter(mock)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings/id/b9/cancel", strings.NewReader(`{"player_id":"p1"}`))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusAccepted {
		t.Fatalf("expected 202, got %d", w.Code)
	}
	if gotBooking != "b9" || gotPlayer != "p1" {
		t.Errorf("expected (b9, p1), got (%s, %s)", gotBooking, gotPlayer)
	}
}

func TestConfirm(t *testing.T) {
	tests := []struct {
		name       string
		result     *service.ConfirmResult
		err        error
		wantStatus int
	}{
		{
			name:       "created booking returns 201",
			result:     &service.ConfirmResult{Outcome: service.OutcomeCreated, Booking: &model.Booking{ID: "b1"}},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "joined booking returns 200",
			result:     &service.ConfirmResult{Outcome: service.OutcomeJoined, Booking: &model.Booking{ID: "b1"}},
			wantStatus: http.StatusOK,
		},
		{
			name:       "cancelled booking returns 200",
			result:     &service.ConfirmResult{Outcome: service.OutcomeCancelled},
			wantStatus: http.StatusOK,
		},
		{
			name:       "expired token returns 410",
			err:        apperrors.Gone("Confirmation is unknown, expired or already used"),
			wantStatus: http.StatusGone,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotToken string
			mock := &mockBookingService{
				confirmFunc: func(_ context.Context, token string) (*service.ConfirmResult, error) {
					gotToken = token
					return tt.result, tt.err
				},
			}
			router := newTestRouter(mock)

			req := httptest.NewRequest(http.MethodPost, "/api/v1/confirmations/tok-9", nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("expected %d, got %d: %s", tt.wantStatus, w.Code, w.Body.String())
			}
			if gotToken != "tok-9" {
				t.Errorf("expected token tok-9, got %s", gotToken)
			}
		})
	}
}

func TestGetByID_NotFound(t *testing.T) {
	mock := &mockBookingService{
		getByIDFunc: func(_ context.Context, id string) (*model.Booking, error) {
			return nil, apperrors.NotFoundWithID("Booking", id)
		},
	}
	router := newTestRouter(mock)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/bookings/id/missing", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
}

func TestMyBookings(t *testing.T) {
	mock := &mockBookingService{
		myBookingsFunc: func(_ context.Context, playerID string) ([]*model.Booking, error) {
			if playerID != "p1" {
				t.Errorf("expected player p1, got %s", playerID)
			}
			return []*model.Booking{{ID: "b1", HostID: "p1"}}, nil
		},
	}
	router := newTestRouter(mock)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/bookings/mine?player_id=p1", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var resp struct {
		Data []*model.Booking `json:"data"`
	}
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(resp.Data) != 1 || resp.Data[0].ID != "b1" {
		t.Errorf("unexpected payload: %+v", resp.Data)
	}
}

func TestMyBookings_MissingPlayerID(t *testing.T) {
	router := newTestRouter(&mockBookingService{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/bookings/mine", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestOpenMatches_PassesSkillFilter(t *testing.T) {
	var gotPlayer, gotSkill string
	mock := &mockBookingService{
		openMatchesFunc: func(_ context.Context, playerID, skillFilter string) ([]*model.Booking, error) {
			gotPlayer, gotSkill = playerID, skillFilter
			return []*model.Booking{}, nil
		},
	}
	router := newTestRouter(mock)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/matches/open?player_id=p1&skill=Advanced", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if gotPlayer != "p1" || gotSkill != "Advanced" {
		t.Errorf("expected (p1, Advanced), got (%s, %s)", gotPlayer, gotSkill)
	}
}

func TestOpenMatches_MissingPlayerID(t *testing.T) {
	router := newTestRouter(&mockBookingService{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/matches/open?skill=All", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}
