package service

import (
	"context"
	"errors"
	"time"

	bookingserrors "matchpoint/internal/bookings/errors"
	"matchpoint/internal/bookings/events"
	"matchpoint/internal/bookings/repository"
	"matchpoint/internal/bookings/validator"
	"matchpoint/internal/directory"
	"matchpoint/internal/geolocate"
	"matchpoint/internal/matching"
	"matchpoint/pkg/config"
	apperrors "matchpoint/pkg/errors"
	"matchpoint/pkg/model"

	"github.com/google/uuid"
)

// Confirmation is the receipt of a staged mutation. The caller reviews the
// summary and confirms the token to execute it.
type Confirmation struct {
	Token     string              `json:"confirmation_token"`
	Action    string              `json:"action"`
	ExpiresAt time.Time           `json:"expires_at"`
	Summary   ConfirmationSummary `json:"summary"`
}

type ConfirmationSummary struct {
	BookingID        string           `json:"booking_id,omitempty"`
	CourtID          string           `json:"court_id"`
	CourtName        string           `json:"court_name,omitempty"`
	Date             string           `json:"date"`
	Time             string           `json:"time"`
	MatchType        model.MatchType  `json:"match_type,omitempty"`
	OpponentLabel    string           `json:"opponent_label,omitempty"`
	TargetSkillLevel model.SkillLevel `json:"target_skill_level,omitempty"`
}

// ConfirmResult reports what a confirmed intent did. Booking is nil when the
// booking was removed (host cancellation).
type ConfirmResult struct {
	Outcome string         `json:"outcome"`
	Booking *model.Booking `json:"booking,omitempty"`
}

const (
	OutcomeCreated   = "created"
	OutcomeJoined    = "joined"
	OutcomeCancelled = "cancelled"
	OutcomeReopened  = "reopened"
)

type BookingService interface {
	StageCreate(ctx context.Context, req *model.CreateBookingRequest) (*Confirmation, error)
	StageJoin(ctx context.Context, bookingID, playerID string) (*Confirmation, error)
	StageCancel(ctx context.Context, bookingID, playerID string) (*Confirmation, error)
	Confirm(ctx context.Context, token string) (*ConfirmResult, error)

	GetByID(ctx context.Context, id string) (*model.Booking, error)
	MyBookings(ctx context.Context, playerID string) ([]*model.Booking, error)
	OpenMatches(ctx context.Context, playerID, skillFilter string) ([]*model.Booking, error)

	Stop()
}

type bookingService struct {
	repo      repository.BookingRepository
	validator *validator.BookingValidator
	dir       *directory.Directory
	locator   geolocate.Locator
	publisher events.Publisher
	intents   *intentStore
	cfg       *config.Config
}

func NewBookingService(
	repo repository.BookingRepository,
	bookingValidator *validator.BookingValidator,
	dir *directory.Directory,
	locator geolocate.Locator,
	publisher events.Publisher,
	cfg *config.Config,
) BookingService {
	return &bookingService{
		repo:      repo,
		validator: bookingValidator,
		dir:       dir,
		locator:   locator,
		publisher: publisher,
		intents:   newIntentStore(cfg.ConfirmationTTL),
		cfg:       cfg,
	}
}

func (s *bookingService) StageCreate(ctx context.Context, req *model.CreateBookingRequest) (*Confirmation, error) {
	if req.MatchType == "" {
		req.MatchType = model.MatchTypeSpecific
	}
	if req.MatchType == model.MatchTypeOpen && req.TargetSkillLevel == "" {
		req.TargetSkillLevel = model.SkillAny
	}

	if err := s.validator.ValidateCreate(req); err != nil {
		s.cfg.Log.Warn("Booking creation rejected", "error", err)
		if validator.MissingRequiredFields(err) {
			return nil, apperrors.InvalidInput("A court, date and time are required to book").
				WithDetails(map[string]any{"error": err.Error()})
		}
		return nil, apperrors.Validation("Booking validation failed", map[string]any{"error": err.Error()})
	}

	// Location is best effort and resolved here, at staging time, so the
	// confirmation step never waits on the geolocation collaborator.
	location := req.Location
	if location == nil {
		resolved := s.locator.Resolve(ctx)
		location = &resolved
	}

	staged := &intent{
		Action:   actionCreate,
		ActorID:  req.PlayerID,
		Create:   req,
		Location: location,
	}
	token := s.intents.Put(staged)

	confirmation := &Confirmation{
		Token:     token,
		Action:    string(actionCreate),
		ExpiresAt: staged.ExpiresAt,
		Summary: ConfirmationSummary{
			CourtID:          req.CourtID,
			CourtName:        s.courtName(req.CourtID),
			Date:             req.Date,
			Time:             req.Time,
			MatchType:        req.MatchType,
			OpponentLabel:    creationLabel(req),
			TargetSkillLevel: req.TargetSkillLevel,
		},
	}

	s.cfg.Log.Info("Booking creation staged",
		"player_id", req.PlayerID,
		"court_id", req.CourtID,
		"match_type", req.MatchType,
	)
	return confirmation, nil
}

func (s *bookingService) StageJoin(ctx context.Context, bookingID, playerID string) (*Confirmation, error) {
	if bookingID == "" || playerID == "" {
		return nil, apperrors.InvalidInput("Booking ID and player ID are required")
	}

	booking, err := s.repo.FindByID(ctx, bookingID)
	if err != nil {
		return nil, s.mapLookupError(err, bookingID)
	}

	// Early feedback only; the authoritative check reruns under the store
	// lock at confirmation time.
	if booking.HostID == playerID {
		return nil, mapDomainError(bookingserrors.ErrSelfJoin)
	}
	if booking.Status != model.StatusOpen {
		return nil, mapDomainError(bookingserrors.ErrAlreadyTaken)
	}

	staged := &intent{
		Action:    actionJoin,
		ActorID:   playerID,
		BookingID: bookingID,
	}
	token := s.intents.Put(staged)

	s.cfg.Log.Info("Join staged", "booking_id", bookingID, "player_id", playerID)
	return &Confirmation{
		Token:     token,
		Action:    string(actionJoin),
		ExpiresAt: staged.ExpiresAt,
		Summary:   s.summarize(booking),
	}, nil
}

func (s *bookingService) StageCancel(ctx context.Context, bookingID, playerID string) (*Confirmation, error) {
	if bookingID == "" || playerID == "" {
		return nil, apperrors.InvalidInput("Booking ID and player ID are required")
	}

	booking, err := s.repo.FindByID(ctx, bookingID)
	if err != nil {
		return nil, s.mapLookupError(err, bookingID)
	}

	if !booking.Involves(playerID) {
		return nil, mapDomainError(bookingserrors.ErrNotParticipant)
	}

	staged := &intent{
		Action:    actionCancel,
		ActorID:   playerID,
		BookingID: bookingID,
	}
	token := s.intents.Put(staged)

	s.cfg.Log.Info("Cancellation staged", "booking_id", bookingID, "player_id", playerID)
	return &Confirmation{
		Token:     token,
		Action:    string(actionCancel),
		ExpiresAt: staged.ExpiresAt,
		Summary:   s.summarize(booking),
	}, nil
}

func (s *bookingService) Confirm(ctx context.Context, token string) (*ConfirmResult, error) {
	if token == "" {
		return nil, apperrors.InvalidInput("Confirmation token is required")
	}

	staged, ok := s.intents.Take(token)
	if !ok {
		return nil, mapDomainError(bookingserrors.ErrConfirmationNotFound)
	}

	switch staged.Action {
	case actionCreate:
		return s.executeCreate(ctx, staged)
	case actionJoin:
		return s.executeJoin(ctx, staged)
	case actionCancel:
		return s.executeCancel(ctx, staged)
	default:
		return nil, apperrors.Internal("Unknown staged action", nil)
	}
}

func (s *bookingService) executeCreate(ctx context.Context, staged *intent) (*ConfirmResult, error) {
	req := staged.Create

	booking := &model.Booking{
		ID:                     uuid.New().String(),
		CourtID:                req.CourtID,
		HostID:                 req.PlayerID,
		Date:                   req.Date,
		Time:                   req.Time,
		RegisteredAt:           time.Now().UTC(),
		LocationAtRegistration: staged.Location,
		OpponentLabel:          creationLabel(req),
	}

	if req.MatchType == model.MatchTypeOpen {
		booking.Status = model.StatusOpen
		booking.TargetSkillLevel = req.TargetSkillLevel
	} else {
		// A named opponent confirms the slot immediately; OPEN is skipped.
		booking.Status = model.StatusConfirmed
	}

	if err := s.repo.Insert(ctx, booking); err != nil {
		s.cfg.Log.Error("Failed to create booking", "error", err)
		return nil, apperrors.Internal("Failed to create booking", err)
	}

	s.publisher.Publish(ctx, events.BookingCreated, booking)
	s.cfg.Log.Info("Booking created",
		"id", booking.ID,
		"host_id", booking.HostID,
		"court_id", booking.CourtID,
		"status", booking.Status,
	)
	return &ConfirmResult{Outcome: OutcomeCreated, Booking: booking}, nil
}

func (s *bookingService) executeJoin(ctx context.Context, staged *intent) (*ConfirmResult, error) {
	joined, err := s.repo.Update(ctx, staged.BookingID, func(b *model.Booking) error {
		if b.HostID == staged.ActorID {
			return bookingserrors.ErrSelfJoin
		}
		if b.Status != model.StatusOpen {
			return bookingserrors.ErrAlreadyTaken
		}
		b.GuestID = staged.ActorID
		b.Status = model.StatusConfirmed
		b.OpponentLabel = s.joinedLabel(staged.ActorID)
		return nil
	})
	if err != nil {
		if errors.Is(err, bookingserrors.ErrNotFound) {
			// Booking was cancelled between staging and confirmation.
			return nil, mapDomainError(bookingserrors.ErrAlreadyTaken)
		}
		return nil, mapDomainError(err)
	}

	s.publisher.Publish(ctx, events.OpponentJoined, joined)
	s.cfg.Log.Info("Opponent joined booking",
		"id", joined.ID,
		"host_id", joined.HostID,
		"guest_id", joined.GuestID,
	)
	return &ConfirmResult{Outcome: OutcomeJoined, Booking: joined}, nil
}

func (s *bookingService) executeCancel(ctx context.Context, staged *intent) (*ConfirmResult, error) {
	booking, err := s.repo.FindByID(ctx, staged.BookingID)
	if err != nil {
		return nil, s.mapLookupError(err, staged.BookingID)
	}

	// Guest leave reopens the slot so the host keeps their reservation;
	// host cancel removes the booking entirely.
	if booking.GuestID == staged.ActorID && booking.HostID != staged.ActorID {
		return s.reopenAfterLeave(ctx, staged)
	}
	return s.removeAsHost(ctx, staged)
}

func (s *bookingService) reopenAfterLeave(ctx context.Context, staged *intent) (*ConfirmResult, error) {
	reopened, err := s.repo.Update(ctx, staged.BookingID, func(b *model.Booking) error {
		if b.GuestID != staged.ActorID {
			return bookingserrors.ErrNotParticipant
		}
		b.GuestID = ""
		b.Status = model.StatusOpen
		b.OpponentLabel = model.OpponentLabelOpen
		if b.TargetSkillLevel == "" {
			b.TargetSkillLevel = model.SkillAny
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, bookingserrors.ErrNotFound) {
			return nil, apperrors.NotFoundWithID("Booking", staged.BookingID)
		}
		return nil, mapDomainError(err)
	}

	s.publisher.Publish(ctx, events.BookingReopened, reopened)
	s.cfg.Log.Info("Guest left, booking reopened",
		"id", reopened.ID,
		"host_id", reopened.HostID,
	)
	return &ConfirmResult{Outcome: OutcomeReopened, Booking: reopened}, nil
}

func (s *bookingService) removeAsHost(ctx context.Context, staged *intent) (*ConfirmResult, error) {
	var cancelled *model.Booking
	err := s.repo.Remove(ctx, staged.BookingID, func(b *model.Booking) error {
		if b.HostID != staged.ActorID {
			return bookingserrors.ErrNotParticipant
		}
		cancelled = b
		return nil
	})
	if err != nil {
		if errors.Is(err, bookingserrors.ErrNotFound) {
			return nil, apperrors.NotFoundWithID("Booking", staged.BookingID)
		}
		return nil, mapDomainError(err)
	}

	cancelled.Status = model.StatusCancelled
	s.publisher.Publish(ctx, events.BookingCancelled, cancelled)
	s.cfg.Log.Info("Booking cancelled by host",
		"id", cancelled.ID,
		"host_id", cancelled.HostID,
	)
	return &ConfirmResult{Outcome: OutcomeCancelled}, nil
}

func (s *bookingService) GetByID(ctx context.Context, id string) (*model.Booking, error) {
	if id == "" {
		return nil, apperrors.InvalidInput("Booking ID cannot be empty")
	}

	booking, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, s.mapLookupError(err, id)
	}
	return booking, nil
}

func (s *bookingService) MyBookings(ctx context.Context, playerID string) ([]*model.Booking, error) {
	if playerID == "" {
		return nil, apperrors.InvalidInput("Player ID is required")
	}
	return matching.MyBookings(s.repo.Snapshot(ctx), playerID), nil
}

func (s *bookingService) OpenMatches(ctx context.Context, playerID, skillFilter string) ([]*model.Booking, error) {
	if playerID == "" {
		return nil, apperrors.InvalidInput("Player ID is required")
	}
	if !validSkillFilter(skillFilter) {
		return nil, apperrors.InvalidInput("Unknown skill filter: " + skillFilter)
	}
	return matching.OpenMatches(s.repo.Snapshot(ctx), playerID, skillFilter), nil
}

func (s *bookingService) Stop() {
	s.intents.Stop()
}

// --- Helpers ---

func (s *bookingService) courtName(courtID string) string {
	if court, ok := s.dir.Court(courtID); ok {
		return court.Name
	}
	return ""
}

func (s *bookingService) joinedLabel(guestID string) string {
	if player, ok := s.dir.Player(guestID); ok {
		return player.Name
	}
	return model.OpponentLabelJoined
}

func (s *bookingService) summarize(b *model.Booking) ConfirmationSummary {
	return ConfirmationSummary{
		BookingID:        b.ID,
		CourtID:          b.CourtID,
		CourtName:        s.courtName(b.CourtID),
		Date:             b.Date,
		Time:             b.Time,
		OpponentLabel:    b.OpponentLabel,
		TargetSkillLevel: b.TargetSkillLevel,
	}
}

func (s *bookingService) mapLookupError(err error, id string) error {
	if errors.Is(err, bookingserrors.ErrNotFound) {
		return apperrors.NotFoundWithID("Booking", id)
	}
	return apperrors.Internal("Failed to retrieve booking", err)
}

func creationLabel(req *model.CreateBookingRequest) string {
	if req.MatchType == model.MatchTypeOpen || req.OpponentName == "" {
		return model.OpponentLabelOpen
	}
	return req.OpponentName
}

func validSkillFilter(filter string) bool {
	switch filter {
	case "", matching.FilterAll,
		string(model.SkillBeginner), string(model.SkillIntermediate),
		string(model.SkillAdvanced), string(model.SkillPro):
		return true
	}
	return false
}

func mapDomainError(err error) error {
	switch {
	case errors.Is(err, bookingserrors.ErrAlreadyTaken):
		return apperrors.Conflict("This match is no longer open to join")
	case errors.Is(err, bookingserrors.ErrSelfJoin):
		return apperrors.Forbidden("You cannot join your own open match")
	case errors.Is(err, bookingserrors.ErrNotParticipant):
		return apperrors.Forbidden("Only the host or the joined guest can change this booking")
	case errors.Is(err, bookingserrors.ErrConfirmationNotFound):
		return apperrors.Gone("Confirmation is unknown, expired or already used")
	default:
		return apperrors.Internal("Booking operation failed", err)
	}
}
