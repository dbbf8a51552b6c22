package errors

import "errors"

var (
	ErrNotFound = errors.New("booking not found")

	// ErrIncompleteBooking marks a creation attempt missing court, date or time.
	ErrIncompleteBooking = errors.New("booking is missing required fields")

	// ErrAlreadyTaken marks a join attempt on a booking that is no longer open.
	ErrAlreadyTaken = errors.New("booking is no longer open")

	// ErrSelfJoin marks a host attempting to join their own open booking.
	ErrSelfJoin = errors.New("host cannot join their own booking")

	// ErrNotParticipant marks a cancel or leave attempt by a player who is
	// neither host nor guest of the booking.
	ErrNotParticipant = errors.New("player is not part of this booking")

	// ErrConfirmationNotFound marks an unknown, expired or already used
	// confirmation token.
	ErrConfirmationNotFound = errors.New("confirmation not found or expired")
)
