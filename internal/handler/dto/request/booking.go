package request

import (
	"time"

	"courtbook/internal/domain/booking"

	"github.com/google/uuid"
)

// CreateBookingRequest carries the raw booking attempt. Field presence is
// checked by the domain validator so missing court_id and missing club_id
// stay distinguishable in the response; binding tags would collapse them
// into one generic 400.
type CreateBookingRequest struct {
	CourtID       uuid.UUID `json:"court_id"`
	ClubID        uuid.UUID `json:"club_id"`
	StartTime     time.Time `json:"start_time"`
	EndTime       time.Time `json:"end_time"`
	PaymentMethod *string   `json:"payment_method,omitempty"`
}

func (r CreateBookingRequest) ToCandidate(playerID uuid.UUID) booking.Candidate {
	var method string
	if r.PaymentMethod != nil {
		method = *r.PaymentMethod
	}
	return booking.Candidate{
		CourtID:       r.CourtID,
		ClubID:        r.ClubID,
		PlayerID:      playerID,
		StartTime:     r.StartTime,
		EndTime:       r.EndTime,
		PaymentMethod: method,
	}
}

// QuoteBookingRequest prices a slot for the pay-online flow.
type QuoteBookingRequest struct {
	CourtID   uuid.UUID `json:"court_id"`
	ClubID    uuid.UUID `json:"club_id"`
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
}

func (r QuoteBookingRequest) ToCandidate(playerID uuid.UUID) booking.Candidate {
	return booking.Candidate{
		CourtID:   r.CourtID,
		ClubID:    r.ClubID,
		PlayerID:  playerID,
		StartTime: r.StartTime,
		EndTime:   r.EndTime,
	}
}

// ConfirmBookingRequest names a booking by its natural key from the
// owning club's side; the club id comes from the bearer token.
type ConfirmBookingRequest struct {
	CourtID   uuid.UUID `json:"court_id" binding:"required"`
	PlayerID  uuid.UUID `json:"player_id" binding:"required"`
	StartTime time.Time `json:"start_time" binding:"required"`
}

func (r ConfirmBookingRequest) ToKey(clubID uuid.UUID) booking.Key {
	return booking.Key{
		CourtID:   r.CourtID,
		ClubID:    clubID,
		PlayerID:  r.PlayerID,
		StartTime: r.StartTime.UTC(),
	}
}

// BookingKeyQuery identifies a booking by full natural key in query
// parameters, used by key-addressed GET and DELETE.
type BookingKeyQuery struct {
	CourtID   uuid.UUID `form:"court_id" binding:"required"`
	ClubID    uuid.UUID `form:"club_id" binding:"required"`
	PlayerID  uuid.UUID `form:"player_id" binding:"required"`
	StartTime time.Time `form:"start_time" binding:"required" time_format:"2006-01-02T15:04:05Z07:00"`
}

func (r BookingKeyQuery) ToKey() booking.Key {
	return booking.Key{
		CourtID:   r.CourtID,
		ClubID:    r.ClubID,
		PlayerID:  r.PlayerID,
		StartTime: r.StartTime.UTC(),
	}
}

// CalendarQuery bounds the availability window of one court.
type CalendarQuery struct {
	From time.Time `form:"from" binding:"required" time_format:"2006-01-02T15:04:05Z07:00"`
	To   time.Time `form:"to" binding:"required" time_format:"2006-01-02T15:04:05Z07:00"`
}
