package booking

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Field names used in validation errors. Stable identifiers so clients
// can map failures back to inputs.
const (
	FieldCourtID       = "court_id"
	FieldClubID        = "club_id"
	FieldPlayerID      = "player_id"
	FieldStartTime     = "start_time"
	FieldEndTime       = "end_time"
	FieldPaymentMethod = "payment_method"
)

// FieldError identifies exactly which input field failed and why. A
// missing field and an invalid value are distinct kinds.
type FieldError struct {
	Field   string
	Reason  string
	missing bool
}

func NewFieldMissing(field string) *FieldError {
	return &FieldError{Field: field, Reason: "is required", missing: true}
}

func NewInvalidValue(field, reason string) *FieldError {
	return &FieldError{Field: field, Reason: reason}
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Reason)
}

func (e *FieldError) IsMissing() bool {
	return e.missing
}

// AsFieldError unwraps err to a *FieldError if one is in the chain.
func AsFieldError(err error) (*FieldError, bool) {
	var fe *FieldError
	if errors.As(err, &fe) {
		return fe, true
	}
	return nil, false
}

// Candidate is a booking request before admission. PaymentMethod is the
// raw tag as supplied; empty means the requester did not choose one yet.
type Candidate struct {
	CourtID       uuid.UUID
	ClubID        uuid.UUID
	PlayerID      uuid.UUID
	StartTime     time.Time
	EndTime       time.Time
	PaymentMethod string
}

// Validate checks required-field presence and basic semantic validity.
// It never touches storage; the caller supplies the current instant so
// the retroactive-booking rule stays deterministic under test.
func (c Candidate) Validate(now time.Time) error {
	if c.CourtID == uuid.Nil {
		return NewFieldMissing(FieldCourtID)
	}
	if c.ClubID == uuid.Nil {
		return NewFieldMissing(FieldClubID)
	}
	if c.PlayerID == uuid.Nil {
		return NewFieldMissing(FieldPlayerID)
	}
	if c.StartTime.IsZero() {
		return NewFieldMissing(FieldStartTime)
	}
	if c.EndTime.IsZero() {
		return NewFieldMissing(FieldEndTime)
	}
	if !c.EndTime.After(c.StartTime) {
		return NewInvalidValue(FieldEndTime, "must be after start_time")
	}
	if c.StartTime.Before(now) {
		return NewInvalidValue(FieldStartTime, "must not be in the past")
	}
	if c.PaymentMethod != "" && !PaymentMethod(c.PaymentMethod).IsValid() {
		return NewInvalidValue(FieldPaymentMethod, "must be one of in_person, online")
	}
	return nil
}

// Interval builds the candidate's half-open interval. Valid only after
// Validate has passed.
func (c Candidate) Interval() (Interval, error) {
	return NewInterval(c.StartTime, c.EndTime)
}
