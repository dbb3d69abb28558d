package booking

import (
	"time"

	"courtbook/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrAlreadyConfirmed = errs.New("booking is already confirmed")
	ErrInvalidStatus    = errs.New("invalid booking status")
)

// Key is the natural identity of a booking: clients match bookings by
// this composite, never by the surrogate row id.
type Key struct {
	CourtID   uuid.UUID
	ClubID    uuid.UUID
	PlayerID  uuid.UUID
	StartTime time.Time
}

type Booking struct {
	id            uuid.UUID
	courtID       uuid.UUID
	clubID        uuid.UUID
	playerID      uuid.UUID
	slot          Interval
	status        Status
	paymentMethod *PaymentMethod
	createdAt     time.Time
	updatedAt     time.Time
}

// NewBooking creates a pending booking, the initial state for a direct
// request. The slot blocks the court's calendar until confirmed or
// deleted.
func NewBooking(courtID, clubID, playerID uuid.UUID, slot Interval, method *PaymentMethod) *Booking {
	return &Booking{
		id:            uuid.New(),
		courtID:       courtID,
		clubID:        clubID,
		playerID:      playerID,
		slot:          slot,
		status:        StatusPending,
		paymentMethod: method,
	}
}

// NewPaidBooking creates a booking already confirmed, the shape produced
// by a verified payment-completion event. Pending is skipped entirely.
func NewPaidBooking(courtID, clubID, playerID uuid.UUID, slot Interval) *Booking {
	method := PaymentOnline
	return &Booking{
		id:            uuid.New(),
		courtID:       courtID,
		clubID:        clubID,
		playerID:      playerID,
		slot:          slot,
		status:        StatusConfirmed,
		paymentMethod: &method,
	}
}

func ReconstructBooking(
	id, courtID, clubID, playerID uuid.UUID,
	slot Interval,
	status Status,
	paymentMethod *PaymentMethod,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:            id,
		courtID:       courtID,
		clubID:        clubID,
		playerID:      playerID,
		slot:          slot,
		status:        status,
		paymentMethod: paymentMethod,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}

// Confirm transitions pending → confirmed. Confirming twice is refused
// so payment-triggered and club-triggered confirmation stay exactly-once.
func (b *Booking) Confirm() error {
	if b.status == StatusConfirmed {
		return ErrAlreadyConfirmed
	}
	b.status = StatusConfirmed
	return nil
}

func (b *Booking) IsConfirmed() bool {
	return b.status == StatusConfirmed
}

// DeletableBy implements the owner-or-requester deletion policy: the
// original requester and the owning club may both remove a booking.
func (b *Booking) DeletableBy(subjectID uuid.UUID) bool {
	return subjectID == b.playerID || subjectID == b.clubID
}

func (b *Booking) Key() Key {
	return Key{
		CourtID:   b.courtID,
		ClubID:    b.clubID,
		PlayerID:  b.playerID,
		StartTime: b.slot.Start(),
	}
}

func (b *Booking) ID() uuid.UUID                 { return b.id }
func (b *Booking) CourtID() uuid.UUID            { return b.courtID }
func (b *Booking) ClubID() uuid.UUID             { return b.clubID }
func (b *Booking) PlayerID() uuid.UUID           { return b.playerID }
func (b *Booking) Slot() Interval                { return b.slot }
func (b *Booking) Status() Status                { return b.status }
func (b *Booking) PaymentMethod() *PaymentMethod { return b.paymentMethod }
func (b *Booking) CreatedAt() time.Time          { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time          { return b.updatedAt }
