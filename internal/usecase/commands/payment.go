package commands

import (
	"context"
	"time"

	"courtbook/internal/domain/booking"
	"courtbook/internal/infra"
	"courtbook/internal/pkg/errs"
	"courtbook/internal/usecase/shared"

	"github.com/google/uuid"
)

// PaymentCompletedEvent is the metadata the payment collaborator echoes
// back from a checkout quote. It fully identifies the booked slot.
type PaymentCompletedEvent struct {
	CourtID   uuid.UUID
	ClubID    uuid.UUID
	PlayerID  uuid.UUID
	StartTime time.Time
	EndTime   time.Time
}

func (e PaymentCompletedEvent) Key() booking.Key {
	return booking.Key{
		CourtID:   e.CourtID,
		ClubID:    e.ClubID,
		PlayerID:  e.PlayerID,
		StartTime: e.StartTime.UTC(),
	}
}

type PaymentCommands interface {
	// HandlePaymentCompleted records a paid booking as confirmed.
	// Admission (overlap) re-runs at delivery time. Safe under
	// at-least-once delivery: replays of the same event are absorbed and
	// exactly one confirmed booking results.
	HandlePaymentCompleted(ctx context.Context, evt PaymentCompletedEvent) error
}

type paymentUseCaseImpl struct {
	uow shared.UnitOfWork
}

func NewPaymentUseCase(uow shared.UnitOfWork) PaymentCommands {
	return &paymentUseCaseImpl{uow: uow}
}

func (u *paymentUseCaseImpl) HandlePaymentCompleted(ctx context.Context, evt PaymentCompletedEvent) error {
	slot, err := booking.NewInterval(evt.StartTime, evt.EndTime)
	if err != nil {
		return errs.Mark(err, ErrDomainValidation)
	}

	return u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		existing, err := tx.Bookings().FindByKey(ctx, tx.DB(), evt.Key())
		switch {
		case err == nil:
			// Replay, or the player booked the slot before paying.
			if existing.IsConfirmed() {
				return nil
			}
			return u.confirmExisting(ctx, tx, evt.Key())
		case infra.IsKind(err, infra.KindNotFound):
			return u.createConfirmed(ctx, tx, evt, slot)
		default:
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
	})
}

func (u *paymentUseCaseImpl) confirmExisting(ctx context.Context, tx shared.Tx, key booking.Key) error {
	if err := tx.Bookings().ConfirmByKey(ctx, tx.DB(), key); err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

func (u *paymentUseCaseImpl) createConfirmed(ctx context.Context, tx shared.Tx, evt PaymentCompletedEvent, slot booking.Interval) error {
	courtEntity, err := tx.Courts().LockByID(ctx, tx.DB(), evt.CourtID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrCourtNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if !courtEntity.OwnedBy(evt.ClubID) {
		return ErrCourtNotFound
	}

	occupied, err := tx.Bookings().IntervalsForCourt(ctx, tx.DB(), evt.CourtID)
	if err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if booking.OverlapsAny(occupied, slot) {
		return ErrBookingConflict
	}

	entity := booking.NewPaidBooking(evt.CourtID, evt.ClubID, evt.PlayerID, slot)
	if _, err := tx.Bookings().Create(ctx, tx.DB(), entity); err != nil {
		// A racing delivery of the same event hit the natural-key index
		// first; the booking exists, which is all this event asks for.
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil
		}
		return mapWriteErr(err)
	}
	return nil
}
