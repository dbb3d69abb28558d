package commands

import (
	"context"
	"errors"
	"time"

	"courtbook/internal/domain/booking"
	"courtbook/internal/domain/court"
	"courtbook/internal/infra"
	"courtbook/internal/pkg/clock"
	"courtbook/internal/pkg/errs"
	"courtbook/internal/usecase/queries"
	"courtbook/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrCourtNotFound           = errs.New("court not found")
	ErrBookingNotFound         = errs.New("booking not found")
	ErrBookingConflict         = errs.New("booking conflict")
	ErrDuplicateBooking        = errs.New("duplicate booking")
	ErrBookingAlreadyConfirmed = errs.New("booking already confirmed")
	ErrCourtNotPayable         = errs.New("court cannot be paid online")
	ErrDomainValidation        = errs.New("domain validation error")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

// BookingQuote is what the pay-online path hands to the payment
// collaborator: the amount plus the natural key and slot it must echo
// back in the completion event.
type BookingQuote struct {
	Key         booking.Key
	EndTime     time.Time
	AmountCents int64
}

type BookingCommands interface {
	// CreateBooking admits a booking request: validation, then a
	// transactional overlap check against every slot of the target court,
	// then insertion as pending. Conflicting requests are rejected with
	// no mutation.
	CreateBooking(ctx context.Context, cand booking.Candidate) (*queries.BookingView, error)
	// ConfirmBooking moves pending → confirmed on behalf of the owning
	// club. Bookings the caller does not own are reported as not found.
	ConfirmBooking(ctx context.Context, subjectID uuid.UUID, key booking.Key) error
	// DeleteBooking removes a booking in either state. Allowed to the
	// original requester and to the owning club.
	DeleteBooking(ctx context.Context, subjectID uuid.UUID, key booking.Key) error
	// QuoteBooking prices a prospective slot for online payment.
	QuoteBooking(ctx context.Context, cand booking.Candidate) (*BookingQuote, error)
	// SweepStalePending deletes pending bookings older than ttl.
	SweepStalePending(ctx context.Context, ttl time.Duration) (int64, error)
}

type bookingUseCaseImpl struct {
	uow            shared.UnitOfWork
	bookingQueries queries.BookingQueries
	courtQueries   queries.CourtQueries
	clock          clock.Clock
}

func NewBookingUseCase(
	uow shared.UnitOfWork,
	bookingQueries queries.BookingQueries,
	courtQueries queries.CourtQueries,
	clk clock.Clock,
) BookingCommands {
	return &bookingUseCaseImpl{
		uow:            uow,
		bookingQueries: bookingQueries,
		courtQueries:   courtQueries,
		clock:          clk,
	}
}

func (u *bookingUseCaseImpl) CreateBooking(ctx context.Context, cand booking.Candidate) (*queries.BookingView, error) {
	if err := cand.Validate(u.clock.Now()); err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}
	slot, err := cand.Interval()
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	var method *booking.PaymentMethod
	if cand.PaymentMethod != "" {
		m := booking.PaymentMethod(cand.PaymentMethod)
		method = &m
	}
	entity := booking.NewBooking(cand.CourtID, cand.ClubID, cand.PlayerID, slot, method)

	err = u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := u.admit(ctx, tx, cand.CourtID, cand.ClubID, slot); err != nil {
			return err
		}
		if _, err := tx.Bookings().Create(ctx, tx.DB(), entity); err != nil {
			return mapWriteErr(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Read-after-write: return the view the read side will serve
	view, err := u.bookingQueries.GetByKey(ctx, entity.Key())
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return view, nil
}

// admit serializes check-then-insert on the court row lock and runs the
// domain overlap scan. Pending and confirmed bookings both occupy the
// calendar.
func (u *bookingUseCaseImpl) admit(ctx context.Context, tx shared.Tx, courtID, clubID uuid.UUID, slot booking.Interval) error {
	courtEntity, err := tx.Courts().LockByID(ctx, tx.DB(), courtID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrCourtNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if !courtEntity.OwnedBy(clubID) {
		return ErrCourtNotFound
	}

	occupied, err := tx.Bookings().IntervalsForCourt(ctx, tx.DB(), courtID)
	if err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if booking.OverlapsAny(occupied, slot) {
		return ErrBookingConflict
	}
	return nil
}

func mapWriteErr(err error) error {
	switch {
	case infra.IsKind(err, infra.KindConflict):
		return ErrBookingConflict
	case infra.IsKind(err, infra.KindDuplicateKey):
		return ErrDuplicateBooking
	default:
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
}

func (u *bookingUseCaseImpl) ConfirmBooking(ctx context.Context, subjectID uuid.UUID, key booking.Key) error {
	return u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		entity, err := tx.Bookings().FindByKey(ctx, tx.DB(), key)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrBookingNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		courtEntity, err := tx.Courts().FindByID(ctx, tx.DB(), entity.CourtID())
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		// Non-owned bookings are indistinguishable from missing ones
		if !courtEntity.OwnedBy(subjectID) {
			return ErrBookingNotFound
		}

		if err := entity.Confirm(); err != nil {
			return errs.Mark(err, ErrBookingAlreadyConfirmed)
		}
		if err := tx.Bookings().ConfirmByKey(ctx, tx.DB(), key); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrBookingNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
}

func (u *bookingUseCaseImpl) DeleteBooking(ctx context.Context, subjectID uuid.UUID, key booking.Key) error {
	return u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		entity, err := tx.Bookings().FindByKey(ctx, tx.DB(), key)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrBookingNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if !entity.DeletableBy(subjectID) {
			return ErrBookingNotFound
		}

		if err := tx.Bookings().DeleteByKey(ctx, tx.DB(), key); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrBookingNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
}

func (u *bookingUseCaseImpl) QuoteBooking(ctx context.Context, cand booking.Candidate) (*BookingQuote, error) {
	if err := cand.Validate(u.clock.Now()); err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}
	slot, err := cand.Interval()
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	view, err := u.courtQueries.GetByID(ctx, cand.CourtID)
	if err != nil {
		if errors.Is(err, queries.ErrCourtNotFound) {
			return nil, ErrCourtNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if view.ClubID != cand.ClubID {
		return nil, ErrCourtNotFound
	}

	courtEntity, err := court.NewCourt(
		view.ID, view.ClubID, view.Name, court.Type(view.CourtType),
		view.Ground, view.HeightCm, view.Lights, view.PriceCentsPerHour,
	)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	amount, err := courtEntity.PriceFor(slot)
	if err != nil {
		return nil, errs.Mark(err, ErrCourtNotPayable)
	}

	return &BookingQuote{
		Key: booking.Key{
			CourtID:   cand.CourtID,
			ClubID:    cand.ClubID,
			PlayerID:  cand.PlayerID,
			StartTime: slot.Start(),
		},
		EndTime:     slot.End(),
		AmountCents: amount,
	}, nil
}

func (u *bookingUseCaseImpl) SweepStalePending(ctx context.Context, ttl time.Duration) (int64, error) {
	if ttl <= 0 {
		return 0, nil
	}
	cutoff := u.clock.Now().Add(-ttl)

	var removed int64
	err := u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		n, err := tx.Bookings().DeleteStalePending(ctx, tx.DB(), cutoff)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		removed = n
		return nil
	})
	return removed, err
}
