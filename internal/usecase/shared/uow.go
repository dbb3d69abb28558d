package shared

import (
	"context"
	"time"

	"courtbook/internal/domain/booking"
	"courtbook/internal/domain/court"
	"courtbook/internal/domain/review"
	"courtbook/internal/infra/db"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: full transaction for write operations with retry on
	// serialization failures
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithDB: single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error
}

type Tx interface {
	Bookings() BookingRepository
	Courts() CourtRepository
	Reviews() ReviewRepository
	DB() db.DBTX
}

type BookingRepository interface {
	Create(ctx context.Context, tx db.DBTX, b *booking.Booking) (uuid.UUID, error)
	// IntervalsForCourt returns every occupied [start, end) span for the
	// court, pending and confirmed alike.
	IntervalsForCourt(ctx context.Context, tx db.DBTX, courtID uuid.UUID) ([]booking.Interval, error)
	FindByKey(ctx context.Context, tx db.DBTX, key booking.Key) (*booking.Booking, error)
	ConfirmByKey(ctx context.Context, tx db.DBTX, key booking.Key) error
	DeleteByKey(ctx context.Context, tx db.DBTX, key booking.Key) error
	DeleteStalePending(ctx context.Context, tx db.DBTX, olderThan time.Time) (int64, error)
}

type CourtRepository interface {
	FindByID(ctx context.Context, tx db.DBTX, id uuid.UUID) (*court.Court, error)
	// LockByID acquires the per-court row lock that serializes
	// check-then-insert admission for one resource without touching any
	// other court.
	LockByID(ctx context.Context, tx db.DBTX, id uuid.UUID) (*court.Court, error)
	ReplaceForClub(ctx context.Context, tx db.DBTX, clubID uuid.UUID, courts []*court.Court) error
}

type ReviewRepository interface {
	Upsert(ctx context.Context, tx db.DBTX, rev *review.Review) (uuid.UUID, error)
	DeleteByPlayerClub(ctx context.Context, tx db.DBTX, playerID, clubID uuid.UUID) error
}
