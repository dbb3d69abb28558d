//go:build unit

package commands_test

import (
	"context"
	"sync"
	"time"

	"courtbook/internal/domain/booking"
	"courtbook/internal/domain/court"
	"courtbook/internal/domain/review"
	"courtbook/internal/infra"
	"courtbook/internal/infra/db"
	"courtbook/internal/usecase/shared"

	"github.com/google/uuid"
)

// fakeStore is an in-memory stand-in for the postgres write side. It
// keys bookings by their natural key, mirroring the unique index the
// real schema enforces.
type fakeStore struct {
	mu        sync.Mutex
	courts    map[uuid.UUID]*court.Court
	bookings  map[booking.Key]*booking.Booking
	createdAt map[booking.Key]time.Time
	reviews   map[[2]uuid.UUID]*review.Review
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		courts:    make(map[uuid.UUID]*court.Court),
		bookings:  make(map[booking.Key]*booking.Booking),
		createdAt: make(map[booking.Key]time.Time),
		reviews:   make(map[[2]uuid.UUID]*review.Review),
	}
}

func (s *fakeStore) addCourt(c *court.Court) {
	s.courts[c.ID()] = c
}

func (s *fakeStore) addBooking(b *booking.Booking, createdAt time.Time) {
	s.bookings[b.Key()] = b
	s.createdAt[b.Key()] = createdAt
}

func (s *fakeStore) bookingCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.bookings)
}

func (s *fakeStore) status(key booking.Key) (booking.Status, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.bookings[key]
	if !ok {
		return "", false
	}
	return b.Status(), true
}

type fakeUoW struct {
	store *fakeStore
}

func newFakeUoW(store *fakeStore) shared.UnitOfWork {
	return &fakeUoW{store: store}
}

func (u *fakeUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return fn(ctx, &fakeTx{store: u.store})
}

func (u *fakeUoW) WithDB(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error {
	return fn(ctx, nil)
}

type fakeTx struct {
	store *fakeStore
}

func (t *fakeTx) Bookings() shared.BookingRepository { return &fakeBookingRepo{store: t.store} }
func (t *fakeTx) Courts() shared.CourtRepository     { return &fakeCourtRepo{store: t.store} }
func (t *fakeTx) Reviews() shared.ReviewRepository   { return &fakeReviewRepo{store: t.store} }
func (t *fakeTx) DB() db.DBTX                        { return nil }

func notFoundErr(msg string) error {
	return infra.WrapRepoErr(msg, nil, infra.KindNotFound)
}

type fakeBookingRepo struct {
	store *fakeStore
}

func (r *fakeBookingRepo) Create(ctx context.Context, _ db.DBTX, b *booking.Booking) (uuid.UUID, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, exists := r.store.bookings[b.Key()]; exists {
		return uuid.Nil, infra.WrapRepoErr("booking already exists", nil, infra.KindDuplicateKey)
	}
	r.store.bookings[b.Key()] = b
	r.store.createdAt[b.Key()] = time.Now()
	return b.ID(), nil
}

func (r *fakeBookingRepo) IntervalsForCourt(ctx context.Context, _ db.DBTX, courtID uuid.UUID) ([]booking.Interval, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var intervals []booking.Interval
	for _, b := range r.store.bookings {
		if b.CourtID() == courtID {
			intervals = append(intervals, b.Slot())
		}
	}
	return intervals, nil
}

func (r *fakeBookingRepo) FindByKey(ctx context.Context, _ db.DBTX, key booking.Key) (*booking.Booking, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	b, ok := r.store.bookings[key]
	if !ok {
		return nil, notFoundErr("booking not found")
	}
	// Copy so callers mutating the entity don't touch stored state
	return booking.ReconstructBooking(
		b.ID(), b.CourtID(), b.ClubID(), b.PlayerID(),
		b.Slot(), b.Status(), b.PaymentMethod(),
		b.CreatedAt(), b.UpdatedAt(),
	), nil
}

func (r *fakeBookingRepo) ConfirmByKey(ctx context.Context, _ db.DBTX, key booking.Key) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	b, ok := r.store.bookings[key]
	if !ok {
		return notFoundErr("booking not found")
	}
	r.store.bookings[key] = booking.ReconstructBooking(
		b.ID(), b.CourtID(), b.ClubID(), b.PlayerID(),
		b.Slot(), booking.StatusConfirmed, b.PaymentMethod(),
		b.CreatedAt(), b.UpdatedAt(),
	)
	return nil
}

func (r *fakeBookingRepo) DeleteByKey(ctx context.Context, _ db.DBTX, key booking.Key) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.bookings[key]; !ok {
		return notFoundErr("booking not found")
	}
	delete(r.store.bookings, key)
	delete(r.store.createdAt, key)
	return nil
}

func (r *fakeBookingRepo) DeleteStalePending(ctx context.Context, _ db.DBTX, olderThan time.Time) (int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var removed int64
	for key, b := range r.store.bookings {
		if b.Status() == booking.StatusPending && r.store.createdAt[key].Before(olderThan) {
			delete(r.store.bookings, key)
			delete(r.store.createdAt, key)
			removed++
		}
	}
	return removed, nil
}

type fakeCourtRepo struct {
	store *fakeStore
}

func (r *fakeCourtRepo) FindByID(ctx context.Context, _ db.DBTX, id uuid.UUID) (*court.Court, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	c, ok := r.store.courts[id]
	if !ok {
		return nil, notFoundErr("court not found")
	}
	return c, nil
}

func (r *fakeCourtRepo) LockByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*court.Court, error) {
	return r.FindByID(ctx, dbtx, id)
}

func (r *fakeCourtRepo) ReplaceForClub(ctx context.Context, _ db.DBTX, clubID uuid.UUID, courts []*court.Court) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for id, c := range r.store.courts {
		if c.ClubID() == clubID {
			delete(r.store.courts, id)
		}
	}
	for _, c := range courts {
		r.store.courts[c.ID()] = c
	}
	return nil
}

type fakeReviewRepo struct {
	store *fakeStore
}

func (r *fakeReviewRepo) Upsert(ctx context.Context, _ db.DBTX, rev *review.Review) (uuid.UUID, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.reviews[[2]uuid.UUID{rev.PlayerID(), rev.ClubID()}] = rev
	return rev.ID(), nil
}

func (r *fakeReviewRepo) DeleteByPlayerClub(ctx context.Context, _ db.DBTX, playerID, clubID uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	key := [2]uuid.UUID{playerID, clubID}
	if _, ok := r.store.reviews[key]; !ok {
		return notFoundErr("review not found")
	}
	delete(r.store.reviews, key)
	return nil
}
