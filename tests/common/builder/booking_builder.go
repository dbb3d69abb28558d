//go:build unit || e2e

package builder

import (
	"time"

	dombooking "courtbook/internal/domain/booking"
	"courtbook/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	ID            uuid.UUID
	CourtID       uuid.UUID
	CourtName     string
	ClubID        uuid.UUID
	PlayerID      uuid.UUID
	StartTime     time.Time
	EndTime       time.Time
	Status        string
	PaymentMethod *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func NewBookingBuilder() *BookingBuilder {
	start := time.Now().UTC().Add(24 * time.Hour).Truncate(time.Hour)
	return &BookingBuilder{
		ID:        uuid.New(),
		CourtID:   uuid.New(),
		CourtName: "Center Court",
		ClubID:    uuid.New(),
		PlayerID:  uuid.New(),
		StartTime: start,
		EndTime:   start.Add(time.Hour),
		Status:    string(dombooking.StatusPending),
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}
}

func (b *BookingBuilder) WithCourt(courtID uuid.UUID) *BookingBuilder {
	b.CourtID = courtID
	return b
}

func (b *BookingBuilder) WithClub(clubID uuid.UUID) *BookingBuilder {
	b.ClubID = clubID
	return b
}

func (b *BookingBuilder) WithPlayer(playerID uuid.UUID) *BookingBuilder {
	b.PlayerID = playerID
	return b
}

func (b *BookingBuilder) WithSlot(start, end time.Time) *BookingBuilder {
	b.StartTime = start
	b.EndTime = end
	return b
}

func (b *BookingBuilder) Confirmed() *BookingBuilder {
	b.Status = string(dombooking.StatusConfirmed)
	return b
}

func (b *BookingBuilder) BuildCandidate() dombooking.Candidate {
	return dombooking.Candidate{
		CourtID:   b.CourtID,
		ClubID:    b.ClubID,
		PlayerID:  b.PlayerID,
		StartTime: b.StartTime,
		EndTime:   b.EndTime,
	}
}

func (b *BookingBuilder) BuildKey() dombooking.Key {
	return dombooking.Key{
		CourtID:   b.CourtID,
		ClubID:    b.ClubID,
		PlayerID:  b.PlayerID,
		StartTime: b.StartTime,
	}
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	return &queries.BookingView{
		ID:            b.ID,
		CourtID:       b.CourtID,
		CourtName:     b.CourtName,
		ClubID:        b.ClubID,
		PlayerID:      b.PlayerID,
		StartTime:     b.StartTime,
		EndTime:       b.EndTime,
		Status:        b.Status,
		PaymentMethod: b.PaymentMethod,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
}

func (b *BookingBuilder) BuildListItem() *queries.BookingListItem {
	return &queries.BookingListItem{
		ID:        b.ID,
		CourtID:   b.CourtID,
		CourtName: b.CourtName,
		ClubID:    b.ClubID,
		PlayerID:  b.PlayerID,
		StartTime: b.StartTime,
		EndTime:   b.EndTime,
		Status:    b.Status,
		CreatedAt: b.CreatedAt,
	}
}

// BuildCreateRequestMap is the JSON body for POST /api/bookings, as a
// map so tests can mutate fields.
func (b *BookingBuilder) BuildCreateRequestMap() map[string]any {
	return map[string]any{
		"court_id":   b.CourtID.String(),
		"club_id":    b.ClubID.String(),
		"start_time": b.StartTime.Format(time.RFC3339),
		"end_time":   b.EndTime.Format(time.RFC3339),
	}
}
