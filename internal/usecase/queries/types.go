package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type BookingView struct {
	ID            uuid.UUID `json:"id"`
	CourtID       uuid.UUID `json:"court_id"`
	CourtName     string    `json:"court_name"`
	ClubID        uuid.UUID `json:"club_id"`
	PlayerID      uuid.UUID `json:"player_id"`
	StartTime     time.Time `json:"start_time"`
	EndTime       time.Time `json:"end_time"`
	Status        string    `json:"status"`
	PaymentMethod *string   `json:"payment_method,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type BookingListItem struct {
	ID        uuid.UUID `json:"id"`
	CourtID   uuid.UUID `json:"court_id"`
	CourtName string    `json:"court_name"`
	ClubID    uuid.UUID `json:"club_id"`
	PlayerID  uuid.UUID `json:"player_id"`
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

type CourtView struct {
	ID                uuid.UUID `json:"id"`
	ClubID            uuid.UUID `json:"club_id"`
	Name              string    `json:"name"`
	CourtType         string    `json:"court_type"`
	Ground            *string   `json:"ground,omitempty"`
	HeightCm          *int32    `json:"height_cm,omitempty"`
	Lights            *bool     `json:"lights,omitempty"`
	PriceCentsPerHour *int64    `json:"price_cents_per_hour,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

type ReviewView struct {
	ID        uuid.UUID `json:"id"`
	PlayerID  uuid.UUID `json:"player_id"`
	ClubID    uuid.UUID `json:"club_id"`
	Rating    int32     `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
