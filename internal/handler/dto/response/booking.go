package response

import (
	"time"

	"courtbook/internal/usecase/commands"
	"courtbook/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type BookingResponse struct {
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

type BookingListResponse struct {
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

type BookingQuoteResponse struct {
	CourtID     uuid.UUID `json:"court_id"`
	ClubID      uuid.UUID `json:"club_id"`
	PlayerID    uuid.UUID `json:"player_id"`
	StartTime   time.Time `json:"start_time"`
	EndTime     time.Time `json:"end_time"`
	AmountCents int64     `json:"amount_cents"`
}

func FromBookingView(view *queries.BookingView) *BookingResponse {
	var resp BookingResponse
	_ = copier.Copy(&resp, view)
	return &resp
}

func FromBookingListItems(items []*queries.BookingListItem) []*BookingListResponse {
	result := make([]*BookingListResponse, 0, len(items))
	for _, item := range items {
		var resp BookingListResponse
		_ = copier.Copy(&resp, item)
		result = append(result, &resp)
	}
	return result
}

func FromBookingQuote(quote *commands.BookingQuote) *BookingQuoteResponse {
	return &BookingQuoteResponse{
		CourtID:     quote.Key.CourtID,
		ClubID:      quote.Key.ClubID,
		PlayerID:    quote.Key.PlayerID,
		StartTime:   quote.Key.StartTime,
		EndTime:     quote.EndTime,
		AmountCents: quote.AmountCents,
	}
}
