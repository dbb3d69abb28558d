package request

import (
	"time"

	"courtbook/internal/usecase/commands"

	"github.com/google/uuid"
)

// PaymentWebhookRequest is the completion event posted by the payment
// collaborator. Metadata echoes the quote envelope verbatim.
type PaymentWebhookRequest struct {
	EventType string                 `json:"event_type" binding:"required"`
	Metadata  PaymentWebhookMetadata `json:"metadata" binding:"required"`
}

type PaymentWebhookMetadata struct {
	CourtID   uuid.UUID `json:"court_id" binding:"required"`
	ClubID    uuid.UUID `json:"club_id" binding:"required"`
	PlayerID  uuid.UUID `json:"player_id" binding:"required"`
	StartTime time.Time `json:"start_time" binding:"required"`
	EndTime   time.Time `json:"end_time" binding:"required"`
}

func (r PaymentWebhookRequest) ToEvent() commands.PaymentCompletedEvent {
	return commands.PaymentCompletedEvent{
		CourtID:   r.Metadata.CourtID,
		ClubID:    r.Metadata.ClubID,
		PlayerID:  r.Metadata.PlayerID,
		StartTime: r.Metadata.StartTime,
		EndTime:   r.Metadata.EndTime,
	}
}
