package dto

import (
	"time"

	"github.com/singhrahul7988/Recruit-Sage/internal/app/models"
)

// ConnectRequest represents a partnership request. RequesterID is
// optional; when present it must match the authenticated caller.
type ConnectRequest struct {
	RequesterID *int64 `json:"requesterId"`
	RecipientID int64  `json:"recipientId" binding:"required,min=1"`
}

// RespondRequest represents the recipient's answer to a pending
// partnership request
type RespondRequest struct {
	PartnershipID int64                    `json:"partnershipId" binding:"required,min=1"`
	Status        models.PartnershipStatus `json:"status" binding:"required"`
}

// PartnershipResponse represents a partnership with both counterparts
// resolved
type PartnershipResponse struct {
	ID          int64                    `json:"id"`
	RequesterID int64                    `json:"requesterId"`
	RecipientID int64                    `json:"recipientId"`
	Status      models.PartnershipStatus `json:"status"`
	Requester   *models.PublicUser       `json:"requester,omitempty"`
	Recipient   *models.PublicUser       `json:"recipient,omitempty"`
	CreatedAt   time.Time                `json:"createdAt"`
	UpdatedAt   time.Time                `json:"updatedAt"`
}

// NewPartnershipResponse maps a partnership model to its client
// representation
func NewPartnershipResponse(p *models.Partnership) PartnershipResponse {
	return PartnershipResponse{
		ID:          p.ID,
		RequesterID: p.RequesterID,
		RecipientID: p.RecipientID,
		Status:      p.Status,
		Requester:   p.Requester,
		Recipient:   p.Recipient,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
