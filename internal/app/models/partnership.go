package models

import (
	"fmt"
	"time"
)

// Partnership records a directed handshake request between a company
// and a college. PairKey is derived from the two participant ids
// independent of direction; the unique constraint on it is what
// guarantees at most one partnership per pair.
type Partnership struct {
	ID          int64             `json:"id" db:"id"`
	RequesterID int64             `json:"requesterId" db:"requester_id"`
	RecipientID int64             `json:"recipientId" db:"recipient_id"`
	Status      PartnershipStatus `json:"status" db:"status"`
	PairKey     string            `json:"pairKey" db:"pair_key"`
	CreatedAt   time.Time         `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time         `json:"updatedAt" db:"updated_at"`

	// Populated counterparts, no db tag
	Requester *PublicUser `json:"requester,omitempty"`
	Recipient *PublicUser `json:"recipient,omitempty"`
}

// PublicUser is the subset of a user exposed when populating
// partnership counterparts. Never includes the password hash.
type PublicUser struct {
	ID    int64  `json:"id" db:"id"`
	Name  string `json:"name" db:"name"`
	Email string `json:"email" db:"email"`
	Role  Role   `json:"role" db:"role"`
}

// PairKey returns the order-independent key for a participant pair,
// the smaller id first.
func PairKey(a, b int64) string {
	if b < a {
		a, b = b, a
	}
	return fmt.Sprintf("%d:%d", a, b)
}
