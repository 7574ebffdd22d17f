package models

import (
	"time"
)

// Notification is a persisted in-app message for one user. The core
// only enumerates recipients and writes rows; delivery beyond that is
// the client polling its list.
type Notification struct {
	ID        int64     `json:"id" db:"id"`
	UserID    int64     `json:"userId" db:"user_id"`
	Type      string    `json:"type" db:"type" example:"company_request"`
	Title     string    `json:"title" db:"title"`
	Detail    string    `json:"detail" db:"detail"`
	IsRead    bool      `json:"isRead" db:"is_read"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}
