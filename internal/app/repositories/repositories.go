// Package repositories contains the pgx data access layer.
package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	UserRepository         *UserRepository
	PartnershipRepository  *PartnershipRepository
	JobRepository          *JobRepository
	NotificationRepository *NotificationRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepository:         NewUserRepository(db),
		PartnershipRepository:  NewPartnershipRepository(db),
		JobRepository:          NewJobRepository(db),
		NotificationRepository: NewNotificationRepository(db),
	}
}
