// Package services contains the business logic of the placement
// portal.
//
// Services defined in this package:
// - AuthService: registration, login, password and profile changes
// - RosterService: college-managed student and staff accounts
// - NetworkService: the company/college partnership handshake
// - JobService: placement drives gated on active partnerships
// - NotificationService: per-user notification inbox
package services

import (
	"github.com/rs/zerolog"
	authpolicy "github.com/singhrahul7988/Recruit-Sage/internal/app/auth"
	"github.com/singhrahul7988/Recruit-Sage/internal/app/repositories"
	"github.com/singhrahul7988/Recruit-Sage/internal/pkg/auth"
)

// Services holds all the service instances
type Services struct {
	AuthService         *AuthService
	RosterService       *RosterService
	NetworkService      *NetworkService
	JobService          *JobService
	NotificationService *NotificationService
}

// NewServices initializes all services
func NewServices(repos *repositories.Repositories, jwtService *auth.JWTService, logger zerolog.Logger) *Services {
	authzService := authpolicy.NewAuthorizationService(repos.UserRepository, repos.PartnershipRepository)

	return &Services{
		AuthService:         NewAuthService(repos.UserRepository, jwtService, logger),
		RosterService:       NewRosterService(repos.UserRepository, authzService, logger),
		NetworkService:      NewNetworkService(repos.UserRepository, repos.PartnershipRepository, repos.NotificationRepository, logger),
		JobService:          NewJobService(repos.JobRepository, authzService, logger),
		NotificationService: NewNotificationService(repos.NotificationRepository, logger),
	}
}
