package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	authpolicy "github.com/singhrahul7988/Recruit-Sage/internal/app/auth"
	"github.com/singhrahul7988/Recruit-Sage/internal/app/models"
	"github.com/singhrahul7988/Recruit-Sage/internal/app/models/dto"
	"github.com/singhrahul7988/Recruit-Sage/internal/app/repositories"
	"github.com/singhrahul7988/Recruit-Sage/internal/pkg/apperrors"
)

// NetworkService implements the partnership handshake between
// companies and colleges.
type NetworkService struct {
	userRepo         repositories.IUserRepository
	partnershipRepo  repositories.IPartnershipRepository
	notificationRepo repositories.INotificationRepository
	logger           zerolog.Logger
}

// NewNetworkService creates a new NetworkService
func NewNetworkService(
	userRepo repositories.IUserRepository,
	partnershipRepo repositories.IPartnershipRepository,
	notificationRepo repositories.INotificationRepository,
	logger zerolog.Logger,
) *NetworkService {
	return &NetworkService{
		userRepo:         userRepo,
		partnershipRepo:  partnershipRepo,
		notificationRepo: notificationRepo,
		logger:           logger,
	}
}

// SendConnectionRequest creates or reopens a partnership request from
// the caller to the recipient. The returned bool reports whether a new
// row was created (true) or a rejected one reopened (false).
//
// At most one partnership row ever exists per pair: the lookup handles
// the sequential case, and the unique pair-key constraint settles
// concurrent inserts.
func (s *NetworkService) SendConnectionRequest(ctx context.Context, caller *models.User, req *dto.ConnectRequest) (*dto.PartnershipResponse, bool, error) {
	if req.RequesterID != nil && *req.RequesterID != caller.ID {
		return nil, false, apperrors.NewForbiddenError("requester must be the authenticated user")
	}
	if req.RecipientID == caller.ID {
		return nil, false, apperrors.NewBadRequestError("cannot send a partnership request to yourself")
	}

	recipient, err := s.userRepo.GetByID(ctx, req.RecipientID)
	if err != nil {
		return nil, false, err
	}

	if !crossRolePair(caller.Role, recipient.Role) {
		return nil, false, apperrors.ErrCrossRoleRequired
	}

	existing, err := s.partnershipRepo.FindBetween(ctx, caller.ID, recipient.ID)
	if err != nil && !errors.Is(err, apperrors.ErrPartnershipNotFound) {
		return nil, false, err
	}

	if existing != nil {
		if existing.Status != models.PartnershipRejected {
			return nil, false, apperrors.ErrPartnershipExists
		}
		if err := s.partnershipRepo.Reopen(ctx, existing.ID, caller.ID, recipient.ID); err != nil {
			return nil, false, err
		}
		reopened, err := s.partnershipRepo.GetByID(ctx, existing.ID)
		if err != nil {
			return nil, false, err
		}

		s.logger.Info().Int64("partnershipId", reopened.ID).Int64("requesterId", caller.ID).Msg("Rejected partnership reopened")

		s.notifyCollegeTeam(ctx, caller, recipient)
		resp := dto.NewPartnershipResponse(reopened)
		return &resp, false, nil
	}

	partnership := &models.Partnership{
		RequesterID: caller.ID,
		RecipientID: recipient.ID,
		Status:      models.PartnershipPending,
		PairKey:     models.PairKey(caller.ID, recipient.ID),
	}
	if err := s.partnershipRepo.Create(ctx, partnership); err != nil {
		return nil, false, err
	}

	s.logger.Info().Int64("partnershipId", partnership.ID).Int64("requesterId", caller.ID).Int64("recipientId", recipient.ID).Msg("Partnership request sent")

	s.notifyCollegeTeam(ctx, caller, recipient)
	resp := dto.NewPartnershipResponse(partnership)
	return &resp, true, nil
}

// RespondToRequest records the recipient's decision. Only the stored
// recipient may respond, and only with Active or Rejected; the status
// is overwritten in place with no transition history.
func (s *NetworkService) RespondToRequest(ctx context.Context, caller *models.User, req *dto.RespondRequest) (*dto.PartnershipResponse, error) {
	if req.Status != models.PartnershipActive && req.Status != models.PartnershipRejected {
		return nil, apperrors.NewBadRequestError("status must be Active or Rejected")
	}

	partnership, err := s.partnershipRepo.GetByID(ctx, req.PartnershipID)
	if err != nil {
		return nil, err
	}

	if partnership.RecipientID != caller.ID {
		return nil, apperrors.ErrNotRecipient
	}

	if err := s.partnershipRepo.UpdateStatus(ctx, partnership.ID, req.Status); err != nil {
		return nil, err
	}
	partnership.Status = req.Status

	s.logger.Info().Int64("partnershipId", partnership.ID).Str("status", string(req.Status)).Msg("Partnership request answered")

	resp := dto.NewPartnershipResponse(partnership)
	return &resp, nil
}

// GetNetwork lists the partnerships of a user. A college_member sees
// the network of its parent college.
func (s *NetworkService) GetNetwork(ctx context.Context, caller *models.User, subjectID int64) ([]dto.PartnershipResponse, error) {
	if !authpolicy.CanViewNetwork(caller, subjectID) {
		return nil, apperrors.ErrPermissionDenied
	}

	partnerships, err := s.partnershipRepo.ListForUser(ctx, subjectID)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.PartnershipResponse, 0, len(partnerships))
	for _, p := range partnerships {
		responses = append(responses, dto.NewPartnershipResponse(p))
	}
	return responses, nil
}

// SearchColleges lists every college account.
func (s *NetworkService) SearchColleges(ctx context.Context, caller *models.User) ([]dto.UserResponse, error) {
	return s.searchByRole(ctx, caller, models.RoleCollege)
}

// SearchCompanies lists every company account.
func (s *NetworkService) SearchCompanies(ctx context.Context, caller *models.User) ([]dto.UserResponse, error) {
	return s.searchByRole(ctx, caller, models.RoleCompany)
}

func (s *NetworkService) searchByRole(ctx context.Context, caller *models.User, role models.Role) ([]dto.UserResponse, error) {
	if !authpolicy.CanSearchDirectory(caller) {
		return nil, apperrors.ErrPermissionDenied
	}

	users, err := s.userRepo.ListByRole(ctx, role)
	if err != nil {
		return nil, err
	}
	return toUserResponses(users), nil
}

// crossRolePair reports whether the two roles form a valid
// partnership: exactly one company and one college.
func crossRolePair(a, b models.Role) bool {
	return (a == models.RoleCompany && b == models.RoleCollege) ||
		(a == models.RoleCollege && b == models.RoleCompany)
}

// notifyCollegeTeam fans a new-request notification out to the
// college's whole team (owner plus staff) when a company initiates.
// Delivery failures are logged and swallowed: the partnership write
// already happened and stays valid.
func (s *NetworkService) notifyCollegeTeam(ctx context.Context, requester, recipient *models.User) {
	if requester.Role != models.RoleCompany || recipient.Role != models.RoleCollege {
		return
	}

	teamIDs, err := s.userRepo.CollegeTeamIDs(ctx, recipient.ID)
	if err != nil {
		s.logger.Error().Err(err).Int64("collegeId", recipient.ID).Msg("Failed to resolve college team for notification")
		return
	}

	title := "New partnership request"
	detail := fmt.Sprintf("%s has requested to connect with your college", requester.Name)
	if err := s.notificationRepo.CreateForUsers(ctx, teamIDs, "partnership_request", title, detail); err != nil {
		s.logger.Error().Err(err).Int64("collegeId", recipient.ID).Msg("Failed to create partnership notifications")
	}
}
