// Package auth implements the authorization guard: the rule set
// applied before every mutating or sensitive read operation, derived
// from the caller's role, ownership, and partnership state. The policy
// functions are pure; AuthorizationService covers the checks that need
// storage.
package auth

import (
	"context"
	"fmt"

	"github.com/singhrahul7988/Recruit-Sage/internal/app/models"
	"github.com/singhrahul7988/Recruit-Sage/internal/app/repositories"
	"github.com/singhrahul7988/Recruit-Sage/internal/pkg/apperrors"
)

// CanViewNetwork reports whether the caller may list the partnerships
// of subjectID: the subject itself, or a college_member whose parent
// college is the subject. Students have no network visibility.
func CanViewNetwork(caller *models.User, subjectID int64) bool {
	if caller.ID == subjectID {
		return true
	}
	return caller.Role == models.RoleCollegeMember &&
		caller.CollegeID != nil && *caller.CollegeID == subjectID
}

// CanViewCollegeRoster reports whether the caller may read the student
// roster or staff team of collegeID: the college itself or one of its
// college_members. Students cannot read the roster.
func CanViewCollegeRoster(caller *models.User, collegeID int64) bool {
	if caller.Role == models.RoleCollege && caller.ID == collegeID {
		return true
	}
	return caller.Role == models.RoleCollegeMember &&
		caller.CollegeID != nil && *caller.CollegeID == collegeID
}

// CanViewJobFeed reports whether the caller may read the open-drive
// feed of collegeID: the college, its staff, or its students.
func CanViewJobFeed(caller *models.User, collegeID int64) bool {
	switch caller.Role {
	case models.RoleCollege:
		return caller.ID == collegeID
	case models.RoleCollegeMember, models.RoleStudent:
		return caller.CollegeID != nil && *caller.CollegeID == collegeID
	}
	return false
}

// CanViewJob reports whether the caller may read a single job: the
// owning company, the target college, or the college's staff and
// students.
func CanViewJob(caller *models.User, job *models.Job) bool {
	switch caller.Role {
	case models.RoleCompany:
		return caller.ID == job.CompanyID
	case models.RoleCollege:
		return caller.ID == job.CollegeID
	case models.RoleCollegeMember, models.RoleStudent:
		return caller.CollegeID != nil && *caller.CollegeID == job.CollegeID
	}
	return false
}

// CanSearchDirectory reports whether the caller may use the
// college/company search endpoints.
func CanSearchDirectory(caller *models.User) bool {
	switch caller.Role {
	case models.RoleCompany, models.RoleCollege, models.RoleCollegeMember:
		return true
	}
	return false
}

// AuthorizationService handles authorization checks that need the
// store: partnership state and roster ownership.
type AuthorizationService struct {
	userRepo        repositories.IUserRepository
	partnershipRepo repositories.IPartnershipRepository
}

// NewAuthorizationService creates a new AuthorizationService
func NewAuthorizationService(userRepo repositories.IUserRepository, partnershipRepo repositories.IPartnershipRepository) *AuthorizationService {
	return &AuthorizationService{
		userRepo:        userRepo,
		partnershipRepo: partnershipRepo,
	}
}

// ValidateActivePartnership confirms an Active partnership exists
// between the two parties at the moment of the call. Absence is a
// permission error, not a missing resource: the counterpart exists,
// the relationship does not.
func (s *AuthorizationService) ValidateActivePartnership(ctx context.Context, companyID, collegeID int64) error {
	active, err := s.partnershipRepo.HasActiveBetween(ctx, companyID, collegeID)
	if err != nil {
		return fmt.Errorf("failed to check partnership: %w", err)
	}
	if !active {
		return apperrors.ErrNoActivePartnership
	}
	return nil
}

// ValidateStudentOwnership confirms the student exists, carries the
// student role, and belongs to the given college.
func (s *AuthorizationService) ValidateStudentOwnership(ctx context.Context, studentID, collegeID int64) error {
	student, err := s.userRepo.GetByID(ctx, studentID)
	if err != nil {
		return apperrors.ErrStudentNotFound
	}
	if student.Role != models.RoleStudent {
		return apperrors.ErrStudentNotFound
	}
	if student.CollegeID == nil || *student.CollegeID != collegeID {
		return apperrors.ErrPermissionDenied
	}
	return nil
}

// ValidateCollegeExists confirms the id references a user of role
// college. Used as the explicit foreign-key check when creating
// students, staff, and jobs.
func (s *AuthorizationService) ValidateCollegeExists(ctx context.Context, collegeID int64) error {
	college, err := s.userRepo.GetByID(ctx, collegeID)
	if err != nil {
		return apperrors.ErrCollegeNotFound
	}
	if college.Role != models.RoleCollege {
		return apperrors.ErrCollegeNotFound
	}
	return nil
}
