package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	authpolicy "github.com/singhrahul7988/Recruit-Sage/internal/app/auth"
	"github.com/singhrahul7988/Recruit-Sage/internal/app/models"
	"github.com/singhrahul7988/Recruit-Sage/internal/app/models/dto"
	"github.com/singhrahul7988/Recruit-Sage/internal/app/repositories"
	"github.com/singhrahul7988/Recruit-Sage/internal/pkg/apperrors"
	"github.com/singhrahul7988/Recruit-Sage/internal/pkg/auth"
	"github.com/singhrahul7988/Recruit-Sage/internal/pkg/validation"
)

// Accounts created on a user's behalf start with a known password and
// isFirstLogin set, forcing a password change on first sign-in.
const (
	defaultStudentPassword = "welcome123"
	defaultStaffPassword   = "staff123"
)

// RosterService manages a college's student roster and staff team.
type RosterService struct {
	userRepo     repositories.IUserRepository
	authzService *authpolicy.AuthorizationService
	logger       zerolog.Logger
}

// NewRosterService creates a new RosterService
func NewRosterService(userRepo repositories.IUserRepository, authzService *authpolicy.AuthorizationService, logger zerolog.Logger) *RosterService {
	return &RosterService{
		userRepo:     userRepo,
		authzService: authzService,
		logger:       logger,
	}
}

// AddStudent creates one student account under the calling college.
func (s *RosterService) AddStudent(ctx context.Context, college *models.User, req *dto.AddStudentRequest) (*dto.UserResponse, error) {
	student, err := s.createManagedUser(ctx, college.ID, models.RoleStudent, defaultStudentPassword, req.Name, req.Email, func(u *models.User) {
		u.Branch = req.Branch
		u.Cgpa = req.Cgpa
		u.Phone = req.Phone
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("studentId", student.ID).Int64("collegeId", college.ID).Msg("Student added")

	resp := dto.NewUserResponse(student)
	return &resp, nil
}

// AddStudentsBulk creates many students at once, skipping rows whose
// email is missing, malformed, or already taken. A partial import is
// the expected outcome, not a failure.
func (s *RosterService) AddStudentsBulk(ctx context.Context, college *models.User, req *dto.BulkStudentsRequest) (*dto.BulkStudentsResponse, error) {
	if len(req.Students) == 0 {
		return nil, apperrors.NewBadRequestError("no student rows supplied")
	}

	added, skipped := 0, 0
	for _, row := range req.Students {
		_, err := s.createManagedUser(ctx, college.ID, models.RoleStudent, defaultStudentPassword, row.Name, row.Email, func(u *models.User) {
			u.Branch = row.Branch
			u.Cgpa = string(row.Cgpa)
			u.Phone = string(row.Phone)
		})
		if err != nil {
			if errors.Is(err, apperrors.ErrEmailAlreadyExists) || errors.Is(err, apperrors.ErrBadRequest) {
				skipped++
				continue
			}
			return nil, err
		}
		added++
	}

	s.logger.Info().Int64("collegeId", college.ID).Int("added", added).Int("skipped", skipped).Msg("Bulk student upload processed")

	return &dto.BulkStudentsResponse{
		Message: fmt.Sprintf("%d students added, %d skipped", added, skipped),
		Added:   added,
		Skipped: skipped,
	}, nil
}

// ListStudents returns a college's roster. Visible to the college
// itself and its staff only.
func (s *RosterService) ListStudents(ctx context.Context, caller *models.User, collegeID int64) ([]dto.UserResponse, error) {
	if !authpolicy.CanViewCollegeRoster(caller, collegeID) {
		return nil, apperrors.ErrPermissionDenied
	}

	students, err := s.userRepo.ListByCollegeAndRole(ctx, collegeID, models.RoleStudent)
	if err != nil {
		return nil, err
	}
	return toUserResponses(students), nil
}

// DeleteStudent removes a student owned by the calling college.
func (s *RosterService) DeleteStudent(ctx context.Context, college *models.User, studentID int64) error {
	if err := s.authzService.ValidateStudentOwnership(ctx, studentID, college.ID); err != nil {
		return err
	}

	if err := s.userRepo.Delete(ctx, studentID); err != nil {
		return err
	}

	s.logger.Info().Int64("studentId", studentID).Int64("collegeId", college.ID).Msg("Student removed")
	return nil
}

// AddStaff creates a college_member account under the calling college.
func (s *RosterService) AddStaff(ctx context.Context, college *models.User, req *dto.AddStaffRequest) (*dto.UserResponse, error) {
	staff, err := s.createManagedUser(ctx, college.ID, models.RoleCollegeMember, defaultStaffPassword, req.Name, req.Email, func(u *models.User) {
		u.Phone = req.Phone
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("staffId", staff.ID).Int64("collegeId", college.ID).Msg("Staff member added")

	resp := dto.NewUserResponse(staff)
	return &resp, nil
}

// ListTeam returns a college's staff members. Visible to the college
// itself and its staff only.
func (s *RosterService) ListTeam(ctx context.Context, caller *models.User, collegeID int64) ([]dto.UserResponse, error) {
	if !authpolicy.CanViewCollegeRoster(caller, collegeID) {
		return nil, apperrors.ErrPermissionDenied
	}

	team, err := s.userRepo.ListByCollegeAndRole(ctx, collegeID, models.RoleCollegeMember)
	if err != nil {
		return nil, err
	}
	return toUserResponses(team), nil
}

// createManagedUser builds an account owned by a college: default
// password, first-login flag set.
func (s *RosterService) createManagedUser(ctx context.Context, collegeID int64, role models.Role, defaultPassword, name, email string, fill func(*models.User)) (*models.User, error) {
	name = strings.TrimSpace(name)
	email = strings.ToLower(strings.TrimSpace(email))

	if !validation.IsValidName(name) {
		return nil, apperrors.NewBadRequestError("name must be between 2 and 100 characters")
	}
	if !validation.IsValidEmail(email) {
		return nil, apperrors.NewBadRequestError("invalid email format")
	}

	hashed, err := auth.HashPassword(defaultPassword)
	if err != nil {
		return nil, fmt.Errorf("failed to hash default password: %w", err)
	}

	user := &models.User{
		Name:         name,
		Email:        email,
		Password:     hashed,
		Role:         role,
		CollegeID:    &collegeID,
		IsFirstLogin: true,
	}
	fill(user)

	if _, err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func toUserResponses(users []*models.User) []dto.UserResponse {
	responses := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		responses = append(responses, dto.NewUserResponse(u))
	}
	return responses
}
