package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/singhrahul7988/Recruit-Sage/internal/app/models"
	"github.com/singhrahul7988/Recruit-Sage/internal/app/models/dto"
	"github.com/singhrahul7988/Recruit-Sage/internal/app/repositories"
	"github.com/singhrahul7988/Recruit-Sage/internal/pkg/apperrors"
	"github.com/singhrahul7988/Recruit-Sage/internal/pkg/auth"
	"github.com/singhrahul7988/Recruit-Sage/internal/pkg/validation"
)

// AuthService handles registration, login, and account maintenance.
type AuthService struct {
	userRepo   repositories.IUserRepository
	jwtService *auth.JWTService
	logger     zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(userRepo repositories.IUserRepository, jwtService *auth.JWTService, logger zerolog.Logger) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		jwtService: jwtService,
		logger:     logger,
	}
}

// Register creates a self-service account. Only companies, colleges,
// and admins register themselves; students and staff are created by
// their college.
func (s *AuthService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.LoginResponse, error) {
	switch req.Role {
	case models.RoleCompany, models.RoleCollege, models.RoleAdmin:
	default:
		return nil, apperrors.NewBadRequestError("role must be company, college or admin")
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if !validation.IsValidEmail(email) {
		return nil, apperrors.NewBadRequestError("invalid email format")
	}
	if !validation.IsValidName(strings.TrimSpace(req.Name)) {
		return nil, apperrors.NewBadRequestError("name must be between 2 and 100 characters")
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Name:     strings.TrimSpace(req.Name),
		Email:    email,
		Password: hashed,
		Role:     req.Role,
		Phone:    req.Phone,
		State:    req.State,
	}

	if _, err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("userId", user.ID).Str("role", string(user.Role)).Msg("User registered")

	return s.buildLoginResponse(user)
}

// loginRoleMatches checks the dashboard role the caller signed in
// under against the stored role. The college dashboard is shared by
// the college owner and its staff.
func loginRoleMatches(requested string, stored models.Role) bool {
	switch requested {
	case string(models.RoleStudent), string(models.RoleCompany):
		return string(stored) == requested
	case string(models.RoleCollege):
		return stored == models.RoleCollege || stored == models.RoleCollegeMember
	}
	return false
}

// Login verifies credentials and the requested dashboard role, then
// issues an access token.
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	switch req.Role {
	case string(models.RoleStudent), string(models.RoleCompany), string(models.RoleCollege):
	default:
		return nil, apperrors.NewBadRequestError("role must be student, company or college")
	}

	user, err := s.userRepo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	if !loginRoleMatches(req.Role, user.Role) {
		return nil, apperrors.ErrInvalidCredentials
	}

	if !auth.CheckPassword(user.Password, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	s.logger.Info().Int64("userId", user.ID).Str("role", string(user.Role)).Msg("User logged in")

	return s.buildLoginResponse(user)
}

// ChangePassword sets a new password and clears the first-login flag.
func (s *AuthService) ChangePassword(ctx context.Context, userID int64, req *dto.ChangePasswordRequest) error {
	if len(req.NewPassword) < validation.PasswordMinLength {
		return apperrors.NewBadRequestError("password must be at least 6 characters")
	}

	hashed, err := auth.HashPassword(req.NewPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err := s.userRepo.UpdatePassword(ctx, userID, hashed); err != nil {
		return err
	}

	s.logger.Info().Int64("userId", userID).Msg("Password changed")
	return nil
}

// UpdateProfile applies the non-nil fields of the request to the
// caller's profile.
func (s *AuthService) UpdateProfile(ctx context.Context, user *models.User, req *dto.UpdateProfileRequest) (*dto.UserResponse, error) {
	if req.Name != nil {
		if !validation.IsValidName(strings.TrimSpace(*req.Name)) {
			return nil, apperrors.NewBadRequestError("name must be between 2 and 100 characters")
		}
		user.Name = strings.TrimSpace(*req.Name)
	}
	if req.Phone != nil {
		user.Phone = *req.Phone
	}
	if req.Branch != nil {
		user.Branch = *req.Branch
	}
	if req.Cgpa != nil {
		user.Cgpa = *req.Cgpa
	}
	if req.Skills != nil {
		user.Skills = *req.Skills
	}

	if err := s.userRepo.UpdateProfile(ctx, user); err != nil {
		return nil, err
	}

	resp := dto.NewUserResponse(user)
	return &resp, nil
}

func (s *AuthService) buildLoginResponse(user *models.User) (*dto.LoginResponse, error) {
	token, expiresIn, err := s.jwtService.GenerateToken(user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	userResp := dto.NewUserResponse(user)
	if scope := user.EffectiveCollegeID(); scope > 0 {
		userResp.CollegeID = &scope
	}

	return &dto.LoginResponse{
		Token: dto.TokenResponse{
			AccessToken: token,
			TokenType:   "Bearer",
			ExpiresIn:   int64(expiresIn),
		},
		User: userResp,
	}, nil
}
