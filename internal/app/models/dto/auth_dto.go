package dto

import (
	"encoding/json"
	"fmt"

	"github.com/singhrahul7988/Recruit-Sage/internal/app/models"
)

// LoginRequest represents login credentials plus the dashboard role the
// caller signed in under
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role" binding:"required"`
}

// TokenResponse represents JWT token information
type TokenResponse struct {
	AccessToken string `json:"accessToken"`
	TokenType   string `json:"tokenType" example:"Bearer"`
	ExpiresIn   int64  `json:"expiresIn"`
}

// RegisterRequest represents a self-service registration request
// (company, college or admin accounts only)
type RegisterRequest struct {
	Name     string      `json:"name" binding:"required"`
	Email    string      `json:"email" binding:"required,email"`
	Password string      `json:"password" binding:"required,min=6"`
	Role     models.Role `json:"role" binding:"required"`
	Phone    string      `json:"phone"`
	State    string      `json:"state"`
}

// ChangePasswordRequest represents a password change for the
// authenticated user
type ChangePasswordRequest struct {
	NewPassword string `json:"newPassword" binding:"required,min=6"`
}

// UpdateProfileRequest represents profile update data. Nil fields are
// left unchanged.
type UpdateProfileRequest struct {
	Name   *string `json:"name"`
	Phone  *string `json:"phone"`
	Branch *string `json:"branch"`
	Cgpa   *string `json:"cgpa"`
	Skills *string `json:"skills"`
}

// AddStudentRequest represents a single student created by a college on
// the student's behalf
type AddStudentRequest struct {
	Name   string `json:"name" binding:"required"`
	Email  string `json:"email" binding:"required,email"`
	Branch string `json:"branch"`
	Cgpa   string `json:"cgpa"`
	Phone  string `json:"phone"`
}

// FlexString accepts a JSON string or number and stores it as a
// string. Bulk uploads come from spreadsheet rows where numeric cells
// (cgpa, phone) arrive untyped.
type FlexString string

// UnmarshalJSON implements json.Unmarshaler
func (f *FlexString) UnmarshalJSON(data []byte) error {
	if len(data) == 0 || string(data) == "null" {
		*f = ""
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = FlexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("value must be a string or number: %w", err)
	}
	*f = FlexString(n.String())
	return nil
}

// BulkStudentRow represents one row of a bulk student upload
type BulkStudentRow struct {
	Name   string     `json:"name"`
	Email  string     `json:"email"`
	Branch string     `json:"branch"`
	Cgpa   FlexString `json:"cgpa"`
	Phone  FlexString `json:"phone"`
}

// BulkStudentsRequest represents a bulk student upload
type BulkStudentsRequest struct {
	Students []BulkStudentRow `json:"students" binding:"required"`
}

// BulkStudentsResponse reports how many rows were inserted and how
// many were skipped as duplicates
type BulkStudentsResponse struct {
	Message string `json:"message"`
	Added   int    `json:"added"`
	Skipped int    `json:"skipped"`
}

// AddStaffRequest represents a college_member account created by the
// college owner
type AddStaffRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required,email"`
	Phone string `json:"phone"`
}

// UserResponse represents user information returned to clients
type UserResponse struct {
	ID           int64       `json:"id"`
	Name         string      `json:"name"`
	Email        string      `json:"email"`
	Role         models.Role `json:"role"`
	CollegeID    *int64      `json:"collegeId,omitempty"`
	IsFirstLogin bool        `json:"isFirstLogin"`
	Branch       string      `json:"branch,omitempty"`
	Cgpa         string      `json:"cgpa,omitempty"`
	Phone        string      `json:"phone,omitempty"`
	Skills       string      `json:"skills,omitempty"`
	State        string      `json:"state,omitempty"`
}

// LoginResponse represents a successful login. CollegeID carries the
// effective college scope of the account (a college's own id, or the
// parent for students and staff).
type LoginResponse struct {
	Token TokenResponse `json:"token"`
	User  UserResponse  `json:"user"`
}

// NewUserResponse maps a user model to its client representation
func NewUserResponse(user *models.User) UserResponse {
	return UserResponse{
		ID:           user.ID,
		Name:         user.Name,
		Email:        user.Email,
		Role:         user.Role,
		CollegeID:    user.CollegeID,
		IsFirstLogin: user.IsFirstLogin,
		Branch:       user.Branch,
		Cgpa:         user.Cgpa,
		Phone:        user.Phone,
		Skills:       user.Skills,
		State:        user.State,
	}
}
