package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/singhrahul7988/Recruit-Sage/internal/app/models"
	"github.com/singhrahul7988/Recruit-Sage/internal/app/models/dto"
	"github.com/singhrahul7988/Recruit-Sage/internal/pkg/apperrors"
	"github.com/singhrahul7988/Recruit-Sage/internal/pkg/auth"
)

func newAuthFixture(t *testing.T) (*AuthService, *fakeUserRepo) {
	t.Helper()
	users := newFakeUserRepo()
	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:   "test-secret",
		TokenExp:    time.Hour,
		TokenIssuer: "test",
	})
	return NewAuthService(users, jwtService, zerolog.Nop()), users
}

func seedAccount(t *testing.T, users *fakeUserRepo, role models.Role, email, password string) *models.User {
	t.Helper()
	hashed, err := auth.HashPassword(password)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}
	return users.mustAddUser(&models.User{Name: "Test Account", Email: email, Password: hashed, Role: role})
}

func TestRegisterIssuesToken(t *testing.T) {
	service, _ := newAuthFixture(t)

	resp, err := service.Register(context.Background(), &dto.RegisterRequest{
		Name:     "Tech Corp",
		Email:    "HR@TechCorp.com",
		Password: "secret1",
		Role:     models.RoleCompany,
	})
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	if resp.Token.AccessToken == "" {
		t.Error("expected an access token")
	}
	if resp.User.Email != "hr@techcorp.com" {
		t.Errorf("email = %q, want lowercased", resp.User.Email)
	}
	if resp.User.IsFirstLogin {
		t.Error("self-registered accounts are not first-login accounts")
	}
}

func TestRegisterRejectsManagedRoles(t *testing.T) {
	service, _ := newAuthFixture(t)

	for _, role := range []models.Role{models.RoleStudent, models.RoleCollegeMember, "intern"} {
		_, err := service.Register(context.Background(), &dto.RegisterRequest{
			Name:     "Someone",
			Email:    "someone@example.com",
			Password: "secret1",
			Role:     role,
		})
		if !errors.Is(err, apperrors.ErrBadRequest) {
			t.Errorf("role %q err = %v, want ErrBadRequest", role, err)
		}
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	service, users := newAuthFixture(t)
	seedAccount(t, users, models.RoleCompany, "hr@techcorp.com", "secret1")

	_, err := service.Register(context.Background(), &dto.RegisterRequest{
		Name:     "Tech Corp Again",
		Email:    "hr@techcorp.com",
		Password: "secret1",
		Role:     models.RoleCompany,
	})
	if !errors.Is(err, apperrors.ErrEmailAlreadyExists) {
		t.Errorf("err = %v, want ErrEmailAlreadyExists", err)
	}
}

func TestLoginRoleWhitelist(t *testing.T) {
	service, users := newAuthFixture(t)
	seedAccount(t, users, models.RoleCompany, "hr@techcorp.com", "secret1")

	// Unknown dashboard role is a validation error.
	_, err := service.Login(context.Background(), &dto.LoginRequest{Email: "hr@techcorp.com", Password: "secret1", Role: "admin"})
	if !errors.Is(err, apperrors.ErrBadRequest) {
		t.Errorf("admin role err = %v, want ErrBadRequest", err)
	}

	// Signing into the wrong dashboard does not reveal the account.
	_, err = service.Login(context.Background(), &dto.LoginRequest{Email: "hr@techcorp.com", Password: "secret1", Role: "college"})
	if !errors.Is(err, apperrors.ErrInvalidCredentials) {
		t.Errorf("wrong dashboard err = %v, want ErrInvalidCredentials", err)
	}

	resp, err := service.Login(context.Background(), &dto.LoginRequest{Email: "hr@techcorp.com", Password: "secret1", Role: "company"})
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if resp.Token.AccessToken == "" {
		t.Error("expected an access token")
	}
}

func TestLoginCollegeDashboardAdmitsStaff(t *testing.T) {
	service, users := newAuthFixture(t)
	college := seedAccount(t, users, models.RoleCollege, "tpo@grand.edu", "secret1")
	staff := seedAccount(t, users, models.RoleCollegeMember, "staff@grand.edu", "secret1")
	staff.CollegeID = &college.ID

	resp, err := service.Login(context.Background(), &dto.LoginRequest{Email: "staff@grand.edu", Password: "secret1", Role: "college"})
	if err != nil {
		t.Fatalf("staff login failed: %v", err)
	}
	if resp.User.Role != models.RoleCollegeMember {
		t.Errorf("role = %q, want college_member", resp.User.Role)
	}
	// The response carries the parent college as the effective scope.
	if resp.User.CollegeID == nil || *resp.User.CollegeID != college.ID {
		t.Errorf("collegeId = %v, want %d", resp.User.CollegeID, college.ID)
	}
}

func TestLoginEffectiveCollegeScopeForCollege(t *testing.T) {
	service, users := newAuthFixture(t)
	college := seedAccount(t, users, models.RoleCollege, "tpo@grand.edu", "secret1")

	resp, err := service.Login(context.Background(), &dto.LoginRequest{Email: "tpo@grand.edu", Password: "secret1", Role: "college"})
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if resp.User.CollegeID == nil || *resp.User.CollegeID != college.ID {
		t.Errorf("collegeId = %v, want own id %d", resp.User.CollegeID, college.ID)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	service, users := newAuthFixture(t)
	seedAccount(t, users, models.RoleCompany, "hr@techcorp.com", "secret1")

	_, err := service.Login(context.Background(), &dto.LoginRequest{Email: "hr@techcorp.com", Password: "nope", Role: "company"})
	if !errors.Is(err, apperrors.ErrInvalidCredentials) {
		t.Errorf("err = %v, want ErrInvalidCredentials", err)
	}

	_, err = service.Login(context.Background(), &dto.LoginRequest{Email: "ghost@techcorp.com", Password: "secret1", Role: "company"})
	if !errors.Is(err, apperrors.ErrInvalidCredentials) {
		t.Errorf("unknown email err = %v, want ErrInvalidCredentials", err)
	}
}

func TestChangePasswordClearsFirstLogin(t *testing.T) {
	service, users := newAuthFixture(t)
	account := seedAccount(t, users, models.RoleStudent, "asha@grand.edu", "welcome123")
	account.IsFirstLogin = true

	if err := service.ChangePassword(context.Background(), account.ID, &dto.ChangePasswordRequest{NewPassword: "fresh-secret"}); err != nil {
		t.Fatalf("ChangePassword failed: %v", err)
	}

	stored, err := users.GetByID(context.Background(), account.ID)
	if err != nil {
		t.Fatalf("account missing: %v", err)
	}
	if stored.IsFirstLogin {
		t.Error("expected isFirstLogin to be cleared")
	}
	if !auth.CheckPassword(stored.Password, "fresh-secret") {
		t.Error("expected the new password to verify")
	}
}

func TestChangePasswordTooShort(t *testing.T) {
	service, users := newAuthFixture(t)
	account := seedAccount(t, users, models.RoleStudent, "asha@grand.edu", "welcome123")

	err := service.ChangePassword(context.Background(), account.ID, &dto.ChangePasswordRequest{NewPassword: "abc"})
	if !errors.Is(err, apperrors.ErrBadRequest) {
		t.Errorf("err = %v, want ErrBadRequest", err)
	}
}

func TestUpdateProfilePartial(t *testing.T) {
	service, users := newAuthFixture(t)
	account := seedAccount(t, users, models.RoleStudent, "asha@grand.edu", "welcome123")
	account.Branch = "CSE"
	account.Phone = "111"

	newPhone := "222"
	resp, err := service.UpdateProfile(context.Background(), account, &dto.UpdateProfileRequest{Phone: &newPhone})
	if err != nil {
		t.Fatalf("UpdateProfile failed: %v", err)
	}

	if resp.Phone != "222" {
		t.Errorf("phone = %q, want 222", resp.Phone)
	}
	if resp.Branch != "CSE" {
		t.Errorf("branch = %q, want untouched CSE", resp.Branch)
	}
}
