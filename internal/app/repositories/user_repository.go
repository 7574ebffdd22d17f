package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/singhrahul7988/Recruit-Sage/internal/app/models"
	"github.com/singhrahul7988/Recruit-Sage/internal/pkg/apperrors"
	"github.com/singhrahul7988/Recruit-Sage/internal/pkg/dberrors"
)

// IUserRepository defines the interface for user-related database operations
type IUserRepository interface {
	Create(ctx context.Context, user *models.User) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	UpdatePassword(ctx context.Context, userID int64, hashedPassword string) error
	UpdateProfile(ctx context.Context, user *models.User) error
	Delete(ctx context.Context, id int64) error
	ListByRole(ctx context.Context, role models.Role) ([]*models.User, error)
	ListByCollegeAndRole(ctx context.Context, collegeID int64, role models.Role) ([]*models.User, error)
	CollegeTeamIDs(ctx context.Context, collegeID int64) ([]int64, error)
}

const userColumns = `id, name, email, password, role, college_id, is_first_login, branch, cgpa, phone, skills, state, created_at, updated_at`

// UserRepository handles user database operations
type UserRepository struct {
	db *pgxpool.Pool
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: db}
}

func scanUser(row pgx.Row) (*models.User, error) {
	user := &models.User{}
	err := row.Scan(
		&user.ID, &user.Name, &user.Email, &user.Password, &user.Role,
		&user.CollegeID, &user.IsFirstLogin, &user.Branch, &user.Cgpa,
		&user.Phone, &user.Skills, &user.State, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("error scanning user: %w", err)
	}
	return user, nil
}

// Create inserts a new user and returns its id. A duplicate email
// surfaces as apperrors.ErrEmailAlreadyExists regardless of which
// request wins the insert race.
func (r *UserRepository) Create(ctx context.Context, user *models.User) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, `
		INSERT INTO users (name, email, password, role, college_id, is_first_login, branch, cgpa, phone, skills, state)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id`,
		user.Name, user.Email, user.Password, user.Role, user.CollegeID,
		user.IsFirstLogin, user.Branch, user.Cgpa, user.Phone, user.Skills, user.State).Scan(&id)

	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "users_email_key") {
			return 0, apperrors.ErrEmailAlreadyExists
		}
		return 0, fmt.Errorf("error creating user: %w", err)
	}

	user.ID = id
	return id, nil
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	return scanUser(r.db.QueryRow(ctx, `
		SELECT `+userColumns+`
		FROM users
		WHERE id = $1`, id))
}

// GetByEmail retrieves a user by email
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return scanUser(r.db.QueryRow(ctx, `
		SELECT `+userColumns+`
		FROM users
		WHERE email = $1`, email))
}

// EmailExists checks if an email already exists
func (r *UserRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`,
		email).Scan(&exists)

	if err != nil {
		return false, fmt.Errorf("error checking email: %w", err)
	}

	return exists, nil
}

// UpdatePassword sets a new password hash and clears the first-login flag.
func (r *UserRepository) UpdatePassword(ctx context.Context, userID int64, hashedPassword string) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE users
		SET password = $1, is_first_login = FALSE, updated_at = NOW()
		WHERE id = $2`,
		hashedPassword, userID)

	if err != nil {
		return fmt.Errorf("error updating password: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}
	return nil
}

// UpdateProfile updates the mutable profile fields of a user.
func (r *UserRepository) UpdateProfile(ctx context.Context, user *models.User) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE users
		SET name = $1, phone = $2, branch = $3, cgpa = $4, skills = $5, updated_at = NOW()
		WHERE id = $6`,
		user.Name, user.Phone, user.Branch, user.Cgpa, user.Skills, user.ID)

	if err != nil {
		return fmt.Errorf("error updating profile: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}
	return nil
}

// Delete removes a user row.
func (r *UserRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}
	return nil
}

// ListByRole returns every user carrying the given role.
func (r *UserRepository) ListByRole(ctx context.Context, role models.Role) ([]*models.User, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+userColumns+`
		FROM users
		WHERE role = $1
		ORDER BY name`, role)
	if err != nil {
		return nil, fmt.Errorf("error listing users by role: %w", err)
	}
	defer rows.Close()

	return collectUsers(rows)
}

// ListByCollegeAndRole returns users belonging to a college with the
// given role (student roster or staff team).
func (r *UserRepository) ListByCollegeAndRole(ctx context.Context, collegeID int64, role models.Role) ([]*models.User, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+userColumns+`
		FROM users
		WHERE college_id = $1 AND role = $2
		ORDER BY name`, collegeID, role)
	if err != nil {
		return nil, fmt.Errorf("error listing college users: %w", err)
	}
	defer rows.Close()

	return collectUsers(rows)
}

// CollegeTeamIDs returns the college owner id plus every
// college_member id, the recipient set for college-wide notifications.
func (r *UserRepository) CollegeTeamIDs(ctx context.Context, collegeID int64) ([]int64, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id FROM users
		WHERE id = $1 OR (college_id = $1 AND role = $2)`,
		collegeID, models.RoleCollegeMember)
	if err != nil {
		return nil, fmt.Errorf("error listing college team ids: %w", err)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("error scanning team id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func collectUsers(rows pgx.Rows) ([]*models.User, error) {
	var users []*models.User
	for rows.Next() {
		user := &models.User{}
		err := rows.Scan(
			&user.ID, &user.Name, &user.Email, &user.Password, &user.Role,
			&user.CollegeID, &user.IsFirstLogin, &user.Branch, &user.Cgpa,
			&user.Phone, &user.Skills, &user.State, &user.CreatedAt, &user.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("error scanning user row: %w", err)
		}
		users = append(users, user)
	}
	return users, rows.Err()
}
