package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/singhrahul7988/Recruit-Sage/internal/app/models"
	"github.com/singhrahul7988/Recruit-Sage/internal/pkg/apperrors"
)

// IJobRepository defines the interface for job database operations
type IJobRepository interface {
	Create(ctx context.Context, job *models.Job) error
	GetByID(ctx context.Context, id int64) (*models.Job, error)
	ListByCompany(ctx context.Context, companyID int64) ([]*models.Job, error)
	ListOpenByCollege(ctx context.Context, collegeID int64) ([]*models.Job, error)
}

// JobRepository handles job database operations
type JobRepository struct {
	db *pgxpool.Pool
}

// NewJobRepository creates a new JobRepository
func NewJobRepository(db *pgxpool.Pool) *JobRepository {
	return &JobRepository{db: db}
}

// Create inserts a new job drive.
func (r *JobRepository) Create(ctx context.Context, job *models.Job) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO jobs (company_id, college_id, title, description, location, ctc, deadline, min_cgpa, branches, rounds, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, created_at`,
		job.CompanyID, job.CollegeID, job.Title, job.Description, job.Location,
		job.Ctc, job.Deadline, job.MinCgpa, job.Branches, job.Rounds, job.Status).
		Scan(&job.ID, &job.CreatedAt)

	if err != nil {
		return fmt.Errorf("error creating job: %w", err)
	}
	return nil
}

// GetByID retrieves a job with its company and college populated.
func (r *JobRepository) GetByID(ctx context.Context, id int64) (*models.Job, error) {
	job := &models.Job{
		Company: &models.PublicUser{},
		College: &models.PublicUser{},
	}
	err := r.db.QueryRow(ctx, `
		SELECT j.id, j.company_id, j.college_id, j.title, j.description, j.location,
		       j.ctc, j.deadline, j.min_cgpa, j.branches, j.rounds, j.status, j.created_at,
		       comp.id, comp.name, comp.email, comp.role,
		       col.id, col.name, col.email, col.role
		FROM jobs j
		JOIN users comp ON comp.id = j.company_id
		JOIN users col ON col.id = j.college_id
		WHERE j.id = $1`, id).Scan(
		&job.ID, &job.CompanyID, &job.CollegeID, &job.Title, &job.Description, &job.Location,
		&job.Ctc, &job.Deadline, &job.MinCgpa, &job.Branches, &job.Rounds, &job.Status, &job.CreatedAt,
		&job.Company.ID, &job.Company.Name, &job.Company.Email, &job.Company.Role,
		&job.College.ID, &job.College.Name, &job.College.Email, &job.College.Role)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrJobNotFound
		}
		return nil, fmt.Errorf("error getting job: %w", err)
	}
	return job, nil
}

// ListByCompany returns a company's jobs, newest first, with the
// target college populated.
func (r *JobRepository) ListByCompany(ctx context.Context, companyID int64) ([]*models.Job, error) {
	rows, err := r.db.Query(ctx, `
		SELECT j.id, j.company_id, j.college_id, j.title, j.description, j.location,
		       j.ctc, j.deadline, j.min_cgpa, j.branches, j.rounds, j.status, j.created_at,
		       col.id, col.name, col.email, col.role
		FROM jobs j
		JOIN users col ON col.id = j.college_id
		WHERE j.company_id = $1
		ORDER BY j.created_at DESC`, companyID)
	if err != nil {
		return nil, fmt.Errorf("error listing company jobs: %w", err)
	}
	defer rows.Close()

	var jobs []*models.Job
	for rows.Next() {
		job := &models.Job{College: &models.PublicUser{}}
		err := rows.Scan(
			&job.ID, &job.CompanyID, &job.CollegeID, &job.Title, &job.Description, &job.Location,
			&job.Ctc, &job.Deadline, &job.MinCgpa, &job.Branches, &job.Rounds, &job.Status, &job.CreatedAt,
			&job.College.ID, &job.College.Name, &job.College.Email, &job.College.Role)
		if err != nil {
			return nil, fmt.Errorf("error scanning job row: %w", err)
		}
		jobs = append(jobs, job)
	}
	return jobs, rows.Err()
}

// ListOpenByCollege returns the Open jobs targeting a college, newest
// first, with the posting company populated.
func (r *JobRepository) ListOpenByCollege(ctx context.Context, collegeID int64) ([]*models.Job, error) {
	rows, err := r.db.Query(ctx, `
		SELECT j.id, j.company_id, j.college_id, j.title, j.description, j.location,
		       j.ctc, j.deadline, j.min_cgpa, j.branches, j.rounds, j.status, j.created_at,
		       comp.id, comp.name, comp.email, comp.role
		FROM jobs j
		JOIN users comp ON comp.id = j.company_id
		WHERE j.college_id = $1 AND j.status = $2
		ORDER BY j.created_at DESC`, collegeID, models.JobOpen)
	if err != nil {
		return nil, fmt.Errorf("error listing college jobs: %w", err)
	}
	defer rows.Close()

	var jobs []*models.Job
	for rows.Next() {
		job := &models.Job{Company: &models.PublicUser{}}
		err := rows.Scan(
			&job.ID, &job.CompanyID, &job.CollegeID, &job.Title, &job.Description, &job.Location,
			&job.Ctc, &job.Deadline, &job.MinCgpa, &job.Branches, &job.Rounds, &job.Status, &job.CreatedAt,
			&job.Company.ID, &job.Company.Name, &job.Company.Email, &job.Company.Role)
		if err != nil {
			return nil, fmt.Errorf("error scanning job row: %w", err)
		}
		jobs = append(jobs, job)
	}
	return jobs, rows.Err()
}
