package services

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"
	authpolicy "github.com/singhrahul7988/Recruit-Sage/internal/app/auth"
	"github.com/singhrahul7988/Recruit-Sage/internal/app/models"
	"github.com/singhrahul7988/Recruit-Sage/internal/app/models/dto"
	"github.com/singhrahul7988/Recruit-Sage/internal/app/repositories"
	"github.com/singhrahul7988/Recruit-Sage/internal/pkg/apperrors"
	"github.com/singhrahul7988/Recruit-Sage/internal/pkg/validation"
)

// JobService manages placement drives posted by companies to partner
// colleges.
type JobService struct {
	jobRepo      repositories.IJobRepository
	authzService *authpolicy.AuthorizationService
	logger       zerolog.Logger
}

// NewJobService creates a new JobService
func NewJobService(jobRepo repositories.IJobRepository, authzService *authpolicy.AuthorizationService, logger zerolog.Logger) *JobService {
	return &JobService{
		jobRepo:      jobRepo,
		authzService: authzService,
		logger:       logger,
	}
}

// deadlineLayouts are the accepted formats for the deadline field.
var deadlineLayouts = []string{time.RFC3339, "2006-01-02"}

// CreateJob validates and creates a drive. Checks run in a fixed
// order: field shape, target college, eligibility bounds, deadline,
// rounds, branches, and last the Active partnership. The partnership
// check is authorization, so its failure is 403 while everything
// before it is 400 or 404.
func (s *JobService) CreateJob(ctx context.Context, company *models.User, req *dto.CreateJobRequest) (*dto.JobResponse, error) {
	if strings.TrimSpace(req.Title) == "" {
		return nil, apperrors.NewBadRequestError("title is required")
	}
	if strings.TrimSpace(req.Ctc) == "" {
		return nil, apperrors.NewBadRequestError("ctc is required")
	}

	if err := s.authzService.ValidateCollegeExists(ctx, req.CollegeID); err != nil {
		return nil, err
	}

	if !validation.IsValidCgpa(req.MinCgpa) {
		return nil, apperrors.NewBadRequestError("minCgpa must be between 0 and 10")
	}

	deadline, err := parseDeadline(req.Deadline)
	if err != nil {
		return nil, err
	}

	rounds := normalizeList(req.Rounds)
	if len(rounds) == 0 {
		return nil, apperrors.NewBadRequestError("at least one interview round is required")
	}
	branches := normalizeList(req.Branches)

	if err := s.authzService.ValidateActivePartnership(ctx, company.ID, req.CollegeID); err != nil {
		return nil, err
	}

	job := &models.Job{
		CompanyID:   company.ID,
		CollegeID:   req.CollegeID,
		Title:       strings.TrimSpace(req.Title),
		Description: req.Description,
		Location:    req.Location,
		Ctc:         strings.TrimSpace(req.Ctc),
		Deadline:    deadline,
		MinCgpa:     req.MinCgpa,
		Branches:    branches,
		Rounds:      rounds,
		Status:      models.JobOpen,
	}

	if err := s.jobRepo.Create(ctx, job); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("jobId", job.ID).Int64("companyId", company.ID).Int64("collegeId", req.CollegeID).Msg("Job created")

	resp := dto.NewJobResponse(job)
	return &resp, nil
}

// GetJob returns one drive to a caller with a relationship to it.
func (s *JobService) GetJob(ctx context.Context, caller *models.User, jobID int64) (*dto.JobResponse, error) {
	job, err := s.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return nil, err
	}

	if !authpolicy.CanViewJob(caller, job) {
		return nil, apperrors.ErrPermissionDenied
	}

	resp := dto.NewJobResponse(job)
	return &resp, nil
}

// ListCompanyJobs returns a company's own drives.
func (s *JobService) ListCompanyJobs(ctx context.Context, caller *models.User, companyID int64) ([]dto.JobResponse, error) {
	if caller.Role != models.RoleCompany || caller.ID != companyID {
		return nil, apperrors.ErrPermissionDenied
	}

	jobs, err := s.jobRepo.ListByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}
	return toJobResponses(jobs), nil
}

// ListCollegeFeed returns the Open drives targeting a college, for the
// college, its staff, and its students.
func (s *JobService) ListCollegeFeed(ctx context.Context, caller *models.User, collegeID int64) ([]dto.JobResponse, error) {
	if !authpolicy.CanViewJobFeed(caller, collegeID) {
		return nil, apperrors.ErrPermissionDenied
	}

	jobs, err := s.jobRepo.ListOpenByCollege(ctx, collegeID)
	if err != nil {
		return nil, err
	}
	return toJobResponses(jobs), nil
}

func parseDeadline(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	for _, layout := range deadlineLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, apperrors.NewBadRequestError("deadline must be a valid date")
}

// normalizeList splits comma-separated entries, trims whitespace, and
// drops empties.
func normalizeList(values []string) []string {
	var out []string
	for _, value := range values {
		for _, part := range strings.Split(value, ",") {
			if trimmed := strings.TrimSpace(part); trimmed != "" {
				out = append(out, trimmed)
			}
		}
	}
	return out
}

func toJobResponses(jobs []*models.Job) []dto.JobResponse {
	responses := make([]dto.JobResponse, 0, len(jobs))
	for _, job := range jobs {
		responses = append(responses, dto.NewJobResponse(job))
	}
	return responses
}
