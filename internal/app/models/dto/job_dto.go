package dto

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/singhrahul7988/Recruit-Sage/internal/app/models"
)

// StringList accepts either a JSON array of strings or a single
// comma-separated string. Drive forms submit rounds both ways.
type StringList []string

// UnmarshalJSON implements json.Unmarshaler
func (s *StringList) UnmarshalJSON(data []byte) error {
	if len(data) == 0 || string(data) == "null" {
		*s = nil
		return nil
	}
	if data[0] == '[' {
		var list []string
		if err := json.Unmarshal(data, &list); err != nil {
			return err
		}
		*s = list
		return nil
	}
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("value must be a string or array of strings: %w", err)
	}
	*s = StringList{raw}
	return nil
}

// CreateJobRequest represents a new placement drive posted by a
// company. Deadline is an ISO date string; rounds may arrive as a
// comma-separated string or an array.
type CreateJobRequest struct {
	CollegeID   int64      `json:"collegeId" binding:"required,min=1"`
	Title       string     `json:"title" binding:"required"`
	Description string     `json:"description"`
	Location    string     `json:"location"`
	Ctc         string     `json:"ctc" binding:"required"`
	Deadline    string     `json:"deadline" binding:"required"`
	MinCgpa     float64    `json:"minCgpa"`
	Branches    StringList `json:"branches"`
	Rounds      StringList `json:"rounds" binding:"required"`
}

// JobResponse represents a placement drive returned to clients
type JobResponse struct {
	ID          int64              `json:"id"`
	CompanyID   int64              `json:"companyId"`
	CollegeID   int64              `json:"collegeId"`
	Title       string             `json:"title"`
	Description string             `json:"description,omitempty"`
	Location    string             `json:"location,omitempty"`
	Ctc         string             `json:"ctc"`
	Deadline    time.Time          `json:"deadline"`
	MinCgpa     float64            `json:"minCgpa"`
	Branches    []string           `json:"branches"`
	Rounds      []string           `json:"rounds"`
	Status      models.JobStatus   `json:"status"`
	Company     *models.PublicUser `json:"company,omitempty"`
	College     *models.PublicUser `json:"college,omitempty"`
	CreatedAt   time.Time          `json:"createdAt"`
}

// NewJobResponse maps a job model to its client representation
func NewJobResponse(job *models.Job) JobResponse {
	return JobResponse{
		ID:          job.ID,
		CompanyID:   job.CompanyID,
		CollegeID:   job.CollegeID,
		Title:       job.Title,
		Description: job.Description,
		Location:    job.Location,
		Ctc:         job.Ctc,
		Deadline:    job.Deadline,
		MinCgpa:     job.MinCgpa,
		Branches:    job.Branches,
		Rounds:      job.Rounds,
		Status:      job.Status,
		Company:     job.Company,
		College:     job.College,
		CreatedAt:   job.CreatedAt,
	}
}
