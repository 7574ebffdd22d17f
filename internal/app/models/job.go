package models

import (
	"time"
)

// Job defines a drive posted by a company against one partnered
// college. Creation requires an Active partnership between CompanyID
// and CollegeID; the check happens at creation time only.
type Job struct {
	ID          int64       `json:"id" db:"id"`
	CompanyID   int64       `json:"companyId" db:"company_id"`
	CollegeID   int64       `json:"collegeId" db:"college_id"`
	Title       string      `json:"title" db:"title" example:"SDE Intern"`
	Description string      `json:"description" db:"description"`
	Location    string      `json:"location" db:"location"`
	Ctc         string      `json:"ctc" db:"ctc" example:"10 LPA"`
	Deadline    time.Time   `json:"deadline" db:"deadline"`
	MinCgpa     float64     `json:"minCgpa" db:"min_cgpa" example:"7"`
	Branches    []string    `json:"branches" db:"branches"` // empty means all branches eligible
	Rounds      []string    `json:"rounds" db:"rounds"`
	Status      JobStatus   `json:"status" db:"status"`
	CreatedAt   time.Time   `json:"createdAt" db:"created_at"`
	Company     *PublicUser `json:"company,omitempty"` // Relation, no db tag
	College     *PublicUser `json:"college,omitempty"` // Relation, no db tag
}
