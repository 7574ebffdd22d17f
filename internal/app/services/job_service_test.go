package services

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	authpolicy "github.com/singhrahul7988/Recruit-Sage/internal/app/auth"
	"github.com/singhrahul7988/Recruit-Sage/internal/app/models"
	"github.com/singhrahul7988/Recruit-Sage/internal/app/models/dto"
	"github.com/singhrahul7988/Recruit-Sage/internal/pkg/apperrors"
)

type jobFixture struct {
	service *JobService
	users   *fakeUserRepo
	pairs   *fakePartnershipRepo
	jobs    *fakeJobRepo
	company *models.User
	college *models.User
}

func newJobFixture(t *testing.T) *jobFixture {
	t.Helper()
	users := newFakeUserRepo()
	pairs := newFakePartnershipRepo()
	jobs := newFakeJobRepo()
	authz := authpolicy.NewAuthorizationService(users, pairs)

	return &jobFixture{
		service: NewJobService(jobs, authz, zerolog.Nop()),
		users:   users,
		pairs:   pairs,
		jobs:    jobs,
		company: users.mustAddUser(&models.User{Name: "Tech Corp", Email: "hr@techcorp.com", Role: models.RoleCompany}),
		college: users.mustAddUser(&models.User{Name: "Grand College", Email: "tpo@grand.edu", Role: models.RoleCollege}),
	}
}

func (f *jobFixture) activatePartnership(t *testing.T) {
	t.Helper()
	p := &models.Partnership{
		RequesterID: f.company.ID,
		RecipientID: f.college.ID,
		Status:      models.PartnershipActive,
		PairKey:     models.PairKey(f.company.ID, f.college.ID),
	}
	if err := f.pairs.Create(context.Background(), p); err != nil {
		t.Fatalf("failed to seed partnership: %v", err)
	}
}

func validJobRequest(collegeID int64) *dto.CreateJobRequest {
	return &dto.CreateJobRequest{
		CollegeID: collegeID,
		Title:     "SDE",
		Ctc:       "10 LPA",
		Deadline:  "2027-01-01",
		MinCgpa:   7,
		Branches:  dto.StringList{"CSE"},
		Rounds:    dto.StringList{"Test,HR"},
	}
}

func TestCreateJobRequiresActivePartnership(t *testing.T) {
	f := newJobFixture(t)

	// No partnership at all.
	_, err := f.service.CreateJob(context.Background(), f.company, validJobRequest(f.college.ID))
	if !errors.Is(err, apperrors.ErrNoActivePartnership) {
		t.Errorf("no partnership err = %v, want ErrNoActivePartnership", err)
	}

	// Pending is not enough.
	p := &models.Partnership{
		RequesterID: f.company.ID,
		RecipientID: f.college.ID,
		Status:      models.PartnershipPending,
		PairKey:     models.PairKey(f.company.ID, f.college.ID),
	}
	if err := f.pairs.Create(context.Background(), p); err != nil {
		t.Fatalf("failed to seed partnership: %v", err)
	}
	_, err = f.service.CreateJob(context.Background(), f.company, validJobRequest(f.college.ID))
	if !errors.Is(err, apperrors.ErrNoActivePartnership) {
		t.Errorf("pending err = %v, want ErrNoActivePartnership", err)
	}

	// Rejected is not enough either.
	if err := f.pairs.UpdateStatus(context.Background(), p.ID, models.PartnershipRejected); err != nil {
		t.Fatalf("failed to update partnership: %v", err)
	}
	_, err = f.service.CreateJob(context.Background(), f.company, validJobRequest(f.college.ID))
	if !errors.Is(err, apperrors.ErrNoActivePartnership) {
		t.Errorf("rejected err = %v, want ErrNoActivePartnership", err)
	}
}

func TestCreateJobSucceedsWithActivePartnership(t *testing.T) {
	f := newJobFixture(t)
	f.activatePartnership(t)

	resp, err := f.service.CreateJob(context.Background(), f.company, validJobRequest(f.college.ID))
	if err != nil {
		t.Fatalf("CreateJob failed: %v", err)
	}

	if resp.Status != models.JobOpen {
		t.Errorf("status = %q, want %q", resp.Status, models.JobOpen)
	}
	if len(resp.Rounds) != 2 || resp.Rounds[0] != "Test" || resp.Rounds[1] != "HR" {
		t.Errorf("rounds = %v, want [Test HR]", resp.Rounds)
	}
	if len(resp.Branches) != 1 || resp.Branches[0] != "CSE" {
		t.Errorf("branches = %v, want [CSE]", resp.Branches)
	}
}

func TestCreateJobUnknownCollege(t *testing.T) {
	f := newJobFixture(t)

	_, err := f.service.CreateJob(context.Background(), f.company, validJobRequest(9999))
	if !errors.Is(err, apperrors.ErrCollegeNotFound) {
		t.Errorf("err = %v, want ErrCollegeNotFound", err)
	}

	// A company id is not a college.
	_, err = f.service.CreateJob(context.Background(), f.company, validJobRequest(f.company.ID))
	if !errors.Is(err, apperrors.ErrCollegeNotFound) {
		t.Errorf("wrong role err = %v, want ErrCollegeNotFound", err)
	}
}

func TestCreateJobValidation(t *testing.T) {
	f := newJobFixture(t)
	f.activatePartnership(t)

	cases := []struct {
		name   string
		mutate func(*dto.CreateJobRequest)
	}{
		{"missing title", func(r *dto.CreateJobRequest) { r.Title = "  " }},
		{"missing ctc", func(r *dto.CreateJobRequest) { r.Ctc = "" }},
		{"cgpa above scale", func(r *dto.CreateJobRequest) { r.MinCgpa = 10.5 }},
		{"negative cgpa", func(r *dto.CreateJobRequest) { r.MinCgpa = -1 }},
		{"bad deadline", func(r *dto.CreateJobRequest) { r.Deadline = "soon" }},
		{"empty rounds", func(r *dto.CreateJobRequest) { r.Rounds = dto.StringList{" , ,"} }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validJobRequest(f.college.ID)
			tc.mutate(req)
			_, err := f.service.CreateJob(context.Background(), f.company, req)
			if !errors.Is(err, apperrors.ErrBadRequest) {
				t.Errorf("err = %v, want ErrBadRequest", err)
			}
		})
	}
}

func TestCreateJobEmptyBranchesMeansAllEligible(t *testing.T) {
	f := newJobFixture(t)
	f.activatePartnership(t)

	req := validJobRequest(f.college.ID)
	req.Branches = nil

	resp, err := f.service.CreateJob(context.Background(), f.company, req)
	if err != nil {
		t.Fatalf("CreateJob failed: %v", err)
	}
	if len(resp.Branches) != 0 {
		t.Errorf("branches = %v, want empty", resp.Branches)
	}
}

func TestGetJobVisibility(t *testing.T) {
	f := newJobFixture(t)
	f.activatePartnership(t)

	created, err := f.service.CreateJob(context.Background(), f.company, validJobRequest(f.college.ID))
	if err != nil {
		t.Fatalf("CreateJob failed: %v", err)
	}

	student := f.users.mustAddUser(&models.User{Name: "Student", Email: "s@grand.edu", Role: models.RoleStudent, CollegeID: &f.college.ID})
	staff := f.users.mustAddUser(&models.User{Name: "Staff", Email: "staff@grand.edu", Role: models.RoleCollegeMember, CollegeID: &f.college.ID})
	outsider := f.users.mustAddUser(&models.User{Name: "Other Corp", Email: "hr@other.com", Role: models.RoleCompany})

	for _, caller := range []*models.User{f.company, f.college, student, staff} {
		if _, err := f.service.GetJob(context.Background(), caller, created.ID); err != nil {
			t.Errorf("GetJob as %s failed: %v", caller.Role, err)
		}
	}

	if _, err := f.service.GetJob(context.Background(), outsider, created.ID); !errors.Is(err, apperrors.ErrPermissionDenied) {
		t.Errorf("outsider err = %v, want ErrPermissionDenied", err)
	}

	if _, err := f.service.GetJob(context.Background(), f.company, 9999); !errors.Is(err, apperrors.ErrJobNotFound) {
		t.Errorf("missing job err = %v, want ErrJobNotFound", err)
	}
}

func TestListCompanyJobsOwnerOnly(t *testing.T) {
	f := newJobFixture(t)
	f.activatePartnership(t)
	if _, err := f.service.CreateJob(context.Background(), f.company, validJobRequest(f.college.ID)); err != nil {
		t.Fatalf("CreateJob failed: %v", err)
	}

	jobs, err := f.service.ListCompanyJobs(context.Background(), f.company, f.company.ID)
	if err != nil {
		t.Fatalf("ListCompanyJobs failed: %v", err)
	}
	if len(jobs) != 1 {
		t.Errorf("job count = %d, want 1", len(jobs))
	}

	if _, err := f.service.ListCompanyJobs(context.Background(), f.college, f.company.ID); !errors.Is(err, apperrors.ErrPermissionDenied) {
		t.Errorf("non-owner err = %v, want ErrPermissionDenied", err)
	}
}

func TestListCollegeFeedScoping(t *testing.T) {
	f := newJobFixture(t)
	f.activatePartnership(t)
	if _, err := f.service.CreateJob(context.Background(), f.company, validJobRequest(f.college.ID)); err != nil {
		t.Fatalf("CreateJob failed: %v", err)
	}

	student := f.users.mustAddUser(&models.User{Name: "Student", Email: "s@grand.edu", Role: models.RoleStudent, CollegeID: &f.college.ID})
	otherCollege := f.users.mustAddUser(&models.User{Name: "Other College", Email: "tpo@other.edu", Role: models.RoleCollege})

	feed, err := f.service.ListCollegeFeed(context.Background(), student, f.college.ID)
	if err != nil {
		t.Fatalf("ListCollegeFeed failed: %v", err)
	}
	if len(feed) != 1 {
		t.Errorf("feed size = %d, want 1", len(feed))
	}

	// A student cannot read another college's feed, nor can the
	// posting company read the feed at all.
	if _, err := f.service.ListCollegeFeed(context.Background(), student, otherCollege.ID); !errors.Is(err, apperrors.ErrPermissionDenied) {
		t.Errorf("cross-college err = %v, want ErrPermissionDenied", err)
	}
	if _, err := f.service.ListCollegeFeed(context.Background(), f.company, f.college.ID); !errors.Is(err, apperrors.ErrPermissionDenied) {
		t.Errorf("company err = %v, want ErrPermissionDenied", err)
	}
}
