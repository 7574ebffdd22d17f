package services

import (
	"context"
	"sort"
	"time"

	"github.com/singhrahul7988/Recruit-Sage/internal/app/models"
	"github.com/singhrahul7988/Recruit-Sage/internal/pkg/apperrors"
)

// In-memory repository fakes. They enforce the same uniqueness rules
// as the SQL schema so service tests exercise real conflict paths.

type fakeUserRepo struct {
	users  map[int64]*models.User
	nextID int64
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[int64]*models.User)}
}

func (r *fakeUserRepo) Create(_ context.Context, user *models.User) (int64, error) {
	for _, existing := range r.users {
		if existing.Email == user.Email {
			return 0, apperrors.ErrEmailAlreadyExists
		}
	}
	r.nextID++
	user.ID = r.nextID
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	copied := *user
	r.users[user.ID] = &copied
	return user.ID, nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id int64) (*models.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	copied := *user
	return &copied, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

func (r *fakeUserRepo) EmailExists(_ context.Context, email string) (bool, error) {
	for _, user := range r.users {
		if user.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeUserRepo) UpdatePassword(_ context.Context, userID int64, hashedPassword string) error {
	user, ok := r.users[userID]
	if !ok {
		return apperrors.ErrUserNotFound
	}
	user.Password = hashedPassword
	user.IsFirstLogin = false
	return nil
}

func (r *fakeUserRepo) UpdateProfile(_ context.Context, updated *models.User) error {
	user, ok := r.users[updated.ID]
	if !ok {
		return apperrors.ErrUserNotFound
	}
	user.Name = updated.Name
	user.Phone = updated.Phone
	user.Branch = updated.Branch
	user.Cgpa = updated.Cgpa
	user.Skills = updated.Skills
	return nil
}

func (r *fakeUserRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.users[id]; !ok {
		return apperrors.ErrUserNotFound
	}
	delete(r.users, id)
	return nil
}

func (r *fakeUserRepo) ListByRole(_ context.Context, role models.Role) ([]*models.User, error) {
	var out []*models.User
	for _, user := range r.users {
		if user.Role == role {
			copied := *user
			out = append(out, &copied)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeUserRepo) ListByCollegeAndRole(_ context.Context, collegeID int64, role models.Role) ([]*models.User, error) {
	var out []*models.User
	for _, user := range r.users {
		if user.Role == role && user.CollegeID != nil && *user.CollegeID == collegeID {
			copied := *user
			out = append(out, &copied)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeUserRepo) CollegeTeamIDs(_ context.Context, collegeID int64) ([]int64, error) {
	ids := []int64{collegeID}
	for _, user := range r.users {
		if user.Role == models.RoleCollegeMember && user.CollegeID != nil && *user.CollegeID == collegeID {
			ids = append(ids, user.ID)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids, nil
}

// mustAddUser seeds an account directly, bypassing validation.
func (r *fakeUserRepo) mustAddUser(user *models.User) *models.User {
	r.nextID++
	user.ID = r.nextID
	r.users[user.ID] = user
	return user
}

type fakePartnershipRepo struct {
	partnerships map[int64]*models.Partnership
	nextID       int64
}

func newFakePartnershipRepo() *fakePartnershipRepo {
	return &fakePartnershipRepo{partnerships: make(map[int64]*models.Partnership)}
}

func (r *fakePartnershipRepo) Create(_ context.Context, p *models.Partnership) error {
	for _, existing := range r.partnerships {
		if existing.PairKey == p.PairKey {
			return apperrors.ErrPartnershipExists
		}
	}
	r.nextID++
	p.ID = r.nextID
	p.CreatedAt = time.Now()
	p.UpdatedAt = p.CreatedAt
	copied := *p
	r.partnerships[p.ID] = &copied
	return nil
}

func (r *fakePartnershipRepo) GetByID(_ context.Context, id int64) (*models.Partnership, error) {
	p, ok := r.partnerships[id]
	if !ok {
		return nil, apperrors.ErrPartnershipNotFound
	}
	copied := *p
	return &copied, nil
}

func (r *fakePartnershipRepo) FindBetween(_ context.Context, a, b int64) (*models.Partnership, error) {
	key := models.PairKey(a, b)
	for _, p := range r.partnerships {
		if p.PairKey == key {
			copied := *p
			return &copied, nil
		}
	}
	return nil, apperrors.ErrPartnershipNotFound
}

func (r *fakePartnershipRepo) Reopen(_ context.Context, id, requesterID, recipientID int64) error {
	p, ok := r.partnerships[id]
	if !ok {
		return apperrors.ErrPartnershipNotFound
	}
	p.Status = models.PartnershipPending
	p.RequesterID = requesterID
	p.RecipientID = recipientID
	p.UpdatedAt = time.Now()
	return nil
}

func (r *fakePartnershipRepo) UpdateStatus(_ context.Context, id int64, status models.PartnershipStatus) error {
	p, ok := r.partnerships[id]
	if !ok {
		return apperrors.ErrPartnershipNotFound
	}
	p.Status = status
	p.UpdatedAt = time.Now()
	return nil
}

func (r *fakePartnershipRepo) ListForUser(_ context.Context, userID int64) ([]*models.Partnership, error) {
	var out []*models.Partnership
	for _, p := range r.partnerships {
		if p.RequesterID == userID || p.RecipientID == userID {
			copied := *p
			out = append(out, &copied)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakePartnershipRepo) HasActiveBetween(_ context.Context, a, b int64) (bool, error) {
	key := models.PairKey(a, b)
	for _, p := range r.partnerships {
		if p.PairKey == key && p.Status == models.PartnershipActive {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakePartnershipRepo) count() int {
	return len(r.partnerships)
}

type fakeJobRepo struct {
	jobs   map[int64]*models.Job
	nextID int64
}

func newFakeJobRepo() *fakeJobRepo {
	return &fakeJobRepo{jobs: make(map[int64]*models.Job)}
}

func (r *fakeJobRepo) Create(_ context.Context, job *models.Job) error {
	r.nextID++
	job.ID = r.nextID
	job.CreatedAt = time.Now()
	copied := *job
	r.jobs[job.ID] = &copied
	return nil
}

func (r *fakeJobRepo) GetByID(_ context.Context, id int64) (*models.Job, error) {
	job, ok := r.jobs[id]
	if !ok {
		return nil, apperrors.ErrJobNotFound
	}
	copied := *job
	return &copied, nil
}

func (r *fakeJobRepo) ListByCompany(_ context.Context, companyID int64) ([]*models.Job, error) {
	var out []*models.Job
	for _, job := range r.jobs {
		if job.CompanyID == companyID {
			copied := *job
			out = append(out, &copied)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeJobRepo) ListOpenByCollege(_ context.Context, collegeID int64) ([]*models.Job, error) {
	var out []*models.Job
	for _, job := range r.jobs {
		if job.CollegeID == collegeID && job.Status == models.JobOpen {
			copied := *job
			out = append(out, &copied)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

type notificationBatch struct {
	userIDs []int64
	kind    string
	title   string
	detail  string
}

type fakeNotificationRepo struct {
	batches []notificationBatch
}

func newFakeNotificationRepo() *fakeNotificationRepo {
	return &fakeNotificationRepo{}
}

func (r *fakeNotificationRepo) CreateForUsers(_ context.Context, userIDs []int64, notifType, title, detail string) error {
	r.batches = append(r.batches, notificationBatch{userIDs: userIDs, kind: notifType, title: title, detail: detail})
	return nil
}

func (r *fakeNotificationRepo) ListByUser(_ context.Context, userID int64) ([]*models.Notification, error) {
	var out []*models.Notification
	var id int64
	for _, batch := range r.batches {
		for _, uid := range batch.userIDs {
			if uid == userID {
				id++
				out = append(out, &models.Notification{
					ID:     id,
					UserID: userID,
					Type:   batch.kind,
					Title:  batch.title,
					Detail: batch.detail,
				})
			}
		}
	}
	return out, nil
}

func (r *fakeNotificationRepo) MarkAllRead(_ context.Context, _ int64) error {
	return nil
}
