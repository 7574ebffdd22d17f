package models

import (
	"time"
)

// User defines the account model based on the 'users' table.
// Students and college staff carry a CollegeID back-reference to the
// user row (role college) that owns them; companies, colleges, and
// admins have none.
type User struct {
	ID           int64     `json:"id" db:"id" example:"1"`
	Name         string    `json:"name" db:"name" example:"Tech Corp"`
	Email        string    `json:"email" db:"email" example:"hr@techcorp.com"`
	Password     string    `json:"-" db:"password"` // bcrypt hash, excluded from JSON
	Role         Role      `json:"role" db:"role" example:"company"`
	CollegeID    *int64    `json:"collegeId,omitempty" db:"college_id"`
	IsFirstLogin bool      `json:"isFirstLogin" db:"is_first_login"`
	Branch       string    `json:"branch" db:"branch" example:"CSE"`
	Cgpa         string    `json:"cgpa" db:"cgpa" example:"8.2"`
	Phone        string    `json:"phone" db:"phone"`
	Skills       string    `json:"skills" db:"skills"`
	State        string    `json:"state" db:"state"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time `json:"updatedAt" db:"updated_at"`
}

// EffectiveCollegeID is the college scope an account acts under: a
// college acts as itself, students and staff act under their parent
// college. Zero means the account has no college scope.
func (u *User) EffectiveCollegeID() int64 {
	if u.Role == RoleCollege {
		return u.ID
	}
	if u.CollegeID != nil {
		return *u.CollegeID
	}
	return 0
}
