// Package models contains the persisted domain types of the placement portal.
package models

// Role defines the account role stored on a user row.
type Role string

const (
	RoleStudent       Role = "student"
	RoleCompany       Role = "company"
	RoleCollege       Role = "college"
	RoleCollegeMember Role = "college_member"
	RoleAdmin         Role = "admin"
)

// Valid reports whether the role is one of the known account roles.
func (r Role) Valid() bool {
	switch r {
	case RoleStudent, RoleCompany, RoleCollege, RoleCollegeMember, RoleAdmin:
		return true
	}
	return false
}

// PartnershipStatus is the lifecycle state of a company/college handshake.
type PartnershipStatus string

const (
	PartnershipPending  PartnershipStatus = "Pending"
	PartnershipActive   PartnershipStatus = "Active"
	PartnershipRejected PartnershipStatus = "Rejected"
)

// JobStatus is the lifecycle state of a job drive. Nothing in the
// current system ever transitions a job away from Open.
type JobStatus string

const (
	JobOpen JobStatus = "Open"
)
