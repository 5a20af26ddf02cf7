package entities

import (
	"errors"
	"strings"
)

var ErrUnknownStaffRole = errors.New("unknown staff role")

// StaffRole is an ordered capability set:
//
//	reviewer < senior_reviewer < admin < super_admin
//
// State-machine operations check capabilities explicitly at their boundary
// rather than comparing role strings inline.

type StaffRole string

const (
	RoleReviewer       StaffRole = "reviewer"
	RoleSeniorReviewer StaffRole = "senior_reviewer"
	RoleAdmin          StaffRole = "admin"
	RoleSuperAdmin     StaffRole = "super_admin"
)

var roleRank = map[StaffRole]int{
	RoleReviewer:       1,
	RoleSeniorReviewer: 2,
	RoleAdmin:          3,
	RoleSuperAdmin:     4,
}

func ParseStaffRole(s string) (StaffRole, error) {
	role := StaffRole(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := roleRank[role]; !ok {
		return "", ErrUnknownStaffRole
	}
	return role, nil
}

// AtLeast reports whether the role carries at least the capabilities of min.
func (r StaffRole) AtLeast(min StaffRole) bool {
	return roleRank[r] >= roleRank[min]
}
