package model

import (
	"krown/shared/constant"
	"krown/shared/failure"
)

// Role is the closed set of operator roles the console recognizes. Anything
// else coming back from the upstream is treated as unauthorized.
type Role string

const (
	RoleCafeAdmin Role = "cafe_admin"
	RoleCafeStaff Role = "cafe_staff"
)

func ParseRole(raw string) (Role, error) {
	switch Role(raw) {
	case RoleCafeAdmin:
		return RoleCafeAdmin, nil
	case RoleCafeStaff:
		return RoleCafeStaff, nil
	default:
		return "", failure.Forbidden("unrecognized role") // nolint:wrapcheck
	}
}

// Landing returns where the console sends an operator whose role is valid
// but not allowed for the requested view. Staff get bounced to the redeem
// dashboard instead of the generic not-authorized page.
func (r Role) Landing() string {
	if r == RoleCafeStaff {
		return constant.RedirectStaffLanding
	}

	return constant.RedirectNotAuthorized
}

// Operator is the resolved identity behind a bearer credential, as returned
// by the upstream whoami endpoint.
type Operator struct {
	UserID       string `json:"user_id"`
	UserName     string `json:"user_name"`
	UserMobileNo string `json:"user_mobile_no"`
	UserRole     Role   `json:"user_role"`
	CafeID       string `json:"cafe_id"`
	CafeName     string `json:"cafe_name"`
}
