// Package access implements the role-based data filtering and access-control
// layer: which records a given authenticated identity may see, and the
// coarser permission/scoping checks the UI gates on.
//
// Everything here fails closed: a nil user, an unknown role or an identifier
// that matches no record yields empty results, never an error or a panic.
package access

import "github.com/elimuhq/elimu/core/user"

// FilterContext is a flattened read-only projection of the authenticated
// user, the sole input to the filtering functions. Every field is a scalar
// identifier or empty.
type FilterContext struct {
	UserID          string
	Role            user.Role
	Institution     string
	InstitutionID   string
	InstitutionCode string
	Department      string
	StudentID       string
}

// NewFilterContext derives a FilterContext from usr.
// A nil user yields the zero context, which every filter resolves to empty.
func NewFilterContext(usr *user.User) FilterContext {
	if usr == nil {
		return FilterContext{}
	}
	return FilterContext{
		UserID:          usr.ID,
		Role:            usr.Role,
		Institution:     usr.Institution,
		InstitutionID:   usr.InstitutionID,
		InstitutionCode: usr.InstitutionCode,
		Department:      usr.Department,
		StudentID:       usr.StudentID,
	}
}

// matchesInstitution is the same-institution test shared by the principal,
// faculty and staff branches: either identifier matching is sufficient.
func (fc FilterContext) matchesInstitution(instID, instName string) bool {
	if fc.InstitutionID != "" && fc.InstitutionID == instID {
		return true
	}
	return fc.Institution != "" && fc.Institution == instName
}
