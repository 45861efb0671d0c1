package access

import (
	"github.com/elimuhq/elimu/core/academics"
	"github.com/elimuhq/elimu/core/user"
)

// userInstitutionCode picks the first populated institution identifier, in
// order of preference: code, id, name.
func userInstitutionCode(usr *user.User) string {
	if usr.InstitutionCode != "" {
		return usr.InstitutionCode
	}
	if usr.InstitutionID != "" {
		return usr.InstitutionID
	}
	return usr.Institution
}

// FilterInstitutionsByRole returns the institutions usr may see.
// super-admin sees all; every other role is scoped to exactly one
// institution; a user with no scoping identifiers sees none.
func FilterInstitutionsByRole(institutions []academics.Institution, usr *user.User) []academics.Institution {
	if usr == nil {
		return []academics.Institution{}
	}
	if usr.Role == user.RoleSuperAdmin {
		return institutions
	}

	code := userInstitutionCode(usr)
	if code == "" {
		return []academics.Institution{}
	}

	out := make([]academics.Institution, 0, 1)
	for _, inst := range institutions {
		if inst.Code == code || inst.ID == code {
			out = append(out, inst)
		}
	}
	return out
}

// CanAccessInstitution reports whether usr may access the institution
// identified by code. Comparison is exact: case- and type-sensitive.
// A user with no scoping identifiers is denied outright; an undefined
// user code never equals any code, not even an empty one.
func CanAccessInstitution(code string, usr *user.User) bool {
	if usr == nil {
		return false
	}
	if usr.Role == user.RoleSuperAdmin {
		return true
	}
	userCode := userInstitutionCode(usr)
	if userCode == "" {
		return false
	}
	return userCode == code
}

var (
	managementRoles = map[user.Role]struct{}{
		user.RoleSuperAdmin:  {},
		user.RoleAdmin:       {},
		user.RolePrincipal:   {},
		user.RoleInstitution: {},
	}
	curriculumRoles = map[user.Role]struct{}{
		user.RoleSuperAdmin:  {},
		user.RoleAdmin:       {},
		user.RolePrincipal:   {},
		user.RoleInstitution: {},
		user.RoleHOD:         {},
		user.RoleFaculty:     {},
	}
	readOnlyRoles = map[user.Role]struct{}{
		user.RoleStudent: {},
		user.RoleParent:  {},
	}
)

func HasInstitutionManagementAccess(usr *user.User) bool {
	if usr == nil {
		return false
	}
	_, ok := managementRoles[usr.Role]
	return ok
}

func CanManageCurriculum(usr *user.User) bool {
	if usr == nil {
		return false
	}
	_, ok := curriculumRoles[usr.Role]
	return ok
}

func IsReadOnlyAccess(usr *user.User) bool {
	if usr == nil {
		return false
	}
	_, ok := readOnlyRoles[usr.Role]
	return ok
}
