package user

// Permission names a single allowed action. The table below is defined once at
// process start and never mutated.
type Permission string

const (
	PermViewStudents       Permission = "students.view"
	PermManageStudents     Permission = "students.manage"
	PermViewFaculty        Permission = "faculty.view"
	PermManageFaculty      Permission = "faculty.manage"
	PermViewSubjects       Permission = "subjects.view"
	PermManageCurriculum   Permission = "curriculum.manage"
	PermViewGrades         Permission = "grades.view"
	PermManageGrades       Permission = "grades.manage"
	PermViewDashboard      Permission = "dashboard.view"
	PermViewReports        Permission = "reports.view"
	PermManageInstitutions Permission = "institutions.manage"
	PermManageUsers        Permission = "users.manage"
)

var rolePermissions = map[Role][]Permission{
	RoleSuperAdmin: {
		PermViewStudents, PermManageStudents,
		PermViewFaculty, PermManageFaculty,
		PermViewSubjects, PermManageCurriculum,
		PermViewGrades, PermManageGrades,
		PermViewDashboard, PermViewReports,
		PermManageInstitutions, PermManageUsers,
	},
	RoleAdmin: {
		PermViewStudents, PermManageStudents,
		PermViewFaculty, PermManageFaculty,
		PermViewSubjects, PermManageCurriculum,
		PermViewGrades, PermManageGrades,
		PermViewDashboard, PermViewReports,
		PermManageInstitutions, PermManageUsers,
	},
	RolePrincipal: {
		PermViewStudents, PermManageStudents,
		PermViewFaculty, PermManageFaculty,
		PermViewSubjects, PermManageCurriculum,
		PermViewGrades, PermManageGrades,
		PermViewDashboard, PermViewReports,
		PermManageInstitutions,
	},
	RoleInstitution: {
		PermViewStudents, PermViewFaculty,
		PermViewSubjects, PermManageCurriculum,
		PermViewDashboard, PermViewReports,
		PermManageInstitutions,
	},
	RoleHOD: {
		PermViewStudents, PermViewFaculty,
		PermViewSubjects, PermManageCurriculum,
		PermViewGrades, PermManageGrades,
		PermViewDashboard, PermViewReports,
	},
	RoleFaculty: {
		PermViewStudents, PermViewSubjects, PermManageCurriculum,
		PermViewGrades, PermManageGrades,
		PermViewDashboard,
	},
	RoleStaff: {
		PermViewStudents, PermViewSubjects,
		PermViewGrades,
		PermViewDashboard,
	},
	RoleStudent: {
		PermViewStudents, PermViewSubjects,
		PermViewGrades, PermViewDashboard,
	},
	RoleParent: {
		PermViewGrades, PermViewDashboard,
	},
}

var permIndex map[Role]map[Permission]struct{}

func init() {
	permIndex = make(map[Role]map[Permission]struct{}, len(rolePermissions))
	for role, perms := range rolePermissions {
		idx := make(map[Permission]struct{}, len(perms))
		for _, p := range perms {
			idx[p] = struct{}{}
		}
		permIndex[role] = idx
	}
}

// Can reports whether role holds perm. Unknown roles and empty permissions
// are simply denied.
func Can(role Role, perm Permission) bool {
	if perm == "" {
		return false
	}
	idx, ok := permIndex[role]
	if !ok {
		return false
	}
	_, ok = idx[perm]
	return ok
}

// CanAny reports whether role holds at least one of perms.
func CanAny(role Role, perms ...Permission) bool {
	for _, p := range perms {
		if Can(role, p) {
			return true
		}
	}
	return false
}

// CanAll reports whether role holds every one of perms.
// An empty perms list is vacuously allowed.
func CanAll(role Role, perms ...Permission) bool {
	for _, p := range perms {
		if !Can(role, p) {
			return false
		}
	}
	return true
}

// Permissions returns the permission list for role, nil for unknown roles.
func Permissions(role Role) []Permission {
	return rolePermissions[role]
}
