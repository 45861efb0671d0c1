package user

import "testing"

func TestCan(t *testing.T) {
	tests := []struct {
		name string
		role Role
		perm Permission
		want bool
	}{
		{name: "super-admin manages institutions", role: RoleSuperAdmin, perm: PermManageInstitutions, want: true},
		{name: "admin manages users", role: RoleAdmin, perm: PermManageUsers, want: true},
		{name: "principal cannot manage users", role: RolePrincipal, perm: PermManageUsers, want: false},
		{name: "faculty manages curriculum", role: RoleFaculty, perm: PermManageCurriculum, want: true},
		{name: "student views grades", role: RoleStudent, perm: PermViewGrades, want: true},
		// the data filter self-scopes the listing to the student's own record
		{name: "student views students", role: RoleStudent, perm: PermViewStudents, want: true},
		{name: "student cannot manage grades", role: RoleStudent, perm: PermManageGrades, want: false},
		{name: "parent views dashboard", role: RoleParent, perm: PermViewDashboard, want: true},
		{name: "unknown role denied", role: Role("janitor"), perm: PermViewDashboard, want: false},
		{name: "underscore spelling is not a role", role: Role("super_admin"), perm: PermManageUsers, want: false},
		{name: "empty permission denied", role: RoleSuperAdmin, perm: "", want: false},
		{name: "empty role denied", role: "", perm: PermViewDashboard, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Can(tt.role, tt.perm); got != tt.want {
				t.Errorf("Can(%q, %q) = %v, want %v", tt.role, tt.perm, got, tt.want)
			}
		})
	}
}

func TestCanAnyCanAll(t *testing.T) {
	tests := []struct {
		name    string
		role    Role
		perms   []Permission
		wantAny bool
		wantAll bool
	}{
		{
			name: "all present", role: RoleAdmin,
			perms: []Permission{PermViewStudents, PermManageStudents}, wantAny: true, wantAll: true,
		},
		{
			name: "some present", role: RoleStaff,
			perms: []Permission{PermViewStudents, PermManageStudents}, wantAny: true, wantAll: false,
		},
		{
			name: "none present", role: RoleParent,
			perms: []Permission{PermManageStudents, PermManageFaculty}, wantAny: false, wantAll: false,
		},
		{name: "empty list", role: RoleAdmin, perms: nil, wantAny: false, wantAll: true},
		{
			name: "unknown role", role: Role("ghost"),
			perms: []Permission{PermViewDashboard}, wantAny: false, wantAll: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanAny(tt.role, tt.perms...); got != tt.wantAny {
				t.Errorf("CanAny() = %v, want %v", got, tt.wantAny)
			}
			if got := CanAll(tt.role, tt.perms...); got != tt.wantAll {
				t.Errorf("CanAll() = %v, want %v", got, tt.wantAll)
			}
		})
	}
}

// CanAll implies CanAny for any non-empty permission list.
func TestCanAllImpliesCanAny(t *testing.T) {
	for _, role := range AllRoles {
		perms := Permissions(role)
		if len(perms) == 0 {
			t.Fatalf("role %q has no permissions", role)
		}
		if CanAll(role, perms...) && !CanAny(role, perms...) {
			t.Errorf("role %q: CanAll holds but CanAny does not", role)
		}
	}
}

func TestParseRole(t *testing.T) {
	tests := []struct {
		in   string
		want Role
	}{
		{in: "super-admin", want: RoleSuperAdmin},
		{in: "super_admin", want: RoleSuperAdmin}, // legacy spelling
		{in: " Faculty ", want: RoleFaculty},
		{in: "HOD", want: RoleHOD},
		{in: "registrar", want: ""},
		{in: "", want: ""},
	}
	for _, tt := range tests {
		if got := ParseRole(tt.in); got != tt.want {
			t.Errorf("ParseRole(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
