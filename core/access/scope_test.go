package access

import (
	"reflect"
	"testing"

	"github.com/elimuhq/elimu/core/academics"
	"github.com/elimuhq/elimu/core/user"
)

var testInstitutions = []academics.Institution{
	{ID: "INST1001", Code: "TN068", Name: "Hillcrest Institute"},
	{ID: "INST1002", Code: "TN001", Name: "Riverside College"},
}

func instCodes(insts []academics.Institution) []string {
	codes := make([]string, 0, len(insts))
	for _, inst := range insts {
		codes = append(codes, inst.Code)
	}
	return codes
}

func TestFilterInstitutionsByRole(t *testing.T) {
	tests := []struct {
		name string
		usr  *user.User
		want []string
	}{
		{name: "nil user", usr: nil, want: []string{}},
		{
			name: "super-admin sees all",
			usr:  &user.User{Role: user.RoleSuperAdmin},
			want: []string{"TN068", "TN001"},
		},
		{
			name: "principal scoped by code",
			usr:  &user.User{Role: user.RolePrincipal, InstitutionCode: "TN068"},
			want: []string{"TN068"},
		},
		{
			name: "falls back to institution id",
			usr:  &user.User{Role: user.RoleAdmin, InstitutionID: "INST1002"},
			want: []string{"TN001"},
		},
		{
			name: "no scoping identifiers",
			usr:  &user.User{Role: user.RoleFaculty},
			want: []string{},
		},
		{
			name: "unknown identifier",
			usr:  &user.User{Role: user.RoleStaff, InstitutionCode: "TN999"},
			want: []string{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := instCodes(FilterInstitutionsByRole(testInstitutions, tt.usr))
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("FilterInstitutionsByRole() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCanAccessInstitution(t *testing.T) {
	tests := []struct {
		name string
		code string
		usr  *user.User
		want bool
	}{
		{name: "nil user", code: "TN068", usr: nil, want: false},
		{name: "super-admin", code: "TN068", usr: &user.User{Role: user.RoleSuperAdmin}, want: true},
		{
			name: "principal own institution", code: "TN068",
			usr: &user.User{Role: user.RolePrincipal, InstitutionCode: "TN068"}, want: true,
		},
		{
			name: "principal other institution", code: "TN001",
			usr: &user.User{Role: user.RolePrincipal, InstitutionCode: "TN068"}, want: false,
		},
		{
			// comparison is exact: no case normalization
			name: "case mismatch", code: "tn068",
			usr: &user.User{Role: user.RolePrincipal, InstitutionCode: "TN068"}, want: false,
		},
		// a user with no scoping fields is denied, even for an empty code
		{
			name: "empty identifiers", code: "",
			usr: &user.User{Role: user.RoleStaff}, want: false,
		},
		{
			name: "unscoped user vs real code", code: "TN068",
			usr: &user.User{Role: user.RoleStaff}, want: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanAccessInstitution(tt.code, tt.usr); got != tt.want {
				t.Errorf("CanAccessInstitution(%q) = %v, want %v", tt.code, got, tt.want)
			}
		})
	}
}

func TestRoleAccessSets(t *testing.T) {
	type roleFlags struct {
		management bool
		curriculum bool
		readOnly   bool
	}
	tests := map[user.Role]roleFlags{
		user.RoleSuperAdmin:  {management: true, curriculum: true},
		user.RoleAdmin:       {management: true, curriculum: true},
		user.RolePrincipal:   {management: true, curriculum: true},
		user.RoleInstitution: {management: true, curriculum: true},
		user.RoleHOD:         {curriculum: true},
		user.RoleFaculty:     {curriculum: true},
		user.RoleStaff:       {},
		user.RoleStudent:     {readOnly: true},
		user.RoleParent:      {readOnly: true},
	}
	for role, want := range tests {
		usr := &user.User{Role: role}
		if got := HasInstitutionManagementAccess(usr); got != want.management {
			t.Errorf("HasInstitutionManagementAccess(%s) = %v, want %v", role, got, want.management)
		}
		if got := CanManageCurriculum(usr); got != want.curriculum {
			t.Errorf("CanManageCurriculum(%s) = %v, want %v", role, got, want.curriculum)
		}
		if got := IsReadOnlyAccess(usr); got != want.readOnly {
			t.Errorf("IsReadOnlyAccess(%s) = %v, want %v", role, got, want.readOnly)
		}
	}

	if HasInstitutionManagementAccess(nil) || CanManageCurriculum(nil) || IsReadOnlyAccess(nil) {
		t.Error("nil user must fail every access check")
	}
}
