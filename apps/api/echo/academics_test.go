package echoapi

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/elimuhq/elimu/core/academics"
	"github.com/elimuhq/elimu/core/access"
	"github.com/elimuhq/elimu/core/user"
	inmemdb "github.com/elimuhq/elimu/storage/inmem"
)

func seedIdentity(t *testing.T, usr user.User) user.User {
	t.Helper()
	usr, err := usrRepo.CreateUser(context.Background(), usr)
	if err != nil {
		t.Fatalf("creating user: %v", err)
	}
	return usr
}

func Test_academicsApi_scoping(t *testing.T) {
	app := setup(t)

	superAdmin := user.User{ID: "root", Name: "Root", Username: "root01", Email: "root@test.cd", Role: user.RoleSuperAdmin, IsActive: true}
	student := user.User{
		ID: "HINST_STU_001", Name: "Student", Username: "stud01", Email: "stud@test.cd", Role: user.RoleStudent,
		Institution: "Hillcrest Institute", InstitutionID: "INST1001", InstitutionCode: "TN068",
		Department: "Computer Science", StudentID: "HINST_STU_001", IsActive: true,
	}
	parent := user.User{ID: "par1", Name: "Parent", Username: "parent01", Email: "parent@test.cd", Role: user.RoleParent, IsActive: true}

	superAdminToken := getToken(t, superAdmin)
	studentToken := getToken(t, student)
	parentToken := getToken(t, parent)

	tests := []httpTest{
		{name: "auth required", method: http.MethodGet, path: "/v1/students", wantCode: http.StatusUnauthorized, wantData: marshallObj(t, errMissingToken)},
		{
			name: "students: super-admin sees all", method: http.MethodGet, path: "/v1/students", token: superAdminToken,
			wantCode: http.StatusOK, wantData: marshallObj(t, inmemdb.SeedStudents()),
		},
		{
			name: "students: parent has no view permission", method: http.MethodGet, path: "/v1/students", token: parentToken,
			wantCode: http.StatusForbidden, wantData: marshallObj(t, httpErr{Error: "permission denied"}),
		},
		{name: "faculty: super-admin sees all", method: http.MethodGet, path: "/v1/faculty", token: superAdminToken, wantCode: http.StatusOK, wantData: marshallObj(t, inmemdb.SeedFaculty())},
		{
			name: "faculty: student has no view permission", method: http.MethodGet, path: "/v1/faculty", token: studentToken,
			wantCode: http.StatusForbidden, wantData: marshallObj(t, httpErr{Error: "permission denied"}),
		},
		{name: "subjects: super-admin sees all", method: http.MethodGet, path: "/v1/subjects", token: superAdminToken, wantCode: http.StatusOK, wantData: marshallObj(t, inmemdb.SeedSubjects())},
		{name: "grades: super-admin sees all", method: http.MethodGet, path: "/v1/grades", token: superAdminToken, wantCode: http.StatusOK, wantData: marshallObj(t, inmemdb.SeedGrades())},
		{
			name: "grades: parent scopes to empty", method: http.MethodGet, path: "/v1/grades", token: parentToken,
			wantCode: http.StatusOK, wantData: marshallObj(t, []academics.Grade{}),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, rec := newAuthRequest(tt.method, tt.path, tt.token, tt.body)
			app.ServeHTTP(rec, req)
			checkCodeAndData(t, tt, rec)
		})
	}

	// the student sees only their own slice of each collection
	t.Run("student scoping", func(t *testing.T) {
		req, rec := newAuthRequest(http.MethodGet, "/v1/students", studentToken)
		app.ServeHTTP(rec, req)
		var students []academics.Student
		if err := json.Unmarshal(rec.Body.Bytes(), &students); err != nil {
			t.Fatalf("decoding students: %v", err)
		}
		if len(students) != 1 || students[0].ID != student.ID {
			t.Errorf("student sees %+v, want only their own record", students)
		}

		req, rec = newAuthRequest(http.MethodGet, "/v1/subjects", studentToken)
		app.ServeHTTP(rec, req)
		var subjects []academics.Subject
		if err := json.Unmarshal(rec.Body.Bytes(), &subjects); err != nil {
			t.Fatalf("decoding subjects: %v", err)
		}
		if len(subjects) != 3 {
			t.Errorf("student sees %d subjects, want 3", len(subjects))
		}

		req, rec = newAuthRequest(http.MethodGet, "/v1/grades", studentToken)
		app.ServeHTTP(rec, req)
		var grades []academics.Grade
		if err := json.Unmarshal(rec.Body.Bytes(), &grades); err != nil {
			t.Fatalf("decoding grades: %v", err)
		}
		for _, g := range grades {
			if g.StudentID != student.ID {
				t.Errorf("student sees grade %s belonging to %s", g.ID, g.StudentID)
			}
		}
	})
}

func Test_academicsApi_dashboard(t *testing.T) {
	app := setup(t)

	superAdmin := user.User{ID: "root", Name: "Root", Username: "root01", Email: "root@test.cd", Role: user.RoleSuperAdmin, IsActive: true}

	req, rec := newAuthRequest(http.MethodGet, "/v1/dashboard", getToken(t, superAdmin))
	app.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("code = %v, body = %s", rec.Code, rec.Body.String())
	}

	var stats access.Stats
	if err := json.Unmarshal(rec.Body.Bytes(), &stats); err != nil {
		t.Fatalf("decoding stats: %v", err)
	}
	if stats.TotalStudents != 4 || stats.ActiveStudents != 3 {
		t.Errorf("students = %d/%d, want 4/3", stats.TotalStudents, stats.ActiveStudents)
	}
	if stats.AverageGrade == "0" {
		t.Error("average grade must be computed from the seeded grades")
	}
	if len(stats.RecentGrades) != 5 {
		t.Errorf("recent grades = %d, want 5", len(stats.RecentGrades))
	}
}

func Test_academicsApi_institutions(t *testing.T) {
	app := setup(t)

	superAdmin := seedIdentity(t, user.User{ID: "root", Name: "Root", Username: "root01", Email: "root@test.cd", Role: user.RoleSuperAdmin, IsActive: true})
	principal := seedIdentity(t, user.User{
		ID: "pri1", Name: "Principal", Username: "princ01", Email: "princ@test.cd", Role: user.RolePrincipal,
		Institution: "Hillcrest Institute", InstitutionID: "INST1001", InstitutionCode: "TN068", IsActive: true,
	})

	req, rec := newAuthRequest(http.MethodGet, "/v1/institutions", getToken(t, superAdmin))
	app.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("code = %v, body = %s", rec.Code, rec.Body.String())
	}
	var institutions []academics.Institution
	if err := json.Unmarshal(rec.Body.Bytes(), &institutions); err != nil {
		t.Fatalf("decoding institutions: %v", err)
	}
	if len(institutions) != 2 {
		t.Errorf("super-admin sees %d institutions, want 2", len(institutions))
	}

	req, rec = newAuthRequest(http.MethodGet, "/v1/institutions", getToken(t, principal))
	app.ServeHTTP(rec, req)
	institutions = nil
	if err := json.Unmarshal(rec.Body.Bytes(), &institutions); err != nil {
		t.Fatalf("decoding institutions: %v", err)
	}
	if len(institutions) != 1 || institutions[0].Code != "TN068" {
		t.Errorf("principal sees %+v, want only TN068", institutions)
	}
}
