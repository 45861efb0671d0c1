package access

import (
	"context"
	"reflect"
	"testing"

	"github.com/elimuhq/elimu/core/academics"
	"github.com/elimuhq/elimu/core/user"
	inmemdb "github.com/elimuhq/elimu/storage/inmem"
)

func newTestService() *Service {
	return NewService(inmemdb.NewAcademicsRepository(inmemdb.NewSeededDB()))
}

func studentIDs(students []academics.Student) []string {
	ids := make([]string, 0, len(students))
	for _, s := range students {
		ids = append(ids, s.ID)
	}
	return ids
}

func facultyIDs(faculty []academics.Faculty) []string {
	ids := make([]string, 0, len(faculty))
	for _, f := range faculty {
		ids = append(ids, f.ID)
	}
	return ids
}

func subjectIDs(subjects []academics.Subject) []string {
	ids := make([]string, 0, len(subjects))
	for _, s := range subjects {
		ids = append(ids, s.ID)
	}
	return ids
}

func gradeIDs(grades []academics.Grade) []string {
	ids := make([]string, 0, len(grades))
	for _, g := range grades {
		ids = append(ids, g.ID)
	}
	return ids
}

var (
	superAdminCtx = FilterContext{UserID: "root", Role: user.RoleSuperAdmin}
	adminCtx      = FilterContext{UserID: "adm", Role: user.RoleAdmin}
	principalCtx  = FilterContext{
		UserID: "pri", Role: user.RolePrincipal,
		Institution: "Hillcrest Institute", InstitutionID: "INST1001", InstitutionCode: "TN068",
	}
	facultyCtx = FilterContext{
		UserID: "HINST_FAC_001", Role: user.RoleFaculty,
		Institution: "Hillcrest Institute", InstitutionID: "INST1001", InstitutionCode: "TN068",
		Department: "Computer Science",
	}
	staffCtx = FilterContext{
		UserID: "HINST_FAC_002", Role: user.RoleStaff,
		Institution: "Hillcrest Institute", InstitutionID: "INST1001", InstitutionCode: "TN068",
		Department: "Mechanical Engineering",
	}
	studentCtx = FilterContext{UserID: "HINST_STU_001", Role: user.RoleStudent}
	unknownCtx = FilterContext{UserID: "xyz", Role: "registrar"}
)

func TestFilteredStudents(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	tests := []struct {
		name string
		fc   FilterContext
		want []string
	}{
		{
			name: "super-admin sees entire collection in order",
			fc:   superAdminCtx,
			want: []string{"HINST_STU_001", "HINST_STU_002", "HINST_STU_003", "RIV_STU_001"},
		},
		{
			name: "admin sees entire collection",
			fc:   adminCtx,
			want: []string{"HINST_STU_001", "HINST_STU_002", "HINST_STU_003", "RIV_STU_001"},
		},
		{
			name: "principal scoped to own institution",
			fc:   principalCtx,
			want: []string{"HINST_STU_001", "HINST_STU_002", "HINST_STU_003"},
		},
		{
			name: "principal matching on institution name only",
			fc:   FilterContext{UserID: "pri", Role: user.RolePrincipal, Institution: "Riverside College"},
			want: []string{"RIV_STU_001"},
		},
		{
			name: "faculty sees assigned plus department students",
			fc:   facultyCtx,
			want: []string{"HINST_STU_001", "HINST_STU_002"},
		},
		{
			name: "staff resolves through the faculty record",
			fc:   staffCtx,
			want: []string{"HINST_STU_003"},
		},
		{
			name: "faculty id matching no record fails closed",
			fc:   FilterContext{UserID: "GHOST_FAC", Role: user.RoleFaculty, InstitutionID: "INST1001"},
			want: []string{},
		},
		{
			name: "student sees only own record",
			fc:   studentCtx,
			want: []string{"HINST_STU_001"},
		},
		{
			name: "student id matching no record fails closed",
			fc:   FilterContext{UserID: "GHOST_STU", Role: user.RoleStudent},
			want: []string{},
		},
		{name: "unknown role", fc: unknownCtx, want: []string{}},
		{name: "empty context", fc: FilterContext{}, want: []string{}},
		{name: "hod gets nothing from the filter", fc: FilterContext{UserID: "h", Role: user.RoleHOD}, want: []string{}},
		{name: "parent gets nothing from the filter", fc: FilterContext{UserID: "p", Role: user.RoleParent}, want: []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.FilteredStudents(ctx, tt.fc)
			if err != nil {
				t.Fatalf("FilteredStudents() error = %v", err)
			}
			if !reflect.DeepEqual(studentIDs(got), tt.want) {
				t.Errorf("FilteredStudents() = %v, want %v", studentIDs(got), tt.want)
			}
		})
	}
}

// A principal scoped to one institution must never receive a record that
// matches only another institution.
func TestPrincipalIsolation(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	students, err := svc.FilteredStudents(ctx, principalCtx)
	if err != nil {
		t.Fatal(err)
	}
	for _, s := range students {
		if s.InstitutionID == "INST1002" || s.Institution == "Riverside College" {
			t.Errorf("principal of INST1001 received foreign student %s", s.ID)
		}
	}

	grades, err := svc.FilteredGrades(ctx, principalCtx)
	if err != nil {
		t.Fatal(err)
	}
	for _, g := range grades {
		if g.InstitutionID == "INST1002" {
			t.Errorf("principal of INST1001 received foreign grade %s", g.ID)
		}
	}
}

func TestFilteredFaculty(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	tests := []struct {
		name string
		fc   FilterContext
		want []string
	}{
		{
			name: "super-admin sees all",
			fc:   superAdminCtx,
			want: []string{"HINST_FAC_001", "HINST_FAC_002", "RIV_FAC_001"},
		},
		{
			name: "principal scoped to institution",
			fc:   principalCtx,
			want: []string{"HINST_FAC_001", "HINST_FAC_002"},
		},
		{
			name: "faculty sees self plus department colleagues",
			fc:   facultyCtx,
			want: []string{"HINST_FAC_001"},
		},
		{
			name: "student sees advisor and assigned faculty",
			fc:   studentCtx,
			want: []string{"HINST_FAC_001"},
		},
		{name: "unknown role", fc: unknownCtx, want: []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.FilteredFaculty(ctx, tt.fc)
			if err != nil {
				t.Fatalf("FilteredFaculty() error = %v", err)
			}
			if !reflect.DeepEqual(facultyIDs(got), tt.want) {
				t.Errorf("FilteredFaculty() = %v, want %v", facultyIDs(got), tt.want)
			}
		})
	}
}

func TestFilteredSubjects(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	tests := []struct {
		name string
		fc   FilterContext
		want []string
	}{
		{name: "super-admin sees all", fc: superAdminCtx, want: []string{"sub1", "sub2", "sub3", "sub4", "sub5"}},
		{name: "principal scoped to institution", fc: principalCtx, want: []string{"sub1", "sub2", "sub3", "sub4"}},
		{
			// sub3 comes in via the department+institution branch,
			// not the explicit subject list
			name: "faculty union of assigned and department subjects",
			fc:   facultyCtx,
			want: []string{"sub1", "sub2", "sub3"},
		},
		{name: "student enrolled subjects only", fc: studentCtx, want: []string{"sub1", "sub2", "sub3"}},
		{
			name: "unknown faculty fails closed",
			fc:   FilterContext{UserID: "GHOST_FAC", Role: user.RoleStaff},
			want: []string{},
		},
		{name: "unknown role", fc: unknownCtx, want: []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.FilteredSubjects(ctx, tt.fc)
			if err != nil {
				t.Fatalf("FilteredSubjects() error = %v", err)
			}
			if !reflect.DeepEqual(subjectIDs(got), tt.want) {
				t.Errorf("FilteredSubjects() = %v, want %v", subjectIDs(got), tt.want)
			}
		})
	}
}

func TestFilteredGrades(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	tests := []struct {
		name string
		fc   FilterContext
		want []string
	}{
		{name: "super-admin sees all", fc: superAdminCtx, want: []string{"grd1", "grd2", "grd3", "grd4", "grd5", "grd6"}},
		{name: "principal scoped to institution", fc: principalCtx, want: []string{"grd1", "grd2", "grd3", "grd4", "grd6"}},
		{
			// grd6 was recorded by another faculty member but belongs to an
			// assigned student
			name: "faculty own recordings plus assigned students",
			fc:   facultyCtx,
			want: []string{"grd1", "grd2", "grd3", "grd6"},
		},
		{name: "student own grades only", fc: studentCtx, want: []string{"grd1", "grd2", "grd6"}},
		{
			name: "unknown faculty fails closed",
			fc:   FilterContext{UserID: "GHOST_FAC", Role: user.RoleFaculty},
			want: []string{},
		},
		{name: "unknown role", fc: unknownCtx, want: []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.FilteredGrades(ctx, tt.fc)
			if err != nil {
				t.Fatalf("FilteredGrades() error = %v", err)
			}
			if !reflect.DeepEqual(gradeIDs(got), tt.want) {
				t.Errorf("FilteredGrades() = %v, want %v", gradeIDs(got), tt.want)
			}
		})
	}
}

func TestDashboardStats(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	t.Run("super-admin", func(t *testing.T) {
		stats, err := svc.DashboardStats(ctx, superAdminCtx)
		if err != nil {
			t.Fatal(err)
		}
		if stats.TotalStudents != 4 || stats.ActiveStudents != 3 {
			t.Errorf("students = %d/%d active, want 4/3", stats.TotalStudents, stats.ActiveStudents)
		}
		if stats.TotalFaculty != 3 || stats.TotalSubjects != 5 || stats.TotalGrades != 6 {
			t.Errorf("faculty/subjects/grades = %d/%d/%d, want 3/5/6",
				stats.TotalFaculty, stats.TotalSubjects, stats.TotalGrades)
		}
		if stats.AverageGrade != "73.5" {
			t.Errorf("AverageGrade = %q, want 73.5", stats.AverageGrade)
		}
		wantBreakdown := map[string]int{"Computer Science": 3, "Mechanical Engineering": 1}
		if !reflect.DeepEqual(stats.DepartmentBreakdown, wantBreakdown) {
			t.Errorf("DepartmentBreakdown = %v, want %v", stats.DepartmentBreakdown, wantBreakdown)
		}
		if got := gradeIDs(stats.RecentGrades); !reflect.DeepEqual(got, []string{"grd1", "grd2", "grd3", "grd4", "grd5"}) {
			t.Errorf("RecentGrades = %v", got)
		}
	})

	t.Run("student", func(t *testing.T) {
		stats, err := svc.DashboardStats(ctx, studentCtx)
		if err != nil {
			t.Fatal(err)
		}
		if stats.TotalStudents != 1 || stats.ActiveStudents != 1 {
			t.Errorf("students = %d/%d active, want 1/1", stats.TotalStudents, stats.ActiveStudents)
		}
		if stats.TotalSubjects != 3 || stats.TotalGrades != 3 {
			t.Errorf("subjects/grades = %d/%d, want 3/3", stats.TotalSubjects, stats.TotalGrades)
		}
		// (78 + 85 + 70) / 3
		if stats.AverageGrade != "77.7" {
			t.Errorf("AverageGrade = %q, want 77.7", stats.AverageGrade)
		}
	})

	t.Run("unrecognized context zeroes out", func(t *testing.T) {
		stats, err := svc.DashboardStats(ctx, unknownCtx)
		if err != nil {
			t.Fatal(err)
		}
		if stats.TotalStudents != 0 || stats.TotalFaculty != 0 || stats.TotalSubjects != 0 || stats.TotalGrades != 0 {
			t.Errorf("expected zeroed stats, got %+v", stats)
		}
		if stats.AverageGrade != "0" {
			t.Errorf("AverageGrade = %q, want 0", stats.AverageGrade)
		}
		if len(stats.RecentGrades) != 0 {
			t.Errorf("RecentGrades = %v, want empty", stats.RecentGrades)
		}
	})

	t.Run("totals mirror the filtered slices", func(t *testing.T) {
		for _, fc := range []FilterContext{superAdminCtx, adminCtx, principalCtx, facultyCtx, staffCtx, studentCtx, unknownCtx} {
			stats, err := svc.DashboardStats(ctx, fc)
			if err != nil {
				t.Fatal(err)
			}
			students, _ := svc.FilteredStudents(ctx, fc)
			if stats.TotalStudents != len(students) {
				t.Errorf("role %s: TotalStudents = %d, want %d", fc.Role, stats.TotalStudents, len(students))
			}
			grades, _ := svc.FilteredGrades(ctx, fc)
			if stats.TotalGrades != len(grades) {
				t.Errorf("role %s: TotalGrades = %d, want %d", fc.Role, stats.TotalGrades, len(grades))
			}
		}
	})
}

func TestAverageGradeSkipsZeroTotals(t *testing.T) {
	db := inmemdb.NewDB()
	db.SetAcademics(nil, nil, nil, nil, []academics.Grade{
		{ID: "g1", StudentID: "s1", SubjectID: "sub1", Marks: 50, TotalMarks: 0},
		{ID: "g2", StudentID: "s1", SubjectID: "sub2", Marks: 80, TotalMarks: 100},
	})
	svc := NewService(inmemdb.NewAcademicsRepository(db))

	stats, err := svc.DashboardStats(context.Background(), superAdminCtx)
	if err != nil {
		t.Fatal(err)
	}
	if stats.AverageGrade != "80.0" {
		t.Errorf("AverageGrade = %q, want 80.0", stats.AverageGrade)
	}
}
