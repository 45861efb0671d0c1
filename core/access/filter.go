package access

import (
	"context"

	"github.com/elimuhq/elimu/core/academics"
	"github.com/elimuhq/elimu/core/user"
)

// Service computes role-scoped views over the entity snapshots.
// It is stateless; all scoping input comes from the FilterContext.
type Service struct {
	repo academics.Repository
}

func NewService(repo academics.Repository) *Service {
	return &Service{repo: repo}
}

// Institutions returns the unfiltered institution list; callers scope it
// with FilterInstitutionsByRole.
func (svc *Service) Institutions(ctx context.Context) ([]academics.Institution, error) {
	return svc.repo.Institutions(ctx)
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

// studentKey is the identifier a student context self-scopes on.
func (fc FilterContext) studentKey() string {
	if fc.StudentID != "" {
		return fc.StudentID
	}
	return fc.UserID
}

func findFaculty(faculty []academics.Faculty, id string) (academics.Faculty, bool) {
	if id == "" {
		return academics.Faculty{}, false
	}
	for _, f := range faculty {
		if f.ID == id {
			return f, true
		}
	}
	return academics.Faculty{}, false
}

func findStudent(students []academics.Student, id string) (academics.Student, bool) {
	if id == "" {
		return academics.Student{}, false
	}
	for _, s := range students {
		if s.ID == id {
			return s, true
		}
	}
	return academics.Student{}, false
}

func (svc *Service) FilteredStudents(ctx context.Context, fc FilterContext) ([]academics.Student, error) {
	students, err := svc.repo.Students(ctx)
	if err != nil {
		return nil, err
	}

	switch fc.Role {
	case user.RoleSuperAdmin, user.RoleAdmin:
		return students, nil

	case user.RolePrincipal:
		out := make([]academics.Student, 0, len(students))
		for _, s := range students {
			if fc.matchesInstitution(s.InstitutionID, s.Institution) {
				out = append(out, s)
			}
		}
		return out, nil

	case user.RoleFaculty, user.RoleStaff:
		faculty, err := svc.repo.Faculty(ctx)
		if err != nil {
			return nil, err
		}
		fac, ok := findFaculty(faculty, fc.UserID)
		if !ok {
			return []academics.Student{}, nil
		}
		out := make([]academics.Student, 0, len(fac.AssignedStudents))
		for _, s := range students {
			if contains(fac.AssignedStudents, s.ID) {
				out = append(out, s)
				continue
			}
			if s.Department == fac.Department && fc.matchesInstitution(s.InstitutionID, s.Institution) {
				out = append(out, s)
			}
		}
		return out, nil

	case user.RoleStudent:
		if s, ok := findStudent(students, fc.studentKey()); ok {
			return []academics.Student{s}, nil
		}
		return []academics.Student{}, nil

	default:
		return []academics.Student{}, nil
	}
}

func (svc *Service) FilteredFaculty(ctx context.Context, fc FilterContext) ([]academics.Faculty, error) {
	faculty, err := svc.repo.Faculty(ctx)
	if err != nil {
		return nil, err
	}

	switch fc.Role {
	case user.RoleSuperAdmin, user.RoleAdmin:
		return faculty, nil

	case user.RolePrincipal:
		out := make([]academics.Faculty, 0, len(faculty))
		for _, f := range faculty {
			if fc.matchesInstitution(f.InstitutionID, f.Institution) {
				out = append(out, f)
			}
		}
		return out, nil

	case user.RoleFaculty, user.RoleStaff:
		fac, ok := findFaculty(faculty, fc.UserID)
		if !ok {
			return []academics.Faculty{}, nil
		}
		out := make([]academics.Faculty, 0, 4)
		for _, f := range faculty {
			if f.ID == fac.ID {
				out = append(out, f)
				continue
			}
			if f.Department == fac.Department && fc.matchesInstitution(f.InstitutionID, f.Institution) {
				out = append(out, f)
			}
		}
		return out, nil

	case user.RoleStudent:
		students, err := svc.repo.Students(ctx)
		if err != nil {
			return nil, err
		}
		stu, ok := findStudent(students, fc.studentKey())
		if !ok {
			return []academics.Faculty{}, nil
		}
		out := make([]academics.Faculty, 0, len(stu.AssignedFaculty))
		for _, f := range faculty {
			if f.ID == stu.FacultyAdvisor || contains(stu.AssignedFaculty, f.ID) {
				out = append(out, f)
			}
		}
		return out, nil

	default:
		return []academics.Faculty{}, nil
	}
}

func (svc *Service) FilteredSubjects(ctx context.Context, fc FilterContext) ([]academics.Subject, error) {
	subjects, err := svc.repo.Subjects(ctx)
	if err != nil {
		return nil, err
	}

	switch fc.Role {
	case user.RoleSuperAdmin, user.RoleAdmin:
		return subjects, nil

	case user.RolePrincipal:
		out := make([]academics.Subject, 0, len(subjects))
		for _, sub := range subjects {
			if fc.matchesInstitution(sub.InstitutionID, sub.Institution) {
				out = append(out, sub)
			}
		}
		return out, nil

	case user.RoleFaculty, user.RoleStaff:
		faculty, err := svc.repo.Faculty(ctx)
		if err != nil {
			return nil, err
		}
		fac, ok := findFaculty(faculty, fc.UserID)
		if !ok {
			return []academics.Subject{}, nil
		}
		out := make([]academics.Subject, 0, len(fac.Subjects))
		for _, sub := range subjects {
			if contains(fac.Subjects, sub.ID) {
				out = append(out, sub)
				continue
			}
			if sub.Department == fac.Department && fc.matchesInstitution(sub.InstitutionID, sub.Institution) {
				out = append(out, sub)
			}
		}
		return out, nil

	case user.RoleStudent:
		students, err := svc.repo.Students(ctx)
		if err != nil {
			return nil, err
		}
		stu, ok := findStudent(students, fc.studentKey())
		if !ok {
			return []academics.Subject{}, nil
		}
		out := make([]academics.Subject, 0, len(stu.EnrolledSubjects))
		for _, sub := range subjects {
			if contains(stu.EnrolledSubjects, sub.ID) {
				out = append(out, sub)
			}
		}
		return out, nil

	default:
		return []academics.Subject{}, nil
	}
}

func (svc *Service) FilteredGrades(ctx context.Context, fc FilterContext) ([]academics.Grade, error) {
	grades, err := svc.repo.Grades(ctx)
	if err != nil {
		return nil, err
	}

	switch fc.Role {
	case user.RoleSuperAdmin, user.RoleAdmin:
		return grades, nil

	case user.RolePrincipal:
		out := make([]academics.Grade, 0, len(grades))
		for _, g := range grades {
			if fc.matchesInstitution(g.InstitutionID, g.Institution) {
				out = append(out, g)
			}
		}
		return out, nil

	case user.RoleFaculty, user.RoleStaff:
		faculty, err := svc.repo.Faculty(ctx)
		if err != nil {
			return nil, err
		}
		fac, ok := findFaculty(faculty, fc.UserID)
		if !ok {
			return []academics.Grade{}, nil
		}
		out := make([]academics.Grade, 0, len(grades))
		for _, g := range grades {
			if g.FacultyID == fc.UserID ||
				contains(fac.AssignedStudents, g.StudentID) ||
				contains(fac.Subjects, g.SubjectID) {
				out = append(out, g)
			}
		}
		return out, nil

	case user.RoleStudent:
		students, err := svc.repo.Students(ctx)
		if err != nil {
			return nil, err
		}
		stu, ok := findStudent(students, fc.studentKey())
		if !ok {
			return []academics.Grade{}, nil
		}
		out := make([]academics.Grade, 0, len(grades))
		for _, g := range grades {
			if g.StudentID == stu.ID {
				out = append(out, g)
			}
		}
		return out, nil

	default:
		return []academics.Grade{}, nil
	}
}
