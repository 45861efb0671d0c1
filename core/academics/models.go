// Package academics defines the entity records the access layer filters.
// From the filter's point of view these collections are read-only snapshots;
// mutation happens at the data source (JSON files), never here.
package academics

import (
	"context"
	"time"
)

type Institution struct {
	ID   string `json:"id"`
	Code string `json:"code"`
	Name string `json:"name"`
}

type Student struct {
	ID   string `json:"id"`
	Name string `json:"name"`

	Institution     string `json:"institution,omitempty"`
	InstitutionID   string `json:"institution_id,omitempty"`
	InstitutionCode string `json:"institution_code,omitempty"`

	Department       string   `json:"department,omitempty"`
	Status           string   `json:"status,omitempty"` // "active" | "inactive"
	FacultyAdvisor   string   `json:"faculty_advisor,omitempty"`
	AssignedFaculty  []string `json:"assigned_faculty,omitempty"`
	EnrolledSubjects []string `json:"enrolled_subjects,omitempty"`
}

type Faculty struct {
	ID   string `json:"id"`
	Name string `json:"name"`

	Institution     string `json:"institution,omitempty"`
	InstitutionID   string `json:"institution_id,omitempty"`
	InstitutionCode string `json:"institution_code,omitempty"`

	Department       string   `json:"department,omitempty"`
	Status           string   `json:"status,omitempty"`
	AssignedStudents []string `json:"assigned_students,omitempty"`
	Subjects         []string `json:"subjects,omitempty"`
}

type Subject struct {
	ID   string `json:"id"`
	Code string `json:"code"`
	Name string `json:"name"`

	Institution     string `json:"institution,omitempty"`
	InstitutionID   string `json:"institution_id,omitempty"`
	InstitutionCode string `json:"institution_code,omitempty"`

	Department string `json:"department,omitempty"`
	FacultyID  string `json:"faculty_id,omitempty"`
}

type Grade struct {
	ID string `json:"id"`

	Institution     string `json:"institution,omitempty"`
	InstitutionID   string `json:"institution_id,omitempty"`
	InstitutionCode string `json:"institution_code,omitempty"`

	StudentID  string    `json:"student_id"`
	SubjectID  string    `json:"subject_id"`
	FacultyID  string    `json:"faculty_id,omitempty"`
	Marks      float64   `json:"marks"`
	TotalMarks float64   `json:"total_marks"`
	Grade      string    `json:"grade,omitempty"`
	RecordedAt time.Time `json:"recorded_at,omitempty"`
}

// Repository supplies read-only snapshots of the entity collections.
// Implementations must return slices the caller may iterate without locking.
type Repository interface {
	Institutions(ctx context.Context) ([]Institution, error)
	Students(ctx context.Context) ([]Student, error)
	Faculty(ctx context.Context) ([]Faculty, error)
	Subjects(ctx context.Context) ([]Subject, error)
	Grades(ctx context.Context) ([]Grade, error)
}
