package access

import (
	"context"
	"fmt"

	"github.com/elimuhq/elimu/core/academics"
)

const recentGradesCount = 5

// Stats aggregates the four filtered collections for dashboard views.
type Stats struct {
	TotalStudents  int    `json:"total_students"`
	ActiveStudents int    `json:"active_students"`
	TotalFaculty   int    `json:"total_faculty"`
	TotalSubjects  int    `json:"total_subjects"`
	TotalGrades    int    `json:"total_grades"`
	AverageGrade   string `json:"average_grade"`

	DepartmentBreakdown map[string]int `json:"department_breakdown"`

	// RecentGrades keeps the order the underlying source supplies;
	// no sort key is applied.
	RecentGrades []academics.Grade `json:"recent_grades"`
}

// DashboardStats composes the four filtered collections for fc and derives
// the aggregate dashboard numbers.
func (svc *Service) DashboardStats(ctx context.Context, fc FilterContext) (*Stats, error) {
	students, err := svc.FilteredStudents(ctx, fc)
	if err != nil {
		return nil, err
	}
	faculty, err := svc.FilteredFaculty(ctx, fc)
	if err != nil {
		return nil, err
	}
	subjects, err := svc.FilteredSubjects(ctx, fc)
	if err != nil {
		return nil, err
	}
	grades, err := svc.FilteredGrades(ctx, fc)
	if err != nil {
		return nil, err
	}

	stats := &Stats{
		TotalStudents:       len(students),
		TotalFaculty:        len(faculty),
		TotalSubjects:       len(subjects),
		TotalGrades:         len(grades),
		AverageGrade:        averageGrade(grades),
		DepartmentBreakdown: make(map[string]int),
	}

	for _, s := range students {
		if s.Status == "active" {
			stats.ActiveStudents++
		}
		if s.Department != "" {
			stats.DepartmentBreakdown[s.Department]++
		}
	}

	n := recentGradesCount
	if len(grades) < n {
		n = len(grades)
	}
	stats.RecentGrades = grades[:n]

	return stats, nil
}

// averageGrade is the mean of marks/totalMarks*100 over grades, one decimal
// place; "0" when there is nothing to average. Records without a total are
// skipped rather than polluting the mean.
func averageGrade(grades []academics.Grade) string {
	var sum float64
	var count int
	for _, g := range grades {
		if g.TotalMarks <= 0 {
			continue
		}
		sum += g.Marks / g.TotalMarks * 100
		count++
	}
	if count == 0 {
		return "0"
	}
	return fmt.Sprintf("%.1f", sum/float64(count))
}
