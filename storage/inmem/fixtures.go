package inmemdb

import (
	"time"

	"github.com/elimuhq/elimu/core/academics"
)

// Fallback dataset: two institutions, with Hillcrest carrying enough
// cross-references (advisors, assignments, enrollments) to exercise every
// scoping branch. Each Seed* func returns a fresh slice.

func SeedInstitutions() []academics.Institution {
	return []academics.Institution{
		{ID: "INST1001", Code: "TN068", Name: "Hillcrest Institute"},
		{ID: "INST1002", Code: "TN001", Name: "Riverside College"},
	}
}

func SeedStudents() []academics.Student {
	return []academics.Student{
		{
			ID: "HINST_STU_001", Name: "Asha Mwangi",
			Institution: "Hillcrest Institute", InstitutionID: "INST1001", InstitutionCode: "TN068",
			Department: "Computer Science", Status: "active",
			FacultyAdvisor:   "HINST_FAC_001",
			AssignedFaculty:  []string{"HINST_FAC_001"},
			EnrolledSubjects: []string{"sub1", "sub2", "sub3"},
		},
		{
			ID: "HINST_STU_002", Name: "Brian Otieno",
			Institution: "Hillcrest Institute", InstitutionID: "INST1001", InstitutionCode: "TN068",
			Department: "Computer Science", Status: "active",
			FacultyAdvisor:   "HINST_FAC_001",
			AssignedFaculty:  []string{"HINST_FAC_001"},
			EnrolledSubjects: []string{"sub1", "sub4"},
		},
		{
			ID: "HINST_STU_003", Name: "Chiku Ndegwa",
			Institution: "Hillcrest Institute", InstitutionID: "INST1001", InstitutionCode: "TN068",
			Department: "Mechanical Engineering", Status: "inactive",
			FacultyAdvisor:   "HINST_FAC_002",
			AssignedFaculty:  []string{"HINST_FAC_002"},
			EnrolledSubjects: []string{"sub4"},
		},
		{
			ID: "RIV_STU_001", Name: "Daudi Kimathi",
			Institution: "Riverside College", InstitutionID: "INST1002", InstitutionCode: "TN001",
			Department: "Computer Science", Status: "active",
			FacultyAdvisor:   "RIV_FAC_001",
			AssignedFaculty:  []string{"RIV_FAC_001"},
			EnrolledSubjects: []string{"sub5"},
		},
	}
}

func SeedFaculty() []academics.Faculty {
	return []academics.Faculty{
		{
			ID: "HINST_FAC_001", Name: "Dr. Esther Wanjiru",
			Institution: "Hillcrest Institute", InstitutionID: "INST1001", InstitutionCode: "TN068",
			Department: "Computer Science", Status: "active",
			AssignedStudents: []string{"HINST_STU_001", "HINST_STU_002"},
			Subjects:         []string{"sub1", "sub2"},
		},
		{
			ID: "HINST_FAC_002", Name: "Prof. Frank Oduya",
			Institution: "Hillcrest Institute", InstitutionID: "INST1001", InstitutionCode: "TN068",
			Department: "Mechanical Engineering", Status: "active",
			AssignedStudents: []string{"HINST_STU_003"},
			Subjects:         []string{"sub4"},
		},
		{
			ID: "RIV_FAC_001", Name: "Dr. Grace Achieng",
			Institution: "Riverside College", InstitutionID: "INST1002", InstitutionCode: "TN001",
			Department: "Computer Science", Status: "active",
			AssignedStudents: []string{"RIV_STU_001"},
			Subjects:         []string{"sub5"},
		},
	}
}

func SeedSubjects() []academics.Subject {
	return []academics.Subject{
		{
			ID: "sub1", Code: "CS101", Name: "Programming Fundamentals",
			Institution: "Hillcrest Institute", InstitutionID: "INST1001", InstitutionCode: "TN068",
			Department: "Computer Science", FacultyID: "HINST_FAC_001",
		},
		{
			ID: "sub2", Code: "CS102", Name: "Data Structures",
			Institution: "Hillcrest Institute", InstitutionID: "INST1001", InstitutionCode: "TN068",
			Department: "Computer Science", FacultyID: "HINST_FAC_001",
		},
		{
			ID: "sub3", Code: "CS201", Name: "Operating Systems",
			Institution: "Hillcrest Institute", InstitutionID: "INST1001", InstitutionCode: "TN068",
			Department: "Computer Science", FacultyID: "HINST_FAC_002",
		},
		{
			ID: "sub4", Code: "ME101", Name: "Engineering Drawing",
			Institution: "Hillcrest Institute", InstitutionID: "INST1001", InstitutionCode: "TN068",
			Department: "Mechanical Engineering", FacultyID: "HINST_FAC_002",
		},
		{
			ID: "sub5", Code: "CS101", Name: "Programming Fundamentals",
			Institution: "Riverside College", InstitutionID: "INST1002", InstitutionCode: "TN001",
			Department: "Computer Science", FacultyID: "RIV_FAC_001",
		},
	}
}

func SeedGrades() []academics.Grade {
	recorded := time.Date(2025, time.June, 20, 10, 0, 0, 0, time.UTC)
	return []academics.Grade{
		{
			ID: "grd1", Institution: "Hillcrest Institute", InstitutionID: "INST1001", InstitutionCode: "TN068",
			StudentID: "HINST_STU_001", SubjectID: "sub1", FacultyID: "HINST_FAC_001",
			Marks: 78, TotalMarks: 100, Grade: "B+", RecordedAt: recorded,
		},
		{
			ID: "grd2", Institution: "Hillcrest Institute", InstitutionID: "INST1001", InstitutionCode: "TN068",
			StudentID: "HINST_STU_001", SubjectID: "sub2", FacultyID: "HINST_FAC_001",
			Marks: 85, TotalMarks: 100, Grade: "A", RecordedAt: recorded.AddDate(0, 0, 1),
		},
		{
			ID: "grd3", Institution: "Hillcrest Institute", InstitutionID: "INST1001", InstitutionCode: "TN068",
			StudentID: "HINST_STU_002", SubjectID: "sub1", FacultyID: "HINST_FAC_001",
			Marks: 62, TotalMarks: 100, Grade: "C+", RecordedAt: recorded.AddDate(0, 0, 2),
		},
		{
			ID: "grd4", Institution: "Hillcrest Institute", InstitutionID: "INST1001", InstitutionCode: "TN068",
			StudentID: "HINST_STU_003", SubjectID: "sub4", FacultyID: "HINST_FAC_002",
			Marks: 55, TotalMarks: 100, Grade: "C", RecordedAt: recorded.AddDate(0, 0, 3),
		},
		{
			ID: "grd5", Institution: "Riverside College", InstitutionID: "INST1002", InstitutionCode: "TN001",
			StudentID: "RIV_STU_001", SubjectID: "sub5", FacultyID: "RIV_FAC_001",
			Marks: 91, TotalMarks: 100, Grade: "A", RecordedAt: recorded.AddDate(0, 0, 4),
		},
		{
			ID: "grd6", Institution: "Hillcrest Institute", InstitutionID: "INST1001", InstitutionCode: "TN068",
			StudentID: "HINST_STU_001", SubjectID: "sub3", FacultyID: "HINST_FAC_002",
			Marks: 70, TotalMarks: 100, Grade: "B", RecordedAt: recorded.AddDate(0, 0, 5),
		},
	}
}
