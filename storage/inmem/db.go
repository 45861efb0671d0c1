// Package inmemdb is the in-memory data source: the hard-coded fallback
// dataset used when no JSON data directory is available, and the backing
// store for tests.
package inmemdb

import (
	"sync"

	"github.com/elimuhq/elimu/core/academics"
	"github.com/elimuhq/elimu/core/user"
)

type DB struct {
	mu sync.RWMutex

	institutions []academics.Institution
	students     []academics.Student
	faculty      []academics.Faculty
	subjects     []academics.Subject
	grades       []academics.Grade

	users map[string]*user.User
}

// NewDB returns an empty database.
func NewDB() *DB {
	return &DB{users: make(map[string]*user.User)}
}

// NewSeededDB returns a database pre-loaded with the fallback dataset.
func NewSeededDB() *DB {
	db := NewDB()
	db.institutions = SeedInstitutions()
	db.students = SeedStudents()
	db.faculty = SeedFaculty()
	db.subjects = SeedSubjects()
	db.grades = SeedGrades()
	return db
}

// SetAcademics replaces the entity snapshots wholesale.
func (db *DB) SetAcademics(
	institutions []academics.Institution,
	students []academics.Student,
	faculty []academics.Faculty,
	subjects []academics.Subject,
	grades []academics.Grade,
) {
	db.mu.Lock()
	defer db.mu.Unlock()
	db.institutions = institutions
	db.students = students
	db.faculty = faculty
	db.subjects = subjects
	db.grades = grades
}
