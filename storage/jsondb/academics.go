package jsondb

import (
	"context"

	"github.com/elimuhq/elimu/core/academics"
)

type academicsRepository struct {
	db *DB
}

var _ academics.Repository = (*academicsRepository)(nil)

func NewAcademicsRepository(db *DB) academics.Repository {
	return &academicsRepository{db: db}
}

func (repo *academicsRepository) Institutions(context.Context) ([]academics.Institution, error) {
	repo.db.mu.RLock()
	defer repo.db.mu.RUnlock()
	return append([]academics.Institution(nil), repo.db.institutions...), nil
}

func (repo *academicsRepository) Students(context.Context) ([]academics.Student, error) {
	repo.db.mu.RLock()
	defer repo.db.mu.RUnlock()
	return append([]academics.Student(nil), repo.db.students...), nil
}

func (repo *academicsRepository) Faculty(context.Context) ([]academics.Faculty, error) {
	repo.db.mu.RLock()
	defer repo.db.mu.RUnlock()
	return append([]academics.Faculty(nil), repo.db.faculty...), nil
}

func (repo *academicsRepository) Subjects(context.Context) ([]academics.Subject, error) {
	repo.db.mu.RLock()
	defer repo.db.mu.RUnlock()
	return append([]academics.Subject(nil), repo.db.subjects...), nil
}

func (repo *academicsRepository) Grades(context.Context) ([]academics.Grade, error) {
	repo.db.mu.RLock()
	defer repo.db.mu.RUnlock()
	return append([]academics.Grade(nil), repo.db.grades...), nil
}
