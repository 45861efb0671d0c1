package inmemdb

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

func (repo *academicsRepository) Institutions(_ context.Context) ([]academics.Institution, error) {
	repo.db.mu.RLock()
	defer repo.db.mu.RUnlock()
	return repo.db.institutions, nil
}

func (repo *academicsRepository) Students(_ context.Context) ([]academics.Student, error) {
	repo.db.mu.RLock()
	defer repo.db.mu.RUnlock()
	return repo.db.students, nil
}

func (repo *academicsRepository) Faculty(_ context.Context) ([]academics.Faculty, error) {
	repo.db.mu.RLock()
	defer repo.db.mu.RUnlock()
	return repo.db.faculty, nil
}

func (repo *academicsRepository) Subjects(_ context.Context) ([]academics.Subject, error) {
	repo.db.mu.RLock()
	defer repo.db.mu.RUnlock()
	return repo.db.subjects, nil
}

func (repo *academicsRepository) Grades(_ context.Context) ([]academics.Grade, error) {
	repo.db.mu.RLock()
	defer repo.db.mu.RUnlock()
	return repo.db.grades, nil
}
