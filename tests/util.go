package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/elimuhq/elimu/core"
	"github.com/elimuhq/elimu/core/user"
)

type logger struct{}

var _ core.Logger = (*logger)(nil)

func (logger) Enable(bool)                  {}
func (logger) Debug(string, ...interface{}) {}
func (logger) Info(string, ...interface{})  {}
func (logger) Warn(string, ...interface{})  {}
func (logger) Error(string, ...interface{}) {}
func (logger) Fatal(string, ...interface{}) {}

// NewLogger returns a logger that swallows everything. Tests that assert on
// log output bring their own.
func NewLogger() core.Logger {
	return logger{}
}

// CreateUser persists a user directly through the repository, skipping
// service-level validation.
func CreateUser(
	t *testing.T,
	repo user.Repository,
	name, uname, email string,
	role user.Role,
	pwd string,
	isActive bool,
) user.User {
	t.Helper()

	now := time.Now().UTC()
	usr := user.User{
		ID:        uuid.New().String(),
		Name:      name,
		Username:  uname,
		Email:     email,
		Role:      role,
		IsActive:  isActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if pwd != "" {
		if err := usr.SetPassword(pwd); err != nil {
			t.Fatalf("setting password: %v", err)
		}
	}

	usr, err := repo.CreateUser(context.Background(), usr)
	if err != nil {
		t.Fatalf("creating user: %v", err)
	}
	return usr
}
