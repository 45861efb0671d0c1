package jsondb

import (
	"context"
	"sort"

	"github.com/elimuhq/elimu/core/user"
)

// userRecord is the on-disk shape of a user. The core model hides the
// password hash from JSON; the store has to carry it.
type userRecord struct {
	user.User
	PasswordHash []byte `json:"password_hash,omitempty"`
}

func newUserRecord(usr user.User) userRecord {
	rec := userRecord{User: usr, PasswordHash: usr.PasswordHash}
	rec.User.PasswordHash = nil
	return rec
}

func (rec userRecord) toUser() user.User {
	usr := rec.User
	usr.PasswordHash = rec.PasswordHash
	return usr
}

type userRepository struct {
	db *DB
}

var _ user.Repository = (*userRepository)(nil)

func NewUserRepository(db *DB) user.Repository {
	return &userRepository{db: db}
}

func (repo *userRepository) query() []user.User {
	users := make([]user.User, 0, len(repo.db.users))
	for _, u := range repo.db.users {
		users = append(users, *u)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	return users
}

// saveLocked persists the whole users collection. Callers hold db.mu.
func (repo *userRepository) saveLocked() error {
	records := make([]userRecord, 0, len(repo.db.users))
	for _, usr := range repo.query() {
		records = append(records, newUserRecord(usr))
	}
	return repo.db.writeFile(usersFile, records)
}

func isExcluded(usr user.User, excludedUsers []user.User) bool {
	for _, excl := range excludedUsers {
		if usr.ID == excl.ID {
			return true
		}
	}
	return false
}

func (repo *userRepository) CheckUsernameUniqueness(_ context.Context, username, email string, excludedUsers ...user.User) error {
	repo.db.mu.RLock()
	defer repo.db.mu.RUnlock()

	for _, usr := range repo.query() {
		if isExcluded(usr, excludedUsers) {
			continue
		}
		if username != "" && usr.Username == username {
			return user.ErrUsernameExists
		}
		if usr.Email == email {
			return user.ErrEmailExists
		}
	}
	return nil
}

func (repo *userRepository) CreateUser(_ context.Context, usr user.User) (user.User, error) {
	repo.db.mu.Lock()
	defer repo.db.mu.Unlock()

	repo.db.users[usr.ID] = &usr
	if err := repo.saveLocked(); err != nil {
		delete(repo.db.users, usr.ID)
		return user.User{}, err
	}
	return usr, nil
}

func (repo *userRepository) QueryAllUsers(_ context.Context) ([]user.User, error) {
	repo.db.mu.RLock()
	defer repo.db.mu.RUnlock()
	return repo.query(), nil
}

func (repo *userRepository) GetUserByID(_ context.Context, id string) (user.User, error) {
	repo.db.mu.RLock()
	defer repo.db.mu.RUnlock()

	if usr, ok := repo.db.users[id]; ok {
		return *usr, nil
	}
	return user.User{}, user.ErrNotFound
}

func (repo *userRepository) GetUserByEmail(_ context.Context, email string) (user.User, error) {
	repo.db.mu.RLock()
	defer repo.db.mu.RUnlock()

	for _, usr := range repo.query() {
		if usr.Email == email {
			return usr, nil
		}
	}
	return user.User{}, user.ErrNotFound
}

func (repo *userRepository) GetUserByUsernameOrEmail(_ context.Context, uname string) (user.User, error) {
	repo.db.mu.RLock()
	defer repo.db.mu.RUnlock()

	for _, usr := range repo.query() {
		if (usr.Username == uname) || (usr.Email == uname) {
			return usr, nil
		}
	}
	return user.User{}, user.ErrNotFound
}

func (repo *userRepository) UpdateUser(_ context.Context, usr user.User, isActive *bool) (user.User, error) {
	repo.db.mu.Lock()
	defer repo.db.mu.Unlock()

	// only save set fields
	origUsr, ok := repo.db.users[usr.ID]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	updated := *origUsr
	if usr.Name != "" {
		updated.Name = usr.Name
	}
	if usr.Username != "" {
		updated.Username = usr.Username
	}
	if usr.Email != "" {
		updated.Email = usr.Email
	}
	if usr.Role != "" {
		updated.Role = usr.Role
	}
	if usr.Department != "" {
		updated.Department = usr.Department
	}
	if usr.PasswordHash != nil {
		updated.PasswordHash = usr.PasswordHash
	}
	if !usr.LastLogin.IsZero() {
		updated.LastLogin = usr.LastLogin
	}
	if !usr.UpdatedAt.IsZero() {
		updated.UpdatedAt = usr.UpdatedAt
	}
	if isActive != nil {
		updated.IsActive = *isActive
	}
	repo.db.users[usr.ID] = &updated
	if err := repo.saveLocked(); err != nil {
		repo.db.users[usr.ID] = origUsr
		return user.User{}, err
	}
	return updated, nil
}

func (repo *userRepository) DeleteUsersByID(_ context.Context, ids ...string) error {
	repo.db.mu.Lock()
	defer repo.db.mu.Unlock()

	removed := make(map[string]*user.User, len(ids))
	for _, id := range ids {
		if usr, ok := repo.db.users[id]; ok {
			removed[id] = usr
			delete(repo.db.users, id)
		}
	}
	if len(removed) == 0 {
		return nil
	}
	if err := repo.saveLocked(); err != nil {
		for id, usr := range removed {
			repo.db.users[id] = usr
		}
		return err
	}
	return nil
}
