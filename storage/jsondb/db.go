// Package jsondb reads the flat JSON "database" files into in-memory
// snapshots. Whole files are read and replaced at once; there are no partial
// updates and no transactions. Missing files fall back to the hard-coded
// mock dataset so a fresh checkout still serves data.
package jsondb

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/pkg/errors"

	"github.com/elimuhq/elimu/core"
	"github.com/elimuhq/elimu/core/academics"
	"github.com/elimuhq/elimu/core/user"
	inmemdb "github.com/elimuhq/elimu/storage/inmem"
)

const (
	institutionsFile = "institutions.json"
	studentsFile     = "students.json"
	facultyFile      = "faculty.json"
	subjectsFile     = "subjects.json"
	gradesFile       = "grades.json"
	usersFile        = "users.json"
)

var dataFiles = []string{institutionsFile, studentsFile, facultyFile, subjectsFile, gradesFile, usersFile}

type DB struct {
	mu  sync.RWMutex
	dir string
	log core.Logger

	institutions []academics.Institution
	students     []academics.Student
	faculty      []academics.Faculty
	subjects     []academics.Subject
	grades       []academics.Grade
	users        map[string]*user.User

	watcher  *fsnotify.Watcher
	onReload []func()
	done     chan struct{}
}

// Open loads the data directory. Collections whose file is missing are
// seeded from the fallback dataset; any other read error aborts.
func Open(dir string, log core.Logger) (*DB, error) {
	db := &DB{
		dir:          dir,
		log:          log,
		institutions: inmemdb.SeedInstitutions(),
		students:     inmemdb.SeedStudents(),
		faculty:      inmemdb.SeedFaculty(),
		subjects:     inmemdb.SeedSubjects(),
		grades:       inmemdb.SeedGrades(),
		users:        make(map[string]*user.User),
	}
	if err := db.Reload(); err != nil {
		return nil, err
	}
	return db, nil
}

// Reload re-reads every data file that exists on disk.
func (db *DB) Reload() error {
	for _, name := range dataFiles {
		if err := db.loadFile(name); err != nil {
			return err
		}
	}
	return nil
}

func (db *DB) loadFile(name string) error {
	path := filepath.Join(db.dir, name)
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil // keep fallback / previous snapshot
		}
		return errors.Wrapf(err, "reading %s", name)
	}

	db.mu.Lock()
	defer db.mu.Unlock()

	switch name {
	case institutionsFile:
		var institutions []academics.Institution
		if err = json.Unmarshal(raw, &institutions); err == nil {
			db.institutions = institutions
		}
	case studentsFile:
		var students []academics.Student
		if err = json.Unmarshal(raw, &students); err == nil {
			db.students = students
		}
	case facultyFile:
		var faculty []academics.Faculty
		if err = json.Unmarshal(raw, &faculty); err == nil {
			db.faculty = faculty
		}
	case subjectsFile:
		var subjects []academics.Subject
		if err = json.Unmarshal(raw, &subjects); err == nil {
			db.subjects = subjects
		}
	case gradesFile:
		var grades []academics.Grade
		if err = json.Unmarshal(raw, &grades); err == nil {
			db.grades = grades
		}
	case usersFile:
		var records []userRecord
		if err = json.Unmarshal(raw, &records); err == nil {
			db.users = make(map[string]*user.User, len(records))
			for _, rec := range records {
				usr := rec.toUser()
				db.users[usr.ID] = &usr
			}
		}
	}
	return errors.Wrapf(err, "decoding %s", name)
}

// Watch reloads a data file whenever it changes on disk and runs the
// registered callbacks. Call Close to stop watching.
func (db *DB) Watch() error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Wrap(err, "creating watcher")
	}
	if err = watcher.Add(db.dir); err != nil {
		_ = watcher.Close()
		return errors.Wrapf(err, "watching %s", db.dir)
	}
	db.watcher = watcher
	db.done = make(chan struct{})

	go func() {
		for {
			select {
			case ev, ok := <-watcher.Events:
				if !ok {
					return
				}
				if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
					continue
				}
				name := filepath.Base(ev.Name)
				if !knownDataFile(name) {
					continue
				}
				if err := db.loadFile(name); err != nil {
					db.log.Error("reloading data file", err)
					continue
				}
				db.log.Info("reloaded " + name)
				for _, fn := range db.onReload {
					fn()
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				db.log.Error("watching data dir", err)
			case <-db.done:
				return
			}
		}
	}()
	return nil
}

func knownDataFile(name string) bool {
	for _, f := range dataFiles {
		if f == name {
			return true
		}
	}
	return false
}

// OnReload registers fn to run after a watched file was reloaded; the
// filtered-data provider registers its Refresh here. Must be called
// before Watch.
func (db *DB) OnReload(fn func()) {
	db.onReload = append(db.onReload, fn)
}

func (db *DB) Close() error {
	if db.watcher == nil {
		return nil
	}
	close(db.done)
	return db.watcher.Close()
}

// writeFile persists a whole collection, replacing the previous file.
func (db *DB) writeFile(name string, v interface{}) error {
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errors.Wrapf(err, "encoding %s", name)
	}

	path := filepath.Join(db.dir, name)
	tmp := path + ".tmp"
	if err = os.WriteFile(tmp, raw, 0o644); err != nil {
		return errors.Wrapf(err, "writing %s", name)
	}
	return errors.Wrapf(os.Rename(tmp, path), "replacing %s", name)
}
