package access

import (
	"context"
	"sync"

	"github.com/pkg/errors"

	"github.com/elimuhq/elimu/core"
	"github.com/elimuhq/elimu/core/academics"
	"github.com/elimuhq/elimu/core/session"
	"github.com/elimuhq/elimu/core/user"
)

// Provider keeps the filtered views for the current identity, recomputing
// them from scratch on every identity change. The entity source is a small
// in-memory snapshot, so a full recompute is cheap; nothing is incremental.
//
// On a snapshot load error the previous collections stay published and the
// error is logged; Loading is always reset so consumers never hang.
type Provider struct {
	svc      *Service
	sessions *session.Store
	log      core.Logger

	mu       sync.RWMutex
	students []academics.Student
	faculty  []academics.Faculty
	subjects []academics.Subject
	grades   []academics.Grade
	stats    *Stats
	loading  bool

	listeners   map[int]func()
	nextID      int
	unsubscribe func()
}

func NewProvider(svc *Service, sessions *session.Store, log core.Logger) *Provider {
	p := &Provider{
		svc:       svc,
		sessions:  sessions,
		log:       log,
		listeners: make(map[int]func()),
	}
	p.resetLocked()
	p.unsubscribe = sessions.Subscribe(func(usr *user.User) {
		p.rebuild(usr)
	})
	return p
}

// Refresh recomputes the views for the current identity, e.g. after the
// underlying data files were reloaded.
func (p *Provider) Refresh() {
	p.rebuild(p.sessions.Current())
}

func (p *Provider) rebuild(usr *user.User) {
	p.setLoading(true)
	defer func() {
		p.setLoading(false)
		p.notify()
	}()

	if usr == nil {
		p.mu.Lock()
		p.resetLocked()
		p.mu.Unlock()
		return
	}

	ctx := context.Background()
	fc := NewFilterContext(usr)

	students, err := p.svc.FilteredStudents(ctx, fc)
	if err != nil {
		p.log.Error("filtering students", errors.Wrap(err, "filtering students"))
		return
	}
	faculty, err := p.svc.FilteredFaculty(ctx, fc)
	if err != nil {
		p.log.Error("filtering faculty", errors.Wrap(err, "filtering faculty"))
		return
	}
	subjects, err := p.svc.FilteredSubjects(ctx, fc)
	if err != nil {
		p.log.Error("filtering subjects", errors.Wrap(err, "filtering subjects"))
		return
	}
	grades, err := p.svc.FilteredGrades(ctx, fc)
	if err != nil {
		p.log.Error("filtering grades", errors.Wrap(err, "filtering grades"))
		return
	}
	stats, err := p.svc.DashboardStats(ctx, fc)
	if err != nil {
		p.log.Error("computing dashboard stats", errors.Wrap(err, "computing dashboard stats"))
		return
	}

	p.mu.Lock()
	p.students = students
	p.faculty = faculty
	p.subjects = subjects
	p.grades = grades
	p.stats = stats
	p.mu.Unlock()
}

// resetLocked publishes the empty state. Callers hold p.mu, except during
// construction when no listener can race.
func (p *Provider) resetLocked() {
	p.students = []academics.Student{}
	p.faculty = []academics.Faculty{}
	p.subjects = []academics.Subject{}
	p.grades = []academics.Grade{}
	p.stats = nil
}

func (p *Provider) setLoading(v bool) {
	p.mu.Lock()
	p.loading = v
	p.mu.Unlock()
}

func (p *Provider) Loading() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.loading
}

func (p *Provider) Students() []academics.Student {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.students
}

func (p *Provider) Faculty() []academics.Faculty {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.faculty
}

func (p *Provider) Subjects() []academics.Subject {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.subjects
}

func (p *Provider) Grades() []academics.Grade {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.grades
}

func (p *Provider) Stats() *Stats {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.stats
}

// Subscribe registers fn to run after every recompute; returns an
// unsubscribe func.
func (p *Provider) Subscribe(fn func()) (unsubscribe func()) {
	p.mu.Lock()
	id := p.nextID
	p.nextID++
	p.listeners[id] = fn
	p.mu.Unlock()

	return func() {
		p.mu.Lock()
		delete(p.listeners, id)
		p.mu.Unlock()
	}
}

func (p *Provider) notify() {
	p.mu.RLock()
	fns := make([]func(), 0, len(p.listeners))
	for _, fn := range p.listeners {
		fns = append(fns, fn)
	}
	p.mu.RUnlock()

	for _, fn := range fns {
		fn()
	}
}

// Close detaches the provider from the session store.
func (p *Provider) Close() {
	if p.unsubscribe != nil {
		p.unsubscribe()
	}
}
