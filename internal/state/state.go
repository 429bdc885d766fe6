// Package state holds the single in-memory application state object. It is
// constructed once in main and injected into every consumer; mutation goes
// through its declared operations only. Setters write through to the
// persistent store and surface a confirmation toast.
package state

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/smaamdev/esekolah/internal/domain"
	"github.com/smaamdev/esekolah/internal/notify"
	"github.com/smaamdev/esekolah/internal/store"
)

// DefaultView is the view shown after logout.
const DefaultView = "Dashboard"

// App is the domain state container. TUI commands run on their own
// goroutines, so access is guarded by a mutex.
type App struct {
	mu sync.RWMutex

	store    *store.Store
	session  *store.SessionStore
	notifier *notify.Notifier

	identity   *domain.Identity
	activeView string

	permissions   domain.Permissions
	siteConfig    domain.SiteConfig
	schoolProfile domain.SchoolProfile
	announcements []domain.Announcement
	programs      []domain.Program
	teachers      []domain.Teacher

	generation int64
}

// New returns an App seeded with defaults. Call Load to hydrate from the
// store and session.
func New(kv *store.Store, session *store.SessionStore, notifier *notify.Notifier) *App {
	return &App{
		store:         kv,
		session:       session,
		notifier:      notifier,
		activeView:    DefaultView,
		permissions:   domain.DefaultPermissions(),
		siteConfig:    domain.DefaultSiteConfig(),
		schoolProfile: domain.DefaultSchoolProfile(),
		announcements: domain.SeedAnnouncements(),
		programs:      domain.SeedPrograms(),
		teachers:      domain.SeedTeachers(),
		generation:    time.Now().UnixMilli(),
	}
}

// Load hydrates the container from persistent and session storage. Each
// key degrades independently: a corrupt value leaves that entity on its
// default without affecting the others.
func (a *App) Load() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if _, err := a.store.GetJSON(store.KeyPermissions, &a.permissions); err != nil {
		return err
	}

	var cfg domain.SiteConfig
	ok, err := a.store.GetJSON(store.KeyConfig, &cfg)
	if err != nil {
		return err
	}
	if ok {
		// A missing or retired endpoint URL migrates to the baked-in one.
		if cfg.GoogleScriptURL == "" || strings.Contains(cfg.GoogleScriptURL, domain.StaleScriptURLMarker) {
			cfg.GoogleScriptURL = domain.DefaultScriptURL
		}
		a.siteConfig = cfg
	}

	if _, err := a.store.GetJSON(store.KeyTeachers, &a.teachers); err != nil {
		return err
	}
	if _, err := a.store.GetJSON(store.KeySchoolProfile, &a.schoolProfile); err != nil {
		return err
	}
	if _, err := a.store.GetJSON(store.KeyAnnouncements, &a.announcements); err != nil {
		return err
	}
	if _, err := a.store.GetJSON(store.KeyPrograms, &a.programs); err != nil {
		return err
	}

	id, err := a.session.Load()
	if err != nil {
		return err
	}
	a.identity = id

	return nil
}

// Notifier exposes the toast channel to views.
func (a *App) Notifier() *notify.Notifier { return a.notifier }

// ── identity ────────────────────────────────────────────────────────────────

// Identity returns the logged-in user, or nil.
func (a *App) Identity() *domain.Identity {
	a.mu.RLock()
	defer a.mu.RUnlock()
	if a.identity == nil {
		return nil
	}
	id := *a.identity
	return &id
}

// Login records the identity in the session store. The role is supplied by
// the caller; no credential check happens here.
func (a *App) Login(username string, role domain.Role) error {
	name := "Admin Bertugas"
	if role == domain.RoleAdminSistem {
		name = "Admin Sistem"
	}
	id := domain.Identity{Username: username, Role: role, Name: name}

	a.mu.Lock()
	a.identity = &id
	a.mu.Unlock()

	if err := a.session.Save(id); err != nil {
		return err
	}
	a.notifier.Show(fmt.Sprintf("Selamat datang, %s", id.Name))
	return nil
}

// Logout clears the session and resets the active view.
func (a *App) Logout() error {
	a.mu.Lock()
	a.identity = nil
	a.activeView = DefaultView
	a.mu.Unlock()

	if err := a.session.Clear(); err != nil {
		return err
	}
	a.notifier.Show("Log keluar berjaya")
	return nil
}

// ActiveView returns the current view name.
func (a *App) ActiveView() string {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.activeView
}

// SetActiveView records the current view name.
func (a *App) SetActiveView(view string) {
	a.mu.Lock()
	a.activeView = view
	a.mu.Unlock()
}

// ── permissions / config / profile ──────────────────────────────────────────

// Permissions returns the module permission flags.
func (a *App) Permissions() domain.Permissions {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.permissions
}

// SetPermissions replaces the permission flags. The adminsistem-role check
// is the caller's responsibility; the container trusts its caller.
func (a *App) SetPermissions(p domain.Permissions) error {
	a.mu.Lock()
	a.permissions = p
	a.mu.Unlock()

	if err := a.store.Set(store.KeyPermissions, p); err != nil {
		return err
	}
	a.notifier.Show("Kebenaran modul dikemaskini")
	return nil
}

// SiteConfig returns the site configuration.
func (a *App) SiteConfig() domain.SiteConfig {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.siteConfig
}

// SetSiteConfig replaces the site configuration.
func (a *App) SetSiteConfig(cfg domain.SiteConfig) error {
	a.mu.Lock()
	a.siteConfig = cfg
	a.mu.Unlock()

	if err := a.store.Set(store.KeyConfig, cfg); err != nil {
		return err
	}
	a.notifier.Show("Tetapan sistem dikemaskini")
	return nil
}

// SchoolProfile returns the school profile.
func (a *App) SchoolProfile() domain.SchoolProfile {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.schoolProfile
}

// SetSchoolProfile replaces the school profile.
func (a *App) SetSchoolProfile(p domain.SchoolProfile) error {
	a.mu.Lock()
	a.schoolProfile = p
	a.mu.Unlock()

	if err := a.store.Set(store.KeySchoolProfile, p); err != nil {
		return err
	}
	a.notifier.Show("Profil sekolah dikemaskini")
	return nil
}

// ── announcements ───────────────────────────────────────────────────────────

// Announcements returns the announcement collection, newest first.
func (a *App) Announcements() []domain.Announcement {
	a.mu.RLock()
	defer a.mu.RUnlock()
	out := make([]domain.Announcement, len(a.announcements))
	copy(out, a.announcements)
	return out
}

// AddAnnouncement prepends a new announcement.
func (a *App) AddAnnouncement(item domain.Announcement) error {
	a.mu.Lock()
	a.announcements = append([]domain.Announcement{item}, a.announcements...)
	list := a.announcements
	a.mu.Unlock()

	if err := a.store.Set(store.KeyAnnouncements, list); err != nil {
		return err
	}
	a.notifier.Show("Pengumuman ditambah")
	return nil
}

// ── programs ────────────────────────────────────────────────────────────────

// Programs returns the program collection, newest first.
func (a *App) Programs() []domain.Program {
	a.mu.RLock()
	defer a.mu.RUnlock()
	out := make([]domain.Program, len(a.programs))
	copy(out, a.programs)
	return out
}

// AddProgram prepends a new program.
func (a *App) AddProgram(item domain.Program) error {
	a.mu.Lock()
	a.programs = append([]domain.Program{item}, a.programs...)
	list := a.programs
	a.mu.Unlock()

	if err := a.store.Set(store.KeyPrograms, list); err != nil {
		return err
	}
	a.notifier.Show("Program ditambah")
	return nil
}

// UpdateProgram replaces the program with a matching id, preserving order.
func (a *App) UpdateProgram(item domain.Program) error {
	a.mu.Lock()
	for i := range a.programs {
		if a.programs[i].ID == item.ID {
			a.programs[i] = item
		}
	}
	list := a.programs
	a.mu.Unlock()

	if err := a.store.Set(store.KeyPrograms, list); err != nil {
		return err
	}
	a.notifier.Show("Program dikemaskini")
	return nil
}

// DeleteProgram removes the program with the given id.
func (a *App) DeleteProgram(id int64) error {
	a.mu.Lock()
	kept := a.programs[:0]
	for _, p := range a.programs {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	a.programs = kept
	list := a.programs
	a.mu.Unlock()

	if err := a.store.Set(store.KeyPrograms, list); err != nil {
		return err
	}
	a.notifier.Show("Program dipadam")
	return nil
}

// ── teachers ────────────────────────────────────────────────────────────────

// Teachers returns the teacher directory in insertion order.
func (a *App) Teachers() []domain.Teacher {
	a.mu.RLock()
	defer a.mu.RUnlock()
	out := make([]domain.Teacher, len(a.teachers))
	copy(out, a.teachers)
	return out
}

// AddTeacher appends a teacher to the directory. Unlike announcements and
// programs, the directory keeps its roster order, so new entries go last.
func (a *App) AddTeacher(t domain.Teacher) error {
	a.mu.Lock()
	a.teachers = append(a.teachers, t)
	list := a.teachers
	a.mu.Unlock()

	if err := a.store.Set(store.KeyTeachers, list); err != nil {
		return err
	}
	a.notifier.Show("Guru ditambah")
	return nil
}

// UpdateTeacher replaces the teacher with a matching id, preserving order.
func (a *App) UpdateTeacher(t domain.Teacher) error {
	a.mu.Lock()
	for i := range a.teachers {
		if a.teachers[i].ID == t.ID {
			a.teachers[i] = t
		}
	}
	list := a.teachers
	a.mu.Unlock()

	if err := a.store.Set(store.KeyTeachers, list); err != nil {
		return err
	}
	a.notifier.Show("Maklumat guru dikemaskini")
	return nil
}

// DeleteTeacher removes the teacher with the given id.
func (a *App) DeleteTeacher(id string) error {
	a.mu.Lock()
	kept := a.teachers[:0]
	for _, t := range a.teachers {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	a.teachers = kept
	list := a.teachers
	a.mu.Unlock()

	if err := a.store.Set(store.KeyTeachers, list); err != nil {
		return err
	}
	a.notifier.Show("Rekod guru dipadam")
	return nil
}

// ── replace setters (sync pull) ─────────────────────────────────────────────

// ReplacePermissions overwrites permissions from a sync pull, without a toast.
func (a *App) ReplacePermissions(p domain.Permissions) error {
	a.mu.Lock()
	a.permissions = p
	a.mu.Unlock()
	return a.store.Set(store.KeyPermissions, p)
}

// ReplaceSiteConfig overwrites the site config from a sync pull. The caller
// is responsible for preserving the local GoogleScriptURL.
func (a *App) ReplaceSiteConfig(cfg domain.SiteConfig) error {
	a.mu.Lock()
	a.siteConfig = cfg
	a.mu.Unlock()
	return a.store.Set(store.KeyConfig, cfg)
}

// ReplaceSchoolProfile overwrites the school profile from a sync pull.
func (a *App) ReplaceSchoolProfile(p domain.SchoolProfile) error {
	a.mu.Lock()
	a.schoolProfile = p
	a.mu.Unlock()
	return a.store.Set(store.KeySchoolProfile, p)
}

// ReplaceAnnouncements overwrites the announcement collection.
func (a *App) ReplaceAnnouncements(list []domain.Announcement) error {
	a.mu.Lock()
	a.announcements = list
	a.mu.Unlock()
	return a.store.Set(store.KeyAnnouncements, list)
}

// ReplacePrograms overwrites the program collection.
func (a *App) ReplacePrograms(list []domain.Program) error {
	a.mu.Lock()
	a.programs = list
	a.mu.Unlock()
	return a.store.Set(store.KeyPrograms, list)
}

// ReplaceTeachers overwrites the teacher directory.
func (a *App) ReplaceTeachers(list []domain.Teacher) error {
	a.mu.Lock()
	a.teachers = list
	a.mu.Unlock()
	return a.store.Set(store.KeyTeachers, list)
}

// ── generation counter ──────────────────────────────────────────────────────

// Generation returns the marker that module views compare to know whether
// storage was rewritten behind their back by a sync pull.
func (a *App) Generation() int64 {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.generation
}

// BumpGeneration advances the marker. Strictly monotonic even when two
// bumps land in the same millisecond.
func (a *App) BumpGeneration() {
	a.mu.Lock()
	defer a.mu.Unlock()
	now := time.Now().UnixMilli()
	if now <= a.generation {
		now = a.generation + 1
	}
	a.generation = now
}
