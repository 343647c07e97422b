package config

import (
	"github.com/rs/zerolog"

	"github.com/randalmurphal/scopeconf"
	cfgerrors "github.com/randalmurphal/scopeconf/errors"
	"github.com/randalmurphal/scopeconf/merge"
	"github.com/randalmurphal/scopeconf/store"
)

// Document is a settings document.
type Document = map[string]any

// Manager resolves and updates settings across the three configuration
// scopes. It holds no state beyond its store; every operation re-reads the
// backing files.
type Manager struct {
	store *store.Store
	log   zerolog.Logger
}

// Option configures a Manager.
type Option func(*Manager)

// WithLogger sets the logger used for informational messages about
// configuration mutations. Defaults to a no-op logger.
func WithLogger(log zerolog.Logger) Option {
	return func(m *Manager) {
		m.log = log
	}
}

// New creates a configuration manager over the given scope store.
func New(st *store.Store, opts ...Option) *Manager {
	m := &Manager{
		store: st,
		log:   zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// ActiveProfile returns the active profile name, resolved by walking scopes
// from highest to lowest precedence (local, project, user). The bool reports
// whether any scope defines it.
//
// An explicit null at a scope is skipped, not returned: the active profile
// is a user-facing identity, and a null left in a local file should not mask
// a valid project or user profile. This is a special case of this accessor
// only; the merge engine treats null as an ordinary overriding value.
func (m *Manager) ActiveProfile() (string, bool, error) {
	for _, scope := range scopeconf.ScopesDescending {
		doc, err := m.store.Read(scope)
		if err != nil {
			return "", false, err
		}
		if name, ok := profileField(doc, "active"); ok {
			return name, true, nil
		}
	}
	return "", false, nil
}

// SetActiveProfile sets the active profile name in the given scope.
func (m *Manager) SetActiveProfile(name string, scope scopeconf.Scope) error {
	err := m.updateScope(scope, Document{
		"profile": Document{"active": name},
	})
	if err != nil {
		return err
	}
	m.log.Info().Str("profile", name).Stringer("scope", scope).Msg("set active profile")
	return nil
}

// ClearActiveProfile removes the active profile key from the given scope.
// It is a no-op (no write) when the key is not set there.
func (m *Manager) ClearActiveProfile(scope scopeconf.Scope) error {
	removed, err := m.removeProfileField(scope, "active")
	if err != nil {
		return err
	}
	if removed {
		m.log.Info().Stringer("scope", scope).Msg("cleared active profile")
	}
	return nil
}

// ProjectDefault returns the project default profile name. Only the project
// scope is consulted, by definition. The bool reports whether it is set.
func (m *Manager) ProjectDefault() (string, bool, error) {
	doc, err := m.store.Read(scopeconf.ScopeProject)
	if err != nil {
		return "", false, err
	}
	name, ok := profileField(doc, "default")
	return name, ok, nil
}

// SetProjectDefault sets the project default profile. It always writes to
// the project scope.
func (m *Manager) SetProjectDefault(name string) error {
	err := m.updateScope(scopeconf.ScopeProject, Document{
		"profile": Document{"default": name},
	})
	if err != nil {
		return err
	}
	m.log.Info().Str("profile", name).Msg("set project default profile")
	return nil
}

// ClearProjectDefault removes the project default profile. It is a no-op
// (no write) when not set.
func (m *Manager) ClearProjectDefault() error {
	removed, err := m.removeProfileField(scopeconf.ScopeProject, "default")
	if err != nil {
		return err
	}
	if removed {
		m.log.Info().Msg("cleared project default profile")
	}
	return nil
}

// MergedSettings returns the full settings document merged across all three
// scopes in ascending precedence order (user, then project, then local).
// Returns an empty document when nothing is set anywhere.
func (m *Manager) MergedSettings() (Document, error) {
	merged := Document{}
	for _, scope := range scopeconf.ScopesAscending {
		doc, err := m.store.Read(scope)
		if err != nil {
			return nil, err
		}
		merged = merge.Merge(merged, doc)
	}
	return merged, nil
}

// ModuleSources returns the merged module source overrides from all scopes,
// mapping module identifier to source locator. Returns an empty map when no
// overrides are set.
func (m *Manager) ModuleSources() (map[string]string, error) {
	merged, err := m.MergedSettings()
	if err != nil {
		return nil, err
	}

	sources := map[string]string{}
	section, ok := merged["sources"].(Document)
	if !ok {
		return sources, nil
	}
	for moduleID, val := range section {
		if locator, ok := val.(string); ok {
			sources[moduleID] = locator
		}
	}
	return sources, nil
}

// AddSourceOverride sets the source locator for a module in the given scope.
func (m *Manager) AddSourceOverride(moduleID, source string, scope scopeconf.Scope) error {
	err := m.updateScope(scope, Document{
		"sources": Document{moduleID: source},
	})
	if err != nil {
		return err
	}
	m.log.Info().
		Str("module", moduleID).
		Str("source", source).
		Stringer("scope", scope).
		Msg("added source override")
	return nil
}

// RemoveSourceOverride removes a module's source override from the given
// scope. Reports whether an override was actually removed; when the module
// has no override in that scope, no write happens.
func (m *Manager) RemoveSourceOverride(moduleID string, scope scopeconf.Scope) (bool, error) {
	doc, err := m.store.Read(scope)
	if err != nil {
		return false, err
	}

	section, ok := doc["sources"].(Document)
	if !ok {
		return false, nil
	}
	if _, ok := section[moduleID]; !ok {
		return false, nil
	}

	delete(section, moduleID)
	if len(section) == 0 {
		delete(doc, "sources")
	}

	if err := m.store.Write(scope, doc); err != nil {
		return false, err
	}
	m.log.Info().Str("module", moduleID).Stringer("scope", scope).Msg("removed source override")
	return true, nil
}

// UpdateSettings deep-merges arbitrary updates into the given scope's
// settings. For advanced use beyond the profile and source accessors.
func (m *Manager) UpdateSettings(updates Document, scope scopeconf.Scope) error {
	return m.updateScope(scope, updates)
}

// ScopePath returns the backing location configured for a scope.
func (m *Manager) ScopePath(scope scopeconf.Scope) string {
	return m.store.Path(scope)
}

// updateScope validates an update payload, deep-merges it into the scope's
// existing document, and writes the result back.
func (m *Manager) updateScope(scope scopeconf.Scope, updates Document) error {
	if err := validateUpdates(updates, scope); err != nil {
		return err
	}

	existing, err := m.store.Read(scope)
	if err != nil {
		return err
	}
	return m.store.Write(scope, merge.Merge(existing, updates))
}

// validateUpdates enforces the one structural rule: profile.default may only
// be written at project scope.
func validateUpdates(updates Document, scope scopeconf.Scope) error {
	if scope == scopeconf.ScopeProject {
		return nil
	}
	profile, ok := updates["profile"].(Document)
	if !ok {
		return nil
	}
	if _, present := profile["default"]; present {
		return cfgerrors.NewValidationError("profile.default", scope.String(),
			"the default profile may only be set in the project scope")
	}
	return nil
}

// removeProfileField deletes one profile field from a scope's document,
// pruning the profile section when it becomes empty. Reports whether the
// field was present.
func (m *Manager) removeProfileField(scope scopeconf.Scope, field string) (bool, error) {
	doc, err := m.store.Read(scope)
	if err != nil {
		return false, err
	}

	profile, ok := doc["profile"].(Document)
	if !ok {
		return false, nil
	}
	if _, present := profile[field]; !present {
		return false, nil
	}

	delete(profile, field)
	if len(profile) == 0 {
		delete(doc, "profile")
	}

	if err := m.store.Write(scope, doc); err != nil {
		return false, err
	}
	return true, nil
}

// profileField extracts a string-valued profile field from a scope document.
// Explicit nulls and non-string values read as not set.
func profileField(doc Document, field string) (string, bool) {
	profile, ok := doc["profile"].(Document)
	if !ok {
		return "", false
	}
	name, ok := profile[field].(string)
	return name, ok
}
