package scopeconf

import "fmt"

// Scope identifies one of the three configuration tiers.
//
// Scopes have a fixed precedence order: user < project < local. A value set
// in a higher scope overrides the same value set in a lower scope.
type Scope int

// Configuration scopes, in ascending precedence order.
const (
	// ScopeUser is the user-global scope (lowest precedence),
	// e.g. a settings file under the user's home directory.
	ScopeUser Scope = iota

	// ScopeProject is the project scope, shared via the repository.
	ScopeProject

	// ScopeLocal is the developer-local scope (highest precedence),
	// machine-specific and typically not committed.
	ScopeLocal
)

// ScopesAscending lists all scopes from lowest to highest precedence.
// This is the fold order for merged settings.
var ScopesAscending = []Scope{ScopeUser, ScopeProject, ScopeLocal}

// ScopesDescending lists all scopes from highest to lowest precedence.
// This is the walk order for single-field lookups.
var ScopesDescending = []Scope{ScopeLocal, ScopeProject, ScopeUser}

// String returns the scope's canonical name.
func (s Scope) String() string {
	switch s {
	case ScopeUser:
		return "user"
	case ScopeProject:
		return "project"
	case ScopeLocal:
		return "local"
	default:
		return fmt.Sprintf("scope(%d)", int(s))
	}
}

// Valid reports whether s is one of the three defined scopes.
func (s Scope) Valid() bool {
	return s == ScopeUser || s == ScopeProject || s == ScopeLocal
}

// ParseScope converts a scope name ("user", "project", "local") to a Scope.
func ParseScope(name string) (Scope, error) {
	switch name {
	case "user":
		return ScopeUser, nil
	case "project":
		return ScopeProject, nil
	case "local":
		return ScopeLocal, nil
	default:
		return 0, fmt.Errorf("unknown scope: %q (valid scopes: user, project, local)", name)
	}
}

// Paths holds the location of the settings document for each scope.
//
// The triple is supplied by the embedding application at construction time
// and treated as immutable: changing a location means building a new Paths
// value. The library never infers or validates locations; it only reads and
// writes whatever the application points it at.
type Paths struct {
	// User is the location of the user-global settings document.
	User string

	// Project is the location of the project settings document.
	Project string

	// Local is the location of the developer-local settings document.
	Local string
}

// For returns the location configured for the given scope.
func (p Paths) For(s Scope) string {
	switch s {
	case ScopeUser:
		return p.User
	case ScopeProject:
		return p.Project
	case ScopeLocal:
		return p.Local
	default:
		return ""
	}
}
