// Package scopeconf provides three-scope hierarchical configuration
// management: user-global, project-shared, and developer-local settings
// merged with clear precedence.
//
// The root package defines the scope model. Functionality lives in
// subpackages:
//
//   - merge: deep-recursive document merging with overlay precedence
//   - store: per-scope settings document read/write over an injected filesystem
//   - config: the configuration manager (profile, source overrides, merged settings)
//   - locate: conventional path construction for embedding applications
//   - errors: configuration error taxonomy
//   - testutil: test fixtures for settings documents
//
// # Quick Start
//
//	import (
//	    "github.com/randalmurphal/scopeconf"
//	    "github.com/randalmurphal/scopeconf/config"
//	    "github.com/randalmurphal/scopeconf/store"
//	)
//
//	// Application injects the three locations (policy).
//	paths := scopeconf.Paths{
//	    User:    "/home/me/.config/myapp/settings.yaml",
//	    Project: "/repo/.myapp/settings.yaml",
//	    Local:   "/repo/.myapp/settings.local.yaml",
//	}
//
//	// Library provides the mechanism.
//	mgr := config.New(store.New(paths))
//
//	name, ok, err := mgr.ActiveProfile()
//	_ = mgr.SetActiveProfile("dev", scopeconf.ScopeLocal)
//
// Resolution order (highest to lowest priority): local, project, user.
// Every operation re-reads the backing files; there is no caching and no
// cross-process locking. Concurrent writers race and the last writer wins;
// applications needing stronger guarantees must lock around calls.
package scopeconf
