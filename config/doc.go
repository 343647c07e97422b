// Package config provides the three-scope configuration manager.
//
// The manager resolves settings across the user, project, and local scopes
// with clear precedence (highest to lowest):
//
//  1. Local settings (machine-specific)
//  2. Project settings (repository)
//  3. User settings (global)
//
// Single well-known fields (the active profile) are resolved by walking
// scopes from highest to lowest precedence and returning the first hit. Bulk
// settings are resolved by reading all three scope documents and deep-merging
// them in ascending precedence order, so the two resolution paths always
// agree.
//
// # Basic Usage
//
//	st := store.New(scopeconf.Paths{
//	    User:    userSettingsPath,
//	    Project: projectSettingsPath,
//	    Local:   localSettingsPath,
//	})
//	mgr := config.New(st)
//
//	name, ok, err := mgr.ActiveProfile()
//	err = mgr.SetActiveProfile("dev", scopeconf.ScopeLocal)
//	settings, err := mgr.MergedSettings()
//
// Every call re-reads the backing files; nothing is cached. Writes are plain
// read-modify-write cycles with no locking, so concurrent writers to the
// same scope file race and the last writer wins.
//
// # Well-known sections
//
// The manager gives typed access to two top-level sections: "profile"
// (fields "active" in any scope and "default" in the project scope only) and
// "sources" (module identifier to source locator). Any other section passes
// through UpdateSettings and MergedSettings unvalidated.
package config
