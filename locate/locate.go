// Package locate builds conventional scope path triples for embedding
// applications.
//
// The core library never derives locations itself; applications inject a
// scopeconf.Paths. This package is the optional helper that computes the
// common CLI layout:
//
//   - user:    ~/.config/<app>/settings.yaml
//   - project: <project root>/.<app>/settings.yaml
//   - local:   <project root>/.<app>/settings.local.yaml
//
// The project root is the enclosing git repository root by default; supply a
// ProjectRootFinder to customize detection.
package locate

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/randalmurphal/scopeconf"
)

// Options configures conventional path construction.
type Options struct {
	// AppName is the application name. It becomes the directory name under
	// ~/.config/ for the user scope and the ".<AppName>" directory in the
	// project root for the project and local scopes.
	AppName string

	// UserConfigFile is the user-scope filename. Defaults to "settings.yaml".
	UserConfigFile string

	// ProjectConfigFile is the project-scope filename. Defaults to "settings.yaml".
	ProjectConfigFile string

	// LocalConfigFile is the local-scope filename. Defaults to "settings.local.yaml".
	LocalConfigFile string

	// StartDir is where project root detection begins. Defaults to ".".
	StartDir string

	// ProjectRootFinder locates the project root directory. If nil, the
	// enclosing git repository root is used; if no repository encloses
	// StartDir, StartDir itself is used.
	ProjectRootFinder func(startDir string) (string, error)
}

func (o Options) userConfigFile() string {
	if o.UserConfigFile != "" {
		return o.UserConfigFile
	}
	return "settings.yaml"
}

func (o Options) projectConfigFile() string {
	if o.ProjectConfigFile != "" {
		return o.ProjectConfigFile
	}
	return "settings.yaml"
}

func (o Options) localConfigFile() string {
	if o.LocalConfigFile != "" {
		return o.LocalConfigFile
	}
	return "settings.local.yaml"
}

// Paths computes the conventional scope locations for an application.
func Paths(opts Options) (scopeconf.Paths, error) {
	if opts.AppName == "" {
		return scopeconf.Paths{}, fmt.Errorf("locate: AppName is required")
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return scopeconf.Paths{}, fmt.Errorf("locate: cannot determine home directory: %w", err)
	}

	startDir := opts.StartDir
	if startDir == "" {
		startDir = "."
	}

	root := ""
	if opts.ProjectRootFinder != nil {
		if r, err := opts.ProjectRootFinder(startDir); err == nil {
			root = r
		}
	} else {
		root = findGitRoot(startDir)
	}
	if root == "" {
		root = startDir
	}

	appDir := "." + opts.AppName
	return scopeconf.Paths{
		User:    filepath.Join(home, ".config", opts.AppName, opts.userConfigFile()),
		Project: filepath.Join(root, appDir, opts.projectConfigFile()),
		Local:   filepath.Join(root, appDir, opts.localConfigFile()),
	}, nil
}

// findGitRoot finds the git root by looking for a .git directory.
func findGitRoot(startDir string) string {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return ""
	}

	for {
		gitDir := filepath.Join(dir, ".git")
		if info, err := os.Stat(gitDir); err == nil && info.IsDir() {
			return dir
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break // Reached root
		}
		dir = parent
	}

	return ""
}
