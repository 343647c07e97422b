package store

import (
	"errors"
	"reflect"
	"testing"

	"github.com/spf13/afero"

	"github.com/randalmurphal/scopeconf"
	cfgerrors "github.com/randalmurphal/scopeconf/errors"
	"github.com/randalmurphal/scopeconf/testutil"
)

func memStore(t *testing.T) (*Store, afero.Fs, scopeconf.Paths) {
	t.Helper()
	fs := afero.NewMemMapFs()
	paths := testutil.TempPaths(t)
	return New(paths, WithFs(fs)), fs, paths
}

func TestStore_Read_MissingFileIsEmptyDocument(t *testing.T) {
	st, _, _ := memStore(t)

	for _, scope := range scopeconf.ScopesAscending {
		doc, err := st.Read(scope)
		if err != nil {
			t.Fatalf("Read(%s) error = %v", scope, err)
		}
		if doc == nil || len(doc) != 0 {
			t.Errorf("Read(%s) = %v, want empty document", scope, doc)
		}
	}
}

func TestStore_Read(t *testing.T) {
	st, fs, paths := memStore(t)

	testutil.WriteSettings(t, fs, paths.Project, map[string]any{
		"profile": map[string]any{"default": "dev"},
		"sources": map[string]any{"mod-a": "git@example.com:a.git"},
	})

	doc, err := st.Read(scopeconf.ScopeProject)
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}

	profile, ok := doc["profile"].(map[string]any)
	if !ok {
		t.Fatalf("profile section missing or wrong type: %v", doc["profile"])
	}
	if profile["default"] != "dev" {
		t.Errorf("profile.default = %v, want %q", profile["default"], "dev")
	}
}

func TestStore_Read_EmptyFile(t *testing.T) {
	st, fs, paths := memStore(t)

	testutil.WriteSettingsRaw(t, fs, paths.Local, []byte("# nothing but a comment\n"))

	doc, err := st.Read(scopeconf.ScopeLocal)
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if len(doc) != 0 {
		t.Errorf("Read() = %v, want empty document", doc)
	}
}

func TestStore_Read_MalformedFile(t *testing.T) {
	st, fs, paths := memStore(t)

	testutil.WriteSettingsRaw(t, fs, paths.User, []byte("profile: [unclosed\n"))

	_, err := st.Read(scopeconf.ScopeUser)
	if err == nil {
		t.Fatal("Read() expected error for malformed file")
	}
	if !cfgerrors.IsFileError(err) {
		t.Errorf("Read() error = %v, want FileError", err)
	}
}

func TestStore_WriteReadRoundTrip(t *testing.T) {
	st, _, _ := memStore(t)

	want := Document{
		"profile": map[string]any{"active": "dev"},
		"custom": map[string]any{
			"nested": map[string]any{"flag": true},
			"list":   []any{"a", "b"},
		},
	}

	if err := st.Write(scopeconf.ScopeLocal, want); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	got, err := st.Read(scopeconf.ScopeLocal)
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("round trip = %v, want %v", got, want)
	}
}

func TestStore_Write_CreatesParentDirectories(t *testing.T) {
	st, fs, paths := memStore(t)

	if err := st.Write(scopeconf.ScopeUser, Document{"a": 1}); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	exists, err := afero.Exists(fs, paths.User)
	if err != nil || !exists {
		t.Errorf("settings file not created at %s (exists=%v, err=%v)", paths.User, exists, err)
	}
}

func TestStore_Write_NullValuePersists(t *testing.T) {
	st, _, _ := memStore(t)

	if err := st.Write(scopeconf.ScopeLocal, Document{"x": nil}); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	doc, err := st.Read(scopeconf.ScopeLocal)
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	val, present := doc["x"]
	if !present {
		t.Fatal("explicit null key lost in round trip")
	}
	if val != nil {
		t.Errorf("x = %v, want nil", val)
	}
}

func TestStore_Write_ReadOnlyFs(t *testing.T) {
	fs := afero.NewMemMapFs()
	paths := testutil.TempPaths(t)
	st := New(paths, WithFs(afero.NewReadOnlyFs(fs)))

	err := st.Write(scopeconf.ScopeProject, Document{"a": 1})
	if err == nil {
		t.Fatal("Write() expected error on read-only filesystem")
	}
	if !cfgerrors.IsFileError(err) {
		t.Errorf("Write() error = %v, want FileError", err)
	}
}

func TestStore_NilCodec(t *testing.T) {
	st := New(testutil.TempPaths(t), WithFs(afero.NewMemMapFs()), WithCodec(nil))

	_, readErr := st.Read(scopeconf.ScopeUser)
	writeErr := st.Write(scopeconf.ScopeUser, Document{})

	for _, err := range []error{readErr, writeErr} {
		if err == nil {
			t.Fatal("expected codec-unavailable error, got nil")
		}
		if !cfgerrors.IsCodecUnavailable(err) {
			t.Errorf("error = %v, want codec-unavailable", err)
		}
		if !errors.Is(err, cfgerrors.ErrCodecUnavailable) {
			t.Error("error should unwrap to ErrCodecUnavailable")
		}
	}
}

func TestStore_Path(t *testing.T) {
	paths := scopeconf.Paths{User: "u.yaml", Project: "p.yaml", Local: "l.yaml"}
	st := New(paths)

	if got := st.Path(scopeconf.ScopeProject); got != "p.yaml" {
		t.Errorf("Path(project) = %q, want %q", got, "p.yaml")
	}
}

func TestStore_FilePermissions(t *testing.T) {
	// Real filesystem: MemMapFs does not track permissions faithfully.
	paths := testutil.TempPaths(t)
	st := New(paths)

	if err := st.Write(scopeconf.ScopeUser, Document{"a": 1}); err != nil {
		t.Fatalf("Write(user) error = %v", err)
	}
	if err := st.Write(scopeconf.ScopeProject, Document{"a": 1}); err != nil {
		t.Fatalf("Write(project) error = %v", err)
	}

	osFs := afero.NewOsFs()
	userInfo, err := osFs.Stat(paths.User)
	if err != nil {
		t.Fatalf("Stat(user) error = %v", err)
	}
	if got := userInfo.Mode().Perm(); got != 0o600 {
		t.Errorf("user settings mode = %o, want 600 (private)", got)
	}

	projInfo, err := osFs.Stat(paths.Project)
	if err != nil {
		t.Fatalf("Stat(project) error = %v", err)
	}
	if got := projInfo.Mode().Perm(); got != 0o644 {
		t.Errorf("project settings mode = %o, want 644 (shared)", got)
	}
}
