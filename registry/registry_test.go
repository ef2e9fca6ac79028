// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package registry_test

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"code.hybscloud.com/plumb/registry"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func skipNonUnix(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" || runtime.GOOS == "plan9" {
		t.Skip("home and config directories are not taken from $HOME / $XDG_CONFIG_HOME")
	}
}

func TestInstallPath(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "plumb")
	defer teardown()
	skipNonUnix(t)

	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("ENGINE_CACHE", "/var/cache/engine")

	r := registry.New(testconfig.Conf{
		"install.root":  "/opt/engine/",
		"install.sdk":   "sdk/2.1",
		"install.cache": "$ENGINE_CACHE/v1",
		"install.user":  "~/engine",
		"install.empty": "  ",
	})

	tests := []struct {
		name string
		want string
	}{
		{"root", "/opt/engine"},
		{"sdk", "/opt/engine/sdk/2.1"},
		{"cache", "/var/cache/engine/v1"},
		{"user", filepath.Join(home, "engine")},
	}
	for _, tt := range tests {
		got, err := r.InstallPath(tt.name)
		if err != nil {
			t.Fatalf("InstallPath(%q): %v", tt.name, err)
		}
		if got != tt.want {
			t.Fatalf("InstallPath(%q): got %q, want %q", tt.name, got, tt.want)
		}
	}

	for _, name := range []string{"missing", "empty"} {
		if _, err := r.InstallPath(name); !errors.Is(err, registry.ErrNotFound) {
			t.Fatalf("InstallPath(%q): got %v, want ErrNotFound", name, err)
		}
	}

	if raw, ok := r.Lookup("sdk"); !ok || raw != "sdk/2.1" {
		t.Fatalf("Lookup(sdk): got %q, %v", raw, ok)
	}
}

func TestInstallPathRelativeWithoutRoot(t *testing.T) {
	r := registry.New(testconfig.Conf{"install.sdk": "sdk"})
	if _, err := r.InstallPath("sdk"); !errors.Is(err, registry.ErrNotFound) {
		t.Fatalf("InstallPath(sdk) without root: got %v, want ErrNotFound", err)
	}

	// A relative root stays relative
	r = registry.New(testconfig.Conf{"install.root": "engine/./bin"})
	if got, err := r.InstallPath("root"); err != nil || got != "engine/bin" {
		t.Fatalf("InstallPath(root): got %q, %v", got, err)
	}
}

func TestPaths(t *testing.T) {
	r := registry.New(testconfig.Conf{
		"install.root": "/opt/engine",
		"install.sdk":  "sdk",
		"install.docs": "/usr/share/doc/engine",
	})

	entries, err := r.Paths("sdk", "missing", "root", "docs", "sdk")
	if err != nil {
		t.Fatalf("Paths: %v", err)
	}
	want := []registry.Entry{
		{Name: "docs", Path: "/usr/share/doc/engine"},
		{Name: "root", Path: "/opt/engine"},
		{Name: "sdk", Path: "/opt/engine/sdk"},
	}
	if len(entries) != len(want) {
		t.Fatalf("Paths: got %v, want %v", entries, want)
	}
	for i := range want {
		if entries[i] != want[i] {
			t.Fatalf("Paths[%d]: got %v, want %v", i, entries[i], want[i])
		}
	}
}

func TestLoad(t *testing.T) {
	skipNonUnix(t)
	if runtime.GOOS == "darwin" {
		t.Skip("user config directory ignores $XDG_CONFIG_HOME")
	}

	confDir := t.TempDir()
	t.Setenv("HOME", t.TempDir())
	t.Setenv("XDG_CONFIG_HOME", confDir)

	dir := filepath.Join(confDir, "plumbtest")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	nt := "install:\n    root: /opt/engine\n    sdk: sdk/2.1\n"
	if err := os.WriteFile(filepath.Join(dir, "config.nt"), []byte(nt), 0o644); err != nil {
		t.Fatal(err)
	}

	r := registry.Load("plumbtest")
	got, err := r.InstallPath("sdk")
	if err != nil {
		t.Fatalf("InstallPath(sdk): %v", err)
	}
	if got != "/opt/engine/sdk/2.1" {
		t.Fatalf("InstallPath(sdk): got %q", got)
	}

	// No configuration file
	r = registry.Load("plumbtest-absent")
	if _, err := r.InstallPath("root"); !errors.Is(err, registry.ErrNotFound) {
		t.Fatalf("InstallPath(root) without config: got %v, want ErrNotFound", err)
	}
}
