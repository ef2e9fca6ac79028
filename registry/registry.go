// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package registry reads installation paths from the start-up configuration.
//
// Installation entries live under the "install." prefix of a
// [schuko.Configuration]:
//
//	install:
//	    root: /opt/engine
//	    sdk: sdk/2.1
//	    cache: $XDG_CACHE_HOME/engine
//
// Relative paths resolve against install.root; "~" and environment
// variables are expanded.
//
// Configuration files are NestedText (".nt") files found by
// [schuko.LocateConfig] at the platform's natural locations, e.g.
// $HOME/.config/<app>/config.nt on Linux.
package registry

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"code.hybscloud.com/plumb"
	"github.com/npillmayer/schuko"
	"github.com/npillmayer/schuko/schukonf/koanfadapter"
	"github.com/npillmayer/schuko/tracing"
)

// Prefix is the configuration key prefix of installation entries.
const Prefix = "install."

// RootKey names the entry relative paths are resolved against.
const RootKey = "root"

// ErrNotFound indicates that an installation entry is not configured.
var ErrNotFound = errors.New("registry: entry not found")

// tracer writes to trace with key 'plumb'
func tracer() tracing.Trace {
	return tracing.Select("plumb")
}

// Entry is a resolved installation path.
type Entry struct {
	Name string
	Path string
}

// Reader resolves installation entries of a configuration.
type Reader struct {
	conf schuko.Configuration
	home func() (string, error)
}

// New creates a Reader over conf.
func New(conf schuko.Configuration) *Reader {
	return &Reader{conf: conf, home: os.UserHomeDir}
}

// Load reads the configuration of the application appTag and returns a
// Reader over it. A missing configuration file yields a Reader with no
// entries.
func Load(appTag string) *Reader {
	return New(LoadConfig(appTag))
}

// LoadConfig reads the NestedText configuration of the application appTag
// from the platform's configuration locations. Callers may Set further
// keys, such as trace levels, before handing it to New.
func LoadConfig(appTag string) *koanfadapter.KConf {
	conf := koanfadapter.New(nil, appTag, []string{"nt"})
	conf.InitDefaults()
	if files := schuko.LocateConfig(appTag, "", []string{"nt"}); len(files) > 0 {
		tracer().Infof("registry: configuration from %v", files)
	} else {
		tracer().Infof("registry: no configuration found for %q", appTag)
	}
	return conf
}

// Lookup returns the raw value of installation entry name.
func (r *Reader) Lookup(name string) (string, bool) {
	key := Prefix + name
	if !r.conf.IsSet(key) {
		return "", false
	}
	return r.conf.GetString(key), true
}

// InstallPath returns the resolved path of installation entry name.
// Returns an error wrapping ErrNotFound if the entry is missing or empty.
func (r *Reader) InstallPath(name string) (string, error) {
	raw, ok := r.Lookup(name)
	if !ok || strings.TrimSpace(raw) == "" {
		tracer().Debugf("registry: %s%s not set", Prefix, name)
		return "", fmt.Errorf("%w: %s%s", ErrNotFound, Prefix, name)
	}
	p, err := r.expand(raw)
	if err != nil {
		return "", fmt.Errorf("registry: %s%s: %w", Prefix, name, err)
	}
	if !filepath.IsAbs(p) && name != RootKey {
		root, err := r.InstallPath(RootKey)
		if err != nil {
			return "", fmt.Errorf("registry: relative path %q for %s%s: %w", raw, Prefix, name, err)
		}
		p = filepath.Join(root, p)
	}
	return filepath.Clean(p), nil
}

// Paths resolves the given entries and returns those that are configured,
// ordered by name. Duplicate names appear once.
func (r *Reader) Paths(names ...string) ([]Entry, error) {
	var entries plumb.Slice[Entry]
	for _, name := range names {
		p, err := r.InstallPath(name)
		if errors.Is(err, ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		if _, err := plumb.InsertFunc(&entries, Entry{Name: name, Path: p}, byName); err != nil {
			return nil, err
		}
	}
	return entries, nil
}

func byName(a, b Entry) int {
	return strings.Compare(a.Name, b.Name)
}

func (r *Reader) expand(p string) (string, error) {
	p = os.ExpandEnv(p)
	if p == "~" || strings.HasPrefix(p, "~/") {
		home, err := r.home()
		if err != nil {
			return "", err
		}
		p = filepath.Join(home, p[1:])
	}
	return p, nil
}
