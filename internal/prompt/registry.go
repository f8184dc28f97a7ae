package prompt

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"zeroenh/internal/logging"
)

// DefaultProfileName is the registry key of the embedded vocabulary.
const DefaultProfileName = "default"

// Registry holds the loaded profiles for one directory. The builtin
// default is always present; a default profile file in the directory
// shadows it. Lookups are safe against concurrent reloads.
type Registry struct {
	dir string

	mu       sync.RWMutex
	profiles map[string]*Profile
	names    []string
}

// NewRegistry returns a registry for dir holding only the builtin
// default. Call Reload to pick up the directory's files.
func NewRegistry(dir string) *Registry {
	r := &Registry{dir: dir}
	r.install(nil)
	return r
}

// Reload reads every profile file in the directory and swaps the loaded
// set in atomically. Files that fail to load are skipped with a warning
// so one broken profile cannot take down the rest. A missing directory
// leaves just the builtin default.
func (r *Registry) Reload() error {
	entries, err := os.ReadDir(r.dir)
	if err != nil {
		if os.IsNotExist(err) {
			r.install(nil)
			return nil
		}
		return fmt.Errorf("read profiles dir: %w", err)
	}

	var loaded []*Profile
	for _, entry := range entries {
		if entry.IsDir() || !isProfileFile(entry.Name()) {
			continue
		}
		p, err := LoadProfileFile(filepath.Join(r.dir, entry.Name()))
		if err != nil {
			logging.Get(logging.CategoryRegistry).Warn("skipping profile %s: %v", entry.Name(), err)
			logging.Audit().ProfileSkip(entry.Name(), err)
			continue
		}
		loaded = append(loaded, p)
	}
	r.install(loaded)
	logging.Registry("loaded %d profiles from %s", len(loaded), r.dir)
	logging.Audit().ProfileReload(r.dir, len(loaded))
	return nil
}

func (r *Registry) install(loaded []*Profile) {
	profiles := map[string]*Profile{DefaultProfileName: DefaultProfile()}
	for _, p := range loaded {
		profiles[profileKey(p)] = p
	}
	names := make([]string, 0, len(profiles))
	for name := range profiles {
		if name != DefaultProfileName {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	names = append([]string{DefaultProfileName}, names...)

	r.mu.Lock()
	r.profiles = profiles
	r.names = names
	r.mu.Unlock()
}

// Get resolves a profile by name, case-insensitively. The empty name
// means the default profile.
func (r *Registry) Get(name string) (*Profile, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" {
		key = DefaultProfileName
	}
	r.mu.RLock()
	p, ok := r.profiles[key]
	names := r.names
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("unknown profile %q (known: %s)", name, strings.Join(names, ", "))
	}
	return p, nil
}

// Names lists the registry keys, default first, the rest sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]string(nil), r.names...)
}

// Profiles returns the loaded profiles in Names order.
func (r *Registry) Profiles() []*Profile {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*Profile, 0, len(r.names))
	for _, name := range r.names {
		out = append(out, r.profiles[name])
	}
	return out
}

// Dir returns the directory the registry loads from.
func (r *Registry) Dir() string {
	return r.dir
}

func profileKey(p *Profile) string {
	if p.Source == "" {
		return strings.ToLower(p.Name)
	}
	base := filepath.Base(p.Source)
	return strings.ToLower(strings.TrimSuffix(base, filepath.Ext(base)))
}

func isProfileFile(name string) bool {
	if strings.HasPrefix(name, ".") {
		return false
	}
	switch strings.ToLower(filepath.Ext(name)) {
	case ".json", ".yaml", ".yml":
		return true
	}
	return false
}
