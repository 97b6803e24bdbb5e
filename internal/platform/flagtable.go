package platform

import (
	"sort"

	launchererrors "sst-launcher/internal/errors"
)

// FlagTable maps OS identifiers to the extra JVM flags used on that OS. It is
// immutable once constructed; lookups hand out copies.
type FlagTable struct {
	entries map[Platform][]string
}

// NewFlagTable builds a table from entries, copying every slice. Keys are
// normalized so "linux" and "Linux" address the same entry; when both are
// present the key that sorts last wins. Callers loading user input should
// reject such collisions first with DuplicatePlatforms.
func NewFlagTable(entries map[string][]string) *FlagTable {
	t := &FlagTable{entries: make(map[Platform][]string, len(entries))}
	names := make([]string, 0, len(entries))
	for name := range entries {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		t.entries[NormalizeOS(name)] = append([]string{}, entries[name]...)
	}
	return t
}

// DuplicatePlatforms returns, sorted, the keys of entries that normalize to
// the same identifier as another key.
func DuplicatePlatforms(entries map[string][]string) []string {
	byPlatform := make(map[Platform][]string, len(entries))
	for name := range entries {
		p := NormalizeOS(name)
		byPlatform[p] = append(byPlatform[p], name)
	}

	var dups []string
	for _, names := range byPlatform {
		if len(names) > 1 {
			dups = append(dups, names...)
		}
	}
	sort.Strings(dups)
	return dups
}

// DefaultFlagTable returns the built-in table
func DefaultFlagTable() *FlagTable {
	return NewFlagTable(DefaultFlags())
}

// DefaultFlags returns a fresh copy of the built-in table entries
func DefaultFlags() map[string][]string {
	return map[string][]string{
		PLATFORM_DARWIN:  {FLAG_AGGRESSIVE_HEAP},
		PLATFORM_LINUX:   {FLAG_AGGRESSIVE_HEAP, FLAG_USER_SIGNAL_HANDLERS, FLAG_CHECK_JNI},
		PLATFORM_WINDOWS: {FLAG_AGGRESSIVE_HEAP, FLAG_CHECK_JNI},
	}
}

// Lookup returns the flags for platform. A platform without an entry is an
// UnsupportedPlatformError, never an empty flag list.
func (t *FlagTable) Lookup(platform Platform) ([]string, error) {
	flags, ok := t.entries[platform]
	if !ok {
		return nil, launchererrors.NewUnsupportedPlatformError(platform.String(), t.Platforms())
	}
	return append([]string{}, flags...), nil
}

// Platforms returns the identifiers in the table, sorted
func (t *FlagTable) Platforms() []string {
	names := make([]string, 0, len(t.entries))
	for p := range t.entries {
		names = append(names, p.String())
	}
	sort.Strings(names)
	return names
}
