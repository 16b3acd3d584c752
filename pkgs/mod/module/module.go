// Package module defines the module.Version type along with support code
// for ordering package versions.
package module

import (
	"sort"
	"strings"
)

// A Version represents a specific version of a package identified by its ID.
type Version struct {
	ID      string `json:"id" yaml:"id"`           // Package name (e.g., "busybox")
	Version string `json:"version" yaml:"version"` // Version string (e.g., "1.36.1-r2")
}

// String returns the "id@version" form of v, or just the ID if v carries
// no version.
func (v Version) String() string {
	if v.Version == "" {
		return v.ID
	}
	return v.ID + "@" + v.Version
}

// ParseVersion parses an argument in the form "id@version" or "id".
// The version is everything after the last '@'.
func ParseVersion(arg string) Version {
	if i := strings.LastIndexByte(arg, '@'); i >= 0 {
		return Version{ID: arg[:i], Version: arg[i+1:]}
	}
	return Version{ID: arg}
}

// VersionComparator compares two versions and returns a negative value if
// v1 < v2, zero if v1 == v2 and a positive value if v1 > v2.
type VersionComparator func(v1, v2 string) int

// Sort sorts a list of versions first by ID, then by version using cmp.
// Entries that compare equal keep their relative order.
func Sort(cmp VersionComparator, list []Version) {
	sort.SliceStable(list, func(i, j int) bool {
		mi := list[i]
		mj := list[j]
		if mi.ID != mj.ID {
			return mi.ID < mj.ID
		}
		return cmp(mi.Version, mj.Version) < 0
	})
}

// Max returns the maximum of v1 and v2 according to cmp, preferring v1 on a
// tie.
//
// As a special case, the version "" is considered higher than all other
// versions: a package referenced without a version pins nothing and must be
// chosen over any pinned version of the same package.
func Max(cmp VersionComparator, v1, v2 string) string {
	if cmpVersion(cmp, v1, v2) < 0 {
		return v2
	}
	return v1
}

func cmpVersion(cmp VersionComparator, v1, v2 string) int {
	if v2 == "" {
		if v1 == "" {
			return 0
		}
		return -1
	}
	if v1 == "" {
		return 1
	}
	return cmp(v1, v2)
}

// Latest reduces list to one entry per ID holding its maximum version
// according to Max. The result is sorted by ID.
func Latest(cmp VersionComparator, list []Version) []Version {
	latest := make(map[string]string, len(list))
	seen := make(map[string]bool, len(list))
	for _, m := range list {
		if !seen[m.ID] {
			seen[m.ID] = true
			latest[m.ID] = m.Version
			continue
		}
		latest[m.ID] = Max(cmp, latest[m.ID], m.Version)
	}

	ret := make([]Version, 0, len(latest))
	for id, v := range latest {
		ret = append(ret, Version{ID: id, Version: v})
	}
	sort.Slice(ret, func(i, j int) bool {
		return ret[i].ID < ret[j].ID
	})
	return ret
}
