// Package version parses the semantic version strings carried by the asyncapi field.
package version

import (
	"fmt"
	"strconv"
	"strings"
)

type Version struct {
	Major int
	Minor int
	Patch int
}

func New(major, minor, patch int) *Version {
	return &Version{
		Major: major,
		Minor: minor,
		Patch: patch,
	}
}

func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

func (v Version) Equal(other Version) bool {
	return v.Compare(other) == 0
}

func (v Version) GreaterThan(other Version) bool {
	return v.Compare(other) > 0
}

func (v Version) LessThan(other Version) bool {
	return v.Compare(other) < 0
}

// Compare returns -1, 0 or 1 when v is lower than, equal to or greater than other.
func (v Version) Compare(other Version) int {
	for _, d := range [...]int{v.Major - other.Major, v.Minor - other.Minor, v.Patch - other.Patch} {
		switch {
		case d < 0:
			return -1
		case d > 0:
			return 1
		}
	}
	return 0
}

// Parse parses a MAJOR.MINOR.PATCH version. Pre-release and build suffixes
// (2.6.0-rc1, 2.0.0+build) are accepted and ignored.
func Parse(version string) (*Version, error) {
	core := version
	if i := strings.IndexAny(core, "-+"); i >= 0 {
		core = core[:i]
	}

	parts := strings.Split(core, ".")
	if len(parts) != 3 {
		return nil, fmt.Errorf("invalid version %q: expected MAJOR.MINOR.PATCH", version)
	}

	nums := make([]int, 3)
	for i, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("invalid version %q: %w", version, err)
		}
		if n < 0 {
			return nil, fmt.Errorf("invalid version %q: negative component", version)
		}
		nums[i] = n
	}

	return New(nums[0], nums[1], nums[2]), nil
}

// MustParse is Parse for package level constants; it panics on error.
func MustParse(version string) *Version {
	v, err := Parse(version)
	if err != nil {
		panic(err)
	}
	return v
}
