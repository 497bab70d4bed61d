package template

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var ErrVersion = errors.New("invalid version")

// Version is the semantic version of a template.
type Version struct {
	Major uint8 `json:"major"`
	Minor uint8 `json:"minor"`
	Patch uint8 `json:"patch"`
}

// NewVersion returns v1.0.0.
func NewVersion() Version {
	return Version{Major: 1}
}

func bump(p *uint8, name string) error {
	if *p == math.MaxUint8 {
		return fmt.Errorf("%w: %s version is at its maximum %d", ErrVersion, name, *p)
	}
	*p++
	return nil
}

func (v *Version) BumpMajor() error { return bump(&v.Major, "major") }
func (v *Version) BumpMinor() error { return bump(&v.Minor, "minor") }
func (v *Version) BumpPatch() error { return bump(&v.Patch, "patch") }

func (v *Version) Set(major, minor, patch uint8) {
	*v = Version{Major: major, Minor: minor, Patch: patch}
}

// String formats v as vMAJOR.MINOR.PATCH.
func (v Version) String() string {
	return fmt.Sprintf("v%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// ParseVersion accepts the output of String, with or without the leading v.
func ParseVersion(s string) (Version, error) {
	parts := strings.Split(strings.TrimPrefix(s, "v"), ".")
	if len(parts) != 3 {
		return Version{}, fmt.Errorf("%w: %q", ErrVersion, s)
	}
	var n [3]uint8
	for i, p := range parts {
		u, err := strconv.ParseUint(p, 10, 8)
		if err != nil {
			return Version{}, fmt.Errorf("%w: %q: %w", ErrVersion, s, err)
		}
		n[i] = uint8(u)
	}
	return Version{Major: n[0], Minor: n[1], Patch: n[2]}, nil
}
