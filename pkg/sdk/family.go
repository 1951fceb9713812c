// Package sdk implements the package-listing and selection protocol around
// the Android SDK sdkmanager tool.
package sdk

import (
	"fmt"
	"regexp"
	"strings"
)

// Family selects which rows of a listing belong to a package category.
type Family int

const (
	// FamilyAll matches every package row of the listing.
	FamilyAll Family = iota
	// FamilyBuildTools matches only build-tools packages.
	FamilyBuildTools
)

// Row patterns for each family.
var familyPatterns = map[Family]*regexp.Regexp{
	// Matches: "  platform-tools | 34.0.5 | Android SDK Platform-Tools"
	FamilyAll: regexp.MustCompile(`^\s+[\-\w;\.]+\s+\|\s[0-9]`),

	// Matches: "  build-tools;30.0.3 | 30.0.3 | Android SDK Build-Tools 30.0.3"
	FamilyBuildTools: regexp.MustCompile(`^\s*build-tools;`),
}

// Matches reports whether a single listing line belongs to the family.
func (f Family) Matches(line string) bool {
	re, ok := familyPatterns[f]
	if !ok {
		return false
	}
	return re.MatchString(line)
}

// String returns the command name used for the family.
func (f Family) String() string {
	switch f {
	case FamilyAll:
		return "all"
	case FamilyBuildTools:
		return "buildtools"
	}
	return fmt.Sprintf("family(%d)", int(f))
}

// ParseFamily returns the family for a command or family name.
func ParseFamily(name string) (Family, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "all", "":
		return FamilyAll, nil
	case "buildtools", "build-tools":
		return FamilyBuildTools, nil
	}
	return FamilyAll, fmt.Errorf("unknown package family: %q", name)
}
