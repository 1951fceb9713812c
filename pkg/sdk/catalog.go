package sdk

import (
	"fmt"
	"strconv"
	"strings"
)

// Section markers printed by sdkmanager --list.
const (
	availableMarker = "Available Packages"
	installedMarker = "Installed packages"
)

// Catalog is the result of one listing: available and installed package
// descriptors in the order the tool printed them.
type Catalog struct {
	Available []string `json:"available"`
	Installed []string `json:"installed"`
}

// ParseCatalog scans raw sdkmanager --list output and splits the lines that
// match the family into the available and installed sections.
//
// A section stays active until the other marker is seen. Marker lines are
// never data. Lines outside any section or not matching the family are
// dropped.
func ParseCatalog(output string, family Family) *Catalog {
	catalog := &Catalog{
		Available: []string{},
		Installed: []string{},
	}

	inAvailable := false
	inInstalled := false

	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimSuffix(line, "\r")

		if !inInstalled && strings.Contains(line, installedMarker) {
			inAvailable = false
			inInstalled = true
			continue
		}
		if !inAvailable && strings.Contains(line, availableMarker) {
			inInstalled = false
			inAvailable = true
			continue
		}

		if !family.Matches(line) {
			continue
		}

		line = strings.TrimSpace(line)
		if inInstalled {
			catalog.Installed = append(catalog.Installed, line)
		} else if inAvailable {
			catalog.Available = append(catalog.Available, line)
		}
	}

	return catalog
}

// Clone returns a deep copy of the catalog.
func (c *Catalog) Clone() *Catalog {
	return &Catalog{
		Available: append([]string{}, c.Available...),
		Installed: append([]string{}, c.Installed...),
	}
}

// Empty reports whether both sections are empty.
func (c *Catalog) Empty() bool {
	return len(c.Available) == 0 && len(c.Installed) == 0
}

// Lookup returns the descriptor addressed by a flag and a 1-based index.
// FlagInstall indexes the available section, FlagUninstall the installed one.
// The flag is checked before the index.
func (c *Catalog) Lookup(flag, index string) (string, error) {
	var section []string
	switch flag {
	case FlagInstall:
		section = c.Available
	case FlagUninstall:
		section = c.Installed
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownFlag, flag)
	}

	n, err := strconv.Atoi(index)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidIndex, index)
	}

	offset := n - 1
	if offset < 0 || offset >= len(section) {
		return "", fmt.Errorf("%w: %d (last listing has %d)", ErrIndexOutOfBounds, n, len(section))
	}

	return section[offset], nil
}

// Identifier returns the package identifier of a descriptor line: the text
// before the first whitespace.
func Identifier(descriptor string) string {
	descriptor = strings.TrimSpace(descriptor)
	if i := strings.IndexAny(descriptor, " \t"); i >= 0 {
		return descriptor[:i]
	}
	return descriptor
}
