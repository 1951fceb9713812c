package platform

import (
	"bufio"
	"io"
	"os"
	"strings"
)

const osReleasePath = "/etc/os-release"

// LinuxInfo contains information parsed from /etc/os-release.
type LinuxInfo struct {
	ID         string
	VersionID  string
	PrettyName string
}

// DetectLinux reads /etc/os-release. Missing or unreadable files give an
// "unknown" distribution.
func DetectLinux() *LinuxInfo {
	file, err := os.Open(osReleasePath)
	if err != nil {
		return &LinuxInfo{ID: "unknown", PrettyName: "Unknown Linux"}
	}
	defer file.Close()

	info, err := parseOSRelease(file)
	if err != nil || info.ID == "" {
		return &LinuxInfo{ID: "unknown", PrettyName: "Unknown Linux"}
	}
	return info
}

// parseOSRelease parses KEY=value lines in os-release format.
func parseOSRelease(r io.Reader) (*LinuxInfo, error) {
	info := &LinuxInfo{}

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		parts := strings.SplitN(scanner.Text(), "=", 2)
		if len(parts) != 2 {
			continue
		}

		key := strings.TrimSpace(parts[0])
		value := strings.Trim(strings.TrimSpace(parts[1]), "\"")

		switch key {
		case "ID":
			info.ID = value
		case "VERSION_ID":
			info.VersionID = value
		case "PRETTY_NAME":
			info.PrettyName = value
		}
	}

	return info, scanner.Err()
}
