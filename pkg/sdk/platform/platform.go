// Package platform detects the host system and resolves the sdkmanager
// executable for it.
package platform

import (
	"errors"
	"fmt"
	"path/filepath"
	"runtime"
)

// OSType represents the detected operating system type.
type OSType string

const (
	OSLinux   OSType = "linux"
	OSDarwin  OSType = "darwin"
	OSWindows OSType = "windows"
	OSUnknown OSType = "unknown"
)

// ErrUnknownPlatform is returned when no sdkmanager binary is known for the host.
var ErrUnknownPlatform = errors.New("unknown platform")

// SystemInfo contains information about the detected system.
type SystemInfo struct {
	OS           OSType
	Arch         string
	Distribution string // Linux distribution ID (e.g., "ubuntu", "arch")
	PrettyName   string
	VersionID    string
}

// Detect detects the current system's OS and, on Linux, its distribution.
func Detect() *SystemInfo {
	info := &SystemInfo{
		OS:   ParseOS(runtime.GOOS),
		Arch: runtime.GOARCH,
	}

	switch info.OS {
	case OSLinux:
		linux := DetectLinux()
		info.Distribution = linux.ID
		info.PrettyName = linux.PrettyName
		info.VersionID = linux.VersionID
	case OSDarwin:
		info.Distribution = "macos"
		info.PrettyName = "macOS"
	case OSWindows:
		info.Distribution = "windows"
		info.PrettyName = "Windows"
	default:
		info.PrettyName = runtime.GOOS
	}

	return info
}

// ParseOS maps a GOOS value to an OSType.
func ParseOS(goos string) OSType {
	switch goos {
	case "linux":
		return OSLinux
	case "darwin":
		return OSDarwin
	case "windows":
		return OSWindows
	}
	return OSUnknown
}

// ToolBinary returns the sdkmanager executable name for an OS.
func ToolBinary(osType OSType) (string, error) {
	switch osType {
	case OSWindows:
		return "sdkmanager.bat", nil
	case OSLinux, OSDarwin:
		return "sdkmanager", nil
	}
	return "", fmt.Errorf("%w: %s", ErrUnknownPlatform, osType)
}

// ResolveTool returns the sdkmanager path to run.
//
// Order: an explicit tools directory, then the SDK root from
// ANDROID_SDK_ROOT or ANDROID_HOME (cmdline-tools/latest/bin), then the bare
// binary name for a PATH lookup. getenv is os.Getenv outside tests.
func ResolveTool(osType OSType, toolsDir string, getenv func(string) string) (string, error) {
	binary, err := ToolBinary(osType)
	if err != nil {
		return "", err
	}

	if toolsDir != "" {
		return filepath.Join(toolsDir, binary), nil
	}

	for _, key := range []string{"ANDROID_SDK_ROOT", "ANDROID_HOME"} {
		if root := getenv(key); root != "" {
			return filepath.Join(root, "cmdline-tools", "latest", "bin", binary), nil
		}
	}

	return binary, nil
}
