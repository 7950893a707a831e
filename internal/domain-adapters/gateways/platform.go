package gateways

import "runtime"

// HostPlatform reports facts about the operating system the runner is on
type HostPlatform struct {
	goos string
}

// NewHostPlatform creates a detector for the running OS
func NewHostPlatform() *HostPlatform {
	return &HostPlatform{goos: runtime.GOOS}
}

// IsWindows reports whether the host belongs to the Windows family
func (p *HostPlatform) IsWindows() bool {
	return p.goos == "windows"
}

// ServiceOS returns the platform key the analysis service expects
func (p *HostPlatform) ServiceOS() string {
	switch p.goos {
	case "windows":
		return "win"
	case "darwin":
		return "mac"
	default:
		return "linux"
	}
}
