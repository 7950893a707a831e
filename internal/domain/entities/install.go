// Package entities defines core domain models and data structures.
package entities

import "path/filepath"

// On-disk layout of a client installation
const (
	InstallDirPrefix      = "SAClientUtil"     // extracted package directories start with this
	VersionInfoFile       = "version.info"     // first line holds the installed version
	PackageFileName       = "SAClientUtil.zip" // transient download, kept for extraction
	ScriptDir             = "bin"
	WindowsScript         = "appscan.bat"
	UnixScript            = "appscan.sh"
	DefaultInstallDirName = ".appscan"
	IRXExtension          = ".irx"
)

// ClientInstall represents an extracted client package under the install directory
type ClientInstall struct {
	Name string // directory name, always prefixed with InstallDirPrefix
	Path string // absolute directory path
}

// ScriptPath returns the absolute path of a file relative to the install
func (c *ClientInstall) ScriptPath(rel string) string {
	return filepath.Join(c.Path, rel)
}

// VersionInfoPath returns the location of the version.info file
func (c *ClientInstall) VersionInfoPath() string {
	return filepath.Join(c.Path, VersionInfoFile)
}

// ScriptName returns the platform-specific entry script file name
func ScriptName(windows bool) string {
	if windows {
		return WindowsScript
	}
	return UnixScript
}

// ScriptRelPath returns the entry script path relative to an install directory
func ScriptRelPath(windows bool) string {
	return filepath.Join(ScriptDir, ScriptName(windows))
}

// ClientStatus summarizes the local install against the published client
type ClientStatus struct {
	InstallDir      string
	Install         *ClientInstall // nil when nothing is installed
	ScriptPath      string         // empty when the install has no entry script
	LocalVersion    string
	RemoteVersion   string
	UpdateAvailable bool
}

// Installed reports whether a runnable client is present
func (s *ClientStatus) Installed() bool {
	return s.Install != nil && s.ScriptPath != ""
}
