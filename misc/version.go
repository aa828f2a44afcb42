// Package misc provides build identity helpers.
package misc

import "runtime/debug"

const appName = "vttc"

// GetAppName returns the program name used for logging and file naming.
func GetAppName() string {
	return appName
}

// GetVersion returns module version recorded in build information.
func GetVersion() string {
	if bi, ok := debug.ReadBuildInfo(); ok && len(bi.Main.Version) > 0 {
		return bi.Main.Version
	}
	return "(devel)"
}

// GetGitHash returns VCS revision recorded in build information.
func GetGitHash() string {
	if bi, ok := debug.ReadBuildInfo(); ok {
		for _, s := range bi.Settings {
			if s.Key == "vcs.revision" {
				return s.Value
			}
		}
	}
	return "unknown"
}
