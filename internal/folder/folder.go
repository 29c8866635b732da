// Package folder resolves the XDG base directories used by the launcher.
package folder

import (
	"path/filepath"

	"github.com/adrg/xdg"
)

const ApplicationName = "tusk-launcher"

// File names, relative to the application folders
const (
	ConfigFileName           = "config.toml"
	DatabaseFileName         = "launcher.db"
	LogFileName              = "tusk-launcher.log"
	LegacyAppCacheFileName   = "app_cache.txt"
	LegacyRecentAppsFileName = "recent_apps.toml"
)

func ConfigHome() string {
	return xdg.ConfigHome
}

func DataHome() string {
	return xdg.DataHome
}

func StateHome() string {
	return xdg.StateHome
}

// DataDirs returns $XDG_DATA_DIRS without relative entries, or the
// system defaults when unset.
func DataDirs() []string {
	return xdg.DataDirs
}

func ConfigDir() string {
	return filepath.Join(ConfigHome(), ApplicationName)
}

func DataDir() string {
	return filepath.Join(DataHome(), ApplicationName)
}

func StateDir() string {
	return filepath.Join(StateHome(), ApplicationName)
}

// Home is the default working directory of launched applications.
func Home() string {
	return xdg.Home
}
