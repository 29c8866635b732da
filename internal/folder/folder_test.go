package folder_test

import (
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/stretchr/testify/assert"
	"tusk.dev/launcher/internal/folder"
)

// setenv overrides an environment variable and reloads the base directories
func setenv(t *testing.T, key, value string) {
	t.Cleanup(xdg.Reload)
	t.Setenv(key, value)
	xdg.Reload()
}

func TestDataDirsDefault(t *testing.T) {
	setenv(t, "XDG_DATA_DIRS", "")
	assert.Equal(t, []string{"/usr/local/share", "/usr/share"}, folder.DataDirs())
}

func TestDataDirsFromEnvironment(t *testing.T) {
	setenv(t, "XDG_DATA_DIRS", "/opt/share:relative:/usr/share:")
	assert.Equal(t, []string{"/opt/share", "/usr/share"}, folder.DataDirs())
}

func TestConfigDirFromEnvironment(t *testing.T) {
	setenv(t, "XDG_CONFIG_HOME", "/tmp/config")
	assert.Equal(t, filepath.Join("/tmp/config", "tusk-launcher"), folder.ConfigDir())
}

func TestRelativeHomeIsIgnored(t *testing.T) {
	setenv(t, "HOME", "/home/tester")
	setenv(t, "XDG_DATA_HOME", "relative/share")
	assert.Equal(t, "/home/tester/.local/share", folder.DataHome())
	assert.Equal(t, "/home/tester/.local/share/tusk-launcher", folder.DataDir())
	assert.Equal(t, "/home/tester", folder.Home())
}

func TestStateDir(t *testing.T) {
	setenv(t, "XDG_STATE_HOME", "/tmp/state")
	assert.Equal(t, "/tmp/state/tusk-launcher", folder.StateDir())
}
