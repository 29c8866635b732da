package importer

import (
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/sirupsen/logrus"
	"tusk.dev/launcher/internal/folder"
)

type recentAppsFile struct {
	RecentApps []string `toml:"recent_apps"`
}

// RecentAppsImporter imports the recent_apps.toml list.
type RecentAppsImporter struct {
	basePath string
	Apps     []App
}

func NewRecentAppsImporter(basePath string) *RecentAppsImporter {
	return &RecentAppsImporter{basePath: basePath}
}

func (i *RecentAppsImporter) Name() string {
	return folder.LegacyRecentAppsFileName
}

func (i *RecentAppsImporter) path() string {
	return filepath.Join(i.basePath, folder.LegacyRecentAppsFileName)
}

func (i *RecentAppsImporter) Import(currentHash []byte) (importedHash []byte, err error) {
	logrus.Debug("Checking if a recent applications list could be imported")
	if !fileExists(i.path()) {
		logrus.Debug("The recent applications list is not present")
		return
	}
	var data []byte
	if data, importedHash, err = readChanged(i.path(), currentHash); err != nil || importedHash == nil {
		return
	}
	var content recentAppsFile
	if _, err = toml.Decode(string(data), &content); err != nil {
		importedHash = nil
		return
	}
	i.Apps = make([]App, 0, len(content.RecentApps))
	for _, name := range content.RecentApps {
		i.Apps = append(i.Apps, App{Name: name, Recent: true})
	}
	return
}

func (i *RecentAppsImporter) GetApps() []App {
	return i.Apps
}
