package importer

import (
	"crypto/sha1"
	"os"
	"reflect"

	"github.com/sirupsen/logrus"
	"tusk.dev/launcher/internal/entity"
)

// Application state read from a legacy cache
type App struct {
	Name          string
	Recent        bool // part of the recent list; apps are ordered from the most recent
	LaunchOptions *entity.LaunchOptions
	IconPath      string
}

// Importer reads a legacy cache. Import returns a nil hash when there is
// nothing new to import, otherwise the hash to remember for the next run.
type Importer interface {
	Name() string
	Import(currentHash []byte) (importedHash []byte, err error)
	GetApps() []App
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// readChanged reads path and returns its content only when its hash differs
// from currentHash.
func readChanged(path string, currentHash []byte) (data []byte, hash []byte, err error) {
	if data, err = os.ReadFile(path); err != nil {
		return
	}
	hashEncoder := sha1.New()
	hashEncoder.Write(data)
	hash = hashEncoder.Sum(nil)
	if len(currentHash) != 0 && reflect.DeepEqual(currentHash, hash) {
		logrus.Infof("No updates in %s", path)
		data, hash = nil, nil
		return
	}
	logrus.Infof("The hash of %s does not match the stored one. Importing it", path)
	return
}
