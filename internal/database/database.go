package database

import (
	"errors"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"tusk.dev/launcher/internal/database/delegate"
	"tusk.dev/launcher/internal/database/importer"
	"tusk.dev/launcher/internal/entity"
)

type Database struct {
	delegate  delegate.DatabaseDelegate
	importers []importer.Importer
}

func NewDatabase(delegate delegate.DatabaseDelegate, importers []importer.Importer) (instance *Database) {
	instance = &Database{
		delegate:  delegate,
		importers: importers,
	}
	return
}

func (d *Database) Initialize(waitGroup *sync.WaitGroup) {
	var err error
	// Create or update the database if needed
	logrus.Info("Connecting to database")
	if err = d.delegate.Open(); err != nil {
		panic(err)
	}
	logrus.Info("Applying database migrations")
	if err = d.delegate.Migrate(); err != nil {
		panic(err)
	}

	// Import the legacy caches from the higher priority importer to the lower
	for _, cacheImporter := range d.importers {
		var storedHash []byte
		if storedHash, err = d.delegate.GetStoredCacheHash(cacheImporter.Name()); err != nil {
			logrus.Errorf("Cannot decode the stored hash of %s", cacheImporter.Name())
			panic(err)
		}
		var importedHash []byte
		if importedHash, err = cacheImporter.Import(storedHash); err != nil {
			logrus.Errorf("Cannot import %s: %+v", cacheImporter.Name(), err)
			continue
		}
		if importedHash == nil {
			continue
		}
		logrus.Infof("Storing the applications imported from %s", cacheImporter.Name())
		if err = d.delegate.StoreImported(cacheImporter.GetApps()); err != nil {
			logrus.Error(err)
		} else if err = d.delegate.SetStoredCacheHash(cacheImporter.Name(), importedHash); err != nil {
			panic(err)
		}
		break
	}

	// End the routine
	waitGroup.Done()
}

func (d *Database) Deinitialize() {
	d.delegate.Close()
}

// RecordLaunch moves name to the top of the recent list.
func (d *Database) RecordLaunch(name string) error {
	return d.delegate.RecordLaunch(name, time.Now())
}

// RecentAppNames returns up to limit recently launched names, most recent first.
func (d *Database) RecentAppNames(limit int) (names []string, err error) {
	var recentApps []entity.RecentApp
	if recentApps, err = d.delegate.GetRecentApps(limit); err != nil {
		return
	}
	names = make([]string, 0, len(recentApps))
	for _, recentApp := range recentApps {
		names = append(names, recentApp.Name)
	}
	return
}

// LaunchOptions returns the options saved for name, or empty options.
func (d *Database) LaunchOptions(name string) (entity.LaunchOptions, error) {
	options, err := d.delegate.GetLaunchOptions(name)
	if errors.Is(err, delegate.ErrNotFound) {
		return entity.LaunchOptions{}, nil
	}
	return options, err
}

func (d *Database) SetLaunchOptions(name string, options entity.LaunchOptions) error {
	return d.delegate.SetLaunchOptions(name, options)
}

func (d *Database) AllLaunchOptions() (map[string]entity.LaunchOptions, error) {
	return d.delegate.GetAllLaunchOptions()
}

// IconPath returns the cached icon path of name. ok is false on a cache miss.
func (d *Database) IconPath(name string) (path string, ok bool, err error) {
	if path, err = d.delegate.GetIconPath(name); err != nil {
		if errors.Is(err, delegate.ErrNotFound) {
			err = nil
		}
		return
	}
	ok = true
	return
}

func (d *Database) SetIconPath(name string, path string) error {
	return d.delegate.SetIconPath(name, path)
}
