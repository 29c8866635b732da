package delegate

import (
	"errors"
	"time"

	"tusk.dev/launcher/internal/database/importer"
	"tusk.dev/launcher/internal/entity"
)

var ErrNotFound = errors.New("record not found")

type DatabaseDelegate interface {
	Open() error
	Close() error
	Migrate() error

	StoreImported(apps []importer.App) error
	GetStoredCacheHash(name string) ([]byte, error)
	SetStoredCacheHash(name string, hash []byte) error

	RecordLaunch(name string, at time.Time) error
	GetRecentApps(limit int) ([]entity.RecentApp, error)

	GetLaunchOptions(name string) (entity.LaunchOptions, error)
	SetLaunchOptions(name string, options entity.LaunchOptions) error
	GetAllLaunchOptions() (map[string]entity.LaunchOptions, error)

	GetIconPath(name string) (string, error)
	SetIconPath(name string, path string) error
}
