package sqlite

import (
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
	"tusk.dev/launcher/internal/database/delegate"
	"tusk.dev/launcher/internal/database/importer"
	"tusk.dev/launcher/internal/folder"
)

var errNotOpened = errors.New("database not opened")

type SQLiteDelegate struct {
	BasePath string
	database *gorm.DB
}

func (d *SQLiteDelegate) Open() (err error) {
	databasePath := filepath.Join(d.BasePath, folder.DatabaseFileName)
	if err = os.MkdirAll(filepath.Dir(databasePath), 0755); err != nil {
		return
	}
	dialector := sqlite.Open(databasePath)
	if d.database, err = gorm.Open(dialector, &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
		Logger: logger.New(logrus.StandardLogger(), logger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
		}),
	}); err != nil {
		return
	}
	// The launcher and its watcher goroutines share one sqlite connection
	var database *sql.DB
	if database, err = d.database.DB(); err != nil {
		return
	}
	database.SetMaxOpenConns(1)
	return
}

func (d *SQLiteDelegate) Migrate() (err error) {
	if d.database == nil {
		return errNotOpened
	}
	return d.database.AutoMigrate(&RecentApp{}, &LaunchOptions{},
		&EnvironmentVariable{}, &IconPath{}, &UserVariable{})
}

func (d *SQLiteDelegate) Close() (err error) {
	if d.database == nil {
		return errNotOpened
	}
	var database *sql.DB
	if database, err = d.database.DB(); err != nil {
		return
	}
	if err = database.Close(); err != nil {
		return
	}
	d.database = nil
	return
}

func (d *SQLiteDelegate) StoreImported(apps []importer.App) error {
	if d.database == nil {
		return errNotOpened
	}
	importTime := time.Now()
	return d.database.Transaction(func(tx *gorm.DB) error {
		for index, app := range apps {
			if app.Recent {
				// Keep the imported order without overriding launches already recorded
				recentApp := RecentApp{
					Name:         app.Name,
					LastLaunched: importTime.Add(-time.Duration(index) * time.Second),
					LaunchCount:  1,
				}
				if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&recentApp).Error; err != nil {
					return err
				}
			}
			if app.LaunchOptions != nil {
				if err := storeLaunchOptions(tx, app.Name, *app.LaunchOptions); err != nil {
					return err
				}
			}
			if app.IconPath != "" {
				if err := createOrUpdate(tx, &IconPath{AppName: app.Name, Path: app.IconPath}); err != nil {
					return err
				}
			}
		}
		return nil
	})
}

func createOrUpdate(database *gorm.DB, value interface{}) error {
	if result := database.Clauses(clause.OnConflict{
		UpdateAll: true,
	}).Create(value); result.Error != nil {
		return result.Error
	}
	return nil
}

func (d *SQLiteDelegate) first(dest interface{}, conds ...interface{}) error {
	if d.database == nil {
		return errNotOpened
	}
	if result := d.database.First(dest, conds...); result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return delegate.ErrNotFound
		}
		return result.Error
	}
	return nil
}
