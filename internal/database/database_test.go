package database_test

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"tusk.dev/launcher/internal/database"
	"tusk.dev/launcher/internal/database/importer"
	"tusk.dev/launcher/internal/database/mock"
	"tusk.dev/launcher/internal/entity"
)

func initialize(instance *database.Database) {
	waitGroup := sync.WaitGroup{}
	waitGroup.Add(1)
	instance.Initialize(&waitGroup)
	waitGroup.Wait()
}

func baseInitialize(instance *database.Database) {
	defer instance.Deinitialize()
	initialize(instance)
}

func TestInitializeUnreacheableDatabase(t *testing.T) {
	defer func() {
		errorString := recover().(error).Error()
		assert.Equal(t, "cannot open", errorString)
	}()
	instance := database.NewDatabase(&mock.MockDelegate{
		FailOpen: true,
		Error:    errors.New("cannot open"),
	}, []importer.Importer{})
	baseInitialize(instance)
	t.Fail()
}

func TestInitializeCannotMigrate(t *testing.T) {
	defer func() {
		errorString := recover().(error).Error()
		assert.Equal(t, "cannot migrate", errorString)
	}()
	instance := database.NewDatabase(&mock.MockDelegate{
		FailMigration: true,
		Error:         errors.New("cannot migrate"),
	}, []importer.Importer{})
	baseInitialize(instance)
	t.Fail()
}

func TestInitializeCannotReadCacheHash(t *testing.T) {
	defer func() {
		errorString := recover().(error).Error()
		assert.Equal(t, "cannot get stored cache hash", errorString)
	}()
	instance := database.NewDatabase(&mock.MockDelegate{
		CurrentHash: nil,
		Error:       errors.New("cannot get stored cache hash"),
	}, []importer.Importer{&mock.MockImporter{}})
	baseInitialize(instance)
	t.Fail()
}

func TestInitializeNoImporters(t *testing.T) {
	delegate := mock.MockDelegate{
		CurrentHash: &[]byte{},
	}
	instance := database.NewDatabase(&delegate, []importer.Importer{})
	baseInitialize(instance)
	assert.False(t, delegate.Stored)
}

func TestInitializeNothingToImport(t *testing.T) {
	delegate := mock.MockDelegate{
		CurrentHash: &[]byte{},
	}
	mockImporter := mock.MockImporter{}
	instance := database.NewDatabase(&delegate, []importer.Importer{&mockImporter})
	baseInitialize(instance)
	assert.True(t, mockImporter.ImportStarted)
	assert.False(t, delegate.Stored)
}

func TestInitializeInvalidCacheFallsBack(t *testing.T) {
	delegate := mock.MockDelegate{
		CurrentHash: &[]byte{},
	}
	hash := []byte("fallback hash")
	failing := mock.MockImporter{
		ImporterName: "failing",
		Error:        errors.New("invalid cache"),
	}
	fallback := mock.MockImporter{
		ImporterName: "fallback",
		ImportedHash: &hash,
		Apps:         []importer.App{{Name: "Terminal", Recent: true}},
	}
	instance := database.NewDatabase(&delegate, []importer.Importer{&failing, &fallback})
	baseInitialize(instance)
	assert.True(t, fallback.ImportStarted)
	assert.True(t, delegate.Stored)
}

func TestInitializeCannotStoreImported(t *testing.T) {
	delegate := mock.MockDelegate{
		CurrentHash:       &[]byte{},
		FailStoreImported: true,
		Error:             errors.New("cannot store imported"),
	}
	mockImporter := mock.MockImporter{
		ImportedHash: &[]byte{},
	}
	instance := database.NewDatabase(&delegate, []importer.Importer{&mockImporter})
	baseInitialize(instance)
	assert.False(t, delegate.Stored)
}

func TestInitializeCannotStoreCacheHash(t *testing.T) {
	delegate := mock.MockDelegate{
		CurrentHash:     &[]byte{},
		FailStoreDbHash: true,
		Error:           errors.New("cannot store cache hash"),
	}
	hash := []byte("Fake hash")
	mockImporter := mock.MockImporter{
		ImportedHash: &hash,
	}
	defer func() {
		errorString := recover().(error).Error()
		assert.Equal(t, "cannot store cache hash", errorString)
	}()
	instance := database.NewDatabase(&delegate, []importer.Importer{&mockImporter})
	baseInitialize(instance)
	t.Fail()
}

func TestInitializeStopsAtFirstImport(t *testing.T) {
	delegate := mock.MockDelegate{
		CurrentHash: &[]byte{},
	}
	hash := []byte("Fake hash")
	first := mock.MockImporter{ImporterName: "first", ImportedHash: &hash}
	second := mock.MockImporter{ImporterName: "second", ImportedHash: &hash}
	instance := database.NewDatabase(&delegate, []importer.Importer{&first, &second})
	baseInitialize(instance)
	assert.True(t, delegate.Stored)
	assert.True(t, first.ImportStarted)
	assert.False(t, second.ImportStarted)
}

func TestRecentAppNames(t *testing.T) {
	delegate := mock.MockDelegate{
		CurrentHash: &[]byte{},
	}
	instance := database.NewDatabase(&delegate, []importer.Importer{})
	initialize(instance)
	defer instance.Deinitialize()

	names, err := instance.RecentAppNames(5)
	assert.NoError(t, err)
	assert.Empty(t, names)

	assert.NoError(t, instance.RecordLaunch("Firefox"))
	names, err = instance.RecentAppNames(5)
	assert.NoError(t, err)
	assert.Equal(t, []string{"Firefox"}, names)
}

func TestLaunchOptionsDefaultsToEmpty(t *testing.T) {
	delegate := mock.MockDelegate{
		CurrentHash: &[]byte{},
	}
	instance := database.NewDatabase(&delegate, []importer.Importer{})
	initialize(instance)
	defer instance.Deinitialize()

	options, err := instance.LaunchOptions("Steam")
	assert.NoError(t, err)
	assert.True(t, options.IsEmpty())

	assert.NoError(t, instance.SetLaunchOptions("Steam", entity.LaunchOptions{CustomCommand: "gamemoderun %command%"}))
	options, err = instance.LaunchOptions("Steam")
	assert.NoError(t, err)
	assert.Equal(t, "gamemoderun %command%", options.CustomCommand)
}

func TestIconPath(t *testing.T) {
	delegate := mock.MockDelegate{
		CurrentHash: &[]byte{},
	}
	instance := database.NewDatabase(&delegate, []importer.Importer{})
	initialize(instance)
	defer instance.Deinitialize()

	_, ok, err := instance.IconPath("Firefox")
	assert.NoError(t, err)
	assert.False(t, ok)

	assert.NoError(t, instance.SetIconPath("Firefox", "/icons/firefox.png"))
	path, ok, err := instance.IconPath("Firefox")
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "/icons/firefox.png", path)
}
