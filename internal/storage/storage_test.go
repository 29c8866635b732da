package storage_test

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"tusk.dev/launcher/internal/storage"
)

func initialize(instance *storage.StorageEngine) {
	waitGroup := sync.WaitGroup{}
	waitGroup.Add(1)
	instance.Initialize(&waitGroup)
	waitGroup.Wait()
}

func TestInitializeCreatesFolders(t *testing.T) {
	root := t.TempDir()
	folders := []string{filepath.Join(root, "config", "tusk-launcher"), filepath.Join(root, "state", "tusk-launcher")}
	initialize(storage.NewStorageEngine(folders...))
	for _, folder := range folders {
		info, err := os.Stat(folder)
		if assert.NoError(t, err) {
			assert.True(t, info.IsDir())
		}
	}
}

func TestInitializeExistingFolder(t *testing.T) {
	root := t.TempDir()
	initialize(storage.NewStorageEngine(root))
	info, err := os.Stat(root)
	assert.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestInitializeCannotCreate(t *testing.T) {
	root := t.TempDir()
	file := filepath.Join(root, "file")
	if err := os.WriteFile(file, nil, 0644); err != nil {
		t.Fatal(err)
	}
	assert.Panics(t, func() {
		initialize(storage.NewStorageEngine(filepath.Join(file, "child")))
	})
}
