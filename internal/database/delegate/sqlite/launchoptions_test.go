package sqlite_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"tusk.dev/launcher/internal/database/delegate"
	"tusk.dev/launcher/internal/entity"
)

func TestGetLaunchOptionsNotFound(t *testing.T) {
	s := openMigrated(t)
	_, err := s.GetLaunchOptions("Unknown")
	assert.ErrorIs(t, err, delegate.ErrNotFound)
}

func TestSetLaunchOptions(t *testing.T) {
	s := openMigrated(t)
	options := entity.LaunchOptions{
		CustomCommand:    "prime-run",
		WorkingDirectory: "/tmp",
		Environment:      map[string]string{"A": "1", "B": "2"},
	}
	assert.NoError(t, s.SetLaunchOptions("Blender", options))

	stored, err := s.GetLaunchOptions("Blender")
	assert.NoError(t, err)
	assert.True(t, options.Equal(stored))
}

func TestSetLaunchOptionsReplaces(t *testing.T) {
	s := openMigrated(t)
	assert.NoError(t, s.SetLaunchOptions("Blender", entity.LaunchOptions{
		CustomCommand: "prime-run",
		Environment:   map[string]string{"A": "1", "B": "2"},
	}))
	assert.NoError(t, s.SetLaunchOptions("Blender", entity.LaunchOptions{
		WorkingDirectory: "/work",
		Environment:      map[string]string{"C": "3"},
	}))

	stored, err := s.GetLaunchOptions("Blender")
	assert.NoError(t, err)
	assert.Equal(t, "", stored.CustomCommand)
	assert.Equal(t, "/work", stored.WorkingDirectory)
	assert.Equal(t, map[string]string{"C": "3"}, stored.Environment)
}

func TestGetAllLaunchOptions(t *testing.T) {
	s := openMigrated(t)
	assert.NoError(t, s.SetLaunchOptions("Blender", entity.LaunchOptions{CustomCommand: "prime-run"}))
	assert.NoError(t, s.SetLaunchOptions("Steam", entity.LaunchOptions{Environment: map[string]string{"X": "y"}}))

	all, err := s.GetAllLaunchOptions()
	assert.NoError(t, err)
	assert.Len(t, all, 2)
	assert.Equal(t, "prime-run", all["Blender"].CustomCommand)
	assert.Equal(t, map[string]string{"X": "y"}, all["Steam"].Environment)
}
